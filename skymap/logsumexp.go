//----------------------------------------------------------------------
// This file is part of skymap.
// Copyright (C) 2024-present Bernd Fix >Y<,  DO3YQ
//
// skymap is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// skymap is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: AGPL3.0-or-later
//----------------------------------------------------------------------

package skymap

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Normalize turns a slice of per-pixel log-probabilities into a
// probability distribution that sums to 1, returning the log of the
// normalizing constant (the log-evidence) alongside it. logp is
// modified in place. Pixels holding math.Inf(-1) (e.g. pixels pruned
// by the pipeline) contribute zero mass and end up at exactly 0. If
// every pixel is math.Inf(-1), all pixels are set to 0 and the result
// does not sum to 1.
//
// Step 1 of spec.md §4.3's exp_normalize (find the running maximum M)
// is done with Max, which also doubles as the "every pixel is -Inf"
// check: steps 2-4 (shift by M, sum, divide) are then folded into a
// single call to gonum's LogSumExp plus a log-space subtraction, so the
// unnormalized linear-space values are never formed, which is the main
// source of cancellation the spec's descending-permutation summation
// guards against.
func Normalize(logp []float64) (logEvidence float64) {
	if len(logp) == 0 {
		return math.Inf(-1)
	}
	if math.IsInf(Max(logp), -1) {
		for i := range logp {
			logp[i] = 0
		}
		return math.Inf(-1)
	}
	logEvidence = floats.LogSumExp(logp)
	for i := range logp {
		logp[i] = math.Exp(logp[i] - logEvidence)
	}
	return logEvidence
}

// Max returns the largest value in xs that is not -Inf, or math.Inf(-1)
// if xs is empty or every entry is -Inf.
func Max(xs []float64) float64 {
	finite := false
	m := math.Inf(-1)
	for _, x := range xs {
		if !math.IsInf(x, -1) && x > m {
			m = x
			finite = true
		}
	}
	if !finite && len(xs) > 0 {
		return xs[0]
	}
	return m
}

// Sum is a thin re-export of gonum's pairwise-compensated summation,
// used wherever a plain linear-space total (rather than a log-space
// reduction) is required.
func Sum(xs []float64) float64 {
	return floats.Sum(xs)
}
