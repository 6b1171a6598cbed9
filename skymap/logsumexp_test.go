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
	"testing"
)

func TestNormalizeSumsToOne(t *testing.T) {
	logp := []float64{-1.0, -2.0, -0.5, -3.2, -10}
	Normalize(logp)
	total := Sum(logp)
	if math.Abs(total-1) > 1e-9 {
		t.Errorf("Normalize produced sum %v, want 1", total)
	}
	for _, p := range logp {
		if p < 0 {
			t.Errorf("Normalize produced negative probability %v", p)
		}
	}
}

func TestNormalizeUniform(t *testing.T) {
	n := 12
	logp := make([]float64, n)
	Normalize(logp)
	want := 1.0 / float64(n)
	for i, p := range logp {
		if math.Abs(p-want) > 1e-9 {
			t.Errorf("pixel %d: p=%v, want %v", i, p, want)
		}
	}
}

func TestNormalizeAllZeroMass(t *testing.T) {
	logp := []float64{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	logEvidence := Normalize(logp)
	if !math.IsInf(logEvidence, -1) {
		t.Errorf("logEvidence = %v, want -Inf", logEvidence)
	}
	for _, p := range logp {
		if p != 0 {
			t.Errorf("all-dead pixel left at %v, want 0", p)
		}
	}
}

func TestMaxSkipsNegativeInfinity(t *testing.T) {
	m := Max([]float64{math.Inf(-1), 3.2, 1.1, math.Inf(-1)})
	if m != 3.2 {
		t.Errorf("Max = %v, want 3.2", m)
	}
}
