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

import "gonum.org/v1/gonum/stat"

// TDOAMap computes the un-normalized log-posterior contribution from
// times of arrival alone, for every pixel of a grid of resolution n.
// The first detector's TOA is used as the zero point internally; the
// result does not depend on which detector is listed first (spec.md
// §3 invariant), since a common additive shift on all dt_j leaves the
// weighted residual sum unchanged.
func TDOAMap(n int, gmst float64, dets []Detector) []float64 {
	npix := 12 * n * n
	logp := make([]float64, npix)

	t0 := dets[0].TOA
	weights := make([]float64, len(dets))
	for j, d := range dets {
		weights[j] = 1 / d.VarTOA
	}

	dt := make([]float64, len(dets))
	for i := 0; i < npix; i++ {
		theta, phi := IndexToAngle(n, i)
		nhat := UnitVector(theta, phi, gmst)
		for j, d := range dets {
			dt[j] = (d.TOA - t0) + nhat.Dot(d.Location)/C
		}
		mean := stat.Mean(dt, weights)
		acc := 0.0
		for j, v := range dt {
			acc += weights[j] * Sqr(v-mean)
		}
		logp[i] = -0.5 * acc
	}
	return logp
}
