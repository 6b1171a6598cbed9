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

	"gonum.org/v1/gonum/integrate/quad"
)

// quadInterval is one subinterval in the adaptive subdivision queue.
type quadInterval struct{ lo, hi float64 }

// AdaptiveQuadrature integrates f over the breakpoint-partitioned range
// [breakpoints[0], breakpoints[len-1]], refining any subinterval whose
// low-order and high-order fixed Gauss-Legendre estimates disagree by
// more than the configured tolerance. Subintervals are processed in
// first-in first-out order and each is accepted against its own
// tolerance; no error estimate over the whole range is formed, and the
// subinterval with the largest error is not refined first. It fails
// with *convergence* if the subdivision budget is exhausted (spec.md
// §4.7).
func AdaptiveQuadrature(f func(float64) float64, breakpoints []float64, t *Quadrature) (float64, error) {
	queue := make([]quadInterval, 0, len(breakpoints))
	for i := 0; i+1 < len(breakpoints); i++ {
		queue = append(queue, quadInterval{breakpoints[i], breakpoints[i+1]})
	}

	total := 0.0
	subdivisions := 0
	for len(queue) > 0 {
		iv := queue[0]
		queue = queue[1:]

		lo := quad.Fixed(f, iv.lo, iv.hi, t.RuleOrder, quad.Legendre{}, 0)
		hi := quad.Fixed(f, iv.lo, iv.hi, t.CheckOrder, quad.Legendre{}, 0)

		if math.Abs(hi-lo) <= t.RelTol*math.Abs(hi)+t.AbsTol {
			total += hi
			continue
		}

		subdivisions++
		if subdivisions > t.MaxSubdiv {
			return 0, StatusConvergence
		}
		mid := (iv.lo + iv.hi) / 2
		queue = append(queue, quadInterval{iv.lo, mid}, quadInterval{mid, iv.hi})
	}
	return total, nil
}
