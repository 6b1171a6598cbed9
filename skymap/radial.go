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
	"fmt"
	"math"
	"sort"
)

// Prior selects one of the two closed-form priors on luminosity
// distance. The set is closed and small (spec.md §9), so it is
// expressed as a tagged variant rather than open polymorphism.
type Prior int

const (
	// PriorUniformInLogDistance is flat in ln(r).
	PriorUniformInLogDistance Prior = iota
	// PriorUniformInVolume is flat in volume, i.e. proportional to
	// r^2 dr (adds an r^3 Jacobian in ln(r)).
	PriorUniformInVolume
)

// radialIntegrand returns exp(A*e^(-2x) + B*e^(-x) - L) at x = ln(r),
// with an extra e^(3x) Jacobian factor for PriorUniformInVolume.
func radialIntegrand(prior Prior, a, b, l, x float64) (float64, error) {
	em1 := math.Exp(-x)
	em2 := em1 * em1
	v := math.Exp(a*em2 + b*em1 - l)
	switch prior {
	case PriorUniformInLogDistance:
		return v, nil
	case PriorUniformInVolume:
		return v * math.Exp(3*x), nil
	default:
		return 0, fmt.Errorf("%w: prior=%d", StatusUnrecognizedPrior, prior)
	}
}

// radialBreakpoints constructs up to five sorted breakpoints in
// x = ln(r) enclosing the peak of the quadratic A*y^2 + B*y in
// y = 1/r, keeping only those strictly inside (xMin, xMax). a must be
// negative (a concave quadratic in y); eta is the small constant that
// sets how far the breakpoints spread around the peak (spec.md §4.5).
func radialBreakpoints(a, b, xMin, xMax, eta float64) []float64 {
	pts := []float64{xMin, xMax}

	// a==0 (within tolerance) makes y* and the eta-window solve singular
	// or meaningless, so it is treated the same as the disallowed a>=0 case.
	if a < 0 && !IsNull(a) {
		yStar := -b / (2 * a)
		if yStar > 0 {
			pts = append(pts, math.Log(1/yStar))
		}

		// A*y^2 + B*y - (-B^2/(4A)) = ln(eta), i.e. A*y^2 + B*y + C = 0
		// with C = B^2/(4A) - ln(eta) = -peak - ln(eta); solved for y
		// around yStar.
		peak := -b * b / (4 * a)
		c := -peak - math.Log(eta)
		disc := b*b - 4*a*c
		if disc >= 0 {
			sq := math.Sqrt(disc)
			yLower := (-b - sq) / (2 * a)
			yUpper := (-b + sq) / (2 * a)
			if yLower > yUpper {
				yLower, yUpper = yUpper, yLower
			}
			if yUpper > 0 {
				pts = append(pts, math.Log(1/yUpper))
			}
			if yLower > 0 {
				pts = append(pts, math.Log(1/yLower))
			}
		}
	}

	kept := pts[:0:0]
	for _, x := range pts {
		if x > xMin+eps && x < xMax-eps {
			kept = append(kept, x)
		}
	}
	kept = append(kept, xMin, xMax)
	sort.Float64s(kept)

	out := kept[:0]
	for i, x := range kept {
		if i == 0 || x > out[len(out)-1]+eps {
			out = append(out, x)
		}
	}
	return out
}
