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
)

// ResolutionFromNpix returns the resolution N such that npix = 12*N^2,
// the ring-indexed equal-area pixelization's only free parameter.
func ResolutionFromNpix(npix int) (n int, err error) {
	if npix <= 0 || npix%12 != 0 {
		return 0, fmt.Errorf("%w: npix=%d is not of the form 12*N^2", StatusShape, npix)
	}
	n2 := npix / 12
	n = int(math.Round(math.Sqrt(float64(n2))))
	if n <= 0 || n*n != n2 {
		return 0, fmt.Errorf("%w: npix=%d is not of the form 12*N^2", StatusShape, npix)
	}
	return n, nil
}

// IndexToAngle maps a ring-ordered pixel index i in [0, 12*N^2) to its
// center in spherical coordinates (θ co-latitude, φ longitude), using
// the standard hierarchical equal-area, isolatitude ring pixelization
// (rings of constant θ ordered north to south, pixels within a ring
// ordered by increasing φ). Deterministic, pure, O(1).
func IndexToAngle(n, i int) (theta, phi float64) {
	npix := 12 * n * n
	ip1 := float64(i + 1) // 1-based pixel number, as in the reference formulas
	nl2 := float64(2 * n)
	nl4 := float64(4 * n)
	ncap := nl2 * float64(n-1) // pixels in each polar cap (0 for n=1)
	fact1 := 1.5 * float64(n)
	fact2 := 3.0 * float64(n) * float64(n)

	switch {
	case ip1 <= ncap:
		// north polar cap
		hip := ip1 / 2
		fihip := math.Floor(hip)
		iring := math.Floor(math.Sqrt(hip-math.Sqrt(fihip))) + 1
		iphi := ip1 - 2*iring*(iring-1)

		theta = math.Acos(1 - iring*iring/fact2)
		phi = (iphi - 0.5) * math.Pi / (2 * iring)

	case ip1 <= nl2*(5*float64(n)+1):
		// equatorial belt
		ip := ip1 - ncap - 1
		iring := math.Floor(ip/nl4) + float64(n)
		iphi := math.Mod(ip, nl4) + 1

		fodd := 0.5 * (1 + math.Mod(iring+float64(n), 2))
		theta = math.Acos((nl2 - iring) / fact1)
		phi = (iphi - fodd) * math.Pi / (2 * float64(n))

	default:
		// south polar cap
		ip := float64(npix) - ip1 + 1
		hip := ip / 2
		fihip := math.Floor(hip)
		iring := math.Floor(math.Sqrt(hip-math.Sqrt(fihip))) + 1
		iphi := 4*iring + 1 - (ip - 2*iring*(iring-1))

		theta = math.Acos(-1 + iring*iring/fact2)
		phi = (iphi - 0.5) * math.Pi / (2 * iring)
	}
	return
}
