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

	"gonum.org/v1/gonum/mat"
)

// Vec3 is a 3D vector (Earth-fixed or equatorial, depending on context).
type Vec3 [3]float64

// NewVec3 creates a new 3D vector
func NewVec3(x, y, z float64) (v Vec3) {
	v[0], v[1], v[2] = x, y, z
	return
}

// String returns a human-readable vector
func (v Vec3) String() string {
	return fmt.Sprintf("[%f,%f,%f]", v[0], v[1], v[2])
}

// Length of the vector
func (v Vec3) Length() float64 {
	x, y, z := v[0], v[1], v[2]
	return math.Sqrt(x*x + y*y + z*z)
}

// Mult returns the multiplication of a vector with a scalar k
func (v Vec3) Mult(k float64) (d Vec3) {
	d[0] = k * v[0]
	d[1] = k * v[1]
	d[2] = k * v[2]
	return
}

// Dot returns the dot product between two vectors
func (v Vec3) Dot(u Vec3) float64 {
	return v[0]*u[0] + v[1]*u[1] + v[2]*u[2]
}

//----------------------------------------------------------------------

// UnitVector returns the unit vector n̂ pointing from the geocenter
// towards a sky position (θ,φ) in the Earth-fixed frame, where θ is
// co-latitude and φ is right ascension rotated into the Earth-fixed
// frame by the sidereal time gmst (φ−gmst is the Earth-fixed longitude).
func UnitVector(theta, phi, gmst float64) Vec3 {
	lon := phi - gmst
	st := math.Sin(theta)
	return NewVec3(
		st*math.Cos(lon),
		st*math.Sin(lon),
		math.Cos(theta),
	)
}

// LightTravelDelay returns the propagation delay (seconds) of a plane
// wave arriving from sky direction (θ=π/2−δ, φ=α) at a detector whose
// Earth-fixed location (meters, geocentric) is given, relative to
// arrival at the geocenter. Implemented as the algebraically equivalent
// dot(n̂, location)/c rather than a general ray-geocenter construction,
// matching spec §4.2.
func LightTravelDelay(location Vec3, ra, dec, gmst float64) float64 {
	n := UnitVector(RectAng-dec, ra, gmst)
	return n.Dot(location) / C
}

//----------------------------------------------------------------------

// ResponseTensor is a detector's 3x3 symmetric, trace-free response
// tensor (single precision in the wire format, widened for computation).
type ResponseTensor [3][3]float32

// AntennaResponse evaluates the long-wavelength plane-wave antenna
// pattern (F+, F×) of a detector with response tensor R for a source at
// right ascension α, declination δ, polarization angle ψ, at sidereal
// time gmst. Builds the two polarization basis vectors X, Y in the
// Earth-fixed frame, then contracts F+ = X·R·X − Y·R·Y and
// F× = X·R·Y + Y·R·X.
func AntennaResponse(R ResponseTensor, ra, dec, psi, gmst float64) (fPlus, fCross float64) {
	gha := gmst - ra
	sinGha, cosGha := math.Sin(gha), math.Cos(gha)
	sinDec, cosDec := math.Sin(dec), math.Cos(dec)
	sinPsi, cosPsi := math.Sin(psi), math.Cos(psi)

	x := NewVec3(
		-cosPsi*sinGha-sinPsi*cosGha*sinDec,
		-cosPsi*cosGha+sinPsi*sinGha*sinDec,
		sinPsi*cosDec,
	)
	y := NewVec3(
		sinPsi*sinGha-cosPsi*cosGha*sinDec,
		sinPsi*cosGha+cosPsi*sinGha*sinDec,
		cosPsi*cosDec,
	)

	d := mat.NewDense(3, 3, nil)
	for i := range 3 {
		for j := range 3 {
			d.Set(i, j, float64(R[i][j]))
		}
	}

	contract := func(u, v Vec3) float64 {
		var rv mat.VecDense
		rv.MulVec(d, mat.NewVecDense(3, v[:]))
		return u.Dot(NewVec3(rv.At(0, 0), rv.At(1, 0), rv.At(2, 0)))
	}
	fPlus = contract(x, x) - contract(y, y)
	fCross = contract(x, y) + contract(y, x)
	return
}
