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

// AmplitudeContext bundles the per-call, read-only inputs the amplitude
// evaluator needs in addition to a pixel's direction: rescaled detector
// records, distance bounds (already rescaled to match the horizons),
// the chosen radial prior, and the tuning knobs governing the lattice
// and the quadrature. A single AmplitudeContext is shared read-only
// across all workers of the parallel phase (spec.md §5).
type AmplitudeContext struct {
	Dets        []Detector
	MinDistance float64
	MaxDistance float64
	Prior       Prior
	Tuning      *Tuning
}

// AmplitudeLogPosterior computes the amplitude log-posterior for a
// single pixel at direction (theta, phi), at sidereal time gmst.
// Returns StatusUnrecognizedPrior immediately if ctx.Prior is not one
// of the documented priors. Any other failure (a lattice point with
// A >= 0, recorded as StatusConvergence, or a quadrature failure) is
// recorded rather than propagated, so that a skipped lattice point does
// not abort the whole pixel; the first recorded failure is returned only
// if every lattice point fails (spec.md §4.6, §4.8).
func AmplitudeLogPosterior(theta, phi, gmst float64, ctx *AmplitudeContext) (float64, error) {
	if ctx.Prior != PriorUniformInLogDistance && ctx.Prior != PriorUniformInVolume {
		return math.Inf(-1), StatusUnrecognizedPrior
	}

	lat := ctx.Tuning.Lattice
	xMin := math.Log(ctx.MinDistance)
	xMax := math.Log(ctx.MaxDistance)

	// raw antenna factors at psi=0, scaled by each detector's rescaled
	// horizon to give units of SNR per unit 1/r
	fPlus0 := make([]float64, len(ctx.Dets))
	fCross0 := make([]float64, len(ctx.Dets))
	rho := make([]float64, len(ctx.Dets))
	for j, d := range ctx.Dets {
		fp, fc := AntennaResponse(d.Response, phi, RectAng-theta, 0, gmst)
		fPlus0[j] = fp * d.Horizon
		fCross0[j] = fc * d.Horizon
		rho[j] = cmplxAbs(d.SNR)
	}

	contributions := make([]float64, 0, (lat.NU+1)*lat.NPsi)
	var firstErr error

	for ui := 0; ui <= lat.NU; ui++ {
		u := float64(ui) / float64(lat.NU)
		u2 := Sqr(u)
		oneMinusU2 := 1 - u2
		polyPlus := 1 + 6*u2 + Sqr(u2)

		for pi := 0; pi < lat.NPsi; pi++ {
			twoPsi := CircAng * float64(pi) / float64(lat.NPsi)
			cos2psi := math.Cos(twoPsi)
			sin2psi := math.Sin(twoPsi)

			a := 0.0
			b := 0.0
			for j := range ctx.Dets {
				fp, fc := fPlus0[j], fCross0[j]
				rho2r2 := 0.125 * ((Sqr(fp)+Sqr(fc))*polyPlus +
					Sqr(oneMinusU2)*((Sqr(fp)-Sqr(fc))*cos2psi+2*fp*fc*sin2psi))
				if rho2r2 < 0 {
					rho2r2 = 0
				}
				rhor := math.Sqrt(rho2r2)
				a -= 0.5 * rho2r2
				b += rhor * rho[j]
			}

			if a >= 0 {
				if firstErr == nil {
					firstErr = StatusConvergence
				}
				continue
			}

			l := -b * b / (4 * a)
			breakpoints := radialBreakpoints(a, b, xMin, xMax, ctx.Tuning.Pruning.Eta)
			integrand := func(x float64) float64 {
				v, _ := radialIntegrand(ctx.Prior, a, b, l, x)
				return v
			}
			integral, err := AdaptiveQuadrature(integrand, breakpoints, ctx.Tuning.Quadrature)
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			contributions = append(contributions, math.Log(integral)+l)
		}
	}

	if len(contributions) == 0 {
		if firstErr == nil {
			firstErr = StatusConvergence
		}
		return math.Inf(-1), firstErr
	}
	return floats.LogSumExp(contributions), nil
}

func cmplxAbs(z complex128) float64 {
	return math.Hypot(real(z), imag(z))
}
