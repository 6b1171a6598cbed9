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

// Detector is an immutable record of one interferometer's contribution
// to a trigger: its sensitivity (response tensor, horizon distance),
// its Earth-fixed location, and its measured arrival (time, SNR,
// timing variance). All fields are read-only for the duration of a
// single sky-map evaluation (spec.md §3).
type Detector struct {
	Response ResponseTensor // 3x3 antenna response tensor (single precision)
	Location Vec3           // Earth-fixed geocentric location (meters)
	Horizon  float64        // distance at which this detector sees SNR=1 for the template
	TOA      float64        // measured time of arrival (seconds, arbitrary epoch)
	SNR      complex128     // complex matched-filter SNR at TOA
	VarTOA   float64        // TOA measurement variance (seconds^2)
}

// RescaleHorizons returns a copy of dets with every Horizon divided by
// the largest horizon among them, and min/max distance scaled by the
// same factor, so that the largest rescaled horizon is exactly 1
// (spec.md §3 invariants). It does not mutate dets.
func RescaleHorizons(dets []Detector, minDistance, maxDistance float64) (out []Detector, scaledMin, scaledMax float64) {
	maxHorizon := 0.0
	for _, d := range dets {
		if d.Horizon > maxHorizon {
			maxHorizon = d.Horizon
		}
	}
	out = make([]Detector, len(dets))
	copy(out, dets)
	if maxHorizon <= 0 {
		return out, minDistance, maxDistance
	}
	for i := range out {
		out[i].Horizon /= maxHorizon
	}
	scaledMin = minDistance / maxHorizon
	scaledMax = maxDistance / maxHorizon
	return
}
