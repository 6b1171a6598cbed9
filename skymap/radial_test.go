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
	"errors"
	"math"
	"testing"
)

func TestRadialIntegrandUnrecognizedPrior(t *testing.T) {
	_, err := radialIntegrand(Prior(99), -1, 1, 0, 0)
	if !errors.Is(err, StatusUnrecognizedPrior) {
		t.Fatalf("err = %v, want StatusUnrecognizedPrior", err)
	}
}

func TestRadialIntegrandVolumeJacobian(t *testing.T) {
	a, b, l, x := -2.0, 3.0, 0.5, 0.2
	logDist, err := radialIntegrand(PriorUniformInLogDistance, a, b, l, x)
	if err != nil {
		t.Fatal(err)
	}
	vol, err := radialIntegrand(PriorUniformInVolume, a, b, l, x)
	if err != nil {
		t.Fatal(err)
	}
	want := logDist * math.Exp(3*x)
	if math.Abs(vol-want) > 1e-12 {
		t.Errorf("volume prior = %v, want %v", vol, want)
	}
}

func TestRadialBreakpointsSortedAndBounded(t *testing.T) {
	xMin, xMax := math.Log(1.0), math.Log(1000.0)
	pts := radialBreakpoints(-2, 5, xMin, xMax, 0.01)
	if len(pts) < 2 {
		t.Fatalf("expected at least the two bounds, got %v", pts)
	}
	if pts[0] != xMin || pts[len(pts)-1] != xMax {
		t.Errorf("breakpoints %v do not start/end at bounds [%v,%v]", pts, xMin, xMax)
	}
	for i := 1; i < len(pts); i++ {
		if pts[i] <= pts[i-1] {
			t.Errorf("breakpoints %v not strictly increasing", pts)
		}
	}
}

func TestRadialBreakpointsPositiveA(t *testing.T) {
	// A >= 0 should not occur in practice; the helper degrades gracefully
	// to just the two bounds rather than producing bogus interior points
	xMin, xMax := 0.0, 5.0
	pts := radialBreakpoints(0, 1, xMin, xMax, 0.01)
	if len(pts) != 2 {
		t.Errorf("pts = %v, want just [xMin, xMax]", pts)
	}
}
