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
	"encoding/json"
	"math"
	"os"
)

// Lattice parameters for the amplitude evaluator's (2ψ, u=cos ι) sweep.
type Lattice struct {
	NU  int `json:"nu"`  // u=cos(i) nodes at 0, 1/NU, ..., 1 (NU+1 nodes, u=0 included)
	NPsi int `json:"nPsi"` // number of 2ψ nodes around the full circle
}

// Quadrature parameters for the adaptive radial integrator.
type Quadrature struct {
	RelTol     float64 `json:"relTol"`     // target relative tolerance
	AbsTol     float64 `json:"absTol"`     // target absolute tolerance
	MaxSubdiv  int     `json:"maxSubdiv"`  // subdivision budget
	RuleOrder  int     `json:"ruleOrder"`  // low-order Gauss-Legendre rule size per subinterval
	CheckOrder int     `json:"checkOrder"` // high-order (doubled) rule size used for error estimation
}

// Pruning parameters for the posterior pipeline's top-K selection.
type Pruning struct {
	MassFraction float64 `json:"massFraction"` // cumulative TDOA mass captured before pruning (e.g. 0.9999)
	Eta          float64 `json:"eta"`          // breakpoint window parameter (see spec §4.5)
}

// Tuning holds the implementation constants the spec documents as
// "tuned, not derived from first principles" (spec.md §9).
type Tuning struct {
	Lattice    *Lattice    `json:"lattice"`
	Quadrature *Quadrature `json:"quadrature"`
	Pruning    *Pruning    `json:"pruning"`
}

// Default is the pre-set, globally-accessible tuning configuration.
var Default = &Tuning{
	Lattice: &Lattice{
		NU:   16,
		NPsi: 16,
	},
	Quadrature: &Quadrature{
		RelTol:     0.05,
		AbsTol:     math.SmallestNonzeroFloat64,
		MaxSubdiv:  64,
		RuleOrder:  7,
		CheckOrder: 15,
	},
	Pruning: &Pruning{
		MassFraction: 0.9999,
		Eta:          0.01,
	},
}

// LoadTuning overrides the default tuning from a JSON file, leaving
// any field absent from the file at its current value.
func LoadTuning(fname string) (err error) {
	var data []byte
	if data, err = os.ReadFile(fname); err == nil {
		err = json.Unmarshal(data, Default)
	}
	return
}
