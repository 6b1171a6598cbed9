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

// Status is a closed set of outcome codes a pixel evaluation (or an
// input validation step) can terminate with. It implements error so it
// can be returned, wrapped and compared directly with errors.Is.
type Status int

const (
	// StatusSuccess marks a normal, fully converged result.
	StatusSuccess Status = iota
	// StatusShape marks malformed input shape (bad npix, mismatched
	// slice lengths, out-of-range indices).
	StatusShape
	// StatusMemory marks an allocation failure on a large working buffer.
	StatusMemory
	// StatusConvergence marks a quadrature that exhausted its
	// subdivision budget without meeting its tolerance.
	StatusConvergence
	// StatusUnrecognizedPrior marks an unknown radial prior selector.
	StatusUnrecognizedPrior
)

// Error implements the error interface.
func (s Status) Error() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusShape:
		return "invalid shape"
	case StatusMemory:
		return "memory allocation failure"
	case StatusConvergence:
		return "quadrature did not converge"
	case StatusUnrecognizedPrior:
		return "unrecognized radial prior"
	default:
		return "unknown status"
	}
}
