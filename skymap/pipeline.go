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
	"runtime"
	"sort"

	"github.com/alitto/pond"
	"github.com/samber/lo"
)

// topKByMass sorts pixel indices by descending log-posterior and
// returns the prefix of that ordering whose cumulative linear-space
// mass reaches massFraction of the total. The cumulative sum walks the
// descending permutation so the largest terms accumulate first and the
// smallest contribute last, bounding the relative rounding error of
// the running total (spec.md §4.8, §4.3).
func topKByMass(logp []float64, massFraction float64) (order []int, k int) {
	order = make([]int, len(logp))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return logp[order[a]] > logp[order[b]] })

	linear := make([]float64, len(logp))
	for i, v := range logp {
		linear[i] = math.Exp(v)
	}
	total := Sum(linear)
	if total == 0 {
		return order, len(order)
	}

	threshold := massFraction * total
	running := 0.0
	for k = 0; k < len(order); k++ {
		running += math.Exp(logp[order[k]])
		if running >= threshold {
			k++
			break
		}
	}
	return order, k
}

// EvaluatePosteriorTDOASNR runs the full time-delay + amplitude
// posterior pipeline: TDOA evaluation, descending sort, top-K mass
// pruning, parallel amplitude evaluation over the surviving pixels,
// and final normalization (spec.md §4.8).
func EvaluatePosteriorTDOASNR(n int, gmst float64, dets []Detector, minDistance, maxDistance float64, prior Prior, tuning *Tuning) ([]float64, error) {
	rescaled, scaledMin, scaledMax := RescaleHorizons(dets, minDistance, maxDistance)

	logp := TDOAMap(n, gmst, rescaled)
	order, k := topKByMass(logp, tuning.Pruning.MassFraction)

	for _, idx := range order[k:] {
		logp[idx] = math.Inf(-1)
	}

	ctx := &AmplitudeContext{
		Dets:        rescaled,
		MinDistance: scaledMin,
		MaxDistance: scaledMax,
		Prior:       prior,
		Tuning:      tuning,
	}

	errs := make([]error, k)
	nWorkers := runtime.NumCPU()
	pool := pond.New(nWorkers, 0, pond.MinWorkers(nWorkers))

	slots := make([]int, k)
	for i := range slots {
		slots[i] = i
	}
	chunks := lo.Chunk(slots, max(1, k/nWorkers+1))
	for _, chunk := range chunks {
		chunk := chunk
		pool.Submit(func() {
			for _, slot := range chunk {
				pixIdx := order[slot]
				theta, phi := IndexToAngle(n, pixIdx)
				amp, err := AmplitudeLogPosterior(theta, phi, gmst, ctx)
				if err != nil {
					errs[slot] = err
					continue
				}
				logp[pixIdx] += amp
			}
		})
	}
	pool.StopAndWait()

	for _, e := range errs {
		if e != nil {
			return nil, e
		}
	}

	Normalize(logp)
	return logp, nil
}
