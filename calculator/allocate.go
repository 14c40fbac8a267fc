package calculator

import (
	"math"
	"sort"
)

// allocation granularity and the tolerance below which the per-project sum
// counts as reconciled with the day total.
const (
	allocStep      = 0.5
	allocTolerance = 0.01
)

// Allocate splits a day's total working hours across projects in proportion
// to each project's activity count, in half-hour units. Every project with
// at least one activity is credited at least half an hour. Plain
// proportional rounding rarely lands on the day total, so the shares are
// then reconciled: whichever project holds the largest share gives up half
// an hour while the sum overshoots, and whichever holds the smallest share
// gains half an hour while it undershoots. Ties resolve to the
// lexicographically smallest key.
//
// Keys are the full project universe of the month; projects without
// activity that day get 0. A zero total or zero counts short-circuit to an
// all-zero map.
func Allocate(totalHours float64, counts map[string]int, keys []string) map[string]float64 {
	allocated := make(map[string]float64, len(keys))
	for _, key := range keys {
		allocated[key] = 0
	}

	totalCount := 0
	for _, key := range keys {
		totalCount += counts[key]
	}
	if totalHours == 0 || totalCount == 0 {
		return allocated
	}

	for _, key := range keys {
		count := counts[key]
		if count == 0 {
			continue
		}
		share := totalHours * float64(count) / float64(totalCount)
		rounded := math.Round(share/allocStep) * allocStep
		if rounded < allocStep {
			rounded = allocStep
		}
		allocated[key] = rounded
	}

	reconcile(totalHours, allocated, keys)
	return allocated
}

// reconcile nudges the shares in half-hour steps until they sum to the day
// total. It stops early when no project can give up time, or when the
// remaining residual is smaller than a step can fix (a quarter-hour day
// total can never reconcile exactly; the residual is accepted rather than
// oscillating forever).
func reconcile(totalHours float64, allocated map[string]float64, keys []string) {
	sorted := append([]string(nil), keys...)
	sort.Strings(sorted)

	for {
		diff := sum(allocated) - totalHours
		if math.Abs(diff) <= allocTolerance {
			return
		}
		if math.Abs(diff) <= allocStep/2+allocTolerance {
			// A half-hour step would overshoot the other way.
			return
		}

		if diff > 0 {
			key, ok := largestPositive(allocated, sorted)
			if !ok {
				return
			}
			allocated[key] -= allocStep
		} else {
			key := smallest(allocated, sorted)
			allocated[key] += allocStep
		}
	}
}

func sum(allocated map[string]float64) float64 {
	var s float64
	for _, v := range allocated {
		s += v
	}
	return s
}

func largestPositive(allocated map[string]float64, sorted []string) (string, bool) {
	var best string
	found := false
	for _, key := range sorted {
		if allocated[key] <= 0 {
			continue
		}
		if !found || allocated[key] > allocated[best] {
			best = key
			found = true
		}
	}
	return best, found
}

func smallest(allocated map[string]float64, sorted []string) string {
	best := sorted[0]
	for _, key := range sorted[1:] {
		if allocated[key] < allocated[best] {
			best = key
		}
	}
	return best
}
