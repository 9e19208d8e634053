package temporal

import (
	"sort"
	"time"
)

// Estimator converts commit dates into an estimate of hours worked.
//
// Commits closer together than MaxCommitDiff minutes are treated as one
// continuous coding session and the gap between them is counted in full.
// A larger gap means a new session started; the work done before its first
// commit is invisible in history, so a flat FirstCommitAddition minutes is
// credited instead.
type Estimator struct {
	MaxCommitDiff       float64
	FirstCommitAddition float64
}

// NewEstimator builds an Estimator from pipeline options
func NewEstimator(opts Options) Estimator {
	return Estimator{
		MaxCommitDiff:       float64(opts.MaxCommitDiff),
		FirstCommitAddition: float64(opts.FirstCommitAddition),
	}
}

// Estimate returns the hours spent on the given commit dates. The input slice
// is not modified and its order does not matter.
func (e Estimator) Estimate(dates []time.Time) float64 {
	if len(dates) < 2 {
		return 0
	}

	// Oldest commit first, newest last
	sorted := make([]time.Time, len(dates))
	copy(sorted, dates)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Before(sorted[j])
	})

	var hours float64
	for i := 0; i < len(sorted)-1; i++ {
		diffInMinutes := sorted[i+1].Sub(sorted[i]).Minutes()

		if diffInMinutes < e.MaxCommitDiff {
			hours += diffInMinutes / 60
			continue
		}

		hours += e.FirstCommitAddition / 60
	}

	return hours
}
