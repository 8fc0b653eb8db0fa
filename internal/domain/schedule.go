package domain

import "time"

// SchedulerConfig holds the SM-2 parameters (pure domain type). Defaults
// reproduce the observed scheduler exactly; see config.HifzConfig for the
// env-configurable source.
type SchedulerConfig struct {
	DefaultEaseFactor float64
	MinEaseFactor     float64
	MaxEaseFactor     float64
	MaxIntervalDays   int
}

// DefaultSchedulerConfig returns the canonical parameter set.
func DefaultSchedulerConfig() SchedulerConfig {
	return SchedulerConfig{
		DefaultEaseFactor: DefaultEaseFactor,
		MinEaseFactor:     MinEaseFactor,
		MaxEaseFactor:     MaxEaseFactor,
		MaxIntervalDays:   MaxIntervalDays,
	}
}

// SchedulingUpdate holds the fields written back to an item after a review.
// Applied atomically as a whole: a partially-applied update must never be
// observable.
type SchedulingUpdate struct {
	IntervalDays   int
	EaseFactor     float64
	Repetitions    int
	Status         ItemStatus
	NextReviewDate time.Time
	LastReviewDate time.Time
}
