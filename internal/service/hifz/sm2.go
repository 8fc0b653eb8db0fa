package hifz

import (
	"math"
	"time"

	"github.com/heartmarshall/hifz-backend/internal/domain"
)

// ReviewInput holds all data needed for one scheduling update.
type ReviewInput struct {
	IntervalDays int
	EaseFactor   float64
	Repetitions  int
	Quality      int
	Now          time.Time
	Config       domain.SchedulerConfig
}

// ReviewOutput is the result of a scheduling update.
type ReviewOutput struct {
	IntervalDays   int
	EaseFactor     float64
	Repetitions    int
	Status         domain.ItemStatus
	NextReviewDate time.Time
}

// CalculateReview is the SM-2 update engine: a pure function computing the
// next interval, ease and repetition count from a quality rating. No DB, no
// context, no logger.
//
// The constants (0.1 / 0.08 / 0.02 ease deltas, ease clamp, 365-day cap,
// first intervals 1 and 6) reproduce the observed scheduler exactly.
func CalculateReview(input ReviewInput) ReviewOutput {
	quality := clampInt(input.Quality, 0, 5)

	out := ReviewOutput{
		IntervalDays: input.IntervalDays,
		EaseFactor:   input.EaseFactor,
		Repetitions:  input.Repetitions,
	}

	if quality < 3 {
		// Failed recall: reset the streak and schedule for tomorrow.
		// Ease is left untouched.
		out.Repetitions = 0
		out.IntervalDays = 1
	} else {
		out.Repetitions = input.Repetitions + 1

		switch out.Repetitions {
		case 1:
			out.IntervalDays = 1
		case 2:
			out.IntervalDays = 6
		default:
			// Interval grows from the pre-update ease factor.
			out.IntervalDays = int(math.Round(float64(input.IntervalDays) * input.EaseFactor))
		}

		q := float64(quality)
		ease := input.EaseFactor + (0.1 - (5-q)*(0.08+(5-q)*0.02))
		out.EaseFactor = clampFloat(ease, input.Config.MinEaseFactor, input.Config.MaxEaseFactor)
	}

	out.IntervalDays = clampInt(out.IntervalDays, 1, input.Config.MaxIntervalDays)
	out.Status = domain.DeriveStatus(out.Repetitions, out.IntervalDays)
	out.NextReviewDate = domain.DayOf(input.Now).AddDate(0, 0, out.IntervalDays)

	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
