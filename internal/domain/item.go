package domain

import (
	"time"

	"github.com/google/uuid"
)

// Scheduling bounds shared by the update engine, config validation, and
// status derivation.
const (
	DefaultEaseFactor  = 2.5
	MinEaseFactor      = 1.3
	MaxEaseFactor      = 2.5
	MaxIntervalDays    = 365
	MatureIntervalDays = 21
)

// MemorizationItem is one (learner, verse) scheduling record. Chapter and
// Verse are immutable once created; the numeric scheduling fields are
// mutated exclusively by the SM-2 update engine.
type MemorizationItem struct {
	ID             uuid.UUID
	LearnerID      uuid.UUID
	Chapter        int
	Verse          int
	IntervalDays   int
	EaseFactor     float64
	Repetitions    int
	NextReviewDate time.Time
	LastReviewDate *time.Time
	Status         ItemStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Key returns the item's verse key.
func (i *MemorizationItem) Key() VerseKey {
	return VerseKey{Chapter: i.Chapter, Verse: i.Verse}
}

// IsDue reports whether the item needs review at the given time.
// Comparison is at calendar-day granularity: both sides are normalized to
// midnight UTC, so time-of-day never affects the outcome.
func (i *MemorizationItem) IsDue(now time.Time) bool {
	return !DayOf(i.NextReviewDate).After(DayOf(now))
}

// DayOf truncates a timestamp to midnight UTC. All nextReviewDate values are
// stored and compared at this granularity.
func DayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ReviewLog records a single review event for an item, with the scheduling
// state as it was before the update.
type ReviewLog struct {
	ID               uuid.UUID
	ItemID           uuid.UUID
	LearnerID        uuid.UUID
	Quality          int
	PrevIntervalDays int
	PrevEaseFactor   float64
	PrevRepetitions  int
	PrevStatus       ItemStatus
	ReviewedAt       time.Time
}

// ReviewResult is the outcome of recording one review: the committed item
// state plus the reward instructions the gamification collaborator should
// receive.
type ReviewResult struct {
	Item    *MemorizationItem
	Rewards []RewardInstruction
}
