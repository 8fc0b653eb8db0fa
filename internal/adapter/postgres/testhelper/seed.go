package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/hifz-backend/internal/domain"
)

// SeedItem inserts a memorization item for the learner and returns it with
// DB-assigned timestamps. The item starts NEW and due today unless mutated
// via the opts callback before insert.
func SeedItem(t *testing.T, pool *pgxpool.Pool, learnerID uuid.UUID, chapter, verse int, opts ...func(*domain.MemorizationItem)) domain.MemorizationItem {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	item := domain.MemorizationItem{
		ID:             uuid.New(),
		LearnerID:      learnerID,
		Chapter:        chapter,
		Verse:          verse,
		IntervalDays:   1,
		EaseFactor:     domain.DefaultEaseFactor,
		Repetitions:    0,
		NextReviewDate: domain.DayOf(now),
		Status:         domain.ItemStatusNew,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for _, opt := range opts {
		opt(&item)
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO memorization_items
		   (id, learner_id, chapter, verse, interval_days, ease_factor, repetitions,
		    next_review_date, last_review_date, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		item.ID, item.LearnerID, item.Chapter, item.Verse, item.IntervalDays, item.EaseFactor,
		item.Repetitions, item.NextReviewDate, item.LastReviewDate, string(item.Status),
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedItem insert: %v", err)
	}

	return item
}

// SeedReviewLog inserts a review log row for an existing item.
func SeedReviewLog(t *testing.T, pool *pgxpool.Pool, item domain.MemorizationItem, quality int, reviewedAt time.Time) domain.ReviewLog {
	t.Helper()
	ctx := context.Background()

	log := domain.ReviewLog{
		ID:               uuid.New(),
		ItemID:           item.ID,
		LearnerID:        item.LearnerID,
		Quality:          quality,
		PrevIntervalDays: item.IntervalDays,
		PrevEaseFactor:   item.EaseFactor,
		PrevRepetitions:  item.Repetitions,
		PrevStatus:       item.Status,
		ReviewedAt:       reviewedAt.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO review_logs
		   (id, item_id, learner_id, quality, prev_interval_days, prev_ease_factor,
		    prev_repetitions, prev_status, reviewed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		log.ID, log.ItemID, log.LearnerID, log.Quality, log.PrevIntervalDays,
		log.PrevEaseFactor, log.PrevRepetitions, string(log.PrevStatus), log.ReviewedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedReviewLog insert: %v", err)
	}

	return log
}
