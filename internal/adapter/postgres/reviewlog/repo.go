// Package reviewlog implements the review-history repository using PostgreSQL.
package reviewlog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/hifz-backend/internal/adapter/postgres"
	"github.com/heartmarshall/hifz-backend/internal/domain"
)

// Repo provides review-log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new review-log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const logColumns = `id, item_id, learner_id, quality, prev_interval_days,
       prev_ease_factor, prev_repetitions, prev_status, reviewed_at`

const createSQL = `
INSERT INTO review_logs
  (` + logColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + logColumns

const getByItemIDSQL = `
SELECT ` + logColumns + `
FROM review_logs
WHERE item_id = $1
ORDER BY reviewed_at DESC
LIMIT $2 OFFSET $3`

const countByItemIDSQL = `
SELECT count(*) FROM review_logs WHERE item_id = $1`

// Create inserts a review-log row.
func (r *Repo) Create(ctx context.Context, log *domain.ReviewLog) (*domain.ReviewLog, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL,
		log.ID, log.ItemID, log.LearnerID, log.Quality,
		log.PrevIntervalDays, log.PrevEaseFactor, log.PrevRepetitions,
		log.PrevStatus, log.ReviewedAt,
	)

	created, err := scanLog(row)
	if err != nil {
		return nil, postgres.MapError(err, "review_log", log.ID.String())
	}

	return created, nil
}

// GetByItemID returns review logs for an item, newest first, with the total
// count for pagination.
func (r *Repo) GetByItemID(ctx context.Context, itemID uuid.UUID, limit, offset int) ([]*domain.ReviewLog, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	if err := querier.QueryRow(ctx, countByItemIDSQL, itemID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count review logs: %w", err)
	}

	rows, err := querier.Query(ctx, getByItemIDSQL, itemID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("get review logs: %w", err)
	}
	defer rows.Close()

	logs := []*domain.ReviewLog{}
	for rows.Next() {
		log, err := scanLog(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan review log: %w", err)
		}
		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate review logs: %w", err)
	}

	return logs, total, nil
}

func scanLog(row pgx.Row) (*domain.ReviewLog, error) {
	var (
		log    domain.ReviewLog
		status string
	)

	if err := row.Scan(
		&log.ID, &log.ItemID, &log.LearnerID, &log.Quality,
		&log.PrevIntervalDays, &log.PrevEaseFactor, &log.PrevRepetitions,
		&status, &log.ReviewedAt,
	); err != nil {
		return nil, err
	}

	log.PrevStatus = domain.ItemStatus(status)

	return &log, nil
}
