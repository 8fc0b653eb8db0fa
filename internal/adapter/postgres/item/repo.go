// Package item implements the MemorizationItem repository using PostgreSQL.
// Fixed-shape queries use raw SQL; list queries with dynamic predicates are
// built with squirrel.
package item

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/hifz-backend/internal/adapter/postgres"
	"github.com/heartmarshall/hifz-backend/internal/domain"
)

// Repo provides memorization-item persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new item repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const itemColumns = `id, learner_id, chapter, verse, interval_days, ease_factor,
       repetitions, next_review_date, last_review_date, status, created_at, updated_at`

// statusRankSQL orders less-consolidated items first: NEW < LEARNING < REVIEW < MATURE.
const statusRankSQL = `CASE status
  WHEN 'NEW' THEN 0
  WHEN 'LEARNING' THEN 1
  WHEN 'REVIEW' THEN 2
  ELSE 3
END`

const getByKeySQL = `
SELECT ` + itemColumns + `
FROM memorization_items
WHERE learner_id = $1 AND chapter = $2 AND verse = $3`

const createSQL = `
INSERT INTO memorization_items
  (id, learner_id, chapter, verse, interval_days, ease_factor, repetitions,
   next_review_date, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
ON CONFLICT (learner_id, chapter, verse) DO NOTHING
RETURNING ` + itemColumns

const updateSchedulingSQL = `
UPDATE memorization_items
SET interval_days = $3,
    ease_factor = $4,
    repetitions = $5,
    status = $6,
    next_review_date = $7,
    last_review_date = $8,
    updated_at = $9
WHERE learner_id = $1 AND id = $2
RETURNING ` + itemColumns

const countByStatusSQL = `
SELECT status, count(*)
FROM memorization_items
WHERE learner_id = $1
GROUP BY status`

const countDueSQL = `
SELECT count(*)
FROM memorization_items
WHERE learner_id = $1 AND next_review_date <= $2`

// GetByKey returns the item for (learner, chapter:verse).
func (r *Repo) GetByKey(ctx context.Context, learnerID uuid.UUID, key domain.VerseKey) (*domain.MemorizationItem, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByKeySQL, learnerID, key.Chapter, key.Verse)
	item, err := scanItem(row)
	if err != nil {
		return nil, postgres.MapError(err, "item", key.String())
	}

	return item, nil
}

// GetByKeyForUpdate loads the item with a row lock (SELECT ... FOR UPDATE).
// Must be called inside a transaction; concurrent reviews of the same item
// serialize on this lock.
func (r *Repo) GetByKeyForUpdate(ctx context.Context, learnerID uuid.UUID, key domain.VerseKey) (*domain.MemorizationItem, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByKeySQL+" FOR UPDATE", learnerID, key.Chapter, key.Verse)
	item, err := scanItem(row)
	if err != nil {
		return nil, postgres.MapError(err, "item", key.String())
	}

	return item, nil
}

// Create inserts a new item. When another request already created the same
// (learner, verse) pair the insert is a no-op and domain.ErrAlreadyExists is
// returned; the caller resolves the race by fetching the winner's record.
func (r *Repo) Create(ctx context.Context, item *domain.MemorizationItem) (*domain.MemorizationItem, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, createSQL,
		item.ID, item.LearnerID, item.Chapter, item.Verse,
		item.IntervalDays, item.EaseFactor, item.Repetitions,
		item.NextReviewDate, item.Status, now,
	)

	created, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// ON CONFLICT DO NOTHING returned no row: lost the creation race.
			return nil, fmt.Errorf("item %s: %w", item.Key(), domain.ErrAlreadyExists)
		}
		return nil, postgres.MapError(err, "item", item.Key().String())
	}

	return created, nil
}

// UpdateScheduling applies a full scheduling update to an item and returns
// the updated record. All fields are written in one statement so readers
// never observe a partially-applied update.
func (r *Repo) UpdateScheduling(ctx context.Context, learnerID, itemID uuid.UUID, params domain.SchedulingUpdate) (*domain.MemorizationItem, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, updateSchedulingSQL,
		learnerID, itemID,
		params.IntervalDays, params.EaseFactor, params.Repetitions,
		params.Status, params.NextReviewDate, params.LastReviewDate, now,
	)

	item, err := scanItem(row)
	if err != nil {
		return nil, postgres.MapError(err, "item", itemID.String())
	}

	return item, nil
}

// GetDue returns items due on or before the given day, least-consolidated
// statuses first, insertion order within a status. limit must be positive;
// the service layer handles limit <= 0.
func (r *Repo) GetDue(ctx context.Context, learnerID uuid.UUID, day time.Time, limit int) ([]*domain.MemorizationItem, error) {
	query := builder.
		Select(itemColumns).
		From("memorization_items").
		Where(sq.Eq{"learner_id": learnerID}).
		Where(sq.LtOrEq{"next_review_date": domain.DayOf(day)}).
		OrderBy(statusRankSQL, "created_at ASC").
		Limit(uint64(limit))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build due query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("get due items: %w", err)
	}
	defer rows.Close()

	items, err := scanItems(rows)
	if err != nil {
		return nil, fmt.Errorf("get due items: %w", err)
	}

	return items, nil
}

// ListByChapter returns all of a learner's items in one chapter, ordered by
// verse number.
func (r *Repo) ListByChapter(ctx context.Context, learnerID uuid.UUID, chapter int) ([]*domain.MemorizationItem, error) {
	query := builder.
		Select(itemColumns).
		From("memorization_items").
		Where(sq.Eq{"learner_id": learnerID, "chapter": chapter}).
		OrderBy("verse ASC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build chapter query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list chapter items: %w", err)
	}
	defer rows.Close()

	items, err := scanItems(rows)
	if err != nil {
		return nil, fmt.Errorf("list chapter items: %w", err)
	}

	return items, nil
}

// CountByStatus returns item counts grouped by status. Only non-zero groups
// are returned.
func (r *Repo) CountByStatus(ctx context.Context, learnerID uuid.UUID) ([]domain.StatusCount, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, countByStatusSQL, learnerID)
	if err != nil {
		return nil, fmt.Errorf("count items by status: %w", err)
	}
	defer rows.Close()

	counts := []domain.StatusCount{}
	for rows.Next() {
		var (
			status string
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		counts = append(counts, domain.StatusCount{Status: domain.ItemStatus(status), Count: count})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate status counts: %w", err)
	}

	return counts, nil
}

// CountDue returns the number of items due on or before the given day.
func (r *Repo) CountDue(ctx context.Context, learnerID uuid.UUID, day time.Time) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countDueSQL, learnerID, domain.DayOf(day)).Scan(&count); err != nil {
		return 0, fmt.Errorf("count due items: %w", err)
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanItem(row pgx.Row) (*domain.MemorizationItem, error) {
	var (
		item           domain.MemorizationItem
		status         string
		lastReviewDate *time.Time
	)

	if err := row.Scan(
		&item.ID, &item.LearnerID, &item.Chapter, &item.Verse,
		&item.IntervalDays, &item.EaseFactor, &item.Repetitions,
		&item.NextReviewDate, &lastReviewDate, &status,
		&item.CreatedAt, &item.UpdatedAt,
	); err != nil {
		return nil, err
	}

	item.Status = domain.ItemStatus(status)
	item.LastReviewDate = lastReviewDate

	return &item, nil
}

func scanItems(rows pgx.Rows) ([]*domain.MemorizationItem, error) {
	items := []*domain.MemorizationItem{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
