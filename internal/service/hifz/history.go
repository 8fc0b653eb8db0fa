package hifz

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/hifz-backend/internal/domain"
)

// ReviewHistory is one page of review log entries, newest first.
type ReviewHistory struct {
	Logs  []*domain.ReviewLog
	Total int
}

// GetReviewHistory returns a page of the review log for one item, newest
// first. A zero limit falls back to the configured default due limit.
func (s *Service) GetReviewHistory(ctx context.Context, learnerID uuid.UUID, input ReviewHistoryInput) (*ReviewHistory, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	key, err := domain.ParseVerseKey(input.VerseKey)
	if err != nil {
		return nil, err
	}

	item, err := s.items.GetByKey(ctx, learnerID, key)
	if err != nil {
		return nil, fmt.Errorf("get item %s: %w", key, err)
	}

	limit := input.Limit
	if limit == 0 {
		limit = s.cfg.DueLimitDefault
	}

	logs, total, err := s.reviews.GetByItemID(ctx, item.ID, limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("get review logs: %w", err)
	}
	return &ReviewHistory{Logs: logs, Total: total}, nil
}
