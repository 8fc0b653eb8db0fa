package hifz

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/hifz-backend/internal/domain"
)

// GetDueReviews returns the items due for review today, less-consolidated
// items first and insertion order within a status. An unset limit falls back
// to the configured default; an explicit limit of zero or less yields an
// empty batch without touching the store. Limits above the configured
// maximum are capped.
func (s *Service) GetDueReviews(ctx context.Context, learnerID uuid.UUID, input GetDueInput) ([]*domain.MemorizationItem, error) {
	limit := s.cfg.DueLimitDefault
	if input.Limit != nil {
		limit = *input.Limit
	}
	if limit <= 0 {
		return []*domain.MemorizationItem{}, nil
	}
	if limit > s.cfg.DueLimitMax {
		limit = s.cfg.DueLimitMax
	}

	items, err := s.items.GetDue(ctx, learnerID, domain.DayOf(s.now()), limit)
	if err != nil {
		return nil, fmt.Errorf("get due items: %w", err)
	}
	return items, nil
}
