package hifz

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/heartmarshall/hifz-backend/internal/domain"
)

// GetProgress returns the learner's item counts by status and the number of
// items due today. A learner with no items gets an all-zero summary.
func (s *Service) GetProgress(ctx context.Context, learnerID uuid.UUID) (*domain.ProgressSummary, error) {
	counts, err := s.items.CountByStatus(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("count by status: %w", err)
	}
	due, err := s.items.CountDue(ctx, learnerID, domain.DayOf(s.now()))
	if err != nil {
		return nil, fmt.Errorf("count due: %w", err)
	}

	summary := &domain.ProgressSummary{DueToday: due}
	for _, c := range counts {
		summary.Total += c.Count
		switch c.Status {
		case domain.ItemStatusNew:
			summary.New = c.Count
		case domain.ItemStatusLearning:
			summary.Learning = c.Count
		case domain.ItemStatusReview:
			summary.Review = c.Count
		case domain.ItemStatusMature:
			summary.Mature = c.Count
		}
	}
	return summary, nil
}

// GetChapterProgress returns completion figures for one chapter. A verse
// counts as memorized once its item reaches REVIEW or MATURE.
func (s *Service) GetChapterProgress(ctx context.Context, learnerID uuid.UUID, input ChapterProgressInput) (*domain.ChapterProgress, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	items, err := s.items.ListByChapter(ctx, learnerID, input.Chapter)
	if err != nil {
		return nil, fmt.Errorf("list chapter items: %w", err)
	}

	total, _ := domain.ChapterVerseCount(input.Chapter)
	progress := &domain.ChapterProgress{
		Chapter:     input.Chapter,
		TotalVerses: total,
		Items:       items,
	}
	for _, item := range items {
		if item.Status == domain.ItemStatusReview || item.Status == domain.ItemStatusMature {
			progress.MemorizedVerses++
		}
	}
	if total > 0 {
		pct := float64(progress.MemorizedVerses) / float64(total) * 100
		progress.PercentComplete = math.Round(pct*100) / 100
	}
	return progress, nil
}
