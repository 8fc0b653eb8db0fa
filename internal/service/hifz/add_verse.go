package hifz

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/hifz-backend/internal/domain"
)

// AddVerse registers a single verse for memorization. The new item starts in
// the NEW state with a 1-day interval and is due immediately. Adding a verse
// the learner already tracks is a no-op: the existing item is returned with
// its scheduling state untouched.
func (s *Service) AddVerse(ctx context.Context, learnerID uuid.UUID, input AddVerseInput) (*domain.MemorizationItem, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if count, ok := domain.ChapterVerseCount(input.Chapter); ok && input.Verse > count {
		return nil, domain.NewValidationError("verse",
			fmt.Sprintf("chapter %d has only %d verses", input.Chapter, count))
	}
	return s.addOne(ctx, learnerID, input.Chapter, input.Verse)
}

// AddRange registers a contiguous run of verses within one chapter. Each
// verse is created independently: a duplicate or failure on one verse does
// not block the rest. Returns the items in verse order, including those that
// already existed.
func (s *Service) AddRange(ctx context.Context, learnerID uuid.UUID, input AddRangeInput) ([]*domain.MemorizationItem, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	size := input.EndVerse - input.StartVerse + 1
	if size > s.cfg.MaxRangeSize {
		return nil, domain.NewValidationError("end_verse",
			fmt.Sprintf("range exceeds maximum size of %d verses", s.cfg.MaxRangeSize))
	}
	if count, ok := domain.ChapterVerseCount(input.Chapter); ok && input.EndVerse > count {
		return nil, domain.NewValidationError("end_verse",
			fmt.Sprintf("chapter %d has only %d verses", input.Chapter, count))
	}

	items := make([]*domain.MemorizationItem, 0, size)
	for v := input.StartVerse; v <= input.EndVerse; v++ {
		item, err := s.addOne(ctx, learnerID, input.Chapter, v)
		if err != nil {
			s.log.WarnContext(ctx, "failed to add verse in range",
				"chapter", input.Chapter,
				"verse", v,
				"error", err)
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// addOne creates one item, falling back to the existing row when another
// request won the insert race.
func (s *Service) addOne(ctx context.Context, learnerID uuid.UUID, chapter, verse int) (*domain.MemorizationItem, error) {
	now := s.now()
	item := &domain.MemorizationItem{
		ID:             uuid.New(),
		LearnerID:      learnerID,
		Chapter:        chapter,
		Verse:          verse,
		IntervalDays:   1,
		EaseFactor:     s.cfg.Scheduler.DefaultEaseFactor,
		Repetitions:    0,
		NextReviewDate: domain.DayOf(now),
		Status:         domain.ItemStatusNew,
	}

	created, err := s.items.Create(ctx, item)
	if err == nil {
		s.log.InfoContext(ctx, "verse added",
			"item_id", created.ID,
			"chapter", chapter,
			"verse", verse)
		return created, nil
	}
	if !errors.Is(err, domain.ErrAlreadyExists) {
		return nil, fmt.Errorf("create item %d:%d: %w", chapter, verse, err)
	}

	existing, err := s.items.GetByKey(ctx, learnerID, domain.VerseKey{Chapter: chapter, Verse: verse})
	if err != nil {
		return nil, fmt.Errorf("get existing item %d:%d: %w", chapter, verse, err)
	}
	return existing, nil
}
