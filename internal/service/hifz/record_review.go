package hifz

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/hifz-backend/internal/domain"
)

const rewardDeliveryTimeout = 5 * time.Second

// RecordReview applies a review outcome to an item. The item is locked,
// rescheduled with the SM-2 update engine and the review is logged, all in
// one transaction. Reward instructions are delivered only after the commit
// succeeds; delivery failures are logged and never surfaced to the caller.
func (s *Service) RecordReview(ctx context.Context, learnerID uuid.UUID, input RecordReviewInput) (*domain.ReviewResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	key, err := domain.ParseVerseKey(input.VerseKey)
	if err != nil {
		return nil, err
	}

	now := s.now()
	var updated *domain.MemorizationItem

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		item, err := s.items.GetByKeyForUpdate(ctx, learnerID, key)
		if err != nil {
			return fmt.Errorf("get item %s: %w", key, err)
		}

		out := CalculateReview(ReviewInput{
			IntervalDays: item.IntervalDays,
			EaseFactor:   item.EaseFactor,
			Repetitions:  item.Repetitions,
			Quality:      input.Quality,
			Now:          now,
			Config:       s.cfg.Scheduler,
		})

		updated, err = s.items.UpdateScheduling(ctx, learnerID, item.ID, domain.SchedulingUpdate{
			IntervalDays:   out.IntervalDays,
			EaseFactor:     out.EaseFactor,
			Repetitions:    out.Repetitions,
			Status:         out.Status,
			NextReviewDate: out.NextReviewDate,
			LastReviewDate: now,
		})
		if err != nil {
			return fmt.Errorf("update scheduling: %w", err)
		}

		_, err = s.reviews.Create(ctx, &domain.ReviewLog{
			ID:               uuid.New(),
			ItemID:           item.ID,
			LearnerID:        learnerID,
			Quality:          input.Quality,
			PrevIntervalDays: item.IntervalDays,
			PrevEaseFactor:   item.EaseFactor,
			PrevRepetitions:  item.Repetitions,
			PrevStatus:       item.Status,
			ReviewedAt:       now,
		})
		if err != nil {
			return fmt.Errorf("create review log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "review recorded",
		"item_id", updated.ID,
		"quality", input.Quality,
		"interval_days", updated.IntervalDays,
		"status", updated.Status)

	result := &domain.ReviewResult{Item: updated}
	if input.Quality >= 3 {
		result.Rewards = append(result.Rewards, domain.RewardMemorizationCredit)
	}
	if input.Quality == 5 {
		result.Rewards = append(result.Rewards, domain.RewardPerfectRecallBonus)
	}
	s.deliverRewards(ctx, learnerID, result.Rewards)

	return result, nil
}

// deliverRewards sends reward instructions to the gamification collaborator.
// The context is detached from the request so a client disconnect after
// commit cannot cancel delivery.
func (s *Service) deliverRewards(ctx context.Context, learnerID uuid.UUID, rewards []domain.RewardInstruction) {
	if len(rewards) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), rewardDeliveryTimeout)
	defer cancel()

	for _, r := range rewards {
		var err error
		switch r {
		case domain.RewardMemorizationCredit:
			err = s.rewards.AwardMemorizationCredit(ctx, learnerID)
		case domain.RewardPerfectRecallBonus:
			err = s.rewards.AwardPerfectRecallBonus(ctx, learnerID)
		}
		if err != nil {
			s.log.WarnContext(ctx, "reward delivery failed",
				"reward", r,
				"learner_id", learnerID,
				"error", err)
		}
	}
}
