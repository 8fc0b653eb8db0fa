package gamification

import (
	"context"

	"github.com/google/uuid"
)

// Noop is a reward bridge that silently discards all awards. Used when no
// gamification base URL is configured.
type Noop struct{}

func (Noop) AwardMemorizationCredit(context.Context, uuid.UUID) error { return nil }

func (Noop) AwardPerfectRecallBonus(context.Context, uuid.UUID) error { return nil }
