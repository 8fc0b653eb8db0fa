package domain

// ItemStatus represents the consolidation stage of a memorization item.
type ItemStatus string

const (
	ItemStatusNew      ItemStatus = "NEW"
	ItemStatusLearning ItemStatus = "LEARNING"
	ItemStatusReview   ItemStatus = "REVIEW"
	ItemStatusMature   ItemStatus = "MATURE"
)

func (s ItemStatus) String() string { return string(s) }

func (s ItemStatus) IsValid() bool {
	switch s {
	case ItemStatusNew, ItemStatusLearning, ItemStatusReview, ItemStatusMature:
		return true
	}
	return false
}

// Rank orders statuses for due-queue priority: less-consolidated items first.
func (s ItemStatus) Rank() int {
	switch s {
	case ItemStatusNew:
		return 0
	case ItemStatusLearning:
		return 1
	case ItemStatusReview:
		return 2
	case ItemStatusMature:
		return 3
	}
	return 4
}

// DeriveStatus computes the item status from its numeric scheduling state.
// It is the single source of truth for reclassification and must be applied
// after every mutation of repetitions/interval, not only on creation.
//
// A failed review resets repetitions to 0, which drives the status back to
// NEW (never LEARNING), even for previously mature items.
func DeriveStatus(repetitions, intervalDays int) ItemStatus {
	switch {
	case repetitions == 0:
		return ItemStatusNew
	case repetitions < 3:
		return ItemStatusLearning
	case intervalDays < MatureIntervalDays:
		return ItemStatusReview
	default:
		return ItemStatusMature
	}
}

// RewardInstruction tells the gamification collaborator what to award
// after a successful review. Delivery is best-effort.
type RewardInstruction string

const (
	RewardMemorizationCredit RewardInstruction = "MEMORIZATION_CREDIT"
	RewardPerfectRecallBonus RewardInstruction = "PERFECT_RECALL_BONUS"
)

func (r RewardInstruction) String() string { return string(r) }

func (r RewardInstruction) IsValid() bool {
	switch r {
	case RewardMemorizationCredit, RewardPerfectRecallBonus:
		return true
	}
	return false
}
