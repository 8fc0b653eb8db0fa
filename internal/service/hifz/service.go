package hifz

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/hifz-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type itemRepo interface {
	GetByKey(ctx context.Context, learnerID uuid.UUID, key domain.VerseKey) (*domain.MemorizationItem, error)
	GetByKeyForUpdate(ctx context.Context, learnerID uuid.UUID, key domain.VerseKey) (*domain.MemorizationItem, error)
	Create(ctx context.Context, item *domain.MemorizationItem) (*domain.MemorizationItem, error)
	UpdateScheduling(ctx context.Context, learnerID, itemID uuid.UUID, params domain.SchedulingUpdate) (*domain.MemorizationItem, error)
	GetDue(ctx context.Context, learnerID uuid.UUID, day time.Time, limit int) ([]*domain.MemorizationItem, error)
	ListByChapter(ctx context.Context, learnerID uuid.UUID, chapter int) ([]*domain.MemorizationItem, error)
	CountByStatus(ctx context.Context, learnerID uuid.UUID) ([]domain.StatusCount, error)
	CountDue(ctx context.Context, learnerID uuid.UUID, day time.Time) (int, error)
}

type reviewLogRepo interface {
	Create(ctx context.Context, log *domain.ReviewLog) (*domain.ReviewLog, error)
	GetByItemID(ctx context.Context, itemID uuid.UUID, limit, offset int) ([]*domain.ReviewLog, int, error)
}

// rewardBridge is the outbound XP/goal collaborator. Calls are best-effort:
// the schedule mutation is already committed when they are issued, and
// failures are logged, never propagated.
type rewardBridge interface {
	AwardMemorizationCredit(ctx context.Context, learnerID uuid.UUID) error
	AwardPerfectRecallBonus(ctx context.Context, learnerID uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Config holds the service-level scheduler parameters and query limits.
type Config struct {
	Scheduler       domain.SchedulerConfig
	DueLimitDefault int
	DueLimitMax     int
	MaxRangeSize    int
}

// Service implements the memorization-scheduler business logic.
type Service struct {
	items   itemRepo
	reviews reviewLogRepo
	rewards rewardBridge
	tx      txManager
	log     *slog.Logger
	cfg     Config

	// now is swappable in tests; defaults to time.Now.
	now func() time.Time
}

// NewService creates a new Hifz service.
func NewService(
	log *slog.Logger,
	items itemRepo,
	reviews reviewLogRepo,
	rewards rewardBridge,
	tx txManager,
	cfg Config,
) *Service {
	return &Service{
		items:   items,
		reviews: reviews,
		rewards: rewards,
		tx:      tx,
		log:     log.With("service", "hifz"),
		cfg:     cfg,
		now:     time.Now,
	}
}
