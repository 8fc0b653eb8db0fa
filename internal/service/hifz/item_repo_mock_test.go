package hifz

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/hifz-backend/internal/domain"
)

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	GetByKeyFunc          func(ctx context.Context, learnerID uuid.UUID, key domain.VerseKey) (*domain.MemorizationItem, error)
	GetByKeyForUpdateFunc func(ctx context.Context, learnerID uuid.UUID, key domain.VerseKey) (*domain.MemorizationItem, error)
	CreateFunc            func(ctx context.Context, item *domain.MemorizationItem) (*domain.MemorizationItem, error)
	UpdateSchedulingFunc  func(ctx context.Context, learnerID, itemID uuid.UUID, params domain.SchedulingUpdate) (*domain.MemorizationItem, error)
	GetDueFunc            func(ctx context.Context, learnerID uuid.UUID, day time.Time, limit int) ([]*domain.MemorizationItem, error)
	ListByChapterFunc     func(ctx context.Context, learnerID uuid.UUID, chapter int) ([]*domain.MemorizationItem, error)
	CountByStatusFunc     func(ctx context.Context, learnerID uuid.UUID) ([]domain.StatusCount, error)
	CountDueFunc          func(ctx context.Context, learnerID uuid.UUID, day time.Time) (int, error)

	calls struct {
		GetByKey []struct {
			LearnerID uuid.UUID
			Key       domain.VerseKey
		}
		GetByKeyForUpdate []struct {
			LearnerID uuid.UUID
			Key       domain.VerseKey
		}
		Create []struct {
			Item *domain.MemorizationItem
		}
		UpdateScheduling []struct {
			LearnerID uuid.UUID
			ItemID    uuid.UUID
			Params    domain.SchedulingUpdate
		}
		GetDue []struct {
			LearnerID uuid.UUID
			Day       time.Time
			Limit     int
		}
		ListByChapter []struct {
			LearnerID uuid.UUID
			Chapter   int
		}
		CountByStatus []struct {
			LearnerID uuid.UUID
		}
		CountDue []struct {
			LearnerID uuid.UUID
			Day       time.Time
		}
	}
	lock sync.RWMutex
}

func (mock *itemRepoMock) GetByKey(ctx context.Context, learnerID uuid.UUID, key domain.VerseKey) (*domain.MemorizationItem, error) {
	if mock.GetByKeyFunc == nil {
		panic("itemRepoMock.GetByKeyFunc: method is nil but itemRepo.GetByKey was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByKey = append(mock.calls.GetByKey, struct {
		LearnerID uuid.UUID
		Key       domain.VerseKey
	}{learnerID, key})
	mock.lock.Unlock()
	return mock.GetByKeyFunc(ctx, learnerID, key)
}

func (mock *itemRepoMock) GetByKeyCalls() []struct {
	LearnerID uuid.UUID
	Key       domain.VerseKey
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByKey
}

func (mock *itemRepoMock) GetByKeyForUpdate(ctx context.Context, learnerID uuid.UUID, key domain.VerseKey) (*domain.MemorizationItem, error) {
	if mock.GetByKeyForUpdateFunc == nil {
		panic("itemRepoMock.GetByKeyForUpdateFunc: method is nil but itemRepo.GetByKeyForUpdate was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByKeyForUpdate = append(mock.calls.GetByKeyForUpdate, struct {
		LearnerID uuid.UUID
		Key       domain.VerseKey
	}{learnerID, key})
	mock.lock.Unlock()
	return mock.GetByKeyForUpdateFunc(ctx, learnerID, key)
}

func (mock *itemRepoMock) GetByKeyForUpdateCalls() []struct {
	LearnerID uuid.UUID
	Key       domain.VerseKey
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByKeyForUpdate
}

func (mock *itemRepoMock) Create(ctx context.Context, item *domain.MemorizationItem) (*domain.MemorizationItem, error) {
	if mock.CreateFunc == nil {
		panic("itemRepoMock.CreateFunc: method is nil but itemRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Item *domain.MemorizationItem
	}{item})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, item)
}

func (mock *itemRepoMock) CreateCalls() []struct {
	Item *domain.MemorizationItem
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *itemRepoMock) UpdateScheduling(ctx context.Context, learnerID, itemID uuid.UUID, params domain.SchedulingUpdate) (*domain.MemorizationItem, error) {
	if mock.UpdateSchedulingFunc == nil {
		panic("itemRepoMock.UpdateSchedulingFunc: method is nil but itemRepo.UpdateScheduling was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateScheduling = append(mock.calls.UpdateScheduling, struct {
		LearnerID uuid.UUID
		ItemID    uuid.UUID
		Params    domain.SchedulingUpdate
	}{learnerID, itemID, params})
	mock.lock.Unlock()
	return mock.UpdateSchedulingFunc(ctx, learnerID, itemID, params)
}

func (mock *itemRepoMock) UpdateSchedulingCalls() []struct {
	LearnerID uuid.UUID
	ItemID    uuid.UUID
	Params    domain.SchedulingUpdate
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdateScheduling
}

func (mock *itemRepoMock) GetDue(ctx context.Context, learnerID uuid.UUID, day time.Time, limit int) ([]*domain.MemorizationItem, error) {
	if mock.GetDueFunc == nil {
		panic("itemRepoMock.GetDueFunc: method is nil but itemRepo.GetDue was just called")
	}
	mock.lock.Lock()
	mock.calls.GetDue = append(mock.calls.GetDue, struct {
		LearnerID uuid.UUID
		Day       time.Time
		Limit     int
	}{learnerID, day, limit})
	mock.lock.Unlock()
	return mock.GetDueFunc(ctx, learnerID, day, limit)
}

func (mock *itemRepoMock) GetDueCalls() []struct {
	LearnerID uuid.UUID
	Day       time.Time
	Limit     int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetDue
}

func (mock *itemRepoMock) ListByChapter(ctx context.Context, learnerID uuid.UUID, chapter int) ([]*domain.MemorizationItem, error) {
	if mock.ListByChapterFunc == nil {
		panic("itemRepoMock.ListByChapterFunc: method is nil but itemRepo.ListByChapter was just called")
	}
	mock.lock.Lock()
	mock.calls.ListByChapter = append(mock.calls.ListByChapter, struct {
		LearnerID uuid.UUID
		Chapter   int
	}{learnerID, chapter})
	mock.lock.Unlock()
	return mock.ListByChapterFunc(ctx, learnerID, chapter)
}

func (mock *itemRepoMock) ListByChapterCalls() []struct {
	LearnerID uuid.UUID
	Chapter   int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListByChapter
}

func (mock *itemRepoMock) CountByStatus(ctx context.Context, learnerID uuid.UUID) ([]domain.StatusCount, error) {
	if mock.CountByStatusFunc == nil {
		panic("itemRepoMock.CountByStatusFunc: method is nil but itemRepo.CountByStatus was just called")
	}
	mock.lock.Lock()
	mock.calls.CountByStatus = append(mock.calls.CountByStatus, struct {
		LearnerID uuid.UUID
	}{learnerID})
	mock.lock.Unlock()
	return mock.CountByStatusFunc(ctx, learnerID)
}

func (mock *itemRepoMock) CountByStatusCalls() []struct {
	LearnerID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CountByStatus
}

func (mock *itemRepoMock) CountDue(ctx context.Context, learnerID uuid.UUID, day time.Time) (int, error) {
	if mock.CountDueFunc == nil {
		panic("itemRepoMock.CountDueFunc: method is nil but itemRepo.CountDue was just called")
	}
	mock.lock.Lock()
	mock.calls.CountDue = append(mock.calls.CountDue, struct {
		LearnerID uuid.UUID
		Day       time.Time
	}{learnerID, day})
	mock.lock.Unlock()
	return mock.CountDueFunc(ctx, learnerID, day)
}

func (mock *itemRepoMock) CountDueCalls() []struct {
	LearnerID uuid.UUID
	Day       time.Time
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CountDue
}
