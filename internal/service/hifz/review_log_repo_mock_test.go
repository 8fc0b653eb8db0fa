package hifz

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/hifz-backend/internal/domain"
)

var _ reviewLogRepo = &reviewLogRepoMock{}

type reviewLogRepoMock struct {
	CreateFunc      func(ctx context.Context, log *domain.ReviewLog) (*domain.ReviewLog, error)
	GetByItemIDFunc func(ctx context.Context, itemID uuid.UUID, limit, offset int) ([]*domain.ReviewLog, int, error)

	calls struct {
		Create []struct {
			Log *domain.ReviewLog
		}
		GetByItemID []struct {
			ItemID uuid.UUID
			Limit  int
			Offset int
		}
	}
	lock sync.RWMutex
}

func (mock *reviewLogRepoMock) Create(ctx context.Context, log *domain.ReviewLog) (*domain.ReviewLog, error) {
	if mock.CreateFunc == nil {
		panic("reviewLogRepoMock.CreateFunc: method is nil but reviewLogRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Log *domain.ReviewLog
	}{log})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, log)
}

func (mock *reviewLogRepoMock) CreateCalls() []struct {
	Log *domain.ReviewLog
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *reviewLogRepoMock) GetByItemID(ctx context.Context, itemID uuid.UUID, limit, offset int) ([]*domain.ReviewLog, int, error) {
	if mock.GetByItemIDFunc == nil {
		panic("reviewLogRepoMock.GetByItemIDFunc: method is nil but reviewLogRepo.GetByItemID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByItemID = append(mock.calls.GetByItemID, struct {
		ItemID uuid.UUID
		Limit  int
		Offset int
	}{itemID, limit, offset})
	mock.lock.Unlock()
	return mock.GetByItemIDFunc(ctx, itemID, limit, offset)
}

func (mock *reviewLogRepoMock) GetByItemIDCalls() []struct {
	ItemID uuid.UUID
	Limit  int
	Offset int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByItemID
}
