package hifz

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ rewardBridge = &rewardBridgeMock{}

type rewardBridgeMock struct {
	AwardMemorizationCreditFunc func(ctx context.Context, learnerID uuid.UUID) error
	AwardPerfectRecallBonusFunc func(ctx context.Context, learnerID uuid.UUID) error

	calls struct {
		AwardMemorizationCredit []struct {
			LearnerID uuid.UUID
		}
		AwardPerfectRecallBonus []struct {
			LearnerID uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *rewardBridgeMock) AwardMemorizationCredit(ctx context.Context, learnerID uuid.UUID) error {
	if mock.AwardMemorizationCreditFunc == nil {
		panic("rewardBridgeMock.AwardMemorizationCreditFunc: method is nil but rewardBridge.AwardMemorizationCredit was just called")
	}
	mock.lock.Lock()
	mock.calls.AwardMemorizationCredit = append(mock.calls.AwardMemorizationCredit, struct {
		LearnerID uuid.UUID
	}{learnerID})
	mock.lock.Unlock()
	return mock.AwardMemorizationCreditFunc(ctx, learnerID)
}

func (mock *rewardBridgeMock) AwardMemorizationCreditCalls() []struct {
	LearnerID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.AwardMemorizationCredit
}

func (mock *rewardBridgeMock) AwardPerfectRecallBonus(ctx context.Context, learnerID uuid.UUID) error {
	if mock.AwardPerfectRecallBonusFunc == nil {
		panic("rewardBridgeMock.AwardPerfectRecallBonusFunc: method is nil but rewardBridge.AwardPerfectRecallBonus was just called")
	}
	mock.lock.Lock()
	mock.calls.AwardPerfectRecallBonus = append(mock.calls.AwardPerfectRecallBonus, struct {
		LearnerID uuid.UUID
	}{learnerID})
	mock.lock.Unlock()
	return mock.AwardPerfectRecallBonusFunc(ctx, learnerID)
}

func (mock *rewardBridgeMock) AwardPerfectRecallBonusCalls() []struct {
	LearnerID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.AwardPerfectRecallBonus
}
