package repository

import (
	"context"
	"time"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockProfileRepository is a mock implementation of repository.ProfileRepository.
type MockProfileRepository struct {
	mock.Mock
}

func NewMockProfileRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProfileRepository {
	m := &MockProfileRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockProfileRepositoryExpecter struct {
	mock *mock.Mock
}

func (m *MockProfileRepository) EXPECT() *MockProfileRepositoryExpecter {
	return &MockProfileRepositoryExpecter{mock: &m.Mock}
}

func (e *MockProfileRepositoryExpecter) FindByUserID(ctx, userID interface{}) *mock.Call {
	return e.mock.On("FindByUserID", ctx, userID)
}

func (e *MockProfileRepositoryExpecter) UpdateLastOnline(ctx, userID, at interface{}) *mock.Call {
	return e.mock.On("UpdateLastOnline", ctx, userID, at)
}

func (m *MockProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UserProfile), args.Error(1)
}

func (m *MockProfileRepository) UpdateLastOnline(ctx context.Context, userID uuid.UUID, at time.Time) error {
	args := m.Called(ctx, userID, at)
	return args.Error(0)
}
