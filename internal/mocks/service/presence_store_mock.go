package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPresenceStore is a mock implementation of service.PresenceStore.
type MockPresenceStore struct {
	mock.Mock
}

func NewMockPresenceStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPresenceStore {
	m := &MockPresenceStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockPresenceStoreExpecter struct {
	mock *mock.Mock
}

func (m *MockPresenceStore) EXPECT() *MockPresenceStoreExpecter {
	return &MockPresenceStoreExpecter{mock: &m.Mock}
}

func (e *MockPresenceStoreExpecter) SetOnline(ctx, userID, ttl interface{}) *mock.Call {
	return e.mock.On("SetOnline", ctx, userID, ttl)
}

func (e *MockPresenceStoreExpecter) Refresh(ctx, userID, ttl interface{}) *mock.Call {
	return e.mock.On("Refresh", ctx, userID, ttl)
}

func (e *MockPresenceStoreExpecter) SetOffline(ctx, userID interface{}) *mock.Call {
	return e.mock.On("SetOffline", ctx, userID)
}

func (e *MockPresenceStoreExpecter) IsOnline(ctx, userID interface{}) *mock.Call {
	return e.mock.On("IsOnline", ctx, userID)
}

func (m *MockPresenceStore) SetOnline(ctx context.Context, userID uuid.UUID, ttl time.Duration) error {
	args := m.Called(ctx, userID, ttl)
	return args.Error(0)
}

func (m *MockPresenceStore) Refresh(ctx context.Context, userID uuid.UUID, ttl time.Duration) error {
	args := m.Called(ctx, userID, ttl)
	return args.Error(0)
}

func (m *MockPresenceStore) SetOffline(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockPresenceStore) IsOnline(ctx context.Context, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}
