// Package repository provides testify mocks for the persistence interfaces.
package repository

import (
	"context"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockNotificationRepository is a mock implementation of repository.NotificationRepository.
type MockNotificationRepository struct {
	mock.Mock
}

func NewMockNotificationRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockNotificationRepository {
	m := &MockNotificationRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockNotificationRepositoryExpecter struct {
	mock *mock.Mock
}

func (m *MockNotificationRepository) EXPECT() *MockNotificationRepositoryExpecter {
	return &MockNotificationRepositoryExpecter{mock: &m.Mock}
}

func (e *MockNotificationRepositoryExpecter) Create(ctx, notification interface{}) *mock.Call {
	return e.mock.On("Create", ctx, notification)
}

func (e *MockNotificationRepositoryExpecter) FindByID(ctx, id interface{}) *mock.Call {
	return e.mock.On("FindByID", ctx, id)
}

func (e *MockNotificationRepositoryExpecter) FindActiveByRecipient(ctx, recipientID interface{}) *mock.Call {
	return e.mock.On("FindActiveByRecipient", ctx, recipientID)
}

func (e *MockNotificationRepositoryExpecter) MarkDelivered(ctx, ids interface{}) *mock.Call {
	return e.mock.On("MarkDelivered", ctx, ids)
}

func (e *MockNotificationRepositoryExpecter) MarkRead(ctx, id interface{}) *mock.Call {
	return e.mock.On("MarkRead", ctx, id)
}

func (e *MockNotificationRepositoryExpecter) Deactivate(ctx, id interface{}) *mock.Call {
	return e.mock.On("Deactivate", ctx, id)
}

func (m *MockNotificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Notification), args.Error(1)
}

func (m *MockNotificationRepository) FindActiveByRecipient(ctx context.Context, recipientID uuid.UUID) ([]*entity.Notification, error) {
	args := m.Called(ctx, recipientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkDelivered(ctx context.Context, ids []uuid.UUID) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNotificationRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
