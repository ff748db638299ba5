// Package service provides testify mocks for the domain service interfaces.
package service

import (
	"context"

	domainservice "beacon/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockFabric is a mock implementation of service.Fabric.
type MockFabric struct {
	mock.Mock
}

func NewMockFabric(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFabric {
	m := &MockFabric{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockFabricExpecter struct {
	mock *mock.Mock
}

func (m *MockFabric) EXPECT() *MockFabricExpecter {
	return &MockFabricExpecter{mock: &m.Mock}
}

func (e *MockFabricExpecter) Publish(ctx, topic, payload interface{}) *mock.Call {
	return e.mock.On("Publish", ctx, topic, payload)
}

func (e *MockFabricExpecter) Subscribe(ctx, topic interface{}) *mock.Call {
	return e.mock.On("Subscribe", ctx, topic)
}

func (e *MockFabricExpecter) Close() *mock.Call {
	return e.mock.On("Close")
}

func (m *MockFabric) Publish(ctx context.Context, topic string, payload []byte) error {
	args := m.Called(ctx, topic, payload)
	return args.Error(0)
}

func (m *MockFabric) Subscribe(ctx context.Context, topic string) (domainservice.Subscription, error) {
	args := m.Called(ctx, topic)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domainservice.Subscription), args.Error(1)
}

func (m *MockFabric) Close() error {
	args := m.Called()
	return args.Error(0)
}
