// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/pressure-drop-service/internal/domain/model"
	"github.com/guttosm/pressure-drop-service/internal/repository"
)

type MockSettingsRepositoryInterface struct {
	mock.Mock
}

func NewMockSettingsRepositoryInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSettingsRepositoryInterface {
	m := &MockSettingsRepositoryInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockSettingsRepositoryInterface) GetActive(ctx context.Context) (*repository.SettingsDocument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.SettingsDocument), args.Error(1)
}

func (m *MockSettingsRepositoryInterface) Create(ctx context.Context, settings model.CalculationSettings, createdBy string) (*repository.SettingsDocument, error) {
	args := m.Called(ctx, settings, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.SettingsDocument), args.Error(1)
}

func (m *MockSettingsRepositoryInterface) List(ctx context.Context, limit int) ([]repository.SettingsDocument, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.SettingsDocument), args.Error(1)
}

type MockLogsRepositoryInterface struct {
	mock.Mock
}

func NewMockLogsRepositoryInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLogsRepositoryInterface {
	m := &MockLogsRepositoryInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockLogsRepositoryInterface) Create(ctx context.Context, entry *repository.LogEntryDocument) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLogsRepositoryInterface) CreateMany(ctx context.Context, entries []*repository.LogEntryDocument) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockLogsRepositoryInterface) Query(ctx context.Context, opts repository.LogQueryOptions) ([]*repository.LogEntryDocument, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.LogEntryDocument), args.Error(1)
}

func (m *MockLogsRepositoryInterface) Count(ctx context.Context, opts repository.LogQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(int64), args.Error(1)
}
