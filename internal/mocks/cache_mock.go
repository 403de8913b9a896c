// Code generated manually. DO NOT EDIT.

package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/guttosm/pressure-drop-service/internal/domain/model"
	"github.com/guttosm/pressure-drop-service/internal/service/cache"
)

type MockCache struct {
	mock.Mock
}

func NewMockCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCache {
	m := &MockCache{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCache) Get(key cache.Key) (model.PipelineResult, bool) {
	args := m.Called(key)
	return args.Get(0).(model.PipelineResult), args.Bool(1)
}

func (m *MockCache) Set(key cache.Key, value model.PipelineResult) {
	m.Called(key, value)
}

func (m *MockCache) Invalidate(key cache.Key) {
	m.Called(key)
}

func (m *MockCache) Clear() {
	m.Called()
}

func (m *MockCache) Stop() {
	m.Called()
}
