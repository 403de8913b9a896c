// Code generated manually. DO NOT EDIT.

package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/guttosm/pressure-drop-service/internal/domain/model"
)

type MockPressureDropCalculator struct {
	mock.Mock
}

func NewMockPressureDropCalculator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPressureDropCalculator {
	m := &MockPressureDropCalculator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPressureDropCalculator) Calculate(p model.Pipeline) (model.PipelineResult, error) {
	args := m.Called(p)
	return args.Get(0).(model.PipelineResult), args.Error(1)
}

func (m *MockPressureDropCalculator) CalculateWithSettings(p model.Pipeline, settings model.CalculationSettings) (model.PipelineResult, error) {
	args := m.Called(p, settings)
	return args.Get(0).(model.PipelineResult), args.Error(1)
}

func (m *MockPressureDropCalculator) Settings() model.CalculationSettings {
	args := m.Called()
	return args.Get(0).(model.CalculationSettings)
}

func (m *MockPressureDropCalculator) SetSettings(settings model.CalculationSettings) error {
	args := m.Called(settings)
	return args.Error(0)
}

func (m *MockPressureDropCalculator) InvalidateCache() {
	m.Called()
}
