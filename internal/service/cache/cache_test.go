//go:build !integration

package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/pressure-drop-service/internal/domain/model"
)

func testKey() Key {
	return Key{
		Pipeline: model.Pipeline{
			MassFlow:          10,
			Viscosity:         0.001,
			InnerDiameter:     0.1,
			AbsoluteRoughness: 0.00005,
			MarginFactor:      1.15,
			Density:           1000,
			PipeLength:        500,
			ElevationChange:   10,
			ElbowAndTee:       10,
			GlobeValve:        2,
			CheckValve:        1,
		},
		Settings: model.DefaultSettings(),
	}
}

func TestKey_HashIsStable(t *testing.T) {
	assert.Equal(t, testKey().Hash(), testKey().Hash())
}

func TestKey_HashChangesWithEveryField(t *testing.T) {
	base := testKey().Hash()

	mutations := map[string]func(*Key){
		"mass flow":       func(k *Key) { k.Pipeline.MassFlow = 11 },
		"viscosity":       func(k *Key) { k.Pipeline.Viscosity = 0.002 },
		"diameter":        func(k *Key) { k.Pipeline.InnerDiameter = 0.2 },
		"roughness":       func(k *Key) { k.Pipeline.AbsoluteRoughness = 0.0001 },
		"margin":          func(k *Key) { k.Pipeline.MarginFactor = 1 },
		"density":         func(k *Key) { k.Pipeline.Density = 800 },
		"length":          func(k *Key) { k.Pipeline.PipeLength = 100 },
		"elevation":       func(k *Key) { k.Pipeline.ElevationChange = -10 },
		"elbows":          func(k *Key) { k.Pipeline.ElbowAndTee = 9 },
		"globe valves":    func(k *Key) { k.Pipeline.GlobeValve = 3 },
		"check valves":    func(k *Key) { k.Pipeline.CheckValve = 0 },
		"gravity":         func(k *Key) { k.Settings.Gravity = 9.81 },
		"laminar formula": func(k *Key) { k.Settings.LaminarFormula = model.LaminarFormulaTextbook },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			k := testKey()
			mutate(&k)
			assert.NotEqual(t, base, k.Hash())
			assert.NotEqual(t, testKey(), k)
		})
	}
}

// TestCacheWithMetricsInterface is a compile-time check of the interface contract.
func TestCacheWithMetricsInterface(t *testing.T) {
	var c CacheWithMetrics = &mockCacheWithMetrics{}

	result, found := c.Get(testKey())
	assert.False(t, found)
	assert.Equal(t, model.PipelineResult{}, result)

	c.Set(testKey(), model.PipelineResult{PressureDrop: 210})
	assert.Equal(t, Metrics{}, c.Metrics())
	c.Stop()
}

type mockCache struct{}

func (m *mockCache) Get(key Key) (model.PipelineResult, bool) {
	return model.PipelineResult{}, false
}

func (m *mockCache) Set(key Key, value model.PipelineResult) {}

func (m *mockCache) Invalidate(key Key) {}

func (m *mockCache) Clear() {}

func (m *mockCache) Stop() {}

type mockCacheWithMetrics struct {
	mockCache
}

func (m *mockCacheWithMetrics) Metrics() Metrics {
	return Metrics{}
}
