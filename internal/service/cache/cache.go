// Package cache defines the result cache contract for the calculator.
package cache

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"github.com/guttosm/pressure-drop-service/internal/domain/model"
)

// Key identifies one calculation: the SI pipeline record plus the settings it
// was evaluated with. Both are comparable value types.
type Key struct {
	Pipeline model.Pipeline
	Settings model.CalculationSettings
}

// Hash returns a 64-bit FNV-1a hash of every field in the key.
func (k Key) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for _, v := range []float64{
		k.Pipeline.MassFlow,
		k.Pipeline.Viscosity,
		k.Pipeline.InnerDiameter,
		k.Pipeline.AbsoluteRoughness,
		k.Pipeline.MarginFactor,
		k.Pipeline.Density,
		k.Pipeline.PipeLength,
		k.Pipeline.ElevationChange,
		k.Settings.Gravity,
	} {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = h.Write(buf[:])
	}
	for _, n := range []int{k.Pipeline.ElbowAndTee, k.Pipeline.GlobeValve, k.Pipeline.CheckValve} {
		binary.LittleEndian.PutUint64(buf[:], uint64(n))
		_, _ = h.Write(buf[:])
	}
	_, _ = h.Write([]byte(k.Settings.LaminarFormula))
	return h.Sum64()
}

// Cache defines the interface for cache operations.
type Cache interface {
	Get(key Key) (model.PipelineResult, bool)
	Set(key Key, value model.PipelineResult)
	Invalidate(key Key)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
