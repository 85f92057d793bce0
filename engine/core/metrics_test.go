package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetricsAverage(t *testing.T) {
	m := NewMetrics()
	for i := uint8(0); i < AVG_COUNT-1; i++ {
		m.Update(10 * time.Millisecond)
	}
	assert.Zero(t, m.AverageMS())

	m.Update(10 * time.Millisecond)
	assert.InDelta(t, 10, m.AverageMS(), 1e-9)

	for i := uint8(0); i < AVG_COUNT; i++ {
		m.Update(4 * time.Millisecond)
	}
	assert.InDelta(t, 4, m.AverageMS(), 1e-9)
}

func TestMetricsRate(t *testing.T) {
	m := NewMetrics()
	m.Update(400 * time.Millisecond)
	m.Update(400 * time.Millisecond)
	assert.Zero(t, m.Rate())

	m.Update(400 * time.Millisecond)
	rate, _ := m.Snapshot()
	assert.Equal(t, float64(2), rate)
}
