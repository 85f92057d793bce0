package core

import (
	"sync"
	"time"
)

const AVG_COUNT uint8 = 30

// Metrics keeps a rolling average of sample times and the number of samples
// completed per second.
type Metrics struct {
	mutex sync.Mutex

	avgCounter    uint8
	msTimes       [AVG_COUNT]float64
	msAvg         float64
	samples       int32
	accumulatedMS float64
	rate          float64
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) Update(elapsed time.Duration) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	// Calculate sample ms average
	sampleMS := float64(elapsed) / float64(time.Millisecond)
	m.msTimes[m.avgCounter] = sampleMS
	if m.avgCounter == AVG_COUNT-1 {
		m.msAvg = 0
		for i := uint8(0); i < AVG_COUNT; i++ {
			m.msAvg += m.msTimes[i]
		}
		m.msAvg /= float64(AVG_COUNT)
	}
	m.avgCounter++
	m.avgCounter %= AVG_COUNT

	// Calculate samples per second.
	m.accumulatedMS += sampleMS
	if m.accumulatedMS > 1000 {
		m.rate = float64(m.samples)
		m.accumulatedMS -= 1000
		m.samples = 0
	}

	// Count all samples.
	m.samples++
}

// AverageMS is refreshed every AVG_COUNT updates; it reads zero until then.
func (m *Metrics) AverageMS() float64 {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.msAvg
}

func (m *Metrics) Rate() float64 {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.rate
}

func (m *Metrics) Snapshot() (float64, float64) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.rate, m.msAvg
}
