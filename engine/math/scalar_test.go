package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance float32 = 1e-5

func TestApproximately(t *testing.T) {
	tests := []struct {
		name string
		a, b float32
		want bool
	}{
		{"equal", 1, 1, true},
		{"tiny absolute difference near zero", 0, 5e-7, true},
		{"absolute difference near zero", 0, 1e-5, false},
		{"relative difference on large values", 1e6, 1e6 + 0.5, true},
		{"clearly different", 1, 1.1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Approximately(tt.a, tt.b))
			assert.Equal(t, tt.want, Approximately(tt.b, tt.a))
		})
	}
}

func TestModKeepsSignOfDividend(t *testing.T) {
	assert.InDelta(t, 1.0, Mod(7, 3), 1e-6)
	assert.InDelta(t, -1.0, Mod(-7, 3), 1e-6)
	assert.InDelta(t, 0.5, Mod(2.5, 1), 1e-6)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 3, Clamp(5, 0, 3))
	assert.Equal(t, 0, Clamp(-5, 0, 3))
	assert.Equal(t, float32(0.25), Clamp01(float32(0.25)))
	assert.Equal(t, float32(1), Clamp01(float32(4)))
	assert.Equal(t, float32(0), Clamp01(float32(-4)))
}

func TestRoundingToInt(t *testing.T) {
	tests := []struct {
		in                       float32
		floor, ceil, round, trnc int
	}{
		{1.5, 1, 2, 2, 1},
		{-1.5, -2, -1, -2, -1},
		{2.4, 2, 3, 2, 2},
		{-2.6, -3, -2, -3, -2},
		{3, 3, 3, 3, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.floor, FloorToInt(tt.in), "floor(%v)", tt.in)
		assert.Equal(t, tt.ceil, CeilToInt(tt.in), "ceil(%v)", tt.in)
		assert.Equal(t, tt.round, RoundToInt(tt.in), "round(%v)", tt.in)
		assert.Equal(t, tt.trnc, TruncToInt(tt.in), "trunc(%v)", tt.in)
	}
}

func TestLerpScalar(t *testing.T) {
	assert.Equal(t, float32(2), Lerp(2, 6, 0))
	assert.Equal(t, float32(6), Lerp(2, 6, 1))
	assert.Equal(t, float32(4), Lerp(2, 6, 0.5))
	assert.Equal(t, float32(6), Lerp(2, 6, 3))
	assert.Equal(t, float32(14), LerpUnclamped(2, 6, 3))
	assert.Equal(t, float32(-2), LerpUnclamped(2, 6, -1))
}

func TestSmoothStep(t *testing.T) {
	assert.Equal(t, float32(0), SmoothStep(1, 3, 0, QualityLow))
	assert.Equal(t, float32(1), SmoothStep(1, 3, 5, QualityLow))
	assert.InDelta(t, 0.5, SmoothStep(1, 3, 2, QualityLow), 1e-6)
	assert.InDelta(t, 0.5, SmoothStep(1, 3, 2, QualityLinear), 1e-6)
	assert.InDelta(t, 0.25, SmoothStep(0, 4, 1, QualityLinear), 1e-6)
}

func TestSmoothStepDegenerateEdges(t *testing.T) {
	assert.Equal(t, float32(0), SmoothStep(2, 2, 1, QualityMedium))
	assert.Equal(t, float32(1), SmoothStep(2, 2, 2, QualityMedium))
	assert.Equal(t, float32(1), SmoothStep(2, 2, 3, QualityMedium))
}

func TestSplineKernels(t *testing.T) {
	t.Run("hermite endpoints", func(t *testing.T) {
		assert.Equal(t, float32(1), Hermite(1, 5, 3, -2, 0))
		assert.Equal(t, float32(3), Hermite(1, 5, 3, -2, 1))
	})
	t.Run("hermite with zero tangents is smoothstep", func(t *testing.T) {
		assert.InDelta(t, 0.5, Hermite(0, 0, 1, 0, 0.5), 1e-6)
		assert.InDelta(t, Smooth(QualityLow, 0.25), Hermite(0, 0, 1, 0, 0.25), 1e-6)
	})
	t.Run("catmull-rom passes through inner points", func(t *testing.T) {
		assert.InDelta(t, 2, CatmullRom(1, 2, 4, 8, 0), 1e-6)
		assert.InDelta(t, 4, CatmullRom(1, 2, 4, 8, 1), 1e-6)
	})
	t.Run("catmull-rom on a line stays on the line", func(t *testing.T) {
		assert.InDelta(t, 2.5, CatmullRom(1, 2, 3, 4, 0.5), 1e-6)
	})
	t.Run("barycentric corners", func(t *testing.T) {
		assert.Equal(t, float32(1), Barycentric(1, 5, 9, 0, 0))
		assert.Equal(t, float32(5), Barycentric(1, 5, 9, 1, 0))
		assert.Equal(t, float32(9), Barycentric(1, 5, 9, 0, 1))
	})
	t.Run("barycentric extrapolates", func(t *testing.T) {
		assert.Equal(t, float32(13), Barycentric(1, 5, 9, 1, 1))
	})
}

func TestDegreeRadianConversion(t *testing.T) {
	require.InDelta(t, K_PI, DegToRad(180), 1e-6)
	require.InDelta(t, 90, RadToDeg(K_HALF_PI), 1e-4)
	require.InDelta(t, 1.0, Distance(3, 4), 1e-6)
}
