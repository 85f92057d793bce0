package math

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireVec2Near(t *testing.T, want, got Vec2) {
	t.Helper()
	require.True(t, want.Compare(got, tolerance), "want %s, got %s", want, got)
}

func TestVec2Constructors(t *testing.T) {
	assert.Equal(t, Vec2{1, 2}, NewVec2(1, 2))
	assert.Equal(t, Vec2{}, NewVec2Zero())
	assert.Equal(t, Vec2{1, 1}, NewVec2One())
	assert.Equal(t, Vec2{0, 1}, NewVec2Up())
	assert.Equal(t, Vec2{0, -1}, NewVec2Down())
	assert.Equal(t, Vec2{-1, 0}, NewVec2Left())
	assert.Equal(t, Vec2{1, 0}, NewVec2Right())
	requireVec2Near(t, Vec2{0, 2}, NewVec2Polar(AngleFromDegrees(90), 2))
	requireVec2Near(t, Vec2{-3, 0}, NewVec2Polar(AngleFromRadians(K_PI), 3))

	var v Vec2
	v.Set(4, 5)
	assert.Equal(t, Vec2{4, 5}, v)
}

func TestVec2Arithmetic(t *testing.T) {
	a := NewVec2(1, 2)
	b := NewVec2(4, -8)
	assert.Equal(t, Vec2{5, -6}, a.Add(b))
	assert.Equal(t, Vec2{-3, 10}, a.Sub(b))
	assert.Equal(t, Vec2{4, -16}, a.Mul(b))
	assert.Equal(t, Vec2{0.25, -0.25}, a.Div(b))
	assert.Equal(t, Vec2{3, 6}, a.MulScalar(3))
	assert.Equal(t, Vec2{0.5, 1}, a.DivScalar(2))
	assert.Equal(t, Vec2{-1, -2}, a.Neg())
	assert.Equal(t, Vec2{4, 8}, b.Abs())
	assert.Equal(t, Vec2{1, -8}, a.Min(b))
	assert.Equal(t, Vec2{4, 2}, a.Max(b))
	assert.Equal(t, Vec2{2, 0}, NewVec2(5, -3).Clamp(Vec2{0, 0}, Vec2{2, 2}))
	assert.Equal(t, float32(-12), a.Dot(b))
}

func TestVec2Rounding(t *testing.T) {
	v := NewVec2(1.7, -1.5)
	assert.Equal(t, Vec2{1, -2}, v.Floor())
	assert.Equal(t, Vec2{2, -1}, v.Ceil())
	assert.Equal(t, Vec2{2, -2}, v.Round())
	assert.Equal(t, Vec2{1, -1}, v.Trunc())

	assert.Equal(t, IVec2{1, -1}, v.ToIVec2())
	assert.Equal(t, IVec2{1, -2}, v.FloorToInt())
	assert.Equal(t, IVec2{2, -1}, v.CeilToInt())
	assert.Equal(t, IVec2{2, -2}, v.RoundToInt())
	assert.Equal(t, IVec2{1, -1}, v.TruncToInt())
}

func TestVec2Conversions(t *testing.T) {
	v := NewVec2(1.5, -2)
	assert.Equal(t, Vec3{1.5, -2, 0}, v.ToVec3())
	assert.Equal(t, Vec4{1.5, -2, 0, 0}, v.ToVec4())
	assert.Equal(t, "(1.5, -2)", v.String())
}

func TestVec2Index(t *testing.T) {
	v := NewVec2(3, 4)
	x, err := v.At(0)
	require.NoError(t, err)
	assert.Equal(t, float32(3), x)
	y, err := v.At(1)
	require.NoError(t, err)
	assert.Equal(t, float32(4), y)

	_, err = v.At(2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))

	require.NoError(t, v.SetAt(1, 9))
	assert.Equal(t, float32(9), v.Y)
	assert.ErrorIs(t, v.SetAt(-1, 0), ErrIndexOutOfRange)
}

func TestVec2Normalize(t *testing.T) {
	v := NewVec2(3, 4)
	n := v.Normalized()
	requireVec2Near(t, Vec2{0.6, 0.8}, n)
	assert.InDelta(t, 1, n.Length(), 1e-6)
	requireVec2Near(t, n, n.Normalized())

	assert.Equal(t, Vec2{3, 4}, v, "Normalized must not modify the receiver")
	v.Normalize()
	requireVec2Near(t, n, v)
}

func TestVec2NormalizeZeroIsUnchanged(t *testing.T) {
	zero := NewVec2Zero()
	assert.Equal(t, NewVec2Zero(), zero.Normalized())

	zero.Normalize()
	assert.Equal(t, NewVec2Zero(), zero)

	tiny := NewVec2(1e-8, -1e-8)
	assert.Equal(t, tiny, tiny.Normalized())
}

func TestVec2Lengths(t *testing.T) {
	v := NewVec2(3, 4)
	assert.Equal(t, float32(25), v.LengthSquared())
	assert.Equal(t, float32(5), v.Length())
	assert.Equal(t, float32(5), NewVec2(1, 1).Distance(NewVec2(4, 5)))
	assert.Equal(t, float32(25), NewVec2(1, 1).DistanceSquared(NewVec2(4, 5)))
	requireVec2Near(t, Vec2{1.2, 1.6}, v.ClampLength(2))
	assert.Equal(t, v, v.ClampLength(10))
}

func TestVec2ProjectReject(t *testing.T) {
	v := NewVec2(2, 3)
	assert.Equal(t, Vec2{2, 0}, v.Project(NewVec2(1, 0)))
	assert.Equal(t, Vec2{2, 0}, v.Project(NewVec2(5, 0)))
	assert.Equal(t, Vec2{0, 3}, v.Reject(NewVec2(5, 0)))
	assert.Equal(t, Vec2{}, v.Project(NewVec2Zero()))
	assert.Equal(t, v, v.Reject(NewVec2Zero()))
}

func TestVec2ProjectOntoShortNormal(t *testing.T) {
	v := NewVec2(1, 1)
	short := NewVec2(0.0005, 0)
	requireVec2Near(t, short.Normalized(), v.Project(short))
	requireVec2Near(t, Vec2{1, 0}, v.Project(short))
	requireVec2Near(t, Vec2{0, 1}, v.Reject(short))

	assert.Equal(t, Vec2{}, v.Project(NewVec2(1e-7, 0)))
}

func TestVec2Reflect(t *testing.T) {
	assert.Equal(t, Vec2{1, 1}, NewVec2(1, -1).Reflect(NewVec2Up()))

	n := NewVec2(1, 1).Normalized()
	vectors := []Vec2{{1, -1}, {3, 0.5}, {-2, -7}, {0, 0}}
	for _, v := range vectors {
		r := v.Reflect(n)
		assert.InDelta(t, -v.Dot(n), r.Dot(n), 1e-5, "v=%s", v)
		assert.InDelta(t, v.Length(), r.Length(), 1e-5, "v=%s", v)
	}
}

func TestVec2Refract(t *testing.T) {
	t.Run("total internal reflection yields zero", func(t *testing.T) {
		got := NewVec2(1, 0).Refract(NewVec2Up(), 1.5, 1)
		assert.Equal(t, NewVec2Zero(), got)
	})
	t.Run("matching indices pass straight through", func(t *testing.T) {
		v := NewVec2(1, -1).Normalized()
		requireVec2Near(t, v, v.Refract(NewVec2Up(), 1, 1))
	})
	t.Run("head-on ray is not bent", func(t *testing.T) {
		requireVec2Near(t, Vec2{0, -1}, NewVec2(0, -1).Refract(NewVec2Up(), 0.5, 1))
	})
}

func TestVec2Rotate(t *testing.T) {
	requireVec2Near(t, Vec2{0, 1}, NewVec2Right().Rotate(K_HALF_PI))
	requireVec2Near(t, Vec2{-1, 0}, NewVec2Right().RotateAngle(AngleFromDegrees(180)))
	requireVec2Near(t, Vec2{1, 2}, NewVec2(2, 1).RotateAround(NewVec2(1, 1), AngleFromDegrees(90)))
	assert.Equal(t, Vec2{-2, 1}, NewVec2(1, 2).Perpendicular())
}

func TestVec2AngleBetween(t *testing.T) {
	assert.InDelta(t, K_HALF_PI, NewVec2Right().AngleBetween(NewVec2(0, 5)).Radians(), 1e-6)
	assert.InDelta(t, K_PI, NewVec2Right().AngleBetween(NewVec2Left()).Radians(), 1e-6)
	assert.Equal(t, float32(0), NewVec2Right().AngleBetween(NewVec2Zero()).Radians())
}

func TestVec2Lerp(t *testing.T) {
	a := NewVec2(1, 2)
	b := NewVec2(3, -4)

	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
	assert.Equal(t, Vec2{2, -1}, a.Lerp(b, 0.5))
	assert.Equal(t, b, a.Lerp(b, 2))
	assert.Equal(t, a, a.Lerp(b, -1))
	assert.Equal(t, Vec2{5, -10}, a.LerpUnclamped(b, 2))

	for _, q := range qualities {
		assert.Equal(t, a, a.LerpSmooth(b, 0, q), q.String())
		assert.Equal(t, b, a.LerpSmooth(b, 1, q), q.String())
		assert.Equal(t, b, a.LerpSmooth(b, 3, q), q.String())
	}
	requireVec2Near(t, a.Lerp(b, 0.15625), a.LerpSmooth(b, 0.25, QualityLow))

	assert.Equal(t, a, a.LerpSmoothStep(b, 10, 20, 0, QualityMedium))
	assert.Equal(t, b, a.LerpSmoothStep(b, 10, 20, 30, QualityMedium))
	requireVec2Near(t, Vec2{2, -1}, a.LerpSmoothStep(b, 10, 20, 15, QualityMedium))
}

func TestVec2Splines(t *testing.T) {
	v1, v2, v3, v4 := NewVec2(0, 0), NewVec2(1, 2), NewVec2(2, 4), NewVec2(3, 6)

	requireVec2Near(t, v2, Vec2CatmullRom(v1, v2, v3, v4, 0))
	requireVec2Near(t, v3, Vec2CatmullRom(v1, v2, v3, v4, 1))
	requireVec2Near(t, Vec2{1.5, 3}, Vec2CatmullRom(v1, v2, v3, v4, 0.5))

	assert.Equal(t, v1, Vec2Hermite(v1, v4, v2, v4, 0))
	assert.Equal(t, v2, Vec2Hermite(v1, v4, v2, v4, 1))

	assert.Equal(t, v1, Vec2Barycentric(v1, v2, v3, 0, 0))
	assert.Equal(t, v2, Vec2Barycentric(v1, v2, v3, 1, 0))
	assert.Equal(t, v3, Vec2Barycentric(v1, v2, v3, 0, 1))

	got := Vec2SmoothStep(NewVec2(0, 10), NewVec2(1, 20), NewVec2(0.5, 25), QualityLow)
	requireVec2Near(t, Vec2{0.5, 1}, got)
}

func TestVec2Approximately(t *testing.T) {
	assert.True(t, NewVec2(1, 2).Approximately(NewVec2(1+1e-7, 2)))
	assert.False(t, NewVec2(1, 2).Approximately(NewVec2(1.01, 2)))
	assert.True(t, NewVec2(1, 2).Compare(NewVec2(1.05, 1.95), 0.1))
	assert.False(t, NewVec2(1, 2).Compare(NewVec2(1.05, 1.8), 0.1))
}
