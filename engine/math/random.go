package math

import (
	"github.com/chewxy/math32"
	"golang.org/x/exp/rand"
)

// NewRandom returns a generator seeded with seed. Sampling functions take the
// generator explicitly so that results are reproducible.
func NewRandom(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func randomRange(r *rand.Rand, low, high float32) float32 {
	return low + r.Float32()*(high-low)
}

// RandomAngle returns an angle uniformly distributed in [0, 2PI).
func RandomAngle(r *rand.Rand) Angle {
	return AngleFromRadians(r.Float32() * K_PI_2)
}

// RandomVec2OnUnitCircle returns a uniformly distributed unit vector.
func RandomVec2OnUnitCircle(r *rand.Rand) Vec2 {
	return NewVec2Polar(RandomAngle(r), 1)
}

// RandomVec2InUnitCircle returns a point uniformly distributed inside the unit disc.
func RandomVec2InUnitCircle(r *rand.Rand) Vec2 {
	return NewVec2Polar(RandomAngle(r), Sqrt(r.Float32()))
}

/**
 * @brief Returns a uniformly distributed unit vector. The z coordinate is
 * uniform on [-1, 1], which is uniform over the sphere's surface.
 */
func RandomVec3OnUnitSphere(r *rand.Rand) Vec3 {
	z := randomRange(r, -1, 1)
	radius := Sqrt(1 - z*z)
	xy := NewVec2Polar(RandomAngle(r), radius)
	return Vec3{xy.X, xy.Y, z}
}

// RandomVec3InUnitSphere returns a point uniformly distributed inside the unit ball.
func RandomVec3InUnitSphere(r *rand.Rand) Vec3 {
	dir := RandomVec3OnUnitSphere(r)
	radius := math32.Cbrt(r.Float32())
	return dir.MulScalar(radius)
}

// RandomIVec2InRange returns a vector with each component in [low, high] inclusive.
func RandomIVec2InRange(r *rand.Rand, low, high IVec2) IVec2 {
	return IVec2{
		low.X + r.Intn(high.X-low.X+1),
		low.Y + r.Intn(high.Y-low.Y+1),
	}
}
