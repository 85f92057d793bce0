package math

import (
	"github.com/chewxy/math32"
)

const (
	/** @brief An approximate representation of PI. */
	K_PI float32 = 3.14159265358979323846
	/** @brief An approximate representation of PI multiplied by 2. */
	K_PI_2 float32 = 2.0 * K_PI
	/** @brief An approximate representation of PI divided by 2. */
	K_HALF_PI float32 = 0.5 * K_PI
	/** @brief An approximate representation of PI divided by 4. */
	K_QUARTER_PI float32 = 0.25 * K_PI
	/** @brief A multiplier used to convert degrees to radians. */
	K_DEG2RAD_MULTIPLIER float32 = K_PI / 180.0
	/** @brief A multiplier used to convert radians to degrees. */
	K_RAD2DEG_MULTIPLIER float32 = 180.0 / K_PI
	/** @brief Smallest positive number where 1.0 + FLOAT_EPSILON != 0 */
	K_FLOAT_EPSILON float32 = 1.192092896e-07
	/** @brief Absolute and relative tolerance used by Approximately. */
	K_APPROX_TOLERANCE float32 = 1e-6
)

// The scalar kernel below is what every vector and angle operation is built
// on. Everything stays in float32; math32 avoids the float64 round trips.

func Abs(x float32) float32 {
	return math32.Abs(x)
}

func Sqrt(x float32) float32 {
	return math32.Sqrt(x)
}

func Sin(x float32) float32 {
	return math32.Sin(x)
}

func Cos(x float32) float32 {
	return math32.Cos(x)
}

func Tan(x float32) float32 {
	return math32.Tan(x)
}

func Floor(x float32) float32 {
	return math32.Floor(x)
}

func Ceil(x float32) float32 {
	return math32.Ceil(x)
}

// Round rounds half away from zero.
func Round(x float32) float32 {
	return math32.Round(x)
}

func Trunc(x float32) float32 {
	return math32.Trunc(x)
}

// Mod returns the floating-point remainder of x/y. The result has the sign of
// x, like C's fmod.
func Mod(x, y float32) float32 {
	return math32.Mod(x, y)
}

func FloorToInt(x float32) int {
	return int(math32.Floor(x))
}

func CeilToInt(x float32) int {
	return int(math32.Ceil(x))
}

func RoundToInt(x float32) int {
	return int(math32.Round(x))
}

func TruncToInt(x float32) int {
	return int(x)
}

/**
 * @brief Compares two floats using a tolerance that is absolute near zero and
 * relative to the magnitude of the operands elsewhere.
 *
 * @param a The first value.
 * @param b The second value.
 * @return True if the values are approximately equal.
 */
func Approximately(a, b float32) bool {
	scale := math32.Max(math32.Abs(a), math32.Abs(b))
	return math32.Abs(b-a) <= math32.Max(K_APPROX_TOLERANCE*scale, K_APPROX_TOLERANCE)
}

// Distance returns |a - b|.
func Distance(a, b float32) float32 {
	return math32.Abs(a - b)
}

// Lerp interpolates between a and b with t clamped to [0, 1].
func Lerp(a, b, t float32) float32 {
	return LerpUnclamped(a, b, Clamp01(t))
}

// LerpUnclamped interpolates between a and b. Values of t outside [0, 1]
// extrapolate.
func LerpUnclamped(a, b, t float32) float32 {
	return a + (b-a)*t
}

/**
 * @brief Maps x from [edge0, edge1] onto [0, 1] and eases the result with the
 * curve selected by quality. When both edges are equal the function is a step
 * at edge0.
 *
 * @param edge0 The lower edge.
 * @param edge1 The upper edge.
 * @param x The value to map.
 * @param quality The easing curve.
 * @return The eased value in [0, 1].
 */
func SmoothStep(edge0, edge1, x float32, quality Quality) float32 {
	if edge0 == edge1 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	return Smooth(quality, Clamp01((x-edge0)/(edge1-edge0)))
}

/**
 * @brief Performs a Hermite spline interpolation.
 *
 * @param v1 The first position.
 * @param tangent1 The tangent at the first position.
 * @param v2 The second position.
 * @param tangent2 The tangent at the second position.
 * @param amount The weighting factor.
 * @return The interpolated value.
 */
func Hermite(v1, tangent1, v2, tangent2, amount float32) float32 {
	if amount == 0 {
		return v1
	}
	if amount == 1 {
		return v2
	}
	s := amount
	s2 := s * s
	s3 := s2 * s
	return (2*v1-2*v2+tangent2+tangent1)*s3 +
		(3*v2-3*v1-2*tangent1-tangent2)*s2 +
		tangent1*s +
		v1
}

/**
 * @brief Performs a Catmull-Rom interpolation using the specified positions.
 * The curve passes through v2 at amount 0 and v3 at amount 1.
 *
 * @param v1 The first position.
 * @param v2 The second position.
 * @param v3 The third position.
 * @param v4 The fourth position.
 * @param amount The weighting factor.
 * @return The interpolated value.
 */
func CatmullRom(v1, v2, v3, v4, amount float32) float32 {
	s := amount
	s2 := s * s
	s3 := s2 * s
	return 0.5 * (2*v2 +
		(v3-v1)*s +
		(2*v1-5*v2+4*v3-v4)*s2 +
		(3*v2-v1-3*v3+v4)*s3)
}

// Barycentric returns v1 + (v2-v1)*amount1 + (v3-v1)*amount2. The weights are
// not validated, so points outside the triangle extrapolate.
func Barycentric(v1, v2, v3, amount1, amount2 float32) float32 {
	return v1 + (v2-v1)*amount1 + (v3-v1)*amount2
}
