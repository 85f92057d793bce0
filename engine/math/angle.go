package math

import (
	"fmt"

	"github.com/chewxy/math32"
)

func AngleFromRadians(radians float32) Angle {
	return Angle{radians: radians}
}

func AngleFromDegrees(degrees float32) Angle {
	return Angle{radians: DegToRad(degrees)}
}

func (a Angle) Radians() float32 {
	return a.radians
}

func (a Angle) Degrees() float32 {
	return RadToDeg(a.radians)
}

func (a *Angle) SetRadians(radians float32) {
	a.radians = radians
}

func (a *Angle) SetDegrees(degrees float32) {
	a.radians = DegToRad(degrees)
}

/**
 * @brief Returns an equivalent angle in [-PI, PI]. PI itself stays PI.
 */
func (a Angle) WrapSigned() Angle {
	r := Mod(a.radians, K_PI_2)
	if r > K_PI {
		r -= K_PI_2
	} else if r < -K_PI {
		r += K_PI_2
	}
	return Angle{radians: r}
}

/**
 * @brief Returns an equivalent angle in [0, 2PI].
 */
func (a Angle) WrapUnsigned() Angle {
	r := Mod(a.radians, K_PI_2)
	if r < 0 {
		r += K_PI_2
	}
	return Angle{radians: r}
}

func (a Angle) Sin() float32  { return math32.Sin(a.radians) }
func (a Angle) Cos() float32  { return math32.Cos(a.radians) }
func (a Angle) Tan() float32  { return math32.Tan(a.radians) }
func (a Angle) Sinh() float32 { return math32.Sinh(a.radians) }
func (a Angle) Cosh() float32 { return math32.Cosh(a.radians) }
func (a Angle) Tanh() float32 { return math32.Tanh(a.radians) }

func AngleAsin(x float32) Angle  { return Angle{radians: math32.Asin(x)} }
func AngleAcos(x float32) Angle  { return Angle{radians: math32.Acos(x)} }
func AngleAtan(x float32) Angle  { return Angle{radians: math32.Atan(x)} }
func AngleAsinh(x float32) Angle { return Angle{radians: math32.Asinh(x)} }
func AngleAcosh(x float32) Angle { return Angle{radians: math32.Acosh(x)} }
func AngleAtanh(x float32) Angle { return Angle{radians: math32.Atanh(x)} }

func AngleAtan2(y, x float32) Angle {
	return Angle{radians: math32.Atan2(y, x)}
}

// AngleAtanVec2 returns the heading of v. The zero vector yields 0.
func AngleAtanVec2(v Vec2) Angle {
	return AngleAtan2(v.Y, v.X)
}

func (a Angle) Add(other Angle) Angle {
	return Angle{radians: a.radians + other.radians}
}

func (a Angle) Sub(other Angle) Angle {
	return Angle{radians: a.radians - other.radians}
}

func (a Angle) Neg() Angle {
	return Angle{radians: -a.radians}
}

func (a Angle) MulScalar(scalar float32) Angle {
	return Angle{radians: a.radians * scalar}
}

func (a Angle) DivScalar(scalar float32) Angle {
	return Angle{radians: a.radians / scalar}
}

func (a Angle) Abs() Angle {
	return Angle{radians: Abs(a.radians)}
}

func (a Angle) Clamp(low, high Angle) Angle {
	return Angle{radians: Clamp(a.radians, low.radians, high.radians)}
}

// Explement returns 2PI - a, the angle completing a to a full turn.
func (a Angle) Explement() Angle {
	return Angle{radians: K_PI_2 - a.radians}
}

// Supplement returns PI - a, the angle completing a to a half turn.
func (a Angle) Supplement() Angle {
	return Angle{radians: K_PI - a.radians}
}

func (a Angle) Approximately(other Angle) bool {
	return Approximately(a.radians, other.radians)
}

// Distance returns |a - other| without reducing to the shortest arc.
// Wrap both angles first when the angular distance is wanted.
func (a Angle) Distance(other Angle) Angle {
	return Angle{radians: Distance(a.radians, other.radians)}
}

func (a Angle) String() string {
	return fmt.Sprintf("%g°", a.Degrees())
}

// delta returns the span to interpolate across when moving from a to b.
func (a Angle) delta(b Angle, direction LerpDirection) float32 {
	if direction == LerpShortest {
		return b.Sub(a).WrapSigned().radians
	}
	return b.radians - a.radians
}

/**
 * @brief Interpolates from a to b with t clamped to [0, 1].
 *
 * @param b The target angle.
 * @param t The interpolation amount.
 * @param direction Shortest arc or direct numeric path.
 * @return The interpolated angle.
 */
func (a Angle) Lerp(b Angle, t float32, direction LerpDirection) Angle {
	return a.LerpUnclamped(b, Clamp01(t), direction)
}

func (a Angle) LerpUnclamped(b Angle, t float32, direction LerpDirection) Angle {
	return Angle{radians: a.radians + a.delta(b, direction)*t}
}

func (a Angle) LerpSmooth(b Angle, t float32, quality Quality, direction LerpDirection) Angle {
	return a.LerpUnclamped(b, Smooth(quality, Clamp01(t)), direction)
}

func (a Angle) LerpSmoothStep(b Angle, edge0, edge1, t float32, quality Quality, direction LerpDirection) Angle {
	return a.LerpUnclamped(b, SmoothStep(edge0, edge1, t, quality), direction)
}

func AngleBarycentric(a1, a2, a3 Angle, amount1, amount2 float32) Angle {
	return Angle{radians: Barycentric(a1.radians, a2.radians, a3.radians, amount1, amount2)}
}

func AngleCatmullRom(a1, a2, a3, a4 Angle, amount float32) Angle {
	return Angle{radians: CatmullRom(a1.radians, a2.radians, a3.radians, a4.radians, amount)}
}

func AngleHermite(a1, tangent1, a2, tangent2 Angle, amount float32) Angle {
	return Angle{radians: Hermite(a1.radians, tangent1.radians, a2.radians, tangent2.radians, amount)}
}

func AngleSmoothStep(edge0, edge1, value Angle, quality Quality) Angle {
	return Angle{radians: SmoothStep(edge0.radians, edge1.radians, value.radians, quality)}
}

/**
 * @brief Converts provided degrees to radians.
 *
 * @param degrees The degrees to be converted.
 * @return The amount in radians.
 */
func DegToRad(degrees float32) float32 {
	return degrees * K_DEG2RAD_MULTIPLIER
}

/**
 * @brief Converts provided radians to degrees.
 *
 * @param radians The radians to be converted.
 * @return The amount in degrees.
 */
func RadToDeg(radians float32) float32 {
	return radians * K_RAD2DEG_MULTIPLIER
}
