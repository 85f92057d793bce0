package math

import "fmt"

/**
 * @brief Creates and returns a new 2-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @return A new 2-element vector.
 */
func NewVec2(x, y float32) Vec2 {
	return Vec2{
		X: x,
		Y: y,
	}
}

/**
 * @brief Creates a 2-component vector from polar coordinates.
 *
 * @param angle The heading, measured counter-clockwise from +X.
 * @param radius The distance from the origin.
 * @return A new 2-element vector.
 */
func NewVec2Polar(angle Angle, radius float32) Vec2 {
	return Vec2{angle.Cos() * radius, angle.Sin() * radius}
}

/**
 * @brief Creates and returns a 2-component vector with all components set to 0.0f.
 */
func NewVec2Zero() Vec2 {
	return Vec2{X: 0.0, Y: 0.0}
}

/**
 * @brief Creates and returns a 2-component vector with all components set to 1.0f.
 */
func NewVec2One() Vec2 {
	return Vec2{1.0, 1.0}
}

/**
 * @brief Creates and returns a 2-component vector pointing up (0, 1).
 */
func NewVec2Up() Vec2 {
	return Vec2{0.0, 1.0}
}

/**
 * @brief Creates and returns a 2-component vector pointing down (0, -1).
 */
func NewVec2Down() Vec2 {
	return Vec2{0.0, -1.0}
}

/**
 * @brief Creates and returns a 2-component vector pointing left (-1, 0).
 */
func NewVec2Left() Vec2 {
	return Vec2{-1.0, 0.0}
}

/**
 * @brief Creates and returns a 2-component vector pointing right (1, 0).
 */
func NewVec2Right() Vec2 {
	return Vec2{1.0, 0.0}
}

func (v *Vec2) Set(x, y float32) {
	v.X = x
	v.Y = y
}

// At returns the component at index i (0 = X, 1 = Y).
func (v Vec2) At(i int) (float32, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	}
	return 0, indexError(i, 2)
}

func (v *Vec2) SetAt(i int, value float32) error {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	default:
		return indexError(i, 2)
	}
	return nil
}

/**
 *  Adds other to v and returns a copy of the result.
 */
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

/**
 * Subtracts other from v and returns a copy of the result.
 */
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

/**
 *  Multiplies v by other and returns a copy of the result.
 */
func (v Vec2) Mul(other Vec2) Vec2 {
	return Vec2{v.X * other.X, v.Y * other.Y}
}

/**
 * Divides v by other and returns a copy of the result.
 */
func (v Vec2) Div(other Vec2) Vec2 {
	return Vec2{v.X / other.X, v.Y / other.Y}
}

func (v Vec2) MulScalar(scalar float32) Vec2 {
	return Vec2{v.X * scalar, v.Y * scalar}
}

func (v Vec2) DivScalar(scalar float32) Vec2 {
	return Vec2{v.X / scalar, v.Y / scalar}
}

func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Y}
}

func (v Vec2) Abs() Vec2 {
	return Vec2{Abs(v.X), Abs(v.Y)}
}

func (v Vec2) Min(other Vec2) Vec2 {
	return Vec2{min(v.X, other.X), min(v.Y, other.Y)}
}

func (v Vec2) Max(other Vec2) Vec2 {
	return Vec2{max(v.X, other.X), max(v.Y, other.Y)}
}

// Clamp clamps each component against the matching components of low and high.
func (v Vec2) Clamp(low, high Vec2) Vec2 {
	return Vec2{Clamp(v.X, low.X, high.X), Clamp(v.Y, low.Y, high.Y)}
}

func (v Vec2) Floor() Vec2 { return Vec2{Floor(v.X), Floor(v.Y)} }
func (v Vec2) Ceil() Vec2  { return Vec2{Ceil(v.X), Ceil(v.Y)} }
func (v Vec2) Round() Vec2 { return Vec2{Round(v.X), Round(v.Y)} }
func (v Vec2) Trunc() Vec2 { return Vec2{Trunc(v.X), Trunc(v.Y)} }

/**
 * Returns the squared length of the provided vector.
 */
func (v Vec2) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

/**
 * @brief Returns the length of the provided vector.
 *
 * @param vector The vector to retrieve the length of.
 * @return The length.
 */
func (v Vec2) Length() float32 {
	return Sqrt(v.LengthSquared())
}

/**
 * Normalizes the vector in place to a unit vector. A vector whose length is
 * approximately zero is left unchanged.
 */
func (v *Vec2) Normalize() {
	length := v.Length()
	if Approximately(length, 0) {
		return
	}
	v.X /= length
	v.Y /= length
}

/**
 * @brief Returns a normalized copy of the supplied vector.
 *
 * @return A normalized copy of the vector, or the vector itself when its
 * length is approximately zero.
 */
func (v Vec2) Normalized() Vec2 {
	v.Normalize()
	return v
}

func (v Vec2) Dot(other Vec2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// Perpendicular returns v rotated a quarter turn counter-clockwise.
func (v Vec2) Perpendicular() Vec2 {
	return Vec2{-v.Y, v.X}
}

/**
 * @brief Projects v onto onNormal.
 *
 * @param onNormal The direction to project onto. Need not be unit length.
 * @return The projection, or the zero vector when onNormal is degenerate.
 */
func (v Vec2) Project(onNormal Vec2) Vec2 {
	sqrLen := onNormal.LengthSquared()
	// same degeneracy rule as Normalize, applied to the length
	if Approximately(Sqrt(sqrLen), 0) {
		return Vec2{}
	}
	return onNormal.MulScalar(v.Dot(onNormal) / sqrLen)
}

// Reject returns the part of v orthogonal to onNormal.
func (v Vec2) Reject(onNormal Vec2) Vec2 {
	return v.Sub(v.Project(onNormal))
}

/**
 * @brief Reflects v off the plane defined by onNormal. The normal is expected
 * to be unit length and is not renormalized.
 */
func (v Vec2) Reflect(onNormal Vec2) Vec2 {
	return v.Sub(onNormal.MulScalar(2 * v.Dot(onNormal)))
}

/**
 * @brief Refracts v through the surface defined by onNormal.
 *
 * @param onNormal The unit surface normal.
 * @param ior The ratio of refraction indices, used as is.
 * @param iot Reserved; the ratio is taken from ior alone.
 * @return The refracted vector, or the zero vector on total internal reflection.
 */
func (v Vec2) Refract(onNormal Vec2, ior, iot float32) Vec2 {
	dotNI := onNormal.Dot(v)
	k := 1 - ior*ior*(1-dotNI*dotNI)
	if k < 0 {
		return Vec2{}
	}
	return v.MulScalar(ior).Sub(onNormal.MulScalar(ior*dotNI + Sqrt(k)))
}

/**
 * @brief Returns the distance between v and other.
 */
func (v Vec2) Distance(other Vec2) float32 {
	return v.Sub(other).Length()
}

func (v Vec2) DistanceSquared(other Vec2) float32 {
	return v.Sub(other).LengthSquared()
}

// AngleBetween returns the unsigned angle between v and other, or zero when
// either is degenerate.
func (v Vec2) AngleBetween(other Vec2) Angle {
	denom := Sqrt(v.LengthSquared() * other.LengthSquared())
	if Approximately(denom, 0) {
		return Angle{}
	}
	return AngleAcos(Clamp(v.Dot(other)/denom, -1, 1))
}

// ClampLength returns v scaled down so that its length does not exceed maxLength.
func (v Vec2) ClampLength(maxLength float32) Vec2 {
	sqrLen := v.LengthSquared()
	if sqrLen > maxLength*maxLength {
		return v.MulScalar(maxLength / Sqrt(sqrLen))
	}
	return v
}

// Rotate rotates v counter-clockwise by radians around the origin.
func (v Vec2) Rotate(radians float32) Vec2 {
	s, c := Sin(radians), Cos(radians)
	return Vec2{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

func (v Vec2) RotateAngle(angle Angle) Vec2 {
	return v.Rotate(angle.Radians())
}

// RotateAround rotates v around origin by angle.
func (v Vec2) RotateAround(origin Vec2, angle Angle) Vec2 {
	return v.Sub(origin).RotateAngle(angle).Add(origin)
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 *
 * @param other The second vector.
 * @param tolerance The difference tolerance. Typically K_FLOAT_EPSILON or similar.
 * @return True if within tolerance; otherwise false.
 */
func (v Vec2) Compare(other Vec2, tolerance float32) bool {
	if Abs(v.X-other.X) > tolerance {
		return false
	}
	if Abs(v.Y-other.Y) > tolerance {
		return false
	}
	return true
}

func (v Vec2) Approximately(other Vec2) bool {
	return Approximately(v.X, other.X) && Approximately(v.Y, other.Y)
}

func (v Vec2) Lerp(other Vec2, t float32) Vec2 {
	return v.LerpUnclamped(other, Clamp01(t))
}

func (v Vec2) LerpUnclamped(other Vec2, t float32) Vec2 {
	return Vec2{
		LerpUnclamped(v.X, other.X, t),
		LerpUnclamped(v.Y, other.Y, t),
	}
}

func (v Vec2) LerpSmooth(other Vec2, t float32, quality Quality) Vec2 {
	return v.LerpUnclamped(other, Smooth(quality, Clamp01(t)))
}

func (v Vec2) LerpSmoothStep(other Vec2, edge0, edge1, t float32, quality Quality) Vec2 {
	return v.LerpUnclamped(other, SmoothStep(edge0, edge1, t, quality))
}

func Vec2Barycentric(v1, v2, v3 Vec2, amount1, amount2 float32) Vec2 {
	return Vec2{
		Barycentric(v1.X, v2.X, v3.X, amount1, amount2),
		Barycentric(v1.Y, v2.Y, v3.Y, amount1, amount2),
	}
}

func Vec2CatmullRom(v1, v2, v3, v4 Vec2, amount float32) Vec2 {
	return Vec2{
		CatmullRom(v1.X, v2.X, v3.X, v4.X, amount),
		CatmullRom(v1.Y, v2.Y, v3.Y, v4.Y, amount),
	}
}

func Vec2Hermite(v1, tangent1, v2, tangent2 Vec2, amount float32) Vec2 {
	return Vec2{
		Hermite(v1.X, tangent1.X, v2.X, tangent2.X, amount),
		Hermite(v1.Y, tangent1.Y, v2.Y, tangent2.Y, amount),
	}
}

func Vec2SmoothStep(edge0, edge1, value Vec2, quality Quality) Vec2 {
	return Vec2{
		SmoothStep(edge0.X, edge1.X, value.X, quality),
		SmoothStep(edge0.Y, edge1.Y, value.Y, quality),
	}
}

// ToVec3 widens v, setting Z to zero.
func (v Vec2) ToVec3() Vec3 {
	return Vec3{v.X, v.Y, 0}
}

// ToVec4 widens v, setting Z and W to zero.
func (v Vec2) ToVec4() Vec4 {
	return Vec4{v.X, v.Y, 0, 0}
}

// ToIVec2 truncates each component toward zero. This is the implicit
// float-to-int conversion; use the rounding variants to pick a policy.
func (v Vec2) ToIVec2() IVec2 {
	return IVec2{TruncToInt(v.X), TruncToInt(v.Y)}
}

func (v Vec2) CeilToInt() IVec2  { return IVec2{CeilToInt(v.X), CeilToInt(v.Y)} }
func (v Vec2) FloorToInt() IVec2 { return IVec2{FloorToInt(v.X), FloorToInt(v.Y)} }
func (v Vec2) RoundToInt() IVec2 { return IVec2{RoundToInt(v.X), RoundToInt(v.Y)} }
func (v Vec2) TruncToInt() IVec2 { return IVec2{TruncToInt(v.X), TruncToInt(v.Y)} }

func (v Vec2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}
