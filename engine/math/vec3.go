package math

import "fmt"

/**
 * @brief Creates and returns a new 3-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @param z The z value.
 * @return A new 3-element vector.
 */
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 0.0f.
 */
func NewVec3Zero() Vec3 {
	return Vec3{0.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 1.0f.
 */
func NewVec3One() Vec3 {
	return Vec3{1.0, 1.0, 1.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing up (0, 1, 0).
 */
func NewVec3Up() Vec3 {
	return Vec3{0.0, 1.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing down (0, -1, 0).
 */
func NewVec3Down() Vec3 {
	return Vec3{0.0, -1.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing left (-1, 0, 0).
 */
func NewVec3Left() Vec3 {
	return Vec3{-1.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing right (1, 0, 0).
 */
func NewVec3Right() Vec3 {
	return Vec3{1.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing forward (0, 0, -1).
 */
func NewVec3Forward() Vec3 {
	return Vec3{0.0, 0.0, -1.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing backward (0, 0, 1).
 */
func NewVec3Back() Vec3 {
	return Vec3{0.0, 0.0, 1.0}
}

func (v *Vec3) Set(x, y, z float32) {
	v.X = x
	v.Y = y
	v.Z = z
}

// At returns the component at index i (0 = X, 1 = Y, 2 = Z).
func (v Vec3) At(i int) (float32, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	case 2:
		return v.Z, nil
	}
	return 0, indexError(i, 3)
}

func (v *Vec3) SetAt(i int, value float32) error {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	case 2:
		v.Z = value
	default:
		return indexError(i, 3)
	}
	return nil
}

/**
 * @brief Adds other to v and returns a copy of the result.
 *
 * @param other The second vector.
 * @return The resulting vector.
 */
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{
		v.X + other.X,
		v.Y + other.Y,
		v.Z + other.Z}
}

/**
 * @brief Subtracts other from v and returns a copy of the result.
 *
 * @param other The second vector.
 * @return The resulting vector.
 */
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{
		v.X - other.X,
		v.Y - other.Y,
		v.Z - other.Z}
}

/**
 * @brief Multiplies v by other componentwise and returns a copy of the result.
 */
func (v Vec3) Mul(other Vec3) Vec3 {
	return Vec3{
		v.X * other.X,
		v.Y * other.Y,
		v.Z * other.Z}
}

/**
 * @brief Multiplies all elements of v by scalar and returns a copy of the result.
 *
 * @param scalar The scalar value.
 * @return A copy of the resulting vector.
 */
func (v Vec3) MulScalar(scalar float32) Vec3 {
	return Vec3{
		v.X * scalar,
		v.Y * scalar,
		v.Z * scalar}
}

/**
 * @brief Divides v by other componentwise and returns a copy of the result.
 */
func (v Vec3) Div(other Vec3) Vec3 {
	return Vec3{
		v.X / other.X,
		v.Y / other.Y,
		v.Z / other.Z}
}

func (v Vec3) DivScalar(scalar float32) Vec3 {
	return Vec3{v.X / scalar, v.Y / scalar, v.Z / scalar}
}

func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

func (v Vec3) Abs() Vec3 {
	return Vec3{Abs(v.X), Abs(v.Y), Abs(v.Z)}
}

func (v Vec3) Min(other Vec3) Vec3 {
	return Vec3{min(v.X, other.X), min(v.Y, other.Y), min(v.Z, other.Z)}
}

func (v Vec3) Max(other Vec3) Vec3 {
	return Vec3{max(v.X, other.X), max(v.Y, other.Y), max(v.Z, other.Z)}
}

func (v Vec3) Clamp(low, high Vec3) Vec3 {
	return Vec3{
		Clamp(v.X, low.X, high.X),
		Clamp(v.Y, low.Y, high.Y),
		Clamp(v.Z, low.Z, high.Z)}
}

func (v Vec3) Floor() Vec3 { return Vec3{Floor(v.X), Floor(v.Y), Floor(v.Z)} }
func (v Vec3) Ceil() Vec3  { return Vec3{Ceil(v.X), Ceil(v.Y), Ceil(v.Z)} }
func (v Vec3) Round() Vec3 { return Vec3{Round(v.X), Round(v.Y), Round(v.Z)} }
func (v Vec3) Trunc() Vec3 { return Vec3{Trunc(v.X), Trunc(v.Y), Trunc(v.Z)} }

/**
 * @brief Returns the squared length of the provided vector.
 *
 * @return The squared length.
 */
func (v Vec3) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

/**
 * @brief Returns the length of the provided vector.
 *
 * @return The length.
 */
func (v Vec3) Length() float32 {
	return Sqrt(v.LengthSquared())
}

/**
 * @brief Normalizes the vector in place to a unit vector. A vector whose
 * length is approximately zero is left unchanged.
 */
func (v *Vec3) Normalize() {
	length := v.Length()
	if Approximately(length, 0) {
		return
	}
	v.X /= length
	v.Y /= length
	v.Z /= length
}

/**
 * @brief Returns a normalized copy of the supplied vector.
 *
 * @return A normalized copy of the vector, or the vector itself when its
 * length is approximately zero.
 */
func (v Vec3) Normalized() Vec3 {
	v.Normalize()
	return v
}

/**
 * @brief Returns the dot product between the provided vectors. Typically used
 * to calculate the difference in direction.
 *
 * @param other The second vector.
 * @return The dot product.
 */
func (v Vec3) Dot(other Vec3) float32 {
	p := float32(0)
	p += v.X * other.X
	p += v.Y * other.Y
	p += v.Z * other.Z
	return p
}

/**
 * @brief Calculates and returns the right-handed cross product of the supplied
 * vectors. The cross product is a new vector which is orthogonal to both
 * provided vectors.
 *
 * @param other The second vector.
 * @return The cross product.
 */
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X}
}

/**
 * @brief Projects v onto onNormal.
 *
 * @param onNormal The direction to project onto. Need not be unit length.
 * @return The projection, or the zero vector when onNormal is degenerate.
 */
func (v Vec3) Project(onNormal Vec3) Vec3 {
	sqrLen := onNormal.LengthSquared()
	// same degeneracy rule as Normalize, applied to the length
	if Approximately(Sqrt(sqrLen), 0) {
		return Vec3{}
	}
	return onNormal.MulScalar(v.Dot(onNormal) / sqrLen)
}

// Reject returns the part of v orthogonal to onNormal.
func (v Vec3) Reject(onNormal Vec3) Vec3 {
	return v.Sub(v.Project(onNormal))
}

/**
 * @brief Reflects v off the plane defined by onNormal. The normal is expected
 * to be unit length and is not renormalized.
 */
func (v Vec3) Reflect(onNormal Vec3) Vec3 {
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
func (v Vec3) Refract(onNormal Vec3, ior, iot float32) Vec3 {
	dotNI := onNormal.Dot(v)
	k := 1 - ior*ior*(1-dotNI*dotNI)
	if k < 0 {
		return Vec3{}
	}
	return v.MulScalar(ior).Sub(onNormal.MulScalar(ior*dotNI + Sqrt(k)))
}

/**
 * @brief Returns the distance between v and other.
 *
 * @param other The second vector.
 * @return The distance between v and other.
 */
func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

func (v Vec3) DistanceSquared(other Vec3) float32 {
	return v.Sub(other).LengthSquared()
}

// AngleBetween returns the unsigned angle between v and other, or zero when
// either is degenerate.
func (v Vec3) AngleBetween(other Vec3) Angle {
	denom := Sqrt(v.LengthSquared() * other.LengthSquared())
	if Approximately(denom, 0) {
		return Angle{}
	}
	return AngleAcos(Clamp(v.Dot(other)/denom, -1, 1))
}

// ClampLength returns v scaled down so that its length does not exceed maxLength.
func (v Vec3) ClampLength(maxLength float32) Vec3 {
	sqrLen := v.LengthSquared()
	if sqrLen > maxLength*maxLength {
		return v.MulScalar(maxLength / Sqrt(sqrLen))
	}
	return v
}

/**
 * @brief Rotates v around the origin by per-axis angles in radians. The
 * rotation about X is applied first, then Y, then Z.
 *
 * @param angles The rotation around each axis.
 * @return The rotated vector.
 */
func (v Vec3) Rotate(angles Vec3) Vec3 {
	return v.Transform(NewMat4EulerXYZ(angles.X, angles.Y, angles.Z))
}

// RotateAround rotates v around origin by per-axis angles, see Rotate.
func (v Vec3) RotateAround(origin, angles Vec3) Vec3 {
	m := NewMat4Translation(origin.Neg()).
		Mul(NewMat4EulerXYZ(angles.X, angles.Y, angles.Z)).
		Mul(NewMat4Translation(origin))
	return v.Transform(m)
}

/**
 * @brief Transform v by m. NOTE: It is assumed by this function that the
 * vector v is a point, not a direction, and is calculated as if a w component
 * with a value of 1.0f is there.
 *
 * @param m The matrix to transform by.
 * @return A transformed copy of v.
 */
func (v Vec3) Transform(m Mat4) Vec3 {
	out := Vec3{}
	out.X = v.X*m.Data[0+0] + v.Y*m.Data[4+0] + v.Z*m.Data[8+0] + 1.0*m.Data[12+0]
	out.Y = v.X*m.Data[0+1] + v.Y*m.Data[4+1] + v.Z*m.Data[8+1] + 1.0*m.Data[12+1]
	out.Z = v.X*m.Data[0+2] + v.Y*m.Data[4+2] + v.Z*m.Data[8+2] + 1.0*m.Data[12+2]
	return out
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 *
 * @param other The second vector.
 * @param tolerance The difference tolerance. Typically K_FLOAT_EPSILON or similar.
 * @return True if within tolerance; otherwise false.
 */
func (v Vec3) Compare(other Vec3, tolerance float32) bool {
	if Abs(v.X-other.X) > tolerance {
		return false
	}

	if Abs(v.Y-other.Y) > tolerance {
		return false
	}

	if Abs(v.Z-other.Z) > tolerance {
		return false
	}

	return true
}

func (v Vec3) Approximately(other Vec3) bool {
	return Approximately(v.X, other.X) &&
		Approximately(v.Y, other.Y) &&
		Approximately(v.Z, other.Z)
}

func (v Vec3) Lerp(other Vec3, t float32) Vec3 {
	return v.LerpUnclamped(other, Clamp01(t))
}

func (v Vec3) LerpUnclamped(other Vec3, t float32) Vec3 {
	return Vec3{
		LerpUnclamped(v.X, other.X, t),
		LerpUnclamped(v.Y, other.Y, t),
		LerpUnclamped(v.Z, other.Z, t),
	}
}

func (v Vec3) LerpSmooth(other Vec3, t float32, quality Quality) Vec3 {
	return v.LerpUnclamped(other, Smooth(quality, Clamp01(t)))
}

func (v Vec3) LerpSmoothStep(other Vec3, edge0, edge1, t float32, quality Quality) Vec3 {
	return v.LerpUnclamped(other, SmoothStep(edge0, edge1, t, quality))
}

func Vec3Barycentric(v1, v2, v3 Vec3, amount1, amount2 float32) Vec3 {
	return Vec3{
		Barycentric(v1.X, v2.X, v3.X, amount1, amount2),
		Barycentric(v1.Y, v2.Y, v3.Y, amount1, amount2),
		Barycentric(v1.Z, v2.Z, v3.Z, amount1, amount2),
	}
}

func Vec3CatmullRom(v1, v2, v3, v4 Vec3, amount float32) Vec3 {
	return Vec3{
		CatmullRom(v1.X, v2.X, v3.X, v4.X, amount),
		CatmullRom(v1.Y, v2.Y, v3.Y, v4.Y, amount),
		CatmullRom(v1.Z, v2.Z, v3.Z, v4.Z, amount),
	}
}

func Vec3Hermite(v1, tangent1, v2, tangent2 Vec3, amount float32) Vec3 {
	return Vec3{
		Hermite(v1.X, tangent1.X, v2.X, tangent2.X, amount),
		Hermite(v1.Y, tangent1.Y, v2.Y, tangent2.Y, amount),
		Hermite(v1.Z, tangent1.Z, v2.Z, tangent2.Z, amount),
	}
}

func Vec3SmoothStep(edge0, edge1, value Vec3, quality Quality) Vec3 {
	return Vec3{
		SmoothStep(edge0.X, edge1.X, value.X, quality),
		SmoothStep(edge0.Y, edge1.Y, value.Y, quality),
		SmoothStep(edge0.Z, edge1.Z, value.Z, quality),
	}
}

// ToVec2 narrows v, dropping Z.
func (v Vec3) ToVec2() Vec2 {
	return Vec2{v.X, v.Y}
}

// ToVec4 widens v, setting W to zero. See NewVec4FromVec3 for an explicit W.
func (v Vec3) ToVec4() Vec4 {
	return Vec4{v.X, v.Y, v.Z, 0}
}

// ToIVec3 truncates each component toward zero (the implicit conversion).
func (v Vec3) ToIVec3() IVec3 {
	return IVec3{TruncToInt(v.X), TruncToInt(v.Y), TruncToInt(v.Z)}
}

func (v Vec3) CeilToInt() IVec3 {
	return IVec3{CeilToInt(v.X), CeilToInt(v.Y), CeilToInt(v.Z)}
}

func (v Vec3) FloorToInt() IVec3 {
	return IVec3{FloorToInt(v.X), FloorToInt(v.Y), FloorToInt(v.Z)}
}

func (v Vec3) RoundToInt() IVec3 {
	return IVec3{RoundToInt(v.X), RoundToInt(v.Y), RoundToInt(v.Z)}
}

func (v Vec3) TruncToInt() IVec3 {
	return IVec3{TruncToInt(v.X), TruncToInt(v.Y), TruncToInt(v.Z)}
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
