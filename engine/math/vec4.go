package math

import "fmt"

/**
 * @brief Creates and returns a new 4-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @param z The z value.
 * @param w The w value.
 * @return A new 4-element vector.
 */
func NewVec4(x, y, z, w float32) Vec4 {
	return Vec4{x, y, z, w}
}

/**
 * @brief Returns a new vec4 using vector as the x, y and z components and w for w.
 *
 * @param v The 3-component vector.
 * @param w The w component.
 * @return A new vec4
 */
func NewVec4FromVec3(v Vec3, w float32) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

/**
 * @brief Creates and returns a 4-component vector with all components set to 0.0f.
 */
func NewVec4Zero() Vec4 {
	return Vec4{0.0, 0.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 4-component vector with all components set to 1.0f.
 */
func NewVec4One() Vec4 {
	return Vec4{1.0, 1.0, 1.0, 1.0}
}

func (v *Vec4) Set(x, y, z, w float32) {
	v.X = x
	v.Y = y
	v.Z = z
	v.W = w
}

func (v Vec4) At(i int) (float32, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	case 2:
		return v.Z, nil
	case 3:
		return v.W, nil
	}
	return 0, indexError(i, 4)
}

func (v *Vec4) SetAt(i int, value float32) error {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	case 2:
		v.Z = value
	case 3:
		v.W = value
	default:
		return indexError(i, 4)
	}
	return nil
}

func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
		W: v.W + other.W,
	}
}

func (v Vec4) Sub(other Vec4) Vec4 {
	return Vec4{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
		W: v.W - other.W,
	}
}

func (v Vec4) Mul(other Vec4) Vec4 {
	return Vec4{
		X: v.X * other.X,
		Y: v.Y * other.Y,
		Z: v.Z * other.Z,
		W: v.W * other.W,
	}
}

func (v Vec4) Div(other Vec4) Vec4 {
	return Vec4{
		X: v.X / other.X,
		Y: v.Y / other.Y,
		Z: v.Z / other.Z,
		W: v.W / other.W,
	}
}

func (v Vec4) MulScalar(scalar float32) Vec4 {
	return Vec4{v.X * scalar, v.Y * scalar, v.Z * scalar, v.W * scalar}
}

func (v Vec4) DivScalar(scalar float32) Vec4 {
	return Vec4{v.X / scalar, v.Y / scalar, v.Z / scalar, v.W / scalar}
}

func (v Vec4) Neg() Vec4 {
	return Vec4{-v.X, -v.Y, -v.Z, -v.W}
}

func (v Vec4) Abs() Vec4 {
	return Vec4{Abs(v.X), Abs(v.Y), Abs(v.Z), Abs(v.W)}
}

func (v Vec4) Min(other Vec4) Vec4 {
	return Vec4{min(v.X, other.X), min(v.Y, other.Y), min(v.Z, other.Z), min(v.W, other.W)}
}

func (v Vec4) Max(other Vec4) Vec4 {
	return Vec4{max(v.X, other.X), max(v.Y, other.Y), max(v.Z, other.Z), max(v.W, other.W)}
}

func (v Vec4) Clamp(low, high Vec4) Vec4 {
	return Vec4{
		Clamp(v.X, low.X, high.X),
		Clamp(v.Y, low.Y, high.Y),
		Clamp(v.Z, low.Z, high.Z),
		Clamp(v.W, low.W, high.W),
	}
}

func (v Vec4) Floor() Vec4 { return Vec4{Floor(v.X), Floor(v.Y), Floor(v.Z), Floor(v.W)} }
func (v Vec4) Ceil() Vec4  { return Vec4{Ceil(v.X), Ceil(v.Y), Ceil(v.Z), Ceil(v.W)} }
func (v Vec4) Round() Vec4 { return Vec4{Round(v.X), Round(v.Y), Round(v.Z), Round(v.W)} }
func (v Vec4) Trunc() Vec4 { return Vec4{Trunc(v.X), Trunc(v.Y), Trunc(v.Z), Trunc(v.W)} }

func (v Vec4) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

func (v Vec4) Length() float32 {
	return Sqrt(v.LengthSquared())
}

// Normalize scales v in place to unit length. A vector whose length is
// approximately zero is left unchanged.
func (v *Vec4) Normalize() {
	length := v.Length()
	if Approximately(length, 0) {
		return
	}
	v.X /= length
	v.Y /= length
	v.Z /= length
	v.W /= length
}

func (v Vec4) Normalized() Vec4 {
	v.Normalize()
	return v
}

func (v Vec4) Dot(other Vec4) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

func (v Vec4) Project(onNormal Vec4) Vec4 {
	sqrLen := onNormal.LengthSquared()
	// same degeneracy rule as Normalize, applied to the length
	if Approximately(Sqrt(sqrLen), 0) {
		return Vec4{}
	}
	return onNormal.MulScalar(v.Dot(onNormal) / sqrLen)
}

func (v Vec4) Reject(onNormal Vec4) Vec4 {
	return v.Sub(v.Project(onNormal))
}

// Reflect mirrors v about onNormal, which must already be unit length.
func (v Vec4) Reflect(onNormal Vec4) Vec4 {
	return v.Sub(onNormal.MulScalar(2 * v.Dot(onNormal)))
}

// Refract uses ior as the ratio of refraction indices; iot is reserved.
// Total internal reflection returns the zero vector.
func (v Vec4) Refract(onNormal Vec4, ior, iot float32) Vec4 {
	dotNI := onNormal.Dot(v)
	k := 1 - ior*ior*(1-dotNI*dotNI)
	if k < 0 {
		return Vec4{}
	}
	return v.MulScalar(ior).Sub(onNormal.MulScalar(ior*dotNI + Sqrt(k)))
}

func (v Vec4) Distance(other Vec4) float32 {
	return v.Sub(other).Length()
}

func (v Vec4) DistanceSquared(other Vec4) float32 {
	return v.Sub(other).LengthSquared()
}

func (v Vec4) ClampLength(maxLength float32) Vec4 {
	sqrLen := v.LengthSquared()
	if sqrLen > maxLength*maxLength {
		return v.MulScalar(maxLength / Sqrt(sqrLen))
	}
	return v
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 *
 * @param other The second vector.
 * @param tolerance The difference tolerance. Typically K_FLOAT_EPSILON or similar.
 * @return True if within tolerance; otherwise false.
 */
func (v Vec4) Compare(other Vec4, tolerance float32) bool {
	if Abs(v.X-other.X) > tolerance {
		return false
	}

	if Abs(v.Y-other.Y) > tolerance {
		return false
	}

	if Abs(v.Z-other.Z) > tolerance {
		return false
	}

	if Abs(v.W-other.W) > tolerance {
		return false
	}

	return true
}

func (v Vec4) Approximately(other Vec4) bool {
	return Approximately(v.X, other.X) &&
		Approximately(v.Y, other.Y) &&
		Approximately(v.Z, other.Z) &&
		Approximately(v.W, other.W)
}

func (v Vec4) Lerp(other Vec4, t float32) Vec4 {
	return v.LerpUnclamped(other, Clamp01(t))
}

func (v Vec4) LerpUnclamped(other Vec4, t float32) Vec4 {
	return Vec4{
		LerpUnclamped(v.X, other.X, t),
		LerpUnclamped(v.Y, other.Y, t),
		LerpUnclamped(v.Z, other.Z, t),
		LerpUnclamped(v.W, other.W, t),
	}
}

func (v Vec4) LerpSmooth(other Vec4, t float32, quality Quality) Vec4 {
	return v.LerpUnclamped(other, Smooth(quality, Clamp01(t)))
}

func (v Vec4) LerpSmoothStep(other Vec4, edge0, edge1, t float32, quality Quality) Vec4 {
	return v.LerpUnclamped(other, SmoothStep(edge0, edge1, t, quality))
}

func Vec4Barycentric(v1, v2, v3 Vec4, amount1, amount2 float32) Vec4 {
	return Vec4{
		Barycentric(v1.X, v2.X, v3.X, amount1, amount2),
		Barycentric(v1.Y, v2.Y, v3.Y, amount1, amount2),
		Barycentric(v1.Z, v2.Z, v3.Z, amount1, amount2),
		Barycentric(v1.W, v2.W, v3.W, amount1, amount2),
	}
}

func Vec4CatmullRom(v1, v2, v3, v4 Vec4, amount float32) Vec4 {
	return Vec4{
		CatmullRom(v1.X, v2.X, v3.X, v4.X, amount),
		CatmullRom(v1.Y, v2.Y, v3.Y, v4.Y, amount),
		CatmullRom(v1.Z, v2.Z, v3.Z, v4.Z, amount),
		CatmullRom(v1.W, v2.W, v3.W, v4.W, amount),
	}
}

func Vec4Hermite(v1, tangent1, v2, tangent2 Vec4, amount float32) Vec4 {
	return Vec4{
		Hermite(v1.X, tangent1.X, v2.X, tangent2.X, amount),
		Hermite(v1.Y, tangent1.Y, v2.Y, tangent2.Y, amount),
		Hermite(v1.Z, tangent1.Z, v2.Z, tangent2.Z, amount),
		Hermite(v1.W, tangent1.W, v2.W, tangent2.W, amount),
	}
}

func Vec4SmoothStep(edge0, edge1, value Vec4, quality Quality) Vec4 {
	return Vec4{
		SmoothStep(edge0.X, edge1.X, value.X, quality),
		SmoothStep(edge0.Y, edge1.Y, value.Y, quality),
		SmoothStep(edge0.Z, edge1.Z, value.Z, quality),
		SmoothStep(edge0.W, edge1.W, value.W, quality),
	}
}

/**
 * @brief Returns a new vec3 containing the x, y and z components of the
 * supplied vec4, essentially dropping the w component.
 */
func (v Vec4) ToVec3() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

func (v Vec4) ToVec2() Vec2 {
	return Vec2{v.X, v.Y}
}

// ToIVec4 truncates each component toward zero (the implicit conversion).
func (v Vec4) ToIVec4() IVec4 {
	return IVec4{TruncToInt(v.X), TruncToInt(v.Y), TruncToInt(v.Z), TruncToInt(v.W)}
}

func (v Vec4) CeilToInt() IVec4 {
	return IVec4{CeilToInt(v.X), CeilToInt(v.Y), CeilToInt(v.Z), CeilToInt(v.W)}
}

func (v Vec4) FloorToInt() IVec4 {
	return IVec4{FloorToInt(v.X), FloorToInt(v.Y), FloorToInt(v.Z), FloorToInt(v.W)}
}

func (v Vec4) RoundToInt() IVec4 {
	return IVec4{RoundToInt(v.X), RoundToInt(v.Y), RoundToInt(v.Z), RoundToInt(v.W)}
}

func (v Vec4) TruncToInt() IVec4 {
	return v.ToIVec4()
}

func (v Vec4) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", v.X, v.Y, v.Z, v.W)
}
