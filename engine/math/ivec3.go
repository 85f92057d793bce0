package math

import "fmt"

func NewIVec3(x, y, z int) IVec3 {
	return IVec3{X: x, Y: y, Z: z}
}

func NewIVec3Zero() IVec3    { return IVec3{0, 0, 0} }
func NewIVec3One() IVec3     { return IVec3{1, 1, 1} }
func NewIVec3Up() IVec3      { return IVec3{0, 1, 0} }
func NewIVec3Down() IVec3    { return IVec3{0, -1, 0} }
func NewIVec3Left() IVec3    { return IVec3{-1, 0, 0} }
func NewIVec3Right() IVec3   { return IVec3{1, 0, 0} }
func NewIVec3Forward() IVec3 { return IVec3{0, 0, -1} }
func NewIVec3Back() IVec3    { return IVec3{0, 0, 1} }

func (v *IVec3) Set(x, y, z int) {
	v.X = x
	v.Y = y
	v.Z = z
}

/**
 * @brief Returns the component at index i.
 *
 * @param i 0 for X, 1 for Y, 2 for Z.
 * @return The component, or an *IndexError wrapping ErrIndexOutOfRange for
 * any other index.
 */
func (v IVec3) At(i int) (int, error) {
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

func (v *IVec3) SetAt(i int, value int) error {
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

func (v IVec3) Add(other IVec3) IVec3 {
	return IVec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

func (v IVec3) Sub(other IVec3) IVec3 {
	return IVec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

func (v IVec3) Mul(other IVec3) IVec3 {
	return IVec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

func (v IVec3) Div(other IVec3) IVec3 {
	return IVec3{v.X / other.X, v.Y / other.Y, v.Z / other.Z}
}

func (v IVec3) MulScalar(scalar int) IVec3 {
	return IVec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

func (v IVec3) DivScalar(scalar int) IVec3 {
	return IVec3{v.X / scalar, v.Y / scalar, v.Z / scalar}
}

func (v IVec3) Mod(other IVec3) IVec3 {
	return IVec3{v.X % other.X, v.Y % other.Y, v.Z % other.Z}
}

func (v IVec3) ModScalar(scalar int) IVec3 {
	return IVec3{v.X % scalar, v.Y % scalar, v.Z % scalar}
}

func (v IVec3) And(other IVec3) IVec3 {
	return IVec3{v.X & other.X, v.Y & other.Y, v.Z & other.Z}
}

func (v IVec3) AndScalar(mask int) IVec3 {
	return IVec3{v.X & mask, v.Y & mask, v.Z & mask}
}

func (v IVec3) Neg() IVec3 {
	return IVec3{-v.X, -v.Y, -v.Z}
}

func (v IVec3) Abs() IVec3 {
	return IVec3{absInt(v.X), absInt(v.Y), absInt(v.Z)}
}

func (v IVec3) Min(other IVec3) IVec3 {
	return IVec3{min(v.X, other.X), min(v.Y, other.Y), min(v.Z, other.Z)}
}

func (v IVec3) Max(other IVec3) IVec3 {
	return IVec3{max(v.X, other.X), max(v.Y, other.Y), max(v.Z, other.Z)}
}

func (v IVec3) Clamp(low, high IVec3) IVec3 {
	return IVec3{
		Clamp(v.X, low.X, high.X),
		Clamp(v.Y, low.Y, high.Y),
		Clamp(v.Z, low.Z, high.Z),
	}
}

func (v IVec3) ClampScalar(low, high int) IVec3 {
	return IVec3{Clamp(v.X, low, high), Clamp(v.Y, low, high), Clamp(v.Z, low, high)}
}

func (v IVec3) Dot(other IVec3) int {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

func (v IVec3) LengthSquared() int {
	return v.Dot(v)
}

func (v IVec3) Length() float32 {
	return Sqrt(float32(v.LengthSquared()))
}

func (v IVec3) Distance(other IVec3) float32 {
	return v.Sub(other).Length()
}

func (v IVec3) ToVec3() Vec3 {
	return Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

func (v IVec3) ToIVec2() IVec2 {
	return IVec2{v.X, v.Y}
}

func (v IVec3) ToIVec4() IVec4 {
	return IVec4{v.X, v.Y, v.Z, 0}
}

func (v IVec3) String() string {
	return fmt.Sprintf("(%d, %d, %d)", v.X, v.Y, v.Z)
}
