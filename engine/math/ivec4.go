package math

import "fmt"

func NewIVec4(x, y, z, w int) IVec4 {
	return IVec4{X: x, Y: y, Z: z, W: w}
}

func NewIVec4Zero() IVec4 { return IVec4{0, 0, 0, 0} }
func NewIVec4One() IVec4  { return IVec4{1, 1, 1, 1} }

func (v *IVec4) Set(x, y, z, w int) {
	v.X = x
	v.Y = y
	v.Z = z
	v.W = w
}

func (v IVec4) At(i int) (int, error) {
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

func (v *IVec4) SetAt(i int, value int) error {
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

func (v IVec4) Add(other IVec4) IVec4 {
	return IVec4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

func (v IVec4) Sub(other IVec4) IVec4 {
	return IVec4{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

func (v IVec4) Mul(other IVec4) IVec4 {
	return IVec4{v.X * other.X, v.Y * other.Y, v.Z * other.Z, v.W * other.W}
}

func (v IVec4) Div(other IVec4) IVec4 {
	return IVec4{v.X / other.X, v.Y / other.Y, v.Z / other.Z, v.W / other.W}
}

func (v IVec4) MulScalar(scalar int) IVec4 {
	return IVec4{v.X * scalar, v.Y * scalar, v.Z * scalar, v.W * scalar}
}

func (v IVec4) DivScalar(scalar int) IVec4 {
	return IVec4{v.X / scalar, v.Y / scalar, v.Z / scalar, v.W / scalar}
}

func (v IVec4) Mod(other IVec4) IVec4 {
	return IVec4{v.X % other.X, v.Y % other.Y, v.Z % other.Z, v.W % other.W}
}

func (v IVec4) ModScalar(scalar int) IVec4 {
	return IVec4{v.X % scalar, v.Y % scalar, v.Z % scalar, v.W % scalar}
}

func (v IVec4) And(other IVec4) IVec4 {
	return IVec4{v.X & other.X, v.Y & other.Y, v.Z & other.Z, v.W & other.W}
}

func (v IVec4) AndScalar(mask int) IVec4 {
	return IVec4{v.X & mask, v.Y & mask, v.Z & mask, v.W & mask}
}

func (v IVec4) Neg() IVec4 {
	return IVec4{-v.X, -v.Y, -v.Z, -v.W}
}

func (v IVec4) Abs() IVec4 {
	return IVec4{absInt(v.X), absInt(v.Y), absInt(v.Z), absInt(v.W)}
}

func (v IVec4) Min(other IVec4) IVec4 {
	return IVec4{min(v.X, other.X), min(v.Y, other.Y), min(v.Z, other.Z), min(v.W, other.W)}
}

func (v IVec4) Max(other IVec4) IVec4 {
	return IVec4{max(v.X, other.X), max(v.Y, other.Y), max(v.Z, other.Z), max(v.W, other.W)}
}

func (v IVec4) Clamp(low, high IVec4) IVec4 {
	return IVec4{
		Clamp(v.X, low.X, high.X),
		Clamp(v.Y, low.Y, high.Y),
		Clamp(v.Z, low.Z, high.Z),
		Clamp(v.W, low.W, high.W),
	}
}

func (v IVec4) ClampScalar(low, high int) IVec4 {
	return IVec4{
		Clamp(v.X, low, high),
		Clamp(v.Y, low, high),
		Clamp(v.Z, low, high),
		Clamp(v.W, low, high),
	}
}

func (v IVec4) Dot(other IVec4) int {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

func (v IVec4) LengthSquared() int {
	return v.Dot(v)
}

func (v IVec4) Length() float32 {
	return Sqrt(float32(v.LengthSquared()))
}

func (v IVec4) Distance(other IVec4) float32 {
	return v.Sub(other).Length()
}

func (v IVec4) ToVec4() Vec4 {
	return Vec4{float32(v.X), float32(v.Y), float32(v.Z), float32(v.W)}
}

func (v IVec4) ToIVec3() IVec3 {
	return IVec3{v.X, v.Y, v.Z}
}

func (v IVec4) ToIVec2() IVec2 {
	return IVec2{v.X, v.Y}
}

func (v IVec4) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", v.X, v.Y, v.Z, v.W)
}
