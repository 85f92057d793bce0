package math

import "fmt"

func NewIVec2(x, y int) IVec2 {
	return IVec2{X: x, Y: y}
}

func NewIVec2Zero() IVec2  { return IVec2{0, 0} }
func NewIVec2One() IVec2   { return IVec2{1, 1} }
func NewIVec2Up() IVec2    { return IVec2{0, 1} }
func NewIVec2Down() IVec2  { return IVec2{0, -1} }
func NewIVec2Left() IVec2  { return IVec2{-1, 0} }
func NewIVec2Right() IVec2 { return IVec2{1, 0} }

func (v *IVec2) Set(x, y int) {
	v.X = x
	v.Y = y
}

// At returns the component at index i (0 = X, 1 = Y).
func (v IVec2) At(i int) (int, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	}
	return 0, indexError(i, 2)
}

func (v *IVec2) SetAt(i int, value int) error {
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

func (v IVec2) Add(other IVec2) IVec2 {
	return IVec2{v.X + other.X, v.Y + other.Y}
}

func (v IVec2) Sub(other IVec2) IVec2 {
	return IVec2{v.X - other.X, v.Y - other.Y}
}

func (v IVec2) Mul(other IVec2) IVec2 {
	return IVec2{v.X * other.X, v.Y * other.Y}
}

// Div divides componentwise, truncating toward zero. A zero divisor panics
// like any Go integer division.
func (v IVec2) Div(other IVec2) IVec2 {
	return IVec2{v.X / other.X, v.Y / other.Y}
}

func (v IVec2) MulScalar(scalar int) IVec2 {
	return IVec2{v.X * scalar, v.Y * scalar}
}

func (v IVec2) DivScalar(scalar int) IVec2 {
	return IVec2{v.X / scalar, v.Y / scalar}
}

// Mod returns the componentwise remainder; its sign follows the dividend.
func (v IVec2) Mod(other IVec2) IVec2 {
	return IVec2{v.X % other.X, v.Y % other.Y}
}

func (v IVec2) ModScalar(scalar int) IVec2 {
	return IVec2{v.X % scalar, v.Y % scalar}
}

func (v IVec2) And(other IVec2) IVec2 {
	return IVec2{v.X & other.X, v.Y & other.Y}
}

func (v IVec2) AndScalar(mask int) IVec2 {
	return IVec2{v.X & mask, v.Y & mask}
}

func (v IVec2) Neg() IVec2 {
	return IVec2{-v.X, -v.Y}
}

func (v IVec2) Abs() IVec2 {
	return IVec2{absInt(v.X), absInt(v.Y)}
}

func (v IVec2) Min(other IVec2) IVec2 {
	return IVec2{min(v.X, other.X), min(v.Y, other.Y)}
}

func (v IVec2) Max(other IVec2) IVec2 {
	return IVec2{max(v.X, other.X), max(v.Y, other.Y)}
}

// Clamp clamps X against [low.X, high.X] and Y against [low.Y, high.Y].
func (v IVec2) Clamp(low, high IVec2) IVec2 {
	return IVec2{Clamp(v.X, low.X, high.X), Clamp(v.Y, low.Y, high.Y)}
}

func (v IVec2) ClampScalar(low, high int) IVec2 {
	return IVec2{Clamp(v.X, low, high), Clamp(v.Y, low, high)}
}

func (v IVec2) Dot(other IVec2) int {
	return v.X*other.X + v.Y*other.Y
}

func (v IVec2) LengthSquared() int {
	return v.Dot(v)
}

func (v IVec2) Length() float32 {
	return Sqrt(float32(v.LengthSquared()))
}

func (v IVec2) Distance(other IVec2) float32 {
	return v.Sub(other).Length()
}

func (v IVec2) ToVec2() Vec2 {
	return Vec2{float32(v.X), float32(v.Y)}
}

func (v IVec2) ToIVec3() IVec3 {
	return IVec3{v.X, v.Y, 0}
}

func (v IVec2) ToIVec4() IVec4 {
	return IVec4{v.X, v.Y, 0, 0}
}

func (v IVec2) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}
