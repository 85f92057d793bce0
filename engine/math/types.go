package math

// Vec2 represents a 2D vector
type Vec2 struct {
	X, Y float32
}

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 represents a 4D vector
type Vec4 struct {
	X, Y, Z, W float32
}

// IVec2 represents a 2D vector with integer components
type IVec2 struct {
	X, Y int
}

// IVec3 represents a 3D vector with integer components
type IVec3 struct {
	X, Y, Z int
}

// IVec4 represents a 4D vector with integer components
type IVec4 struct {
	X, Y, Z, W int
}

/**
 * @brief A rotation quantity. The value is stored in radians and is never
 * wrapped implicitly; see WrapSigned and WrapUnsigned.
 */
type Angle struct {
	radians float32
}

/** @brief a 4x4 matrix, used here to compose per-axis rotations. */
type Mat4 struct {
	/** @brief The matrix elements */
	Data [16]float32
}
