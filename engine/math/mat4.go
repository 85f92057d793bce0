package math

// Matrices are laid out for row vectors: a point p is transformed as p * M,
// so in A.Mul(B) the rotation in A is applied before the one in B.

/**
 * @brief Creates and returns an identity matrix.
 */
func NewMat4Identity() Mat4 {
	out := Mat4{}
	out.Data[0] = 1.0
	out.Data[5] = 1.0
	out.Data[10] = 1.0
	out.Data[15] = 1.0
	return out
}

/**
 * @brief Returns the result of multiplying mt and other.
 *
 * @param other The matrix applied after mt.
 * @return The result of the matrix multiplication.
 */
func (mt Mat4) Mul(other Mat4) Mat4 {
	out := Mat4{}
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			sum := float32(0)
			for i := 0; i < 4; i++ {
				sum += mt.Data[row*4+i] * other.Data[i*4+col]
			}
			out.Data[row*4+col] = sum
		}
	}
	return out
}

/**
 * @brief Creates and returns a translation matrix from the given position.
 */
func NewMat4Translation(position Vec3) Mat4 {
	out := NewMat4Identity()
	out.Data[12] = position.X
	out.Data[13] = position.Y
	out.Data[14] = position.Z
	return out
}

// NewMat4EulerX creates a rotation of radians around the X axis.
func NewMat4EulerX(radians float32) Mat4 {
	out := NewMat4Identity()
	c, s := Cos(radians), Sin(radians)
	out.Data[5] = c
	out.Data[6] = s
	out.Data[9] = -s
	out.Data[10] = c
	return out
}

// NewMat4EulerY creates a rotation of radians around the Y axis.
func NewMat4EulerY(radians float32) Mat4 {
	out := NewMat4Identity()
	c, s := Cos(radians), Sin(radians)
	out.Data[0] = c
	out.Data[2] = -s
	out.Data[8] = s
	out.Data[10] = c
	return out
}

// NewMat4EulerZ creates a rotation of radians around the Z axis.
func NewMat4EulerZ(radians float32) Mat4 {
	out := NewMat4Identity()
	c, s := Cos(radians), Sin(radians)
	out.Data[0] = c
	out.Data[1] = s
	out.Data[4] = -s
	out.Data[5] = c
	return out
}

/**
 * @brief Creates a rotation matrix that rotates around X, then Y, then Z.
 *
 * @param xRadians The x rotation.
 * @param yRadians The y rotation.
 * @param zRadians The z rotation.
 * @return A rotation matrix.
 */
func NewMat4EulerXYZ(xRadians, yRadians, zRadians float32) Mat4 {
	return NewMat4EulerX(xRadians).
		Mul(NewMat4EulerY(yRadians)).
		Mul(NewMat4EulerZ(zRadians))
}
