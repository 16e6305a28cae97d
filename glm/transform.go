package glm

// Transform places a mesh in world space.
type Transform[T float] struct {
	Translate Vec3[T]

	// euler angles around the x, y and z axis
	Rotate Vec3[Rad]

	Scale Vec3[T]
}

// IdentityTransform does not move, rotate or scale anything
func IdentityTransform[T float]() Transform[T] {
	return Transform[T]{Scale: Vec3[T]{1, 1, 1}}
}

// ModelMat composes translate, rotate (z, then y, then x) and scale.
// A local point is scaled first, then rotated and then translated.
func (t Transform[T]) ModelMat() Mat4[T] {
	return TranslationMat4(t.Translate[0], t.Translate[1], t.Translate[2]).
		Mul(RotationZMat4[T](t.Rotate[2])).
		Mul(RotationYMat4[T](t.Rotate[1])).
		Mul(RotationXMat4[T](t.Rotate[0])).
		Mul(ScaleMat4(t.Scale[0], t.Scale[1], t.Scale[2]))
}
