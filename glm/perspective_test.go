package glm

import (
	"math"
	"testing"
)

func TestPerspectiveDepthRange(t *testing.T) {
	const near, far = 0.1, 1000.0

	proj := Perspective[float32](DegToRad[float32](45), 4.0/3.0, near, far)

	nearPoint := proj.TransformPoint(Vec3f{0, 0, -near})
	if math.Abs(float64(nearPoint[2])) > 1e-5 {
		t.Fatalf("near plane maps to z=%v, want 0", nearPoint[2])
	}

	farPoint := proj.TransformPoint(Vec3f{0, 0, -far})
	if math.Abs(float64(farPoint[2]-1)) > 1e-4 {
		t.Fatalf("far plane maps to z=%v, want 1", farPoint[2])
	}
}

func TestLookAtMovesEyeToOrigin(t *testing.T) {
	eye := Vec3f{0, 0, 3}
	view := LookAt(eye, Vec3f{0, 0, 0}, Vec3f{0, 1, 0})

	if got := view.TransformPoint(eye); !approxVec3(got, Vec3f{}, 1e-6) {
		t.Fatalf("eye maps to %v, want origin", got)
	}

	// the target is straight ahead, which is -z in view space
	if got := view.TransformPoint(Vec3f{}); !approxVec3(got, Vec3f{0, 0, -3}, 1e-6) {
		t.Fatalf("target maps to %v", got)
	}
}

func TestDegreeConversion(t *testing.T) {
	if got := DegToRad[float32](180); math.Abs(float64(got)-math.Pi) > 1e-6 {
		t.Fatalf("DegToRad(180) = %v", got)
	}

	if got := RadToDeg[float32](math.Pi / 2); math.Abs(float64(got)-90) > 1e-4 {
		t.Fatalf("RadToDeg(pi/2) = %v", got)
	}
}
