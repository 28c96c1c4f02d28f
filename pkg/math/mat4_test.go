package math

import (
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestRotateZXYYaw(t *testing.T) {
	m := RotateZXY(Vec3{X: 10}, Vec3s{Y: 0x4000})

	got := m.TransformDirection(Vec3{Z: 1})
	if !near(got.X, 1, 0.001) || !near(got.Z, 0, 0.001) {
		t.Errorf("yaw 0x4000 should turn +Z to +X, got %v", got)
	}

	p := m.TransformVec3(Vec3{Z: 1})
	if !near(p.X, 11, 0.001) {
		t.Errorf("TransformVec3 should add translation, got %v", p)
	}
}

func TestTransposeDirectionInverts(t *testing.T) {
	m := RotateZXY(Vec3{}, Vec3s{X: 0x1000, Y: -0x2345, Z: 0x0800})
	d := Vec3{X: 3, Y: -4, Z: 5}

	back := m.TransposeDirection(m.TransformDirection(d))
	if !near(back.X, d.X, 0.01) || !near(back.Y, d.Y, 0.01) || !near(back.Z, d.Z, 0.01) {
		t.Errorf("TransposeDirection(TransformDirection(d)) = %v, want %v", back, d)
	}
}

func TestRotateXYZTranslation(t *testing.T) {
	m := RotateXYZ(Vec3{X: 1, Y: 2, Z: 3}, Vec3s{})
	if m[12] != 1 || m[13] != 2 || m[14] != 3 {
		t.Errorf("RotateXYZ translation: got (%f, %f, %f), want (1, 2, 3)", m[12], m[13], m[14])
	}
}
