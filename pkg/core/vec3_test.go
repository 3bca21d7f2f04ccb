package core

import (
	"math"
	"testing"
)

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	tests := []struct {
		name     string
		got      Vec3
		expected Vec3
	}{
		{"add", a.Add(b), NewVec3(5, 7, 9)},
		{"subtract", b.Subtract(a), NewVec3(3, 3, 3)},
		{"multiply scalar", a.Multiply(2), NewVec3(2, 4, 6)},
		{"multiply vec", a.MultiplyVec(b), NewVec3(4, 10, 18)},
		{"negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}
}

func TestVec3_DotAndLength(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	if got := a.Dot(b); got != 32 {
		t.Errorf("Expected dot 32, got %f", got)
	}
	if got := NewVec3(3, 4, 0).Length(); got != 5 {
		t.Errorf("Expected length 5, got %f", got)
	}
	if got := NewVec3(3, 4, 0).LengthSquared(); got != 25 {
		t.Errorf("Expected length squared 25, got %f", got)
	}
}

func TestVec3_Normalize(t *testing.T) {
	vectors := []Vec3{
		NewVec3(1, 2, 3),
		NewVec3(-5, 0.1, 2),
		NewVec3(0, 0, 1e-3),
		NewVec3(1e6, -1e6, 1e6),
	}

	for _, v := range vectors {
		unit := v.Normalize()
		if math.Abs(unit.Length()-1.0) > 1e-12 {
			t.Errorf("Normalize(%v) has length %v, want 1", v, unit.Length())
		}

		// Idempotent: normalizing a unit vector changes nothing
		again := unit.Normalize()
		if math.Abs(again.X-unit.X) > 1e-12 ||
			math.Abs(again.Y-unit.Y) > 1e-12 ||
			math.Abs(again.Z-unit.Z) > 1e-12 {
			t.Errorf("Normalize not idempotent for %v: %v vs %v", v, unit, again)
		}
	}
}

func TestVec3_NearZero(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec3
		expected bool
	}{
		{"zero", NewVec3(0, 0, 0), true},
		{"below threshold", NewVec3(1e-9, -1e-9, 1e-9), true},
		{"one component above", NewVec3(1e-9, 1e-7, 1e-9), false},
		{"unit", NewVec3(0, 1, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.NearZero(); got != tt.expected {
				t.Errorf("NearZero(%v) = %t, want %t", tt.v, got, tt.expected)
			}
		})
	}
}

func TestVec3_ClampAndGamma(t *testing.T) {
	clamped := NewVec3(-0.5, 0.5, 1.5).Clamp(0, 0.999)
	if clamped != NewVec3(0, 0.5, 0.999) {
		t.Errorf("Unexpected clamp result: %v", clamped)
	}

	// Gamma 2 is a square root per component
	corrected := NewVec3(0.25, 1.0, 0.0).GammaCorrect(2.0)
	if math.Abs(corrected.X-0.5) > 1e-12 || corrected.Y != 1.0 || corrected.Z != 0.0 {
		t.Errorf("Unexpected gamma result: %v", corrected)
	}
}
