package vec

import (
	"math"
	"testing"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func approxV3(a, b V3) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y) && approx(a.Z, b.Z)
}

func TestLength(t *testing.T) {
	tests := []struct {
		name string
		v    V3
		want float32
	}{
		{"zero", V3{}, 0},
		{"unit x", V3{1, 0, 0}, 1},
		{"pythagorean", V3{3, 4, 0}, 5},
		{"negative components", V3{-2, -3, -6}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Length(tt.v); !approx(got, tt.want) {
				t.Errorf("Length(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	v := Normalize(V3{0, 3, 4})
	if !approxV3(v, V3{0, 0.6, 0.8}) {
		t.Errorf("Normalize = %v, want (0, 0.6, 0.8)", v)
	}

	// Zero vector stays zero, no NaN.
	z := Normalize(V3{})
	if !IsZero(z) {
		t.Errorf("Normalize(zero) = %v, want zero", z)
	}
}

func TestDot(t *testing.T) {
	if got := Dot(V3{1, 2, 3}, V3{4, -5, 6}); !approx(got, 12) {
		t.Errorf("Dot = %v, want 12", got)
	}
	if got := Dot(V3{1, 0, 0}, V3{0, 1, 0}); got != 0 {
		t.Errorf("Dot of orthogonal vectors = %v, want 0", got)
	}
}

func TestReflect(t *testing.T) {
	tests := []struct {
		name string
		v, n V3
		want V3
	}{
		{"head-on", V3{10, 0, 0}, V3{-1, 0, 0}, V3{-10, 0, 0}},
		{"bounce off floor", V3{1, -1, 0}, V3{0, 1, 0}, V3{1, 1, 0}},
		{"parallel to plane", V3{0, 0, 5}, V3{0, 1, 0}, V3{0, 0, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reflect(tt.v, tt.n); !approxV3(got, tt.want) {
				t.Errorf("Reflect(%v, %v) = %v, want %v", tt.v, tt.n, got, tt.want)
			}
		})
	}

	// Reflection about n and -n is identical.
	a := Reflect(V3{3, -2, 7}, V3{0, 1, 0})
	b := Reflect(V3{3, -2, 7}, V3{0, -1, 0})
	if !approxV3(a, b) {
		t.Errorf("Reflect(v, n) = %v != Reflect(v, -n) = %v", a, b)
	}
}

func TestReflectPreservesLength(t *testing.T) {
	v := V3{3, -2, 7}
	n := Normalize(V3{1, 1, 0})
	if got, want := Length(Reflect(v, n)), Length(v); !approx(got, want) {
		t.Errorf("reflected length = %v, want %v", got, want)
	}
}
