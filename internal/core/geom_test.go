package core

import (
	"math"
	"testing"
)

func TestVec2Arithmetic(t *testing.T) {
	v := Vec2{X: 1, Y: 2}.Add(Vec2{X: 3, Y: -4})
	if v.X != 4 || v.Y != -2 {
		t.Errorf("Add = %+v, expected {4 -2}", v)
	}

	v = Vec2{X: 2, Y: -1}.Scale(3)
	if v.X != 6 || v.Y != -3 {
		t.Errorf("Scale = %+v, expected {6 -3}", v)
	}

	l := Vec2{X: 3, Y: 4}.Len()
	if l != 5 {
		t.Errorf("Len = %f, expected 5", l)
	}
}

func TestVec2Normalize(t *testing.T) {
	n := Vec2{X: 0, Y: -7}.Normalize()
	if n.X != 0 || n.Y != -1 {
		t.Errorf("Normalize = %+v, expected {0 -1}", n)
	}

	n = Vec2{X: 3, Y: 4}.Normalize()
	if math.Abs(n.Len()-1) > 1e-9 {
		t.Errorf("Normalized length = %f, expected 1", n.Len())
	}

	// Zero vector must not divide by zero
	n = Vec2{}.Normalize()
	if n.X != 0 || n.Y != 0 {
		t.Errorf("Normalize of zero = %+v, expected zero", n)
	}
}

func TestRectContainsPoint(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.ContainsPoint(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("ContainsPoint(%f, %f) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 16)

	if r.Right() != 25 {
		t.Errorf("Right() = %f, expected 25", r.Right())
	}
	if r.Bottom() != 26 {
		t.Errorf("Bottom() = %f, expected 26", r.Bottom())
	}
	if r.CenterX() != 15 {
		t.Errorf("CenterX() = %f, expected 15", r.CenterX())
	}
	if r.CenterY() != 18 {
		t.Errorf("CenterY() = %f, expected 18", r.CenterY())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
	if Abs(5) != 5 || Abs(-5) != 5 || Abs(0) != 0 {
		t.Error("Abs should return the absolute value")
	}
}
