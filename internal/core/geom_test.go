package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestCircleHitsBox(t *testing.T) {
	box := NewBox(100, 0, 70, 200)

	tests := []struct {
		name     string
		circle   Circle
		expected bool
	}{
		{"center inside", NewCircle(130, 100, 16), true},
		{"left of box, overlapping edge", NewCircle(90, 100, 16), true},
		{"left of box, clear", NewCircle(80, 100, 16), false},
		{"touching left edge", NewCircle(84, 100, 16), true},
		{"below box, overlapping bottom", NewCircle(130, 210, 16), true},
		{"below box, clear", NewCircle(130, 220, 16), false},
		{"near corner, clear diagonally", NewCircle(88, 212, 16), false},
		{"near corner, overlapping diagonally", NewCircle(92, 208, 16), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.circle.HitsBox(box); got != tc.expected {
				t.Errorf("HitsBox() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCircleHitsCircle(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Circle
		expected bool
	}{
		{"same center", NewCircle(0, 0, 5), NewCircle(0, 0, 5), true},
		{"overlapping", NewCircle(0, 0, 16), NewCircle(20, 0, 12), true},
		{"touching", NewCircle(0, 0, 16), NewCircle(28, 0, 12), true},
		{"apart", NewCircle(0, 0, 16), NewCircle(29, 0, 12), false},
		{"apart diagonally", NewCircle(0, 0, 16), NewCircle(20, 20, 12), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.HitsCircle(tc.b); got != tc.expected {
				t.Errorf("HitsCircle() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.HitsCircle(tc.a); got != tc.expected {
				t.Errorf("HitsCircle() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
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
