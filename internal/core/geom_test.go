package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"top-left corner", 10, 10, true},
		{"inside", 15, 15, true},
		{"last column", 29, 10, true},
		{"right edge is exclusive", 30, 15, false},
		{"bottom edge is exclusive", 15, 30, false},
		{"left of rect", 9, 15, false},
		{"above rect", 15, 9, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	if r.Right() != 40 {
		t.Errorf("Right() = %d, expected 40", r.Right())
	}
	if r.Bottom() != 60 {
		t.Errorf("Bottom() = %d, expected 60", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 25 || cy != 40 {
		t.Errorf("Center() = (%d, %d), expected (25, 40)", cx, cy)
	}
}

func TestCenteredRect(t *testing.T) {
	tests := []struct {
		name         string
		areaW, areaH int
		w, h         int
		expected     Rect
	}{
		{"even fit", 80, 24, 20, 10, NewRect(30, 7, 20, 10)},
		{"odd remainder", 11, 5, 4, 2, NewRect(3, 1, 4, 2)},
		{"exact fit", 10, 10, 10, 10, NewRect(0, 0, 10, 10)},
		{"too large", 10, 4, 14, 6, NewRect(-2, -1, 14, 6)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := CenteredRect(tc.areaW, tc.areaH, tc.w, tc.h)
			if got != tc.expected {
				t.Errorf("CenteredRect() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(2, 3, 10, 6).Inset(1)
	if r != NewRect(3, 4, 8, 4) {
		t.Errorf("Inset(1) = %+v, expected {3 4 8 4}", r)
	}

	r = NewRect(0, 0, 3, 3).Inset(2)
	if r.W != 0 || r.H != 0 {
		t.Errorf("Inset past the size should give an empty rect, got %+v", r)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}
