package utils

import "testing"

func TestPointInCircle(t *testing.T) {
	tests := []struct {
		name   string
		px, py float64
		want   bool
	}{
		{"centre", 150, 150, true},
		{"exactly on edge", 180, 150, true},
		{"diagonal on edge", 150 + 18, 150 + 24, true},
		{"just outside edge", 180.01, 150, false},
		{"far away", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointInCircle(tt.px, tt.py, 150, 150, 30); got != tt.want {
				t.Errorf("PointInCircle(%v, %v) = %v, want %v", tt.px, tt.py, got, tt.want)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	if got := Distance(0, 0, 3, 4); got != 5 {
		t.Errorf("Distance(0,0,3,4) = %v, want 5", got)
	}
	if got := Distance(2, 2, 2, 2); got != 0 {
		t.Errorf("Distance of identical points = %v, want 0", got)
	}
}

func TestPointInRect(t *testing.T) {
	tests := []struct {
		px, py float64
		want   bool
	}{
		{10, 10, true},
		{109.9, 59.9, true},
		{110, 30, false},
		{50, 60, false},
		{9.9, 30, false},
	}
	for _, tt := range tests {
		if got := PointInRect(tt.px, tt.py, 10, 10, 100, 50); got != tt.want {
			t.Errorf("PointInRect(%v, %v) = %v, want %v", tt.px, tt.py, got, tt.want)
		}
	}
}
