package mathutil

import "testing"

func TestRound(t *testing.T) {
	tests := []struct {
		val    float64
		places int
		want   float64
	}{
		{1.234, 2, 1.23},
		{1.235001, 2, 1.24},
		{-1.5, 0, -2},
		{1.0004, 3, 1.0},
		{1234.5678, 2, 1234.57},
	}
	for _, tt := range tests {
		if got := Round(tt.val, tt.places); got != tt.want {
			t.Errorf("Round(%v, %d) = %v, want %v", tt.val, tt.places, got, tt.want)
		}
	}
}

func TestFloor0(t *testing.T) {
	if got := Floor0(-3); got != 0 {
		t.Fatalf("Floor0(-3) = %v", got)
	}
	if got := Floor0(2.5); got != 2.5 {
		t.Fatalf("Floor0(2.5) = %v", got)
	}
}
