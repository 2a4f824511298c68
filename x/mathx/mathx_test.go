package mathx

import (
	"testing"
	"time"
)

func TestClamp(t *testing.T) {
	for _, c := range []struct{ v, lo, hi, want int }{
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{7, 0, 10, 7},
		{7, 10, 0, 7}, // swapped bounds
		{300, 0, 255, 255},
	} {
		if got := Clamp(c.v, c.lo, c.hi); got != c.want {
			t.Fatalf("Clamp(%d,%d,%d) = %d, want %d", c.v, c.lo, c.hi, got, c.want)
		}
	}
	if got := Clamp(90*time.Minute, 0, time.Hour); got != time.Hour {
		t.Fatalf("Clamp(duration) = %v", got)
	}
}

func TestCeilDiv(t *testing.T) {
	for _, c := range []struct{ a, b, want int }{
		{0, 2, 0},
		{1, 2, 1},
		{4, 2, 2},
		{5, 2, 3},
		{7 * 160, 8, 140},
		{7 * 3, 8, 3},
		{5, 0, 0},
	} {
		if got := CeilDiv(c.a, c.b); got != c.want {
			t.Fatalf("CeilDiv(%d,%d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
	if got := CeilDiv[uint8](9, 2); got != 5 {
		t.Fatalf("CeilDiv[uint8] = %d", got)
	}
}
