package misc

import (
	"math"
	"testing"
)

func TestClampUint8(t *testing.T) {
	tests := []struct {
		in       float64
		expected uint8
	}{
		{-12.5, 0},
		{0, 0},
		{0.99, 0},
		{127.6, 127},
		{254.999, 254},
		{255, 255},
		{765, 255},
		{math.Inf(1), 255},
		{math.Inf(-1), 0},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := ClampUint8(tt.in); got != tt.expected {
			t.Errorf("ClampUint8(%v) = %d, expected %d", tt.in, got, tt.expected)
		}
	}
}

func TestClampInt(t *testing.T) {
	for in, expected := range map[int]uint8{-1: 0, 0: 0, 28: 28, 255: 255, 1020: 255} {
		if got := ClampInt(in); got != expected {
			t.Errorf("ClampInt(%d) = %d, expected %d", in, got, expected)
		}
	}
}

func TestSeverityString(t *testing.T) {
	if Fatal.String() != "Fatal" || Debug.String() != "Debug" {
		t.Errorf("unexpected names %s, %s", Fatal, Debug)
	}
}
