package layout

import (
	"math"
	"testing"
)

const floatEps = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, expected float64
	}{
		{0, 0},
		{360, 0},
		{725, 5},
		{-90, 270},
		{-360, 0},
		{180.5, 180.5},
	}

	for _, tc := range tests {
		if got := Normalize(tc.in); !almostEqual(got, tc.expected) {
			t.Errorf("Normalize(%v) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}

func TestAngleOf(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec
		expected float64
	}{
		{"up", Vec{0, -1}, 0},
		{"right", Vec{1, 0}, 90},
		{"down", Vec{0, 1}, 180},
		{"left", Vec{-1, 0}, 270},
		{"up-right diagonal", Vec{1, -1}, 45},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := AngleOf(tc.v); !almostEqual(got, tc.expected) {
				t.Errorf("AngleOf(%v) = %v, expected %v", tc.v, got, tc.expected)
			}
		})
	}
}

func TestDirection(t *testing.T) {
	tests := []struct {
		name          string
		angle, length float64
		expected      Vec
	}{
		{"up", 0, 2, Vec{0, -2}},
		{"right", 90, 1, Vec{1, 0}},
		{"down", 180, 3, Vec{0, 3}},
		{"left", 270, 1, Vec{-1, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Direction(tc.angle, tc.length)
			if !almostEqual(got.X, tc.expected.X) || !almostEqual(got.Y, tc.expected.Y) {
				t.Errorf("Direction(%v, %v) = %v, expected %v", tc.angle, tc.length, got, tc.expected)
			}
		})
	}
}

func TestDirectionAngleOfRoundTrip(t *testing.T) {
	for angle := 0.0; angle < 360; angle += 7.5 {
		v := Direction(angle, 10)
		if got := AngleOf(v); !almostEqual(got, angle) {
			t.Errorf("AngleOf(Direction(%v)) = %v", angle, got)
		}
		if !almostEqual(v.Len(), 10) {
			t.Errorf("Direction(%v, 10).Len() = %v", angle, v.Len())
		}
	}
}

func TestIsAngleBetween(t *testing.T) {
	tests := []struct {
		name              string
		angle, start, end float64
		expected          bool
	}{
		{"plain inside", 50, 45, 135, true},
		{"below start", 40, 45, 135, false},
		{"start exclusive", 45, 45, 135, false},
		{"end inclusive", 135, 45, 135, true},
		{"wraparound via minus 360", 350, -45, 45, true},
		{"wraparound via plus 360", 5, 350, 370, true},
		{"outside wraparound range", 180, -45, 45, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsAngleBetween(tc.angle, tc.start, tc.end); got != tc.expected {
				t.Errorf("IsAngleBetween(%v, %v, %v) = %v, expected %v",
					tc.angle, tc.start, tc.end, got, tc.expected)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b, expected float64
	}{
		{0, 0, 0},
		{0, 90, 90},
		{350, 10, 20},
		{10, 350, 20},
		{0, 180, 180},
		{-90, 90, 180},
	}

	for _, tc := range tests {
		if got := Distance(tc.a, tc.b); !almostEqual(got, tc.expected) {
			t.Errorf("Distance(%v, %v) = %v, expected %v", tc.a, tc.b, got, tc.expected)
		}
	}
}

func TestRadiansDegrees(t *testing.T) {
	if got := Radians(180); math.Abs(got-math.Pi) > floatEps {
		t.Errorf("Radians(180) = %v, expected pi", got)
	}
	if got := Degrees(math.Pi / 2); !almostEqual(got, 90) {
		t.Errorf("Degrees(pi/2) = %v, expected 90", got)
	}
}
