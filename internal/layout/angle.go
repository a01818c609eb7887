// Package layout computes the angular placement of radial menu items.
// It contains no external dependencies (especially no Bubble Tea) to keep
// the geometry pure and testable. All angles are degrees with 0° pointing
// up, 90° right, 180° down and 270° left.
package layout

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidAngle is returned when a caller passes a NaN or infinite angle.
var ErrInvalidAngle = errors.New("layout: invalid angle")

// Vec is a 2D vector in screen coordinates (y grows downwards).
type Vec struct {
	X, Y float64
}

// Len returns the length of the vector.
func (v Vec) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Normalize maps an angle into [0, 360).
func Normalize(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// AngleOf returns the direction of v in degrees. The standard atan2 angle
// is rotated by +90° so that (0, -1) maps to 0° (up) and (1, 0) to 90°
// (right). The result is in [0, 360).
func AngleOf(v Vec) float64 {
	return Normalize(Degrees(math.Atan2(v.Y, v.X)) + 90)
}

// Direction returns the vector of the given length pointing in the given
// direction. It is the inverse of AngleOf: the angle is rotated by -90°
// before the trigonometric conversion. Consumers rely on this exact mapping
// to place items around the menu center.
func Direction(angle, length float64) Vec {
	r := Radians(angle - 90)
	return Vec{X: length * math.Cos(r), Y: length * math.Sin(r)}
}

// IsAngleBetween reports whether angle, angle+360 or angle-360 lies in
// (start, end]. This supports callers that pass unnormalized wraparound
// ranges such as (-45, 45].
func IsAngleBetween(angle, start, end float64) bool {
	return (angle > start && angle <= end) ||
		(angle+360 > start && angle+360 <= end) ||
		(angle-360 > start && angle-360 <= end)
}

// Distance returns the smaller arc between two directions, in [0, 180].
func Distance(a, b float64) float64 {
	d := math.Abs(Normalize(a) - Normalize(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// checkAngle rejects NaN and infinite angles so they cannot silently
// propagate into every downstream computation.
func checkAngle(deg float64) error {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidAngle, deg)
	}
	return nil
}
