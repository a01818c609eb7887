package layout

import "fmt"

// DropIndex resolves the insertion slot a pointer direction indicates while
// an item is dragged over the menu. The circle is divided into drop zones
// partitioned like wedges but centered on the items rather than between
// them: pointing near an item means inserting adjacent to it.
//
// The result is in [0, len(angles)]: index i inserts before item i, index
// len(angles) appends at the end. The angle list must be in cyclic order,
// as produced by AssignAngles.
func DropIndex(angles []float64, pointerAngle float64) (int, error) {
	if err := checkAngle(pointerAngle); err != nil {
		return 0, fmt.Errorf("pointer: %w", err)
	}
	for i, a := range angles {
		if err := checkAngle(a); err != nil {
			return 0, fmt.Errorf("item %d: %w", i, err)
		}
	}

	switch len(angles) {
	case 0:
		return 0, nil
	case 1:
		// A single item has two sides: before it when the pointer is
		// within 90° of its direction, after it otherwise.
		a := Normalize(angles[0])
		if IsAngleBetween(Normalize(pointerAngle), a-90, a+90) {
			return 0, nil
		}
		return 1, nil
	}

	pointer := Normalize(pointerAngle)
	n := len(angles)
	for i := 0; i < n; i++ {
		curr := Normalize(angles[i])
		prev := Normalize(angles[(i+n-1)%n])
		next := Normalize(angles[(i+1)%n])

		// Undo the wraparound of the cyclic neighbors so the zone is a
		// plain interval around curr.
		if prev > curr {
			prev -= 360
		}
		if next < curr {
			next += 360
		}

		zone := Wedge{Start: (prev + curr) / 2, End: (curr + next) / 2}
		if zone.Contains(pointer) {
			return i, nil
		}
	}

	// Unreachable for a well-formed angle list: the zones partition the
	// full circle.
	return n, nil
}
