package layout

import (
	"fmt"
	"math"
)

// Item is the layout view of a menu entry. Only the optional fixed angle
// matters here; identity is the slice index, which is stable across all
// operations of this package.
type Item struct {
	// FixedAngle pins the item to a direction in degrees. Items without a
	// fixed angle are distributed evenly into the gaps between their fixed
	// neighbors.
	FixedAngle *float64
}

const (
	// parentCollisionEps is the tolerance below which a fixed angle is
	// considered to collide with the parent direction.
	parentCollisionEps = 1e-4

	// parentCollisionNudge is how far a colliding fixed angle is shifted.
	parentCollisionNudge = 0.1
)

// fixedAnchor is a fixed angle together with the index of the item that
// carries it.
type fixedAnchor struct {
	index int
	angle float64
}

// nudgeParentCollisions shifts fixed angles that coincide with the parent
// direction so the parent gap never degenerates to zero width.
//
// Known limitation: the shifted angle is not re-checked against other fixed
// angles, so two fixed angles placed very close to the parent direction can
// still end up in a near-zero-width wedge. Wedge widths stay non-negative
// regardless.
func nudgeParentCollisions(fixed []fixedAnchor, parentAngle float64) {
	for i := range fixed {
		if Distance(fixed[i].angle, parentAngle) < parentCollisionEps {
			fixed[i].angle += parentCollisionNudge
		}
	}
}

// pruneNonMonotonic drops anchors whose angle is smaller than that of an
// earlier anchor. The affected items are placed by even distribution
// instead; this is defined fallback behavior, not an error.
func pruneNonMonotonic(fixed []fixedAnchor) []fixedAnchor {
	kept := fixed[:0]
	for _, fa := range fixed {
		if len(kept) == 0 || fa.angle >= kept[len(kept)-1].angle {
			kept = append(kept, fa)
		}
	}
	return kept
}

// synthesizeAnchor picks an angle for item 0 when no item has a fixed
// angle. Without a parent, item 0 goes straight to the top. With one, the
// circle is divided into n+1 equal wedges around the parent direction and
// the wedge boundary closest to the top wins, keeping the first item near
// 12 o'clock whenever possible.
func synthesizeAnchor(n int, parentAngle *float64) fixedAnchor {
	if parentAngle == nil {
		return fixedAnchor{index: 0, angle: 0}
	}

	wedge := 360.0 / float64(n+1)
	best := 0.0
	bestDiff := 360.0
	for i := 0; i < n; i++ {
		angle := Normalize(*parentAngle + float64(i+1)*wedge)
		diff := math.Min(angle, 360-angle)
		if diff < bestDiff {
			bestDiff = diff
			best = angle
		}
	}
	return fixedAnchor{index: 0, angle: best}
}

// AssignAngles gives every item a direction in degrees. Items with a fixed
// angle keep it (modulo the parent collision nudge), the rest are spread
// evenly into the gaps between their fixed neighbors. A non-nil parentAngle
// marks the direction back to the enclosing menu; one slot is reserved
// there so no item ends up on the back link.
//
// The returned slice holds exactly one angle per item, in item order,
// normalized into [0, 360). Fixed angles that would break the monotonic
// order of the fixed set are ignored and their items placed as if unfixed.
func AssignAngles(items []Item, parentAngle *float64) ([]float64, error) {
	if parentAngle != nil {
		if err := checkAngle(*parentAngle); err != nil {
			return nil, fmt.Errorf("parent: %w", err)
		}
	}

	angles := make([]float64, len(items))
	if len(items) == 0 {
		return angles, nil
	}

	fixed := make([]fixedAnchor, 0, len(items))
	for i, it := range items {
		if it.FixedAngle == nil {
			continue
		}
		if err := checkAngle(*it.FixedAngle); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		fixed = append(fixed, fixedAnchor{index: i, angle: *it.FixedAngle})
	}

	if parentAngle != nil {
		nudgeParentCollisions(fixed, *parentAngle)
	}
	for i := range fixed {
		fixed[i].angle = Normalize(fixed[i].angle)
	}
	fixed = pruneNonMonotonic(fixed)

	if len(fixed) == 0 {
		fixed = append(fixed, synthesizeAnchor(len(items), parentAngle))
	}

	// Walk the anchors as a cyclic sequence of (begin, end) pairs and
	// distribute the unfixed items across each wedge. A single anchor
	// pairs with itself and its wedge spans the full circle.
	n := len(items)
	for i := range fixed {
		begin := fixed[i]
		end := fixed[(i+1)%len(fixed)]

		endIndex := end.index
		if endIndex <= begin.index {
			endIndex += n
		}
		endAngle := end.angle
		if endAngle <= begin.angle {
			endAngle += 360
		}

		count := endIndex - begin.index - 1

		// Reserve one slot for the link back to the parent menu if its
		// direction falls strictly inside this wedge.
		parentSlot := math.Inf(1)
		if parentAngle != nil {
			p := Normalize(*parentAngle)
			for p <= begin.angle {
				p += 360
			}
			if p < endAngle {
				parentSlot = p
				count++
			}
		}

		gap := (endAngle - begin.angle) / float64(count+1)
		slot := 1
		for j := begin.index + 1; j < endIndex; j++ {
			angle := begin.angle + float64(slot)*gap
			// The slot the parent direction falls on stays empty, so no
			// item angle can coincide with the parent angle.
			if angle >= parentSlot-parentCollisionEps {
				slot++
				angle = begin.angle + float64(slot)*gap
				parentSlot = math.Inf(1)
			}
			angles[j%n] = Normalize(angle)
			slot++
		}

		angles[begin.index] = Normalize(begin.angle)
	}

	return angles, nil
}
