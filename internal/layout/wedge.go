package layout

import (
	"fmt"
	"sort"
)

// Wedge is a contiguous angular interval assigned to one item for pointer
// hit-testing. Start is always smaller than End; either may lie outside
// [0, 360) so that a wedge crossing the top of the circle stays a single
// non-wrapping interval.
type Wedge struct {
	Start float64
	End   float64
}

// Width returns the angular extent of the wedge.
func (w Wedge) Width() float64 {
	return w.End - w.Start
}

// Contains reports whether the given direction falls inside the wedge,
// accounting for wraparound.
func (w Wedge) Contains(angle float64) bool {
	return IsAngleBetween(angle, w.Start, w.End)
}

// Wedges partitions the circle among the given item angles, one wedge per
// angle in input order. Wedge boundaries sit at the angular midpoints
// between neighboring angles. When parentAngle is non-nil it joins the
// midpoint computation, which leaves an implicit uncovered wedge around the
// parent direction; without a parent the returned wedges cover the full
// circle exactly once.
//
// The computation sorts the angles, which is fine for the small item counts
// a menu level has.
func Wedges(angles []float64, parentAngle *float64) ([]Wedge, error) {
	for i, a := range angles {
		if err := checkAngle(a); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}
	if parentAngle != nil {
		if err := checkAngle(*parentAngle); err != nil {
			return nil, fmt.Errorf("parent: %w", err)
		}
	}

	if len(angles) == 0 {
		return nil, nil
	}
	if len(angles) == 1 && parentAngle == nil {
		// A lone item with nothing to separate from owns the full circle.
		return []Wedge{{Start: 0, End: 360}}, nil
	}

	all := make([]float64, 0, len(angles)+1)
	for _, a := range angles {
		all = append(all, Normalize(a))
	}
	if parentAngle != nil {
		all = append(all, Normalize(*parentAngle))
	}
	sort.Float64s(all)

	// Midpoints between cyclically adjacent angles are the separators. The
	// final one wraps around the top of the circle and may exceed 360.
	separators := make([]float64, len(all))
	for i := 0; i < len(all)-1; i++ {
		separators[i] = (all[i] + all[i+1]) / 2
	}
	separators[len(all)-1] = (all[len(all)-1] + all[0] + 360) / 2

	wedges := make([]Wedge, len(angles))
	for i, a := range angles {
		a = Normalize(a)
		// The first separator strictly above the angle closes its wedge.
		j := sort.Search(len(separators), func(k int) bool {
			return separators[k] > a
		})
		if j == 0 {
			wedges[i] = Wedge{
				Start: separators[len(separators)-1] - 360,
				End:   separators[0],
			}
		} else {
			wedges[i] = Wedge{Start: separators[j-1], End: separators[j]}
		}
	}
	return wedges, nil
}
