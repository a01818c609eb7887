package layout

import (
	"errors"
	"math"
	"testing"
)

func TestWedgesQuadrants(t *testing.T) {
	wedges, err := Wedges([]float64{0, 90, 180, 270}, nil)
	if err != nil {
		t.Fatalf("Wedges() failed: %v", err)
	}

	expected := []Wedge{{-45, 45}, {45, 135}, {135, 225}, {225, 315}}
	if len(wedges) != len(expected) {
		t.Fatalf("expected %d wedges, got %d", len(expected), len(wedges))
	}
	for i := range expected {
		if !almostEqual(wedges[i].Start, expected[i].Start) || !almostEqual(wedges[i].End, expected[i].End) {
			t.Errorf("wedges[%d] = %+v, expected %+v", i, wedges[i], expected[i])
		}
	}
}

func TestWedgesEmpty(t *testing.T) {
	wedges, err := Wedges(nil, nil)
	if err != nil {
		t.Fatalf("Wedges() failed: %v", err)
	}
	if len(wedges) != 0 {
		t.Errorf("expected no wedges, got %v", wedges)
	}
}

func TestWedgesSingleItem(t *testing.T) {
	wedges, err := Wedges([]float64{200}, nil)
	if err != nil {
		t.Fatalf("Wedges() failed: %v", err)
	}
	if len(wedges) != 1 {
		t.Fatalf("expected 1 wedge, got %d", len(wedges))
	}
	if !almostEqual(wedges[0].Width(), 360) {
		t.Errorf("single item wedge = %+v, expected the full circle", wedges[0])
	}
}

func TestWedgesSingleItemWithParent(t *testing.T) {
	wedges, err := Wedges([]float64{0}, deg(180))
	if err != nil {
		t.Fatalf("Wedges() failed: %v", err)
	}
	if len(wedges) != 1 {
		t.Fatalf("expected 1 wedge, got %d", len(wedges))
	}

	// Half the circle belongs to the item, the rest is the parent gap.
	expected := Wedge{-90, 90}
	if !almostEqual(wedges[0].Start, expected.Start) || !almostEqual(wedges[0].End, expected.End) {
		t.Errorf("wedge = %+v, expected %+v", wedges[0], expected)
	}
}

func TestWedgesWraparound(t *testing.T) {
	wedges, err := Wedges([]float64{10, 20}, nil)
	if err != nil {
		t.Fatalf("Wedges() failed: %v", err)
	}

	expected := []Wedge{{-165, 15}, {15, 195}}
	for i := range expected {
		if !almostEqual(wedges[i].Start, expected[i].Start) || !almostEqual(wedges[i].End, expected[i].End) {
			t.Errorf("wedges[%d] = %+v, expected %+v", i, wedges[i], expected[i])
		}
	}
}

func TestWedgesFullCoverage(t *testing.T) {
	// Without a parent angle the wedges tile the circle exactly once.
	for n := 1; n <= 10; n++ {
		angles, err := AssignAngles(unfixed(n), nil)
		if err != nil {
			t.Fatalf("AssignAngles() failed: %v", err)
		}
		wedges, err := Wedges(angles, nil)
		if err != nil {
			t.Fatalf("Wedges() failed: %v", err)
		}

		total := 0.0
		for i, w := range wedges {
			if w.Width() < 0 {
				t.Errorf("n=%d: wedges[%d] = %+v has negative width", n, i, w)
			}
			if !w.Contains(angles[i]) {
				t.Errorf("n=%d: wedges[%d] = %+v does not contain its angle %v", n, i, w, angles[i])
			}
			total += w.Width()
		}
		if !almostEqual(total, 360) {
			t.Errorf("n=%d: wedge widths sum to %v, expected 360", n, total)
		}
	}
}

func TestWedgesParentGap(t *testing.T) {
	// With a parent angle the parent keeps its own implicit wedge: the item
	// wedges cover less than the full circle and none contains the parent.
	parent := 135.0
	angles, err := AssignAngles(unfixed(5), &parent)
	if err != nil {
		t.Fatalf("AssignAngles() failed: %v", err)
	}
	wedges, err := Wedges(angles, &parent)
	if err != nil {
		t.Fatalf("Wedges() failed: %v", err)
	}

	total := 0.0
	for i, w := range wedges {
		if w.Width() <= 0 {
			t.Errorf("wedges[%d] = %+v has non-positive width", i, w)
		}
		if w.Contains(parent) {
			t.Errorf("wedges[%d] = %+v contains the parent angle", i, w)
		}
		total += w.Width()
	}
	if total >= 360 {
		t.Errorf("wedge widths sum to %v, expected less than 360 (parent gap)", total)
	}
}

// A pathological input with two fixed angles right next to the parent
// direction may produce a tiny wedge, but never a negative one.
func TestWedgesNeverNegativeNearParent(t *testing.T) {
	items := []Item{{FixedAngle: deg(90.0)}, {FixedAngle: deg(90.05)}, {}, {}}
	parent := 90.0

	angles, err := AssignAngles(items, &parent)
	if err != nil {
		t.Fatalf("AssignAngles() failed: %v", err)
	}
	wedges, err := Wedges(angles, &parent)
	if err != nil {
		t.Fatalf("Wedges() failed: %v", err)
	}
	for i, w := range wedges {
		if w.Width() < 0 {
			t.Errorf("wedges[%d] = %+v has negative width", i, w)
		}
	}
}

func TestWedgesInvalidInput(t *testing.T) {
	if _, err := Wedges([]float64{math.NaN()}, nil); !errors.Is(err, ErrInvalidAngle) {
		t.Errorf("expected ErrInvalidAngle for NaN item angle, got %v", err)
	}
	if _, err := Wedges([]float64{0, 90}, deg(math.Inf(-1))); !errors.Is(err, ErrInvalidAngle) {
		t.Errorf("expected ErrInvalidAngle for infinite parent angle, got %v", err)
	}
}
