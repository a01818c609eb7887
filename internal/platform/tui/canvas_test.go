package tui

import (
	"testing"

	"github.com/mkravt/piemenu/internal/layout"
)

func TestCanvasSetGet(t *testing.T) {
	c := NewCanvas(10, 5)

	c.Set(3, 2, 'x', ColorRed)
	got := c.Get(3, 2)
	if got.Rune != 'x' || got.Color != ColorRed {
		t.Errorf("Get(3, 2) = %+v, want x in red", got)
	}

	// Out of bounds writes are dropped, reads come back empty.
	c.Set(-1, 0, 'y', ColorRed)
	c.Set(10, 0, 'y', ColorRed)
	if got := c.Get(99, 99); got.Rune != ' ' {
		t.Errorf("out of bounds Get = %+v, want blank", got)
	}
}

func TestCanvasText(t *testing.T) {
	c := NewCanvas(10, 3)
	c.Text(2, 1, "hi", ColorCyan)

	if c.Get(2, 1).Rune != 'h' || c.Get(3, 1).Rune != 'i' {
		t.Error("Text did not write runes at expected cells")
	}
}

func TestCanvasTextCentered(t *testing.T) {
	c := NewCanvas(11, 3)
	c.TextCentered(5, 1, "abc", ColorCyan)

	if c.Get(4, 1).Rune != 'a' || c.Get(5, 1).Rune != 'b' || c.Get(6, 1).Rune != 'c' {
		t.Error("TextCentered did not center on the given cell")
	}
}

func TestCanvasResizeClears(t *testing.T) {
	c := NewCanvas(10, 5)
	c.Set(1, 1, 'x', ColorRed)

	c.Resize(20, 8)
	if c.Width() != 20 || c.Height() != 8 {
		t.Fatalf("size after resize = %dx%d, want 20x8", c.Width(), c.Height())
	}
	if c.Get(1, 1).Rune != ' ' {
		t.Error("resize kept old content")
	}
}

func TestCanvasRadiusFits(t *testing.T) {
	c := NewCanvas(80, 24)
	r := c.Radius()
	if r <= 0 {
		t.Fatalf("Radius() = %v, want positive", r)
	}

	// Every projected ring cell must land inside the canvas.
	for a := 0; a < 360; a++ {
		x, y := c.Project(float64(a), r)
		if x < 0 || x >= c.Width() || y < 0 || y >= c.Height() {
			t.Fatalf("Project(%d, %v) = (%d, %d) out of 80x24", a, r, x, y)
		}
	}
}

func TestCanvasRadiusMinimum(t *testing.T) {
	c := NewCanvas(3, 2)
	if r := c.Radius(); r < 1 {
		t.Errorf("Radius() = %v on a tiny canvas, want at least 1", r)
	}
}

func TestProjectCardinalDirections(t *testing.T) {
	c := NewCanvas(80, 24)
	cx, cy := c.Center()

	tests := []struct {
		name  string
		angle float64
		check func(x, y int) bool
	}{
		{"up", 0, func(x, y int) bool { return x == cx && y < cy }},
		{"right", 90, func(x, y int) bool { return x > cx && y == cy }},
		{"down", 180, func(x, y int) bool { return x == cx && y > cy }},
		{"left", 270, func(x, y int) bool { return x < cx && y == cy }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := c.Project(tt.angle, 8)
			if !tt.check(x, y) {
				t.Errorf("Project(%v, 8) = (%d, %d), center (%d, %d)", tt.angle, x, y, cx, cy)
			}
		})
	}
}

func TestPointerAngleRoundTrip(t *testing.T) {
	c := NewCanvas(80, 24)
	radius := c.Radius()

	// Cell quantization costs a few degrees; the recovered direction must
	// stay well inside one wedge of an 8-item menu.
	for a := 0; a < 360; a += 15 {
		x, y := c.Project(float64(a), radius)
		got, dist := c.PointerAngle(x, y)
		if d := layout.Distance(got, float64(a)); d > 12 {
			t.Errorf("PointerAngle(Project(%d)) = %v, off by %v", a, got, d)
		}
		if dist < radius-2 || dist > radius+2 {
			t.Errorf("distance for angle %d = %v, want about %v", a, dist, radius)
		}
	}
}

func TestPointerAngleCenter(t *testing.T) {
	c := NewCanvas(80, 24)
	cx, cy := c.Center()
	_, dist := c.PointerAngle(cx, cy)
	if dist != 0 {
		t.Errorf("distance at center = %v, want 0", dist)
	}
}
