package tui

import (
	"github.com/mkravt/piemenu/internal/layout"
	"github.com/mkravt/piemenu/internal/menu"
)

const (
	ringRune   = '·'
	backRune   = '↩'
	dropRune   = '◆'
	centerRune = '●'
)

const helpLine = "←/→ hover · enter select · esc back · drag to reorder · q quit"

// draw paints the current level onto the canvas.
func (m *Model) draw() {
	m.canvas.Clear()

	lvl := m.state.Current()
	radius := m.canvas.Radius()

	m.drawRing(radius)
	m.drawCenter(lvl)

	if drag := m.state.Drag(); drag != nil {
		m.drawDrag(lvl, drag, radius)
	} else {
		m.drawItems(lvl, radius)
	}

	cx, _ := m.canvas.Center()
	m.canvas.TextCentered(cx, m.canvas.Height()-1, helpLine, ColorGray)
}

// drawRing paints the dotted circle the items sit on.
func (m *Model) drawRing(radius float64) {
	for a := 0; a < 360; a += 4 {
		x, y := m.canvas.Project(float64(a), radius)
		m.canvas.Set(x, y, ringRune, ColorGray)
	}
}

// drawCenter paints the hub and the label of whatever is hovered.
func (m *Model) drawCenter(lvl *menu.Level) {
	cx, cy := m.canvas.Center()
	m.canvas.Set(cx, cy, centerRune, ColorWhite)

	label := lvl.Node.Label
	color := ColorGray
	switch {
	case m.hover == menu.HitBack:
		label = "back"
		color = ColorBrightCyan
	case m.hover >= 0 && m.hover < len(lvl.Node.Children):
		label = lvl.Node.Children[m.hover].Label
		color = ColorBrightWhite
	}
	m.canvas.TextCentered(cx, cy+2, label, color)
}

// drawItems paints the level's children at their assigned angles, plus
// the link back to the parent when there is one.
func (m *Model) drawItems(lvl *menu.Level, radius float64) {
	for i, child := range lvl.Node.Children {
		m.drawItem(child, lvl.Angles[i], i == m.hover)
	}
	if lvl.ParentAngle != nil {
		x, y := m.canvas.Project(*lvl.ParentAngle, radius)
		color := ColorGray
		if m.hover == menu.HitBack {
			color = ColorBrightCyan
		}
		m.canvas.Set(x, y, backRune, color)
	}
}

// drawDrag paints the reorder preview: the remaining items at their
// preview angles, the drop marker, and the dragged item on the pointer.
func (m *Model) drawDrag(lvl *menu.Level, drag *menu.Drag, radius float64) {
	rest := 0
	for i, child := range lvl.Node.Children {
		if i == drag.Index {
			continue
		}
		m.drawItem(child, drag.Angles[rest], false)
		rest++
	}
	if lvl.ParentAngle != nil {
		x, y := m.canvas.Project(*lvl.ParentAngle, radius)
		m.canvas.Set(x, y, backRune, ColorGray)
	}

	x, y := m.canvas.Project(drag.DropAngle, radius)
	m.canvas.Set(x, y, dropRune, ColorBrightYellow)

	dragged := lvl.Node.Children[drag.Index]
	if m.mouseX >= 0 {
		m.canvas.TextCentered(m.mouseX, m.mouseY, itemLabel(dragged), ColorBrightYellow)
	}
}

// drawItem paints one item label just outside the ring so text does not
// cover the circle.
func (m *Model) drawItem(child *menu.Item, angle float64, hovered bool) {
	x, y := m.canvas.Project(angle, m.canvas.Radius()+1)

	color := ColorCyan
	switch {
	case hovered:
		color = ColorBrightWhite
	case child.IsSubmenu():
		color = ColorYellow
	}

	label := itemLabel(child)
	if child.IsSubmenu() {
		label += " ▸"
	}

	// Nudge labels sideways so they grow away from the ring.
	switch {
	case onRightHalf(angle):
		m.canvas.Text(x, y, label, color)
	case onLeftHalf(angle):
		m.canvas.Text(x-len([]rune(label))+1, y, label, color)
	default:
		m.canvas.TextCentered(x, y, label, color)
	}
}

func itemLabel(it *menu.Item) string {
	if it.Icon != "" {
		return it.Icon + " " + it.Label
	}
	return it.Label
}

func onRightHalf(angle float64) bool {
	a := layout.Normalize(angle)
	return a > 30 && a < 150
}

func onLeftHalf(angle float64) bool {
	a := layout.Normalize(angle)
	return a > 210 && a < 330
}
