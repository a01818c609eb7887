package menu

import (
	"errors"
	"fmt"

	"github.com/mkravt/piemenu/internal/layout"
)

// Hit-test results that do not name a child index.
const (
	// HitNone means the pointer sits in the dead zone around the center.
	HitNone = -1
	// HitBack means the pointer sits in the parent gap, i.e. on the link
	// back to the enclosing menu.
	HitBack = -2
)

// ErrNoDrag is returned by drag operations when no drag is in flight.
var ErrNoDrag = errors.New("menu: no drag in progress")

// Level is one ring of the menu: the children of a node together with
// their resolved angles and hit-test wedges.
type Level struct {
	Node        *Item
	ParentAngle *float64
	Angles      []float64
	Wedges      []layout.Wedge
}

// newLevel resolves the layout for the children of node.
func newLevel(node *Item, parentAngle *float64) (*Level, error) {
	angles, err := layout.AssignAngles(layoutItems(node.Children), parentAngle)
	if err != nil {
		return nil, fmt.Errorf("menu %q: %w", node.Label, err)
	}
	wedges, err := layout.Wedges(angles, parentAngle)
	if err != nil {
		return nil, fmt.Errorf("menu %q: %w", node.Label, err)
	}
	return &Level{
		Node:        node,
		ParentAngle: parentAngle,
		Angles:      angles,
		Wedges:      wedges,
	}, nil
}

// HitTest maps a pointer direction to the index of the child whose wedge
// contains it, or HitBack when the pointer falls into the parent gap.
func (l *Level) HitTest(pointerAngle float64) int {
	for i, w := range l.Wedges {
		if w.Contains(layout.Normalize(pointerAngle)) {
			return i
		}
	}
	return HitBack
}

// Drag describes a reorder gesture in flight.
type Drag struct {
	// Index is the position of the dragged child in the level's item list.
	Index int
	// DropIndex is the insertion slot among the remaining children.
	DropIndex int
	// Angles are the preview angles of the remaining children, in their
	// current order without the dragged one.
	Angles []float64
	// DropAngle is where the dragged item would land.
	DropAngle float64
}

// State tracks a user's position inside a menu tree plus any drag gesture
// in flight. It never mutates the tree except when a drop is committed.
type State struct {
	root   *Item
	levels []*Level
	drag   *Drag
}

// NewState opens a menu tree at its root level.
func NewState(root *Item) (*State, error) {
	lvl, err := newLevel(root, nil)
	if err != nil {
		return nil, err
	}
	return &State{root: root, levels: []*Level{lvl}}, nil
}

// Current returns the level the user is looking at.
func (s *State) Current() *Level {
	return s.levels[len(s.levels)-1]
}

// Depth returns how many levels deep the user is; the root level is 1.
func (s *State) Depth() int {
	return len(s.levels)
}

// PathTo returns the slash-joined path of the given child of the current
// level, starting at the root label.
func (s *State) PathTo(index int) string {
	labels := make([]string, 0, len(s.levels)+1)
	for _, lvl := range s.levels {
		labels = append(labels, lvl.Node.Label)
	}
	labels = append(labels, s.Current().Node.Children[index].Label)
	return Path(labels...)
}

// ParentPath returns the slash-joined path of the current level's node.
func (s *State) ParentPath() string {
	labels := make([]string, 0, len(s.levels))
	for _, lvl := range s.levels {
		labels = append(labels, lvl.Node.Label)
	}
	return Path(labels...)
}

// Descend enters the submenu behind the given child. The child's own angle
// plus 180° becomes the next level's parent direction.
func (s *State) Descend(index int) error {
	lvl := s.Current()
	if index < 0 || index >= len(lvl.Node.Children) {
		return fmt.Errorf("menu: no item at index %d", index)
	}
	child := lvl.Node.Children[index]
	if !child.IsSubmenu() {
		return fmt.Errorf("menu: item %q is not a submenu", child.Label)
	}

	back := layout.Normalize(lvl.Angles[index] + 180)
	next, err := newLevel(child, &back)
	if err != nil {
		return err
	}
	s.levels = append(s.levels, next)
	return nil
}

// Ascend goes back to the enclosing level. At the root it does nothing.
func (s *State) Ascend() {
	if len(s.levels) > 1 {
		s.levels = s.levels[:len(s.levels)-1]
	}
}

// Drag returns the drag gesture in flight, or nil.
func (s *State) Drag() *Drag {
	return s.drag
}

// BeginDrag starts dragging the given child of the current level.
func (s *State) BeginDrag(index int) error {
	lvl := s.Current()
	if index < 0 || index >= len(lvl.Node.Children) {
		return fmt.Errorf("menu: no item at index %d", index)
	}
	s.drag = &Drag{Index: index, DropIndex: index}
	return s.updateDrag(lvl.Angles[index])
}

// DragTo updates the drag with a new pointer direction, recomputing the
// insertion slot and the preview angles of the remaining items.
func (s *State) DragTo(pointerAngle float64) error {
	if s.drag == nil {
		return ErrNoDrag
	}
	return s.updateDrag(pointerAngle)
}

func (s *State) updateDrag(pointerAngle float64) error {
	lvl := s.Current()
	rest := withoutIndex(lvl.Node.Children, s.drag.Index)

	restAngles, err := layout.AssignAngles(layoutItems(rest), lvl.ParentAngle)
	if err != nil {
		return err
	}
	dropIndex, err := layout.DropIndex(restAngles, pointerAngle)
	if err != nil {
		return err
	}
	angles, dropAngle, err := layout.AssignAnglesForDrag(layoutItems(rest), lvl.ParentAngle, dropIndex)
	if err != nil {
		return err
	}

	s.drag.DropIndex = dropIndex
	s.drag.Angles = angles
	s.drag.DropAngle = *dropAngle
	return nil
}

// Drop commits the drag: the dragged child moves to the resolved slot and
// loses its fixed angle (it has been placed by hand). The level layout is
// recomputed and the new label order returned for persistence.
func (s *State) Drop() ([]string, error) {
	if s.drag == nil {
		return nil, ErrNoDrag
	}
	lvl := s.Current()

	dragged := lvl.Node.Children[s.drag.Index]
	rest := withoutIndex(lvl.Node.Children, s.drag.Index)

	reordered := make([]*Item, 0, len(lvl.Node.Children))
	reordered = append(reordered, rest[:s.drag.DropIndex]...)
	reordered = append(reordered, dragged)
	reordered = append(reordered, rest[s.drag.DropIndex:]...)

	dragged.FixedAngle = nil
	lvl.Node.Children = reordered
	s.drag = nil

	if err := s.reloadCurrent(); err != nil {
		return nil, err
	}

	order := make([]string, len(reordered))
	for i, c := range reordered {
		order[i] = c.Label
	}
	return order, nil
}

// CancelDrag abandons the gesture without touching the item list.
func (s *State) CancelDrag() {
	s.drag = nil
}

// reloadCurrent recomputes the top level after its item list changed.
func (s *State) reloadCurrent() error {
	lvl := s.Current()
	next, err := newLevel(lvl.Node, lvl.ParentAngle)
	if err != nil {
		return err
	}
	s.levels[len(s.levels)-1] = next
	return nil
}

// withoutIndex copies children, leaving out the element at i.
func withoutIndex(children []*Item, i int) []*Item {
	rest := make([]*Item, 0, len(children)-1)
	rest = append(rest, children[:i]...)
	rest = append(rest, children[i+1:]...)
	return rest
}
