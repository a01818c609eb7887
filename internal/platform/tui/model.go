package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkravt/piemenu/internal/menu"
	"github.com/mkravt/piemenu/internal/storage"
)

// deadZone is the distance in rows below which the pointer counts as
// resting on the center rather than pointing at an item.
const deadZone = 1.5

// dragThreshold is how far (in cells) a pressed pointer must travel
// before the press turns into a reorder drag.
const dragThreshold = 2

// Options configure a menu session.
type Options struct {
	// MenuID names the menu, used as the key for selection history
	// and persisted ordering.
	MenuID string
	// Store records selections and item order. May be nil, in which
	// case nothing is persisted.
	Store *storage.Store
	// Width and Height give the initial terminal size.
	Width  int
	Height int
}

// Result is what the session ended with. Item is nil when the user quit
// without selecting anything.
type Result struct {
	Path string
	Item *menu.Item
}

// Model is the Bubble Tea model driving a radial menu session.
type Model struct {
	state *menu.State
	opts  Options

	canvas *Canvas
	keys   *KeyMapper

	hover   int // hovered child index, or menu.HitNone / menu.HitBack
	pressed int // child index pressed with the mouse, or menu.HitNone

	pressX, pressY int
	mouseX, mouseY int

	result   Result
	err      error
	quitting bool
}

// NewModel opens a menu tree for interactive use.
func NewModel(root *menu.Item, opts Options) (*Model, error) {
	state, err := menu.NewState(root)
	if err != nil {
		return nil, err
	}
	if opts.Width <= 0 {
		opts.Width = 80
	}
	if opts.Height <= 0 {
		opts.Height = 24
	}
	return &Model{
		state:   state,
		opts:    opts,
		canvas:  NewCanvas(opts.Width, opts.Height),
		keys:    NewKeyMapper(),
		hover:   menu.HitNone,
		pressed: menu.HitNone,
		mouseX:  -1,
		mouseY:  -1,
	}, nil
}

// Result returns the item the user activated, if any.
func (m *Model) Result() Result {
	return m.result
}

// Err returns the error that ended the session early, if any.
func (m *Model) Err() error {
	return m.err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.canvas.Resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg, m.state.Drag() != nil) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionCancel:
		m.state.CancelDrag()
		m.pressed = menu.HitNone
	case MenuActionBack:
		if m.state.Depth() > 1 {
			m.state.Ascend()
			m.hover = menu.HitNone
		} else {
			m.quitting = true
			return m, tea.Quit
		}
	case MenuActionNext:
		m.rotateHover(1)
	case MenuActionPrev:
		m.rotateHover(-1)
	case MenuActionSelect:
		return m.activate(m.hover)
	}
	return m, nil
}

// handleMouse drives hover, press and drag gestures from pointer events.
func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.mouseX, m.mouseY = msg.X, msg.Y
	angle, dist := m.canvas.PointerAngle(msg.X, msg.Y)

	if m.state.Drag() != nil {
		switch msg.Action {
		case tea.MouseActionMotion:
			if dist >= deadZone {
				if err := m.state.DragTo(angle); err != nil {
					return m.fail(err)
				}
			}
		case tea.MouseActionRelease:
			return m.commitDrop()
		}
		return m, nil
	}

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if dist < deadZone {
			m.pressed = menu.HitNone
			return m, nil
		}
		m.hover = m.state.Current().HitTest(angle)
		m.pressed = m.hover
		m.pressX, m.pressY = msg.X, msg.Y

	case msg.Action == tea.MouseActionMotion:
		if m.pressed >= 0 && moved(m.pressX, m.pressY, msg.X, msg.Y) {
			if err := m.state.BeginDrag(m.pressed); err != nil {
				return m.fail(err)
			}
			if dist >= deadZone {
				if err := m.state.DragTo(angle); err != nil {
					return m.fail(err)
				}
			}
			return m, nil
		}
		if dist < deadZone {
			m.hover = menu.HitNone
		} else {
			m.hover = m.state.Current().HitTest(angle)
		}

	case msg.Action == tea.MouseActionRelease:
		pressed := m.pressed
		m.pressed = menu.HitNone
		if pressed != menu.HitNone && pressed == m.hover {
			return m.activate(pressed)
		}
	}
	return m, nil
}

// commitDrop finishes a reorder gesture and persists the new order.
func (m *Model) commitDrop() (tea.Model, tea.Cmd) {
	order, err := m.state.Drop()
	if err != nil {
		return m.fail(err)
	}
	m.pressed = menu.HitNone
	m.hover = menu.HitNone
	if m.opts.Store != nil {
		if err := m.opts.Store.SaveOrder(m.opts.MenuID, m.state.ParentPath(), order); err != nil {
			return m.fail(fmt.Errorf("saving item order: %w", err))
		}
	}
	return m, nil
}

// activate selects a hover target: descend into submenus, go back on the
// parent link, end the session on a leaf.
func (m *Model) activate(index int) (tea.Model, tea.Cmd) {
	lvl := m.state.Current()
	switch {
	case index == menu.HitBack:
		if m.state.Depth() > 1 {
			m.state.Ascend()
			m.hover = menu.HitNone
		}
	case index >= 0 && index < len(lvl.Node.Children):
		child := lvl.Node.Children[index]
		if child.IsSubmenu() {
			if err := m.state.Descend(index); err != nil {
				return m.fail(err)
			}
			m.hover = menu.HitNone
			return m, nil
		}
		path := m.state.PathTo(index)
		if m.opts.Store != nil {
			if err := m.opts.Store.RecordSelection(m.opts.MenuID, path); err != nil {
				return m.fail(fmt.Errorf("recording selection: %w", err))
			}
		}
		m.result = Result{Path: path, Item: child}
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// rotateHover moves the hover to the next or previous target in clockwise
// angle order. The parent link takes part in the cycle.
func (m *Model) rotateHover(dir int) {
	targets := hoverCycle(m.state.Current())
	if len(targets) == 0 {
		return
	}
	pos := -1
	for i, t := range targets {
		if t.index == m.hover {
			pos = i
			break
		}
	}
	if pos == -1 {
		m.hover = targets[0].index
		return
	}
	n := len(targets)
	m.hover = targets[((pos+dir)%n+n)%n].index
}

type hoverTarget struct {
	index int
	angle float64
}

// hoverCycle lists the level's hover targets sorted by angle, starting
// nearest the top, so keyboard rotation walks the ring clockwise.
func hoverCycle(lvl *menu.Level) []hoverTarget {
	targets := make([]hoverTarget, 0, len(lvl.Angles)+1)
	for i, a := range lvl.Angles {
		targets = append(targets, hoverTarget{index: i, angle: a})
	}
	if lvl.ParentAngle != nil {
		targets = append(targets, hoverTarget{index: menu.HitBack, angle: *lvl.ParentAngle})
	}
	for i := 1; i < len(targets); i++ {
		for j := i; j > 0 && targets[j].angle < targets[j-1].angle; j-- {
			targets[j], targets[j-1] = targets[j-1], targets[j]
		}
	}
	return targets
}

func (m *Model) fail(err error) (tea.Model, tea.Cmd) {
	m.err = err
	m.quitting = true
	return m, tea.Quit
}

func moved(x0, y0, x1, y1 int) bool {
	dx, dy := x1-x0, y1-y0
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx >= dragThreshold || dy >= dragThreshold
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return RenderCanvas(m.canvas)
}

// Run starts the Bubble Tea program for the given menu tree and returns
// what the user picked.
func Run(root *menu.Item, opts Options) (Result, error) {
	model, err := NewModel(root, opts)
	if err != nil {
		return Result{}, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // hover needs motion events without a button held
	)

	if _, err := p.Run(); err != nil {
		return Result{}, err
	}
	if model.err != nil {
		return Result{}, model.err
	}
	return model.result, nil
}
