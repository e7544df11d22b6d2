// Package selection holds the single "which layer is active" state shared by
// the strip and the legend.
//
// Both views call the same Controller; neither keeps a copy of the state.
// Transitions run synchronously inside the UI event handler that received the
// pointer event, so the Controller does no locking.
package selection

import "github.com/janekbaraniewski/priceanatomy/internal/core"

// State is either Idle (Ok == false) or Active(ID).
type State struct {
	ID core.LayerID
	Ok bool
}

// Idle is the state with no active layer.
var Idle = State{}

// Active returns the state with id active.
func Active(id core.LayerID) State { return State{ID: id, Ok: true} }

// Is reports whether id is the active layer.
func (s State) Is(id core.LayerID) bool { return s.Ok && s.ID == id }

func (s State) String() string {
	if !s.Ok {
		return "idle"
	}
	return "active(" + string(s.ID) + ")"
}

// Observer is notified after every state change.
type Observer func(prev, next State)

// Controller owns the selection for one displayed item.
type Controller struct {
	state     State
	observers []Observer
}

// NewController returns a controller in the Idle state.
func NewController() *Controller {
	return &Controller{}
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// IsActive reports whether id is the active layer.
func (c *Controller) IsActive(id core.LayerID) bool { return c.state.Is(id) }

// AnyActive reports whether some layer is active.
func (c *Controller) AnyActive() bool { return c.state.Ok }

// Subscribe registers fn to run after each change. Observers run in
// registration order on the caller's goroutine.
func (c *Controller) Subscribe(fn Observer) {
	if fn != nil {
		c.observers = append(c.observers, fn)
	}
}

// HoverEnter makes id active, whatever the current state.
func (c *Controller) HoverEnter(id core.LayerID) {
	c.transition(Active(id))
}

// HoverLeave clears the selection only if id is the active layer. A leave
// event that arrives after the pointer already entered another layer is
// ignored.
func (c *Controller) HoverLeave(id core.LayerID) {
	if c.state.Is(id) {
		c.transition(Idle)
	}
}

// ToggleClick deselects id if it is active, otherwise selects it. This is the
// whole interaction model on devices without hover.
func (c *Controller) ToggleClick(id core.LayerID) {
	if c.state.Is(id) {
		c.transition(Idle)
		return
	}
	c.transition(Active(id))
}

// Set makes id active.
func (c *Controller) Set(id core.LayerID) {
	c.transition(Active(id))
}

// Clear returns to Idle.
func (c *Controller) Clear() {
	c.transition(Idle)
}

// Reset returns to Idle when the displayed item changes.
func (c *Controller) Reset() {
	c.transition(Idle)
}

func (c *Controller) transition(next State) {
	prev := c.state
	if prev == next {
		return
	}
	c.state = next
	for _, fn := range c.observers {
		fn(prev, next)
	}
}
