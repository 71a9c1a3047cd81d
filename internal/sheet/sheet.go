package sheet

import "log"

// Snapshot is the part of a sheet a renderer needs.
type Snapshot struct {
	State     State
	Offset    float64
	Dragging  bool
	Animating bool
}

// Sheet is a draggable panel with three snap points. It is not safe for
// concurrent use; hosts call it from their event loop only.
type Sheet struct {
	state     State
	offset    float64
	drag      DragController
	animation *Animation
	hub       *PointerHub
	release   func()
	closed    bool
}

// New creates a closed sheet that receives global pointer movement from hub.
// A nil integrator selects LinearSpring.
func New(hub *PointerHub, integrator Integrator) *Sheet {
	if hub == nil {
		hub = NewPointerHub()
	}
	return &Sheet{
		state:     Closed,
		hub:       hub,
		animation: NewAnimation(integrator),
	}
}

// State returns the current logical state.
func (s *Sheet) State() State { return s.state }

// Offset returns the current offset. Negative values are open.
func (s *Sheet) Offset() float64 { return s.offset }

// Snapshot returns the renderable state of the sheet.
func (s *Sheet) Snapshot() Snapshot {
	return Snapshot{
		State:     s.state,
		Offset:    s.offset,
		Dragging:  s.drag.Session().Dragging,
		Animating: s.animation.Active() != 0,
	}
}

// PointerDown starts a drag at y and subscribes to global pointer movement.
// Any running snap animation is cancelled first.
func (s *Sheet) PointerDown(y float64) {
	if s.closed {
		return
	}
	s.animation.Cancel()
	s.drag.Begin(y)
	if s.release == nil {
		s.release = s.hub.Subscribe(s.PointerMove)
	}
}

// PointerMove moves the sheet by the pointer delta while a drag is active.
// The offset is not clamped.
func (s *Sheet) PointerMove(y float64) {
	if s.closed {
		return
	}
	if next, ok := s.drag.Move(y, s.offset); ok {
		s.offset = next
	}
}

// PointerUp ends the drag and snaps to the nearest state. The returned task
// must be fed to Frame on the following frames while more is true. Without
// an active drag it does nothing.
func (s *Sheet) PointerUp() (task Task, more bool) {
	if s.closed || !s.drag.End() {
		return 0, false
	}
	s.unsubscribe()
	return s.Release(s.offset)
}

// CancelDrag ends the drag without snapping. State and offset stay as they
// are. It reports whether a drag was active.
func (s *Sheet) CancelDrag() bool {
	if s.closed || !s.drag.End() {
		return false
	}
	s.unsubscribe()
	return true
}

// Release classifies offset, commits the new state immediately and starts
// animating towards its snap point.
func (s *Sheet) Release(offset float64) (Task, bool) {
	if s.closed {
		return 0, false
	}
	s.offset = offset
	s.state = Classify(offset)
	log.Printf("sheet: release at %.2f snaps to %s", offset, s.state)
	return s.AnimateTo(s.state.Position())
}

// AnimateTo replaces any running animation with one heading for target and
// performs its first step right away.
func (s *Sheet) AnimateTo(target float64) (Task, bool) {
	if s.closed {
		return 0, false
	}
	task := s.animation.Start(target)
	if s.Frame(task) {
		return task, true
	}
	return 0, false
}

// Frame advances task by one step and reports whether another frame is
// needed. Stale tasks and frames arriving after Close are ignored.
func (s *Sheet) Frame(task Task) bool {
	if s.closed {
		return false
	}
	next, more, ok := s.animation.Step(task, s.offset)
	if !ok {
		return false
	}
	s.offset = next
	return more
}

// Toggle cycles to the next state and jumps straight to its snap point.
func (s *Sheet) Toggle() {
	if s.closed {
		return
	}
	s.animation.Cancel()
	s.state = s.state.Next()
	s.offset = s.state.Position()
}

// Dismiss forces the state to Closed. Only the logical state changes: the
// offset and any running animation are left as they are.
func (s *Sheet) Dismiss() {
	if s.closed {
		return
	}
	s.state = Closed
}

// HandleKey maps a key name to a sheet command and reports whether it was
// consumed.
func (s *Sheet) HandleKey(name string) bool {
	switch name {
	case "enter", "space", " ":
		s.Toggle()
	case "esc", "escape":
		s.Dismiss()
	default:
		return false
	}
	return true
}

// Close tears the sheet down. It stops the animation, drops the global
// pointer subscription and turns every later call into a no-op.
func (s *Sheet) Close() {
	if s.closed {
		return
	}
	s.animation.Cancel()
	s.drag.End()
	s.unsubscribe()
	s.closed = true
	log.Printf("sheet: closed at %.2f (%s)", s.offset, s.state)
}

// Closed reports whether Close has been called.
func (s *Sheet) Closed() bool { return s.closed }

func (s *Sheet) unsubscribe() {
	if s.release != nil {
		s.release()
		s.release = nil
	}
}
