package sheet

// PointerHub fans pointer movement out to subscribers. Hosts feed every
// move event into Dispatch regardless of where the pointer is, which lets
// a drag continue after the pointer leaves the sheet.
type PointerHub struct {
	nextID int
	subs   map[int]func(y float64)
}

// NewPointerHub returns an empty hub.
func NewPointerHub() *PointerHub {
	return &PointerHub{subs: make(map[int]func(y float64))}
}

// Subscribe registers fn and returns the function that removes it again.
// The returned release is safe to call more than once.
func (h *PointerHub) Subscribe(fn func(y float64)) (release func()) {
	id := h.nextID
	h.nextID++
	h.subs[id] = fn
	return func() {
		delete(h.subs, id)
	}
}

// Dispatch delivers a pointer move to every live subscriber.
func (h *PointerHub) Dispatch(y float64) {
	for _, fn := range h.subs {
		fn(y)
	}
}

// Len reports the number of live subscriptions.
func (h *PointerHub) Len() int {
	return len(h.subs)
}

// DragSession lives between pointer-down and pointer-up.
type DragSession struct {
	Dragging     bool
	LastPointerY float64
}

// DragController turns raw pointer positions into offset deltas.
type DragController struct {
	session DragSession
}

// Begin starts a session at y.
func (d *DragController) Begin(y float64) {
	d.session = DragSession{Dragging: true, LastPointerY: y}
}

// Move applies the movement to y onto offset. Outside a session the
// offset is returned unchanged and ok is false.
func (d *DragController) Move(y, offset float64) (next float64, ok bool) {
	if !d.session.Dragging {
		return offset, false
	}
	delta := y - d.session.LastPointerY
	d.session.LastPointerY = y
	return offset + delta, true
}

// End finishes the session and reports whether one was active.
func (d *DragController) End() bool {
	if !d.session.Dragging {
		return false
	}
	d.session = DragSession{}
	return true
}

// Session returns a copy of the current session.
func (d *DragController) Session() DragSession {
	return d.session
}
