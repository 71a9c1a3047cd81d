package sheet

// State is the discrete position a sheet rests in.
type State int

const (
	Closed State = iota
	HalfOpen
	FullyOpen
)

const (
	closedThreshold    = -30.0
	fullyOpenThreshold = -70.0
)

var snapPoints = map[State]float64{
	Closed:    0,
	HalfOpen:  -50,
	FullyOpen: -80,
}

// String returns the name used for styling, e.g. "half-open".
func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case HalfOpen:
		return "half-open"
	case FullyOpen:
		return "fully-open"
	default:
		return "unknown"
	}
}

// Next returns the following state in the toggle cycle.
func (s State) Next() State {
	switch s {
	case Closed:
		return HalfOpen
	case HalfOpen:
		return FullyOpen
	default:
		return Closed
	}
}

// Position returns the canonical offset of the snap point for s.
func (s State) Position() float64 {
	return snapPoints[s]
}

// Classify maps a released offset to the state it snaps to. Boundary values
// resolve to the more closed state.
func Classify(offset float64) State {
	switch {
	case offset <= fullyOpenThreshold:
		return FullyOpen
	case offset <= closedThreshold:
		return HalfOpen
	default:
		return Closed
	}
}
