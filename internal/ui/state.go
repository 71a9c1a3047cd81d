package ui

// State contains the data required to bootstrap the Bubble Tea model.
type State struct {
	Title         string
	RawContent    string
	ActiveAbsPath string
	Style         string
	FPS           int
}
