package logging

import (
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

// Setup configures the stdlib logger for the whole program.
// If filename is empty, logging is disabled (except log.Fatal/panic).
// If filename is set, the standard logger and Bubble Tea both log to it.
func Setup(filename string) (cleanup func(), err error) {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if filename == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := tea.LogToFile(filename, "mdsheet")
	if err != nil {
		log.SetOutput(io.Discard)
		return nil, err
	}

	return func() {
		log.SetOutput(io.Discard)
		f.Close()
	}, nil
}
