package app

import (
	"github.com/kyaoi/mdsheet/internal/document"
	"github.com/kyaoi/mdsheet/internal/ui"
)

const sampleDocument = `# mdsheet

Drag the handle up to open the sheet, or click it to step through the
snap points.

- **Enter / Space**: next snap point
- **Esc**: mark the sheet closed
- **j / k**: scroll this text
- **q**: quit
`

// LoadInitialState prepares the UI state for the Markdown document shown
// inside the sheet. An empty target selects the built-in sample.
func LoadInitialState(target string) (ui.State, error) {
	if target == "" {
		return ui.State{Title: "mdsheet", RawContent: sampleDocument}, nil
	}

	doc, err := document.Load(target)
	if err != nil {
		return ui.State{}, err
	}
	return ui.State{
		Title:         doc.Title,
		RawContent:    doc.Body,
		ActiveAbsPath: doc.Path,
	}, nil
}
