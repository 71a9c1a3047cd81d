package document

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
)

// Document is a Markdown file split into its title and body.
type Document struct {
	Title string
	Body  string
	Path  string
}

type meta struct {
	Title string `yaml:"title" toml:"title" json:"title"`
}

// Parse splits optional YAML, TOML or JSON frontmatter from data.
func Parse(data []byte) (Document, error) {
	var m meta
	rest, err := frontmatter.Parse(bytes.NewReader(data), &m)
	if err != nil {
		return Document{}, err
	}
	return Document{Title: strings.TrimSpace(m.Title), Body: string(rest)}, nil
}

// Load reads and parses the document at path. Documents without a title
// fall back to the file name.
func Load(path string) (Document, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Document{}, err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return Document{}, fmt.Errorf("read document: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return Document{}, fmt.Errorf("parse %s: %w", filepath.Base(abs), err)
	}
	if doc.Title == "" {
		doc.Title = filepath.Base(abs)
	}
	doc.Path = abs
	return doc, nil
}
