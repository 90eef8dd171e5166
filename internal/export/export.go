// Package export renders a resolved course selection for sharing outside the
// engine: a JSON or YAML document, and a plain-text summary for the terminal.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/lehigh-university-libraries/registrar/internal/catalog"
)

const DefaultFilename = "course_selection.json"

// Format is the encoding of an export document
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" or "yml".
func ParseFormat(s string) (Format, error) {
	switch s {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: json, yaml)", s)
	}
}

// WriteJSON writes courses as an indented JSON array.
func WriteJSON(w io.Writer, courses []catalog.Course) error {
	if courses == nil {
		courses = []catalog.Course{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(courses)
}

// WriteYAML writes courses as a YAML sequence.
func WriteYAML(w io.Writer, courses []catalog.Course) error {
	if courses == nil {
		courses = []catalog.Course{}
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(courses); err != nil {
		return err
	}
	return encoder.Close()
}

// Write encodes courses to w in the given format.
func Write(w io.Writer, format Format, courses []catalog.Course) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, courses)
	case FormatYAML:
		return WriteYAML(w, courses)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// WriteFile creates the parent directory if needed and writes the document
// to path. It returns the absolute path written.
func WriteFile(path string, format Format, courses []catalog.Course) (string, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}
	if err := Write(file, format, courses); err != nil {
		_ = file.Close()
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("failed to close export file: %w", err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return absPath, nil
}
