package catalog

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/parquet-go/parquet-go"
	"gopkg.in/yaml.v3"
)

// Loader reads course records from a catalog file
type Loader struct {
	path string
}

// NewLoader creates a loader for the catalog file at path
func NewLoader(path string) *Loader {
	return &Loader{
		path: path,
	}
}

// Load reads every record from the file and builds a catalog from them.
// The format is picked from the file extension.
func (l *Loader) Load() (*Catalog, error) {
	courses, err := l.LoadRecords()
	if err != nil {
		return nil, err
	}

	c, err := New(courses)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog from %s: %w", l.path, err)
	}

	slog.Debug("Catalog loaded", "path", l.path, "courses", c.Len())
	return c, nil
}

// LoadRecords reads the raw records without building a catalog
func (l *Loader) LoadRecords() ([]Course, error) {
	ext := strings.ToLower(filepath.Ext(l.path))

	switch ext {
	case ".parquet":
		return l.loadParquet()
	case ".jsonl":
		return l.loadJSONL()
	case ".json":
		return l.loadJSON()
	case ".yaml", ".yml":
		return l.loadYAML()
	default:
		return nil, fmt.Errorf("unsupported catalog format: %s (supported: .json, .jsonl, .yaml, .parquet)", ext)
	}
}

func (l *Loader) loadJSON() ([]Course, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var courses []Course
	if err := json.Unmarshal(data, &courses); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}
	return courses, nil
}

func (l *Loader) loadYAML() ([]Course, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var courses []Course
	if err := yaml.Unmarshal(data, &courses); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}
	return courses, nil
}

func (l *Loader) loadJSONL() ([]Course, error) {
	file, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer file.Close()

	var courses []Course
	scanner := bufio.NewScanner(file)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()

		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		var course Course
		if err := json.Unmarshal(line, &course); err != nil {
			return nil, fmt.Errorf("failed to parse JSON at line %d: %w", lineNum, err)
		}
		courses = append(courses, course)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading catalog: %w", err)
	}

	return courses, nil
}

func (l *Loader) loadParquet() ([]Course, error) {
	file, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pf, err := parquet.OpenFile(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet: %w", err)
	}

	slog.Debug("Parquet catalog opened", "num_rows", pf.NumRows(), "num_row_groups", len(pf.RowGroups()))

	reader := parquet.NewGenericReader[Course](pf)
	defer reader.Close()

	var courses []Course
	rows := make([]Course, 64)

	for {
		n, err := reader.Read(rows)
		courses = append(courses, rows[:n]...)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read parquet rows: %w", err)
		}
	}

	return courses, nil
}
