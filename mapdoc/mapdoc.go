// Package mapdoc reads map documents, in XML or YAML (and JSON),
// into mapcanvas.Map values.
package mapdoc

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/crederauk/svgmapcanvas/mapcanvas"
)

// ErrorMode is the for setting how the parser reacts to unknown elements
type ErrorMode uint8

const (
	// IgnoreErrorMode skips unsupported elements
	IgnoreErrorMode ErrorMode = iota

	// WarnErrorMode logs a warning for unsupported elements
	WarnErrorMode

	// StrictErrorMode returns an error for unsupported elements
	StrictErrorMode
)

func (m ErrorMode) String() string {
	switch m {
	case IgnoreErrorMode:
		return "ignore"
	case WarnErrorMode:
		return "warn"
	case StrictErrorMode:
		return "strict"
	default:
		return "<unknown ErrorMode>"
	}
}

var (
	errParamMismatch = errors.New("param mismatch")
	errInvalidDoc    = errors.New("invalid map document")
	errMisplaced     = errors.New("misplaced element")
	errFormat        = errors.New("unsupported document format")
)

// Reader decodes map documents.
type Reader struct {
	ErrorMode ErrorMode
	Logger    zerolog.Logger
}

// NewReader returns a reader with a no-op logger.
func NewReader(errMode ErrorMode) *Reader {
	return &Reader{ErrorMode: errMode, Logger: zerolog.Nop()}
}

// ReadMap reads the XML map document in the named file.
func (r *Reader) ReadMap(mapFile string) (*mapcanvas.Map, error) {
	fin, errf := os.Open(mapFile)
	if errf != nil {
		return nil, errf
	}
	defer fin.Close()
	return r.ReadMapStream(fin)
}

// Read reads the named file, choosing the decoder from its extension:
// .xml for XML, .yaml, .yml and .json for YAML.
func (r *Reader) Read(name string) (*mapcanvas.Map, error) {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".xml":
		return r.ReadMap(name)
	case ".yaml", ".yml", ".json":
		fin, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer fin.Close()
		return r.ReadYAML(fin)
	default:
		return nil, fmt.Errorf("%w: %q", errFormat, ext)
	}
}

// ReadMap reads the XML map document in the named file,
// using a reader without logging.
func ReadMap(mapFile string, errMode ErrorMode) (*mapcanvas.Map, error) {
	return NewReader(errMode).ReadMap(mapFile)
}

// Read reads the named map document, using a reader without logging.
func Read(name string, errMode ErrorMode) (*mapcanvas.Map, error) {
	return NewReader(errMode).Read(name)
}
