package runner

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jacoelho/jx/internal/config"
	"github.com/jacoelho/jx/internal/document"
	"github.com/jacoelho/jx/internal/pathing"
)

// LoadError reports a file that could not be read or decoded.
type LoadError struct {
	File string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %v", e.File, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func (r *Runner) load(file string) (document.Node, error) {
	data, err := r.read(file)
	if err != nil {
		return nil, &LoadError{File: file, Err: err}
	}

	format := formatFor(file, r.config.Format)
	r.logger.Debug("loaded input", "file", file, "format", format, "bytes", len(data))

	var doc document.Node
	switch format {
	case config.FormatYAML:
		doc, err = document.DecodeYAML(data)
	default:
		doc, err = document.DecodeBytes(data)
	}
	if err != nil {
		return nil, &LoadError{File: file, Err: err}
	}
	return doc, nil
}

func (r *Runner) read(file string) ([]byte, error) {
	if file == config.Stdin {
		return io.ReadAll(r.stdin)
	}

	path, err := pathing.ExpandHome(file)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

// formatFor resolves FormatAuto from the file extension. Standard input and
// unknown extensions are read as JSON.
func formatFor(file string, format config.Format) config.Format {
	if format != config.FormatAuto && format != "" {
		return format
	}

	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		return config.FormatYAML
	default:
		return config.FormatJSON
	}
}

