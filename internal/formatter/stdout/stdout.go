package stdout

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jacoelho/jx/internal/formatter"
	"github.com/jacoelho/jx/internal/results"
)

// Formatter writes envelopes as JSON documents.
type Formatter struct {
	writer  io.Writer
	compact bool
}

// New creates a new formatter that outputs indented JSON to stdout.
func New() formatter.Formatter {
	return &Formatter{
		writer: os.Stdout,
	}
}

// NewWithWriter creates a new formatter with a custom writer.
// With compact set each envelope is written on a single line.
func NewWithWriter(writer io.Writer, compact bool) formatter.Formatter {
	return &Formatter{
		writer:  writer,
		compact: compact,
	}
}

// Format encodes each envelope followed by a newline. Non-ASCII and HTML
// characters are written verbatim.
func (f *Formatter) Format(envelopes ...results.Envelope) error {
	enc := json.NewEncoder(f.writer)
	enc.SetEscapeHTML(false)
	if !f.compact {
		enc.SetIndent("", "  ")
	}

	for _, e := range envelopes {
		if err := enc.Encode(e); err != nil {
			return fmt.Errorf("failed to encode results for %s: %w", e.File, err)
		}
	}
	return nil
}
