package formatter

import (
	"github.com/jacoelho/jx/internal/results"
)

// Formatter defines the interface for different output formats.
// Implementations are responsible for determining the output device (stdout, file, etc.).
type Formatter interface {
	// Format writes one record per envelope, in the order given.
	Format(envelopes ...results.Envelope) error
}
