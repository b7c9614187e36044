package results

import (
	"github.com/jacoelho/jx/internal/jsonpath"
)

// Envelope is the output record for one input file.
type Envelope struct {
	File    string            `json:"file"`
	Results *jsonpath.Results `json:"results"`
}

// Missing lists, per file, the queries that matched nothing.
type Missing struct {
	File    string
	Queries []string
}

// CollectMissing returns the files that have unmatched queries, in input order.
func CollectMissing(envelopes []Envelope) []Missing {
	var missing []Missing
	for _, e := range envelopes {
		if e.Results == nil {
			continue
		}
		if queries := e.Results.Missing(); len(queries) > 0 {
			missing = append(missing, Missing{File: e.File, Queries: queries})
		}
	}
	return missing
}
