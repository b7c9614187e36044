package jsonpath

import (
	"bytes"

	"github.com/jacoelho/jx/internal/document"
)

// Extract tokenizes query and resolves it against doc.
func Extract(doc document.Node, query string) ([]document.Node, error) {
	q, err := Tokenize(query)
	if err != nil {
		return nil, err
	}
	return Resolve(doc, q), nil
}

// ExtractMany evaluates every query against doc. All queries are tokenized
// before any is resolved, so a syntax error yields no partial results.
//
// With first set, each Match keeps at most its first node.
func ExtractMany(doc document.Node, queries []string, first bool) (*Results, error) {
	compiled := make([]Query, len(queries))
	for i, query := range queries {
		q, err := Tokenize(query)
		if err != nil {
			return nil, err
		}
		compiled[i] = q
	}

	results := newResults(len(queries))
	for i, query := range queries {
		nodes := Resolve(doc, compiled[i])
		if first && len(nodes) > 1 {
			nodes = nodes[:1]
		}
		results.set(query, Match{Nodes: nodes, first: first})
	}

	return results, nil
}

// Match holds the nodes selected by one query.
type Match struct {
	Nodes []document.Node
	first bool
}

// Found reports whether the query selected anything.
func (m Match) Found() bool {
	return len(m.Nodes) > 0
}

// First returns the first selected node.
func (m Match) First() (document.Node, bool) {
	if len(m.Nodes) == 0 {
		return nil, false
	}
	return m.Nodes[0], true
}

// MarshalJSON encodes the full match list, or in first mode the first node
// or null when absent.
func (m Match) MarshalJSON() ([]byte, error) {
	if m.first {
		n, ok := m.First()
		if !ok || n == nil {
			return []byte("null"), nil
		}
		return n.MarshalJSON()
	}
	return document.Array(m.Nodes).MarshalJSON()
}

// Results maps query strings to matches, keeping the order in which queries
// were first seen. A repeated query replaces its earlier match.
type Results struct {
	order   []string
	entries map[string]Match
}

func newResults(capacity int) *Results {
	return &Results{
		order:   make([]string, 0, capacity),
		entries: make(map[string]Match, capacity),
	}
}

func (r *Results) set(query string, m Match) {
	if _, ok := r.entries[query]; !ok {
		r.order = append(r.order, query)
	}
	r.entries[query] = m
}

// Get returns the match recorded for query.
func (r *Results) Get(query string) (Match, bool) {
	m, ok := r.entries[query]
	return m, ok
}

// Queries returns the distinct queries in first-seen order.
func (r *Results) Queries() []string {
	return append([]string(nil), r.order...)
}

func (r *Results) Len() int {
	return len(r.order)
}

// Missing returns the queries that selected nothing, in first-seen order.
func (r *Results) Missing() []string {
	var missing []string
	for _, q := range r.order {
		if !r.entries[q].Found() {
			missing = append(missing, q)
		}
	}
	return missing
}

// MarshalJSON encodes the results as a JSON object in query order.
func (r *Results) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, q := range r.order {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := document.MarshalValue(q)
		if err != nil {
			return nil, err
		}
		b.Write(key)
		b.WriteByte(':')
		value, err := r.entries[q].MarshalJSON()
		if err != nil {
			return nil, err
		}
		b.Write(value)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}
