package jsonpath

import (
	"github.com/jacoelho/jx/internal/document"
)

// Resolve applies q to doc and returns the matching nodes in fan-out order.
// Nodes that do not have the requested shape contribute nothing, so a query
// that matches nothing returns an empty slice. doc is never modified.
func Resolve(doc document.Node, q Query) []document.Node {
	frontier := []document.Node{doc}

	for _, tok := range q {
		next := make([]document.Node, 0, len(frontier))
		for _, n := range frontier {
			next = tok.selectFrom(n, next)
		}

		frontier = next
		if len(frontier) == 0 {
			break
		}
	}

	return frontier
}

// selectFrom appends the children of n selected by t to out.
func (t Token) selectFrom(n document.Node, out []document.Node) []document.Node {
	switch node := n.(type) {
	case *document.Object:
		return t.selectObject(node, out)
	case document.Array:
		return t.selectArray(node, out)
	case document.Scalar:
		return out
	default:
		return out
	}
}

func (t Token) selectObject(obj *document.Object, out []document.Node) []document.Node {
	switch t.Kind {
	case KindField:
		if v, ok := obj.Get(t.Name); ok {
			out = append(out, v)
		}
	case KindWildcard:
		for _, m := range obj.Members() {
			out = append(out, m.Value)
		}
	case KindIndex:
		// indexes never select object members
	}
	return out
}

func (t Token) selectArray(arr document.Array, out []document.Node) []document.Node {
	switch t.Kind {
	case KindIndex:
		i := t.Index
		if i < 0 {
			i += len(arr)
		}
		if i >= 0 && i < len(arr) {
			out = append(out, arr[i])
		}
	case KindWildcard:
		out = append(out, arr...)
	case KindField:
		// names never select array elements
	}
	return out
}
