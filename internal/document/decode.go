package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/jacoelho/jx/internal/stack"
)

// ErrMalformed indicates the input is not a single well-formed JSON value.
var ErrMalformed = errors.New("document: malformed JSON")

const (
	kindObj containerKind = iota
	kindArr
)

type containerKind uint8

// containerFrame holds a partially decoded object or array.
type containerFrame struct {
	kind    containerKind
	needKey bool   // true if object expects a key next
	key     string // last key read for an object
	object  *Object
	items   Array
}

// Decode reads exactly one JSON value from r. Numbers are kept as json.Number
// and object members keep their textual order.
func Decode(r io.Reader) (Node, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	root, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		return nil, fmt.Errorf("%w: unexpected data after top-level value", ErrMalformed)
	}

	return root, nil
}

// DecodeBytes is Decode over an in-memory buffer.
func DecodeBytes(data []byte) (Node, error) {
	return Decode(bytes.NewReader(data))
}

func decodeValue(dec *json.Decoder) (Node, error) {
	frames := stack.NewWithCapacity[containerFrame](8)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: unexpected end of input", ErrMalformed)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}

		node, complete, err := step(frames, tok)
		if err != nil {
			return nil, err
		}
		if !complete {
			continue
		}

		parent := frames.PeekRef()
		if parent == nil {
			return node, nil
		}
		if parent.kind == kindObj {
			parent.object.set(parent.key, node)
			parent.needKey = true
		} else {
			parent.items = append(parent.items, node)
		}
	}
}

// step consumes one token. It reports a node once a scalar is read or a
// container is closed.
func step(frames *stack.Stack[containerFrame], tok json.Token) (Node, bool, error) {
	if top := frames.PeekRef(); top != nil && top.kind == kindObj && top.needKey {
		if d, ok := tok.(json.Delim); ok && d == '}' {
			frame, _ := frames.Pop()
			return frame.object, true, nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil, false, fmt.Errorf("%w: object key must be a string, got %v", ErrMalformed, tok)
		}
		top.key = key
		top.needKey = false
		return nil, false, nil
	}

	d, ok := tok.(json.Delim)
	if !ok {
		return Scalar{Value: tok}, true, nil
	}

	switch d {
	case '{':
		frames.Push(containerFrame{kind: kindObj, needKey: true, object: NewObject()})
		return nil, false, nil
	case '[':
		frames.Push(containerFrame{kind: kindArr, items: Array{}})
		return nil, false, nil
	case ']':
		frame, ok := frames.Pop()
		if !ok || frame.kind != kindArr {
			return nil, false, fmt.Errorf("%w: unexpected delimiter %q", ErrMalformed, d)
		}
		return frame.items, true, nil
	default:
		return nil, false, fmt.Errorf("%w: unexpected delimiter %q", ErrMalformed, d)
	}
}
