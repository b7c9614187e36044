package jsonpath

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type state uint8

const (
	stateSegmentStart     state = iota // start of input or right after '.'
	stateReadingField                  // inside a bare member name
	stateAfterBracket                  // right after ']'
	stateReadingBracket                // right after '['
	stateReadingIndex                  // inside [-123]
	stateReadingQuotedKey              // inside ['...'] or ["..."]
	stateQuotedEscape                  // right after '\' in a quoted key
	stateClosingBracket                // expecting ']' after '*' or a closing quote
)

type tokenizer struct {
	query   string
	offset  int // position of body within query
	body    string
	state   state
	tokens  Query
	buf     strings.Builder
	quote   byte
	pending Token
	open    int // position of the current '['
}

// Tokenize parses a query string into tokens. The identity query ("$" or
// "$.") yields an empty, non-nil Query. Syntax errors are *PathSyntaxError.
func Tokenize(query string) (Query, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil, &PathSyntaxError{Query: query, Reason: "query cannot be empty"}
	}

	body := trimmed
	if strings.HasPrefix(body, "$") {
		body = strings.TrimPrefix(body[1:], ".")
	}

	t := &tokenizer{
		query:  query,
		offset: strings.Index(query, trimmed) + len(trimmed) - len(body),
		body:   body,
		tokens: Query{},
	}
	return t.run()
}

// Validate reports whether query is syntactically valid.
func Validate(query string) error {
	_, err := Tokenize(query)
	return err
}

func (t *tokenizer) run() (Query, error) {
	for i := 0; i < len(t.body); i++ {
		if err := t.consume(i, t.body[i]); err != nil {
			return nil, err
		}
	}
	if err := t.finish(); err != nil {
		return nil, err
	}
	return t.tokens, nil
}

func (t *tokenizer) consume(i int, c byte) error {
	switch t.state {
	case stateSegmentStart:
		switch c {
		case '.':
			if i == 0 {
				return t.errorf(i, "query cannot start with '.'")
			}
			return t.errorf(i, "unexpected '..'")
		case '[':
			if i != 0 {
				return t.errorf(i, "empty field name before '['")
			}
			t.openBracket(i)
		default:
			t.buf.WriteByte(c)
			t.state = stateReadingField
		}

	case stateReadingField:
		switch c {
		case '.':
			t.flushField()
			t.state = stateSegmentStart
		case '[':
			t.flushField()
			t.openBracket(i)
		default:
			t.buf.WriteByte(c)
		}

	case stateAfterBracket:
		switch c {
		case '.':
			t.state = stateSegmentStart
		case '[':
			t.openBracket(i)
		default:
			return t.errorf(i, "expected '.' or '[' after ']', got %q", c)
		}

	case stateReadingBracket:
		switch {
		case c == '*':
			t.pending = Wildcard()
			t.state = stateClosingBracket
		case c == '\'' || c == '"':
			t.quote = c
			t.state = stateReadingQuotedKey
		case c == '-' || isDigit(c):
			t.buf.WriteByte(c)
			t.state = stateReadingIndex
		default:
			return t.errorf(i, "bracket must contain an index, wildcard, or quoted key")
		}

	case stateReadingIndex:
		switch {
		case isDigit(c):
			t.buf.WriteByte(c)
		case c == ']':
			return t.closeIndex(i)
		default:
			return t.errorf(i, "invalid character %q in array index", c)
		}

	case stateReadingQuotedKey:
		switch c {
		case '\\':
			t.state = stateQuotedEscape
		case t.quote:
			t.pending = Field(t.buf.String())
			t.buf.Reset()
			t.state = stateClosingBracket
		default:
			t.buf.WriteByte(c)
		}

	case stateQuotedEscape:
		t.buf.WriteByte(c)
		t.state = stateReadingQuotedKey

	case stateClosingBracket:
		if c != ']' {
			return t.errorf(i, "expected ']', got %q", c)
		}
		t.tokens = append(t.tokens, t.pending)
		t.state = stateAfterBracket
	}

	return nil
}

func (t *tokenizer) finish() error {
	end := len(t.body)

	switch t.state {
	case stateSegmentStart:
		if end > 0 {
			return t.errorf(end-1, "query cannot end with '.'")
		}
	case stateReadingField:
		t.flushField()
	case stateAfterBracket:
	case stateReadingQuotedKey:
		return t.errorf(t.open, "unterminated quoted key")
	case stateQuotedEscape:
		return t.errorf(end-1, "dangling escape in quoted key")
	default:
		return t.errorf(t.open, "unterminated bracket expression")
	}

	return nil
}

func (t *tokenizer) openBracket(i int) {
	t.open = i
	t.state = stateReadingBracket
}

// flushField emits the buffered member name. A segment consisting of a
// single '*' is a wildcard.
func (t *tokenizer) flushField() {
	name := t.buf.String()
	t.buf.Reset()
	if name == "*" {
		t.tokens = append(t.tokens, Wildcard())
		return
	}
	t.tokens = append(t.tokens, Field(name))
}

func (t *tokenizer) closeIndex(i int) error {
	digits := t.buf.String()
	t.buf.Reset()

	if digits == "-" {
		return t.errorf(i, "array index requires digits")
	}
	n, err := strconv.Atoi(digits)
	if errors.Is(err, strconv.ErrRange) {
		// too large for any array; saturate so resolution finds nothing
		n = math.MaxInt
		if digits[0] == '-' {
			n = math.MinInt
		}
	} else if err != nil {
		return t.errorf(t.open, "invalid array index %s", digits)
	}

	t.tokens = append(t.tokens, Index(n))
	t.state = stateAfterBracket
	return nil
}

func (t *tokenizer) errorf(i int, format string, args ...any) error {
	return &PathSyntaxError{Query: t.query, Pos: t.offset + i, Reason: fmt.Sprintf(format, args...)}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
