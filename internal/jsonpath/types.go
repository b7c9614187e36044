package jsonpath

import (
	"strconv"
	"strings"
)

// Kind discriminates Token variants.
type Kind uint8

const (
	KindField Kind = iota + 1
	KindIndex
	KindWildcard
)

func (k Kind) String() string {
	switch k {
	case KindField:
		return "field"
	case KindIndex:
		return "index"
	case KindWildcard:
		return "wildcard"
	default:
		return "unknown"
	}
}

// Token is a single path step. Name is set for KindField, Index for KindIndex.
type Token struct {
	Kind  Kind
	Name  string
	Index int
}

func Field(name string) Token {
	return Token{Kind: KindField, Name: name}
}

func Index(i int) Token {
	return Token{Kind: KindIndex, Index: i}
}

func Wildcard() Token {
	return Token{Kind: KindWildcard}
}

// String renders the token in canonical bracket or dot form.
func (t Token) String() string {
	switch t.Kind {
	case KindField:
		if isPlainName(t.Name) {
			return "." + t.Name
		}
		return "['" + escapeName(t.Name) + "']"
	case KindIndex:
		return "[" + strconv.Itoa(t.Index) + "]"
	case KindWildcard:
		return "[*]"
	default:
		return ""
	}
}

// Query is the ordered token sequence produced by Tokenize. An empty Query
// selects the whole document.
type Query []Token

// String renders the query with a leading root marker. Tokenize(q.String())
// yields a query equal to q.
func (q Query) String() string {
	var b strings.Builder
	b.WriteByte('$')
	for _, t := range q {
		b.WriteString(t.String())
	}
	return b.String()
}

func isPlainName(name string) bool {
	if name == "" || name == "*" || strings.TrimSpace(name) != name {
		return false
	}
	return !strings.ContainsAny(name, `.[]'"\`)
}

func escapeName(name string) string {
	var b strings.Builder
	for i := 0; i < len(name); i++ {
		if name[i] == '\'' || name[i] == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(name[i])
	}
	return b.String()
}
