package jsonpath

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		expect Query
	}{
		{
			name:   "single_field",
			query:  "message",
			expect: Query{Field("message")},
		},
		{
			name:   "dotted_fields",
			query:  "message.text",
			expect: Query{Field("message"), Field("text")},
		},
		{
			name:   "root_dot_prefix",
			query:  "$.message.text",
			expect: Query{Field("message"), Field("text")},
		},
		{
			name:   "root_prefix_without_dot",
			query:  "$message",
			expect: Query{Field("message")},
		},
		{
			name:   "root_then_bracket",
			query:  "$[0]",
			expect: Query{Index(0)},
		},
		{
			name:   "identity_root",
			query:  "$",
			expect: Query{},
		},
		{
			name:   "identity_root_dot",
			query:  "$.",
			expect: Query{},
		},
		{
			name:   "surrounding_whitespace",
			query:  "  message.text\n",
			expect: Query{Field("message"), Field("text")},
		},
		{
			name:   "positive_index",
			query:  "updates[1].id",
			expect: Query{Field("updates"), Index(1), Field("id")},
		},
		{
			name:   "negative_index",
			query:  "updates[-1].id",
			expect: Query{Field("updates"), Index(-1), Field("id")},
		},
		{
			name:   "leading_zero_index",
			query:  "updates[007]",
			expect: Query{Field("updates"), Index(7)},
		},
		{
			name:   "index_beyond_int_range_saturates",
			query:  "updates[99999999999999999999]",
			expect: Query{Field("updates"), Index(math.MaxInt)},
		},
		{
			name:   "negative_index_beyond_int_range_saturates",
			query:  "updates[-99999999999999999999]",
			expect: Query{Field("updates"), Index(math.MinInt)},
		},
		{
			name:   "bracket_wildcard",
			query:  "updates[*].id",
			expect: Query{Field("updates"), Wildcard(), Field("id")},
		},
		{
			name:   "bare_wildcard",
			query:  "payload.*.id",
			expect: Query{Field("payload"), Wildcard(), Field("id")},
		},
		{
			name:   "leading_bare_wildcard",
			query:  "*",
			expect: Query{Wildcard()},
		},
		{
			name:   "star_inside_name",
			query:  "a*b",
			expect: Query{Field("a*b")},
		},
		{
			name:   "consecutive_brackets",
			query:  "matrix[0][-1]",
			expect: Query{Field("matrix"), Index(0), Index(-1)},
		},
		{
			name:   "single_quoted_key",
			query:  "['meta.data'].owner.id",
			expect: Query{Field("meta.data"), Field("owner"), Field("id")},
		},
		{
			name:   "double_quoted_key",
			query:  `["a[0]"]`,
			expect: Query{Field("a[0]")},
		},
		{
			name:   "escaped_quote",
			query:  `['it\'s']`,
			expect: Query{Field("it's")},
		},
		{
			name:   "escape_is_literal",
			query:  `['a\nb\\c']`,
			expect: Query{Field(`anb\c`)},
		},
		{
			name:   "other_quote_inside",
			query:  `["it's"]`,
			expect: Query{Field("it's")},
		},
		{
			name:   "empty_quoted_key",
			query:  "['']",
			expect: Query{Field("")},
		},
		{
			name:   "quoted_star_is_field",
			query:  "['*']",
			expect: Query{Field("*")},
		},
		{
			name:   "unicode_names",
			query:  "größe['ключ']",
			expect: Query{Field("größe"), Field("ключ")},
		},
		{
			name:   "name_with_spaces",
			query:  "first name",
			expect: Query{Field("first name")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize(tt.query)
			if err != nil {
				t.Fatalf("Tokenize(%q) unexpected error: %v", tt.query, err)
			}
			if !reflect.DeepEqual(got, tt.expect) {
				t.Errorf("Tokenize(%q) = %#v, want %#v", tt.query, got, tt.expect)
			}
		})
	}
}

func TestTokenizeInvalidSyntax(t *testing.T) {
	tests := []struct {
		name  string
		query string
		pos   int
	}{
		{name: "empty", query: "", pos: 0},
		{name: "blank", query: "   ", pos: 0},
		{name: "double_dot", query: "message..text", pos: 8},
		{name: "leading_dot", query: ".message", pos: 0},
		{name: "root_double_dot", query: "$..message", pos: 2},
		{name: "trailing_dot", query: "message.", pos: 7},
		{name: "dot_before_bracket", query: "items.[0]", pos: 6},
		{name: "unterminated_bracket", query: "items[0", pos: 5},
		{name: "unterminated_wildcard_bracket", query: "items[*", pos: 5},
		{name: "empty_bracket", query: "items[]", pos: 6},
		{name: "slice", query: "items[0:2]", pos: 7},
		{name: "union", query: "items[0,1]", pos: 7},
		{name: "filter", query: "items[?(@.id)]", pos: 6},
		{name: "bare_word_in_bracket", query: "items[id]", pos: 6},
		{name: "minus_without_digits", query: "items[-]", pos: 7},
		{name: "wildcard_with_suffix", query: "items[*x]", pos: 7},
		{name: "unterminated_quote", query: "['meta.data", pos: 0},
		{name: "quote_without_bracket_close", query: "['meta'x]", pos: 7},
		{name: "missing_bracket_after_quote", query: "['meta'", pos: 0},
		{name: "dangling_escape", query: `['meta\`, pos: 6},
		{name: "name_after_bracket", query: "items[0]id", pos: 8},
		{name: "position_after_whitespace", query: "  a..b", pos: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(tt.query)
			if err == nil {
				t.Fatalf("Tokenize(%q) expected error, got nil", tt.query)
			}
			if !errors.Is(err, ErrSyntax) {
				t.Errorf("Tokenize(%q) error = %v, want ErrSyntax", tt.query, err)
			}

			var syntaxErr *PathSyntaxError
			if !errors.As(err, &syntaxErr) {
				t.Fatalf("Tokenize(%q) error type = %T, want *PathSyntaxError", tt.query, err)
			}
			if syntaxErr.Pos != tt.pos {
				t.Errorf("Tokenize(%q) error position = %d, want %d (%v)", tt.query, syntaxErr.Pos, tt.pos, err)
			}
			if syntaxErr.Query != tt.query {
				t.Errorf("PathSyntaxError.Query = %q, want %q", syntaxErr.Query, tt.query)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	if err := Validate("$.updates[-1].id"); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
	if err := Validate("message..text"); !errors.Is(err, ErrSyntax) {
		t.Errorf("Validate() error = %v, want ErrSyntax", err)
	}
}

func TestQueryStringRoundTrip(t *testing.T) {
	queries := []Query{
		{},
		{Field("message"), Field("text")},
		{Field("meta.data"), Field("owner")},
		{Field("updates"), Index(-1), Wildcard()},
		{Field(`it's \ odd`), Field("*"), Field(""), Field("a[0]")},
		{Field(" padded ")},
	}

	for _, q := range queries {
		t.Run(q.String(), func(t *testing.T) {
			got, err := Tokenize(q.String())
			if err != nil {
				t.Fatalf("Tokenize(%q) unexpected error: %v", q.String(), err)
			}
			if !reflect.DeepEqual(got, q) {
				t.Errorf("Tokenize(%q) = %#v, want %#v", q.String(), got, q)
			}
		})
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		token  Token
		expect string
	}{
		{Field("text"), ".text"},
		{Field("meta.data"), "['meta.data']"},
		{Field("it's"), `['it\'s']`},
		{Index(-2), "[-2]"},
		{Wildcard(), "[*]"},
	}

	for _, tt := range tests {
		if got := tt.token.String(); got != tt.expect {
			t.Errorf("%#v.String() = %q, want %q", tt.token, got, tt.expect)
		}
	}
}
