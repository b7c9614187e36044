// Package jsonpath extracts values from decoded documents using a restricted
// path language.
//
// Supported syntax:
//   - Optional root marker `$` or `$.`
//   - Dotted member access `message.text`
//   - Array indexes `items[0]`, negative indexes count from the end `items[-1]`
//   - Wildcards `items[*]` or a bare `*` segment, over object values or array elements
//   - Quoted member names `['meta.data']` or `["a\"b"]`, backslash escapes the next character
//
// Filters, slices, unions and recursive descent are rejected as syntax errors.
// Missing data is never an error: a query that matches nothing returns an
// empty result.
package jsonpath
