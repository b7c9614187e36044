// Package document models an already-parsed JSON value as a closed set of
// node kinds: *Object, Array and Scalar.
//
// Objects keep the order in which their members were decoded so that
// wildcard fan-out over an object is deterministic. Documents are never
// mutated after construction and may be shared between goroutines.
package document
