package document

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Node is one of *Object, Array or Scalar.
type Node interface {
	json.Marshaler
	node()
}

// Member is a single key/value pair of an object.
type Member struct {
	Key   string
	Value Node
}

// Object is an ordered mapping of string keys to nodes.
type Object struct {
	members []Member
	index   map[string]int
}

// Array is an ordered sequence of nodes.
type Array []Node

// Scalar wraps a string, number, bool or nil.
type Scalar struct {
	Value any
}

func (*Object) node() {}
func (Array) node()   {}
func (Scalar) node()  {}

// NewObject builds an object from members. A repeated key keeps the position
// of its first occurrence and the value of its last one.
func NewObject(members ...Member) *Object {
	o := &Object{
		members: make([]Member, 0, len(members)),
		index:   make(map[string]int, len(members)),
	}
	for _, m := range members {
		o.set(m.Key, m.Value)
	}
	return o
}

func (o *Object) set(key string, value Node) {
	if i, ok := o.index[key]; ok {
		o.members[i].Value = value
		return
	}
	o.index[key] = len(o.members)
	o.members = append(o.members, Member{Key: key, Value: value})
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Node, bool) {
	i, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.members[i].Value, true
}

// Len returns the number of members.
func (o *Object) Len() int {
	return len(o.members)
}

// Members returns the members in insertion order. The slice must not be modified.
func (o *Object) Members() []Member {
	return o.members
}

// Values returns member values in insertion order.
func (o *Object) Values() []Node {
	values := make([]Node, len(o.members))
	for i, m := range o.members {
		values[i] = m.Value
	}
	return values
}

// MarshalJSON encodes the object keeping member order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, m := range o.members {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := MarshalValue(m.Key)
		if err != nil {
			return nil, err
		}
		b.Write(key)
		b.WriteByte(':')
		value, err := marshalNode(m.Value)
		if err != nil {
			return nil, fmt.Errorf("member %q: %w", m.Key, err)
		}
		b.Write(value)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// MarshalJSON encodes the array. A nil Array encodes as [].
func (a Array) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('[')
	for i, n := range a {
		if i > 0 {
			b.WriteByte(',')
		}
		value, err := marshalNode(n)
		if err != nil {
			return nil, err
		}
		b.Write(value)
	}
	b.WriteByte(']')
	return b.Bytes(), nil
}

// MarshalJSON encodes the wrapped value. HTML characters are not escaped.
func (s Scalar) MarshalJSON() ([]byte, error) {
	return MarshalValue(s.Value)
}

func marshalNode(n Node) ([]byte, error) {
	if n == nil {
		return []byte("null"), nil
	}
	return n.MarshalJSON()
}

// ToValue converts a node into plain Go values: map[string]any, []any and
// scalars. Member order is lost.
func ToValue(n Node) any {
	switch v := n.(type) {
	case *Object:
		m := make(map[string]any, v.Len())
		for _, member := range v.members {
			m[member.Key] = ToValue(member.Value)
		}
		return m
	case Array:
		s := make([]any, len(v))
		for i, item := range v {
			s[i] = ToValue(item)
		}
		return s
	case Scalar:
		return v.Value
	default:
		return nil
	}
}
