// Package plist parses property-list documents into a typed value tree.
//
// Three encodings are understood: the OpenStep text form that CoreFoundation
// emits from CFCopyDescription, and the XML and binary forms, which are
// handled by howett.net/plist. Callers get the same tree regardless of the
// encoding, with leaf types preserved as the document expressed them: a
// quoted "42" stays a String, an unquoted 42 becomes a Number holding an
// Integer.
package plist

import (
	"fmt"
	"sort"
	"time"
)

// Kind identifies the type of a Value.
type Kind int

const (
	KindString Kind = iota + 1
	KindInteger
	KindReal
	KindBoolean
	KindData
	KindDate
	KindArray
	KindDict
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindReal:
		return "real"
	case KindBoolean:
		return "boolean"
	case KindData:
		return "data"
	case KindDate:
		return "date"
	case KindArray:
		return "array"
	case KindDict:
		return "dictionary"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is a node of a parsed property list.
type Value interface {
	Kind() Kind
}

type (
	String  string
	Integer int64
	Real    float64
	Boolean bool
	Data    []byte
	Date    time.Time
	Array   []Value
	Dict    map[string]Value
)

// Number is an unquoted OpenStep token that reads as a number. The text
// form has no number type, so the lexeme is kept next to the Integer or Real
// it parses to; a window titled 007 is still "007" when read as text.
type Number struct {
	Text  string
	Value Value
}

func (n Number) Kind() Kind { return n.Value.Kind() }

// Scalar returns the Integer or Real behind a Number, and v otherwise.
func Scalar(v Value) Value {
	if n, ok := v.(Number); ok {
		return n.Value
	}
	return v
}

func (String) Kind() Kind  { return KindString }
func (Integer) Kind() Kind { return KindInteger }
func (Real) Kind() Kind    { return KindReal }
func (Boolean) Kind() Kind { return KindBoolean }
func (Data) Kind() Kind    { return KindData }
func (Date) Kind() Kind    { return KindDate }
func (Array) Kind() Kind   { return KindArray }
func (Dict) Kind() Kind    { return KindDict }

// KindOf returns the kind of v, or 0 for a nil value.
func KindOf(v Value) Kind {
	if v == nil {
		return 0
	}
	return v.Kind()
}

// Keys returns the dictionary keys in sorted order.
func (d Dict) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
