package plist

import (
	"bytes"
	"math"
	"time"

	"github.com/pkg/errors"
	howett "howett.net/plist"
)

// Format is the encoding a document was parsed from.
type Format int

const (
	FormatOpenStep Format = iota + 1
	FormatXML
	FormatBinary
)

func (f Format) String() string {
	switch f {
	case FormatOpenStep:
		return "openstep"
	case FormatXML:
		return "xml"
	case FormatBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// Parse parses a property-list document in any supported encoding.
func Parse(text string) (Value, error) {
	v, _, err := ParseBytes([]byte(text))
	return v, err
}

// ParseBytes parses data and reports which encoding it was in.
func ParseBytes(data []byte) (Value, Format, error) {
	switch format := detect(data); format {
	case FormatXML, FormatBinary:
		v, err := parseEncoded(data)
		return v, format, err
	default:
		v, err := parseText(data)
		return v, FormatOpenStep, err
	}
}

func detect(data []byte) Format {
	if bytes.HasPrefix(data, []byte("bplist")) {
		return FormatBinary
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n\ufeff")
	for _, prefix := range []string{"<?xml", "<!DOCTYPE", "<plist"} {
		if bytes.HasPrefix(trimmed, []byte(prefix)) {
			return FormatXML
		}
	}
	return FormatOpenStep
}

func parseEncoded(data []byte) (Value, error) {
	var raw interface{}
	if _, err := howett.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "plist: decode")
	}
	return fromNative(raw)
}

// fromNative converts the generic tree produced by howett.net/plist.
func fromNative(raw interface{}) (Value, error) {
	switch v := raw.(type) {
	case map[string]interface{}:
		d := make(Dict, len(v))
		for k, item := range v {
			conv, err := fromNative(item)
			if err != nil {
				return nil, errors.Wrapf(err, "key %q", k)
			}
			d[k] = conv
		}
		return d, nil
	case []interface{}:
		a := make(Array, 0, len(v))
		for i, item := range v {
			conv, err := fromNative(item)
			if err != nil {
				return nil, errors.Wrapf(err, "index %d", i)
			}
			a = append(a, conv)
		}
		return a, nil
	case string:
		return String(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return Real(float64(v)), nil
		}
		return Integer(v), nil
	case int64:
		return Integer(v), nil
	case int:
		return Integer(v), nil
	case int32:
		return Integer(v), nil
	case uint32:
		return Integer(v), nil
	case howett.UID:
		return Integer(v), nil
	case float64:
		return Real(v), nil
	case float32:
		return Real(v), nil
	case bool:
		return Boolean(v), nil
	case []byte:
		return Data(v), nil
	case time.Time:
		return Date(v), nil
	case nil:
		return nil, errors.New("plist: null value")
	default:
		return nil, errors.Errorf("plist: unsupported value of type %T", raw)
	}
}

// Marshal encodes v as an indented XML property list.
func Marshal(v Value) ([]byte, error) {
	native, err := toNative(v)
	if err != nil {
		return nil, err
	}
	out, err := howett.MarshalIndent(native, howett.XMLFormat, "\t")
	if err != nil {
		return nil, errors.Wrap(err, "plist: encode")
	}
	return out, nil
}

func toNative(v Value) (interface{}, error) {
	switch v := v.(type) {
	case Dict:
		m := make(map[string]interface{}, len(v))
		for k, item := range v {
			conv, err := toNative(item)
			if err != nil {
				return nil, errors.Wrapf(err, "key %q", k)
			}
			m[k] = conv
		}
		return m, nil
	case Array:
		a := make([]interface{}, 0, len(v))
		for i, item := range v {
			conv, err := toNative(item)
			if err != nil {
				return nil, errors.Wrapf(err, "index %d", i)
			}
			a = append(a, conv)
		}
		return a, nil
	case Number:
		return toNative(v.Value)
	case String:
		return string(v), nil
	case Integer:
		return int64(v), nil
	case Real:
		return float64(v), nil
	case Boolean:
		return bool(v), nil
	case Data:
		return []byte(v), nil
	case Date:
		return time.Time(v), nil
	default:
		return nil, errors.Errorf("plist: cannot encode %T", v)
	}
}
