// Package decode turns a window's canonical property-list description into a
// model.Window.
//
// The description is parsed into a generic plist tree first and then
// projected onto the fixed schema, so changes in how the window server
// formats its output only affect the projection. Tolerance is per field:
// bounds X and Y accept an integer or a base-10 numeric string because the
// window server emits both; every other numeric field must be numeric.
package decode

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mj1618/winlist/internal/model"
	"github.com/mj1618/winlist/internal/plist"
)

// Keys of a CGWindowListCopyWindowInfo entry.
const (
	KeyAlpha        = "kCGWindowAlpha"
	KeyBounds       = "kCGWindowBounds"
	KeyIsOnscreen   = "kCGWindowIsOnscreen"
	KeyLayer        = "kCGWindowLayer"
	KeyMemoryUsage  = "kCGWindowMemoryUsage"
	KeyName         = "kCGWindowName"
	KeyNumber       = "kCGWindowNumber"
	KeyOwnerName    = "kCGWindowOwnerName"
	KeyOwnerPID     = "kCGWindowOwnerPID"
	KeySharingState = "kCGWindowSharingState"
	KeyStoreType    = "kCGWindowStoreType"

	KeyX      = "X"
	KeyY      = "Y"
	KeyWidth  = "Width"
	KeyHeight = "Height"
)

// Decode parses text and projects it onto a model.Window. Index is left at
// zero; it is assigned by the enumeration.
func Decode(text string) (model.Window, error) {
	if strings.TrimSpace(text) == "" {
		return model.Window{}, fmt.Errorf("%w: empty description", ErrMalformed)
	}
	v, err := plist.Parse(text)
	if err != nil {
		return model.Window{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return Window(v)
}

// Window projects an already parsed description.
func Window(v plist.Value) (model.Window, error) {
	root, ok := v.(plist.Dict)
	if !ok {
		return model.Window{}, fmt.Errorf("%w: top-level %s is not a dictionary", ErrMalformed, plist.KindOf(v))
	}

	r := &reader{dict: root}
	w := model.Window{
		Alpha:        r.real(KeyAlpha, "alpha"),
		IsOnscreen:   r.flag(KeyIsOnscreen, "isOnscreen"),
		Layer:        int(r.integer(KeyLayer, "layer", math.MinInt32, math.MaxInt32)),
		MemoryUsage:  r.integer(KeyMemoryUsage, "memoryUsage", 0, math.MaxInt64),
		Name:         r.optionalText(KeyName, "name"),
		Number:       int(r.integer(KeyNumber, "number", 0, math.MaxUint32)),
		OwnerName:    r.text(KeyOwnerName, "ownerName"),
		OwnerPID:     int(r.integer(KeyOwnerPID, "ownerPid", math.MinInt32, math.MaxInt32)),
		SharingState: int(r.integer(KeySharingState, "sharingState", math.MinInt32, math.MaxInt32)),
		StoreType:    int(r.integer(KeyStoreType, "storeType", math.MinInt32, math.MaxInt32)),
	}

	if bounds := r.dictionary(KeyBounds, "bounds"); bounds != nil {
		b := &reader{dict: bounds}
		w.Bounds = model.Bounds{
			Height: int(b.integer(KeyHeight, "height", 0, math.MaxInt32)),
			Width:  int(b.integer(KeyWidth, "width", 0, math.MaxInt32)),
			X:      b.coordinate(KeyX, "x"),
			Y:      b.coordinate(KeyY, "y"),
		}
		r.fail(b.err)
	}

	if r.err != nil {
		return model.Window{}, r.err
	}
	return w, nil
}

// reader pulls typed fields out of a dictionary, keeping the first failure.
type reader struct {
	dict plist.Dict
	err  error
}

func (r *reader) fail(err error) {
	if r.err == nil && err != nil {
		r.err = err
	}
}

func (r *reader) lookup(key, field string) (plist.Value, bool) {
	v, ok := r.dict[key]
	if !ok || v == nil {
		r.fail(&MissingFieldError{Field: field})
		return nil, false
	}
	return plist.Scalar(v), true
}

func (r *reader) coerceFailed(field string, v plist.Value, err error) {
	r.fail(&FieldCoercionError{Field: field, Kind: plist.KindOf(v), Err: err})
}

func (r *reader) integer(key, field string, min, max int64) int64 {
	v, ok := r.lookup(key, field)
	if !ok {
		return 0
	}
	n, err := integerValue(v)
	if err == nil && (n < min || n > max) {
		err = fmt.Errorf("%d out of range [%d, %d]", n, min, max)
	}
	if err != nil {
		r.coerceFailed(field, v, err)
		return 0
	}
	return n
}

// coordinate accepts an integer leaf or a string holding a base-10 integer.
func (r *reader) coordinate(key, field string) int {
	v, ok := r.lookup(key, field)
	if !ok {
		return 0
	}
	switch v := v.(type) {
	case plist.Integer:
		if v < math.MinInt32 || v > math.MaxInt32 {
			r.coerceFailed(field, v, fmt.Errorf("%d out of range", int64(v)))
			return 0
		}
		return int(v)
	case plist.String:
		n, err := strconv.ParseInt(string(v), 10, 32)
		if err != nil {
			r.coerceFailed(field, v, err)
			return 0
		}
		return int(n)
	default:
		r.coerceFailed(field, v, nil)
		return 0
	}
}

// flag accepts 0/1 integers or booleans.
func (r *reader) flag(key, field string) int {
	v, ok := r.lookup(key, field)
	if !ok {
		return 0
	}
	switch v := v.(type) {
	case plist.Boolean:
		if v {
			return 1
		}
		return 0
	case plist.Integer:
		if v == 0 || v == 1 {
			return int(v)
		}
		r.coerceFailed(field, v, fmt.Errorf("flag value %d is not 0 or 1", int64(v)))
	default:
		r.coerceFailed(field, v, nil)
	}
	return 0
}

func (r *reader) real(key, field string) float64 {
	v, ok := r.lookup(key, field)
	if !ok {
		return 0
	}
	var f float64
	switch v := v.(type) {
	case plist.Real:
		f = float64(v)
	case plist.Integer:
		f = float64(v)
	default:
		r.coerceFailed(field, v, nil)
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		r.coerceFailed(field, v, errors.New("not a finite number"))
		return 0
	}
	return f
}

// text accepts strings and unquoted numeric tokens, which OpenStep writes
// for names made only of digits.
func (r *reader) text(key, field string) string {
	if _, ok := r.lookup(key, field); !ok {
		return ""
	}
	switch v := r.dict[key].(type) {
	case plist.String:
		return string(v)
	case plist.Number:
		return v.Text
	default:
		r.coerceFailed(field, v, nil)
		return ""
	}
}

// optionalText is text for keys the window server omits when the caller
// lacks screen recording permission.
func (r *reader) optionalText(key, field string) string {
	if v, ok := r.dict[key]; !ok || v == nil {
		return ""
	}
	return r.text(key, field)
}

func (r *reader) dictionary(key, field string) plist.Dict {
	v, ok := r.lookup(key, field)
	if !ok {
		return nil
	}
	d, ok := v.(plist.Dict)
	if !ok {
		r.coerceFailed(field, v, nil)
		return nil
	}
	return d
}

// integerValue converts native numeric leaves. Reals are accepted only when
// they hold an integral value.
func integerValue(v plist.Value) (int64, error) {
	switch v := v.(type) {
	case plist.Integer:
		return int64(v), nil
	case plist.Real:
		f := float64(v)
		if math.Trunc(f) != f || f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, fmt.Errorf("%v is not an integer", f)
		}
		return int64(f), nil
	default:
		return 0, errors.New("not a number")
	}
}
