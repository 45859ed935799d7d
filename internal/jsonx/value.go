// Package jsonx provides safe, chainable access into an untyped JSON value tree.
//
// Lookups never fail on their own: a missing key, an out-of-range index or a step
// into the wrong kind of container yields an absent Value that remembers the path
// it broke at. Callers decide at the leaf whether absence is fatal by using the
// Require* accessors, which return a *PathError.
package jsonx

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cast"
)

var (
	// ErrAbsent means a required path does not exist in the tree.
	ErrAbsent = errors.New("absent")

	// ErrKind means the path exists but holds a value of the wrong kind.
	ErrKind = errors.New("wrong kind")
)

// PathError describes a failed required lookup.
type PathError struct {
	Path string
	Want string
	Err  error
}

func (e *PathError) Error() string {
	path := e.Path
	if path == "" {
		path = "$"
	}
	return fmt.Sprintf("%s: %v (want %s)", path, e.Err, e.Want)
}

func (e *PathError) Unwrap() error { return e.Err }

// Value is a single node of a decoded JSON tree together with its path from the root.
// The zero Value is absent.
type Value struct {
	raw  any
	path string
	miss error
}

// Decode parses b into a value tree. Numbers are kept as json.Number so integer
// fields never lose precision through float64.
func Decode(b []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return Value{miss: ErrAbsent}, fmt.Errorf("decode json: %w", err)
	}
	return Value{raw: raw}, nil
}

// DecodeString is Decode for JSON carried as text inside another document.
func DecodeString(s string) (Value, error) {
	return Decode([]byte(s))
}

// Wrap turns an already decoded tree (map[string]any, []any, string, bool, nil,
// json.Number or float64) into a Value.
func Wrap(raw any) Value { return Value{raw: raw} }

func (v Value) Path() string { return v.path }
func (v Value) Raw() any     { return v.raw }

// Exists reports whether every step leading to v was present. A JSON null exists.
func (v Value) Exists() bool { return v.miss == nil }

// IsNull reports whether v exists and is an explicit JSON null.
func (v Value) IsNull() bool { return v.miss == nil && v.raw == nil }

func (v Value) IsObject() bool {
	_, ok := v.raw.(map[string]any)
	return v.miss == nil && ok
}

func (v Value) IsArray() bool {
	_, ok := v.raw.([]any)
	return v.miss == nil && ok
}

// Kind names the JSON kind of v, or "absent".
func (v Value) Kind() string {
	if v.miss != nil {
		return "absent"
	}
	switch v.raw.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "bool"
	case json.Number, float64:
		return "number"
	default:
		return fmt.Sprintf("%T", v.raw)
	}
}

// Get steps into an object member.
func (v Value) Get(key string) Value {
	if v.miss != nil {
		return v
	}
	p := joinKey(v.path, key)
	m, ok := v.raw.(map[string]any)
	if !ok {
		return Value{path: p, miss: ErrKind}
	}
	x, ok := m[key]
	if !ok {
		return Value{path: p, miss: ErrAbsent}
	}
	return Value{raw: x, path: p}
}

// At is shorthand for successive Get calls.
func (v Value) At(keys ...string) Value {
	for _, k := range keys {
		v = v.Get(k)
	}
	return v
}

// Index steps into an array element.
func (v Value) Index(i int) Value {
	if v.miss != nil {
		return v
	}
	p := fmt.Sprintf("%s[%d]", v.path, i)
	a, ok := v.raw.([]any)
	if !ok {
		return Value{path: p, miss: ErrKind}
	}
	if i < 0 || i >= len(a) {
		return Value{path: p, miss: ErrAbsent}
	}
	return Value{raw: a[i], path: p}
}

// Elems returns the elements of an array in order, or nil if v is not an array.
func (v Value) Elems() []Value {
	a, ok := v.raw.([]any)
	if v.miss != nil || !ok {
		return nil
	}
	out := make([]Value, len(a))
	for i, x := range a {
		out[i] = Value{raw: x, path: fmt.Sprintf("%s[%d]", v.path, i)}
	}
	return out
}

func (v Value) Text() (string, bool) {
	s, ok := v.raw.(string)
	return s, v.miss == nil && ok
}

func (v Value) Bool() (bool, bool) {
	b, ok := v.raw.(bool)
	return b, v.miss == nil && ok
}

// Int64 accepts only integral JSON numbers. Numeric text is not a number.
func (v Value) Int64() (int64, bool) {
	if v.miss != nil {
		return 0, false
	}
	var s string
	switch n := v.raw.(type) {
	case json.Number:
		s = string(n)
	case float64:
		if n != float64(int64(n)) {
			return 0, false
		}
		return int64(n), true
	default:
		return 0, false
	}
	if strings.ContainsAny(s, ".eE") {
		return 0, false
	}
	i, err := cast.ToInt64E(s)
	return i, err == nil
}

func (v Value) Int() (int, bool) {
	i, ok := v.Int64()
	if !ok || int64(int(i)) != i {
		return 0, false
	}
	return int(i), true
}

func (v Value) Float() (float64, bool) {
	if v.miss != nil {
		return 0, false
	}
	switch n := v.raw.(type) {
	case json.Number:
		f, err := cast.ToFloat64E(string(n))
		return f, err == nil
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// IntText parses a decimal integer carried as JSON text, e.g. "questionId": "42".
func (v Value) IntText() (int, bool) {
	s, ok := v.Text()
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	return n, err == nil
}

// Require fails only if the path is absent; any kind, including null, passes.
func (v Value) Require() error {
	if v.miss != nil {
		return &PathError{Path: v.path, Want: "value", Err: v.miss}
	}
	return nil
}

func (v Value) RequireObject() error {
	if v.IsObject() {
		return nil
	}
	return v.fail("object")
}

func (v Value) RequireArray() ([]Value, error) {
	if !v.IsArray() {
		return nil, v.fail("array")
	}
	return v.Elems(), nil
}

func (v Value) RequireString() (string, error) {
	if s, ok := v.Text(); ok {
		return s, nil
	}
	return "", v.fail("string")
}

func (v Value) RequireBool() (bool, error) {
	if b, ok := v.Bool(); ok {
		return b, nil
	}
	return false, v.fail("bool")
}

func (v Value) RequireInt64() (int64, error) {
	if i, ok := v.Int64(); ok {
		return i, nil
	}
	return 0, v.fail("integer")
}

func (v Value) RequireInt() (int, error) {
	if i, ok := v.Int(); ok {
		return i, nil
	}
	return 0, v.fail("integer")
}

func (v Value) RequireFloat() (float64, error) {
	if f, ok := v.Float(); ok {
		return f, nil
	}
	return 0, v.fail("number")
}

func (v Value) RequireIntText() (int, error) {
	if n, ok := v.IntText(); ok {
		return n, nil
	}
	return 0, v.fail("integer text")
}

// Unmarshal decodes the node into dst using the usual struct tag rules.
func (v Value) Unmarshal(dst any) error {
	if v.miss != nil {
		return &PathError{Path: v.path, Want: "value", Err: v.miss}
	}
	b, err := json.Marshal(v.raw)
	if err != nil {
		return fmt.Errorf("%s: re-encode: %w", v.path, err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return &PathError{Path: v.path, Want: fmt.Sprintf("%T", dst), Err: fmt.Errorf("%w: %v", ErrKind, err)}
	}
	return nil
}

func (v Value) fail(want string) error {
	if v.miss != nil {
		return &PathError{Path: v.path, Want: want, Err: v.miss}
	}
	return &PathError{Path: v.path, Want: want, Err: fmt.Errorf("%w: got %s", ErrKind, v.Kind())}
}

func joinKey(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
