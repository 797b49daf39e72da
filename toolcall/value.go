package toolcall

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	// KindNull is the zero Value.
	KindNull Kind = iota
	// KindBool holds a boolean.
	KindBool
	// KindNumber holds a number. Integers are kept exact.
	KindNumber
	// KindString holds a string.
	KindString
	// KindList holds an ordered list of values.
	KindList
	// KindObject holds a string keyed mapping of values.
	KindObject
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is an immutable tagged variant for tool inputs and outputs.
// The zero Value is null.
type Value struct {
	kind Kind
	b    bool
	n    float64
	num  string // canonical decimal text of a number
	s    string
	list []Value
	obj  map[string]Value
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number wraps a float64. Integral values are stored as exact integers and
// -0 becomes 0. Number panics if n is NaN or infinite; use ValueOf for
// unchecked input.
func Number(n float64) Value {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		panic(fmt.Sprintf("toolcall: unsupported number %v", n))
	}
	return Value{kind: KindNumber, n: n, num: formatFloat(n)}
}

// Int wraps an integer without loss of precision.
func Int(i int64) Value {
	return Value{kind: KindNumber, n: float64(i), num: strconv.FormatInt(i, 10)}
}

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, s: s} }

// List wraps the given values. The slice is copied.
func List(values ...Value) Value {
	return Value{kind: KindList, list: append([]Value(nil), values...)}
}

// Object wraps a mapping. The map is copied.
func Object(fields map[string]Value) Value {
	return Value{kind: KindObject, obj: copyFields(fields)}
}

// ValueOf converts a Go value into a Value. Strings, booleans, all numeric
// kinds, nil, json.Number, []any, map[string]any and Value itself are
// converted directly; any other type is converted through its JSON encoding.
func ValueOf(v any) (Value, error) {
	switch t := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case string:
		return String(t), nil
	case bool:
		return Bool(t), nil
	case json.Number:
		return parseNumber(string(t))
	case []any:
		list := make([]Value, len(t))
		for i, item := range t {
			iv, err := ValueOf(item)
			if err != nil {
				return Value{}, fmt.Errorf("index %d: %w", i, err)
			}
			list[i] = iv
		}
		return Value{kind: KindList, list: list}, nil
	case map[string]any:
		obj := make(map[string]Value, len(t))
		for k, item := range t {
			iv, err := ValueOf(item)
			if err != nil {
				return Value{}, fmt.Errorf("key %q: %w", k, err)
			}
			obj[k] = iv
		}
		return Value{kind: KindObject, obj: obj}, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		return Value{kind: KindNumber, n: float64(u), num: strconv.FormatUint(u, 10)}, nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Value{}, fmt.Errorf("unsupported number %v", f)
		}
		return Number(f), nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return Value{}, fmt.Errorf("unsupported value of type %T: %w", v, err)
	}
	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return Value{}, fmt.Errorf("unsupported value of type %T: %w", v, err)
	}
	return ValueOf(decoded)
}

// numberPrec is wide enough to hold any int64 or uint64 exactly.
const numberPrec = 256

// parseNumber converts JSON number text. Integral numbers keep every digit;
// fractional numbers are rounded to float64.
func parseNumber(text string) (Value, error) {
	f, _, err := big.ParseFloat(text, 10, numberPrec, big.ToNearestEven)
	if err != nil {
		return Value{}, fmt.Errorf("invalid json number %q: %w", text, err)
	}
	approx, _ := f.Float64()
	if f.IsInf() || math.IsInf(approx, 0) {
		return Value{}, fmt.Errorf("json number %q out of range", text)
	}
	if f.IsInt() {
		i, _ := f.Int(nil)
		return Value{kind: KindNumber, n: approx, num: i.String()}, nil
	}
	return Number(approx), nil
}

// formatFloat returns the canonical text of a finite float. Integral values
// are rendered as exact integers, so 5.0, 5 and -0 all collapse onto one form.
func formatFloat(f float64) string {
	if f == math.Trunc(f) {
		i, _ := new(big.Float).SetFloat64(f).Int(nil)
		return i.String()
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// MustValue is like ValueOf but panics on error. Intended for fixtures.
func MustValue(v any) Value {
	val, err := ValueOf(v)
	if err != nil {
		panic(err)
	}
	return val
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean and whether v holds one.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsNumber returns the number and whether v holds one.
func (v Value) AsNumber() (float64, bool) { return v.n, v.kind == KindNumber }

// AsString returns the string and whether v holds one.
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsList returns a copy of the list and whether v holds one.
func (v Value) AsList() ([]Value, bool) {
	if v.kind != KindList {
		return nil, false
	}
	return append([]Value(nil), v.list...), true
}

// AsObject returns a copy of the mapping and whether v holds one.
func (v Value) AsObject() (map[string]Value, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	return copyFields(v.obj), true
}

// Interface converts v back into plain Go values (nil, bool, float64,
// string, []any, map[string]any). Integers beyond 2^53 lose precision; use
// MarshalJSON for an exact rendering.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return v.n
	case KindString:
		return v.s
	case KindList:
		out := make([]any, len(v.list))
		for i, item := range v.list {
			out[i] = item.Interface()
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.obj))
		for k, item := range v.obj {
			out[k] = item.Interface()
		}
		return out
	default:
		return nil
	}
}

// jsonValue is like Interface but keeps numbers as their canonical text.
func (v Value) jsonValue() any {
	switch v.kind {
	case KindNumber:
		return json.Number(v.num)
	case KindList:
		out := make([]any, len(v.list))
		for i, item := range v.list {
			out[i] = item.jsonValue()
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.obj))
		for k, item := range v.obj {
			out[k] = item.jsonValue()
		}
		return out
	default:
		return v.Interface()
	}
}

// Equal reports deep structural equality. Numbers compare by value, so an
// integer 5 and a float 5.0 are equal, and so are 0 and -0. Integers are
// compared exactly.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindNumber:
		return v.num == o.num
	case KindString:
		return v.s == o.s
	case KindList:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(o.list[i]) {
				return false
			}
		}
		return true
	case KindObject:
		return fieldsEqual(v.obj, o.obj)
	default:
		return false
	}
}

// String renders v as canonical JSON (object keys sorted).
func (v Value) String() string {
	data, err := v.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("%v", v.Interface())
	}
	return string(data)
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v.jsonValue()); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ValueOf(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// UnmarshalYAML lets datasets declare values in YAML. The node is decoded
// into plain Go values first and then converted.
func (v *Value) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return err
	}
	parsed, err := ValueOf(normalizeYAML(raw))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// normalizeYAML converts map[any]any produced by some YAML decoders into
// map[string]any.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[fmt.Sprint(k)] = normalizeYAML(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = normalizeYAML(item)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = normalizeYAML(item)
		}
		return out
	default:
		return v
	}
}

func copyFields(fields map[string]Value) map[string]Value {
	out := make(map[string]Value, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return out
}

func fieldsEqual(a, b map[string]Value) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || !av.Equal(bv) {
			return false
		}
	}
	return true
}
