package toolcall

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueOf_Scalars(t *testing.T) {
	tests := []struct {
		name string
		in   any
		kind Kind
	}{
		{"nil", nil, KindNull},
		{"string", "hello", KindString},
		{"bool", true, KindBool},
		{"int", 5, KindNumber},
		{"int64", int64(7), KindNumber},
		{"uint8", uint8(3), KindNumber},
		{"float32", float32(1.5), KindNumber},
		{"json number", json.Number("42"), KindNumber},
		{"list", []any{1, "a"}, KindList},
		{"object", map[string]any{"a": 1}, KindObject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ValueOf(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, v.Kind())
		})
	}
}

func TestValueOf_Struct(t *testing.T) {
	type result struct {
		NumResults int    `json:"num_results"`
		TopResults string `json:"top_results"`
	}

	v, err := ValueOf(result{NumResults: 5, TopResults: "Today is Jan 19, 2025"})
	require.NoError(t, err)

	expected := MustValue(map[string]any{"num_results": 5, "top_results": "Today is Jan 19, 2025"})
	assert.True(t, v.Equal(expected))
}

func TestValueOf_Unsupported(t *testing.T) {
	_, err := ValueOf(make(chan int))
	assert.Error(t, err)

	_, err = ValueOf(map[string]any{"bad": func() {}})
	assert.Error(t, err)
}

func TestValue_EqualNumbersByValue(t *testing.T) {
	assert.True(t, MustValue(5).Equal(Number(5.0)))
	assert.True(t, MustValue(int64(5)).Equal(MustValue(json.Number("5"))))
	assert.False(t, Number(5).Equal(String("5")))
}

func TestValue_NumbersCanonical(t *testing.T) {
	negZero := Number(math.Copysign(0, -1))
	assert.True(t, negZero.Equal(Number(0)))
	assert.Equal(t, "0", negZero.String())
	assert.Equal(t, "1.5", Number(1.5).String())
	assert.Equal(t, "100", MustValue(json.Number("1e2")).String())

	big := MustValue(json.Number("9007199254740993"))
	assert.Equal(t, "9007199254740993", big.String())
	assert.True(t, big.Equal(Int(9007199254740993)))
	assert.False(t, big.Equal(Number(9007199254740992)))
	assert.Equal(t, "18446744073709551615", MustValue(uint64(math.MaxUint64)).String())

	_, err := ValueOf(json.Number("1e400"))
	assert.Error(t, err)
}

func TestValue_JSONKeepsLargeIntegers(t *testing.T) {
	var v Value
	require.NoError(t, json.Unmarshal([]byte(`{"id":9007199254740993}`), &v))

	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":9007199254740993}`, string(data))
}

func TestValue_EqualDeep(t *testing.T) {
	a := MustValue(map[string]any{"x": []any{1, map[string]any{"y": "z"}}})
	b := MustValue(map[string]any{"x": []any{1.0, map[string]any{"y": "z"}}})
	c := MustValue(map[string]any{"x": []any{1, map[string]any{"y": "w"}}})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, List(Number(1)).Equal(List(Number(1), Number(2))))
	assert.True(t, Null().Equal(Value{}))
}

func TestValue_Accessors(t *testing.T) {
	s, ok := String("a").AsString()
	assert.True(t, ok)
	assert.Equal(t, "a", s)

	_, ok = String("a").AsNumber()
	assert.False(t, ok)

	n, ok := Number(2).AsNumber()
	assert.True(t, ok)
	assert.Equal(t, 2.0, n)

	b, ok := Bool(true).AsBool()
	assert.True(t, ok)
	assert.True(t, b)

	list, ok := List(String("a")).AsList()
	require.True(t, ok)
	list[0] = String("mutated")
	orig, _ := List(String("a")).AsList()
	assert.Equal(t, "a", orig[0].s)

	obj, ok := Object(map[string]Value{"k": Bool(false)}).AsObject()
	require.True(t, ok)
	assert.Contains(t, obj, "k")

	assert.True(t, Null().IsNull())
}

func TestValue_ObjectCopiesInput(t *testing.T) {
	fields := map[string]Value{"a": Number(1)}
	v := Object(fields)
	fields["a"] = Number(2)

	obj, _ := v.AsObject()
	assert.True(t, obj["a"].Equal(Number(1)))
}

func TestValue_StringIsCanonical(t *testing.T) {
	v := MustValue(map[string]any{"b": 2, "a": "what is 2+3?", "c": nil})
	assert.Equal(t, `{"a":"what is 2+3?","b":2,"c":null}`, v.String())
	assert.Equal(t, "5", Number(5).String())
	assert.Equal(t, `"<tag>"`, String("<tag>").String())
}

func TestValue_JSONRoundTrip(t *testing.T) {
	original := MustValue(map[string]any{"num_results": 5, "top_results": []any{"a", true, nil}})

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Value
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, original.Equal(decoded))
}

func TestValue_Interface(t *testing.T) {
	v := MustValue(map[string]any{"n": 1, "l": []any{"x"}})
	assert.Equal(t, map[string]any{"n": 1.0, "l": []any{"x"}}, v.Interface())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "object", KindObject.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
