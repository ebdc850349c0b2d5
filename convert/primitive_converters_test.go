package convert

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBoolean(t *testing.T) {
	assert.True(t, ToBoolean(true))
	assert.True(t, ToBoolean(1))
	assert.True(t, ToBoolean(int64(-5)))
	assert.True(t, ToBoolean("True"))
	assert.True(t, ToBoolean("yes"))
	assert.True(t, ToBoolean("YES"))
	assert.True(t, ToBoolean("1"))
	assert.True(t, ToBoolean("Y"))
	assert.True(t, ToBoolean("t"))
	assert.False(t, ToBoolean(false))
	assert.False(t, ToBoolean(0))
	assert.False(t, ToBoolean(0.0))
	assert.False(t, ToBoolean("0"))
	assert.False(t, ToBoolean("no"))
	assert.False(t, ToBoolean("F"))
	assert.False(t, ToBoolean("N"))

	assert.True(t, ToBooleanWithDefault("xyz", true))
	assert.False(t, ToBooleanWithDefault("xyz", false))
	assert.True(t, ToBooleanWithDefault(nil, true))

	_, ok := ToNullableBoolean("xyz")
	assert.False(t, ok, "texto desconhecido não deve ser convertido")

	_, ok = ToNullableBoolean(nil)
	assert.False(t, ok)

	isTrue, ok := ToNullableBoolean(math.NaN())
	assert.True(t, ok)
	assert.False(t, isTrue, "NaN é falso")
}

func TestToInteger(t *testing.T) {
	assert.Equal(t, 123, ToInteger(123))
	assert.Equal(t, 123, ToInteger(123.456))
	assert.Equal(t, -123, ToInteger(-123.9))
	assert.Equal(t, 123, ToInteger("123"))
	assert.Equal(t, 123, ToInteger("123.465"))
	assert.Equal(t, 123, ToInteger(uint8(123)))
	assert.Equal(t, 123, ToInteger(time.UnixMilli(123)))
	assert.Equal(t, 0, ToInteger("ABC"))

	assert.Equal(t, 123, ToIntegerWithDefault(nil, 123))
	assert.Equal(t, 123, ToIntegerWithDefault("ABC", 123))

	// Booleanos não são aceitos por conversores inteiros.
	_, ok := ToNullableInteger(true)
	assert.False(t, ok)
	assert.Equal(t, 7, ToIntegerWithDefault(true, 7))
}

func TestToLong(t *testing.T) {
	assert.Equal(t, int64(123), ToLong(123))
	assert.Equal(t, int64(123), ToLong(123.456))
	assert.Equal(t, int64(123), ToLong("123.456"))
	assert.Equal(t, int64(9007199254740993), ToLong(int64(9007199254740993)))
	assert.Equal(t, int64(123), ToLong(time.UnixMilli(123)))
	assert.Equal(t, int64(1500), ToLong(1500*time.Millisecond))
	assert.Equal(t, int64(123), ToLongWithDefault(nil, 123))
	assert.Equal(t, int64(123), ToLongWithDefault("ABC", 123))
	assert.Equal(t, int64(5), ToLongWithDefault(false, 5))

	_, ok := ToNullableLong(math.NaN())
	assert.False(t, ok)
}

func TestToDouble(t *testing.T) {
	assert.Equal(t, 123.0, ToDouble(123))
	assert.Equal(t, 123.456, ToDouble(123.456))
	assert.Equal(t, 123.456, ToDouble("123.456"))
	assert.Equal(t, 123.0, ToDouble(time.UnixMilli(123)))
	assert.Equal(t, 0.0, ToDouble("ABC"))

	assert.Equal(t, 123.0, ToDoubleWithDefault(nil, 123))
	assert.Equal(t, 123.0, ToDoubleWithDefault("ABC", 123))

	// Booleanos resultam em zero, ignorando o padrão do chamador.
	assert.Equal(t, 0.0, ToDoubleWithDefault(false, 123))
	assert.Equal(t, 0.0, ToDoubleWithDefault(true, 123))

	for _, text := range []string{"NaN", "nan", "inf", "-Inf", "Infinity"} {
		_, ok := ToNullableDouble(text)
		assert.False(t, ok, text)
		assert.Equal(t, 5.0, ToDoubleWithDefault(text, 5), text)
	}
}

func TestToFloat(t *testing.T) {
	assert.Equal(t, float32(123), ToFloat(123))
	assert.Equal(t, float32(123.456), ToFloat(123.456))
	assert.Equal(t, float32(123.456), ToFloat("123.456"))
	assert.Equal(t, float32(123), ToFloat(time.UnixMilli(123)))

	assert.Equal(t, float32(123), ToFloatWithDefault(nil, 123))
	assert.Equal(t, float32(123), ToFloatWithDefault("ABC", 123))
	assert.Equal(t, float32(0), ToFloatWithDefault(false, 123))
	assert.Equal(t, float32(7), ToFloatWithDefault("NaN", 7))
	assert.Equal(t, float32(7), ToFloatWithDefault("inf", 7))
}

func TestToDateTime(t *testing.T) {
	expected := time.Date(1975, time.April, 8, 0, 0, 0, 0, time.UTC)

	assert.True(t, expected.Equal(ToDateTime(expected)))
	assert.True(t, time.UnixMilli(123).Equal(ToDateTime(123)))
	assert.True(t, expected.Equal(ToDateTime("1975-04-08T00:00:00.000Z")))
	assert.True(t, expected.Equal(ToDateTime("1975-04-08T00:00Z")))
	assert.True(t, expected.Equal(ToDateTime("1975-04-08")))
	assert.True(t, expected.Equal(ToDateTime("1975-04-08T03:00:00+03:00")))

	_, ok := ToNullableDateTime("xyz")
	assert.False(t, ok)
	_, ok = ToNullableDateTime(nil)
	assert.False(t, ok)
	_, ok = ToNullableDateTime(true)
	assert.False(t, ok)

	assert.True(t, expected.Equal(ToDateTimeWithDefault("xyz", expected)))

	before := time.Now()
	now := ToDateTime(nil)
	assert.False(t, now.Before(before), "o padrão deve ser o instante atual")
}

func TestToString(t *testing.T) {
	date := time.Date(1975, time.April, 8, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "xyz", ToString("xyz"))
	assert.Equal(t, "123", ToString(123))
	assert.Equal(t, "123.456", ToString(123.456))
	assert.Equal(t, "0.5", ToString(float32(0.5)))
	assert.Equal(t, "true", ToString(true))
	assert.Equal(t, "false", ToString(false))
	assert.Equal(t, "1975-04-08T00:00:00.000Z", ToString(date))
	assert.Equal(t, "a,b,c", ToString([]string{"a", "b", "c"}))
	assert.Equal(t, "1,2,3", ToString([]any{1, []any{2, 3}}))
	assert.Equal(t, "", ToString(nil))
	assert.Equal(t, "xyz", ToStringWithDefault(nil, "xyz"))

	_, ok := ToNullableString(nil)
	assert.False(t, ok)
}

func TestToArray(t *testing.T) {
	assert.Equal(t, []any{}, ToArray(nil))
	assert.Equal(t, []any{5}, ToArray(5))
	assert.Equal(t, []any{"abc"}, ToArray("abc"))
	assert.Equal(t, []any{1, 2, 3}, ToArray([]int{1, 2, 3}))
	assert.Equal(t, []any{"abc", 123}, ToArray(map[string]any{"field1": "abc", "field2": 123}))

	original := []any{1, 2}
	same, ok := ToNullableArray(original)
	require.True(t, ok)
	same[0] = 10
	assert.Equal(t, 10, original[0], "[]any deve passar sem cópia")

	_, ok = ToNullableArray(nil)
	assert.False(t, ok)

	assert.Equal(t, []any{"123", "456"}, ListToArray("123,456"))
	assert.Equal(t, []any{}, ListToArray(nil))
	assert.Equal(t, []any{1, 2}, ListToArray([]any{1, 2}))

	assert.Equal(t, []any{"x"}, ToArrayWithDefault(nil, []any{"x"}))
}

func TestToMap(t *testing.T) {
	assert.Equal(t, map[string]any{"0": 1, "1": 2}, ToMap([]any{1, 2}))
	assert.Equal(t, map[string]any{"a": 1}, ToMap(map[string]int{"a": 1}))
	assert.Equal(t, map[string]any{"1": "x"}, ToMap(map[int]string{1: "x"}))
	assert.Equal(t, map[string]any{}, ToMap("abc"))
	assert.Equal(t, map[string]any{}, ToMap(nil))

	_, ok := ToNullableMap("abc")
	assert.False(t, ok)
	_, ok = ToNullableMap(123)
	assert.False(t, ok)
	_, ok = ToNullableMap(time.Now())
	assert.False(t, ok)

	type user struct {
		Name    string `json:"name"`
		Age     int
		Secret  string `json:"-"`
		private string
	}
	m := ToMap(user{Name: "John", Age: 30, Secret: "x", private: "y"})
	assert.Equal(t, map[string]any{"name": "John", "Age": 30}, m)

	source := map[string]any{"a": 1}
	copied := ToMap(source)
	copied["b"] = 2
	assert.Len(t, source, 1, "o map original não deve ser alterado")
}

func TestToRecursiveMap(t *testing.T) {
	type inner struct {
		Value int `json:"value"`
	}
	value := map[string]any{
		"name":  "abc",
		"items": []any{map[string]int{"x": 1}, 2, inner{Value: 3}},
		"child": map[string]any{"list": []string{"a"}},
	}

	result := ToRecursiveMap(value)
	assert.Equal(t, "abc", result["name"])
	assert.Equal(t, []any{map[string]any{"x": 1}, 2, map[string]any{"value": 3}}, result["items"])
	assert.Equal(t, map[string]any{"list": []any{"a"}}, result["child"])

	top := ToRecursiveMap([]any{[]any{1}})
	assert.Equal(t, map[string]any{"0": []any{1}}, top)

	_, ok := ToNullableRecursiveMap("abc")
	assert.False(t, ok)
	assert.Equal(t, map[string]any{"d": true}, ToRecursiveMapWithDefault(5, map[string]any{"d": true}))
}

func TestJsonConverter(t *testing.T) {
	text, err := ToJson(nil)
	require.NoError(t, err)
	assert.Equal(t, "", text)

	text, err = ToJson(map[string]any{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, text)

	value, err := FromJson(Integer, "123")
	require.NoError(t, err)
	assert.Equal(t, 123, value)

	value, err = FromJson(DateTime, `"1975-04-08T00:00Z"`)
	require.NoError(t, err)
	assert.True(t, ToDateTime("1975-04-08T00:00:00.000Z").Equal(value.(time.Time)))

	_, err = FromJson(Integer, "{")
	assert.Error(t, err)

	m, ok := JsonToNullableMap(`{"a":1,"b":"x"}`)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"a": 1.0, "b": "x"}, m)

	_, ok = JsonToNullableMap("abc")
	assert.False(t, ok, "texto inválido deve ser absorvido")

	assert.Equal(t, map[string]any{}, JsonToMap("not json"))
	assert.Equal(t, map[string]any{"d": 1}, JsonToMapWithDefault("", map[string]any{"d": 1}))
}

func TestWithDefaultEqualsNullableOrDefault(t *testing.T) {
	values := []any{nil, true, false, 0, 123, -1.5, "123", "abc", "yes", "1975-04-08", time.UnixMilli(5), []any{1}}

	for _, v := range values {
		if r, ok := ToNullableInteger(v); ok {
			assert.Equal(t, r, ToIntegerWithDefault(v, 42))
		} else {
			assert.Equal(t, 42, ToIntegerWithDefault(v, 42))
		}

		if r, ok := ToNullableBoolean(v); ok {
			assert.Equal(t, r, ToBooleanWithDefault(v, true))
		} else {
			assert.True(t, ToBooleanWithDefault(v, true))
		}

		if r, ok := ToNullableDouble(v); ok {
			assert.Equal(t, r, ToDoubleWithDefault(v, 4.2))
		} else {
			assert.Equal(t, 4.2, ToDoubleWithDefault(v, 4.2))
		}

		if r, ok := ToNullableString(v); ok {
			assert.Equal(t, r, ToStringWithDefault(v, "d"))
		} else {
			assert.Equal(t, "d", ToStringWithDefault(v, "d"))
		}
	}
}
