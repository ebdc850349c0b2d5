package data

import (
	"testing"

	"github.com/raywall/fast-service-commons/convert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnyValueArray_Create(t *testing.T) {
	array := NewEmptyAnyValueArray()
	assert.Equal(t, 0, array.Len())

	array = NewAnyValueArrayFromValues(1, 2, 3)
	assert.Equal(t, 3, array.Len())
	assert.Equal(t, "1,2,3", array.String())

	array = NewAnyValueArrayFromValue(5)
	assert.Equal(t, []any{5}, array.GetAsObject())

	array = NewAnyValueArrayFromValue(nil)
	assert.Equal(t, 0, array.Len())

	array = NewAnyValueArrayFromString("Fatal,Error,Info,", ",", false)
	assert.Equal(t, 4, array.Len())
	assert.Equal(t, "", array.GetAsString(3))

	array = NewAnyValueArrayFromString("a,b,a,c", ",", true)
	assert.Equal(t, []any{"a", "b", "c"}, array.Value())

	source := []any{1, 2}
	array = NewAnyValueArray(source)
	array.Put(0, 10)
	assert.Equal(t, 1, source[0], "o slice de origem deve ser copiado")
}

func TestAnyValueArray_Mutations(t *testing.T) {
	array := NewEmptyAnyValueArray()
	array.Push("a")
	array.Push("b")
	array.Append([]string{"c", "d"})
	assert.Equal(t, "a,b,c,d", array.String())

	array.Remove(1)
	assert.Equal(t, "a,c,d", array.String())
	array.Remove(10)
	assert.Equal(t, 3, array.Len())

	array.Put(5, "z")
	assert.Equal(t, 6, array.Len())
	assert.Nil(t, array.Get(4))
	assert.Equal(t, "z", array.Get(5))
	assert.Nil(t, array.Get(-1))

	array.SetAsObject([]any{1, 2})
	assert.Equal(t, []any{1, 2}, array.Value())

	array.Clear()
	assert.Equal(t, 0, array.Len())
}

func TestAnyValueArray_GetAsX(t *testing.T) {
	array := NewAnyValueArrayFromValues("123", 1.5, "yes", "1975-04-08T00:00Z", nil, []any{1, 2}, map[string]any{"a": 1})

	assert.Equal(t, 123, array.GetAsInteger(0))
	assert.Equal(t, int64(1), array.GetAsLong(1))
	assert.Equal(t, 1.5, array.GetAsDouble(1))
	assert.Equal(t, float32(1.5), array.GetAsFloat(1))
	assert.True(t, array.GetAsBoolean(2))
	assert.Equal(t, 1975, array.GetAsDateTime(3).Year())
	assert.Equal(t, "x", array.GetAsStringWithDefault(4, "x"))
	assert.Equal(t, 9, array.GetAsIntegerWithDefault(99, 9))

	_, ok := array.GetAsNullableBoolean(0)
	assert.False(t, ok)

	nested, ok := array.GetAsNullableArray(5)
	require.True(t, ok)
	assert.Equal(t, 2, nested.Len())

	_, ok = array.GetAsNullableArray(4)
	assert.False(t, ok)

	m, ok := array.GetAsNullableMap(6)
	require.True(t, ok)
	assert.Equal(t, 1, m.GetAsInteger("a"))
	_, ok = array.GetAsNullableMap(0)
	assert.False(t, ok)
	assert.Equal(t, 0, array.GetAsMap(0).Len())

	assert.Equal(t, int64(123), array.GetAsType(convert.Long, 0))
	assert.Equal(t, "123", array.GetAsValue(0).GetAsString())
}

func TestAnyValueArray_Contains(t *testing.T) {
	array := NewAnyValueArrayFromValues(1, "abc", nil, []any{1})

	assert.True(t, array.Contains(1))
	assert.True(t, array.Contains("1"))
	assert.True(t, array.Contains("abc"))
	assert.True(t, array.Contains(nil))
	assert.True(t, array.Contains([]any{1}))
	assert.False(t, array.Contains("xyz"))

	array = NewAnyValueArrayFromValues("1", "2", "abc")
	assert.True(t, array.ContainsAsType(convert.Integer, 1.5))
	assert.True(t, array.ContainsAsType(convert.Long, "2"))
	assert.False(t, array.ContainsAsType(convert.Integer, 3))
	// nil casa com elementos que não podem ser convertidos.
	assert.True(t, array.ContainsAsType(convert.Integer, nil))
	assert.False(t, NewAnyValueArrayFromValues("1", 2).ContainsAsType(convert.Integer, nil))

	// Os dois lados passam pela mesma conversão.
	assert.False(t, NewAnyValueArrayFromValues(0).ContainsAsType(convert.Integer, "abc"))
	assert.False(t, NewAnyValueArrayFromValues("abc").ContainsAsType(convert.Integer, 0))
	assert.Equal(t,
		NewAnyValue("abc").EqualsAsType(convert.Integer, 0),
		NewAnyValueArrayFromValues("abc").ContainsAsType(convert.Integer, 0))
}

type boxed struct {
	V any
}

func TestAnyValueArray_ContainsStructWithUncomparableField(t *testing.T) {
	array := NewAnyValueArrayFromValues(boxed{V: []any{1}}, boxed{V: map[string]any{"a": 1}})

	assert.NotPanics(t, func() {
		assert.True(t, array.Contains(boxed{V: []any{1}}))
		assert.True(t, array.Contains(boxed{V: map[string]any{"a": 1}}))
		assert.False(t, array.Contains(boxed{V: []any{2}}))
	})
	assert.True(t, NewAnyValue(boxed{V: []any{1}}).Equals(boxed{V: []any{1}}))
	assert.True(t, NewAnyValue([1]any{[]any{1}}).Equals([1]any{[]any{1}}))
}

func TestAnyValueArray_Clone(t *testing.T) {
	array := NewAnyValueArrayFromValues(1, 2)
	clone := array.Clone()
	clone.Push(3)

	assert.Equal(t, 2, array.Len())
	assert.Equal(t, 3, clone.Len())
}
