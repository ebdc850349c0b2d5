package data

import (
	"testing"
	"time"

	"github.com/raywall/fast-service-commons/convert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnyValue_GetAsX(t *testing.T) {
	value := NewEmptyAnyValue()
	assert.Nil(t, value.GetAsObject())
	assert.Equal(t, convert.Unknown, value.TypeCode())

	value = NewAnyValue(1)
	assert.Equal(t, 1, value.GetAsInteger())
	assert.Equal(t, int64(1), value.GetAsLong())
	assert.Equal(t, 1.0, value.GetAsDouble())
	assert.Equal(t, float32(1), value.GetAsFloat())
	assert.Equal(t, "1", value.GetAsString())
	assert.True(t, value.GetAsBoolean())
	assert.Equal(t, convert.Long, value.TypeCode())

	value.SetAsObject("ABC")
	assert.Equal(t, convert.String, value.TypeCode())
	assert.Equal(t, 0, value.GetAsInteger())
	assert.Equal(t, 5, value.GetAsIntegerWithDefault(5))
	_, ok := value.GetAsNullableInteger()
	assert.False(t, ok)

	value = NewAnyValue("1975-04-08T00:00:00Z")
	expected := time.Date(1975, time.April, 8, 0, 0, 0, 0, time.UTC)
	assert.True(t, expected.Equal(value.GetAsDateTime()))

	typed, ok := NewAnyValue("123").GetAsNullableType(convert.Long)
	require.True(t, ok)
	assert.Equal(t, int64(123), typed)
	assert.Equal(t, 0.0, NewAnyValue(nil).GetAsType(convert.Double))
	assert.Equal(t, "x", NewAnyValue(nil).GetAsTypeWithDefault(convert.String, "x"))
}

func TestAnyValue_CopiesOtherAnyValue(t *testing.T) {
	source := NewAnyValue(123)
	copied := NewAnyValue(source)
	assert.Equal(t, 123, copied.GetAsObject())

	source.SetAsObject(456)
	assert.Equal(t, 123, copied.GetAsObject())

	copied.SetAsObject(source)
	assert.Equal(t, 456, copied.GetAsObject())
}

func TestAnyValue_Equals(t *testing.T) {
	value := NewAnyValue(1)
	assert.True(t, value.Equals(1))
	assert.True(t, value.Equals(1.0), "comparação por texto: \"1\" == \"1\"")
	assert.True(t, value.Equals("1"))
	assert.True(t, value.Equals(NewAnyValue(1)))
	assert.False(t, value.Equals(2))
	assert.False(t, value.Equals(nil))

	assert.True(t, NewAnyValue(nil).Equals(nil))

	value = NewAnyValue("1")
	assert.True(t, value.EqualsAsType(convert.Integer, 1.1))
	assert.True(t, value.EqualsAsType(convert.Boolean, true))
	assert.False(t, value.EqualsAsType(convert.Integer, 2))
	assert.False(t, value.EqualsAsType(convert.Integer, nil))
	assert.True(t, NewAnyValue(nil).EqualsAsType(convert.Integer, nil))

	slices := NewAnyValue([]any{1, 2})
	assert.True(t, slices.Equals([]any{1, 2}))
	assert.True(t, slices.Equals("1,2"))
}

func TestAnyValue_GetAsContainers(t *testing.T) {
	value := NewAnyValue([]any{1, "a"})
	array := value.GetAsArray()
	assert.Equal(t, 2, array.Len())
	assert.Equal(t, "a", array.GetAsString(1))

	value = NewAnyValue(5)
	assert.Equal(t, []any{5}, value.GetAsArray().Value())
	assert.Equal(t, 0, value.GetAsMap().Len())

	value = NewAnyValue(map[string]any{"key": "value"})
	assert.Equal(t, "value", value.GetAsMap().GetAsString("key"))
}

func TestAnyValue_CloneAndString(t *testing.T) {
	value := NewAnyValue(123.5)
	clone := value.Clone()
	clone.SetAsObject("x")

	assert.Equal(t, 123.5, value.GetAsObject())
	assert.Equal(t, "123.5", value.String())
	assert.Equal(t, "", NewEmptyAnyValue().String())
}
