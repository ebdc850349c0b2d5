package data

import (
	"strings"
	"time"

	"github.com/raywall/fast-service-commons/convert"
)

// AnyValueArray é uma sequência ordenada de valores dinâmicos, endereçável
// por índice (0..Len()-1), que aceita duplicados.
type AnyValueArray struct {
	values []any
}

// NewEmptyAnyValueArray cria um array vazio.
func NewEmptyAnyValueArray() *AnyValueArray {
	return &AnyValueArray{values: make([]any, 0, 10)}
}

// NewAnyValueArray cria um array com uma cópia dos valores informados.
func NewAnyValueArray(values []any) *AnyValueArray {
	c := &AnyValueArray{values: make([]any, len(values))}
	copy(c.values, values)
	return c
}

// NewAnyValueArrayFromValues cria um array a partir de argumentos variádicos.
func NewAnyValueArrayFromValues(values ...any) *AnyValueArray {
	return NewAnyValueArray(values)
}

// NewAnyValueArrayFromValue converte qualquer valor em array: sequências são
// copiadas, escalares viram um único elemento e nil resulta em array vazio.
func NewAnyValueArrayFromValue(value any) *AnyValueArray {
	return NewAnyValueArray(convert.ToArray(value))
}

// NewAnyValueArrayFromString divide um texto pelo separador. Segmentos vazios
// são mantidos (inclusive o último); removeDuplicates descarta repetições.
//
// Exemplo:
//
//	NewAnyValueArrayFromString("Fatal,Error,Info,", ",", false).Len() // 4
func NewAnyValueArrayFromString(values string, separator string, removeDuplicates bool) *AnyValueArray {
	result := NewEmptyAnyValueArray()
	if values == "" {
		return result
	}

	for _, item := range strings.Split(values, separator) {
		if removeDuplicates && result.Contains(item) {
			continue
		}
		result.Push(item)
	}
	return result
}

// InnerValue implementa convert.ValueWrapper.
func (c *AnyValueArray) InnerValue() any {
	return c.values
}

// Value retorna o slice interno.
func (c *AnyValueArray) Value() []any {
	return c.values
}

// Len retorna o número de elementos.
func (c *AnyValueArray) Len() int {
	return len(c.values)
}

// Get retorna o elemento no índice, ou nil fora dos limites.
func (c *AnyValueArray) Get(index int) any {
	if index < 0 || index >= len(c.values) {
		return nil
	}
	return c.values[index]
}

// Put define o elemento no índice, estendendo o array com nil quando necessário.
func (c *AnyValueArray) Put(index int, value any) {
	if index < 0 {
		return
	}
	for index >= len(c.values) {
		c.values = append(c.values, nil)
	}
	c.values[index] = value
}

// Remove exclui o elemento no índice, deslocando os seguintes.
func (c *AnyValueArray) Remove(index int) {
	if index < 0 || index >= len(c.values) {
		return
	}
	c.values = append(c.values[:index], c.values[index+1:]...)
}

// Push adiciona um elemento ao final.
func (c *AnyValueArray) Push(value any) {
	c.values = append(c.values, value)
}

// Append adiciona os elementos de qualquer sequência (ou um escalar) ao final.
func (c *AnyValueArray) Append(elements any) {
	if elements == nil {
		return
	}
	c.values = append(c.values, convert.ToArray(elements)...)
}

// Clear remove todos os elementos.
func (c *AnyValueArray) Clear() {
	c.values = make([]any, 0, 10)
}

// GetAsObject retorna uma cópia de todos os elementos.
func (c *AnyValueArray) GetAsObject() any {
	result := make([]any, len(c.values))
	copy(result, c.values)
	return result
}

// SetAsObject substitui todos os elementos pelo valor convertido em array.
// Para alterar um único elemento use Put.
func (c *AnyValueArray) SetAsObject(value any) {
	c.values = NewAnyValueArrayFromValue(value).values
}

func (c *AnyValueArray) GetAsNullableString(index int) (string, bool) {
	return convert.ToNullableString(c.Get(index))
}

func (c *AnyValueArray) GetAsString(index int) string {
	return convert.ToString(c.Get(index))
}

func (c *AnyValueArray) GetAsStringWithDefault(index int, defaultValue string) string {
	return convert.ToStringWithDefault(c.Get(index), defaultValue)
}

func (c *AnyValueArray) GetAsNullableBoolean(index int) (bool, bool) {
	return convert.ToNullableBoolean(c.Get(index))
}

func (c *AnyValueArray) GetAsBoolean(index int) bool {
	return convert.ToBoolean(c.Get(index))
}

func (c *AnyValueArray) GetAsBooleanWithDefault(index int, defaultValue bool) bool {
	return convert.ToBooleanWithDefault(c.Get(index), defaultValue)
}

func (c *AnyValueArray) GetAsNullableInteger(index int) (int, bool) {
	return convert.ToNullableInteger(c.Get(index))
}

func (c *AnyValueArray) GetAsInteger(index int) int {
	return convert.ToInteger(c.Get(index))
}

func (c *AnyValueArray) GetAsIntegerWithDefault(index int, defaultValue int) int {
	return convert.ToIntegerWithDefault(c.Get(index), defaultValue)
}

func (c *AnyValueArray) GetAsNullableLong(index int) (int64, bool) {
	return convert.ToNullableLong(c.Get(index))
}

func (c *AnyValueArray) GetAsLong(index int) int64 {
	return convert.ToLong(c.Get(index))
}

func (c *AnyValueArray) GetAsLongWithDefault(index int, defaultValue int64) int64 {
	return convert.ToLongWithDefault(c.Get(index), defaultValue)
}

func (c *AnyValueArray) GetAsNullableFloat(index int) (float32, bool) {
	return convert.ToNullableFloat(c.Get(index))
}

func (c *AnyValueArray) GetAsFloat(index int) float32 {
	return convert.ToFloat(c.Get(index))
}

func (c *AnyValueArray) GetAsFloatWithDefault(index int, defaultValue float32) float32 {
	return convert.ToFloatWithDefault(c.Get(index), defaultValue)
}

func (c *AnyValueArray) GetAsNullableDouble(index int) (float64, bool) {
	return convert.ToNullableDouble(c.Get(index))
}

func (c *AnyValueArray) GetAsDouble(index int) float64 {
	return convert.ToDouble(c.Get(index))
}

func (c *AnyValueArray) GetAsDoubleWithDefault(index int, defaultValue float64) float64 {
	return convert.ToDoubleWithDefault(c.Get(index), defaultValue)
}

func (c *AnyValueArray) GetAsNullableDateTime(index int) (time.Time, bool) {
	return convert.ToNullableDateTime(c.Get(index))
}

func (c *AnyValueArray) GetAsDateTime(index int) time.Time {
	return convert.ToDateTime(c.Get(index))
}

func (c *AnyValueArray) GetAsDateTimeWithDefault(index int, defaultValue time.Time) time.Time {
	return convert.ToDateTimeWithDefault(c.Get(index), defaultValue)
}

func (c *AnyValueArray) GetAsNullableType(typeCode convert.TypeCode, index int) (any, bool) {
	return convert.ToNullableType(typeCode, c.Get(index))
}

func (c *AnyValueArray) GetAsType(typeCode convert.TypeCode, index int) any {
	return convert.ToType(typeCode, c.Get(index))
}

func (c *AnyValueArray) GetAsTypeWithDefault(typeCode convert.TypeCode, index int, defaultValue any) any {
	return convert.ToTypeWithDefault(typeCode, c.Get(index), defaultValue)
}

// GetAsValue retorna o elemento como AnyValue.
func (c *AnyValueArray) GetAsValue(index int) *AnyValue {
	return NewAnyValue(c.Get(index))
}

// GetAsNullableArray retorna o elemento como AnyValueArray, ou (nil, false) quando nil.
func (c *AnyValueArray) GetAsNullableArray(index int) (*AnyValueArray, bool) {
	value := c.Get(index)
	if value == nil {
		return nil, false
	}
	return NewAnyValueArrayFromValue(value), true
}

// GetAsArray retorna o elemento como AnyValueArray (vazio quando nil).
func (c *AnyValueArray) GetAsArray(index int) *AnyValueArray {
	return NewAnyValueArrayFromValue(c.Get(index))
}

func (c *AnyValueArray) GetAsArrayWithDefault(index int, defaultValue *AnyValueArray) *AnyValueArray {
	if result, ok := c.GetAsNullableArray(index); ok {
		return result
	}
	return defaultValue
}

// GetAsNullableMap retorna o elemento como AnyValueMap, ou (nil, false) quando
// não puder ser interpretado como map.
func (c *AnyValueArray) GetAsNullableMap(index int) (*AnyValueMap, bool) {
	m, ok := convert.ToNullableMap(c.Get(index))
	if !ok {
		return nil, false
	}
	return NewAnyValueMap(m), true
}

// GetAsMap retorna o elemento como AnyValueMap (vazio quando não conversível).
func (c *AnyValueArray) GetAsMap(index int) *AnyValueMap {
	return NewAnyValueMapFromValue(c.Get(index))
}

func (c *AnyValueArray) GetAsMapWithDefault(index int, defaultValue *AnyValueMap) *AnyValueMap {
	if result, ok := c.GetAsNullableMap(index); ok {
		return result
	}
	return defaultValue
}

// Contains verifica se algum elemento é igual ao valor, diretamente ou pela
// representação em texto.
func (c *AnyValueArray) Contains(value any) bool {
	value = innerOf(value)
	for _, element := range c.values {
		if looseEqual(element, value) {
			return true
		}
	}
	return false
}

// ContainsAsType verifica se algum elemento é igual ao valor depois de ambos
// serem convertidos para o tipo indicado. Valores que não convertem são iguais
// entre si, de modo que nil encontra elementos não conversíveis.
func (c *AnyValueArray) ContainsAsType(typeCode convert.TypeCode, value any) bool {
	value = innerOf(value)
	for _, element := range c.values {
		if typedEqual(typeCode, element, value) {
			return true
		}
	}
	return false
}

// Clone cria uma cópia rasa.
func (c *AnyValueArray) Clone() *AnyValueArray {
	return NewAnyValueArray(c.values)
}

// String une a representação em texto dos elementos com ",".
func (c *AnyValueArray) String() string {
	parts := make([]string, len(c.values))
	for i, value := range c.values {
		parts[i] = convert.ToString(value)
	}
	return strings.Join(parts, ",")
}
