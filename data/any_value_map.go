package data

import (
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/raywall/fast-service-commons/convert"
)

// AnyValueMap é um map de chave string para valores dinâmicos, guardados
// exatamente como recebidos.
type AnyValueMap struct {
	values map[string]any
}

// NewEmptyAnyValueMap cria um map vazio.
func NewEmptyAnyValueMap() *AnyValueMap {
	return &AnyValueMap{values: map[string]any{}}
}

// NewAnyValueMap cria um map com uma cópia rasa das entradas informadas.
func NewAnyValueMap(values map[string]any) *AnyValueMap {
	c := &AnyValueMap{values: make(map[string]any, len(values))}
	for k, v := range values {
		c.values[k] = v
	}
	return c
}

// NewAnyValueMapFromValue converte qualquer valor em map. Valores que não são
// containers resultam em map vazio.
func NewAnyValueMapFromValue(value any) *AnyValueMap {
	return &AnyValueMap{values: convert.ToMap(value)}
}

// NewAnyValueMapFromTuples cria um map a partir de pares chave/valor:
// NewAnyValueMapFromTuples("key1", 1, "key2", "abc").
func NewAnyValueMapFromTuples(tuples ...any) *AnyValueMap {
	return NewAnyValueMapFromTuplesArray(tuples)
}

// NewAnyValueMapFromTuplesArray é a variante de NewAnyValueMapFromTuples que
// recebe um slice. Um último elemento sem par é ignorado.
func NewAnyValueMapFromTuplesArray(tuples []any) *AnyValueMap {
	c := NewEmptyAnyValueMap()
	for i := 0; i+1 < len(tuples); i += 2 {
		c.Put(convert.ToString(tuples[i]), tuples[i+1])
	}
	return c
}

// NewAnyValueMapFromMaps combina vários maps; chaves repetidas ficam com o
// valor do último map.
func NewAnyValueMapFromMaps(maps ...map[string]any) *AnyValueMap {
	c := NewEmptyAnyValueMap()
	for _, m := range maps {
		c.Append(m)
	}
	return c
}

// InnerValue implementa convert.ValueWrapper.
func (c *AnyValueMap) InnerValue() any {
	return c.values
}

// Value retorna o map interno.
func (c *AnyValueMap) Value() map[string]any {
	return c.values
}

// Keys retorna as chaves em ordem alfabética.
func (c *AnyValueMap) Keys() []string {
	return sortedKeys(c.values)
}

// Len retorna o número de entradas, sem contar valores do tipo função.
func (c *AnyValueMap) Len() int {
	count := 0
	for _, value := range c.values {
		if value == nil || reflect.TypeOf(value).Kind() != reflect.Func {
			count++
		}
	}
	return count
}

// Contains indica se a chave existe, mesmo com valor nil.
func (c *AnyValueMap) Contains(key string) bool {
	_, ok := c.values[key]
	return ok
}

// Get retorna o valor da chave.
//
// Valores "vazios" (false, 0, "") também resultam em nil nesta busca simples,
// enquanto os acessores tipados leem o valor bruto. Use Contains e os
// acessores GetAsX para distinguir esses casos.
func (c *AnyValueMap) Get(key string) any {
	return foldEmpty(c.values[key])
}

// Put define o valor da chave.
func (c *AnyValueMap) Put(key string, value any) {
	c.values[key] = value
}

// Remove exclui a chave.
func (c *AnyValueMap) Remove(key string) {
	delete(c.values, key)
}

// Append copia as entradas de um map nativo, sobrescrevendo chaves existentes.
func (c *AnyValueMap) Append(values map[string]any) {
	for k, v := range values {
		c.values[k] = v
	}
}

// AppendValue converte um valor com convert.ToMap e copia suas entradas.
func (c *AnyValueMap) AppendValue(value any) {
	c.Append(convert.ToMap(value))
}

// Clear remove todas as entradas.
func (c *AnyValueMap) Clear() {
	c.values = map[string]any{}
}

// GetAsObject retorna uma cópia rasa de todas as entradas.
func (c *AnyValueMap) GetAsObject() any {
	result := make(map[string]any, len(c.values))
	for k, v := range c.values {
		result[k] = v
	}
	return result
}

// SetAsObject substitui todas as entradas pelo valor convertido em map.
// Para alterar uma única chave use Put.
func (c *AnyValueMap) SetAsObject(value any) {
	c.values = convert.ToMap(value)
}

func (c *AnyValueMap) GetAsNullableString(key string) (string, bool) {
	return convert.ToNullableString(c.values[key])
}

func (c *AnyValueMap) GetAsString(key string) string {
	return convert.ToString(c.values[key])
}

func (c *AnyValueMap) GetAsStringWithDefault(key string, defaultValue string) string {
	return convert.ToStringWithDefault(c.values[key], defaultValue)
}

func (c *AnyValueMap) GetAsNullableBoolean(key string) (bool, bool) {
	return convert.ToNullableBoolean(c.values[key])
}

func (c *AnyValueMap) GetAsBoolean(key string) bool {
	return convert.ToBoolean(c.values[key])
}

func (c *AnyValueMap) GetAsBooleanWithDefault(key string, defaultValue bool) bool {
	return convert.ToBooleanWithDefault(c.values[key], defaultValue)
}

func (c *AnyValueMap) GetAsNullableInteger(key string) (int, bool) {
	return convert.ToNullableInteger(c.values[key])
}

func (c *AnyValueMap) GetAsInteger(key string) int {
	return convert.ToInteger(c.values[key])
}

func (c *AnyValueMap) GetAsIntegerWithDefault(key string, defaultValue int) int {
	return convert.ToIntegerWithDefault(c.values[key], defaultValue)
}

func (c *AnyValueMap) GetAsNullableLong(key string) (int64, bool) {
	return convert.ToNullableLong(c.values[key])
}

func (c *AnyValueMap) GetAsLong(key string) int64 {
	return convert.ToLong(c.values[key])
}

func (c *AnyValueMap) GetAsLongWithDefault(key string, defaultValue int64) int64 {
	return convert.ToLongWithDefault(c.values[key], defaultValue)
}

func (c *AnyValueMap) GetAsNullableFloat(key string) (float32, bool) {
	return convert.ToNullableFloat(c.values[key])
}

func (c *AnyValueMap) GetAsFloat(key string) float32 {
	return convert.ToFloat(c.values[key])
}

func (c *AnyValueMap) GetAsFloatWithDefault(key string, defaultValue float32) float32 {
	return convert.ToFloatWithDefault(c.values[key], defaultValue)
}

func (c *AnyValueMap) GetAsNullableDouble(key string) (float64, bool) {
	return convert.ToNullableDouble(c.values[key])
}

func (c *AnyValueMap) GetAsDouble(key string) float64 {
	return convert.ToDouble(c.values[key])
}

func (c *AnyValueMap) GetAsDoubleWithDefault(key string, defaultValue float64) float64 {
	return convert.ToDoubleWithDefault(c.values[key], defaultValue)
}

func (c *AnyValueMap) GetAsNullableDateTime(key string) (time.Time, bool) {
	return convert.ToNullableDateTime(c.values[key])
}

func (c *AnyValueMap) GetAsDateTime(key string) time.Time {
	return convert.ToDateTime(c.values[key])
}

func (c *AnyValueMap) GetAsDateTimeWithDefault(key string, defaultValue time.Time) time.Time {
	return convert.ToDateTimeWithDefault(c.values[key], defaultValue)
}

func (c *AnyValueMap) GetAsNullableType(typeCode convert.TypeCode, key string) (any, bool) {
	return convert.ToNullableType(typeCode, c.values[key])
}

func (c *AnyValueMap) GetAsType(typeCode convert.TypeCode, key string) any {
	return convert.ToType(typeCode, c.values[key])
}

func (c *AnyValueMap) GetAsTypeWithDefault(typeCode convert.TypeCode, key string, defaultValue any) any {
	return convert.ToTypeWithDefault(typeCode, c.values[key], defaultValue)
}

// GetAsValue retorna o valor da chave como AnyValue.
func (c *AnyValueMap) GetAsValue(key string) *AnyValue {
	return NewAnyValue(c.values[key])
}

// GetAsNullableArray retorna o valor como AnyValueArray, ou (nil, false) quando nil.
func (c *AnyValueMap) GetAsNullableArray(key string) (*AnyValueArray, bool) {
	value := c.values[key]
	if value == nil {
		return nil, false
	}
	return NewAnyValueArrayFromValue(value), true
}

// GetAsArray retorna o valor como AnyValueArray (vazio quando nil).
func (c *AnyValueMap) GetAsArray(key string) *AnyValueArray {
	return NewAnyValueArrayFromValue(c.values[key])
}

func (c *AnyValueMap) GetAsArrayWithDefault(key string, defaultValue *AnyValueArray) *AnyValueArray {
	if result, ok := c.GetAsNullableArray(key); ok {
		return result
	}
	return defaultValue
}

// GetAsNullableMap retorna o valor como AnyValueMap, ou (nil, false) quando não
// puder ser interpretado como map.
func (c *AnyValueMap) GetAsNullableMap(key string) (*AnyValueMap, bool) {
	m, ok := convert.ToNullableMap(c.values[key])
	if !ok {
		return nil, false
	}
	return &AnyValueMap{values: m}, true
}

// GetAsMap retorna o valor como AnyValueMap (vazio quando não conversível).
func (c *AnyValueMap) GetAsMap(key string) *AnyValueMap {
	return NewAnyValueMapFromValue(c.values[key])
}

func (c *AnyValueMap) GetAsMapWithDefault(key string, defaultValue *AnyValueMap) *AnyValueMap {
	if result, ok := c.GetAsNullableMap(key); ok {
		return result
	}
	return defaultValue
}

// Clone cria uma cópia rasa.
func (c *AnyValueMap) Clone() *AnyValueMap {
	return NewAnyValueMap(c.values)
}

// String gera "chave1=valor1;chave2=valor2" com as chaves em ordem alfabética,
// omitindo "=valor" quando o valor é nil.
func (c *AnyValueMap) String() string {
	return formatEntries(c.values)
}

func formatEntries(values map[string]any) string {
	var builder strings.Builder
	for i, key := range sortedKeys(values) {
		if i > 0 {
			builder.WriteString(";")
		}
		builder.WriteString(key)
		if value := values[key]; value != nil {
			builder.WriteString("=")
			builder.WriteString(convert.ToString(value))
		}
	}
	return builder.String()
}

func sortedKeys(values map[string]any) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// foldEmpty transforma false, zeros numéricos e "" em nil.
func foldEmpty(value any) any {
	switch v := value.(type) {
	case nil:
		return nil
	case bool:
		if !v {
			return nil
		}
	case string:
		if v == "" {
			return nil
		}
	default:
		if f, ok := convert.ToNullableDouble(v); ok && f == 0 && convert.ToTypeCode(v).IsNumeric() {
			return nil
		}
	}
	return value
}
