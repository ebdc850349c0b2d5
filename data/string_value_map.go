package data

import (
	"strings"

	"github.com/raywall/fast-service-commons/convert"
)

// StringValueMap tem a mesma superfície do AnyValueMap, mas todo valor é
// convertido com convert.ToNullableString no momento da escrita. Cada entrada
// guarda uma string ou nil; os acessores tipados interpretam o texto guardado.
//
// É a base de ConfigParams e FilterParams.
type StringValueMap struct {
	AnyValueMap
}

// NewEmptyStringValueMap cria um map vazio.
func NewEmptyStringValueMap() *StringValueMap {
	return &StringValueMap{AnyValueMap: AnyValueMap{values: map[string]any{}}}
}

// NewStringValueMap cria um map convertendo cada valor para string.
func NewStringValueMap(values map[string]any) *StringValueMap {
	c := NewEmptyStringValueMap()
	c.Append(values)
	return c
}

// NewStringValueMapFromValue converte qualquer valor em map de strings.
func NewStringValueMapFromValue(value any) *StringValueMap {
	return NewStringValueMap(convert.ToMap(value))
}

// NewStringValueMapFromTuples cria um map a partir de pares chave/valor.
func NewStringValueMapFromTuples(tuples ...any) *StringValueMap {
	return NewStringValueMapFromTuplesArray(tuples)
}

// NewStringValueMapFromTuplesArray é a variante de NewStringValueMapFromTuples que recebe um slice.
func NewStringValueMapFromTuplesArray(tuples []any) *StringValueMap {
	c := NewEmptyStringValueMap()
	for i := 0; i+1 < len(tuples); i += 2 {
		c.Put(convert.ToString(tuples[i]), tuples[i+1])
	}
	return c
}

// NewStringValueMapFromMaps combina vários maps; chaves repetidas ficam com o
// valor do último map.
func NewStringValueMapFromMaps(maps ...map[string]any) *StringValueMap {
	c := NewEmptyStringValueMap()
	for _, m := range maps {
		c.Append(m)
	}
	return c
}

// NewStringValueMapFromString interpreta a sintaxe "chave1=valor1;chave2=valor2".
//
// Espaços ao redor de chaves e valores são removidos, segmentos vazios são
// ignorados e um segmento sem "=" define a chave com valor nil.
//
// Exemplo:
//
//	m := NewStringValueMapFromString("key1 = 123; key2=abc;;key3")
//	m.GetAsInteger("key1") // 123
//	m.Contains("key3")     // true, valor nil
func NewStringValueMapFromString(line string) *StringValueMap {
	c := NewEmptyStringValueMap()
	for _, token := range strings.Split(line, ";") {
		if strings.TrimSpace(token) == "" {
			continue
		}

		index := strings.Index(token, "=")
		if index < 0 {
			c.Put(strings.TrimSpace(token), nil)
			continue
		}

		key := strings.TrimSpace(token[:index])
		value := strings.TrimSpace(token[index+1:])
		c.Put(key, value)
	}
	return c
}

// Put converte o valor para string (ou nil) e o armazena.
func (c *StringValueMap) Put(key string, value any) {
	if text, ok := convert.ToNullableString(value); ok {
		c.values[key] = text
		return
	}
	c.values[key] = nil
}

// Append copia as entradas de um map nativo convertendo os valores para string.
func (c *StringValueMap) Append(values map[string]any) {
	for k, v := range values {
		c.Put(k, v)
	}
}

// AppendValue converte um valor com convert.ToMap e copia suas entradas.
func (c *StringValueMap) AppendValue(value any) {
	c.Append(convert.ToMap(value))
}

// SetAsObject substitui todas as entradas pelo valor convertido em map de strings.
func (c *StringValueMap) SetAsObject(value any) {
	c.Clear()
	c.AppendValue(value)
}

// GetAsNullableMap interpreta o valor como map, recorrendo a JSON quando
// o texto guardado for um objeto serializado.
func (c *StringValueMap) GetAsNullableMap(key string) (*AnyValueMap, bool) {
	if text, ok := c.values[key].(string); ok {
		if m, ok := convert.JsonToNullableMap(text); ok {
			return NewAnyValueMap(m), true
		}
	}
	return c.AnyValueMap.GetAsNullableMap(key)
}

// GetAsMap retorna o valor como AnyValueMap (vazio quando não conversível).
func (c *StringValueMap) GetAsMap(key string) *AnyValueMap {
	if result, ok := c.GetAsNullableMap(key); ok {
		return result
	}
	return NewEmptyAnyValueMap()
}

// GetAsMapWithDefault retorna o valor como AnyValueMap ou defaultValue.
func (c *StringValueMap) GetAsMapWithDefault(key string, defaultValue *AnyValueMap) *AnyValueMap {
	if result, ok := c.GetAsNullableMap(key); ok {
		return result
	}
	return defaultValue
}

// Clone cria uma cópia rasa.
func (c *StringValueMap) Clone() *StringValueMap {
	return NewStringValueMap(c.values)
}
