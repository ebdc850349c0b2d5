package convert

import (
	"reflect"
	"time"
)

// ToNullableRecursiveMap converte um valor para map[string]any aplicando a
// mesma conversão em profundidade: maps e structs aninhados viram
// map[string]any, slices aninhados viram []any com os elementos convertidos.
// Valores primitivos permanecem intactos.
func ToNullableRecursiveMap(value any) (map[string]any, bool) {
	m, ok := ToNullableMap(value)
	if !ok {
		return nil, false
	}
	for k, v := range m {
		m[k] = recursiveValue(v)
	}
	return m, true
}

// ToRecursiveMap converte um valor recursivamente, retornando um map vazio quando não for possível.
func ToRecursiveMap(value any) map[string]any {
	return ToRecursiveMapWithDefault(value, map[string]any{})
}

// ToRecursiveMapWithDefault converte um valor recursivamente ou retorna defaultValue.
func ToRecursiveMapWithDefault(value any, defaultValue map[string]any) map[string]any {
	if result, ok := ToNullableRecursiveMap(value); ok {
		return result
	}
	return defaultValue
}

func recursiveValue(value any) any {
	value = normalize(value)
	if value == nil {
		return nil
	}

	switch value.(type) {
	case string, bool, time.Time, time.Duration, []byte:
		return value
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		result := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			result[i] = recursiveValue(rv.Index(i).Interface())
		}
		return result
	case reflect.Map, reflect.Struct:
		m, ok := ToNullableMap(value)
		if !ok {
			return value
		}
		for k, v := range m {
			m[k] = recursiveValue(v)
		}
		return m
	}
	return value
}
