package convert

import (
	"reflect"
	"strconv"
	"strings"
	"time"
)

// ToNullableMap converte um valor para map[string]any.
//
// Slices viram maps indexados pela posição ("0", "1", ...); maps são copiados
// com as chaves convertidas para texto; structs expõem seus campos exportados
// (usando o nome da tag json quando houver). Escalares, incluindo strings,
// resultam em (nil, false).
func ToNullableMap(value any) (map[string]any, bool) {
	value = normalize(value)
	if value == nil {
		return nil, false
	}

	if m, ok := value.(map[string]any); ok {
		result := make(map[string]any, len(m))
		for k, v := range m {
			result[k] = v
		}
		return result, true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Map:
		result := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			result[ToString(iter.Key().Interface())] = iter.Value().Interface()
		}
		return result, true
	case reflect.Slice, reflect.Array:
		if _, isBytes := value.([]byte); isBytes {
			return nil, false
		}
		result := make(map[string]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			result[strconv.Itoa(i)] = rv.Index(i).Interface()
		}
		return result, true
	case reflect.Struct:
		if _, isTime := value.(time.Time); isTime {
			return nil, false
		}
		return structToMap(rv), true
	}

	return nil, false
}

// ToMap converte um valor para map[string]any, retornando um map vazio quando não for possível.
func ToMap(value any) map[string]any {
	return ToMapWithDefault(value, map[string]any{})
}

// ToMapWithDefault converte um valor para map[string]any ou retorna defaultValue.
func ToMapWithDefault(value any, defaultValue map[string]any) map[string]any {
	if result, ok := ToNullableMap(value); ok {
		return result
	}
	return defaultValue
}

func structToMap(rv reflect.Value) map[string]any {
	rt := rv.Type()
	result := make(map[string]any, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		name := field.Name
		if tag := field.Tag.Get("json"); tag != "" {
			tagName := strings.Split(tag, ",")[0]
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}
		result[name] = rv.Field(i).Interface()
	}
	return result
}
