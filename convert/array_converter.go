package convert

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// ToNullableArray converte um valor para []any.
//
// Regras:
//   - nil -> (nil, false)
//   - []any -> o próprio slice, sem cópia
//   - outros slices e arrays -> cópia elemento a elemento
//   - maps -> valores, na ordem das chaves ordenadas
//   - qualquer outro valor -> slice de um único elemento
func ToNullableArray(value any) ([]any, bool) {
	value = normalize(value)
	if value == nil {
		return nil, false
	}

	switch v := value.(type) {
	case []any:
		return v, true
	case string, []byte:
		return []any{v}, true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		result := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			result[i] = rv.Index(i).Interface()
		}
		return result, true
	case reflect.Map:
		keys := sortedMapKeys(rv)
		result := make([]any, 0, len(keys))
		for _, key := range keys {
			result = append(result, rv.MapIndex(key).Interface())
		}
		return result, true
	}

	return []any{value}, true
}

// ToArray converte um valor para []any, retornando um slice vazio quando não for possível.
func ToArray(value any) []any {
	return ToArrayWithDefault(value, []any{})
}

// ToArrayWithDefault converte um valor para []any ou retorna defaultValue.
func ToArrayWithDefault(value any, defaultValue []any) []any {
	if result, ok := ToNullableArray(value); ok {
		return result
	}
	return defaultValue
}

// ListToArray converte um valor para []any dividindo strings delimitadas por vírgula.
//
// Exemplo:
//
//	ListToArray("123,456") // []any{"123", "456"}
func ListToArray(value any) []any {
	value = normalize(value)
	if value == nil {
		return []any{}
	}

	if text, ok := value.(string); ok {
		parts := strings.Split(text, ",")
		result := make([]any, len(parts))
		for i, part := range parts {
			result[i] = part
		}
		return result
	}
	return ToArray(value)
}

// sortedMapKeys retorna as chaves de um map ordenadas pela sua representação em texto.
func sortedMapKeys(rv reflect.Value) []reflect.Value {
	keys := rv.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
	})
	return keys
}
