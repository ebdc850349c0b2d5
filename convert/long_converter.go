package convert

import (
	"reflect"
	"strconv"
	"strings"
	"time"
)

// ToNullableLong converte um valor para int64.
//
// Números são truncados; strings são interpretadas como ponto flutuante e
// depois truncadas; time.Time vira milissegundos desde a época Unix e
// time.Duration vira milissegundos. Booleanos não são aceitos.
func ToNullableLong(value any) (int64, bool) {
	value = normalize(value)
	if value == nil {
		return 0, false
	}

	switch v := value.(type) {
	case bool:
		return 0, false
	case time.Time:
		return millisOf(v), true
	case time.Duration:
		return v.Milliseconds(), true
	case string:
		return parseLong(v)
	}

	if n, ok := int64Of(value); ok {
		return n, true
	}

	if rv := reflect.ValueOf(value); rv.Kind() == reflect.String {
		return parseLong(rv.String())
	}
	return 0, false
}

func parseLong(text string) (int64, bool) {
	text = strings.TrimSpace(text)
	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	return truncFloat(f)
}

// ToLong converte um valor para int64, retornando 0 quando não for possível.
func ToLong(value any) int64 {
	return ToLongWithDefault(value, 0)
}

// ToLongWithDefault converte um valor para int64 ou retorna defaultValue.
func ToLongWithDefault(value any, defaultValue int64) int64 {
	if result, ok := ToNullableLong(value); ok {
		return result
	}
	return defaultValue
}
