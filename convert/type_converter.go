package convert

import (
	"reflect"
	"time"
)

// ToTypeCode classifica um valor no universo de TypeCode.
//
// A ordem de verificação importa: nil -> Unknown; slice/array -> Array;
// bool -> Boolean; time.Time -> DateTime; time.Duration -> Duration;
// número inteiro (ou float sem parte fracionária) -> Long; outro número ->
// Double; função -> Object; map/struct -> Map; string -> String; demais -> Object.
func ToTypeCode(value any) TypeCode {
	value = normalize(value)
	if value == nil {
		return Unknown
	}

	switch value.(type) {
	case []byte:
		return Array
	case bool:
		return Boolean
	case time.Time:
		return DateTime
	case time.Duration:
		return Duration
	case string:
		return String
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return Array
	case reflect.Bool:
		return Boolean
	}

	if isNumber(value) {
		if isWholeNumber(value) {
			return Long
		}
		return Double
	}

	switch rv.Kind() {
	case reflect.Func:
		return Object
	case reflect.Map, reflect.Struct:
		return Map
	case reflect.String:
		return String
	}
	return Object
}

// ToNullableType converte um valor para o tipo indicado pelo código.
//
// Códigos sem conversor próprio (Unknown, Object, Enum, Duration) devolvem o
// valor sem alteração.
func ToNullableType(typeCode TypeCode, value any) (any, bool) {
	value = normalize(value)
	if value == nil {
		return nil, false
	}

	switch typeCode {
	case String:
		return ToNullableString(value)
	case Boolean:
		return ToNullableBoolean(value)
	case Integer:
		return ToNullableInteger(value)
	case Long:
		return ToNullableLong(value)
	case Float:
		return ToNullableFloat(value)
	case Double:
		return ToNullableDouble(value)
	case DateTime:
		return ToNullableDateTime(value)
	case Array:
		return ToNullableArray(value)
	case Map:
		return ToNullableMap(value)
	}
	return value, true
}

// ToType converte um valor para o tipo indicado, sintetizando um padrão quando
// a conversão falha: 0 para numéricos, false, "", o instante atual,
// map vazio ou slice vazio. Para Unknown, Object, Enum e Duration o valor
// (possivelmente nil) é devolvido como está.
func ToType(typeCode TypeCode, value any) any {
	if result, ok := ToNullableType(typeCode, value); ok {
		return result
	}

	switch typeCode {
	case String:
		return ""
	case Boolean:
		return false
	case Integer:
		return 0
	case Long:
		return int64(0)
	case Float:
		return float32(0)
	case Double:
		return float64(0)
	case DateTime:
		return time.Now()
	case Array:
		return []any{}
	case Map:
		return map[string]any{}
	}
	return normalize(value)
}

// ToTypeWithDefault converte um valor para o tipo indicado ou retorna defaultValue.
func ToTypeWithDefault(typeCode TypeCode, value any, defaultValue any) any {
	if result, ok := ToNullableType(typeCode, value); ok {
		return result
	}
	return defaultValue
}
