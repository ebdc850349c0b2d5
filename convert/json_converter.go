package convert

import (
	"encoding/json"
	"fmt"
)

// ToJson serializa um valor para texto JSON. Retorna "" para nil.
func ToJson(value any) (string, error) {
	value = normalize(value)
	if value == nil {
		return "", nil
	}

	b, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("convert: erro ao serializar JSON: %w", err)
	}
	return string(b), nil
}

// FromJson interpreta um texto JSON e converte o resultado para o tipo indicado
// via ToType.
//
// Exemplo:
//
//	v, _ := FromJson(DateTime, `"1975-04-08T00:00Z"`) // time.Time
func FromJson(typeCode TypeCode, text string) (any, error) {
	if text == "" {
		return nil, nil
	}

	var parsed any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, fmt.Errorf("convert: erro ao fazer parse do JSON: %w", err)
	}
	return ToType(typeCode, parsed), nil
}

// JsonToNullableMap interpreta um texto JSON e converte o resultado com
// ToNullableMap. Textos inválidos resultam em (nil, false).
func JsonToNullableMap(text string) (map[string]any, bool) {
	if text == "" {
		return nil, false
	}

	var parsed any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, false
	}
	return ToNullableMap(parsed)
}

// JsonToMap interpreta um texto JSON como map, retornando um map vazio quando não for possível.
func JsonToMap(text string) map[string]any {
	return JsonToMapWithDefault(text, map[string]any{})
}

// JsonToMapWithDefault interpreta um texto JSON como map ou retorna defaultValue.
func JsonToMapWithDefault(text string, defaultValue map[string]any) map[string]any {
	if result, ok := JsonToNullableMap(text); ok {
		return result
	}
	return defaultValue
}
