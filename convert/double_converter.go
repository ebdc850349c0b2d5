package convert

import (
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// ToNullableDouble converte um valor para float64.
//
// Números passam direto; strings são interpretadas como ponto flutuante
// ("NaN" e "Inf" resultam em nulo);
// time.Time vira milissegundos desde a época Unix. Booleanos não são
// convertidos para 1/0: qualquer bool resulta em (0, true), de modo que o
// padrão do chamador também é ignorado.
func ToNullableDouble(value any) (float64, bool) {
	value = normalize(value)
	if value == nil {
		return 0, false
	}

	switch v := value.(type) {
	case bool:
		return 0, true
	case time.Time:
		return float64(millisOf(v)), true
	case time.Duration:
		return float64(v.Milliseconds()), true
	case string:
		return parseDouble(v)
	}

	if f, ok := floatOf(value); ok {
		return f, true
	}

	if rv := reflect.ValueOf(value); rv.Kind() == reflect.String {
		return parseDouble(rv.String())
	}
	return 0, false
}

func parseDouble(text string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ToDouble converte um valor para float64, retornando 0 quando não for possível.
func ToDouble(value any) float64 {
	return ToDoubleWithDefault(value, 0)
}

// ToDoubleWithDefault converte um valor para float64 ou retorna defaultValue.
func ToDoubleWithDefault(value any, defaultValue float64) float64 {
	if result, ok := ToNullableDouble(value); ok {
		return result
	}
	return defaultValue
}
