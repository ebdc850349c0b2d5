package convert

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// DateTimeLayout é o formato ISO-8601 usado ao converter datas para texto.
const DateTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// ToNullableString converte um valor para string.
//
// Regras:
//   - nil -> (""; false)
//   - números -> separador decimal "." e menor representação possível
//   - time.Time -> ISO-8601 em UTC com milissegundos
//   - bool -> "true" / "false"
//   - slices e arrays -> elementos convertidos e unidos por ","
//   - fmt.Stringer -> String()
//   - demais valores -> fmt.Sprint
func ToNullableString(value any) (string, bool) {
	value = normalize(value)
	if value == nil {
		return "", false
	}

	switch v := value.(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case time.Time:
		return v.UTC().Format(DateTimeLayout), true
	case time.Duration:
		return v.String(), true
	case []byte:
		return string(v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return formatFloat(v, 64), true
	case float32:
		return formatFloat(float64(v), 32), true
	case fmt.Stringer:
		return v.String(), true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32:
		return formatFloat(rv.Float(), 32), true
	case reflect.Float64:
		return formatFloat(rv.Float(), 64), true
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			parts[i], _ = ToNullableString(rv.Index(i).Interface())
		}
		return strings.Join(parts, ","), true
	}

	return fmt.Sprint(value), true
}

// ToString converte um valor para string, retornando "" quando não for possível.
func ToString(value any) string {
	return ToStringWithDefault(value, "")
}

// ToStringWithDefault converte um valor para string ou retorna defaultValue.
func ToStringWithDefault(value any, defaultValue string) string {
	if result, ok := ToNullableString(value); ok {
		return result
	}
	return defaultValue
}

// formatFloat segue a notação decimal curta, recorrendo a expoente apenas
// para magnitudes muito grandes ou muito pequenas.
func formatFloat(f float64, bitSize int) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	if math.IsInf(f, 1) {
		return "Infinity"
	}
	if math.IsInf(f, -1) {
		return "-Infinity"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || (abs != 0 && abs < 1e-6) {
		return strconv.FormatFloat(f, 'g', -1, bitSize)
	}
	return strconv.FormatFloat(f, 'f', -1, bitSize)
}
