package convert

import (
	"math"
	"reflect"
	"strings"
	"time"
)

var (
	trueStrings  = map[string]bool{"1": true, "true": true, "t": true, "yes": true, "y": true}
	falseStrings = map[string]bool{"0": true, "false": true, "f": true, "no": true, "n": true}
)

// ToNullableBoolean converte um valor para bool.
//
// Números são verdadeiros quando diferentes de zero. Strings são comparadas
// em minúsculas com {1,true,t,yes,y} e {0,false,f,no,n}; qualquer outro
// texto resulta em (false, false), indistinguível de "sem valor".
func ToNullableBoolean(value any) (bool, bool) {
	value = normalize(value)
	if value == nil {
		return false, false
	}

	switch v := value.(type) {
	case bool:
		return v, true
	case time.Duration:
		return v != 0, true
	case string:
		return parseBoolean(v)
	}

	if isNumber(value) {
		f, _ := floatOf(value)
		return f != 0 && !math.IsNaN(f), true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool(), true
	case reflect.String:
		return parseBoolean(rv.String())
	}

	if text, ok := ToNullableString(value); ok {
		return parseBoolean(text)
	}
	return false, false
}

func parseBoolean(text string) (bool, bool) {
	text = strings.ToLower(strings.TrimSpace(text))
	if trueStrings[text] {
		return true, true
	}
	if falseStrings[text] {
		return false, true
	}
	return false, false
}

// ToBoolean converte um valor para bool, retornando false quando não for possível.
func ToBoolean(value any) bool {
	return ToBooleanWithDefault(value, false)
}

// ToBooleanWithDefault converte um valor para bool ou retorna defaultValue.
func ToBooleanWithDefault(value any, defaultValue bool) bool {
	if result, ok := ToNullableBoolean(value); ok {
		return result
	}
	return defaultValue
}
