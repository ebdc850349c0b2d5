package data

import (
	"reflect"
	"time"

	"github.com/raywall/fast-service-commons/convert"
)

// valuesEqual compara dois valores diretamente, sem gerar panic para tipos
// não comparáveis (slices, maps). Datas são comparadas pelo instante.
func valuesEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if ta, ok := a.(time.Time); ok {
		tb, ok := b.(time.Time)
		return ok && ta.Equal(tb)
	}

	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Type() == rb.Type() && ra.Type().Comparable() {
		if equal, ok := compare(a, b); ok {
			return equal
		}
	}
	return reflect.DeepEqual(a, b)
}

// compare aplica == e retorna ok=false quando a comparação gera panic, o que
// acontece com structs e arrays cujos campos any guardam slices ou maps.
func compare(a, b any) (equal, ok bool) {
	defer func() {
		if recover() != nil {
			equal, ok = false, false
		}
	}()
	return a == b, true
}

// looseEqual compara diretamente e, em caso de diferença, pela representação em texto.
func looseEqual(a, b any) bool {
	if valuesEqual(a, b) {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	sa, okA := convert.ToNullableString(a)
	sb, okB := convert.ToNullableString(b)
	return okA && okB && sa == sb
}

// typedEqual converte os dois lados para o tipo indicado antes de comparar.
func typedEqual(typeCode convert.TypeCode, a, b any) bool {
	ta, okA := convert.ToNullableType(typeCode, a)
	tb, okB := convert.ToNullableType(typeCode, b)
	if !okA || !okB {
		return !okA && !okB
	}
	return valuesEqual(ta, tb)
}

// innerOf desembrulha containers dinâmicos para comparação.
func innerOf(value any) any {
	if wrapper, ok := value.(convert.ValueWrapper); ok {
		rv := reflect.ValueOf(value)
		if rv.Kind() == reflect.Ptr && rv.IsNil() {
			return nil
		}
		return wrapper.InnerValue()
	}
	return value
}
