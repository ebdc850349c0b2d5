package convert

import (
	"math"
	"reflect"
	"time"
)

// ValueWrapper é implementado por containers dinâmicos que guardam um valor
// bruto (AnyValue, AnyValueArray, AnyValueMap, StringValueMap).
//
// Os conversores sempre trabalham sobre InnerValue().
type ValueWrapper interface {
	InnerValue() any
}

// normalize desembrulha ValueWrappers e desreferencia ponteiros até chegar
// ao valor concreto. Ponteiros nulos viram nil.
func normalize(value any) any {
	for value != nil {
		if wrapper, ok := value.(ValueWrapper); ok {
			rv := reflect.ValueOf(value)
			if rv.Kind() == reflect.Ptr && rv.IsNil() {
				return nil
			}
			value = wrapper.InnerValue()
			continue
		}

		rv := reflect.ValueOf(value)
		if rv.Kind() != reflect.Ptr {
			return value
		}
		if rv.IsNil() {
			return nil
		}
		value = rv.Elem().Interface()
	}
	return nil
}

// numberKind indica se o valor é de um tipo numérico nativo (inteiro ou ponto flutuante).
// time.Duration não é tratado aqui.
func numberKind(rv reflect.Value) (isInt, isUint, isFloat bool) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true, false, false
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return false, true, false
	case reflect.Float32, reflect.Float64:
		return false, false, true
	}
	return false, false, false
}

// floatOf extrai um float64 de qualquer tipo numérico, incluindo tipos nomeados.
func floatOf(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	}

	rv := reflect.ValueOf(value)
	isInt, isUint, isFloat := numberKind(rv)
	switch {
	case isInt:
		return float64(rv.Int()), true
	case isUint:
		return float64(rv.Uint()), true
	case isFloat:
		return rv.Float(), true
	}
	return 0, false
}

// int64Of extrai um inteiro de 64 bits truncando valores de ponto flutuante.
// NaN e infinitos não são inteiros válidos.
func int64Of(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	case int32:
		return int64(v), true
	case float64:
		return truncFloat(v)
	}

	rv := reflect.ValueOf(value)
	isInt, isUint, isFloat := numberKind(rv)
	switch {
	case isInt:
		return rv.Int(), true
	case isUint:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return math.MaxInt64, true
		}
		return int64(u), true
	case isFloat:
		return truncFloat(rv.Float())
	}
	return 0, false
}

func truncFloat(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f >= math.MaxInt64 {
		return math.MaxInt64, true
	}
	if f <= math.MinInt64 {
		return math.MinInt64, true
	}
	return int64(f), true
}

// isWholeNumber indica se o valor é inteiro ou um float finito sem parte fracionária.
func isWholeNumber(value any) bool {
	rv := reflect.ValueOf(value)
	isInt, isUint, isFloat := numberKind(rv)
	if isInt || isUint {
		return true
	}
	if isFloat {
		f := rv.Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0) && f == math.Trunc(f)
	}
	return false
}

func isNumber(value any) bool {
	isInt, isUint, isFloat := numberKind(reflect.ValueOf(value))
	return isInt || isUint || isFloat
}

func millisOf(t time.Time) int64 {
	return t.UnixMilli()
}
