package convert

import "strings"

// MatchType verifica se um tipo real satisfaz o tipo esperado.
//
// expected pode ser um TypeCode ou um nome de tipo (string); nil ou "" sempre
// satisfazem. Integer, Long, Float e Double são compatíveis entre si.
// DateTime aceita String somente quando actualValue pode ser interpretado
// como data. Qualquer outro tipo de expected retorna false.
func MatchType(expected any, actualType TypeCode, actualValue any) bool {
	switch e := expected.(type) {
	case nil:
		return true
	case TypeCode:
		return matchTypeCode(e, actualType, actualValue)
	case string:
		return MatchTypeByName(e, actualType, actualValue)
	}
	return false
}

func matchTypeCode(expected TypeCode, actualType TypeCode, actualValue any) bool {
	if expected == actualType {
		return true
	}
	if expected.IsNumeric() && actualType.IsNumeric() {
		return true
	}
	if expected == DateTime && actualType == String {
		_, ok := ToNullableDateTime(actualValue)
		return ok
	}
	return false
}

// MatchTypeByName verifica se um tipo real satisfaz um nome de tipo
// (comparação sem diferenciar maiúsculas).
//
// Nomes reconhecidos: object, int/integer, long, float, double, string,
// bool/boolean, date/datetime, timespan/duration, enum, map/dict/dictionary,
// array/list e qualquer nome terminado em "[]".
func MatchTypeByName(expectedName string, actualType TypeCode, actualValue any) bool {
	if expectedName == "" {
		return true
	}

	name := strings.ToLower(strings.TrimSpace(expectedName))
	switch name {
	case "object":
		return true
	case "int", "integer":
		return actualType == Integer || actualType == Long
	case "long":
		return actualType == Long || actualType == Integer
	case "float":
		return actualType.IsNumeric()
	case "double":
		return actualType == Double || actualType == Float
	case "string":
		return actualType == String
	case "bool", "boolean":
		return actualType == Boolean
	case "date", "datetime":
		if actualType == DateTime {
			return true
		}
		if actualType == String {
			_, ok := ToNullableDateTime(actualValue)
			return ok
		}
		return false
	case "timespan", "duration":
		return actualType.IsNumeric() || actualType == Duration
	case "enum":
		return actualType == Integer || actualType == String
	case "map", "dict", "dictionary":
		return actualType == Map
	case "array", "list":
		return actualType == Array
	}

	if strings.HasSuffix(name, "[]") {
		return actualType == Array
	}
	return false
}

// MatchValueType classifica actualValue com ToTypeCode e verifica o tipo esperado.
//
// Retorna *MatchError envolvendo ErrNilActualValue quando actualValue é nil
// e expected não é.
func MatchValueType(expected any, actualValue any) (bool, error) {
	if expected == nil {
		return true, nil
	}
	if name, ok := expected.(string); ok && name == "" {
		return true, nil
	}
	if normalize(actualValue) == nil {
		return false, &MatchError{Expected: expected, Err: ErrNilActualValue}
	}
	return MatchType(expected, ToTypeCode(actualValue), actualValue), nil
}

// MatchValueTypeByName é a variante de MatchValueType para nomes de tipo.
func MatchValueTypeByName(expectedName string, actualValue any) (bool, error) {
	if expectedName == "" {
		return true, nil
	}
	if normalize(actualValue) == nil {
		return false, &MatchError{Expected: expectedName, Err: ErrNilActualValue}
	}
	return MatchTypeByName(expectedName, ToTypeCode(actualValue), actualValue), nil
}
