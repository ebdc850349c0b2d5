package convert

import "strings"

// TypeCode enumera o universo abstrato de tipos do toolkit.
type TypeCode int

const (
	Unknown TypeCode = iota
	String
	Boolean
	Integer
	Long
	Float
	Double
	DateTime
	Duration
	Object
	Enum
	Array
	Map
)

var typeCodeNames = map[TypeCode]string{
	Unknown:  "unknown",
	String:   "string",
	Boolean:  "boolean",
	Integer:  "integer",
	Long:     "long",
	Float:    "float",
	Double:   "double",
	DateTime: "datetime",
	Duration: "duration",
	Object:   "object",
	Enum:     "enum",
	Array:    "array",
	Map:      "map",
}

// String retorna o nome fixo do código, ou "unknown" para ordinais fora da enumeração.
func (t TypeCode) String() string {
	if name, ok := typeCodeNames[t]; ok {
		return name
	}
	return "unknown"
}

// IsNumeric indica se o código pertence ao grupo Integer/Long/Float/Double.
func (t TypeCode) IsNumeric() bool {
	return t == Integer || t == Long || t == Float || t == Double
}

// ParseTypeCode resolve um nome de tipo (sem diferenciar maiúsculas) para o
// código correspondente. Aceita os nomes de String() e os apelidos "int",
// "bool", "date", "timespan", "list" e "dict".
func ParseTypeCode(name string) (TypeCode, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "int":
		return Integer, true
	case "bool":
		return Boolean, true
	case "date":
		return DateTime, true
	case "timespan":
		return Duration, true
	case "list":
		return Array, true
	case "dict", "dictionary":
		return Map, true
	}
	for code, codeName := range typeCodeNames {
		if strings.EqualFold(codeName, strings.TrimSpace(name)) {
			return code, true
		}
	}
	return Unknown, false
}
