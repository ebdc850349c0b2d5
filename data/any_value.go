package data

import (
	"time"

	"github.com/raywall/fast-service-commons/convert"
)

// AnyValue é uma caixa para um único valor dinâmico (possivelmente nil).
//
// Todos os acessores GetAsX delegam aos conversores do pacote convert sobre
// o valor atual; nada é armazenado em cache.
type AnyValue struct {
	value any
}

// NewEmptyAnyValue cria um AnyValue sem valor.
func NewEmptyAnyValue() *AnyValue {
	return &AnyValue{}
}

// NewAnyValue cria um AnyValue a partir de um valor bruto. Se o valor for
// outro AnyValue, o valor interno dele é copiado.
func NewAnyValue(value any) *AnyValue {
	if other, ok := value.(*AnyValue); ok {
		if other == nil {
			return &AnyValue{}
		}
		return &AnyValue{value: other.value}
	}
	return &AnyValue{value: value}
}

// InnerValue implementa convert.ValueWrapper.
func (v *AnyValue) InnerValue() any {
	return v.value
}

// TypeCode retorna o código do tipo do valor atual.
func (v *AnyValue) TypeCode() convert.TypeCode {
	return convert.ToTypeCode(v.value)
}

// GetAsObject retorna o valor bruto.
func (v *AnyValue) GetAsObject() any {
	return v.value
}

// SetAsObject substitui o valor. Outro AnyValue tem seu valor interno copiado.
func (v *AnyValue) SetAsObject(value any) {
	if other, ok := value.(*AnyValue); ok {
		if other == nil {
			v.value = nil
			return
		}
		value = other.value
	}
	v.value = value
}

func (v *AnyValue) GetAsNullableString() (string, bool) {
	return convert.ToNullableString(v.value)
}

func (v *AnyValue) GetAsString() string {
	return convert.ToString(v.value)
}

func (v *AnyValue) GetAsStringWithDefault(defaultValue string) string {
	return convert.ToStringWithDefault(v.value, defaultValue)
}

func (v *AnyValue) GetAsNullableBoolean() (bool, bool) {
	return convert.ToNullableBoolean(v.value)
}

func (v *AnyValue) GetAsBoolean() bool {
	return convert.ToBoolean(v.value)
}

func (v *AnyValue) GetAsBooleanWithDefault(defaultValue bool) bool {
	return convert.ToBooleanWithDefault(v.value, defaultValue)
}

func (v *AnyValue) GetAsNullableInteger() (int, bool) {
	return convert.ToNullableInteger(v.value)
}

func (v *AnyValue) GetAsInteger() int {
	return convert.ToInteger(v.value)
}

func (v *AnyValue) GetAsIntegerWithDefault(defaultValue int) int {
	return convert.ToIntegerWithDefault(v.value, defaultValue)
}

func (v *AnyValue) GetAsNullableLong() (int64, bool) {
	return convert.ToNullableLong(v.value)
}

func (v *AnyValue) GetAsLong() int64 {
	return convert.ToLong(v.value)
}

func (v *AnyValue) GetAsLongWithDefault(defaultValue int64) int64 {
	return convert.ToLongWithDefault(v.value, defaultValue)
}

func (v *AnyValue) GetAsNullableFloat() (float32, bool) {
	return convert.ToNullableFloat(v.value)
}

func (v *AnyValue) GetAsFloat() float32 {
	return convert.ToFloat(v.value)
}

func (v *AnyValue) GetAsFloatWithDefault(defaultValue float32) float32 {
	return convert.ToFloatWithDefault(v.value, defaultValue)
}

func (v *AnyValue) GetAsNullableDouble() (float64, bool) {
	return convert.ToNullableDouble(v.value)
}

func (v *AnyValue) GetAsDouble() float64 {
	return convert.ToDouble(v.value)
}

func (v *AnyValue) GetAsDoubleWithDefault(defaultValue float64) float64 {
	return convert.ToDoubleWithDefault(v.value, defaultValue)
}

func (v *AnyValue) GetAsNullableDateTime() (time.Time, bool) {
	return convert.ToNullableDateTime(v.value)
}

func (v *AnyValue) GetAsDateTime() time.Time {
	return convert.ToDateTime(v.value)
}

func (v *AnyValue) GetAsDateTimeWithDefault(defaultValue time.Time) time.Time {
	return convert.ToDateTimeWithDefault(v.value, defaultValue)
}

// GetAsNullableType converte o valor para o tipo indicado pelo código.
func (v *AnyValue) GetAsNullableType(typeCode convert.TypeCode) (any, bool) {
	return convert.ToNullableType(typeCode, v.value)
}

// GetAsType converte o valor para o tipo indicado, usando o padrão do tipo em caso de falha.
func (v *AnyValue) GetAsType(typeCode convert.TypeCode) any {
	return convert.ToType(typeCode, v.value)
}

func (v *AnyValue) GetAsTypeWithDefault(typeCode convert.TypeCode, defaultValue any) any {
	return convert.ToTypeWithDefault(typeCode, v.value, defaultValue)
}

// GetAsArray reinterpreta o valor como AnyValueArray (escalares viram um único elemento).
func (v *AnyValue) GetAsArray() *AnyValueArray {
	return NewAnyValueArrayFromValue(v.value)
}

// GetAsMap reinterpreta o valor como AnyValueMap (escalares resultam em map vazio).
func (v *AnyValue) GetAsMap() *AnyValueMap {
	return NewAnyValueMapFromValue(v.value)
}

// Equals compara diretamente com outro valor e, em caso de diferença, pela
// representação em texto de ambos os lados.
func (v *AnyValue) Equals(obj any) bool {
	return looseEqual(v.value, innerOf(obj))
}

// EqualsAsType converte os dois lados para o tipo indicado antes de comparar.
func (v *AnyValue) EqualsAsType(typeCode convert.TypeCode, obj any) bool {
	obj = innerOf(obj)
	if obj == nil || v.value == nil {
		return obj == nil && v.value == nil
	}
	return typedEqual(typeCode, v.value, obj)
}

// Clone cria uma cópia rasa.
func (v *AnyValue) Clone() *AnyValue {
	return &AnyValue{value: v.value}
}

// String retorna a representação em texto do valor ("" para nil).
func (v *AnyValue) String() string {
	return convert.ToString(v.value)
}
