package convert

// ToNullableFloat converte um valor para float32 seguindo as regras de ToNullableDouble.
func ToNullableFloat(value any) (float32, bool) {
	if f, ok := ToNullableDouble(value); ok {
		return float32(f), true
	}
	return 0, false
}

// ToFloat converte um valor para float32, retornando 0 quando não for possível.
func ToFloat(value any) float32 {
	return ToFloatWithDefault(value, 0)
}

// ToFloatWithDefault converte um valor para float32 ou retorna defaultValue.
func ToFloatWithDefault(value any, defaultValue float32) float32 {
	if result, ok := ToNullableFloat(value); ok {
		return result
	}
	return defaultValue
}
