package convert

// ToNullableInteger converte um valor para int seguindo as mesmas regras de ToNullableLong.
func ToNullableInteger(value any) (int, bool) {
	if n, ok := ToNullableLong(value); ok {
		return int(n), true
	}
	return 0, false
}

// ToInteger converte um valor para int, retornando 0 quando não for possível.
func ToInteger(value any) int {
	return ToIntegerWithDefault(value, 0)
}

// ToIntegerWithDefault converte um valor para int ou retorna defaultValue.
func ToIntegerWithDefault(value any, defaultValue int) int {
	if result, ok := ToNullableInteger(value); ok {
		return result
	}
	return defaultValue
}
