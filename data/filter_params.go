package data

// FilterParams é um StringValueMap usado como parâmetros de filtro em consultas.
//
// Exemplo:
//
//	filter := data.NewFilterParamsFromString("type=Type1; from=2024-01-01; active=yes")
//	from := filter.GetAsNullableDateTime("from")
type FilterParams struct {
	StringValueMap
}

// NewEmptyFilterParams cria um filtro vazio.
func NewEmptyFilterParams() *FilterParams {
	return &FilterParams{StringValueMap: *NewEmptyStringValueMap()}
}

// NewFilterParams cria um filtro a partir de um map nativo.
func NewFilterParams(values map[string]any) *FilterParams {
	return &FilterParams{StringValueMap: *NewStringValueMap(values)}
}

// NewFilterParamsFromValue converte qualquer valor em filtro.
func NewFilterParamsFromValue(value any) *FilterParams {
	return &FilterParams{StringValueMap: *NewStringValueMapFromValue(value)}
}

// NewFilterParamsFromTuples cria um filtro a partir de pares chave/valor.
func NewFilterParamsFromTuples(tuples ...any) *FilterParams {
	return &FilterParams{StringValueMap: *NewStringValueMapFromTuplesArray(tuples)}
}

// NewFilterParamsFromString interpreta a sintaxe "chave1=valor1;chave2=valor2".
func NewFilterParamsFromString(line string) *FilterParams {
	return &FilterParams{StringValueMap: *NewStringValueMapFromString(line)}
}

// Clone cria uma cópia rasa.
func (f *FilterParams) Clone() *FilterParams {
	return &FilterParams{StringValueMap: *f.StringValueMap.Clone()}
}
