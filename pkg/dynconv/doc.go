// Package dynconv converte containers dinâmicos para o formato de item do
// DynamoDB e de volta.
//
// ToItem aplica o conversor recursivo ao AnyValueMap e grava datas como texto
// ISO-8601 e durações como milissegundos. FromItem devolve números inteiros
// como int64 e os demais como float64. BuildFilter transforma FilterParams em
// uma expressão de filtro e EncodeToken/DecodeToken serializam a
// LastEvaluatedKey em tokens de paginação.
//
//	item, err := dynconv.ToItem(data.NewAnyValueMapFromTuples("id", "u1", "age", 30))
//	m, err := dynconv.FromItem(item)
//	m.GetAsLong("age") // 30
package dynconv
