package dynconv

import (
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/raywall/fast-service-commons/convert"
	"github.com/raywall/fast-service-commons/data"
)

// BuildFilter monta uma expressão de filtro com uma condição de igualdade por
// chave, unidas por AND. Chaves com valor nil exigem que o atributo não exista.
// hints define o tipo de cada chave; as demais são comparadas como texto.
// Retorna nil quando o filtro está vazio.
//
// Exemplo:
//
//	filter := data.NewFilterParamsFromString("status=ACTIVE;age=30")
//	expr, err := dynconv.BuildFilter(filter, map[string]convert.TypeCode{"age": convert.Long})
//	input.FilterExpression = expr.Filter()
func BuildFilter(filter *data.FilterParams, hints map[string]convert.TypeCode) (*expression.Expression, error) {
	if filter == nil || filter.Len() == 0 {
		return nil, nil
	}

	var conditions []expression.ConditionBuilder
	for _, key := range filter.Keys() {
		raw := filter.Value()[key]
		if raw == nil {
			conditions = append(conditions, expression.AttributeNotExists(expression.Name(key)))
			continue
		}

		var value any = raw
		if typeCode, ok := hints[key]; ok {
			value = itemValue(filter.GetAsType(typeCode, key))
		}
		conditions = append(conditions, expression.Name(key).Equal(expression.Value(value)))
	}

	cond := conditions[0]
	if len(conditions) > 1 {
		cond = expression.And(conditions[0], conditions[1], conditions[2:]...)
	}

	expr, err := expression.NewBuilder().WithFilter(cond).Build()
	if err != nil {
		return nil, err
	}
	return &expr, nil
}
