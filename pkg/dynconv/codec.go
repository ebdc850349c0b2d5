package dynconv

import (
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/raywall/fast-service-commons/convert"
	"github.com/raywall/fast-service-commons/data"
)

// ToItem converte o map em atributos do DynamoDB. Um map nil resulta em item vazio.
func ToItem(m *data.AnyValueMap) (map[string]types.AttributeValue, error) {
	values := map[string]any{}
	if m != nil {
		for key, value := range convert.ToRecursiveMap(m) {
			values[key] = itemValue(value)
		}
	}

	item, err := attributevalue.MarshalMap(values)
	if err != nil {
		return nil, fmt.Errorf("dynconv: marshal item: %w", err)
	}
	return item, nil
}

// FromItem converte atributos do DynamoDB em AnyValueMap.
func FromItem(item map[string]types.AttributeValue) (*data.AnyValueMap, error) {
	values := map[string]any{}
	err := attributevalue.UnmarshalMapWithOptions(item, &values, func(o *attributevalue.DecoderOptions) {
		o.UseNumber = true
	})
	if err != nil {
		return nil, fmt.Errorf("dynconv: unmarshal item: %w", err)
	}

	for key, value := range values {
		values[key] = nativeValue(value)
	}
	return data.NewAnyValueMap(values), nil
}

func itemValue(value any) any {
	switch v := value.(type) {
	case time.Time:
		return convert.ToString(v)
	case time.Duration:
		return convert.ToLong(v)
	case map[string]any:
		for key, item := range v {
			v[key] = itemValue(item)
		}
		return v
	case []any:
		for i, item := range v {
			v[i] = itemValue(item)
		}
		return v
	}
	return value
}

func nativeValue(value any) any {
	switch v := value.(type) {
	case attributevalue.Number:
		return numberValue(v)
	case []attributevalue.Number:
		result := make([]any, len(v))
		for i, n := range v {
			result[i] = numberValue(n)
		}
		return result
	case map[string]any:
		for key, item := range v {
			v[key] = nativeValue(item)
		}
		return v
	case []any:
		for i, item := range v {
			v[i] = nativeValue(item)
		}
		return v
	}
	return value
}

func numberValue(n attributevalue.Number) any {
	if i, err := n.Int64(); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n.String()
}
