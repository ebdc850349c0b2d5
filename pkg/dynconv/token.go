package dynconv

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ErrInvalidToken indica um token de paginação malformado.
var ErrInvalidToken = errors.New("dynconv: invalid pagination token")

// EncodeToken serializa uma LastEvaluatedKey em um token base64. Uma chave
// vazia resulta em token vazio.
func EncodeToken(lastKey map[string]types.AttributeValue) (string, error) {
	if len(lastKey) == 0 {
		return "", nil
	}

	key := make(map[string]any, len(lastKey))
	for name, value := range lastKey {
		a, err := toAttr(value)
		if err != nil {
			return "", fmt.Errorf("dynconv: encode token: atributo %q: %w", name, err)
		}
		key[name] = a
	}

	b, err := json.Marshal(key)
	if err != nil {
		return "", fmt.Errorf("dynconv: encode token: %w", err)
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// DecodeToken reconstrói a ExclusiveStartKey a partir de um token gerado por
// EncodeToken. Token vazio resulta em nil.
func DecodeToken(token string) (map[string]types.AttributeValue, error) {
	if token == "" {
		return nil, nil
	}

	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	var key map[string]json.RawMessage
	if err := json.Unmarshal(raw, &key); err != nil || key == nil {
		return nil, ErrInvalidToken
	}

	result := make(map[string]types.AttributeValue, len(key))
	for name, msg := range key {
		value, err := decodeAttr(msg)
		if err != nil {
			return nil, fmt.Errorf("%w: atributo %q: %v", ErrInvalidToken, name, err)
		}
		result[name] = value
	}
	return result, nil
}

// toAttr converte o atributo na forma JSON tipada usada pelo DynamoDB
// ({"N": "42"}, {"B": "AQID"}). Números seguem como texto e não perdem precisão.
func toAttr(value types.AttributeValue) (map[string]any, error) {
	switch v := value.(type) {
	case *types.AttributeValueMemberS:
		return map[string]any{"S": v.Value}, nil
	case *types.AttributeValueMemberN:
		return map[string]any{"N": v.Value}, nil
	case *types.AttributeValueMemberB:
		return map[string]any{"B": v.Value}, nil
	case *types.AttributeValueMemberBOOL:
		return map[string]any{"BOOL": v.Value}, nil
	case *types.AttributeValueMemberNULL:
		return map[string]any{"NULL": true}, nil
	case *types.AttributeValueMemberSS:
		return map[string]any{"SS": v.Value}, nil
	case *types.AttributeValueMemberNS:
		return map[string]any{"NS": v.Value}, nil
	case *types.AttributeValueMemberBS:
		return map[string]any{"BS": v.Value}, nil
	case *types.AttributeValueMemberL:
		list := make([]any, len(v.Value))
		for i, item := range v.Value {
			a, err := toAttr(item)
			if err != nil {
				return nil, err
			}
			list[i] = a
		}
		return map[string]any{"L": list}, nil
	case *types.AttributeValueMemberM:
		m := make(map[string]any, len(v.Value))
		for k, item := range v.Value {
			a, err := toAttr(item)
			if err != nil {
				return nil, err
			}
			m[k] = a
		}
		return map[string]any{"M": m}, nil
	}
	return nil, fmt.Errorf("tipo de atributo não suportado %T", value)
}

// decodeAttr lê um atributo na forma produzida por toAttr.
func decodeAttr(msg json.RawMessage) (types.AttributeValue, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(msg, &fields); err != nil {
		return nil, err
	}
	if len(fields) != 1 {
		return nil, fmt.Errorf("esperado exatamente um tipo, recebido %d", len(fields))
	}

	for tag, body := range fields {
		switch tag {
		case "S":
			var s string
			err := json.Unmarshal(body, &s)
			return &types.AttributeValueMemberS{Value: s}, err
		case "N":
			var n string
			err := json.Unmarshal(body, &n)
			return &types.AttributeValueMemberN{Value: n}, err
		case "B":
			var b []byte
			err := json.Unmarshal(body, &b)
			return &types.AttributeValueMemberB{Value: b}, err
		case "BOOL":
			var b bool
			err := json.Unmarshal(body, &b)
			return &types.AttributeValueMemberBOOL{Value: b}, err
		case "NULL":
			return &types.AttributeValueMemberNULL{Value: true}, nil
		case "SS":
			var ss []string
			err := json.Unmarshal(body, &ss)
			return &types.AttributeValueMemberSS{Value: ss}, err
		case "NS":
			var ns []string
			err := json.Unmarshal(body, &ns)
			return &types.AttributeValueMemberNS{Value: ns}, err
		case "BS":
			var bs [][]byte
			err := json.Unmarshal(body, &bs)
			return &types.AttributeValueMemberBS{Value: bs}, err
		case "L":
			var items []json.RawMessage
			if err := json.Unmarshal(body, &items); err != nil {
				return nil, err
			}
			list := make([]types.AttributeValue, len(items))
			for i, item := range items {
				value, err := decodeAttr(item)
				if err != nil {
					return nil, err
				}
				list[i] = value
			}
			return &types.AttributeValueMemberL{Value: list}, nil
		case "M":
			var items map[string]json.RawMessage
			if err := json.Unmarshal(body, &items); err != nil {
				return nil, err
			}
			m := make(map[string]types.AttributeValue, len(items))
			for k, item := range items {
				value, err := decodeAttr(item)
				if err != nil {
					return nil, err
				}
				m[k] = value
			}
			return &types.AttributeValueMemberM{Value: m}, nil
		}
		return nil, fmt.Errorf("tipo desconhecido %q", tag)
	}
	return nil, nil
}
