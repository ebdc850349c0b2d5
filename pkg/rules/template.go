package rules

import (
	"fmt"
	"strings"

	"github.com/raywall/fast-service-commons/convert"
	"github.com/raywall/fast-service-commons/data"
)

// Template é uma estrutura de maps e arrays cujas folhas "${expr}" são
// expressões CEL. As demais folhas são copiadas como estão.
//
// Exemplo:
//
//	tpl, _ := rm.NewTemplate(map[string]any{
//		"id":    "${input.id}",
//		"total": "${input.price * 2.0}",
//		"kind":  "order",
//	})
//	out, _ := tpl.Render(input) // AnyValue com o map calculado
type Template struct {
	rm   *RuleManager
	body any
}

// NewTemplate normaliza o corpo e compila todas as expressões.
func (rm *RuleManager) NewTemplate(body any) (*Template, error) {
	tpl := &Template{rm: rm, body: sanitize(body)}
	if err := tpl.validate(tpl.body); err != nil {
		return nil, err
	}
	return tpl, nil
}

// Render avalia as expressões sobre input e devolve a estrutura resultante.
func (t *Template) Render(input *data.AnyValueMap) (*data.AnyValue, error) {
	result, err := t.render(t.body, input)
	if err != nil {
		return nil, err
	}
	return data.NewAnyValue(result), nil
}

// sanitize converte maps e structs em map[string]any e arrays em []any.
func sanitize(input any) any {
	switch convert.ToTypeCode(input) {
	case convert.Map:
		m := convert.ToMap(input)
		for k, v := range m {
			m[k] = sanitize(v)
		}
		return m
	case convert.Array:
		if _, ok := input.([]byte); ok {
			return input
		}
		l := convert.ToArray(input)
		result := make([]any, len(l))
		for i, v := range l {
			result[i] = sanitize(v)
		}
		return result
	}
	return input
}

// expressionOf retorna o miolo de "${...}".
func expressionOf(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "${") && strings.HasSuffix(trimmed, "}") {
		return trimmed[2 : len(trimmed)-1], true
	}
	return "", false
}

func (t *Template) validate(node any) error {
	switch v := node.(type) {
	case map[string]any:
		for k, val := range v {
			if err := t.validate(val); err != nil {
				return fmt.Errorf("campo '%s': %w", k, err)
			}
		}
	case []any:
		for i, val := range v {
			if err := t.validate(val); err != nil {
				return fmt.Errorf("item[%d]: %w", i, err)
			}
		}
	case string:
		if expr, ok := expressionOf(v); ok {
			if _, err := t.rm.Compile(expr); err != nil {
				return err
			}
		}
	}
	return nil
}

func (t *Template) render(node any, input *data.AnyValueMap) (any, error) {
	switch v := node.(type) {
	case map[string]any:
		result := make(map[string]any, len(v))
		for k, val := range v {
			res, err := t.render(val, input)
			if err != nil {
				return nil, fmt.Errorf("campo '%s': %w", k, err)
			}
			result[k] = res
		}
		return result, nil

	case []any:
		result := make([]any, len(v))
		for i, val := range v {
			res, err := t.render(val, input)
			if err != nil {
				return nil, fmt.Errorf("item[%d]: %w", i, err)
			}
			result[i] = res
		}
		return result, nil

	case string:
		expr, ok := expressionOf(v)
		if !ok {
			return v, nil
		}
		val, err := t.rm.EvaluateValue(expr, input)
		if err != nil {
			return nil, err
		}
		return val.GetAsObject(), nil
	}
	return node, nil
}
