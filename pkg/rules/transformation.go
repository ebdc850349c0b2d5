package rules

import (
	"fmt"
	"strings"

	"github.com/raywall/fast-service-commons/data"
)

// TransformationRule calcula um valor e o grava em vars.
type TransformationRule struct {
	Name      string `yaml:"name" json:"name"`
	Condition string `yaml:"condition" json:"condition"`
	Value     string `yaml:"value" json:"value"`
	ElseValue string `yaml:"else_value" json:"else_value"`
	Target    string `yaml:"target" json:"target"`
}

// TransformationResult contém o resultado de uma operação de transformação.
type TransformationResult struct {
	Applied bool
	Target  string
	Value   *data.AnyValue
}

// ExecuteTransformation processa uma regra de transformação completa.
// Verifica a condição e, se atendida, calcula o valor. Se não, verifica o ElseValue.
// Quando aplicada, o valor é gravado em vars sob o Target (sem o prefixo "vars.").
func (rm *RuleManager) ExecuteTransformation(rule TransformationRule, input, vars *data.AnyValueMap) (*TransformationResult, error) {
	conditionMet := true
	if rule.Condition != "" {
		out, err := rm.eval(rule.Condition, input, vars)
		if err != nil {
			return nil, fmt.Errorf("falha ao avaliar condição da transformação '%s': %w", rule.Name, err)
		}
		met, ok := out.Value().(bool)
		if !ok {
			return nil, fmt.Errorf("falha ao avaliar condição da transformação '%s': %w", rule.Name, ErrNotBoolean)
		}
		conditionMet = met
	}

	exprToEvaluate := rule.Value
	if !conditionMet {
		if rule.ElseValue == "" {
			// Condição falsa e sem else
			return &TransformationResult{Applied: false}, nil
		}
		exprToEvaluate = rule.ElseValue
	}

	out, err := rm.eval(exprToEvaluate, input, vars)
	if err != nil {
		return nil, fmt.Errorf("falha ao calcular valor da transformação '%s': %w", rule.Name, err)
	}

	value := data.NewAnyValue(nativeValue(out))
	if vars != nil && rule.Target != "" {
		vars.Put(strings.TrimPrefix(rule.Target, "vars."), value.GetAsObject())
	}

	return &TransformationResult{
		Target:  rule.Target,
		Value:   value,
		Applied: true,
	}, nil
}

// ApplyTransformations executa as regras em ordem; cada regra enxerga os
// valores gravados pelas anteriores em vars.
func (rm *RuleManager) ApplyTransformations(rules []TransformationRule, input *data.AnyValueMap) (*data.AnyValueMap, error) {
	vars := data.NewEmptyAnyValueMap()
	for _, rule := range rules {
		if _, err := rm.ExecuteTransformation(rule, input, vars); err != nil {
			return nil, err
		}
	}
	return vars, nil
}
