package rules

import (
	"errors"
	"testing"

	"github.com/raywall/fast-service-commons/data"
)

func TestExecuteTransformation(t *testing.T) {
	rm, err := NewRuleManager()
	if err != nil {
		t.Fatalf("Erro ao criar manager: %v", err)
	}

	// CORREÇÃO: Usamos 100.0 para simular float64.
	// O json.Unmarshal (que usaremos na prática) decodifica números como float64 por padrão.
	input := data.NewAnyValueMapFromTuples(
		"valor", 100.0, // int(100) causaria erro ao multiplicar por 0.1 (double)
		"status", "vip",
	)

	tests := []struct {
		name          string
		rule          TransformationRule
		expectApplied bool
		expectValue   interface{}
		expectTarget  string
		expectError   bool
	}{
		{
			name: "Sucesso - Condição Verdadeira com Cálculo",
			rule: TransformationRule{
				Name:      "calc_desconto",
				Condition: "input.valor >= 100.0", // Comparação segura (double >= double)
				Value:     "input.valor * 0.1",    // double * double = double
				Target:    "vars.desconto",
			},
			expectApplied: true,
			expectValue:   10.0, // CORREÇÃO: Resultado de 100.0 * 0.1 é float64, não int64
			expectTarget:  "vars.desconto",
			expectError:   false,
		},
		{
			name: "Sucesso - Condição Falsa com Else Value",
			rule: TransformationRule{
				Name:      "default_taxa",
				Condition: "input.status == 'regular'", // input é vip, então false
				Value:     "15",
				ElseValue: "5",
				Target:    "vars.taxa",
			},
			expectApplied: true,
			expectValue:   int64(5), // Literais inteiros simples no CEL retornam int64
			expectTarget:  "vars.taxa",
			expectError:   false,
		},
		{
			name: "Ignorado - Condição Falsa sem Else",
			rule: TransformationRule{
				Name:      "bonus_extra",
				Condition: "input.valor > 1000.0",
				Value:     "500",
				Target:    "vars.bonus",
			},
			expectApplied: false,
			expectError:   false,
		},
		{
			name: "Erro - Condição Inválida",
			rule: TransformationRule{
				Name:      "erro_sintaxe",
				Condition: "input.valor > 'texto'", // Comparação inválida
				Value:     "1",
				Target:    "vars.erro",
			},
			expectApplied: false,
			expectError:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vars := data.NewEmptyAnyValueMap()
			res, err := rm.ExecuteTransformation(tt.rule, input, vars)

			if tt.expectError {
				if err == nil {
					t.Error("Esperava erro, mas recebeu nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("Erro inesperado: %v", err)
			}

			if res.Applied != tt.expectApplied {
				t.Errorf("Applied: esperado %v, recebido %v", tt.expectApplied, res.Applied)
			}

			if tt.expectApplied {
				if res.Value.GetAsObject() != tt.expectValue {
					t.Errorf("Value: esperado %v (%T), recebido %v (%T)", tt.expectValue, tt.expectValue, res.Value, res.Value.GetAsObject())
				}
				key := tt.expectTarget[len("vars."):]
				if vars.GetAsValue(key).GetAsObject() != tt.expectValue {
					t.Errorf("vars.%s não foi gravado", key)
				}
				if res.Target != tt.expectTarget {
					t.Errorf("Target: esperado %s, recebido %s", tt.expectTarget, res.Target)
				}
			}
		})
	}
}

func TestApplyTransformations(t *testing.T) {
	rm, _ := NewRuleManager()
	input := data.NewAnyValueMapFromTuples("valor", 200.0)

	rules := []TransformationRule{
		{Name: "desconto", Value: "input.valor * 0.1", Target: "vars.desconto"},
		{Name: "total", Value: "input.valor - vars.desconto", Target: "total"},
		{Name: "faixa", Condition: "vars.total > 150.0", Value: "'alta'", ElseValue: "'baixa'", Target: "vars.faixa"},
	}

	vars, err := rm.ApplyTransformations(rules, input)
	if err != nil {
		t.Fatalf("Erro inesperado: %v", err)
	}

	if vars.GetAsDouble("desconto") != 20.0 {
		t.Errorf("desconto: esperado 20, recebido %v", vars.Get("desconto"))
	}
	if vars.GetAsDouble("total") != 180.0 {
		t.Errorf("total: esperado 180, recebido %v", vars.Get("total"))
	}
	if vars.GetAsString("faixa") != "alta" {
		t.Errorf("faixa: esperado alta, recebido %v", vars.Get("faixa"))
	}

	_, err = rm.ApplyTransformations([]TransformationRule{{Name: "ruim", Condition: "1", Value: "1"}}, input)
	if !errors.Is(err, ErrNotBoolean) {
		t.Errorf("Esperado ErrNotBoolean, recebido %v", err)
	}
}
