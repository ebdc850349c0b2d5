package rules

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
	"github.com/google/cel-go/common/types/traits"
	"github.com/raywall/fast-service-commons/convert"
	"github.com/raywall/fast-service-commons/data"
)

// ErrNotBoolean indica que uma regra de validação não produziu um booleano.
var ErrNotBoolean = errors.New("resultado não é booleano")

// RuleManager gerencia a compilação e avaliação de expressões CEL sobre
// AnyValueMap. Programas compilados ficam em cache por expressão.
type RuleManager struct {
	env *cel.Env

	mu       sync.RWMutex
	programs map[string]cel.Program
}

// NewRuleManager inicializa o ambiente CEL com as variáveis "input" e "vars".
func NewRuleManager() (*RuleManager, error) {
	env, err := cel.NewEnv(
		cel.Variable("input", cel.DynType), // Dados de entrada
		cel.Variable("vars", cel.DynType),  // Variáveis calculadas por transformações
	)
	if err != nil {
		return nil, fmt.Errorf("erro fatal CEL init: %w", err)
	}

	return &RuleManager{env: env, programs: map[string]cel.Program{}}, nil
}

// EvaluateBool processa regras de validação (deve retornar true/false).
// Expressão vazia aprova.
func (rm *RuleManager) EvaluateBool(expression string, input *data.AnyValueMap) (bool, error) {
	if expression == "" {
		return true, nil
	}

	out, err := rm.eval(expression, input, nil)
	if err != nil {
		return false, err
	}

	if val, ok := out.Value().(bool); ok {
		return val, nil
	}
	return false, fmt.Errorf("%w: '%s' retornou %s", ErrNotBoolean, expression, out.Type().TypeName())
}

// EvaluateValue processa regras de transformação e devolve o resultado como
// AnyValue. Listas e maps CEL viram []any e map[string]any.
func (rm *RuleManager) EvaluateValue(expression string, input *data.AnyValueMap) (*data.AnyValue, error) {
	if expression == "" {
		return data.NewEmptyAnyValue(), nil
	}

	out, err := rm.eval(expression, input, nil)
	if err != nil {
		return nil, err
	}
	return data.NewAnyValue(nativeValue(out)), nil
}

// EvaluateAsType avalia a expressão e converte o resultado com convert.ToType.
//
// Exemplo:
//
//	rm.EvaluateAsType("input.price * 2.0", convert.Long, input) // int64
func (rm *RuleManager) EvaluateAsType(expression string, typeCode convert.TypeCode, input *data.AnyValueMap) (any, error) {
	value, err := rm.EvaluateValue(expression, input)
	if err != nil {
		return nil, err
	}
	return value.GetAsType(typeCode), nil
}

// Compile compila a expressão ou reaproveita o programa em cache.
func (rm *RuleManager) Compile(expr string) (cel.Program, error) {
	rm.mu.RLock()
	prg, ok := rm.programs[expr]
	rm.mu.RUnlock()
	if ok {
		return prg, nil
	}

	ast, issues := rm.env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("erro compilação CEL '%s': %w", expr, issues.Err())
	}
	prg, err := rm.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("erro programa CEL: %w", err)
	}

	rm.mu.Lock()
	rm.programs[expr] = prg
	rm.mu.Unlock()
	return prg, nil
}

func (rm *RuleManager) eval(expression string, input, vars *data.AnyValueMap) (ref.Val, error) {
	prg, err := rm.Compile(expression)
	if err != nil {
		return nil, err
	}

	out, _, err := prg.Eval(map[string]any{
		"input": activationMap(input),
		"vars":  activationMap(vars),
	})
	if err != nil {
		return nil, fmt.Errorf("erro execução CEL: %w", err)
	}
	return out, nil
}

// activationMap normaliza o map para tipos que o adaptador CEL reconhece.
func activationMap(m *data.AnyValueMap) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return convert.ToRecursiveMap(m)
}

// nativeValue converte o resultado CEL em valores Go simples.
func nativeValue(val ref.Val) any {
	switch v := val.(type) {
	case types.Null:
		return nil
	case traits.Mapper:
		result := map[string]any{}
		it := v.Iterator()
		for it.HasNext() == types.True {
			key := it.Next()
			result[convert.ToString(nativeValue(key))] = nativeValue(v.Get(key))
		}
		return result
	case traits.Lister:
		size, _ := v.Size().(types.Int)
		result := make([]any, 0, int(size))
		for i := types.Int(0); i < size; i++ {
			result = append(result, nativeValue(v.Get(i)))
		}
		return result
	}
	return val.Value()
}
