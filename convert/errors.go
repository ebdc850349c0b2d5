package convert

import (
	"errors"
	"fmt"
)

// ErrNilActualValue é retornado pelos matchers quando o valor real é nulo
// e o tipo esperado não é. Trata-se de erro de uso, não de dado inválido.
var ErrNilActualValue = errors.New("convert: actual value cannot be nil")

// MatchError descreve uma chamada inválida ao TypeMatcher.
type MatchError struct {
	// Expected é o tipo esperado informado pelo chamador (TypeCode ou nome).
	Expected any
	// Err é o erro original (ex: ErrNilActualValue).
	Err error
}

// Error retorna a mensagem formatada.
//
// Exemplo de Retorno: "convert: cannot match expected type integer: convert: actual value cannot be nil"
func (e *MatchError) Error() string {
	return fmt.Sprintf("convert: cannot match expected type %v: %v", e.Expected, e.Err)
}

// Unwrap expõe o erro original para errors.Is / errors.As.
func (e *MatchError) Unwrap() error {
	return e.Err
}
