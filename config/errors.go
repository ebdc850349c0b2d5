package config

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat indica uma extensão de arquivo que não é YAML nem JSON.
var ErrUnsupportedFormat = errors.New("config: unsupported format")

// ReadError descreve uma falha ao ler ou interpretar um arquivo de configuração.
type ReadError struct {
	// Path é o caminho do arquivo.
	Path string
	// Err é o erro original.
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("config: failed to read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
