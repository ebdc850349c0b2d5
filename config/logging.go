package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// LoggingOptions configura o logger da aplicação. É lida da seção "logging".
type LoggingOptions struct {
	Enabled bool   `validate:"-"`
	Level   string `validate:"required,oneof=trace debug info warn error fatal panic disabled"`
	Format  string `validate:"required,oneof=json console"`
}

// DefaultLoggingOptions retorna logs habilitados em nível info e formato JSON.
func DefaultLoggingOptions() LoggingOptions {
	return LoggingOptions{Enabled: true, Level: "info", Format: "json"}
}

var validate = validator.New()

// NewLoggingOptions lê a seção "logging" de params, aplica os padrões e valida
// o resultado. params nil resulta nos padrões.
//
// Exemplo:
//
//	params := config.NewConfigParamsFromString("logging.level=DEBUG;logging.format=console")
//	opts, _ := config.NewLoggingOptions(params) // {Enabled:true Level:debug Format:console}
func NewLoggingOptions(params *ConfigParams) (LoggingOptions, error) {
	opts := DefaultLoggingOptions()
	if params == nil {
		return opts, nil
	}

	section := params.GetSection("logging")
	opts.Enabled = section.GetAsBooleanWithDefault("enabled", opts.Enabled)
	opts.Level = strings.ToLower(section.GetAsStringWithDefault("level", opts.Level))
	opts.Format = strings.ToLower(section.GetAsStringWithDefault("format", opts.Format))

	if err := opts.Validate(); err != nil {
		return LoggingOptions{}, err
	}
	return opts, nil
}

// Validate verifica nível e formato.
func (o LoggingOptions) Validate() error {
	if err := validate.Struct(o); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			var errMsgs []string
			for _, e := range validationErrors {
				errMsgs = append(errMsgs, fmt.Sprintf("Campo '%s' falhou na regra '%s'", e.Field(), e.Tag()))
			}
			return fmt.Errorf("opções de log inválidas:\n- %s", strings.Join(errMsgs, "\n- "))
		}
		return fmt.Errorf("opções de log inválidas: %w", err)
	}
	return nil
}
