package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Format identifica a sintaxe de um arquivo de configuração.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Captura ${env.NOME} e ${param.NOME}.
var placeholderPattern = regexp.MustCompile(`\$\{(env|param)\.([^}]+)\}`)

// FormatOf deduz o formato pela extensão do arquivo.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// ReadConfig lê um arquivo YAML ou JSON, interpola os placeholders e achata o
// resultado em um ConfigParams. parameters pode ser nil.
func ReadConfig(ctx context.Context, path string, parameters *ConfigParams) (*ConfigParams, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	params, err := ParseConfig(ctx, format, string(content), parameters)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	zerolog.Ctx(ctx).Debug().
		Str("path", path).
		Str("format", string(format)).
		Int("keys", params.Len()).
		Msg("configuração carregada")

	return params, nil
}

// ParseConfig interpreta o texto de uma configuração já carregada.
func ParseConfig(ctx context.Context, format Format, text string, parameters *ConfigParams) (*ConfigParams, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text = Interpolate(text, parameters)

	var raw any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal([]byte(text), &raw); err != nil {
			return nil, fmt.Errorf("yaml inválido: %w", err)
		}
	case FormatJSON:
		if strings.TrimSpace(text) == "" {
			return NewEmptyConfigParams(), nil
		}
		if err := json.Unmarshal([]byte(text), &raw); err != nil {
			return nil, fmt.Errorf("json inválido: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	return NewConfigParamsFromValue(raw), nil
}

// Interpolate substitui ${env.NOME} pela variável de ambiente e ${param.NOME}
// pelo parâmetro informado. Nomes não encontrados viram texto vazio.
func Interpolate(text string, parameters *ConfigParams) string {
	if !strings.Contains(text, "${") {
		return text
	}

	return placeholderPattern.ReplaceAllStringFunc(text, func(match string) string {
		parts := placeholderPattern.FindStringSubmatch(match)
		source, key := parts[1], strings.TrimSpace(parts[2])

		switch source {
		case "env":
			return os.Getenv(key)
		case "param":
			if parameters != nil {
				return parameters.GetAsString(key)
			}
		}
		return ""
	})
}
