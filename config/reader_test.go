package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlConfig = `
service:
  name: ${param.name}
  region: ${env.CONFIG_TEST_REGION}
logging:
  enabled: true
  level: debug
hosts:
  - host1
  - host2
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadConfig_YAML(t *testing.T) {
	t.Setenv("CONFIG_TEST_REGION", "us-east-1")
	path := writeFile(t, "config.yaml", yamlConfig)

	params, err := ReadConfig(context.Background(), path, NewConfigParamsFromTuples("name", "orders"))
	require.NoError(t, err)

	assert.Equal(t, "orders", params.GetAsString("service.name"))
	assert.Equal(t, "us-east-1", params.GetAsString("service.region"))
	assert.True(t, params.GetAsBoolean("logging.enabled"))
	assert.Equal(t, "host2", params.GetAsString("hosts.1"))
	assert.Equal(t, []string{"hosts", "logging", "service"}, params.GetSectionNames())
}

func TestReadConfig_JSON(t *testing.T) {
	path := writeFile(t, "config.json", `{"db": {"port": 5432, "ssl": false}, "name": "${param.missing}"}`)

	params, err := ReadConfig(context.Background(), path, nil)
	require.NoError(t, err)

	assert.Equal(t, 5432, params.GetAsInteger("db.port"))
	assert.False(t, params.GetAsBooleanWithDefault("db.ssl", true))
	assert.Equal(t, "", params.GetAsString("name"))
}

func TestReadConfig_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := ReadConfig(ctx, "config.toml", nil)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = ReadConfig(ctx, filepath.Join(t.TempDir(), "missing.yaml"), nil)
	var readErr *ReadError
	require.ErrorAs(t, err, &readErr)
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := writeFile(t, "broken.json", `{"a": `)
	_, err = ReadConfig(ctx, path, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "json inválido")

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = ParseConfig(cancelled, FormatYAML, "a: 1", nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseConfig_Empty(t *testing.T) {
	params, err := ParseConfig(context.Background(), FormatYAML, "", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, params.Len())

	params, err = ParseConfig(context.Background(), FormatJSON, "  ", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, params.Len())
}

func TestInterpolate(t *testing.T) {
	t.Setenv("CONFIG_TEST_HOST", "localhost")
	params := NewConfigParamsFromString("port=8080")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Sem placeholders", "plain text", "plain text"},
		{"Variável de ambiente", "${env.CONFIG_TEST_HOST}", "localhost"},
		{"Parâmetro", "${param.port}", "8080"},
		{"Texto misto", "http://${env.CONFIG_TEST_HOST}:${param.port}/api", "http://localhost:8080/api"},
		{"Fonte desconhecida", "${ssm.key}", "${ssm.key}"},
		{"Nome ausente", "[${param.other}]", "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Interpolate(tt.input, params))
		})
	}
}

func TestFormatOf(t *testing.T) {
	format, err := FormatOf("app.YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, format)

	format, err = FormatOf("app.json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, format)

	_, err = FormatOf("app")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
