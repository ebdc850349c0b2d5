package config

import (
	"sort"
	"strconv"
	"strings"

	"github.com/raywall/fast-service-commons/convert"
	"github.com/raywall/fast-service-commons/data"
)

// ConfigParams guarda parâmetros de configuração como strings, agrupados em
// seções pelo prefixo das chaves.
//
// Exemplo:
//
//	params := config.NewConfigParamsFromString("section1.key1=AAA;section1.key2=123;key3=x")
//	params.GetSectionNames()                          // []string{"key3", "section1"}
//	params.GetSection("section1").GetAsInteger("key2") // 123
type ConfigParams struct {
	*data.StringValueMap
}

// NewEmptyConfigParams cria um ConfigParams vazio.
func NewEmptyConfigParams() *ConfigParams {
	return &ConfigParams{StringValueMap: data.NewEmptyStringValueMap()}
}

// NewConfigParams cria um ConfigParams a partir de um map plano.
func NewConfigParams(values map[string]any) *ConfigParams {
	return &ConfigParams{StringValueMap: data.NewStringValueMap(values)}
}

// NewConfigParamsFromString interpreta "chave1=valor1;chave2=valor2".
func NewConfigParamsFromString(line string) *ConfigParams {
	return &ConfigParams{StringValueMap: data.NewStringValueMapFromString(line)}
}

// NewConfigParamsFromTuples cria um ConfigParams a partir de pares chave/valor.
func NewConfigParamsFromTuples(tuples ...any) *ConfigParams {
	return &ConfigParams{StringValueMap: data.NewStringValueMapFromTuplesArray(tuples)}
}

// NewConfigParamsFromValue achata um objeto aninhado em chaves pontuadas.
// Elementos de arrays usam o índice como segmento da chave.
//
// Exemplo:
//
//	NewConfigParamsFromValue(map[string]any{
//		"logging": map[string]any{"level": "debug"},
//		"hosts":   []any{"a", "b"},
//	}).String() // "hosts.0=a;hosts.1=b;logging.level=debug"
func NewConfigParamsFromValue(value any) *ConfigParams {
	flat := map[string]any{}
	flatten("", convert.ToRecursiveMap(value), flat)
	return NewConfigParams(flat)
}

func flatten(prefix string, value any, out map[string]any) {
	switch v := value.(type) {
	case map[string]any:
		for key, item := range v {
			flatten(joinKey(prefix, key), item, out)
		}
		if len(v) == 0 && prefix != "" {
			out[prefix] = nil
		}
	case []any:
		for i, item := range v {
			flatten(joinKey(prefix, strconv.Itoa(i)), item, out)
		}
		if len(v) == 0 && prefix != "" {
			out[prefix] = nil
		}
	default:
		if prefix != "" {
			out[prefix] = v
		}
	}
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// GetSectionNames retorna os nomes de seção (o trecho antes do primeiro ".")
// em ordem alfabética e sem repetição. Chaves sem ponto também contam como seção.
func (c *ConfigParams) GetSectionNames() []string {
	seen := map[string]bool{}
	names := []string{}
	for _, key := range c.Keys() {
		name := key
		if pos := strings.Index(key, "."); pos > 0 {
			name = key[:pos]
		}
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// GetSection retorna os parâmetros da seção com o prefixo removido. Uma seção
// inexistente resulta em ConfigParams vazio.
func (c *ConfigParams) GetSection(section string) *ConfigParams {
	result := NewEmptyConfigParams()
	prefix := section + "."
	for key, value := range c.Value() {
		if len(key) > len(prefix) && strings.HasPrefix(key, prefix) {
			result.Put(key[len(prefix):], value)
		}
	}
	return result
}

// AddSection grava os parâmetros informados sob o prefixo da seção. Um nome
// vazio grava as chaves sem prefixo.
func (c *ConfigParams) AddSection(section string, params *ConfigParams) {
	if params == nil {
		return
	}
	for key, value := range params.Value() {
		c.Put(joinKey(section, key), value)
	}
}

// Override cria um novo ConfigParams em que os valores de params substituem
// os atuais.
func (c *ConfigParams) Override(params *ConfigParams) *ConfigParams {
	result := NewConfigParams(c.Value())
	if params != nil {
		result.Append(params.Value())
	}
	return result
}

// SetDefaults cria um novo ConfigParams em que os valores atuais substituem
// os padrões informados.
func (c *ConfigParams) SetDefaults(defaults *ConfigParams) *ConfigParams {
	if defaults == nil {
		return c.Clone()
	}
	return defaults.Override(c)
}

// Clone cria uma cópia rasa.
func (c *ConfigParams) Clone() *ConfigParams {
	return &ConfigParams{StringValueMap: c.StringValueMap.Clone()}
}
