package data

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/raywall/fast-service-commons/convert"
)

// ErrPathNotFound indica que um caminho não existe no valor navegado.
var ErrPathNotFound = errors.New("data: path not found")

// pathSegment representa uma parte do caminho
type pathSegment struct {
	field   string
	isIndex bool
	index   int
}

// GetValueByPath extrai um valor navegando por maps e arrays.
// Exemplos de caminhos válidos:
//   - "nome" -> retorna valor direto
//   - "dados.empregador" -> navega em objetos aninhados
//   - "cursos[0]" ou "cursos.0" -> retorna primeiro elemento do array
//   - "cursos[1].nome" -> retorna campo de um elemento do array
//
// Caminho vazio retorna o próprio valor. Qualquer container aceito pelos
// conversores (maps, structs, slices, AnyValueMap, AnyValueArray) pode ser navegado.
func GetValueByPath(value any, path string) (any, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return value, nil
	}

	segments := parsePath(path)
	current := value

	for i, segment := range segments {
		if segment.isIndex {
			items, ok := convert.ToNullableArray(current)
			if !ok || convert.ToTypeCode(current) != convert.Array {
				return nil, fmt.Errorf("%w: esperado array em '%s'", ErrPathNotFound, joinSegments(segments, i))
			}
			if segment.index < 0 || segment.index >= len(items) {
				return nil, fmt.Errorf("%w: índice fora do array em '%s'", ErrPathNotFound, joinSegments(segments, i+1))
			}
			current = items[segment.index]
			continue
		}

		// Índices numéricos sem colchetes também acessam arrays
		if convert.ToTypeCode(current) == convert.Array {
			if index, err := strconv.Atoi(segment.field); err == nil {
				items := convert.ToArray(current)
				if index < 0 || index >= len(items) {
					return nil, fmt.Errorf("%w: índice fora do array em '%s'", ErrPathNotFound, joinSegments(segments, i+1))
				}
				current = items[index]
				continue
			}
		}

		fields, ok := convert.ToNullableMap(current)
		if !ok {
			return nil, fmt.Errorf("%w: esperado objeto em '%s'", ErrPathNotFound, joinSegments(segments, i))
		}
		next, exists := fields[segment.field]
		if !exists {
			return nil, fmt.Errorf("%w: campo '%s' em '%s'", ErrPathNotFound, segment.field, joinSegments(segments, i+1))
		}
		current = next
	}

	return current, nil
}

// GetByPath navega a partir do map. O segundo retorno é false quando o
// caminho não existe.
func (c *AnyValueMap) GetByPath(path string) (any, bool) {
	value, err := GetValueByPath(c.values, path)
	return value, err == nil
}

// GetAsValueByPath retorna o valor do caminho como AnyValue (vazio quando não existe).
func (c *AnyValueMap) GetAsValueByPath(path string) *AnyValue {
	value, _ := c.GetByPath(path)
	return NewAnyValue(value)
}

// parsePath converte uma string de caminho em partes estruturadas
func parsePath(path string) []pathSegment {
	var segments []pathSegment

	for _, part := range strings.Split(path, ".") {
		if part == "" {
			continue
		}

		open := strings.Index(part, "[")
		if open < 0 {
			segments = append(segments, pathSegment{field: part})
			continue
		}

		closing := strings.Index(part, "]")
		if closing < open {
			// Colchete não fechado, trata como campo normal
			segments = append(segments, pathSegment{field: part})
			continue
		}

		if name := part[:open]; name != "" {
			segments = append(segments, pathSegment{field: name})
		}

		index, err := strconv.Atoi(part[open+1 : closing])
		if err == nil {
			segments = append(segments, pathSegment{isIndex: true, index: index})
		}

		// "[0][1]" ou "[0]campo"
		if rest := part[closing+1:]; rest != "" {
			segments = append(segments, parsePath(rest)...)
		}
	}

	return segments
}

// joinSegments reconstrói o caminho até um determinado índice (para mensagens de erro)
func joinSegments(segments []pathSegment, until int) string {
	var builder strings.Builder

	for i := 0; i < until && i < len(segments); i++ {
		if segments[i].isIndex {
			builder.WriteString("[" + strconv.Itoa(segments[i].index) + "]")
			continue
		}
		if i > 0 {
			builder.WriteString(".")
		}
		builder.WriteString(segments[i].field)
	}

	return builder.String()
}
