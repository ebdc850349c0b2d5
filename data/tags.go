package data

import (
	"regexp"
	"strings"

	"github.com/raywall/fast-service-commons/convert"
)

var (
	normalizeRegex = regexp.MustCompile(`(_|#)+`)
	compressRegex  = regexp.MustCompile(`( |_|#)`)
	splitRegex     = regexp.MustCompile(`(,|;)+`)
	hashTagRegex   = regexp.MustCompile(`#\w+`)
)

// NormalizeTag troca "_" e "#" por espaço e remove espaços das pontas.
//
// Exemplo: NormalizeTag("#tag_one") -> "tag one"
func NormalizeTag(tag string) string {
	return strings.TrimSpace(normalizeRegex.ReplaceAllString(tag, " "))
}

// CompressTag remove espaços, "_" e "#" e converte para minúsculas.
// A operação é idempotente.
//
// Exemplo: CompressTag("Tag _One") -> "tagone"
func CompressTag(tag string) string {
	return strings.ToLower(compressRegex.ReplaceAllString(tag, ""))
}

// EqualTags compara duas tags na forma comprimida.
func EqualTags(tag1, tag2 string) bool {
	if tag1 == "" && tag2 == "" {
		return true
	}
	if tag1 == "" || tag2 == "" {
		return false
	}
	return CompressTag(tag1) == CompressTag(tag2)
}

// NormalizeTags aplica NormalizeTag a cada tag.
func NormalizeTags(tags []string) []string {
	result := make([]string, len(tags))
	for i, tag := range tags {
		result[i] = NormalizeTag(tag)
	}
	return result
}

// NormalizeTagList divide uma lista separada por "," ou ";" e normaliza cada tag.
func NormalizeTagList(tagList string) []string {
	return NormalizeTags(splitRegex.Split(tagList, -1))
}

// CompressTags aplica CompressTag a cada tag.
func CompressTags(tags []string) []string {
	result := make([]string, len(tags))
	for i, tag := range tags {
		result[i] = CompressTag(tag)
	}
	return result
}

// CompressTagList divide uma lista separada por "," ou ";" e comprime cada tag.
func CompressTagList(tagList string) []string {
	return CompressTags(splitRegex.Split(tagList, -1))
}

// ExtractHashTags extrai as hashtags (#palavra) de um texto, comprimidas e sem repetição.
func ExtractHashTags(text string) []string {
	if text == "" {
		return []string{}
	}
	return uniqueTags(CompressTags(hashTagRegex.FindAllString(text, -1)))
}

// ExtractHashTagsFromValue combina o campo "tags" de um objeto com as
// hashtags encontradas nos campos indicados. O objeto pode ser qualquer valor
// conversível em map (map nativo, struct, AnyValueMap). Campos são procurados
// sem diferenciar maiúsculas.
//
// Exemplo:
//
//	ExtractHashTagsFromValue(map[string]any{
//		"tags": []string{"Tag 1"},
//		"name": "Text with #Tag2",
//	}, "name") // []string{"tag1", "tag2"}
func ExtractHashTagsFromValue(value any, searchFields ...string) []string {
	fields, ok := convert.ToNullableMap(value)
	if !ok {
		return []string{}
	}

	tags := []string{}
	if raw, ok := lookupField(fields, "tags"); ok {
		for _, tag := range convert.ToArray(raw) {
			if text, ok := convert.ToNullableString(tag); ok {
				tags = append(tags, CompressTag(text))
			}
		}
	}

	for _, field := range searchFields {
		raw, ok := lookupField(fields, field)
		if !ok {
			continue
		}
		text := extractText(raw)
		if text == "" {
			continue
		}
		tags = append(tags, CompressTags(hashTagRegex.FindAllString(text, -1))...)
	}

	return uniqueTags(tags)
}

func lookupField(fields map[string]any, name string) (any, bool) {
	if value, ok := fields[name]; ok {
		return value, true
	}
	for key, value := range fields {
		if strings.EqualFold(key, name) {
			return value, true
		}
	}
	return nil, false
}

// extractText junta todo o texto de um valor, descendo em arrays e maps.
func extractText(value any) string {
	switch convert.ToTypeCode(value) {
	case convert.Unknown:
		return ""
	case convert.Array:
		parts := []string{}
		for _, item := range convert.ToArray(value) {
			parts = append(parts, extractText(item))
		}
		return strings.Join(parts, " ")
	case convert.Map:
		m := convert.ToMap(value)
		parts := []string{}
		for _, key := range sortedKeys(m) {
			parts = append(parts, extractText(m[key]))
		}
		return strings.Join(parts, " ")
	}
	return convert.ToString(value)
}

func uniqueTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	result := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		result = append(result, tag)
	}
	return result
}
