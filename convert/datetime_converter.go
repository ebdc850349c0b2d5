package convert

import (
	"reflect"
	"strings"
	"time"
)

// dateTimeLayouts são tentados em ordem. Layouts sem fuso horário são
// interpretados em UTC.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02Z07:00",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
}

// ToNullableDateTime converte um valor para time.Time.
//
// time.Time passa direto; números são milissegundos desde a época Unix (UTC);
// strings são interpretadas como ISO-8601. Textos inválidos resultam em
// (time.Time{}, false).
func ToNullableDateTime(value any) (time.Time, bool) {
	value = normalize(value)
	if value == nil {
		return time.Time{}, false
	}

	switch v := value.(type) {
	case time.Time:
		return v, true
	case bool:
		return time.Time{}, false
	case time.Duration:
		return time.UnixMilli(v.Milliseconds()).UTC(), true
	case string:
		return parseDateTime(v)
	}

	if isNumber(value) {
		ms, ok := int64Of(value)
		if !ok {
			return time.Time{}, false
		}
		return time.UnixMilli(ms).UTC(), true
	}

	if rv := reflect.ValueOf(value); rv.Kind() == reflect.String {
		return parseDateTime(rv.String())
	}
	return time.Time{}, false
}

func parseDateTime(text string) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, false
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ToDateTime converte um valor para time.Time, retornando o instante atual
// quando não for possível.
func ToDateTime(value any) time.Time {
	return ToDateTimeWithDefault(value, time.Now())
}

// ToDateTimeWithDefault converte um valor para time.Time ou retorna defaultValue.
func ToDateTimeWithDefault(value any, defaultValue time.Time) time.Time {
	if result, ok := ToNullableDateTime(value); ok {
		return result
	}
	return defaultValue
}
