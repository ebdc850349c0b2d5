package envloader

import (
	"os"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/raywall/fast-service-commons/config"
	"github.com/raywall/fast-service-commons/convert"
)

var (
	durationType = reflect.TypeOf(time.Duration(0))
	timeType     = reflect.TypeOf(time.Time{})
)

// Load preenche uma struct com valores de variáveis de ambiente
// baseado nas tags "env" e "envDefault"
func Load(cfg any) error {
	val := reflect.ValueOf(cfg)
	if val.Kind() != reflect.Ptr || val.Elem().Kind() != reflect.Struct {
		return &InvalidConfigError{Value: reflect.TypeOf(cfg)}
	}

	return loadStruct(val.Elem())
}

// loadStruct processa recursivamente uma struct
func loadStruct(val reflect.Value) error {
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)

		if !field.CanSet() {
			continue
		}

		// time.Time é tratado como valor, não como struct aninhada
		if field.Kind() == reflect.Struct && field.Type() != timeType {
			if err := loadStruct(field); err != nil {
				return err
			}
			continue
		}

		if field.Kind() == reflect.Ptr && field.Type().Elem().Kind() == reflect.Struct {
			if field.IsNil() {
				field.Set(reflect.New(field.Type().Elem()))
			}
			if err := loadStruct(field.Elem()); err != nil {
				return err
			}
			continue
		}

		envTag := fieldType.Tag.Get("env")
		if envTag == "" {
			continue
		}

		envValue := os.Getenv(envTag)
		if envValue == "" {
			envValue = fieldType.Tag.Get("envDefault")
		}
		if envValue == "" {
			continue
		}

		if err := setFieldValue(field, envValue); err != nil {
			return &FieldError{
				FieldName: fieldType.Name,
				EnvVar:    envTag,
				Value:     envValue,
				Err:       err,
			}
		}
	}

	return nil
}

// setFieldValue converte o texto com as regras do pacote convert e define o campo.
func setFieldValue(field reflect.Value, value string) error {
	switch field.Type() {
	case durationType:
		if d, err := time.ParseDuration(value); err == nil {
			field.SetInt(int64(d))
			return nil
		}
		// Números simples são milissegundos
		ms, ok := convert.ToNullableLong(value)
		if !ok {
			return &ConversionError{Value: value, Target: field.Type()}
		}
		field.SetInt(int64(time.Duration(ms) * time.Millisecond))
		return nil
	case timeType:
		t, ok := convert.ToNullableDateTime(value)
		if !ok {
			return &ConversionError{Value: value, Target: field.Type()}
		}
		field.Set(reflect.ValueOf(t))
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, ok := convert.ToNullableLong(value)
		if !ok || field.OverflowInt(n) {
			return &ConversionError{Value: value, Target: field.Type()}
		}
		field.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, ok := convert.ToNullableLong(value)
		if !ok || n < 0 || field.OverflowUint(uint64(n)) {
			return &ConversionError{Value: value, Target: field.Type()}
		}
		field.SetUint(uint64(n))

	case reflect.Bool:
		b, ok := convert.ToNullableBoolean(value)
		if !ok {
			return &ConversionError{Value: value, Target: field.Type()}
		}
		field.SetBool(b)

	case reflect.Float32, reflect.Float64:
		f, ok := convert.ToNullableDouble(value)
		if !ok {
			return &ConversionError{Value: value, Target: field.Type()}
		}
		field.SetFloat(f)

	case reflect.Slice:
		if field.Type().Elem().Kind() == reflect.Slice || field.Type().Elem().Kind() == reflect.Map {
			return &UnsupportedTypeError{Type: field.Type()}
		}
		items := convert.ListToArray(value)
		slice := reflect.MakeSlice(field.Type(), len(items), len(items))
		for i, item := range items {
			if err := setFieldValue(slice.Index(i), strings.TrimSpace(convert.ToString(item))); err != nil {
				return err
			}
		}
		field.Set(slice)

	default:
		return &UnsupportedTypeError{Type: field.Type()}
	}

	return nil
}

// MustLoad é similar ao Load, mas panic em caso de erro
func MustLoad(cfg any) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}

// LoadParams monta um config.ConfigParams com as variáveis de ambiente que
// começam com prefix. O prefixo é removido, a chave vai para minúsculas e
// "__" vira "." para formar seções.
//
// Exemplo:
//
//	// APP_LOGGING__LEVEL=debug, APP_NAME=orders
//	params := envloader.LoadParams("APP_")
//	params.GetAsString("logging.level") // "debug"
//	params.GetAsString("name")          // "orders"
func LoadParams(prefix string) *config.ConfigParams {
	params := config.NewEmptyConfigParams()

	environ := os.Environ()
	sort.Strings(environ)
	for _, entry := range environ {
		name, value, found := strings.Cut(entry, "=")
		if !found || !strings.HasPrefix(name, prefix) {
			continue
		}
		key := strings.TrimPrefix(name, prefix)
		if key == "" {
			continue
		}
		key = strings.ToLower(strings.ReplaceAll(key, "__", "."))
		params.Put(key, value)
	}

	return params
}
