// Command anyvalue expõe os conversores dinâmicos na linha de comando.
//
//	anyvalue [-log-level debug] [-log-format console] <comando> [flags]
//
// Comandos: convert, match, tags, eval, render, config, id.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/raywall/fast-service-commons/config"
	"github.com/raywall/fast-service-commons/convert"
	"github.com/raywall/fast-service-commons/data"
	"github.com/raywall/fast-service-commons/envloader"
	"github.com/raywall/fast-service-commons/pkg/logger"
	"github.com/raywall/fast-service-commons/pkg/rules"
	"github.com/rs/zerolog"
)

const usage = "uso: anyvalue [-log-level nível] [-log-format json|console] <convert|match|tags|eval|render|config|id> [flags]"

var errUsage = errors.New(usage)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run contém a lógica principal testável e retorna o código de saída.
func run(args []string, stdout, stderr io.Writer) int {
	global := flag.NewFlagSet("anyvalue", flag.ContinueOnError)
	global.SetOutput(stderr)
	logLevel := global.String("log-level", "info", "Nível de log (trace, debug, info, warn, error)")
	logFormat := global.String("log-format", "json", "Formato de log (json ou console)")
	if err := global.Parse(args); err != nil {
		return 1
	}

	// Variáveis ANYVALUE_LOGGING__LEVEL etc. valem como padrão para as flags
	params := envloader.LoadParams("ANYVALUE_")
	global.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			params.Put("logging.level", *logLevel)
		case "log-format":
			params.Put("logging.format", *logFormat)
		}
	})

	opts, err := config.NewLoggingOptions(params)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	log := logger.New(opts, stderr)
	ctx := log.WithContext(context.Background())

	if global.NArg() < 1 {
		fmt.Fprintln(stderr, usage)
		return 1
	}

	command, rest := global.Arg(0), global.Args()[1:]
	log.Debug().Str("command", command).Strs("args", rest).Msg("executando comando")

	if err := dispatch(ctx, command, rest, stdout, stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(stderr, "erro: %v\n", err)
		}
		return 1
	}
	return 0
}

func dispatch(ctx context.Context, command string, args []string, stdout, stderr io.Writer) error {
	switch command {
	case "convert":
		return runConvert(args, stdout, stderr)
	case "match":
		return runMatch(args, stdout, stderr)
	case "tags":
		return runTags(args, stdout, stderr)
	case "eval":
		return runEval(ctx, args, stdout, stderr)
	case "render":
		return runRender(args, stdout, stderr)
	case "config":
		return runConfig(ctx, args, stdout, stderr)
	case "id":
		return runID(args, stdout, stderr)
	}
	return fmt.Errorf("comando desconhecido %q\n%w", command, errUsage)
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

// parseValue interpreta o texto como JSON; texto que não é JSON vale como string.
func parseValue(text string) any {
	var value any
	if err := json.Unmarshal([]byte(text), &value); err != nil {
		return text
	}
	return value
}

func parseTypeCode(name string) (convert.TypeCode, error) {
	typeCode, ok := convert.ParseTypeCode(name)
	if !ok {
		return convert.Unknown, fmt.Errorf("tipo desconhecido %q", name)
	}
	return typeCode, nil
}

func writeJSON(out io.Writer, value any) error {
	text, err := convert.ToJson(value)
	if err != nil {
		return err
	}
	if text == "" {
		text = "null"
	}
	_, err = fmt.Fprintln(out, text)
	return err
}

func runConvert(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("convert", stderr)
	typeName := fs.String("type", "string", "Tipo de destino")
	value := fs.String("value", "", "Valor de entrada (JSON ou texto)")
	path := fs.String("path", "", "Caminho dentro do valor, ex: items[0].price")
	if err := fs.Parse(args); err != nil {
		return err
	}

	typeCode, err := parseTypeCode(*typeName)
	if err != nil {
		return err
	}

	source, err := data.GetValueByPath(parseValue(*value), *path)
	if err != nil {
		return err
	}

	result := convert.ToType(typeCode, source)
	switch typeCode {
	case convert.DateTime:
		result = convert.ToString(result)
	case convert.Duration:
		result = convert.ToLong(result) // milissegundos
	}
	return writeJSON(stdout, result)
}

func runMatch(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("match", stderr)
	expected := fs.String("expected", "", "Nome do tipo esperado")
	value := fs.String("value", "", "Valor a verificar (JSON ou texto)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ok, err := convert.MatchValueTypeByName(*expected, parseValue(*value))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, ok)
	return err
}

func runTags(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("tags", stderr)
	text := fs.String("text", "", "Texto com #hashtags")
	object := fs.String("json", "", "Objeto JSON com campo \"tags\"")
	fields := fs.String("fields", "", "Campos do objeto onde procurar hashtags, separados por vírgula")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *object == "" {
		return writeJSON(stdout, data.ExtractHashTags(*text))
	}

	value, ok := convert.JsonToNullableMap(*object)
	if !ok {
		return fmt.Errorf("-json deve ser um objeto JSON")
	}
	var searchFields []string
	for _, field := range strings.Split(*fields, ",") {
		if field = strings.TrimSpace(field); field != "" {
			searchFields = append(searchFields, field)
		}
	}
	return writeJSON(stdout, data.ExtractHashTagsFromValue(value, searchFields...))
}

func runEval(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("eval", stderr)
	expr := fs.String("expr", "", "Expressão CEL")
	input := fs.String("input", "{}", "Objeto JSON disponível como 'input'")
	typeName := fs.String("type", "", "Tipo de destino do resultado (opcional)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *expr == "" {
		return errors.New("flag -expr é obrigatória")
	}

	values, ok := convert.JsonToNullableMap(*input)
	if !ok {
		return errors.New("-input deve ser um objeto JSON")
	}

	rm, err := rules.NewRuleManager()
	if err != nil {
		return err
	}

	zerolog.Ctx(ctx).Debug().Str("expr", *expr).Msg("avaliando expressão")

	inputMap := data.NewAnyValueMap(values)
	if *typeName == "" {
		value, err := rm.EvaluateValue(*expr, inputMap)
		if err != nil {
			return err
		}
		return writeJSON(stdout, value)
	}

	typeCode, err := parseTypeCode(*typeName)
	if err != nil {
		return err
	}
	value, err := rm.EvaluateAsType(*expr, typeCode, inputMap)
	if err != nil {
		return err
	}
	return writeJSON(stdout, value)
}

func runRender(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("render", stderr)
	template := fs.String("template", "", "Template JSON com folhas ${expr}")
	input := fs.String("input", "{}", "Objeto JSON disponível como 'input'")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *template == "" {
		return errors.New("flag -template é obrigatória")
	}

	values, ok := convert.JsonToNullableMap(*input)
	if !ok {
		return errors.New("-input deve ser um objeto JSON")
	}

	rm, err := rules.NewRuleManager()
	if err != nil {
		return err
	}
	tpl, err := rm.NewTemplate(parseValue(*template))
	if err != nil {
		return err
	}
	out, err := tpl.Render(data.NewAnyValueMap(values))
	if err != nil {
		return err
	}
	return writeJSON(stdout, out)
}

func runConfig(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("config", stderr)
	file := fs.String("file", "", "Caminho do arquivo YAML ou JSON")
	paramsLine := fs.String("params", "", "Parâmetros para ${param.X} no formato chave=valor;...")
	section := fs.String("section", "", "Imprime apenas a seção informada")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return errors.New("flag -file é obrigatória")
	}

	params, err := config.ReadConfig(ctx, *file, config.NewConfigParamsFromString(*paramsLine))
	if err != nil {
		return err
	}
	if *section != "" {
		params = params.GetSection(*section)
	}

	_, err = fmt.Fprintln(stdout, params.String())
	return err
}

func runID(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("id", stderr)
	long := fs.Bool("long", false, "Gera um identificador de 32 dígitos hexadecimais")
	if err := fs.Parse(args); err != nil {
		return err
	}

	id := data.NextShort()
	if *long {
		id = data.NextLong()
	}
	_, err := fmt.Fprintln(stdout, id)
	return err
}
