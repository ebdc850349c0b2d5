package logger

import (
	"io"
	"os"
	"time"

	"github.com/raywall/fast-service-commons/config"
	"github.com/rs/zerolog"
)

// Configure inicializa o nível global e retorna um logger gravando em os.Stdout.
func Configure(opts config.LoggingOptions) zerolog.Logger {
	return New(opts, os.Stdout)
}

// New monta o logger sobre o writer informado: JSON por padrão, ConsoleWriter
// quando format=console e io.Discard quando os logs estão desabilitados.
func New(opts config.LoggingOptions, out io.Writer) zerolog.Logger {
	// Define o nível de log (default: info)
	level, err := zerolog.ParseLevel(opts.Level)
	if err != nil || opts.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var output = out
	if !opts.Enabled {
		output = io.Discard
	} else if opts.Format == "console" {
		output = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: true}
	}

	return zerolog.New(output).
		With().
		Timestamp().
		Logger()
}
