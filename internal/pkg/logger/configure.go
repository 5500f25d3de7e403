package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	"gopkg.in/natefinch/lumberjack.v2"

	"courtside.dev/backend/internal/app/appconfig"
	"courtside.dev/backend/internal/app/appcontext"
)

func Configure(conf *appconfig.Config) {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	var level zerolog.Level
	switch {
	case conf.DevMode:
		level = zerolog.TraceLevel
	case conf.AppContext.Env == appcontext.EnvCLI:
		level = zerolog.InfoLevel
	default:
		level = zerolog.DebugLevel
	}

	// CLI commands print their results to stdout, so their logs go to stderr
	out := os.Stdout
	if conf.AppContext.Env == appcontext.EnvCLI {
		out = os.Stderr
	}

	var stdout io.Writer = out
	if !conf.LogJsonStdout {
		stdout = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339Nano,
		}
	}

	writers := []io.Writer{stdout}
	if conf.LogFile != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   conf.LogFile,
			MaxSize:    100, // megabytes
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		})
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		With().
		Timestamp().
		Logger().
		Level(level)
}
