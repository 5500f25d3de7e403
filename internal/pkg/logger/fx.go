package logger

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx/fxevent"
)

// fxLogger writes fx lifecycle events as structured zerolog entries. Routine events go to
// debug; failures go to error so a broken graph is visible at the default level.
type fxLogger struct {
	l zerolog.Logger
}

func Fx() fxevent.Logger {
	return &fxLogger{
		l: log.Logger.With().Str("evt.name", "fx.event").Logger(),
	}
}

func (f *fxLogger) LogEvent(event fxevent.Event) {
	switch e := event.(type) {
	case *fxevent.OnStartExecuted:
		f.done(e.Err).Str("callee", e.FunctionName).Str("caller", e.CallerName).Dur("runtime", e.Runtime).Msg("OnStart hook executed")
	case *fxevent.OnStopExecuted:
		f.done(e.Err).Str("callee", e.FunctionName).Str("caller", e.CallerName).Dur("runtime", e.Runtime).Msg("OnStop hook executed")
	case *fxevent.Supplied:
		f.done(e.Err).Str("type", e.TypeName).Str("module", e.ModuleName).Msg("supplied")
	case *fxevent.Provided:
		f.done(e.Err).Str("constructor", e.ConstructorName).Str("module", e.ModuleName).
			Str("types", strings.Join(e.OutputTypeNames, ", ")).Msg("provided")
	case *fxevent.Invoked:
		f.done(e.Err).Str("function", e.FunctionName).Str("module", e.ModuleName).Msg("invoked")
	case *fxevent.Stopped:
		f.done(e.Err).Msg("stopped")
	case *fxevent.RolledBack:
		f.l.Error().Err(e.Err).Msg("start failed, rolled back")
	case *fxevent.Started:
		f.done(e.Err).Msg("started")
	case *fxevent.LoggerInitialized:
		f.done(e.Err).Str("constructor", e.ConstructorName).Msg("logger initialized")
	}
}

func (f *fxLogger) done(err error) *zerolog.Event {
	if err != nil {
		return f.l.Error().Err(err)
	}
	return f.l.Debug()
}
