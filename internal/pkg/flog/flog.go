// Package flog wires zerolog loggers into fiber request contexts.
package flog

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type idKey struct{}

// FromFiberCtx returns the request-scoped logger, falling back to the global one.
func FromFiberCtx(ctx *fiber.Ctx) *zerolog.Logger {
	return log.Ctx(ctx.UserContext())
}

// NewHandlerMiddleware attaches a copy of l to every request's user context.
func NewHandlerMiddleware(l zerolog.Logger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		// copy so that UpdateContext on one request never races with another
		reqLogger := l.With().Logger()
		ctx.SetUserContext(reqLogger.WithContext(ctx.UserContext()))
		return ctx.Next()
	}
}

// FieldHandler adds the value returned by extract to the request logger under fieldKey.
func FieldHandler(fieldKey string, extract func(ctx *fiber.Ctx) string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		value := extract(ctx)
		zerolog.Ctx(ctx.UserContext()).UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str(fieldKey, value)
		})
		return ctx.Next()
	}
}

func URLHandler(fieldKey string) fiber.Handler {
	return FieldHandler(fieldKey, func(ctx *fiber.Ctx) string { return ctx.Path() })
}

func MethodHandler(fieldKey string) fiber.Handler {
	return FieldHandler(fieldKey, func(ctx *fiber.Ctx) string { return ctx.Method() })
}

func RemoteAddrHandler(fieldKey string) fiber.Handler {
	return FieldHandler(fieldKey, func(ctx *fiber.Ctx) string { return ctx.IP() })
}

func UserAgentHandler(fieldKey string) fiber.Handler {
	return FieldHandler(fieldKey, func(ctx *fiber.Ctx) string { return ctx.Get(fiber.HeaderUserAgent) })
}

// IDFromFiberCtx returns the request id assigned by RequestIDHandler, if any.
func IDFromFiberCtx(ctx *fiber.Ctx) (id xid.ID, ok bool) {
	if ctx == nil {
		return
	}
	return IDFromCtx(ctx.UserContext())
}

func IDFromCtx(ctx context.Context) (id xid.ID, ok bool) {
	id, ok = ctx.Value(idKey{}).(xid.ID)
	return
}

func CtxWithID(ctx context.Context, id xid.ID) context.Context {
	return context.WithValue(ctx, idKey{}, id)
}

// RequestIDHandler assigns every request an xid, logs it under fieldKey and echoes it in
// headerName. Empty fieldKey or headerName skip the respective step.
func RequestIDHandler(fieldKey, headerName string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		id, ok := IDFromFiberCtx(ctx)
		if !ok {
			id = xid.New()
			ctx.SetUserContext(CtxWithID(ctx.UserContext(), id))
		}
		if fieldKey != "" {
			FromFiberCtx(ctx).UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str(fieldKey, id.String())
			})
		}
		if headerName != "" {
			ctx.Set(headerName, id.String())
		}
		return ctx.Next()
	}
}

// AccessHandler calls f with the elapsed time once the rest of the chain returned.
func AccessHandler(f func(ctx *fiber.Ctx, duration time.Duration)) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()
		f(ctx, time.Since(start))
		return err
	}
}

func DebugFrom(ctx *fiber.Ctx) *zerolog.Event {
	return FromFiberCtx(ctx).Debug()
}

func InfoFrom(ctx *fiber.Ctx) *zerolog.Event {
	return FromFiberCtx(ctx).Info()
}

func WarnFrom(ctx *fiber.Ctx) *zerolog.Event {
	return FromFiberCtx(ctx).Warn()
}

func ErrorFrom(ctx *fiber.Ctx) *zerolog.Event {
	return FromFiberCtx(ctx).Error()
}
