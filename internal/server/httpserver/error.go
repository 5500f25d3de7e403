package httpserver

import (
	"errors"
	"strconv"

	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"courtside.dev/backend/internal/constant"
	"courtside.dev/backend/internal/pkg/cserr"
)

func handleCustomError(ctx *fiber.Ctx, e *cserr.CourtsideError) error {
	log.Warn().
		Err(e).
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Msg(e.Message)

	body := fiber.Map{
		"code":    e.ErrorCode,
		"message": e.Message,
	}
	if e.Extras != nil {
		for k, v := range *e.Extras {
			body[k] = v
		}
	}

	return ctx.Status(e.StatusCode).JSON(body)
}

// ErrorHandler renders every error as the JSON envelope {code, message[, extras...]}.
// Errors that are neither CourtsideError nor fiber.Error are reported to Sentry.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	var ce *cserr.CourtsideError
	if errors.As(err, &ce) {
		return handleCustomError(ctx, ce)
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return handleCustomError(ctx, cserr.New(fe.Code, "UNKNOWN_ERROR", fe.Message))
	}

	log.Error().
		Stack().
		Err(err).
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Msg("Internal Server Error")

	if hub := fibersentry.GetHubFromContext(ctx); hub != nil {
		hub.Scope().SetTag("status", strconv.Itoa(fiber.StatusInternalServerError))
		if id, ok := ctx.Locals(constant.ContextKeyRequestID).(string); ok {
			hub.Scope().SetTag("request_id", id)
		}
		hub.CaptureException(err)
	}

	return handleCustomError(ctx, cserr.ErrInternalError)
}
