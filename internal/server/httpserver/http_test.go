package httpserver

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"courtside.dev/backend/internal/app/appconfig"
	"courtside.dev/backend/internal/pkg/cserr"
)

func newTestConfig(tracing bool) *appconfig.Config {
	return &appconfig.Config{
		ConfigSpec: appconfig.ConfigSpec{
			TracingEnabled: tracing,
			TrustedProxies: []string{"127.0.0.1"},
		},
	}
}

func TestCreateTracesRequests(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := tracesdk.NewTracerProvider(tracesdk.WithSpanProcessor(recorder))

	app := Create(newTestConfig(true), tp)
	app.Get("/api/v1/seasons/:season/dashboard", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/seasons/2022/dashboard", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.True(t, strings.HasPrefix(spans[0].Name(), "HTTP GET "), spans[0].Name())
	assert.Equal(t, trace.SpanKindServer, spans[0].SpanKind())
}

func TestCreateWithoutTracing(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := tracesdk.NewTracerProvider(tracesdk.WithSpanProcessor(recorder))

	app := Create(newTestConfig(false), tp)
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, recorder.Ended())
}

func TestErrorHandlerEnvelope(t *testing.T) {
	app := Create(newTestConfig(false), trace.NewNoopTracerProvider())
	app.Get("/missing", func(c *fiber.Ctx) error {
		return cserr.ErrNotFound.Msg("no such season")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":"NOT_FOUND","message":"no such season"}`, string(body))
}
