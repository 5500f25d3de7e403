package appconfig

import (
	"time"

	"courtside.dev/backend/internal/app/appcontext"
)

type ConfigSpec struct {
	// DatasetSource is where the per-game player statistics CSV is read from at startup.
	// Either a local path or an s3://bucket/key URI; the latter requires S3Region.
	DatasetSource string `required:"true" split_words:"true" default:"data/players.csv"`

	// SeasonRange bounds the seasons exposed through the API and the warm worker, as MIN-MAX.
	SeasonRange SeasonRange `required:"true" split_words:"true" default:"2000-2024"`

	// ServiceAddress is the listen address for normal service requests.
	ServiceAddress string `required:"true" split_words:"true" default:"localhost:9030"`

	// DevOpsAddress is the listen address for profiling endpoints. Leaving this empty disables the devops server.
	// It is intended for intra-cluster use only and should never be exposed to the public.
	DevOpsAddress string `split_words:"true"`

	// LogJsonStdout is whether to log JSON (instead of pretty-printed) lines to stdout.
	LogJsonStdout bool `split_words:"true" default:"false"`

	// LogFile, when set, additionally writes logs to a size-rotated file at this path.
	LogFile string `split_words:"true"`

	// TrustedProxies are allowed to report a real client IP through X-Forwarded-For.
	TrustedProxies []string `required:"true" split_words:"true" default:"::1,127.0.0.1,10.0.0.0/8"`

	// DevMode enables verbose logging, pprof and detailed panic output.
	DevMode bool `split_words:"true"`

	// TracingEnabled to indicate whether to enable OpenTelemetry tracing.
	TracingEnabled bool `split_words:"true"`

	// TracingExporters to indicate which exporters to use for tracing.
	// Valid values are: jaeger, otlp, stdout (for debug).
	TracingExporters []string `split_words:"true" default:"otlp"`

	// TracingSampleRate is the ratio of traces sampled, between 0.0 and 1.0.
	TracingSampleRate float64 `split_words:"true" default:"1.0"`

	// RedisURL enables the shared dashboard cache when set. See
	// https://pkg.go.dev/github.com/redis/go-redis/v9#ParseURL for the format.
	RedisURL string `split_words:"true"`

	// SentryDSN is the DSN of the Sentry server. Sentry is disabled when empty.
	SentryDSN string `split_words:"true"`

	// S3Region is the region of the bucket DatasetSource points to.
	S3Region string `split_words:"true" default:"us-east-1"`

	// S3Endpoint overrides the S3 endpoint, e.g. for MinIO.
	S3Endpoint string `split_words:"true"`

	// S3UsePathStyle addresses buckets by path instead of by virtual host.
	S3UsePathStyle bool `split_words:"true"`

	// S3AccessKey and S3SecretKey are static credentials. When both are empty the default AWS
	// credential chain is used.
	S3AccessKey string `split_words:"true"`
	S3SecretKey string `split_words:"true"`

	// DashboardCacheTTL is how long computed dashboards stay memoized.
	DashboardCacheTTL time.Duration `required:"true" split_words:"true" default:"30m"`

	// HTTPServerShutdownTimeout is the timeout for the HTTP server to shut down gracefully.
	HTTPServerShutdownTimeout time.Duration `required:"true" split_words:"true" default:"60s"`

	// WorkerEnabled starts the cache warm worker.
	WorkerEnabled bool `split_words:"true"`

	// WorkerInterval describes the interval in-between different batches
	WorkerInterval time.Duration `required:"true" split_words:"true" default:"30m"`

	// WorkerSeparation describes the separation time in-between different seasons
	WorkerSeparation time.Duration `required:"true" split_words:"true" default:"1s"`
}

type Config struct {
	// ConfigSpec is the configuration specification injected to the config.
	ConfigSpec

	// AppContext is the application context
	AppContext appcontext.Ctx
}
