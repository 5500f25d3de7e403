package appconfig

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"

	"courtside.dev/backend/internal/app/appcontext"
)

const EnvPrefix = "courtside"

func Parse(ctx appcontext.Ctx) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	var spec ConfigSpec
	if err := envconfig.Process(EnvPrefix, &spec); err != nil {
		_ = envconfig.Usage(EnvPrefix, &spec)
		return nil, fmt.Errorf("failed to parse configuration: %w. See internal/app/appconfig/spec.go for the available options", err)
	}

	return &Config{
		ConfigSpec: spec,
		AppContext: ctx,
	}, nil
}
