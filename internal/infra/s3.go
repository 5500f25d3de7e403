package infra

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"courtside.dev/backend/internal/app/appconfig"
	"courtside.dev/backend/internal/dataset"
)

// ObjectStorage builds an S3 client when the dataset lives in object storage, and
// returns a nil getter otherwise.
func ObjectStorage(conf *appconfig.Config) (dataset.ObjectGetter, error) {
	if !dataset.IsObjectStorage(conf.DatasetSource) {
		return nil, nil
	}

	opts := []func(*config.LoadOptions) error{
		config.WithRegion(conf.S3Region),
	}
	if conf.S3AccessKey != "" || conf.S3SecretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(conf.S3AccessKey, conf.S3SecretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load aws config")
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if conf.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(conf.S3Endpoint)
		}
		o.UsePathStyle = conf.S3UsePathStyle
	})

	log.Info().
		Str("region", conf.S3Region).
		Str("endpoint", conf.S3Endpoint).
		Msg("infra: s3: object storage client created")

	return client, nil
}
