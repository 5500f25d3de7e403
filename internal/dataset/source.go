package dataset

import (
	"context"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"courtside.dev/backend/internal/model"
)

const SchemeS3 = "s3"

var ErrObjectStorageUnavailable = errors.New("dataset: source is an s3:// URI but no object storage client is configured")

// ObjectGetter is the subset of the S3 client the loader needs.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// IsObjectStorage reports whether source points to object storage rather than a local file.
func IsObjectStorage(source string) bool {
	return strings.HasPrefix(source, SchemeS3+"://")
}

// Open opens source, which is either a local path or an s3://bucket/key URI.
func Open(ctx context.Context, source string, getter ObjectGetter) (io.ReadCloser, error) {
	if !IsObjectStorage(source) {
		f, err := os.Open(source)
		if err != nil {
			return nil, errors.Wrapf(err, "dataset: failed to open %s", source)
		}
		return f, nil
	}

	if getter == nil {
		return nil, ErrObjectStorageUnavailable
	}

	u, err := url.Parse(source)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset: invalid source %s", source)
	}
	bucket, key := u.Host, strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return nil, errors.Errorf("dataset: source %s must look like s3://bucket/key", source)
	}

	out, err := getter.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			log.Error().
				Str("bucket", bucket).
				Str("key", key).
				Str("code", apiErr.ErrorCode()).
				Msg("dataset: object storage rejected the request")
		}
		return nil, errors.Wrapf(err, "dataset: failed to get %s", source)
	}
	return out.Body, nil
}

// Load opens and reads source in one go.
func Load(ctx context.Context, source string, getter ObjectGetter) ([]*model.GameRecord, error) {
	rc, err := Open(ctx, source, getter)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return Read(rc)
}
