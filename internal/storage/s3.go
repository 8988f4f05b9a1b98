package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsCfg "github.com/aws/aws-sdk-go-v2/config" // Alias config to avoid clash
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/alcyxob/fitcoach/internal/config"
)

// objectGetter is the part of *s3.Client the source needs.
type objectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// s3Source reads objects from an S3-compatible bucket.
type s3Source struct {
	client     objectGetter
	bucketName string
	prefix     string
	logger     *slog.Logger
}

// NewS3Source creates a Source over cfg's bucket. Keys are prefix + name.
func NewS3Source(ctx context.Context, cfg config.S3Config, prefix string, logger *slog.Logger) (Source, error) {
	if logger == nil {
		logger = slog.Default()
	}

	opts := []func(*awsCfg.LoadOptions) error{awsCfg.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsCfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")))
	}
	awsSDKConfig, err := awsCfg.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		logger.Error("failed to load AWS SDK config for S3", slog.Any("error", err))
		return nil, err
	}

	endpoint := endpointURL(cfg.Endpoint, cfg.UseSSL)
	// Path-style addressing is required by most S3-compatible services (MinIO).
	client := s3.NewFromConfig(awsSDKConfig, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
		o.UsePathStyle = true
	})

	logger.Info("S3 source initialized",
		slog.String("endpoint", endpoint),
		slog.String("bucket", cfg.BucketName),
		slog.String("prefix", prefix),
	)
	return newS3Source(client, cfg.BucketName, prefix, logger), nil
}

func newS3Source(client objectGetter, bucket, prefix string, logger *slog.Logger) *s3Source {
	return &s3Source{client: client, bucketName: bucket, prefix: prefix, logger: logger}
}

// endpointURL adds a scheme to bare host:port endpoints.
func endpointURL(endpoint string, useSSL bool) string {
	if endpoint == "" || strings.Contains(endpoint, "://") {
		return endpoint
	}
	if useSSL {
		return "https://" + endpoint
	}
	return "http://" + endpoint
}

func (s *s3Source) key(name string) string {
	if s.prefix == "" {
		return name
	}
	return path.Join(s.prefix, name)
}

func (s *s3Source) Location(name string) string {
	return "s3://" + s.bucketName + "/" + s.key(name)
}

func (s *s3Source) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	key := s.key(name)
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		var notFound *types.NotFound
		if errors.As(err, &noKey) || errors.As(err, &notFound) {
			return nil, fmt.Errorf("%w: %s", ErrObjectNotFound, s.Location(name))
		}
		s.logger.Error("failed to get object",
			slog.String("bucket", s.bucketName),
			slog.String("key", key),
			slog.Any("error", err),
		)
		return nil, err
	}
	return out.Body, nil
}
