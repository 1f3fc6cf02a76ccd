package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/MKhiriev/clip-keeper/internal/config"
	"github.com/MKhiriev/clip-keeper/internal/logger"
)

// s3API is the subset of *s3.Client used here.
type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// s3SnapshotBlobStore keeps payload bodies in an S3-compatible bucket
// (AWS, MinIO, ...).
type s3SnapshotBlobStore struct {
	client s3API
	bucket string
	logger *logger.Logger
}

// NewS3SnapshotBlobStore builds a [SnapshotBlobStore] from static
// credentials. A non-empty endpoint switches to path-style addressing so
// self-hosted stores work.
func NewS3SnapshotBlobStore(ctx context.Context, cfg config.S3, log *logger.Logger) (SnapshotBlobStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("error loading s3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	log.Info().Str("bucket", cfg.Bucket).Msg("snapshot payloads will be stored in s3")
	return newS3SnapshotBlobStore(client, cfg.Bucket, log), nil
}

func newS3SnapshotBlobStore(client s3API, bucket string, log *logger.Logger) *s3SnapshotBlobStore {
	return &s3SnapshotBlobStore{client: client, bucket: bucket, logger: log}
}

func (s *s3SnapshotBlobStore) PutPayload(ctx context.Context, key string, body []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
		ContentType:   aws.String("application/json"),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*s3SnapshotBlobStore.PutPayload").Str("key", key).Msg("put object failed")
		return fmt.Errorf("error putting payload %q: %w", key, err)
	}
	return nil
}

func (s *s3SnapshotBlobStore) GetPayload(ctx context.Context, key string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, ErrSnapshotNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*s3SnapshotBlobStore.GetPayload").Str("key", key).Msg("get object failed")
		return nil, fmt.Errorf("error getting payload %q: %w", key, err)
	}
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading payload %q: %w", key, err)
	}
	return body, nil
}

func (s *s3SnapshotBlobStore) DeletePayload(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("error deleting payload %q: %w", key, err)
	}
	return nil
}
