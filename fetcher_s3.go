package s3props

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/sirupsen/logrus"
)

// S3API is the subset of *s3.Client used by S3Fetcher.
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Fetcher reads one object from one S3 bucket.
type S3Fetcher struct {
	client S3API
	bucket string
	key    string
}

var _ Fetcher = (*S3Fetcher)(nil)

// NewS3Fetcher validates its arguments once; the returned fetcher can be used
// any number of times.
func NewS3Fetcher(client S3API, bucket, key string) (*S3Fetcher, error) {
	if client == nil {
		return nil, fmt.Errorf("%w: s3 client cannot be nil", ErrInvalidArgument)
	}
	if c, ok := client.(*s3.Client); ok && c == nil {
		return nil, fmt.Errorf("%w: s3 client cannot be nil", ErrInvalidArgument)
	}
	if strings.TrimSpace(bucket) == "" {
		return nil, fmt.Errorf("%w: bucket cannot be empty", ErrInvalidArgument)
	}
	if strings.TrimSpace(key) == "" {
		return nil, fmt.Errorf("%w: key cannot be empty", ErrInvalidArgument)
	}
	return &S3Fetcher{
		client: client,
		bucket: bucket,
		key:    key,
	}, nil
}

func (s *S3Fetcher) Bucket() string { return s.bucket }

func (s *S3Fetcher) Key() string { return s.key }

// Fetch downloads the whole object. Nothing is cached: every call issues a
// new GetObject request.
func (s *S3Fetcher) Fetch(ctx context.Context) ([]byte, error) {
	params := &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	}

	res, err := s.client.GetObject(ctx, params)
	if err != nil {
		return nil, s.mapError(err)
	}
	if res == nil || res.Body == nil {
		return nil, fmt.Errorf("%w: empty response for %s/%s", ErrStorage, s.bucket, s.key)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			logrus.Errorln("Error closing response body", err)
		}
	}()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s/%s: %w", ErrStorage, s.bucket, s.key, err)
	}
	return data, nil
}

// mapError checks NoSuchBucket before NoSuchKey.
func (s *S3Fetcher) mapError(err error) error {
	var ae smithy.APIError
	if errors.As(err, &ae) {
		switch ae.ErrorCode() {
		case "NoSuchBucket":
			return fmt.Errorf("%w: bucket %s doesn't exist: %w", ErrStorageNotFound, s.bucket, err)
		case "NoSuchKey":
			return fmt.Errorf("%w: document with key %s not found: %w", ErrStorageNotFound, s.key, err)
		}
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return fmt.Errorf("%w: %w", ErrStorage, err)
}
