package s3props

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

// BlobFetcher reads one object through a Go CDK bucket, which lets the same
// configurer run against s3://, file:// or mem:// URLs.
type BlobFetcher struct {
	bucket *blob.Bucket
	name   string
	key    string
}

var _ Fetcher = (*BlobFetcher)(nil)

// NewBlobFetcher wraps an open bucket. name identifies the bucket in logs and
// error messages; the caller keeps ownership of the bucket.
func NewBlobFetcher(bucket *blob.Bucket, name, key string) (*BlobFetcher, error) {
	if bucket == nil {
		return nil, fmt.Errorf("%w: bucket handle cannot be nil", ErrInvalidArgument)
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: bucket cannot be empty", ErrInvalidArgument)
	}
	if strings.TrimSpace(key) == "" {
		return nil, fmt.Errorf("%w: key cannot be empty", ErrInvalidArgument)
	}
	return &BlobFetcher{bucket: bucket, name: name, key: key}, nil
}

func (b *BlobFetcher) Bucket() string { return b.name }

func (b *BlobFetcher) Key() string { return b.key }

func (b *BlobFetcher) Fetch(ctx context.Context) ([]byte, error) {
	r, err := b.bucket.NewReader(ctx, b.key, nil)
	if err != nil {
		return nil, b.mapError(err)
	}
	defer func() {
		if err := r.Close(); err != nil {
			logrus.Errorln("Error closing blob reader", err)
		}
	}()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, b.mapError(err)
	}
	return data, nil
}

// Go CDK reports a missing bucket and a missing key with the same code, so
// both surface as a missing key.
func (b *BlobFetcher) mapError(err error) error {
	switch gcerrors.Code(err) {
	case gcerrors.NotFound:
		return fmt.Errorf("%w: document with key %s not found in %s", ErrStorageNotFound, b.key, b.name)
	default:
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
}
