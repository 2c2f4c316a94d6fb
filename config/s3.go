package config

import (
	"errors"
	"strings"
)

type S3 struct {
	AccessKey string `yaml:"s3_access_key" env:"S3_ACCESS_KEY" env-default:""`
	SecretKey string `yaml:"s3_secret_key" env:"S3_SECRET_KEY" env-default:""`
	Region    string `yaml:"s3_region" env:"S3_REGION" env-default:""`
	EndPoint  string `yaml:"s3_endpoint" env:"S3_ENDPOINT" env-default:""`
	PathStyle bool   `yaml:"s3_path_style" env:"S3_PATH_STYLE" env-default:"false"`
	Bucket    string `yaml:"s3_bucket" env:"S3_BUCKET" env-default:""`
	Key       string `yaml:"s3_key" env:"S3_KEY" env-default:"application.properties"`
	// BlobURL opens the bucket through Go CDK (s3://, file://, mem://) instead
	// of the S3 client.
	BlobURL string `yaml:"s3_blob_url" env:"S3_BLOB_URL" env-default:""`
}

var (
	ErrMissingBucket = errors.New("s3 bucket is not configured")
	ErrMissingKey    = errors.New("s3 key is not configured")
)

// Validate reports a missing bucket or key before any client is built.
func (s S3) Validate() error {
	if strings.TrimSpace(s.Bucket) == "" && strings.TrimSpace(s.BlobURL) == "" {
		return ErrMissingBucket
	}
	if strings.TrimSpace(s.Key) == "" {
		return ErrMissingKey
	}
	return nil
}
