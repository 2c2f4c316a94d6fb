package s3props

import (
	"context"
)

// Fetcher retrieves the raw content of one remote properties object.
type Fetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
	Bucket() string
	Key() string
}
