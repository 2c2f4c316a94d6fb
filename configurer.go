package s3props

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Configurer loads one remote properties object and resolves placeholders in
// application configuration records with it.
type Configurer struct {
	fetcher            Fetcher
	encoding           Encoding
	ignoreUnresolvable bool
	sources            Sources
}

// Opt configures a Configurer.
type Opt func(*Configurer)

// WithEncoding sets the encoding used to decode the fetched object.
func WithEncoding(enc Encoding) Opt {
	return func(c *Configurer) {
		c.encoding = enc
	}
}

// WithIgnoreUnresolvable leaves unknown placeholders in place instead of
// failing.
func WithIgnoreUnresolvable(ignore bool) Opt {
	return func(c *Configurer) {
		c.ignoreUnresolvable = ignore
	}
}

func NewConfigurer(f Fetcher, opts ...Opt) (*Configurer, error) {
	if f == nil {
		return nil, fmt.Errorf("%w: fetcher cannot be nil", ErrInvalidArgument)
	}
	c := &Configurer{
		fetcher:  f,
		encoding: ISO88591,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// NewS3Configurer is NewConfigurer over an S3Fetcher.
func NewS3Configurer(client S3API, bucket, key string, opts ...Opt) (*Configurer, error) {
	f, err := NewS3Fetcher(client, bucket, key)
	if err != nil {
		return nil, err
	}
	return NewConfigurer(f, opts...)
}

// Process fetches and parses the remote properties, registers them as the
// only property source and resolves placeholders in defs. Failures are
// logged and returned; there is no fallback source.
func (c *Configurer) Process(ctx context.Context, defs ...any) (*PropertySource, error) {
	logrus.Infof("Loading properties from bucket %s, key %s", c.fetcher.Bucket(), c.fetcher.Key())

	src, err := c.load(ctx)
	if err != nil {
		logrus.WithError(err).Warn("Error loading properties")
		return nil, err
	}

	sources := Sources{src}
	resolver := NewResolver(sources)
	resolver.IgnoreUnresolvable = c.ignoreUnresolvable
	if err := resolver.Resolve(defs...); err != nil {
		logrus.WithError(err).Warn("Error resolving placeholders")
		return nil, err
	}

	c.sources = sources
	logrus.Infof("Loaded %d properties from bucket %s", src.Len(), c.fetcher.Bucket())
	return src, nil
}

// MustProcess is Process for startup code: it panics on failure.
func (c *Configurer) MustProcess(ctx context.Context, defs ...any) *PropertySource {
	src, err := c.Process(ctx, defs...)
	if err != nil {
		panic(err)
	}
	return src
}

// Sources returns the sources registered by the last successful Process.
func (c *Configurer) Sources() Sources {
	return c.sources
}

func (c *Configurer) load(ctx context.Context) (*PropertySource, error) {
	data, err := c.fetcher.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return Parse(data, WithParseEncoding(c.encoding))
}
