package s3props

import (
	"fmt"

	"github.com/magiconair/properties"
)

// SourceName is the name the fetched properties are registered under.
const SourceName = "s3PropertySource"

// Encoding selects how fetched bytes are decoded before parsing.
type Encoding = properties.Encoding

const (
	// ISO88591 is the classic properties file encoding and the default.
	ISO88591 Encoding = properties.ISO_8859_1
	UTF8     Encoding = properties.UTF8
)

// PropertySource holds the key/value pairs parsed from one fetched object.
// It is never modified after Parse returns.
type PropertySource struct {
	props *properties.Properties
}

var _ Source = (*PropertySource)(nil)

type parseOpts struct {
	encoding Encoding
}

// ParseOpt configures Parse.
type ParseOpt func(*parseOpts)

// WithParseEncoding overrides the ISO-8859-1 default.
func WithParseEncoding(enc Encoding) ParseOpt {
	return func(o *parseOpts) {
		o.encoding = enc
	}
}

// Parse decodes properties text: comment lines start with # or !, a trailing
// backslash continues a line, and keys are separated from values by =, : or
// whitespace. The last occurrence of a duplicate key wins. Placeholders in
// values are kept verbatim.
func Parse(data []byte, opts ...ParseOpt) (*PropertySource, error) {
	o := parseOpts{encoding: ISO88591}
	for _, opt := range opts {
		opt(&o)
	}

	loader := &properties.Loader{
		Encoding:         o.encoding,
		DisableExpansion: true,
	}
	p, err := loader.LoadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return &PropertySource{props: p}, nil
}

func (s *PropertySource) Name() string { return SourceName }

// Get returns the value for name. A missing key is reported with false and is
// not an error.
func (s *PropertySource) Get(name string) (string, bool) {
	return s.props.Get(name)
}

// Keys returns every key. Callers must not rely on the order.
func (s *PropertySource) Keys() []string {
	return s.props.Keys()
}

func (s *PropertySource) Len() int {
	return s.props.Len()
}
