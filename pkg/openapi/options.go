package openapi

// Option configures document loading and form building.
type Option func(*config)

type config struct {
	externalRefs bool
	validate     bool
	mediaTypes   []string
	maxDepth     int
}

var defaultMediaTypes = []string{
	"application/json",
	"application/x-www-form-urlencoded",
	"multipart/form-data",
}

const defaultMaxDepth = 8

func newConfig(opts []Option) config {
	cfg := config{
		mediaTypes: defaultMediaTypes,
		maxDepth:   defaultMaxDepth,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithExternalRefs allows $ref values pointing outside the document.
func WithExternalRefs(enabled bool) Option {
	return func(c *config) { c.externalRefs = enabled }
}

// WithValidation validates the document before building forms.
func WithValidation(enabled bool) Option {
	return func(c *config) { c.validate = enabled }
}

// WithMediaTypes sets the request body media types tried in order. Any other
// media type is used only when none of these is present.
func WithMediaTypes(mediaTypes ...string) Option {
	return func(c *config) {
		if len(mediaTypes) > 0 {
			c.mediaTypes = append([]string(nil), mediaTypes...)
		}
	}
}

// WithMaxDepth bounds how deep nested objects and arrays are expanded.
// Properties below the limit are skipped, which also stops recursive schemas.
func WithMaxDepth(depth int) Option {
	return func(c *config) {
		if depth > 0 {
			c.maxDepth = depth
		}
	}
}
