package requestid

import "net/http"

// DefaultHeaderName is the header carrying request IDs.
const DefaultHeaderName = "X-Request-ID"

// Config holds process-wide request ID settings. It is built once at startup
// and must not be modified after it is handed to NewReconciler or Middleware.
type Config struct {
	// HeaderName defaults to DefaultHeaderName.
	HeaderName string
	// UniqueValuePrefix marks values assigned by components already known to
	// produce unique IDs. Empty means only UUIDs count as unique.
	UniqueValuePrefix string
	// Generator defaults to NewUUID. It must return values that IsUnique accepts.
	Generator Generator
}

// Header returns the canonical header name.
func (c Config) Header() string {
	if c.HeaderName == "" {
		return http.CanonicalHeaderKey(DefaultHeaderName)
	}
	return http.CanonicalHeaderKey(c.HeaderName)
}

func (c Config) generator() Generator {
	if c.Generator == nil {
		return NewUUID
	}
	return c.Generator
}
