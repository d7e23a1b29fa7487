// Package ginrequestid adapts the requestid middleware to gin.
package ginrequestid

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/arun0009/request-id-header/requestid"
)

// ContextKey is the gin context key holding the request ID header value.
const ContextKey = "request_id"

// New returns a gin middleware that reconciles the request ID header, stores
// the value in the gin and request contexts and sets it on the response.
func New(cfg requestid.Config, opts ...Option) gin.HandlerFunc {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	header := cfg.Header()
	reconciler := requestid.NewReconciler(cfg)

	return func(c *gin.Context) {
		values := c.Request.Header.Values(header)
		res := reconciler.Reconcile(strings.Join(values, ","), len(values) > 0)

		c.Request.Header.Set(header, res.Value)
		c.Request = c.Request.WithContext(requestid.NewContext(c.Request.Context(), res.Value))
		c.Set(ContextKey, res.Value)
		// Set before c.Next so aborted and error responses carry it.
		c.Header(header, res.Value)

		if o.observer != nil {
			o.observer(c, res)
		}
		c.Next()
	}
}

// Get returns the request ID header value stored by New.
func Get(c *gin.Context) string {
	return c.GetString(ContextKey)
}

type options struct {
	observer func(c *gin.Context, res requestid.Result)
}

// Option configures New.
type Option func(o *options)

// WithObserver registers a callback invoked after reconciliation.
func WithObserver(fn func(c *gin.Context, res requestid.Result)) Option {
	return func(o *options) {
		o.observer = fn
	}
}
