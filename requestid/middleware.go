package requestid

import (
	"net/http"
	"strings"
)

// Option configures the middleware.
type Option func(h *Handler)

// WithObserver registers a callback invoked once per request after
// reconciliation and before the wrapped handler runs.
func WithObserver(fn func(r *http.Request, res Result)) Option {
	return func(h *Handler) {
		h.observer = fn
	}
}

// Handler ensures every request and response carries a unique request ID.
type Handler struct {
	next       http.Handler
	header     string
	reconciler *Reconciler
	observer   func(r *http.Request, res Result)
}

// NewHandler wraps next.
func NewHandler(next http.Handler, cfg Config, opts ...Option) *Handler {
	h := &Handler{
		next:       next,
		header:     cfg.Header(),
		reconciler: NewReconciler(cfg),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Middleware returns a middleware constructor usable with gorilla/mux, chi or
// plain handler wrapping.
func Middleware(cfg Config, opts ...Option) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return NewHandler(next, cfg, opts...)
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Repeated header lines are one comma separated list.
	values := r.Header.Values(h.header)
	res := h.reconciler.Reconcile(strings.Join(values, separator), len(values) > 0)

	r.Header.Set(h.header, res.Value)
	r = r.WithContext(NewContext(r.Context(), res.Value))
	w.Header().Set(h.header, res.Value)

	if h.observer != nil {
		h.observer(r, res)
	}

	defer func() {
		if rec := recover(); rec != nil {
			// An outer recovery writes its response through w.
			w.Header().Set(h.header, res.Value)
			panic(rec)
		}
	}()

	h.next.ServeHTTP(&responseWriter{ResponseWriter: w, header: h.header, value: res.Value}, r)
}
