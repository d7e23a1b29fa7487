// Package requestid provides HTTP middleware that guarantees every request
// carries at least one unique identifier in the X-Request-ID header.
//
// The header value may hold several identifiers joined with commas, as set by
// proxies, load balancers and upstream services. Existing values are kept as
// they are. A fresh UUID (version 4) is appended only when none of the
// existing values is unique. A value is unique when it is a canonical
// version 4 UUID, or when it contains the configured trusted prefix.
//
// Example usage:
//
//	cfg := requestid.Config{UniqueValuePrefix: "LB-"}
//	router.Use(requestid.Middleware(cfg))
//
//	// In downstream handlers:
//	id, ok := requestid.FromContext(r.Context())
//	if ok {
//		logger.Info("handling request", zap.String("request_id", id))
//	}
//
// The reconciliation is also available without any HTTP host:
//
//	value := requestid.Reconcile("client-value", true, "")
//	// "client-value,0b8a2c5e-3f1d-4e6a-9c7b-5d2e1f0a3b4c"
package requestid
