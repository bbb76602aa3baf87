// Package httpapi hosts the upload slot over HTTP: a thin Gin surface
// that turns one session.Session into the JSON upload page.
//
// Routes:
//
//	POST   /api/v1/network          ingest a file (multipart field "file",
//	                                or a raw body with X-Filename); 201
//	                                with the summary block
//	GET    /api/v1/network          current summary, 404 when empty
//	GET    /api/v1/network/payload  opaque serialized payload download
//	POST   /api/v1/network/restore  round-trip through the payload; 410
//	                                and a cleared slot when it is unusable
//	DELETE /api/v1/network          clear, 204, idempotent
//	GET    /healthz                 liveness
//	GET    /metrics                 Prometheus exposition
//
// Every response carries an X-Request-ID (caller's, or a fresh UUID), and
// the mutating routes share one token-bucket rate limiter. Serve runs the
// listener under an errgroup and drains it when the context ends.
package httpapi
