// Package httpapi: functional configuration.

package httpapi

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/HiddeFranke/Social-Network-Analysis---Group-Robbert1/logging"
)

const (
	// DefaultAddr is the listen address Serve binds when none is given.
	DefaultAddr = ":8080"

	// DefaultMaxUploadBytes caps one upload body. Coordinate text for even
	// a huge network fits well under 32 MiB.
	DefaultMaxUploadBytes = int64(32 << 20)

	// DefaultRateRPS refills the mutating-route bucket; DefaultRateBurst
	// is its depth. Uploads are a human activity, not a firehose.
	DefaultRateRPS   = 10.0
	DefaultRateBurst = 20

	// DefaultShutdownGrace bounds how long Serve waits for in-flight
	// requests once its context ends.
	DefaultShutdownGrace = 5 * time.Second
)

const (
	panicAddrEmpty      = "httpapi: WithAddr: addr must be non-empty"
	panicMaxBytesRange  = "httpapi: WithMaxUploadBytes: limit must be > 0"
	panicRateLimitRange = "httpapi: WithRateLimit: rps must be >= 0 and burst >= 1"
)

// Option configures New.
type Option func(*Options)

// Options stores the effective server configuration.
type Options struct {
	addr      string
	logger    *slog.Logger
	maxBytes  int64
	rateRPS   float64
	rateBurst int
	registry  *prometheus.Registry
	grace     time.Duration
}

// WithAddr sets the listen address for Serve. Panics on empty.
func WithAddr(addr string) Option {
	if addr == "" {
		panic(panicAddrEmpty)
	}

	return func(o *Options) { o.addr = addr }
}

// WithLogger attaches a logger for request and lifecycle events. Nil
// keeps the default silent logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMaxUploadBytes caps the accepted upload body. Panics when the
// limit is not positive.
func WithMaxUploadBytes(n int64) Option {
	if n <= 0 {
		panic(panicMaxBytesRange)
	}

	return func(o *Options) { o.maxBytes = n }
}

// WithRateLimit tunes the mutating-route token bucket: rps refill, burst
// depth. Zero rps disables limiting. Panics on a negative rps or a burst
// below one.
func WithRateLimit(rps float64, burst int) Option {
	if rps < 0 || burst < 1 {
		panic(panicRateLimitRange)
	}

	return func(o *Options) {
		o.rateRPS = rps
		o.rateBurst = burst
	}
}

// WithRegistry mounts the server's metrics on a caller-owned registry
// instead of a private one. Nil keeps the private registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(o *Options) {
		if reg != nil {
			o.registry = reg
		}
	}
}

// WithShutdownGrace bounds the drain on shutdown. Non-positive values
// keep the default.
func WithShutdownGrace(d time.Duration) Option {
	return func(o *Options) {
		if d > 0 {
			o.grace = d
		}
	}
}

// gatherOptions resolves setters against defaults, last-writer-wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		addr:      DefaultAddr,
		logger:    logging.Nop(),
		maxBytes:  DefaultMaxUploadBytes,
		rateRPS:   DefaultRateRPS,
		rateBurst: DefaultRateBurst,
		grace:     DefaultShutdownGrace,
	}
	for _, set := range user {
		set(&o)
	}
	if o.registry == nil {
		o.registry = prometheus.NewRegistry()
	}

	return o
}
