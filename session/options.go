// Package session: functional configuration.

package session

import (
	"log/slog"

	"github.com/HiddeFranke/Social-Network-Analysis---Group-Robbert1/logging"
	"github.com/HiddeFranke/Social-Network-Analysis---Group-Robbert1/network"
	"github.com/HiddeFranke/Social-Network-Analysis---Group-Robbert1/validate"
)

// DefaultMemoSize is the digest→diagnosis memo capacity. Eight covers a
// user flipping between a handful of files without re-validating each
// return visit.
const DefaultMemoSize = 8

const panicMemoSizeInvalid = "session: WithMemoSize: size must be >= 0"

// Option configures New.
type Option func(*Options)

// Options stores the effective session configuration.
type Options struct {
	logger   *slog.Logger
	netOpts  []network.Option
	valOpts  []validate.Option
	memoSize int
}

// WithLogger attaches a logger for load/restore/clear events. Nil keeps
// the default silent logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithDirected controls how entries become edges for every build this
// session performs.
func WithDirected(directed bool) Option {
	return func(o *Options) {
		if directed {
			o.netOpts = append(o.netOpts, network.WithDirected())

			return
		}
		o.netOpts = append(o.netOpts, network.WithUndirected())
	}
}

// WithTolerance overrides the symmetry tolerance used in validation.
// Panics on invalid values, at configuration time.
func WithTolerance(tol float64) Option {
	vo := validate.WithTolerance(tol)

	return func(o *Options) { o.valOpts = append(o.valOpts, vo) }
}

// WithMemoSize sets the digest→diagnosis memo capacity. Zero disables the
// memo; negative panics.
func WithMemoSize(n int) Option {
	if n < 0 {
		panic(panicMemoSizeInvalid)
	}

	return func(o *Options) { o.memoSize = n }
}

// gatherOptions resolves setters against defaults, last-writer-wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		logger:   logging.Nop(),
		memoSize: DefaultMemoSize,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
