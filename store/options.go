// Package store: functional configuration for the Badger backend.

package store

import "log/slog"

const panicDirEmpty = "store: WithDir: dir must not be empty"

// Option configures NewBadger.
type Option func(*Options)

// Options stores the effective Badger configuration.
type Options struct {
	dir        string
	syncWrites bool
	logger     *slog.Logger
}

// WithDir switches the backend from in-memory mode to a persistent
// database under dir (the CLI's explicit scratch directory). Panics on an
// empty dir; the empty value means in-memory and must stay the default.
func WithDir(dir string) Option {
	if dir == "" {
		panic(panicDirEmpty)
	}

	return func(o *Options) { o.dir = dir }
}

// WithSyncWrites makes every write wait for the OS. Pointless in
// in-memory mode; useful when a directory-backed store must survive an
// abrupt exit.
func WithSyncWrites(on bool) Option {
	return func(o *Options) { o.syncWrites = on }
}

// WithLogger routes Badger's internal chatter to l. Without it (or with
// nil) the engine is silenced, which is what a library embedding wants.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// gatherOptions resolves setters against defaults, last-writer-wins.
func gatherOptions(user ...Option) Options {
	o := Options{} // dir "": in-memory; syncWrites off; logger nil: silenced
	for _, set := range user {
		set(&o)
	}

	return o
}
