// Package session: the cached-upload slot and its lifecycle.

package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/HiddeFranke/Social-Network-Analysis---Group-Robbert1/codec"
	"github.com/HiddeFranke/Social-Network-Analysis---Group-Robbert1/mtx"
	"github.com/HiddeFranke/Social-Network-Analysis---Group-Robbert1/network"
	"github.com/HiddeFranke/Social-Network-Analysis---Group-Robbert1/store"
	"github.com/HiddeFranke/Social-Network-Analysis---Group-Robbert1/validate"
)

// Session is the single cached-upload slot. Zero value is not usable;
// construct with New. All methods are safe for concurrent use; mutators
// serialize on the write lock.
type Session struct {
	mu  sync.RWMutex
	st  store.Store
	log *slog.Logger

	netOpts []network.Option
	valOpts []validate.Option

	// memo caches the diagnosis per digest; nil when disabled. Entries are
	// content-derived, so they survive Clear.
	memo *lru.Cache[Digest, memoEntry]

	cur     *state         // nil when the slot is empty
	results map[string]any // derived artifacts, invalidated with the slot
	epoch   int            // bumped by Clear; UI widget identity
}

// New builds a session on top of st. A nil st falls back to the in-memory
// store, which matches the session-scoped lifetime anyway.
func New(st store.Store, opts ...Option) *Session {
	if st == nil {
		st = store.NewMemory()
	}
	o := gatherOptions(opts...)

	s := &Session{
		st:      st,
		log:     o.logger,
		netOpts: o.netOpts,
		valOpts: o.valOpts,
		results: make(map[string]any),
	}
	if o.memoSize > 0 {
		// The option guard keeps memoSize non-negative, so New cannot fail.
		s.memo, _ = lru.New[Digest, memoEntry](o.memoSize)
	}

	return s
}

// payloadKey is the store key for one upload's encoded payload.
func payloadKey(d Digest) string { return "payload/" + string(d) }

// Load ingests one uploaded file.
//
// The same digest as the current slot is a fast path: nothing is
// re-parsed, the display name is refreshed, and the existing summary comes
// back with Reused set. New content runs the full pipeline; only after
// every step has succeeded is the slot replaced and the derived-result
// registry dropped. Any failure (parse, build, persist) leaves the
// previous network current and returns the error untouched, so a
// *mtx.ParseError surfaces with its line number intact.
func (s *Session) Load(ctx context.Context, name string, raw []byte) (*LoadResult, error) {
	dg := Hash(raw)

	s.mu.Lock()
	defer s.mu.Unlock()

	// --- Stage 1: change detection -------------------------------------
	if s.cur != nil && s.cur.up.Digest == dg {
		s.cur.up.Name = name
		s.log.Debug("upload unchanged", "name", name, "digest", dg.Short())

		return &LoadResult{Upload: s.cur.up, Report: s.cur.report, Stats: s.cur.stats, Reused: true}, nil
	}

	// --- Stage 2: parse, build, validate -------------------------------
	m, err := mtx.Parse(raw)
	if err != nil {
		return nil, err
	}
	g, brep, err := network.Build(m, s.netOpts...)
	if err != nil {
		return nil, err
	}
	rep, stats := s.diagnose(dg, m, g)

	// --- Stage 3: persist, then replace wholesale ----------------------
	payload, err := codec.Encode(m)
	if err != nil {
		return nil, fmt.Errorf("session: encode payload: %w", err)
	}
	if err := s.st.Put(ctx, payloadKey(dg), payload); err != nil {
		return nil, fmt.Errorf("session: persist payload: %w", err)
	}
	if s.cur != nil {
		// Best effort; the old payload is unreachable either way.
		_ = s.st.Delete(ctx, payloadKey(s.cur.up.Digest))
	}

	s.cur = &state{
		up:     Upload{Name: name, Digest: dg, Size: len(raw)},
		matrix: m,
		graph:  g,
		report: rep,
		stats:  stats,
	}
	s.results = make(map[string]any)

	s.log.Info("network loaded",
		"name", name,
		"digest", dg.Short(),
		"nodes", stats.Nodes,
		"edges", stats.Edges,
		"components", stats.Components,
		"self_loops", brep.SelfLoops,
		"duplicates_merged", brep.DuplicatesMerged,
		"warnings", len(rep.Warnings),
	)

	return &LoadResult{Upload: s.cur.up, Report: rep, Stats: stats}, nil
}

// Restore rebuilds graph, report and stats from the persisted payload.
//
// An unusable payload (missing, unrecognized, corrupt, or a decoded matrix
// the builder rejects) wraps into *RestoreError, clears the entire session
// first, and returns the error; the caller starts from an empty slot. A
// canceled context aborts without clearing: cancellation says nothing
// about the payload's health.
func (s *Session) Restore(ctx context.Context) (*LoadResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cur == nil {
		return nil, ErrEmpty
	}
	dg := s.cur.up.Digest

	payload, err := s.st.Get(ctx, payloadKey(dg))
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("session: restore aborted: %w", err)
		}

		return nil, s.failRestore(ctx, dg, err)
	}
	m, err := codec.Decode(payload)
	if err != nil {
		return nil, s.failRestore(ctx, dg, err)
	}
	g, _, err := network.Build(m, s.netOpts...)
	if err != nil {
		return nil, s.failRestore(ctx, dg, err)
	}
	rep, stats := s.diagnose(dg, m, g)

	s.cur.matrix = m
	s.cur.graph = g
	s.cur.report = rep
	s.cur.stats = stats

	s.log.Info("session restored", "digest", dg.Short(), "nodes", stats.Nodes, "edges", stats.Edges)

	return &LoadResult{Upload: s.cur.up, Report: rep, Stats: stats}, nil
}

// failRestore clears the session and wraps the cause. Callers return the
// result directly.
func (s *Session) failRestore(ctx context.Context, dg Digest, cause error) error {
	s.clearLocked(ctx)
	s.log.Error("session restore failed, state cleared", "digest", dg.Short(), "err", cause)

	return &RestoreError{Digest: dg, Err: cause}
}

// Clear empties the slot: payload, metadata, graph, report, stats and
// every derived result go away, and the widget epoch is bumped so a UI
// collaborator remakes its upload widget. Idempotent; clearing an empty
// session still bumps the epoch. The returned error reports a failed
// payload delete, which never blocks the in-memory reset.
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.clearLocked(ctx)
	s.log.Info("session cleared", "epoch", s.epoch)

	return err
}

// clearLocked does the reset under an already-held write lock.
func (s *Session) clearLocked(ctx context.Context) error {
	var err error
	if s.cur != nil {
		err = s.st.Delete(ctx, payloadKey(s.cur.up.Digest))
	}
	s.cur = nil
	s.results = make(map[string]any)
	s.epoch++

	return err
}

// diagnose returns the validation report and stats for (dg, m, g),
// consulting the memo first. Hits skip the entry scan and the component
// walk entirely.
func (s *Session) diagnose(dg Digest, m *mtx.SparseMatrix, g *network.Graph) (*validate.Report, validate.Stats) {
	if s.memo != nil {
		if ent, ok := s.memo.Get(dg); ok {
			return ent.report, ent.stats
		}
	}

	rep := validate.Validate(m, g, s.valOpts...)
	stats := validate.ComputeStats(g, rep.Components)
	if s.memo != nil {
		s.memo.Add(dg, memoEntry{report: rep, stats: stats})
	}

	return rep, stats
}

// Current returns the slot's upload metadata, false when empty.
func (s *Session) Current() (Upload, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cur == nil {
		return Upload{}, false
	}

	return s.cur.up, true
}

// Graph returns the current graph, nil when the slot is empty. Callers
// treat it as read-only.
func (s *Session) Graph() *network.Graph {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cur == nil {
		return nil
	}

	return s.cur.graph
}

// Report returns the current validation report, nil when empty. Read-only.
func (s *Session) Report() *validate.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cur == nil {
		return nil
	}

	return s.cur.report
}

// Stats returns the current stats block, false when empty.
func (s *Session) Stats() (validate.Stats, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cur == nil {
		return validate.Stats{}, false
	}

	return s.cur.stats, true
}

// Payload returns the persisted encoded payload for the current upload.
// ErrEmpty when the slot is empty; store errors pass through wrapped.
func (s *Session) Payload(ctx context.Context) ([]byte, error) {
	s.mu.RLock()
	if s.cur == nil {
		s.mu.RUnlock()

		return nil, ErrEmpty
	}
	key := payloadKey(s.cur.up.Digest)
	s.mu.RUnlock()

	payload, err := s.st.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("session: payload: %w", err)
	}

	return payload, nil
}

// Epoch returns the widget epoch: it changes exactly when Clear runs, and
// UI collaborators key their upload-widget identity on it.
func (s *Session) Epoch() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.epoch
}

// PutResult parks a derived artifact under key. The registry belongs to
// the current upload: Load with new content, Clear, and failed Restore all
// empty it.
func (s *Session) PutResult(key string, v any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[key] = v
}

// Result retrieves a derived artifact.
func (s *Session) Result(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.results[key]

	return v, ok
}

// ResultKeys lists the registry keys in ascending order.
func (s *Session) ResultKeys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.results))
	for k := range s.results {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
