// Package sna is the ingestion core of a social-network decision-support
// tool: it turns a Matrix Market upload into a validated in-memory network,
// keeps the result cached by content digest, and serves it back to whatever
// front end asks.
//
// 🚀 What does it do?
//
//	A small, deterministic pipeline that brings together:
//		• Parsing: Matrix Market coordinate text → sparse triplet matrix
//		• Building: triplets → undirected (or directed) network, loops counted
//		• Validation: symmetry, self-loops, connectivity, density
//		• Caching: SHA-256 digest + binary payload, restore without re-upload
//		• Hosting: a JSON upload API and a CLI for offline inspection
//
// ✨ Why this shape?
//
//   - One upload slot per session – replaced wholesale, cleared explicitly
//   - Explicit errors – parse failures carry the offending line number
//   - Deterministic everywhere – same bytes, same graph, same report
//   - Restore never lies – a corrupt payload clears itself instead of
//     producing a half-built network
//
// The pipeline, left to right:
//
//	bytes ──▶ mtx ──▶ network ──▶ validate
//	  │                              │
//	  └──▶ session (digest, payload, derived results) ◀──┘
//
// Subpackages:
//
//	mtx/      — coordinate-format parsing, formatting, synthetic generators
//	network/  — the Graph type and the matrix→graph builder
//	validate/ — structural diagnostics and summary statistics
//	codec/    — payload encoding (sparse primary, dense fallback)
//	store/    — session payload stores (memory, embedded Badger)
//	session/  — the content-addressed upload slot
//	config/   — defaults < YAML < SNA_* environment, validated
//	logging/  — slog construction and context carry
//	httpapi/  — Gin host exposing upload/summary/restore/clear
//	cmd/sna   — Cobra CLI: inspect, generate, serve
//
//	go get github.com/HiddeFranke/Social-Network-Analysis---Group-Robbert1
package sna
