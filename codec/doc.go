// SPDX-License-Identifier: MIT
// Package codec serializes sparse matrices into self-describing binary
// payloads and decodes them back.
//
// Two strategies exist, each behind its own 4-byte magic:
//
//	"SNAC"  compact COO records, the primary format; lossless, preserves
//	        duplicate entries and their order exactly.
//	"SNAD"  dense fallback framing a gonum mat.Dense binary body; lossy
//	        for duplicates and explicit zeros, kept for payloads written
//	        by dense-producing tools.
//
// Decode tries the strategies in declaration order. A recognized magic is
// authoritative: corruption inside a recognized frame reports ErrCorrupt
// rather than falling through, and a payload no strategy recognizes
// reports ErrUndecodable. Callers that persist payloads treat either as
// "the stored state is unusable".
//
// All functions are pure and safe for concurrent use.
package codec
