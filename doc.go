// Copyright (c) 2025 The dart Authors
// SPDX-License-Identifier: MIT

// Package dart builds an immutable, minimal finite subsequential
// transducer from a sorted stream of (key, output) pairs and packs it
// into a double-array trie (DART) for fast, allocation-free lookups.
//
// The transducer maps []byte keys to values drawn from a small algebraic
// structure, a Value: something with a zero, an associative mappend,
// an inverse, and a prefix (longest-common-prefix) operation. Unsigned
// and signed integer outputs are provided out of the box.
//
// Construction streams sorted, duplicate-free keys through a Builder,
// which minimizes the automaton on the fly by sharing any suffix already
// seen verbatim elsewhere in the input. After Builder.Finish, FromBuilder
// packs the minimized graph into three parallel arrays addressed by
// base+1+label, plus a per-state output map, and returns a read-only
// FST.
//
// Keys must arrive sorted and duplicate-free; construction rejects
// anything else with a *dart.Error carrying a distinguishable Kind.
// There is no mutation after Builder.Finish and no concurrent insertion.
package dart
