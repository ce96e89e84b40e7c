// Copyright (c) 2025 The dart Authors
// SPDX-License-Identifier: MIT

package dart

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// transition is one outgoing arc of a builder state.
type transition[I Unsigned, O Value[O]] struct {
	label  byte
	output O
	dest   I
}

// state is a builder-side automaton state: a terminality flag, the
// tail output carried if terminal, and its outgoing arcs in
// label-ascending order. Two states are equal iff every field is
// structurally equal; that equality is the basis of minimization.
type state[I Unsigned, O Value[O]] struct {
	terminal    bool
	finalOutput O
	transitions []transition[I, O]
}

func (s *state[I, O]) equal(o *state[I, O]) bool {
	if s.terminal != o.terminal || s.finalOutput != o.finalOutput {
		return false
	}
	if len(s.transitions) != len(o.transitions) {
		return false
	}
	for i := range s.transitions {
		a, b := s.transitions[i], o.transitions[i]
		if a.label != b.label || a.output != b.output || a.dest != b.dest {
			return false
		}
	}
	return true
}

// canonicalHash computes a fast, non-cryptographic fingerprint of a
// state's full canonical form (terminal flag, final output, and the
// sorted arc list including destination indices) for use as a registry
// bucket key. Collisions are resolved by state.equal, so hash quality
// only affects performance, never correctness.
func canonicalHash[I Unsigned, O Value[O]](s *state[I, O]) uint64 {
	var b strings.Builder
	fmt.Fprintf(&b, "%v|%v|", s.terminal, s.finalOutput)
	for _, t := range s.transitions {
		fmt.Fprintf(&b, "%d:%v:%v;", t.label, t.output, t.dest)
	}
	return xxhash.Sum64String(b.String())
}

// danglingArc is an outgoing arc whose destination is not yet known
// because the subtree it leads into has not been finalized.
type danglingArc[O any] struct {
	label  byte
	output O
}

// danglingState is a builder state augmented with an optional last
// arc, the one edge on the dangling path still awaiting its
// destination.
type danglingState[I Unsigned, O Value[O]] struct {
	st      state[I, O]
	lastArc *danglingArc[O]
}

// affixLast resolves the last arc into a regular, frozen transition
// pointing at dest, and clears it.
func (d *danglingState[I, O]) affixLast(dest I) {
	d.st.transitions = append(d.st.transitions, transition[I, O]{
		label:  d.lastArc.label,
		output: d.lastArc.output,
		dest:   dest,
	})
	d.lastArc = nil
}

// redistributeOutput pushes diff into every output this state
// carries: its final output if terminal, its pending last arc if any,
// and every already-frozen transition. Used when a common-prefix walk
// extracts part of an arc's output toward the root and must preserve
// the total value reachable through this state.
func (d *danglingState[I, O]) redistributeOutput(diff O) {
	if diff.IsZero() {
		return
	}
	if d.st.terminal {
		d.st.finalOutput = d.st.finalOutput.Mappend(diff)
	}
	if d.lastArc != nil {
		d.lastArc.output = d.lastArc.output.Mappend(diff)
	}
	for i := range d.st.transitions {
		d.st.transitions[i].output = d.st.transitions[i].output.Mappend(diff)
	}
}
