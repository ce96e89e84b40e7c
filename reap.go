// Copyright (c) 2025 The dart Authors
// SPDX-License-Identifier: MIT

package dart

import "iter"

// Reaper is the prefix-walk iterator behind FST.Reap and
// FST.ReapPastRoot. It walks a query byte by byte, yielding one
// (position, value) pair each time the walk lands on a key already
// present in the dictionary, and suspending between calls to Next so
// callers can stop early without walking the rest of the query.
type Reaper[I Unsigned, O Value[O]] struct {
	fst       *FST[I, O]
	query     []byte
	pos       int
	state     I
	out       O
	done      bool
	rootDone  bool
	skipEmpty bool
}

func newReaper[I Unsigned, O Value[O]](f *FST[I, O], query []byte, skipEmpty bool) *Reaper[I, O] {
	return &Reaper[I, O]{fst: f, query: query, skipEmpty: skipEmpty}
}

// Reap returns the prefix-walk iterator over query, including the
// empty-prefix item first if the empty string is itself a key.
func (f *FST[I, O]) Reap(query []byte) *Reaper[I, O] {
	return newReaper(f, query, false)
}

// ReapPastRoot is Reap with the empty-prefix item suppressed; its
// observable semantics are otherwise identical.
func (f *FST[I, O]) ReapPastRoot(query []byte) *Reaper[I, O] {
	return newReaper(f, query, true)
}

// Next advances the walk and returns the next (position, value) pair,
// or ok=false once the sequence is exhausted: either the query is
// consumed or a transition failed.
func (r *Reaper[I, O]) Next() (position int, value O, ok bool) {
	if r.done {
		var zero O
		return 0, zero, false
	}

	if !r.rootDone {
		r.rootDone = true
		if !r.skipEmpty {
			if term := r.fst.rootTerminal(); term.isFinal() {
				v, _ := r.fst.terminalValue(r.out, r.state, term)
				return 0, v, true
			}
		}
	}

	for r.pos < len(r.query) {
		label := r.query[r.pos]
		e := uint64(r.state) + 1 + uint64(label)
		if e >= uint64(len(r.fst.stipe)) || r.fst.stipe[e].check != label {
			r.done = true
			var zero O
			return 0, zero, false
		}
		r.out = r.out.Mappend(r.fst.output[e])
		r.state = r.fst.next[e]
		term := r.fst.stipe[e].terminal
		r.pos++
		if term.isFinal() {
			v, _ := r.fst.terminalValue(r.out, r.state, term)
			return r.pos, v, true
		}
	}

	r.done = true
	var zero O
	return 0, zero, false
}

// SizeHint reports a lower bound and an exact upper bound on the
// number of items remaining from the iterator's current position:
// the lower bound counts only the still-pending empty-prefix item (if
// any), since no further byte of the query is guaranteed to land on a
// key.
func (r *Reaper[I, O]) SizeHint() (low int, high int) {
	rootBit := 0
	if !r.skipEmpty && !r.rootDone && r.fst.rootTerminal().isFinal() {
		rootBit = 1
	}
	return rootBit, (len(r.query) - r.pos) + rootBit
}

// Seq adapts the Reaper to the idiomatic range-over-func form.
func (r *Reaper[I, O]) Seq() iter.Seq2[int, O] {
	return func(yield func(int, O) bool) {
		for {
			pos, v, ok := r.Next()
			if !ok {
				return
			}
			if !yield(pos, v) {
				return
			}
		}
	}
}
