// Copyright (c) 2025 The dart Authors
// SPDX-License-Identifier: MIT

package dart

import (
	"bytes"
	"iter"
)

// Builder ingests (key, value) pairs in strictly ascending
// lexicographic order and incrementally minimizes the resulting
// automaton, maintaining a "dangling path" of not-yet-frozen states
// mirroring the common prefix shared with the previous key. Finish
// freezes the remaining path and registers the root.
type Builder[I Unsigned, O Value[O]] struct {
	reg         *registry[I, O]
	dangling    []danglingState[I, O]
	previousKey []byte
	haveKey     bool
	finished    bool
	root        I
}

// NewBuilder returns an empty Builder ready to receive keys in
// ascending order.
func NewBuilder[I Unsigned, O Value[O]]() *Builder[I, O] {
	return &Builder[I, O]{
		reg:      newRegistry[I, O](),
		dangling: []danglingState[I, O]{{}},
	}
}

// Insert consumes the next key in the stream. Keys must be strictly
// greater than the previous key inserted; violating that returns a
// *Error with Kind Duplicate or OutOfOrder and leaves the Builder
// unusable for further inserts.
func (b *Builder[I, O]) Insert(key []byte, value O) error {
	if b.finished {
		panic("dart: Insert called after Finish")
	}

	if b.haveKey {
		switch bytes.Compare(key, b.previousKey) {
		case 0:
			return errDuplicate(key)
		case -1:
			return errOutOfOrder(key, b.previousKey)
		}
	}

	if len(key) == 0 {
		// Legal only as the very first key (lexicographically
		// minimal); validation above already rejected any later
		// empty or out-of-order key.
		root := &b.dangling[0]
		root.st.terminal = true
		root.st.finalOutput = value
		b.haveKey = true
		b.previousKey = nil
		return nil
	}

	remaining := value
	j := 0
	for j < len(b.dangling) && j < len(key) {
		arc := b.dangling[j].lastArc
		if arc == nil || arc.label != key[j] {
			break
		}
		p := arc.output.Prefix(remaining)
		diff := arc.output.Inverse(p)
		remaining = remaining.Inverse(p)
		arc.output = p
		b.dangling[j+1].redistributeOutput(diff)
		j++
	}
	prefixLen := j

	if err := b.freezeDownTo(prefixLen + 1); err != nil {
		return err
	}

	top := &b.dangling[len(b.dangling)-1]
	top.lastArc = &danglingArc[O]{label: key[prefixLen], output: remaining}
	for i := prefixLen + 1; i < len(key); i++ {
		b.dangling = append(b.dangling, danglingState[I, O]{
			lastArc: &danglingArc[O]{label: key[i]},
		})
	}
	b.dangling = append(b.dangling, danglingState[I, O]{
		st: state[I, O]{terminal: true},
	})

	b.haveKey = true
	b.previousKey = append(b.previousKey[:0], key...)
	return nil
}

// freezeDownTo registers dangling states from the deepest down to
// (but not including) targetLen, affixing each into its predecessor's
// last arc, leaving exactly targetLen positions on the path.
func (b *Builder[I, O]) freezeDownTo(targetLen int) error {
	for len(b.dangling) > targetLen {
		k := len(b.dangling) - 1
		deepest := b.dangling[k]
		if deepest.lastArc != nil {
			panic("dart: freezing a state with an unresolved last arc")
		}
		idx, err := b.reg.register(deepest.st)
		if err != nil {
			return err
		}
		prec := &b.dangling[k-1]
		if prec.lastArc == nil {
			panic("dart: preceding dangling state has no last arc to affix")
		}
		prec.affixLast(idx)
		b.dangling = b.dangling[:k]
	}
	return nil
}

// Finish freezes every remaining dangling state and registers the
// root, returning its index. Finish may be called at most once.
func (b *Builder[I, O]) Finish() (I, error) {
	if b.finished {
		panic("dart: Finish called twice")
	}
	if err := b.freezeDownTo(1); err != nil {
		return 0, err
	}
	rootIdx, err := b.reg.register(b.dangling[0].st)
	if err != nil {
		return 0, err
	}
	b.root = rootIdx
	b.finished = true
	return rootIdx, nil
}

// FromSeq builds a Builder from a pre-sorted sequence of (key, value)
// pairs in one shot, returning the finished Builder and its root
// index.
func FromSeq[I Unsigned, O Value[O]](seq iter.Seq2[[]byte, O]) (*Builder[I, O], I, error) {
	b := NewBuilder[I, O]()
	for k, v := range seq {
		if err := b.Insert(k, v); err != nil {
			return nil, 0, err
		}
	}
	root, err := b.Finish()
	if err != nil {
		return nil, 0, err
	}
	return b, root, nil
}
