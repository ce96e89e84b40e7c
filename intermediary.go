// Copyright (c) 2025 The dart Authors
// SPDX-License-Identifier: MIT

package dart

import "github.com/arkellis/dart/internal/segment"

// FromBuilder packs a finished Builder's minimized state graph into an
// FST. Builder.Finish must already have been called. The packer never
// returns a partially populated FST: on error the caller must discard
// both the Builder and the returned nil FST.
func FromBuilder[I Unsigned, O Value[O]](b *Builder[I, O]) (*FST[I, O], error) {
	if !b.finished {
		panic("dart: FromBuilder called before Builder.Finish")
	}

	states := b.reg.states
	list := segment.New()
	fst := &FST[I, O]{stateOutput: make(map[I]O)}
	growArrays(fst, list.Len())

	assigned := make([]bool, len(states))
	base := make([]I, len(states))

	rootBase, err := settleState(list, fst, &states[b.root])
	if err != nil {
		return nil, err
	}
	if rootBase != 0 {
		panic("dart: root did not settle at base 0")
	}
	assigned[b.root] = true
	base[b.root] = rootBase

	rootTerm := classify(&states[b.root])
	fst.stipe[0].terminal = rootTerm
	if rootTerm == TerminalInner {
		fst.stateOutput[0] = states[b.root].finalOutput
	}

	stack := []I{b.root}
	for len(stack) > 0 {
		sID := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		s := &states[sID]
		sBase := base[sID]

		for _, tr := range s.transitions {
			t := tr.dest
			tState := &states[t]
			terminal := classify(tState)

			e := uint64(sBase) + 1 + uint64(tr.label)
			growArrays(fst, int(e)+1)

			fst.output[e] = tr.output
			fst.stipe[e] = stipe{check: tr.label, terminal: terminal}

			if assigned[t] {
				fst.next[e] = base[t]
				continue
			}

			tBase, err := settleState(list, fst, tState)
			if err != nil {
				return nil, err
			}
			assigned[t] = true
			base[t] = tBase
			fst.next[e] = tBase
			if terminal == TerminalInner {
				fst.stateOutput[tBase] = tState.finalOutput
			}
			stack = append(stack, t)
		}
	}

	return fst, nil
}

func classify[I Unsigned, O Value[O]](s *state[I, O]) Terminal {
	if !s.terminal {
		return TerminalNot
	}
	if s.finalOutput.IsZero() {
		return TerminalEmpty
	}
	return TerminalInner
}

func growArrays[I Unsigned, O Value[O]](f *FST[I, O], n int) {
	for len(f.stipe) < n {
		var zero O
		f.stipe = append(f.stipe, stipe{})
		f.next = append(f.next, 0)
		f.output = append(f.output, zero)
	}
}

// settleState asks the free list for a base admitting st's own label
// set, expanding the pool and the FST's arrays until one is found, and
// fails with OutOfBounds if the resulting base exceeds what I can
// address.
func settleState[I Unsigned, O Value[O]](list *segment.List, fst *FST[I, O], st *state[I, O]) (I, error) {
	symbols := make([]byte, len(st.transitions))
	for i, t := range st.transitions {
		symbols[i] = t.label
	}

	for {
		b, ok := list.Settle(symbols)
		if ok {
			growArrays(fst, list.Len())
			bound := uint64(maxOf[I]())
			if uint64(b) > bound {
				return 0, errOutOfBounds(uint64(b), bound)
			}
			return I(b), nil
		}
		list.Expand()
		growArrays(fst, list.Len())
	}
}
