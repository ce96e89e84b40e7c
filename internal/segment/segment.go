// Copyright (c) 2025 The dart Authors
// SPDX-License-Identifier: MIT

// Package segment's List is the double-array packer's free-list: a
// doubly-linked list over cell indices still available as a state
// base, with a "first vacancy" head so Settle can do an ascending
// first-fit scan. Availability as a transition slot (the b+1+label
// positions a settled base claims) is tracked separately by a Bits
// bitmask, since admission only needs point tests there, never a scan.
package segment

// BlockSize is the number of fresh cells Expand appends to the pool.
const BlockSize = 257

// List tracks free double-array cells for the intermediary packer.
type List struct {
	next   []int // free-list successor per cell, -1 if tail
	prev   []int // free-list predecessor per cell, -1 if head
	head   int
	tail   int
	asSlot Bits // bit i set => cell i is claimed as a transition slot
	length int
}

// New returns a List with one block of cells already available.
func New() *List {
	l := &List{head: -1, tail: -1}
	l.Expand()
	return l
}

// Len reports how many cells have been allocated so far.
func (l *List) Len() int { return l.length }

// Expand appends one more block of fresh cells to the free pool.
func (l *List) Expand() {
	start := l.length
	l.length += BlockSize
	l.next = append(l.next, make([]int, BlockSize)...)
	l.prev = append(l.prev, make([]int, BlockSize)...)
	for i := start; i < l.length; i++ {
		l.next[i] = i + 1
		l.prev[i] = i - 1
	}
	l.next[l.length-1] = -1
	if l.head == -1 {
		l.head = start
		l.prev[start] = -1
	} else {
		l.next[l.tail] = start
		l.prev[start] = l.tail
	}
	l.tail = l.length - 1
}

// UnfixedCount reports how many cells are still available as a base.
func (l *List) UnfixedCount() int {
	n := 0
	for i := l.head; i != -1; i = l.next[i] {
		n++
	}
	return n
}

func (l *List) removeFromFreeList(i int) {
	if l.prev[i] != -1 {
		l.next[l.prev[i]] = l.next[i]
	} else {
		l.head = l.next[i]
	}
	if l.next[i] != -1 {
		l.prev[l.next[i]] = l.prev[i]
	} else {
		l.tail = l.prev[i]
	}
}

// Settle finds the lowest base still available as a state such that
// base+1+label is still available as a transition slot for every
// label in symbols. It does not grow the pool; a caller whose scan
// exhausts the list without success should Expand and retry. On
// success every cell involved is marked fixed and base is returned.
func (l *List) Settle(symbols []byte) (base int, ok bool) {
	for b := l.head; b != -1; b = l.next[b] {
		admits := true
		for _, s := range symbols {
			e := uint(b + 1 + int(s))
			if e >= uint(l.length) || l.asSlot.Test(e) {
				admits = false
				break
			}
		}
		if !admits {
			continue
		}
		l.removeFromFreeList(b)
		for _, s := range symbols {
			l.asSlot.Set(uint(b + 1 + int(s)))
		}
		return b, true
	}
	return 0, false
}
