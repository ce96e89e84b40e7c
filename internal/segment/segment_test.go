package segment

import "testing"

func TestSettlePicksLowestAdmittingBase(t *testing.T) {
	l := New()
	base, ok := l.Settle(nil)
	if !ok || base != 0 {
		t.Fatalf("first settle with no symbols = (%d,%v), want (0,true)", base, ok)
	}

	base, ok = l.Settle([]byte{1, 2, 3})
	if !ok {
		t.Fatal("settle should admit a fresh block")
	}
	if base == 0 {
		t.Fatal("base 0 was already fixed and must not be reused")
	}
}

func TestSettleNeverReusesAFixedSlot(t *testing.T) {
	l := New()
	claimed := make(map[int]bool)

	symbolSets := [][]byte{{10}, {0}, {10, 20, 30}, {255}, {1, 2, 3, 4, 5}, {10}}
	for _, symbols := range symbolSets {
		for i := 0; i < 10; i++ {
			base, ok := l.Settle(symbols)
			if !ok {
				// Settle never grows the pool; the packer expands and
				// retries, and so does this test.
				l.Expand()
				base, ok = l.Settle(symbols)
			}
			if !ok {
				t.Fatal("expected settle to succeed after Expand")
			}
			// Only the transition-slot cells a settled base actually
			// commits to (base+1+symbol) must stay globally unique;
			// the base value itself may legitimately coincide with an
			// address already in use elsewhere in the array.
			for _, s := range symbols {
				c := base + 1 + int(s)
				if claimed[c] {
					t.Fatalf("settle reused already-claimed cell %d (base %d, symbols %v)", c, base, symbols)
				}
				claimed[c] = true
			}
		}
	}
}

func TestSettleExhaustsListWithoutGrowing(t *testing.T) {
	l := New()
	// Claim every cell in the initial block as a base with no
	// transitions, until the list is exhausted.
	for {
		if _, ok := l.Settle(nil); !ok {
			break
		}
	}
	if _, ok := l.Settle(nil); ok {
		t.Fatal("Settle must not succeed once the free list is exhausted")
	}
	before := l.Len()
	l.Expand()
	if l.Len() != before+BlockSize {
		t.Fatalf("Expand() grew by %d, want %d", l.Len()-before, BlockSize)
	}
	if _, ok := l.Settle(nil); !ok {
		t.Fatal("Settle must succeed again after Expand")
	}
}

func TestUnfixedCountDecreases(t *testing.T) {
	l := New()
	before := l.UnfixedCount()
	if _, ok := l.Settle([]byte{0}); !ok {
		t.Fatal("expected settle to succeed")
	}
	if l.UnfixedCount() != before-1 {
		t.Fatalf("UnfixedCount() = %d, want %d", l.UnfixedCount(), before-1)
	}
}
