package dart

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReapSeqBridge(t *testing.T) {
	pairs := [][2]any{{"", Uint32(9)}, {"a", Uint32(1)}, {"ab", Uint32(2)}}
	fst := buildFST[uint32, Uint32](t, pairs)

	var got []int
	for pos := range fst.Reap([]byte("ab")).Seq() {
		got = append(got, pos)
	}
	require.Equal(t, []int{0, 1, 2}, got)
}

func TestTwoIteratorEquivalence(t *testing.T) {
	cases := []struct {
		name      string
		pairs     [][2]any
		rootIsKey bool
	}{
		{"root is a key", [][2]any{{"", Uint32(5)}, {"a", Uint32(1)}, {"ab", Uint32(2)}}, true},
		{"root is not a key", [][2]any{{"a", Uint32(1)}, {"ab", Uint32(2)}}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			fst := buildFST[uint32, Uint32](t, c.pairs)
			query := []byte("ab")

			var full [][2]int
			r := fst.Reap(query)
			for {
				pos, v, ok := r.Next()
				if !ok {
					break
				}
				full = append(full, [2]int{pos, int(v)})
			}

			var rest [][2]int
			r2 := fst.ReapPastRoot(query)
			for {
				pos, v, ok := r2.Next()
				if !ok {
					break
				}
				rest = append(rest, [2]int{pos, int(v)})
			}

			if c.rootIsKey {
				require.Equal(t, [2]int{0, 5}, full[0])
				require.Equal(t, full[1:], rest)
			} else {
				require.Equal(t, full, rest)
			}
		})
	}
}

func TestReapTerminatesOnFailedTransition(t *testing.T) {
	fst := buildFST[uint32, Uint32](t, [][2]any{{"ab", Uint32(1)}})
	r := fst.Reap([]byte("azzz"))
	// 'a' has no terminal itself and the walk fails on the second
	// byte ('z' instead of 'b'); no items should be yielded.
	_, _, ok := r.Next()
	require.False(t, ok)
}
