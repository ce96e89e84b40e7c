// Copyright (c) 2025 The dart Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/arkellis/dart"
)

func main() {
	log.SetFlags(log.Lmicroseconds)

	words := wordCorpus()
	sort.Strings(words)

	ts := time.Now()
	b := dart.NewBuilder[uint32, dart.Uint32]()
	for i, w := range words {
		if err := b.Insert([]byte(w), dart.Uint32(i)); err != nil {
			log.Fatalf("insert %q: %v", w, err)
		}
	}
	if _, err := b.Finish(); err != nil {
		log.Fatalf("finish: %v", err)
	}
	fst, err := dart.FromBuilder[uint32, dart.Uint32](b)
	if err != nil {
		log.Fatalf("pack: %v", err)
	}
	log.Printf("built %d keys in %v, packed into %d cells", len(words), time.Since(ts), fst.Len())

	prng := rand.New(rand.NewPCG(42, 42))
	ts = time.Now()
	hits := 0
	for range 10_000 {
		w := words[prng.IntN(len(words))]
		if v, ok := fst.Get([]byte(w)); ok && int(v) >= 0 {
			hits++
		}
	}
	log.Printf("10000 gets in %v (%d hits)", time.Since(ts), hits)

	sample := words[len(words)/2]
	r := fst.Reap([]byte(sample))
	for {
		pos, v, ok := r.Next()
		if !ok {
			break
		}
		fmt.Printf("prefix of length %d has value %d\n", pos, v)
	}
}

func wordCorpus() []string {
	return []string{
		"a", "ab", "abc", "mon", "mons", "monsoon",
		"trie", "trier", "trying", "try",
	}
}
