package solver

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryOpenerCache(t *testing.T) {
	c := NewMemoryOpenerCache()

	_, ok := c.Get("missing")
	assert.False(t, ok)

	want := ScoredGuess{Word: "raise", Bits: 4.07}
	c.Put("sig", want)
	got, ok := c.Get("sig")
	assert.True(t, ok)
	assert.Equal(t, want, got)

	// Overwrite wins.
	c.Put("sig", ScoredGuess{Word: "slate", Bits: 4.09})
	got, _ = c.Get("sig")
	assert.Equal(t, Word("slate"), got.Word)
}

func TestMemoryOpenerCacheConcurrent(t *testing.T) {
	c := NewMemoryOpenerCache()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Put("k", ScoredGuess{Word: "crane", Bits: 1})
			c.Get("k")
		}()
	}
	wg.Wait()
	got, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, Word("crane"), got.Word)
}
