package idgen_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-arena/internal/pkg/idgen"
)

func TestUUIDGenerator(t *testing.T) {
	t.Run("with prefix", func(t *testing.T) {
		id := idgen.NewUUID("battle").Generate()
		require.True(t, strings.HasPrefix(id, "battle_"))
		_, err := uuid.Parse(strings.TrimPrefix(id, "battle_"))
		assert.NoError(t, err)
	})

	t.Run("without prefix", func(t *testing.T) {
		gen := idgen.NewUUID("")
		first, second := gen.Generate(), gen.Generate()
		_, err := uuid.Parse(first)
		assert.NoError(t, err)
		assert.NotEqual(t, first, second)
	})
}

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("battle")
	assert.Equal(t, "battle_1", gen.Generate())
	assert.Equal(t, "battle_2", gen.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}

func TestSequentialGenerator_Concurrent(t *testing.T) {
	gen := idgen.NewSequential("")

	var (
		mu   sync.Mutex
		seen = map[string]bool{}
		wg   sync.WaitGroup
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := gen.Generate()
			mu.Lock()
			seen[id] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, 50)
}
