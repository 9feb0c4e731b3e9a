package memo_test

import (
	"math/big"
	"sync"
	"testing"

	"github.com/on-the-ground/fibtable/memo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRistretto_StoreAndLoad(t *testing.T) {
	store, err := memo.NewRistretto[string, int](128)
	require.NoError(t, err)
	defer store.Close()

	_, ok := store.Load("missing")
	assert.False(t, ok)

	store.Store("answer", 42)
	v, ok := store.Load("answer")
	require.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestMemDB_StoreAndLoad(t *testing.T) {
	store, err := memo.NewMemDB()
	require.NoError(t, err)

	_, ok := store.Load(7)
	assert.False(t, ok)

	store.Store(7, big.NewInt(13))
	store.Store(300, big.NewInt(1))
	store.Store(-1, big.NewInt(1))
	v, ok := store.Load(7)
	require.True(t, ok)
	assert.Equal(t, "13", v.String())

	// replace
	store.Store(7, big.NewInt(14))
	v, ok = store.Load(7)
	require.True(t, ok)
	assert.Equal(t, "14", v.String())

	ns, err := store.Indexes()
	require.NoError(t, err)
	assert.Equal(t, []int{-1, 7, 300}, ns)
}

func TestStores_ConcurrentAccess(t *testing.T) {
	mdb, err := memo.NewMemDB()
	require.NoError(t, err)

	stores := map[string]memo.Store[int, *big.Int]{
		"map":   memo.NewMap[int, *big.Int](),
		"table": memo.NewTable[int, *big.Int](1024),
		"memdb": mdb,
	}
	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			var wg sync.WaitGroup
			for w := 0; w < 8; w++ {
				wg.Add(1)
				go func(w int) {
					defer wg.Done()
					for i := 0; i < 50; i++ {
						k := w*50 + i
						store.Store(k, big.NewInt(int64(k)))
					}
				}(w)
			}
			wg.Wait()

			for k := 0; k < 400; k++ {
				v, ok := store.Load(k)
				require.Truef(t, ok, "key %d missing", k)
				assert.Equal(t, int64(k), v.Int64())
			}
		})
	}
}
