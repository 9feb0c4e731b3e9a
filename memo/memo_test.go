package memo_test

import (
	"testing"

	"github.com/on-the-ground/fibtable/memo"
	"github.com/stretchr/testify/assert"
)

func TestTableize_CachesByKey(t *testing.T) {
	count := 0
	fn := memo.Tableize(func(i int) int {
		count++
		return i * 2
	}, memo.NewMap[int, int]())

	assert.Equal(t, 4, fn(2))
	assert.Equal(t, 4, fn(2)) // cached
	assert.Equal(t, 6, fn(3))
	assert.Equal(t, 2, count)
}

func TestTableize_StructKey(t *testing.T) {
	type pair struct{ a, b int }

	count := 0
	fn := memo.Tableize(func(p pair) int {
		count++
		return p.a + p.b
	}, memo.NewTable[pair, int](2))

	assert.Equal(t, 5, fn(pair{2, 3}))
	assert.Equal(t, 5, fn(pair{2, 3}))
	assert.Equal(t, 1, count)
}

func TestTableize_Recursive(t *testing.T) {
	calls := 0
	var lev func(string) int
	lev = memo.Tableize(func(s string) int {
		calls++
		if len(s) == 0 {
			return 0
		}
		return 1 + lev(s[1:])
	}, memo.NewMap[string, int]())

	assert.Equal(t, 7, lev("sitting"))
	assert.Equal(t, 8, calls)
	assert.Equal(t, 6, lev("itting"))
	assert.Equal(t, 8, calls)
}
