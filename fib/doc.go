// Package fib computes terms of generalized Fibonacci sequences.
//
// A sequence is defined by its starting pair (x, y) and the recurrence
//
//	t(0) = x, t(1) = y, t(i) = t(i-1) + t(i-2)
//
// The default pair (0, 1) yields the standard Fibonacci numbers. Terms are
// arbitrary-precision integers.
//
// Two calculators are provided:
//   - Calculator: iterative, with an ordered write-once Sequence cache.
//   - Recursive: top-down, memoized through a caller-owned memo.Store.
//
// Both are safe for concurrent use. Values returned to callers are copies;
// mutating them never affects a cache.
//
// Example:
//
//	c := fib.New()
//	v, _ := c.CalcWithCache(100) // 354224848179261915075
//	f50, ok := c.Cached(50)      // 12586269025, true
package fib
