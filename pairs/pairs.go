// Package pairs finds pairs of values that add up to a target.
//
// Find keeps the historical behaviour of the exercise it comes from, quirks
// included: it consumes its input while scanning and stops at the first
// match. Whether every pair should be reported, and whether skipping the
// element that slides into a removed slot is intended, are open questions;
// callers must not rely on either until they are settled.
package pairs

import "slices"

// Find scans *seq with a live cursor. At each step it removes the element
// under the cursor, then looks for a partner among the remaining elements.
// On the first match it removes the partner too and returns that single
// pair. Without a match it returns an empty slice, and *seq ends up with
// every element that was under the cursor removed.
//
// Because the cursor advances after a removal, the element that slides into
// the removed slot is never used as a left-hand value.
func Find(seq *[]int, target int) [][2]int {
	result := [][2]int{}
	for k := 0; k < len(*seq); k++ {
		left := (*seq)[k]
		*seq = slices.Delete(*seq, k, k+1)
		for y, right := range *seq {
			if left+right == target {
				*seq = slices.Delete(*seq, y, y+1)
				return append(result, [2]int{left, right})
			}
		}
	}
	return result
}
