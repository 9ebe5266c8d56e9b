package jumble

// Permute visits every arrangement of letters exactly once, swapping in place.
// The initial arrangement is visited first, then one arrangement per swap, for
// n! visits in total (a single visit when len(letters) < 2).
//
// prefixFrom is the first prefix length worth testing for the arrangement:
// every prefix arrangement[:x] with prefixFrom <= x < len(arrangement) shows
// up here for the first time. Testing only those prefixes covers each distinct
// prefix exactly once across the whole enumeration.
//
// The arrangement slice is reused between calls, copy what needs to be kept.
func Permute(letters []byte, visit func(arrangement []byte, prefixFrom int)) {
	n := len(letters)

	if n < 2 {
		visit(letters, n)
		return
	}

	// ref goes through the same swaps as letters. Its ascending tail tells
	// which prefixes have not changed since they were first seen.
	ref := make([]int, n)
	for i := range ref {
		ref[i] = i
	}

	visit(letters, nonAscendingPrefix(ref))

	c := make([]int, n)
	d := 1

	for {
		for d > 1 {
			d--
			c[d] = 0
		}

		for c[d] >= d {
			d++
			if d >= n {
				return
			}
		}

		i := 0
		if d&1 == 1 {
			i = c[d]
		}

		letters[d], letters[i] = letters[i], letters[d]
		ref[d], ref[i] = ref[i], ref[d]
		c[d]++

		visit(letters, nonAscendingPrefix(ref))
	}
}

// nonAscendingPrefix returns the last index after which ref is in ascending
// order, never going below 1.
func nonAscendingPrefix(ref []int) int {
	i := len(ref) - 1
	for i > 1 && ref[i-1] < ref[i] {
		i--
	}

	return i
}
