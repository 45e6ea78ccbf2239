package xslices

// SplitAt splits slice s at index i into head s[:i] and tail s[i:].
//
// Capacity of the head is clipped to its length, so appending to the head
// never writes into the tail. Panics if i is out of range [0, len(s)].
func SplitAt[S ~[]E, E any](s S, i int) (head, tail S) {
	if i < 0 || i > len(s) {
		panic("index out of range")
	}

	return s[:i:i], s[i:]
}

