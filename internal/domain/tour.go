package domain

// Tour is an ordered visiting sequence over location indices: a
// permutation of 0..N-1 beginning at the configured start index.
// Tours are immutable once produced; improvement steps return copies.
type Tour []int

// Clone returns an independent copy of the tour.
func (t Tour) Clone() Tour {
	out := make(Tour, len(t))
	copy(out, t)
	return out
}

// IsPermutation reports whether the tour visits every index in 0..n-1
// exactly once.
func (t Tour) IsPermutation(n int) bool {
	if len(t) != n {
		return false
	}
	seen := make([]bool, n)
	for _, idx := range t {
		if idx < 0 || idx >= n || seen[idx] {
			return false
		}
		seen[idx] = true
	}
	return true
}
