package state

// Move returns a copy of items with the element at from relocated to to.
// Elements in between shift by one to close the gap. Indices must be valid.
func Move[T any](items []T, from, to int) []T {
	dup := make([]T, len(items))
	copy(dup, items)
	if from == to {
		return dup
	}
	item := dup[from]
	if from < to {
		copy(dup[from:to], dup[from+1:to+1])
	} else {
		copy(dup[to+1:from+1], dup[to:from])
	}
	dup[to] = item
	return dup
}
