package state

// Entry is the strip's view of a tab.
type Entry struct {
	ID    string
	Label string
}

// CloneEntries produces a shallow copy of the provided entries.
func CloneEntries(entries []Entry) []Entry {
	dup := make([]Entry, len(entries))
	copy(dup, entries)
	return dup
}
