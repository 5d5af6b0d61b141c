package state

// TabReader is the read side of a Store, for code that looks tabs up but
// never changes them.
type TabReader interface {
	Tabs() []Tab
	Tab(id string) (Tab, bool)
	IndexOf(id string) int
	SelectedID() string
}

var _ TabReader = (*Store)(nil)
