// Package pointer turns raw terminal mouse events into hit-tested regions and
// drag gestures for the tab strip.
package pointer

// Rect is a cell rectangle; X/Y are the top-left cell.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region is a named clickable area recorded while rendering.
type Region struct {
	ID   string
	Kind string
	Rect Rect
}

// Regions collects the hit areas of the last rendered frame. Later regions
// sit on top of earlier ones.
type Regions struct {
	items []Region
}

func (r *Regions) Reset() {
	r.items = r.items[:0]
}

func (r *Regions) Add(kind, id string, rect Rect) {
	if rect.W <= 0 || rect.H <= 0 {
		return
	}
	r.items = append(r.items, Region{ID: id, Kind: kind, Rect: rect})
}

// Hit returns the topmost region containing (x, y).
func (r *Regions) Hit(x, y int) (Region, bool) {
	for i := len(r.items) - 1; i >= 0; i-- {
		if r.items[i].Rect.Contains(x, y) {
			return r.items[i], true
		}
	}
	return Region{}, false
}

// HitKind returns the topmost region of the given kind containing (x, y).
func (r *Regions) HitKind(kind string, x, y int) (Region, bool) {
	for i := len(r.items) - 1; i >= 0; i-- {
		if r.items[i].Kind == kind && r.items[i].Rect.Contains(x, y) {
			return r.items[i], true
		}
	}
	return Region{}, false
}

// Find returns the first region with the given kind and id.
func (r *Regions) Find(kind, id string) (Region, bool) {
	for _, item := range r.items {
		if item.Kind == kind && item.ID == id {
			return item, true
		}
	}
	return Region{}, false
}

func (r *Regions) All() []Region {
	dup := make([]Region, len(r.items))
	copy(dup, r.items)
	return dup
}
