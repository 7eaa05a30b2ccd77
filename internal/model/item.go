package model

// Item is the domain model for a todo entry.
// Only Done changes after creation, and only through a TOGGLE.
type Item struct {
	ID   int    `json:"id" yaml:"id"`
	Text string `json:"text" yaml:"text"`
	Done bool   `json:"done" yaml:"done"`
}

// List is an ordered set of items with unique ids.
type List []Item

// Clone returns a copy that shares no backing array with l.
func (l List) Clone() List {
	out := make(List, len(l))
	copy(out, l)
	return out
}

// Index returns the position of the item with the given id, or -1.
func (l List) Index(id int) int {
	for i, it := range l {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// IDs returns the item ids in list order.
func (l List) IDs() []int {
	ids := make([]int, 0, len(l))
	for _, it := range l {
		ids = append(ids, it.ID)
	}
	return ids
}

// Stats counts done and pending items.
func (l List) Stats() (done, pending int) {
	for _, it := range l {
		if it.Done {
			done++
		} else {
			pending++
		}
	}
	return
}

// Equal reports whether both lists hold the same items in the same order.
func (l List) Equal(o List) bool {
	if len(l) != len(o) {
		return false
	}
	for i := range l {
		if l[i] != o[i] {
			return false
		}
	}
	return true
}
