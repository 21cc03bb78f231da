package focaccia

// Registry presents a stable, ordered, index-addressable view of the
// navigable items a host has registered. The host replaces the snapshot
// whenever its visible item set changes; lookups between replacements always
// see a consistent ordering.
//
// A Registry is owned by the host UI loop and is not safe for concurrent use.
type Registry struct {
	items []NavItem
	index map[string]int // id -> position in items
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Replace swaps in a new item snapshot atomically. Items are copied, so the
// caller may reuse its slice.
func (r *Registry) Replace(items []NavItem) {
	r.items = make([]NavItem, len(items))
	copy(r.items, items)

	r.index = make(map[string]int, len(items))
	for i, item := range r.items {
		r.index[item.ID] = i
	}
}

// Len returns the number of items in the current snapshot.
func (r *Registry) Len() int {
	return len(r.items)
}

// ItemAt returns the item at index i. Returns an OutOfRangeError when i is
// outside [0, Len()); that indicates stale bookkeeping in the caller, not a
// user-reachable condition.
func (r *Registry) ItemAt(i int) (NavItem, error) {
	if i < 0 || i >= len(r.items) {
		return NavItem{}, &OutOfRangeError{Index: i, Length: len(r.items)}
	}
	return r.items[i], nil
}

// IndexOf returns the position of the item with the given id, or -1.
func (r *Registry) IndexOf(id string) int {
	if i, ok := r.index[id]; ok {
		return i
	}
	return -1
}

// Items returns the current snapshot. The returned slice must not be mutated.
func (r *Registry) Items() []NavItem {
	return r.items
}

// NextEnabledIndex scans from the given index in the given direction
// (+1 or -1), skipping disabled items, and returns the index of the next
// enabled item. With wrap it continues past the ends; without wrap it stops
// there. Returns -1 when no enabled item exists in the scanned range.
//
// from may be -1 (no current focus); the scan then starts at the first or
// last item depending on direction.
func (r *Registry) NextEnabledIndex(from, direction int, wrap bool) int {
	n := len(r.items)
	if n == 0 || direction == 0 {
		return -1
	}

	i := from
	for steps := 0; steps < n; steps++ {
		i += direction
		if i >= n {
			if !wrap {
				return -1
			}
			i = 0
		} else if i < 0 {
			if !wrap {
				return -1
			}
			i = n - 1
		}
		if !r.items[i].Disabled {
			return i
		}
	}
	return -1
}

// FirstEnabledIndex returns the index of the first enabled item, or -1.
func (r *Registry) FirstEnabledIndex() int {
	return r.NextEnabledIndex(-1, 1, false)
}

// LastEnabledIndex returns the index of the last enabled item, or -1.
func (r *Registry) LastEnabledIndex() int {
	return r.NextEnabledIndex(len(r.items), -1, false)
}
