package ucs

import "sort"

// StringTable maps string ids to translated text. Ids are unique and
// non-negative; the map itself is unordered, Encode and IDs impose
// ascending-id order.
type StringTable map[int]string

// Get returns the value for id and whether it is present.
func (t StringTable) Get(id int) (string, bool) {
	v, ok := t[id]
	return v, ok
}

// IDs returns all string ids in ascending order.
func (t StringTable) IDs() []int {
	ids := make([]int, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Merge copies all entries of other into t. When replace is false, an id
// already present in t with a different value is a *ConflictError and t is
// left unchanged.
func (t StringTable) Merge(other StringTable, replace bool) error {
	if !replace {
		for id, v := range other {
			if existing, ok := t[id]; ok && existing != v {
				return &ConflictError{ID: id, Existing: existing, Incoming: v}
			}
		}
	}
	for id, v := range other {
		t[id] = v
	}
	return nil
}

// Clone returns an independent copy of t.
func (t StringTable) Clone() StringTable {
	out := make(StringTable, len(t))
	for id, v := range t {
		out[id] = v
	}
	return out
}
