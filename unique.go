package bdd

// uniqueKey is the structural identity of an ITE vertex: its variable index,
// the id of its (never complemented) high child, and the signed id of its
// low child (negative when the low edge is complemented).
type uniqueKey struct {
	index       int32
	highID      int
	signedLowID int
}

// uniqueTable enforces "one vertex per structural identity" (reducedness and
// canonicity). Values are plain, non-owning pointers: the table never keeps
// a vertex alive on its own, which is what lets garbage collection reclaim a
// vertex as soon as its last structural or pinned reference disappears (see
// gc.go). While garbage collection is enabled, destroy() removes the
// matching entry eagerly, so a lookup never yields a stale pointer; Close
// disables it, after which destroyed vertices are left in the table.
type uniqueTable struct {
	entries map[uniqueKey]*vertex
}

func newUniqueTable(capacityHint int) *uniqueTable {
	return &uniqueTable{entries: make(map[uniqueKey]*vertex, capacityHint)}
}

func (u *uniqueTable) lookup(key uniqueKey) (*vertex, bool) {
	v, ok := u.entries[key]
	return v, ok
}

func (u *uniqueTable) insert(key uniqueKey, v *vertex) {
	u.entries[key] = v
}

func (u *uniqueTable) delete(key uniqueKey) {
	delete(u.entries, key)
}

func (u *uniqueTable) len() int {
	return len(u.entries)
}
