package bdd

// computeKey is the unordered pair of signed operand ids for one binary
// primitive operation; AND and OR are commutative so the key is normalised
// with the smaller id first.
type computeKey struct {
	a, b int
}

func newComputeKey(a, b int) computeKey {
	if a > b {
		a, b = b, a
	}
	return computeKey{a, b}
}

// computeCache memoises Apply results for one primitive operator (AND or
// OR). Entries are weak: the cache does not pin the result vertex alive (see
// the design note on id-based compute-table keys), so a cached Function can
// reference a vertex that no longer exists. byID is the inverted index used
// to purge every entry that mentions a given vertex id the instant that
// vertex is destroyed, so a stale Function is never returned from fetch.
type computeCache struct {
	op    primOp
	table map[computeKey]Function
	byID  map[int][]computeKey

	hits   int
	misses int
}

func newComputeCache(op primOp, capacityHint int) *computeCache {
	return &computeCache{
		op:    op,
		table: make(map[computeKey]Function, capacityHint),
		byID:  make(map[int][]computeKey),
	}
}

func (c *computeCache) fetch(a, b int) (Function, bool) {
	f, ok := c.table[newComputeKey(a, b)]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return f, ok
}

func (c *computeCache) store(a, b int, result Function) {
	key := newComputeKey(a, b)
	c.table[key] = result
	c.index(key.a, key)
	c.index(key.b, key)
	if rid := signedID(result); rid != key.a && rid != key.b {
		c.index(rid, key)
	}
}

func (c *computeCache) index(id int, key computeKey) {
	c.byID[id] = append(c.byID[id], key)
}

// invalidate purges every entry that mentions the (unsigned) vertex id, as
// either operand or result. Called from destroy() when the vertex dies.
func (c *computeCache) invalidate(id int) {
	for _, sign := range [2]int{id, -id} {
		keys := c.byID[sign]
		if len(keys) == 0 {
			continue
		}
		for _, k := range keys {
			delete(c.table, k)
		}
		delete(c.byID, sign)
	}
}

func (c *computeCache) reset() {
	c.table = make(map[computeKey]Function, len(c.table))
	c.byID = make(map[int][]computeKey, len(c.byID))
}
