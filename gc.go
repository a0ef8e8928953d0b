package bdd

// gcStats accumulates simple counters about reclamation, surfaced through
// Stats().
type gcStats struct {
	destroyed int
}

// addRef records a new strong reference to f's vertex (a structural child
// edge, or an explicit pin such as the root or a module). The terminal is
// never counted: it lives for the whole lifetime of the Bdd, mirroring the
// _MAXREFCOUNT treatment of constants in classical BDD packages.
func (bd *Bdd) addRef(f Function) Function {
	bd.addRefVertex(f.Vertex)
	return f
}

func (bd *Bdd) addRefVertex(v *vertex) {
	if v == nil || v.terminal {
		return
	}
	v.refs++
}

// release drops a strong reference to f's vertex. When the count reaches
// zero the vertex is destroyed: this is the only trigger for garbage
// collection; there is no periodic sweep.
func (bd *Bdd) release(f Function) {
	bd.releaseVertex(f.Vertex)
}

func (bd *Bdd) releaseVertex(v *vertex) {
	if v == nil || v.terminal {
		return
	}
	v.refs--
	if v.refs <= 0 {
		bd.destroy(v)
	}
}

// destroy is the vertex destructor: it removes the dying vertex's entry
// from the unique table and purges any compute-table entry that mentions
// it, then releases its own strong edges to its children, letting
// destruction cascade down the graph exactly as far as reference counts
// allow. garbageCollection gates the table mutations only, not the cascade,
// so memory is still reclaimed (recursively) even while the flag is off
// during full teardown; it only avoids redundant unique/compute-table
// bookkeeping when the whole Bdd is being dismantled at once.
func (bd *Bdd) destroy(v *vertex) {
	bd.gcStats.destroyed++
	if bd.garbageCollection {
		key := uniqueKey{index: v.index, highID: idOf(v.high), signedLowID: signedChildID(v)}
		bd.unique.delete(key)
		bd.andCache.invalidate(v.id)
		bd.orCache.invalidate(v.id)
		bd.log.WithFields(logFields{"id": v.id}).Trace("destroyed ite vertex")
	}
	high, low := v.high, v.low
	v.high, v.low = nil, nil
	bd.releaseVertex(high)
	bd.releaseVertex(low)
}

// Close tears down the Bdd, releasing the root and every module. It
// disables unique/compute-table bookkeeping first, since the whole
// structure is being dismantled and per-entry cleanup would be wasted work.
func (bd *Bdd) Close() {
	bd.garbageCollection = false
	bd.release(bd.root)
	bd.root = Function{}
	for index, f := range bd.modules {
		bd.release(f)
		delete(bd.modules, index)
	}
}
