package bdd

import "github.com/pkg/errors"

// ClearMarks resets (or sets) the traversal mark on every ITE reachable
// from the root, and from every module. Every visitor that uses mark must
// leave it clear when done, or call this method before the next traversal:
// marks left in a discontinuous, partially-set state corrupt any mark-
// guarded traversal that follows, and that precondition is the caller's
// responsibility, not something this method can detect.
func (bd *Bdd) ClearMarks(mark bool) {
	bd.clearMarks(bd.root.Vertex, mark)
	for _, f := range bd.modules {
		bd.clearMarks(f.Vertex, mark)
	}
}

func (bd *Bdd) clearMarks(v *vertex, mark bool) {
	if v == nil || v.terminal || v.mark == mark {
		return
	}
	v.mark = mark
	bd.clearMarks(v.high, mark)
	bd.clearMarks(v.low, mark)
}

// CountITENodes returns the number of distinct ITE vertices reachable from
// the root (modules are not included, matching the original's per-function
// count).
func (bd *Bdd) CountITENodes() int {
	bd.ClearMarks(false)
	return bd.countNodes(bd.root.Vertex)
}

func (bd *Bdd) countNodes(v *vertex) int {
	if v == nil || v.terminal || v.mark {
		return 0
	}
	v.mark = true
	return 1 + bd.countNodes(v.high) + bd.countNodes(v.low)
}

// TestStructure walks the whole BDD (root and every module) once and
// verifies the invariants that must hold after every Apply result is
// returned: variable ordering strictly increases along every edge, no
// reachable ITE has high == low with no complement, no complement ever
// appears on a high edge, and every reachable ITE resolves through the
// unique table back to itself. It is a self-check, not a repair: the first
// violation found is returned as an error.
func (bd *Bdd) TestStructure() error {
	bd.ClearMarks(false)
	if err := bd.testStructure(bd.root.Vertex); err != nil {
		return err
	}
	for index, f := range bd.modules {
		if err := bd.testStructure(f.Vertex); err != nil {
			return errors.Wrapf(err, "module %d", index)
		}
	}
	return nil
}

func (bd *Bdd) testStructure(v *vertex) error {
	if v == nil || v.terminal || v.mark {
		return nil
	}
	v.mark = true

	if !v.high.terminal && v.order >= v.high.order {
		return errors.Errorf("ordering violation: vertex %d (order %d) has high child %d (order %d)",
			v.id, v.order, v.high.id, v.high.order)
	}
	if !v.low.terminal && v.order >= v.low.order {
		return errors.Errorf("ordering violation: vertex %d (order %d) has low child %d (order %d)",
			v.id, v.order, v.low.id, v.low.order)
	}
	if v.high == v.low && !v.lowComp {
		return errors.Errorf("reduction violation: vertex %d has identical high and low with no complement", v.id)
	}

	key := uniqueKey{index: v.index, highID: idOf(v.high), signedLowID: signedChildID(v)}
	if found, ok := bd.unique.lookup(key); !ok || found != v {
		return errors.Errorf("unique-table violation: vertex %d does not resolve to itself", v.id)
	}

	if err := bd.testStructure(v.high); err != nil {
		return err
	}
	return bd.testStructure(v.low)
}
