package bdd

import (
	"github.com/openfta/bdd/boolgraph"
	"github.com/pkg/errors"
)

// atleastKey memoises partial ATLEAST(k, args[pos:]) results within a
// single gate's conversion, so a shared tail of the argument list is only
// ever folded once instead of exponentially many times.
type atleastKey struct {
	k   int
	pos int
}

// convertGate is the gate converter of §4.5: it turns one node of the
// preprocessed Boolean graph into a BDD Function, memoised per gate id in
// visited so a gate reachable from more than one parent is only ever built
// once. visited is local to one BDD (the parent's, or a fresh one per
// module sub-BDD), matching the scoping of modules described in §3.
func (bd *Bdd) convertGate(g *boolgraph.Gate, visited map[int]Function) (Function, error) {
	if f, ok := visited[g.ID]; ok {
		return f, nil
	}

	var (
		result Function
		err    error
	)
	switch g.Type {
	case boolgraph.And:
		result, err = bd.foldArgs(OpAnd, bd.trueF(), g, visited)
	case boolgraph.Or:
		result, err = bd.foldArgs(OpOr, bd.falseF(), g, visited)
	case boolgraph.Nand:
		result, err = bd.foldArgs(OpAnd, bd.trueF(), g, visited)
		if err == nil {
			result = negate(result)
		}
	case boolgraph.Nor:
		result, err = bd.foldArgs(OpOr, bd.falseF(), g, visited)
		if err == nil {
			result = negate(result)
		}
	case boolgraph.Xor:
		if len(g.Args) != 2 {
			return Function{}, wrapGate(ErrInvalidArity, g.ID, g.Type)
		}
		var a, b Function
		if a, err = bd.convertArg(g.Args[0], visited); err == nil {
			b, err = bd.convertArg(g.Args[1], visited)
		}
		if err == nil {
			result = bd.addRef(bd.Apply(OpXor, a, b))
		}
	case boolgraph.Not:
		if len(g.Args) != 1 {
			return Function{}, wrapGate(ErrInvalidArity, g.ID, g.Type)
		}
		var a Function
		if a, err = bd.convertArg(g.Args[0], visited); err == nil {
			result = bd.addRef(negate(a))
		}
	case boolgraph.Null:
		if len(g.Args) != 1 {
			return Function{}, wrapGate(ErrInvalidArity, g.ID, g.Type)
		}
		if result, err = bd.convertArg(g.Args[0], visited); err == nil {
			bd.addRef(result)
		}
	case boolgraph.Atleast:
		result, err = bd.convertAtleast(g, visited)
	default:
		return Function{}, wrapGate(ErrUnknownGateType, g.ID, g.Type)
	}
	if err != nil {
		return Function{}, errors.WithMessage(err, "convert gate")
	}

	// Every branch above hands back a result already carrying the one
	// standing reference owned by this gate's memo entry: foldArgs keeps
	// its final accumulator pinned, and the other branches pin explicitly.
	// A second addRef here would leak that reference forever, since a
	// cache hit at the top of this function returns visited[g.ID] as-is,
	// without ever pinning it again.
	visited[g.ID] = result
	return result, nil
}

// foldArgs left-folds g's arguments into identity via op (AND's identity is
// 1, OR's is 0), pinning each intermediate result and releasing the one it
// superseded, so a partial fold no longer needed is reclaimed immediately
// rather than leaking a zero-referenced entry in the unique table. The
// final accumulator is returned still pinned: ownership of that reference
// passes to the caller, which stores it directly into convertGate's memo.
func (bd *Bdd) foldArgs(op Op, identity Function, g *boolgraph.Gate, visited map[int]Function) (Function, error) {
	acc := bd.addRef(identity)
	for _, arg := range g.Args {
		argF, err := bd.convertArg(arg, visited)
		if err != nil {
			bd.release(acc)
			return Function{}, err
		}
		bd.addRef(argF)
		next := bd.addRef(bd.Apply(op, acc, argF))
		bd.release(acc)
		bd.release(argF)
		acc = next
	}
	return acc, nil
}

// convertArg resolves one argument of a gate to a Function: a basic-event
// leaf becomes the canonical literal ITE for its variable, a module-gate
// leaf becomes a proxy ITE on the module's own reserved index (building the
// module's sub-BDD on first encounter), and any other gate is converted
// recursively. Formula-level negation of the argument is applied last.
func (bd *Bdd) convertArg(arg boolgraph.Arg, visited map[int]Function) (Function, error) {
	var f Function
	switch arg.Kind {
	case boolgraph.VariableArg:
		order, ok := bd.indexToOrder[arg.Variable]
		if !ok {
			return Function{}, errors.Wrapf(ErrMissingOrder, "variable %d", arg.Variable)
		}
		f = bd.literal(int32(arg.Variable), int32(order), false)
	case boolgraph.GateArg:
		g := arg.Gate
		if g == nil {
			return Function{}, errors.New("gate argument has nil gate")
		}
		if g.Module {
			var err error
			f, err = bd.moduleProxy(g)
			if err != nil {
				return Function{}, err
			}
		} else {
			var err error
			f, err = bd.convertGate(g, visited)
			if err != nil {
				return Function{}, err
			}
		}
	default:
		return Function{}, errors.Errorf("unknown argument kind %d", arg.Kind)
	}
	if arg.Negated {
		f = negate(f)
	}
	return f, nil
}

// moduleProxy returns the proxy ITE for module gate g, building g's own
// independent sub-BDD on first encounter and recording it in the module
// map. The sub-BDD is built with a fresh, gate-local visited map: it is
// structurally disjoint from the parent BDD's graph, sharing nothing but
// the *Bdd's tables (unique/compute tables, and the id counter, are shared
// across all sub-BDDs of one construction so that identical sub-functions
// in different modules still collapse to one vertex).
func (bd *Bdd) moduleProxy(g *boolgraph.Gate) (Function, error) {
	if _, ok := bd.modules[g.Index]; !ok {
		sub := make(map[int]Function)
		root, err := bd.convertGate(g, sub)
		if err != nil {
			return Function{}, errors.Wrapf(err, "module gate %d", g.ID)
		}
		bd.addRef(root)
		bd.modules[g.Index] = root
		bd.indexToOrder[g.Index] = g.Order
		bd.log.WithFields(logFields{"module": g.Index, "gate": g.ID}).Debug("built module sub-bdd")
	}
	return bd.literal(int32(g.Index), int32(g.Order), true), nil
}

// convertAtleast expresses the k-of-n voting gate as a Shannon
// decomposition on its argument list: atleast(k, [x, ...rest]) =
// (x AND atleast(k-1, rest)) OR (NOT x AND atleast(k, rest)), terminating
// at k <= 0 (true) or k > remaining (false). Results are memoised per
// (k, position) within this gate so the exponentially many shared tails
// collapse to O(k * len(args)) recursive calls.
func (bd *Bdd) convertAtleast(g *boolgraph.Gate, visited map[int]Function) (Function, error) {
	if g.K < 0 || g.K > len(g.Args) {
		return Function{}, wrapGate(ErrAtleastRange, g.ID, g.Type)
	}
	args := make([]Function, len(g.Args))
	for i, a := range g.Args {
		f, err := bd.convertArg(a, visited)
		if err != nil {
			for _, pinned := range args[:i] {
				bd.release(pinned)
			}
			return Function{}, err
		}
		// Pin every argument for the whole recursion: a literal is otherwise
		// unreferenced and would be destroyed by the first release below that
		// drops its count to zero, while later steps still combine it.
		args[i] = bd.addRef(f)
	}
	defer func() {
		for _, f := range args {
			bd.release(f)
		}
	}()

	memo := make(map[atleastKey]Function)
	var rec func(k, pos int) (Function, error)
	rec = func(k, pos int) (Function, error) {
		remaining := len(args) - pos
		if k <= 0 {
			return bd.trueF(), nil
		}
		if k > remaining {
			return bd.falseF(), nil
		}
		key := atleastKey{k, pos}
		if f, ok := memo[key]; ok {
			return f, nil
		}
		withVar, err := rec(k-1, pos+1)
		if err != nil {
			return Function{}, err
		}
		bd.addRef(withVar)
		withoutVar, err := rec(k, pos+1)
		if err != nil {
			bd.release(withVar)
			return Function{}, err
		}
		bd.addRef(withoutVar)

		left := bd.addRef(bd.Apply(OpAnd, args[pos], withVar))
		right := bd.addRef(bd.Apply(OpAnd, negate(args[pos]), withoutVar))
		result := bd.addRef(bd.Apply(OpOr, left, right))

		bd.release(withVar)
		bd.release(withoutVar)
		bd.release(left)
		bd.release(right)

		memo[key] = result
		return result, nil
	}
	return rec(g.K, 0)
}
