package bdd

// vertex is a node of the ROBDD graph: either the single terminal, or an
// if-then-else (ITE) vertex `index ? high : low`. We use a tagged struct
// rather than an interface hierarchy (see DESIGN.md) since the only two
// shapes are the terminal and the ITE, and keeping them in one type avoids a
// type switch on every traversal.
type vertex struct {
	terminal bool

	index int32 // variable identifier; unused on the terminal
	order int32 // ordering number; unused on the terminal

	high    *vertex // "then" branch, never carries a complement attribute
	low     *vertex // "else" branch
	lowComp bool    // complement attribute on the low edge

	id int // unique id, >= 2 for ITEs; the terminal's id is always 1

	module bool // true if this ITE is a proxy for a modular sub-function
	mark   bool // scratch traversal mark, see ClearMarks

	// Slots reserved for downstream probability/importance analyses. The BDD
	// core only zero-initializes them.
	p      float64
	factor float64

	refs int32 // strong reference count from parent edges and pins
}

// Function is a BDD function: the vertex rooted graph, plus an outer
// complement bit. If Vertex is the terminal and Complement is false the
// function is the constant 1; if Complement is true it is the constant 0.
type Function struct {
	Complement bool
	Vertex     *vertex
}

// IsConst reports whether f is one of the two constant functions, and if so
// which one.
func (f Function) IsConst() (value bool, ok bool) {
	if f.Vertex == nil || !f.Vertex.terminal {
		return false, false
	}
	return !f.Complement, true
}

// IsZero reports whether f is the constant-0 function.
func (f Function) IsZero() bool {
	v, ok := f.IsConst()
	return ok && !v
}

// IsOne reports whether f is the constant-1 function.
func (f Function) IsOne() bool {
	v, ok := f.IsConst()
	return ok && v
}

// ID returns the signed identifier of f: the vertex id (1 for the
// terminal), negated when f.Complement is set. This is the value used as an
// operand in compute-table keys.
func (f Function) ID() int {
	return signedID(f)
}

func negate(f Function) Function {
	return Function{Complement: !f.Complement, Vertex: f.Vertex}
}

func sameFunction(a, b Function) bool {
	return a.Vertex == b.Vertex && a.Complement == b.Complement
}

func idOf(v *vertex) int {
	if v == nil {
		return 0
	}
	if v.terminal {
		return 1
	}
	return v.id
}

func signedID(f Function) int {
	if f.Complement {
		return -idOf(f.Vertex)
	}
	return idOf(f.Vertex)
}

// signedChildID returns the signed id used in v's own unique-table key for
// its low edge.
func signedChildID(v *vertex) int {
	if v.lowComp {
		return -idOf(v.low)
	}
	return idOf(v.low)
}

func (bd *Bdd) trueF() Function {
	return Function{Complement: false, Vertex: bd.one}
}

func (bd *Bdd) falseF() Function {
	return Function{Complement: true, Vertex: bd.one}
}

// ite implements the canonical attributed-edge representation's reduction
// rule: given a desired (index, high, low) triple, return the unique ITE
// (or a reduction of it) in canonical form.
//
//  1. high == low (including complement bits) reduces to that function.
//  2. the high child is never allowed to carry a complement bit; if it does,
//     we flip it, flip low's complement too, and record the flip on the
//     outer (returned) function instead.
//  3. the resulting (index, high.id, signed low.id) triple is looked up in
//     the unique table; a hit is returned as-is, a miss allocates a fresh
//     vertex and registers the structural child edges.
func (bd *Bdd) ite(index int32, order int32, high, low Function, module bool) Function {
	if sameFunction(high, low) {
		return high
	}
	outer := false
	if high.Complement {
		outer = true
		high = negate(high)
		low = negate(low)
	}
	key := uniqueKey{
		index:       index,
		highID:      idOf(high.Vertex),
		signedLowID: signedID(low),
	}
	if v, ok := bd.unique.lookup(key); ok {
		return Function{Complement: outer, Vertex: v}
	}
	v := &vertex{
		index:   index,
		order:   order,
		high:    high.Vertex,
		low:     low.Vertex,
		lowComp: low.Complement,
		module:  module,
		id:      bd.nextID,
	}
	bd.nextID++
	bd.addRefVertex(high.Vertex)
	bd.addRefVertex(low.Vertex)
	bd.unique.insert(key, v)
	bd.log.WithFields(logFields{"id": v.id, "index": index, "order": order}).Trace("allocated ite vertex")
	return Function{Complement: outer, Vertex: v}
}

// literal builds the canonical ITE for a positive occurrence of a single
// variable: index ? 1 : 0.
func (bd *Bdd) literal(index int32, order int32, module bool) Function {
	return bd.ite(index, order, bd.trueF(), bd.falseF(), module)
}
