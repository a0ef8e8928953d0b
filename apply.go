package bdd

// Apply combines two BDD functions with a binary Boolean operator, in
// canonical attributed-edge form. Operators other than And/Or are rewritten
// in terms of them before any recursion happens, per the table below:
//
//	And   primitive
//	Or    primitive
//	Nand  complement(And(a, b))
//	Nor   complement(Or(a, b))
//	Xor   Or(And(a, Not(b)), And(Not(a), b))
//
// Not has no binary form: Apply(OpNot, a, b) returns the complement of a and
// ignores b, exactly as the Not method does.
func (bd *Bdd) Apply(op Op, a, b Function) Function {
	switch op {
	case OpAnd:
		return bd.applyPrimitive(primAND, a, b)
	case OpOr:
		return bd.applyPrimitive(primOR, a, b)
	case OpNand:
		return negate(bd.applyPrimitive(primAND, a, b))
	case OpNor:
		return negate(bd.applyPrimitive(primOR, a, b))
	case OpXor:
		left := bd.applyPrimitive(primAND, a, negate(b))
		bd.addRef(left)
		right := bd.applyPrimitive(primAND, negate(a), b)
		bd.addRef(right)
		result := bd.applyPrimitive(primOR, left, right)
		bd.release(left)
		bd.release(right)
		return result
	case OpNot:
		return negate(a)
	default:
		panic("bdd: unknown operator in Apply: " + op.String())
	}
}

// Not returns the complement of f. It never allocates: negation only flips
// the outer complement bit (involution: negating twice is the identity).
func (bd *Bdd) Not(f Function) Function {
	return negate(f)
}

// applyPrimitive implements the Shannon-decomposition recursion of the
// Apply engine for one of the two primitive operators, consulting and
// filling the corresponding compute table.
func (bd *Bdd) applyPrimitive(op primOp, a, b Function) Function {
	if val, ok := a.IsConst(); ok {
		return bd.applyConst(op, val, b)
	}
	if val, ok := b.IsConst(); ok {
		return bd.applyConst(op, val, a)
	}
	if a.Vertex == b.Vertex {
		if a.Complement == b.Complement {
			return a
		}
		if op == primAND {
			return bd.falseF()
		}
		return bd.trueF()
	}

	cache := bd.andCache
	if op == primOR {
		cache = bd.orCache
	}
	ka, kb := signedID(a), signedID(b)
	if res, ok := cache.fetch(ka, kb); ok {
		return res
	}

	top, other := a, b
	if b.Vertex.order < a.Vertex.order {
		top, other = b, a
	}

	topHigh, topLow := cofactorHigh(top), cofactorLow(top)
	var otherHigh, otherLow Function
	if top.Vertex.order == other.Vertex.order {
		otherHigh, otherLow = cofactorHigh(other), cofactorLow(other)
	} else {
		otherHigh, otherLow = other, other
	}

	rHigh := bd.applyPrimitive(op, topHigh, otherHigh)
	bd.addRef(rHigh)
	rLow := bd.applyPrimitive(op, topLow, otherLow)
	bd.addRef(rLow)
	result := bd.ite(top.Vertex.index, top.Vertex.order, rHigh, rLow, false)
	bd.release(rHigh)
	bd.release(rLow)

	cache.store(ka, kb, result)
	return result
}

// cofactorHigh returns the function of f restricted to the then-branch of
// its top vertex: the high child, carrying f's own outer complement (high
// edges never store a complement bit of their own).
func cofactorHigh(f Function) Function {
	return Function{Complement: f.Complement, Vertex: f.Vertex.high}
}

// cofactorLow returns the function of f restricted to the else-branch: the
// low child, with its edge-complement attribute XORed with f's own outer
// complement.
func cofactorLow(f Function) Function {
	return Function{Complement: f.Complement != f.Vertex.lowComp, Vertex: f.Vertex.low}
}

// applyConst resolves AND/OR against a known constant operand via the
// Boolean identities And(x,0)=0, And(x,1)=x, Or(x,0)=x, Or(x,1)=1.
func (bd *Bdd) applyConst(op primOp, val bool, other Function) Function {
	if op == primAND {
		if !val {
			return bd.falseF()
		}
		return other
	}
	if val {
		return bd.trueF()
	}
	return other
}
