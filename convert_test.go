// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"testing"

	"github.com/openfta/bdd/boolgraph"
	"github.com/stretchr/testify/require"
)

//********************************************************************************************

func orderFor(indices ...int) map[int]int {
	order := make(map[int]int, len(indices))
	for i, idx := range indices {
		order[idx] = i
	}
	return order
}

func TestConvertSingleVariable(t *testing.T) {
	g := &boolgraph.Gate{ID: 1, Type: boolgraph.Null, Args: []boolgraph.Arg{boolgraph.VarArg(0)}}
	diagram, err := New(g, orderFor(0))
	require.NoError(t, err)
	defer diagram.Close()

	require.NoError(t, diagram.TestStructure())
	require.Equal(t, 1, diagram.CountITENodes())
}

func TestConvertConjunction(t *testing.T) {
	g := &boolgraph.Gate{ID: 1, Type: boolgraph.And, Args: []boolgraph.Arg{
		boolgraph.VarArg(0), boolgraph.VarArg(1), boolgraph.VarArg(2),
	}}
	diagram, err := New(g, orderFor(0, 1, 2))
	require.NoError(t, err)
	defer diagram.Close()

	require.NoError(t, diagram.TestStructure())
	// A 3-variable conjunction has exactly one non-terminal vertex per
	// variable, each with low=0 directly.
	require.Equal(t, 3, diagram.CountITENodes())
}

func TestConvertNandEqualsNegatedAnd(t *testing.T) {
	// Both gates are converted within the same Bdd so their results share a
	// unique table and can be compared by vertex identity.
	bd := newTestBdd(t)
	bd.indexToOrder = orderFor(0, 1)

	and := &boolgraph.Gate{ID: 1, Type: boolgraph.And, Args: []boolgraph.Arg{boolgraph.VarArg(0), boolgraph.VarArg(1)}}
	nand := &boolgraph.Gate{ID: 2, Type: boolgraph.Nand, Args: []boolgraph.Arg{boolgraph.VarArg(0), boolgraph.VarArg(1)}}

	andFn, err := bd.convertGate(and, make(map[int]Function))
	require.NoError(t, err)
	nandFn, err := bd.convertGate(nand, make(map[int]Function))
	require.NoError(t, err)

	require.True(t, sameFunction(nandFn, negate(andFn)))
}

func TestConvertXorRequiresTwoArgs(t *testing.T) {
	g := &boolgraph.Gate{ID: 1, Type: boolgraph.Xor, Args: []boolgraph.Arg{boolgraph.VarArg(0)}}
	_, err := New(g, orderFor(0))
	require.Error(t, err)
}

func TestConvertAtleastTwoOfThree(t *testing.T) {
	g := &boolgraph.Gate{ID: 1, Type: boolgraph.Atleast, K: 2, Args: []boolgraph.Arg{
		boolgraph.VarArg(0), boolgraph.VarArg(1), boolgraph.VarArg(2),
	}}
	diagram, err := New(g, orderFor(0, 1, 2))
	require.NoError(t, err)
	defer diagram.Close()
	require.NoError(t, diagram.TestStructure())

	// atleast(2,3) == majority of 3 variables; check it against the explicit
	// pairwise-OR-of-ANDs formula built independently through Apply.
	x := diagram.literal(0, 0, false)
	y := diagram.literal(1, 1, false)
	z := diagram.literal(2, 2, false)
	xy := diagram.Apply(OpAnd, x, y)
	xz := diagram.Apply(OpAnd, x, z)
	yz := diagram.Apply(OpAnd, y, z)
	expected := diagram.Apply(OpOr, diagram.Apply(OpOr, xy, xz), yz)
	require.True(t, sameFunction(diagram.Root(), expected))
}

func TestConvertAtleastZeroIsTrue(t *testing.T) {
	g := &boolgraph.Gate{ID: 1, Type: boolgraph.Atleast, K: 0, Args: []boolgraph.Arg{boolgraph.VarArg(0)}}
	diagram, err := New(g, orderFor(0))
	require.NoError(t, err)
	defer diagram.Close()
	require.True(t, diagram.Root().IsOne())
}

func TestConvertAtleastAboveArityIsError(t *testing.T) {
	g := &boolgraph.Gate{ID: 1, Type: boolgraph.Atleast, K: 3, Args: []boolgraph.Arg{boolgraph.VarArg(0), boolgraph.VarArg(1)}}
	_, err := New(g, orderFor(0, 1))
	require.Error(t, err)
}

func TestConvertModuleIsolation(t *testing.T) {
	sub := &boolgraph.Gate{ID: 2, Type: boolgraph.Or, Module: true, Index: 10, Order: 1,
		Args: []boolgraph.Arg{boolgraph.VarArg(1), boolgraph.VarArg(2)}}
	top := &boolgraph.Gate{ID: 1, Type: boolgraph.And, Args: []boolgraph.Arg{
		boolgraph.VarArg(0), boolgraph.GateArgOf(sub, false),
	}}
	// Variables 1 and 2 are local to the module's own sub-BDD, ordered
	// relative to each other there; variable 0 and the module's proxy (index
	// 10, from sub.Order) are ordered relative to each other in the parent.
	order := map[int]int{0: 0, 1: 0, 2: 1}
	diagram, err := New(top, order)
	require.NoError(t, err)
	defer diagram.Close()

	require.NoError(t, diagram.TestStructure())
	modFn, ok := diagram.Module(10)
	require.True(t, ok)
	require.False(t, modFn.Vertex.terminal)

	// The root's own graph is x0 ? proxy : 0: it mentions variable 0 and the
	// proxy variable 10 (the root's then-branch), never the module's internal
	// variables 1/2.
	require.Equal(t, int32(10), diagram.root.Vertex.high.index)
}

func TestConvertMissingOrderIsError(t *testing.T) {
	g := &boolgraph.Gate{ID: 1, Type: boolgraph.Null, Args: []boolgraph.Arg{boolgraph.VarArg(5)}}
	_, err := New(g, map[int]int{})
	require.Error(t, err)
}
