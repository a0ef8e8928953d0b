// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd_test

import (
	"fmt"
	"log"

	"github.com/openfta/bdd"
	"github.com/openfta/bdd/boolgraph"
)

// This example shows the basic usage of the package: convert a small fault
// tree into a BDD and inspect the result.
//
// The tree is TOP = AND(x0, OR(x1, x2)): the system fails when the first
// basic event occurs together with either of the other two.
func Example_basic() {
	x1 := boolgraph.VarArg(1)
	x2 := boolgraph.VarArg(2)
	or := &boolgraph.Gate{ID: 2, Type: boolgraph.Or, Args: []boolgraph.Arg{x1, x2}}
	top := &boolgraph.Gate{ID: 1, Type: boolgraph.And, Args: []boolgraph.Arg{
		boolgraph.VarArg(0),
		boolgraph.GateArgOf(or, false),
	}}

	order := map[int]int{0: 0, 1: 1, 2: 2}
	diagram, err := bdd.New(top, order)
	if err != nil {
		log.Fatal(err)
	}
	defer diagram.Close()

	if err := diagram.TestStructure(); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("ITE nodes: %d\n", diagram.CountITENodes())
	// Output:
	// ITE nodes: 3
}
