// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package bdd implements Reduced Ordered Binary Decision Diagrams with
Attributed Edges (ROBDD-AE), the canonical data structure used by fault tree
analysis tools to represent the Boolean structure of a system's failure
logic as a single, shared, minimal graph.

Basics

A Function is a pointer to a "vertex" plus an outer complement bit. A vertex
is either the single terminal of its Bdd (each Bdd built by New has its own)
or an if-then-else triple `index ? high : low`, where index is a variable
identifier (carrying its own ordering position) and high/low are themselves
Functions. Only the
low ("else") edge may carry a complement attribute; the high ("then") edge
never does, which is the canonical form that keeps every Boolean function
represented by exactly one vertex, up to that single complement bit.

A Bdd is built once, by New, from a preprocessed Boolean graph (package
boolgraph): a tree of AND/OR/NAND/NOR/XOR/NOT/NULL/ATLEAST gates over basic
event variables, with variable ordering and module (logically independent
sub-formula) boundaries already decided by an upstream collaborator. New
converts that graph bottom-up into canonical ITE vertices, building one
completely independent sub-BDD per module and wiring it back into its
parent through a proxy variable.

Construction and combination

Apply combines two functions with a binary Boolean operator using the
classical Shannon-decomposition recursion, memoised per operator in a
compute table. Only AND and OR are primitive; NAND, NOR, and XOR are
rewritten in terms of them before any recursion happens.

Memory management

Vertices are reference counted rather than garbage collected by the Go
runtime: a structural child edge or an explicit pin (the root, a module, an
intermediate result still being combined) holds a strong reference, and a
vertex is destroyed, and its unique- and compute-table entries purged, the
moment its count reaches zero. Go has no deterministic destructors, so
every caller that takes ownership of a Function must release it explicitly;
Close does this for the root and every module.

TestStructure offers a self-check of every invariant a well-formed BDD must
satisfy: strictly increasing variable order along every edge, no
unreduced high==low vertex, no complement on a high edge, and full
agreement between the graph and the unique table.
*/
package bdd
