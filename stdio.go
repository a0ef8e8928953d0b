// Copyright 2021. Silvano DAL ZILIO.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package bdd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"
)

// Stats returns a textual summary of table sizes and reclamation counters,
// one metric per line.
func (bd *Bdd) Stats() string {
	res := fmt.Sprintf("ITE nodes:   %d\n", bd.CountITENodes())
	res += fmt.Sprintf("Unique tbl:  %d\n", bd.unique.len())
	res += fmt.Sprintf("Modules:     %d\n", len(bd.modules))
	res += fmt.Sprintf("AND cache:   %d entries, %d hits, %d misses\n", len(bd.andCache.table), bd.andCache.hits, bd.andCache.misses)
	res += fmt.Sprintf("OR cache:    %d entries, %d hits, %d misses\n", len(bd.orCache.table), bd.orCache.hits, bd.orCache.misses)
	res += fmt.Sprintf("Destroyed:   %d", bd.gcStats.destroyed)
	return res
}

// PrintStats writes Stats to standard output, framed between two rules.
func (bd *Bdd) PrintStats() {
	fmt.Println("==============")
	fmt.Println(bd.Stats())
	fmt.Println("==============")
}

// ******************************************************************************************************

// String returns a one-line description of f: "True" or "False" for a
// constant, and for an ITE its signed vertex id and the
// (index ? high : low) triple.
func (f Function) String() string {
	if f.Vertex == nil {
		return "Error (nil function)"
	}
	if f.Vertex.terminal {
		if f.Complement {
			return "False"
		}
		return "True"
	}
	return fmt.Sprintf("(%d[idx=%d] ? %d : %s%d)", f.ID(), f.Vertex.index, idOf(f.Vertex.high), lowSign(f.Vertex), idOf(f.Vertex.low))
}

func lowSign(v *vertex) string {
	if v.lowComp {
		return "-"
	}
	return ""
}

// PrintSet writes a tabular listing of every ITE reachable from f to the
// standard output, one line per vertex: id, index, high child, low child.
func (bd *Bdd) PrintSet(f Function) {
	bd.print(os.Stdout, f)
}

// PrintAll writes a tabular listing of every ITE currently live in the
// unique table, regardless of reachability from the root or any module.
func (bd *Bdd) PrintAll() {
	bd.printAll(os.Stdout)
}

func (bd *Bdd) print(w io.Writer, f Function) error {
	if f.Vertex == nil {
		fmt.Fprintln(w, "Error (nil function)")
		return nil
	}
	if f.Vertex.terminal {
		fmt.Fprintln(w, f.String())
		return nil
	}
	bd.ClearMarks(false)
	var nodes []*vertex
	bd.collect(f.Vertex, &nodes)
	bd.printTable(w, nodes)
	return nil
}

func (bd *Bdd) collect(v *vertex, out *[]*vertex) {
	if v == nil || v.terminal || v.mark {
		return
	}
	v.mark = true
	*out = append(*out, v)
	bd.collect(v.high, out)
	bd.collect(v.low, out)
}

func (bd *Bdd) printAll(w io.Writer) error {
	nodes := make([]*vertex, 0, bd.unique.len())
	for _, v := range bd.unique.entries {
		nodes = append(nodes, v)
	}
	bd.printTable(w, nodes)
	return nil
}

func (bd *Bdd) printTable(w io.Writer, nodes []*vertex) {
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].id < nodes[j].id })
	tw := tabwriter.NewWriter(w, 0, 0, 0, ' ', 0)
	for _, v := range nodes {
		fmt.Fprintf(tw, "%d\t[idx=%d]\t ? \t%d\t : %s%d\n", v.id, v.index, idOf(v.high), lowSign(v), idOf(v.low))
	}
	tw.Flush()
}

// ******************************************************************************************************

// PrintDot writes a GraphViz DOT description of every ITE reachable from f
// to the standard output. The diagram follows fault-tree convention: a solid
// edge is the "then" (high) branch, a dotted edge is the "else" (low)
// branch, and a dotted edge ending in a bubble marks a complemented low
// edge.
func (bd *Bdd) PrintDot(f Function) {
	bd.printDot(bufio.NewWriter(os.Stdout), f)
}

// FPrintDot writes the same diagram as PrintDot to filename, or to standard
// output if filename is "-".
func (bd *Bdd) FPrintDot(filename string, f Function) error {
	var out *os.File
	var err error
	if filename == "-" {
		out = os.Stdout
	} else {
		out, err = os.Create(filename)
		if err != nil {
			return err
		}
		defer out.Close()
	}
	return bd.printDot(bufio.NewWriter(out), f)
}

func (bd *Bdd) printDot(w *bufio.Writer, f Function) error {
	if f.Vertex == nil {
		fmt.Fprintln(w, "ERROR: nil function")
		w.Flush()
		return nil
	}
	bd.ClearMarks(false)
	var nodes []*vertex
	bd.collect(f.Vertex, &nodes)
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].id < nodes[j].id })

	fmt.Fprintln(w, "digraph G {")
	fmt.Fprintln(w, "1 [shape=box, label=\"1\", style=filled, height=0.3, width=0.3];")
	for _, v := range nodes {
		fmt.Fprintf(w, "%d %s\n", v.id, dotlabel(v.id, v.index))
		fmt.Fprintf(w, "%d -> %d [style=filled];\n", v.id, idOf(v.high))
		style := "dotted"
		if v.lowComp {
			style = "dotted, arrowhead=odot"
		}
		fmt.Fprintf(w, "%d -> %d [style=\"%s\"];\n", v.id, idOf(v.low), style)
	}
	if f.Complement {
		fmt.Fprintf(w, "// root %d is complemented\n", f.Vertex.id)
	}
	fmt.Fprintln(w, "}")
	w.Flush()
	return nil
}

func dotlabel(id int, index int32) string {
	return fmt.Sprintf(`[label=<
	<FONT POINT-SIZE="20">%d</FONT>
	<FONT POINT-SIZE="10">[%d]</FONT>
>];`, id, index)
}
