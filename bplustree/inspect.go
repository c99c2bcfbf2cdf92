// Package bplus: tree inspection for the .btree and .constants meta commands.

package bplus

import (
	"fmt"
	"io"
	"strings"

	"MiniDB/types"
)

func indent(w io.Writer, level uint32) {
	fmt.Fprint(w, strings.Repeat("  ", int(level)))
}

// PrintTree writes the tree rooted at the table's root to w, one node per
// line, two-space indent per depth.
func (t *Table) PrintTree(w io.Writer) {
	printTree(w, t.pager, t.rootPageNum, 0)
}

func printTree(w io.Writer, pager *Pager, pageNum uint32, indentationLevel uint32) {
	n := node(pager.GetPage(pageNum))

	switch n.nodeType() {
	case types.NodeLeaf:
		leaf := asLeaf(n)
		numCells := leaf.numCells()
		indent(w, indentationLevel)
		fmt.Fprintf(w, "- leaf (size %d)\n", numCells)
		for i := uint32(0); i < numCells; i++ {
			indent(w, indentationLevel+1)
			fmt.Fprintf(w, "- %d\n", leaf.key(i))
		}
	case types.NodeInternal:
		in := asInternal(n)
		numKeys := in.numKeys()
		indent(w, indentationLevel)
		fmt.Fprintf(w, "- internal (size %d)\n", numKeys)
		for i := uint32(0); i < numKeys; i++ {
			printTree(w, pager, in.childAt(i), indentationLevel+1)
			indent(w, indentationLevel+1)
			fmt.Fprintf(w, "- key %d\n", in.key(i))
		}
		printTree(w, pager, in.rightChild(), indentationLevel+1)
	}
}

// PrintConstants writes the derived layout constants to w.
func PrintConstants(w io.Writer) {
	fmt.Fprintf(w, "ROW_SIZE: %d\n", types.RowSize)
	fmt.Fprintf(w, "COMMON_NODE_HEADER_SIZE: %d\n", CommonNodeHeaderSize)
	fmt.Fprintf(w, "LEAF_NODE_HEADER_SIZE: %d\n", LeafNodeHeaderSize)
	fmt.Fprintf(w, "LEAF_NODE_CELL_SIZE: %d\n", LeafNodeCellSize)
	fmt.Fprintf(w, "LEAF_NODE_SPACE_FOR_CELLS: %d\n", LeafNodeSpaceForCells)
	fmt.Fprintf(w, "LEAF_NODE_MAX_CELLS: %d\n", LeafNodeMaxCells)
	fmt.Fprintf(w, "INTERNAL_NODE_HEADER_SIZE: %d\n", InternalNodeHeaderSize)
	fmt.Fprintf(w, "INTERNAL_NODE_CELL_SIZE: %d\n", InternalNodeCellSize)
	fmt.Fprintf(w, "INTERNAL_NODE_MAX_CELLS: %d\n", InternalNodeMaxCells)
}
