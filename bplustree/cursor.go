package bplus

import (
	"MiniDB/types"
)

// Cursor is an ephemeral position in the tree: a leaf page plus a cell index.
// It never outlives the operation that created it and re-borrows its page
// through the pager on every access.
type Cursor struct {
	table      *Table
	pageNum    uint32
	cellNum    uint32
	endOfTable bool
}

// Start positions a cursor at the first cell of the leftmost leaf by an
// explicit descent through child 0. Descending instead of Find(0) keeps key 0
// a legal key.
func (t *Table) Start() *Cursor {
	pageNum := t.rootPageNum

	for {
		n := node(t.pager.GetPage(pageNum))
		if n.nodeType() == types.NodeLeaf {
			break
		}
		in := asInternal(n)
		childPageNum := in.child(0)
		child := node(t.pager.GetPage(childPageNum))
		child.setParent(pageNum)
		pageNum = childPageNum
	}

	// Leaves drained by one-sided deletes may sit empty in the chain; the
	// scan starts at the first leaf that still holds cells.
	leaf := asLeaf(t.pager.GetPage(pageNum))
	for leaf.numCells() == 0 && leaf.nextLeaf() != 0 {
		pageNum = leaf.nextLeaf()
		leaf = asLeaf(t.pager.GetPage(pageNum))
	}

	return &Cursor{
		table:      t,
		pageNum:    pageNum,
		cellNum:    0,
		endOfTable: leaf.numCells() == 0,
	}
}

// EndOfTable reports whether the cursor has advanced past the last cell.
func (c *Cursor) EndOfTable() bool {
	return c.endOfTable
}

// Value returns the value bytes of the current cell.
func (c *Cursor) Value() []byte {
	leaf := asLeaf(c.table.pager.GetPage(c.pageNum))
	return leaf.value(c.cellNum)
}

// ReadRow deserializes the current cell's row into r.
func (c *Cursor) ReadRow(r *types.Row) {
	types.DeserializeRow(c.Value(), r)
}

// Advance moves to the next cell, following the leaf chain across page
// boundaries. next_leaf == 0 marks the rightmost leaf.
func (c *Cursor) Advance() {
	leaf := asLeaf(c.table.pager.GetPage(c.pageNum))

	c.cellNum++
	if c.cellNum < leaf.numCells() {
		return
	}

	nextPageNum := leaf.nextLeaf()
	for nextPageNum != 0 {
		next := asLeaf(c.table.pager.GetPage(nextPageNum))
		if next.numCells() > 0 {
			c.pageNum = nextPageNum
			c.cellNum = 0
			return
		}
		nextPageNum = next.nextLeaf()
	}
	c.endOfTable = true
}
