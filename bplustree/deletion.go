package bplus

import (
	"MiniDB/types"
)

// Delete removes the row stored under key, failing with ErrKeyNotFound if no
// such row exists. Underfull leaves rebalance against a sibling; an emptied
// internal root collapses onto its surviving child.
func (t *Table) Delete(key uint32) error {
	cursor := t.Find(key)
	leaf := asLeaf(t.pager.GetPage(cursor.pageNum))

	if cursor.cellNum >= leaf.numCells() || leaf.key(cursor.cellNum) != key {
		return types.ErrKeyNotFound
	}

	t.btreeDelete(cursor, key)
	return nil
}

// leafNodeDelete removes the cell at cursor.cellNum by shifting the cells
// above it down one slot. Separators in the parent are left as-is; a stale
// separator is still an upper bound for its subtree.
func leafNodeDelete(leaf leafNode, cellNum uint32) {
	numCells := leaf.numCells()
	for i := cellNum; i < numCells-1; i++ {
		copy(leaf.cell(i), leaf.cell(i+1))
	}
	leaf.setNumCells(numCells - 1)
}

func (t *Table) btreeDelete(cursor *Cursor, key uint32) {
	n := node(t.pager.GetPage(cursor.pageNum))
	leaf := asLeaf(n)

	leafNodeDelete(leaf, cursor.cellNum)

	if n.isRoot() {
		// The root leaf may hold any number of cells, including zero.
		return
	}
	if leaf.numCells() >= LeafNodeMinCells {
		return
	}

	parentPageNum := n.parent()
	parent := asInternal(t.pager.GetPage(parentPageNum))
	if parent.numKeys() == 0 {
		// The leaf is its parent's only child. Internal nodes are not
		// rebalanced below the root, so there is no sibling to merge with;
		// the leaf is allowed to drain and the cursor skips it once empty.
		return
	}
	childIndex := internalNodeFindChild(parent, key)

	// Prefer the left sibling; leaves merge rightward into their left
	// neighbor so the leaf chain only ever drops pages, never reorders them.
	if childIndex > 0 {
		neighborPageNum := parent.child(childIndex - 1)
		t.rebalanceLeaf(neighborPageNum, cursor.pageNum, parentPageNum, childIndex)
	} else {
		neighborPageNum := parent.child(childIndex + 1)
		t.rebalanceLeaf(cursor.pageNum, neighborPageNum, parentPageNum, childIndex+1)
	}
}

// rebalanceLeaf repairs an underfull leaf using the pair (left, right) where
// right is the leaf at child index rightChildIndex in the parent. If both
// leaves fit in one page they merge into left; otherwise one cell shifts from
// the fuller side to the other.
func (t *Table) rebalanceLeaf(leftPageNum, rightPageNum uint32, parentPageNum uint32, rightChildIndex uint32) {
	left := asLeaf(t.pager.GetPage(leftPageNum))
	right := asLeaf(t.pager.GetPage(rightPageNum))

	if left.numCells()+right.numCells() <= LeafNodeMaxCells {
		t.mergeLeafNodes(leftPageNum, rightPageNum, parentPageNum, rightChildIndex)
		return
	}
	t.borrowBetweenLeaves(leftPageNum, rightPageNum, parentPageNum, rightChildIndex)
}

// mergeLeafNodes appends right's cells onto left, splices right out of the
// leaf chain, and removes right's entry from the parent. The abandoned page
// is never reclaimed.
func (t *Table) mergeLeafNodes(leftPageNum, rightPageNum uint32, parentPageNum uint32, rightChildIndex uint32) {
	left := asLeaf(t.pager.GetPage(leftPageNum))
	right := asLeaf(t.pager.GetPage(rightPageNum))
	parent := asInternal(t.pager.GetPage(parentPageNum))

	leftCells := left.numCells()
	rightCells := right.numCells()
	for i := uint32(0); i < rightCells; i++ {
		copy(left.cell(leftCells+i), right.cell(i))
	}
	left.setNumCells(leftCells + rightCells)
	left.setNextLeaf(right.nextLeaf())

	t.internalNodeRemoveChild(parent, rightChildIndex, leftPageNum)
	t.adjustRoot(parentPageNum)
}

// borrowBetweenLeaves moves one cell between the pair to fix the underflow
// and rewrites the separator between them.
func (t *Table) borrowBetweenLeaves(leftPageNum, rightPageNum uint32, parentPageNum uint32, rightChildIndex uint32) {
	left := asLeaf(t.pager.GetPage(leftPageNum))
	right := asLeaf(t.pager.GetPage(rightPageNum))
	parent := asInternal(t.pager.GetPage(parentPageNum))

	leftCells := left.numCells()
	rightCells := right.numCells()

	if leftCells < rightCells {
		// Shift right's first cell onto the end of left.
		copy(left.cell(leftCells), right.cell(0))
		left.setNumCells(leftCells + 1)
		for i := uint32(0); i < rightCells-1; i++ {
			copy(right.cell(i), right.cell(i+1))
		}
		right.setNumCells(rightCells - 1)
	} else {
		// Shift left's last cell onto the front of right.
		for i := rightCells; i > 0; i-- {
			copy(right.cell(i), right.cell(i-1))
		}
		copy(right.cell(0), left.cell(leftCells-1))
		right.setNumCells(rightCells + 1)
		left.setNumCells(leftCells - 1)
	}

	// The separator between the pair is left's max key. The left leaf sits at
	// rightChildIndex-1 in the parent.
	parent.setKey(rightChildIndex-1, left.key(left.numCells()-1))
}

// internalNodeRemoveChild deletes the child entry at childIndex, rewiring the
// separator so survivorPageNum keeps covering the merged key range.
func (t *Table) internalNodeRemoveChild(parent internalNode, childIndex uint32, survivorPageNum uint32) {
	numKeys := parent.numKeys()

	if childIndex == numKeys {
		// Removed child was the rightmost; the survivor takes its place and
		// the survivor's old separator cell disappears off the end.
		parent.setRightChild(survivorPageNum)
	} else {
		// The survivor inherits the removed child's separator, then the
		// survivor's old cell shifts away.
		parent.setChildAt(childIndex, survivorPageNum)
		for i := childIndex - 1; i < numKeys-1; i++ {
			copy(parent.cell(i), parent.cell(i+1))
		}
	}
	parent.setNumKeys(numKeys - 1)
}

// adjustRoot collapses an internal root that ran out of separators onto its
// sole remaining child, which becomes the new root. Rebalancing of non-root
// internal nodes is not performed.
func (t *Table) adjustRoot(pageNum uint32) {
	if pageNum != t.rootPageNum {
		return
	}

	root := node(t.pager.GetPage(t.rootPageNum))
	if root.nodeType() != types.NodeInternal {
		return
	}
	rootInternal := asInternal(root)
	if rootInternal.numKeys() != 0 {
		return
	}

	newRootPageNum := rootInternal.rightChild()
	newRoot := node(t.pager.GetPage(newRootPageNum))
	newRoot.setRoot(true)
	newRoot.setParent(0)
	root.setRoot(false)
	t.rootPageNum = newRootPageNum
}
