package bplus

// internalNodeSplitAndInsert splits a full internal node: the upper half of
// its cells plus the old rightmost child move into a new sibling, the pending
// child is routed into whichever half now covers its key range, and the new
// sibling propagates into the grandparent (or a new root if the split node
// was the root).
func (t *Table) internalNodeSplitAndInsert(parentPageNum uint32, childPageNum uint32) {
	parent := asInternal(t.pager.GetPage(parentPageNum))
	oldMaxKeyBefore := getNodeMaxKey(t.pager, parent.node)

	newPageNum := t.pager.UnusedPageNum()
	newNode := node(t.pager.GetPage(newPageNum))
	initInternalNode(newNode)
	newNode.setParent(parent.node.parent())
	newInternal := asInternal(newNode)

	// Upper cells move over; the middle cell's key is dropped here and
	// resurfaces as the split node's own separator in the grandparent, since
	// it is now that node's max key.
	newInternal.setNumKeys(InternalNodeMaxCells / 2)
	for i := uint32(0); i < newInternal.numKeys(); i++ {
		oldCellIdx := i + (InternalNodeMaxCells+1)/2
		copy(newInternal.cell(i), parent.cell(oldCellIdx))
	}
	newInternal.setRightChild(parent.rightChild())

	parent.setNumKeys(InternalNodeMaxCells / 2)
	parent.setRightChild(parent.childAt(parent.numKeys()))

	child := node(t.pager.GetPage(childPageNum))
	childMaxKey := getNodeMaxKey(t.pager, child)
	newMaxKeyAfterSplit := getNodeMaxKey(t.pager, parent.node)
	if childMaxKey > newMaxKeyAfterSplit {
		t.internalNodeInsert(newPageNum, childPageNum)
	} else {
		t.internalNodeInsert(parentPageNum, childPageNum)
	}

	if parent.node.isRoot() {
		t.createNewRoot(newPageNum)
	} else {
		grandparentPageNum := parent.node.parent()
		grandparent := asInternal(t.pager.GetPage(grandparentPageNum))
		updateInternalNodeKey(grandparent, oldMaxKeyBefore, getNodeMaxKey(t.pager, parent.node))
		t.internalNodeInsert(grandparentPageNum, newPageNum)
	}
}
