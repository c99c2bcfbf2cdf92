package bplus

// updateInternalNodeKey rewrites the separator that used to read oldKey so it
// reads newKey. Used after a child's max key changed due to a split.
func updateInternalNodeKey(n internalNode, oldKey uint32, newKey uint32) {
	oldChildIndex := internalNodeFindChild(n, oldKey)
	n.setKey(oldChildIndex, newKey)
}

// internalNodeInsert adds childPageNum under parentPageNum, keyed by the
// child's max key. A full parent splits first.
func (t *Table) internalNodeInsert(parentPageNum uint32, childPageNum uint32) {
	parent := asInternal(t.pager.GetPage(parentPageNum))
	numKeys := parent.numKeys()

	if numKeys >= InternalNodeMaxCells {
		t.internalNodeSplitAndInsert(parentPageNum, childPageNum)
		return
	}

	child := node(t.pager.GetPage(childPageNum))
	childMaxKey := getNodeMaxKey(t.pager, child)
	index := internalNodeFindChild(parent, childMaxKey)

	rightChildPageNum := parent.rightChild()
	rightChild := node(t.pager.GetPage(rightChildPageNum))

	if childMaxKey > getNodeMaxKey(t.pager, rightChild) {
		// New child becomes the rightmost; the old rightmost drops into the
		// cell array.
		parent.setChildAt(numKeys, rightChildPageNum)
		parent.setKey(numKeys, getNodeMaxKey(t.pager, rightChild))
		parent.setRightChild(childPageNum)
	} else {
		for i := numKeys; i > index; i-- {
			copy(parent.cell(i), parent.cell(i-1))
		}
		parent.setChildAt(index, childPageNum)
		parent.setKey(index, childMaxKey)
	}
	parent.setNumKeys(numKeys + 1)
}
