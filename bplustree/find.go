package bplus

import (
	"MiniDB/types"
)

// internalNodeFindChild returns the index of the child that should contain
// key: the first cell whose separator is >= key, or numKeys for the rightmost
// child.
func internalNodeFindChild(n internalNode, key uint32) uint32 {
	numKeys := n.numKeys()

	minIndex := uint32(0)
	maxIndex := numKeys
	for minIndex != maxIndex {
		index := (minIndex + maxIndex) / 2
		keyToRight := n.key(index)
		if keyToRight >= key {
			maxIndex = index
		} else {
			minIndex = index + 1
		}
	}
	return minIndex
}

// leafNodeFind binary-searches the leaf for key, positioning the cursor at
// the matching cell or at the index where key would be inserted.
func (t *Table) leafNodeFind(pageNum uint32, key uint32) *Cursor {
	leaf := asLeaf(t.pager.GetPage(pageNum))
	numCells := leaf.numCells()

	cursor := &Cursor{
		table:   t,
		pageNum: pageNum,
	}

	minIndex := uint32(0)
	onePastMaxIndex := numCells
	for onePastMaxIndex != minIndex {
		index := (minIndex + onePastMaxIndex) / 2
		keyAtIndex := leaf.key(index)
		if key == keyAtIndex {
			cursor.cellNum = index
			return cursor
		}
		if key < keyAtIndex {
			onePastMaxIndex = index
		} else {
			minIndex = index + 1
		}
	}

	cursor.cellNum = minIndex
	return cursor
}

// Get returns the row stored under key, or ErrKeyNotFound.
func (t *Table) Get(key uint32) (types.Row, error) {
	cursor := t.Find(key)
	leaf := asLeaf(t.pager.GetPage(cursor.pageNum))
	if cursor.cellNum >= leaf.numCells() || leaf.key(cursor.cellNum) != key {
		return types.Row{}, types.ErrKeyNotFound
	}
	var row types.Row
	cursor.ReadRow(&row)
	return row, nil
}

// Find descends from the root to the leaf that contains key, or would contain
// it. Parent pointers are refreshed on the way down so that splits and merges
// can rely on them even after a create-new-root shuffled pages around.
func (t *Table) Find(key uint32) *Cursor {
	pageNum := t.rootPageNum

	for {
		n := node(t.pager.GetPage(pageNum))
		if n.nodeType() == types.NodeLeaf {
			return t.leafNodeFind(pageNum, key)
		}

		in := asInternal(n)
		childIndex := internalNodeFindChild(in, key)
		childPageNum := in.child(childIndex)

		child := node(t.pager.GetPage(childPageNum))
		child.setParent(pageNum)

		pageNum = childPageNum
	}
}
