package bplus

import (
	"MiniDB/types"
)

// Insert adds row under its id, failing with ErrDuplicateKey if the key is
// already present. The tree splits as needed; keys stay unique and ordered
// and the leaf chain stays intact on return. Parent pointers of nodes moved by
// a split are not rewritten here; Find refreshes them on its way down.
func (t *Table) Insert(row *types.Row) error {
	keyToInsert := row.ID
	cursor := t.Find(keyToInsert)

	leaf := asLeaf(t.pager.GetPage(cursor.pageNum))
	numCells := leaf.numCells()

	if cursor.cellNum < numCells {
		keyAtIndex := leaf.key(cursor.cellNum)
		if keyAtIndex == keyToInsert {
			return types.ErrDuplicateKey
		}
	}

	t.leafNodeInsert(cursor, keyToInsert, row)
	return nil
}

func (t *Table) leafNodeInsert(cursor *Cursor, key uint32, value *types.Row) {
	leaf := asLeaf(t.pager.GetPage(cursor.pageNum))
	numCells := leaf.numCells()

	if numCells >= LeafNodeMaxCells {
		t.leafNodeSplitAndInsert(cursor, key, value)
		return
	}

	if cursor.cellNum < numCells {
		// Make room for the new cell
		for i := numCells; i > cursor.cellNum; i-- {
			copy(leaf.cell(i), leaf.cell(i-1))
		}
	}

	leaf.setNumCells(numCells + 1)
	leaf.setKey(cursor.cellNum, key)
	types.SerializeRow(value, leaf.value(cursor.cellNum))
}

// leafNodeSplitAndInsert distributes the full leaf's cells plus the new one
// across the old leaf and a fresh right sibling, then pushes the new
// separator into the parent (creating a new root if the leaf was the root).
func (t *Table) leafNodeSplitAndInsert(cursor *Cursor, key uint32, value *types.Row) {
	oldNode := node(t.pager.GetPage(cursor.pageNum))
	oldMaxKeyBeforeSplit := getNodeMaxKey(t.pager, oldNode)

	newPageNum := t.pager.UnusedPageNum()
	newNode := node(t.pager.GetPage(newPageNum))
	initLeafNode(newNode)

	oldLeaf := asLeaf(oldNode)
	newLeaf := asLeaf(newNode)

	newNode.setParent(oldNode.parent())
	newLeaf.setNextLeaf(oldLeaf.nextLeaf())
	oldLeaf.setNextLeaf(newPageNum)

	// Walk the LeafNodeMaxCells+1 logical cells from the top down, moving the
	// upper half into the new leaf. The cell at the cursor is the new one;
	// cells above it shift up by one slot.
	for i := int32(LeafNodeMaxCells); i >= 0; i-- {
		var destLeaf leafNode
		var indexWithinNode uint32
		if i >= LeafNodeLeftSplitCount {
			destLeaf = newLeaf
			indexWithinNode = uint32(i - LeafNodeLeftSplitCount)
		} else {
			destLeaf = oldLeaf
			indexWithinNode = uint32(i)
		}

		switch {
		case i == int32(cursor.cellNum):
			destLeaf.setKey(indexWithinNode, key)
			types.SerializeRow(value, destLeaf.value(indexWithinNode))
		case i > int32(cursor.cellNum):
			copy(destLeaf.cell(indexWithinNode), oldLeaf.cell(uint32(i-1)))
		default:
			copy(destLeaf.cell(indexWithinNode), oldLeaf.cell(uint32(i)))
		}
	}

	oldLeaf.setNumCells(LeafNodeLeftSplitCount)
	newLeaf.setNumCells(LeafNodeRightSplitCount)

	if oldNode.isRoot() {
		t.createNewRoot(newPageNum)
		return
	}

	parentPageNum := oldNode.parent()
	newMaxKey := getNodeMaxKey(t.pager, oldNode)
	parent := asInternal(t.pager.GetPage(parentPageNum))
	updateInternalNodeKey(parent, oldMaxKeyBeforeSplit, newMaxKey)
	t.internalNodeInsert(parentPageNum, newPageNum)
}

// createNewRoot handles a root split: the old root's contents move into a
// fresh left child and the root page is rebuilt in place as an internal node
// over the two halves. The root page number never changes here, so page 0
// stays the entry point for a fresh file.
func (t *Table) createNewRoot(rightChildPageNum uint32) {
	root := node(t.pager.GetPage(t.rootPageNum))
	rightChild := node(t.pager.GetPage(rightChildPageNum))
	leftChildPageNum := t.pager.UnusedPageNum()
	leftChild := node(t.pager.GetPage(leftChildPageNum))

	copy(leftChild, root)
	leftChild.setRoot(false)

	initInternalNode(root)
	root.setRoot(true)
	rootInternal := asInternal(root)
	rootInternal.setNumKeys(1)
	rootInternal.setChildAt(0, leftChildPageNum)
	leftChildMaxKey := getNodeMaxKey(t.pager, leftChild)
	rootInternal.setKey(0, leftChildMaxKey)
	rootInternal.setRightChild(rightChildPageNum)

	leftChild.setParent(t.rootPageNum)
	rightChild.setParent(t.rootPageNum)
}
