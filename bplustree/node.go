package bplus

import (
	"encoding/binary"

	"MiniDB/logger"
	"MiniDB/types"
)

// On-page layout. Two peers sharing a file must agree on every constant here;
// all multi-byte integers are little-endian.
const (
	NodeTypeSize         = 1
	NodeTypeOffset       = 0
	IsRootSize           = 1
	IsRootOffset         = NodeTypeOffset + NodeTypeSize
	ParentPointerSize    = 4
	ParentPointerOffset  = IsRootOffset + IsRootSize
	CommonNodeHeaderSize = NodeTypeSize + IsRootSize + ParentPointerSize
)

// Leaf node: header then up to LeafNodeMaxCells (key, row) cells in strictly
// increasing key order.
const (
	LeafNodeNumCellsSize   = 4
	LeafNodeNumCellsOffset = CommonNodeHeaderSize
	LeafNodeNextLeafSize   = 4
	LeafNodeNextLeafOffset = LeafNodeNumCellsOffset + LeafNodeNumCellsSize
	LeafNodeHeaderSize     = CommonNodeHeaderSize + LeafNodeNumCellsSize + LeafNodeNextLeafSize

	LeafNodeKeySize       = 4
	LeafNodeKeyOffset     = 0
	LeafNodeValueSize     = types.RowSize
	LeafNodeValueOffset   = LeafNodeKeyOffset + LeafNodeKeySize
	LeafNodeCellSize      = LeafNodeKeySize + LeafNodeValueSize
	LeafNodeSpaceForCells = types.PageSize - LeafNodeHeaderSize
	LeafNodeMaxCells      = LeafNodeSpaceForCells / LeafNodeCellSize
	LeafNodeMinCells      = LeafNodeMaxCells / 2

	LeafNodeRightSplitCount = (LeafNodeMaxCells + 1) / 2
	LeafNodeLeftSplitCount  = LeafNodeMaxCells + 1 - LeafNodeRightSplitCount
)

// Internal node: header then numKeys (child, key) cells plus a rightmost child.
// Fan-out is deliberately small so splits show up early; existing files depend
// on the value, so it stays 3.
const (
	InternalNodeNumKeysSize      = 4
	InternalNodeNumKeysOffset    = CommonNodeHeaderSize
	InternalNodeRightChildSize   = 4
	InternalNodeRightChildOffset = InternalNodeNumKeysOffset + InternalNodeNumKeysSize
	InternalNodeHeaderSize       = CommonNodeHeaderSize + InternalNodeNumKeysSize + InternalNodeRightChildSize

	InternalNodeChildSize = 4
	InternalNodeKeySize   = 4
	InternalNodeCellSize  = InternalNodeChildSize + InternalNodeKeySize
	InternalNodeMaxCells  = 3
)

// node is a typed view over a 4096-byte page buffer. Accessors compute byte
// offsets and never allocate.
type node []byte

func (n node) nodeType() types.NodeType {
	return types.NodeType(n[NodeTypeOffset])
}

func (n node) setNodeType(t types.NodeType) {
	n[NodeTypeOffset] = byte(t)
}

func (n node) isRoot() bool {
	return n[IsRootOffset] != 0
}

func (n node) setRoot(isRoot bool) {
	if isRoot {
		n[IsRootOffset] = 1
	} else {
		n[IsRootOffset] = 0
	}
}

func (n node) parent() uint32 {
	return binary.LittleEndian.Uint32(n[ParentPointerOffset:])
}

func (n node) setParent(pageNum uint32) {
	binary.LittleEndian.PutUint32(n[ParentPointerOffset:], pageNum)
}

// leafNode reinterprets a page as a leaf.
type leafNode struct {
	node
}

func asLeaf(n node) leafNode { return leafNode{n} }

func (l leafNode) numCells() uint32 {
	return binary.LittleEndian.Uint32(l.node[LeafNodeNumCellsOffset:])
}

func (l leafNode) setNumCells(n uint32) {
	binary.LittleEndian.PutUint32(l.node[LeafNodeNumCellsOffset:], n)
}

func (l leafNode) nextLeaf() uint32 {
	return binary.LittleEndian.Uint32(l.node[LeafNodeNextLeafOffset:])
}

func (l leafNode) setNextLeaf(pageNum uint32) {
	binary.LittleEndian.PutUint32(l.node[LeafNodeNextLeafOffset:], pageNum)
}

func (l leafNode) cell(cellNum uint32) []byte {
	off := LeafNodeHeaderSize + cellNum*LeafNodeCellSize
	return l.node[off : off+LeafNodeCellSize]
}

func (l leafNode) key(cellNum uint32) uint32 {
	return binary.LittleEndian.Uint32(l.cell(cellNum))
}

func (l leafNode) setKey(cellNum uint32, key uint32) {
	binary.LittleEndian.PutUint32(l.cell(cellNum), key)
}

func (l leafNode) value(cellNum uint32) []byte {
	return l.cell(cellNum)[LeafNodeValueOffset:]
}

// internalNode reinterprets a page as an internal node.
type internalNode struct {
	node
}

func asInternal(n node) internalNode { return internalNode{n} }

func (in internalNode) numKeys() uint32 {
	return binary.LittleEndian.Uint32(in.node[InternalNodeNumKeysOffset:])
}

func (in internalNode) setNumKeys(n uint32) {
	binary.LittleEndian.PutUint32(in.node[InternalNodeNumKeysOffset:], n)
}

func (in internalNode) rightChild() uint32 {
	return binary.LittleEndian.Uint32(in.node[InternalNodeRightChildOffset:])
}

func (in internalNode) setRightChild(pageNum uint32) {
	binary.LittleEndian.PutUint32(in.node[InternalNodeRightChildOffset:], pageNum)
}

func (in internalNode) cell(cellNum uint32) []byte {
	off := InternalNodeHeaderSize + cellNum*InternalNodeCellSize
	return in.node[off : off+InternalNodeCellSize]
}

func (in internalNode) childAt(cellNum uint32) uint32 {
	return binary.LittleEndian.Uint32(in.cell(cellNum))
}

func (in internalNode) setChildAt(cellNum uint32, pageNum uint32) {
	binary.LittleEndian.PutUint32(in.cell(cellNum), pageNum)
}

func (in internalNode) key(keyNum uint32) uint32 {
	return binary.LittleEndian.Uint32(in.cell(keyNum)[InternalNodeChildSize:])
}

func (in internalNode) setKey(keyNum uint32, key uint32) {
	binary.LittleEndian.PutUint32(in.cell(keyNum)[InternalNodeChildSize:], key)
}

// child resolves child number childNum, where childNum == numKeys addresses
// the rightmost child.
func (in internalNode) child(childNum uint32) uint32 {
	numKeys := in.numKeys()
	if childNum > numKeys {
		logger.Fatalf("tried to access child_num %d > num_keys %d", childNum, numKeys)
	}
	if childNum == numKeys {
		return in.rightChild()
	}
	return in.childAt(childNum)
}

func (in internalNode) setChild(childNum uint32, pageNum uint32) {
	numKeys := in.numKeys()
	if childNum > numKeys {
		logger.Fatalf("tried to access child_num %d > num_keys %d", childNum, numKeys)
	}
	if childNum == numKeys {
		in.setRightChild(pageNum)
	} else {
		in.setChildAt(childNum, pageNum)
	}
}

func initLeafNode(n node) {
	l := asLeaf(n)
	n.setNodeType(types.NodeLeaf)
	n.setRoot(false)
	n.setParent(0)
	l.setNumCells(0)
	l.setNextLeaf(0) // 0 means no sibling
}

func initInternalNode(n node) {
	in := asInternal(n)
	n.setNodeType(types.NodeInternal)
	n.setRoot(false)
	n.setParent(0)
	in.setNumKeys(0)
}

// getNodeMaxKey returns the maximum key stored under n; for internal nodes
// this recurses through the rightmost child.
func getNodeMaxKey(pager *Pager, n node) uint32 {
	if n.nodeType() == types.NodeLeaf {
		l := asLeaf(n)
		return l.key(l.numCells() - 1)
	}
	rightChild := pager.GetPage(asInternal(n).rightChild())
	return getNodeMaxKey(pager, rightChild)
}
