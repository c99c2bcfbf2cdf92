package bplus

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintTreeSingleLeaf(t *testing.T) {
	table := openTestTable(t)
	mustInsert(t, table, 1, 2, 3)

	var buf bytes.Buffer
	table.PrintTree(&buf)

	expected := "- leaf (size 3)\n" +
		"  - 1\n" +
		"  - 2\n" +
		"  - 3\n"
	assert.Equal(t, expected, buf.String())
}

func TestPrintTreeAfterSplit(t *testing.T) {
	table := openTestTable(t)
	mustInsert(t, table, seq(1, 14)...)

	var buf bytes.Buffer
	table.PrintTree(&buf)

	expected := "- internal (size 1)\n" +
		"  - leaf (size 7)\n" +
		"    - 1\n" +
		"    - 2\n" +
		"    - 3\n" +
		"    - 4\n" +
		"    - 5\n" +
		"    - 6\n" +
		"    - 7\n" +
		"  - key 7\n" +
		"  - leaf (size 7)\n" +
		"    - 8\n" +
		"    - 9\n" +
		"    - 10\n" +
		"    - 11\n" +
		"    - 12\n" +
		"    - 13\n" +
		"    - 14\n"
	assert.Equal(t, expected, buf.String())
}

func TestPrintTreeAfterRootCollapse(t *testing.T) {
	table := openTestTable(t)
	mustInsert(t, table, seq(1, 14)...)
	for _, id := range []uint32{1, 2} {
		assert.NoError(t, table.Delete(id))
	}

	var buf bytes.Buffer
	table.PrintTree(&buf)
	assert.Contains(t, buf.String(), "- leaf (size 12)\n")
	assert.NotContains(t, buf.String(), "internal")
}

func TestPrintConstants(t *testing.T) {
	var buf bytes.Buffer
	PrintConstants(&buf)

	expected := "ROW_SIZE: 293\n" +
		"COMMON_NODE_HEADER_SIZE: 6\n" +
		"LEAF_NODE_HEADER_SIZE: 14\n" +
		"LEAF_NODE_CELL_SIZE: 297\n" +
		"LEAF_NODE_SPACE_FOR_CELLS: 4082\n" +
		"LEAF_NODE_MAX_CELLS: 13\n" +
		"INTERNAL_NODE_HEADER_SIZE: 14\n" +
		"INTERNAL_NODE_CELL_SIZE: 8\n" +
		"INTERNAL_NODE_MAX_CELLS: 3\n"
	assert.Equal(t, expected, buf.String())
}
