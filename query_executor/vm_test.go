package executor

import (
	"bytes"
	"fmt"
	"path/filepath"
	"testing"

	bplus "MiniDB/bplustree"
	codegen "MiniDB/query_parser/code-generator"
	lex "MiniDB/query_parser/lexer"
	"MiniDB/query_parser/parser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type vmHarness struct {
	vm   *VM
	out  *bytes.Buffer
	rows *RowCache
}

func newHarness(t *testing.T) *vmHarness {
	t.Helper()

	table, err := bplus.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { table.Close() })

	rows, err := NewRowCache(64)
	require.NoError(t, err)
	t.Cleanup(rows.Close)

	out := &bytes.Buffer{}
	return &vmHarness{
		vm:   NewVM(table, rows, out),
		out:  out,
		rows: rows,
	}
}

// run executes one statement line and returns everything it printed.
func (h *vmHarness) run(t *testing.T, line string) string {
	t.Helper()

	stmt, err := parser.New(lex.New(line)).ParseStatement()
	require.NoError(t, err, "parse %q", line)
	program, err := codegen.Compile(stmt)
	require.NoError(t, err, "compile %q", line)

	h.out.Reset()
	require.NoError(t, h.vm.Execute(program), "execute %q", line)
	return h.out.String()
}

func TestExecuteInsertAndScan(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, "Executed.\n", h.run(t, "insert 1 u1 e1"))
	assert.Equal(t, "Executed.\n", h.run(t, "insert 2 u2 e2"))
	assert.Equal(t, "Executed.\n", h.run(t, "insert 3 u3 e3"))

	expected := "(1, u1, e1)\n(2, u2, e2)\n(3, u3, e3)\nExecuted.\n"
	assert.Equal(t, expected, h.run(t, "select"))
}

func TestExecuteOutOfOrderInsertScansSorted(t *testing.T) {
	h := newHarness(t)

	h.run(t, "insert 3 u3 e3")
	h.run(t, "insert 1 u1 e1")
	h.run(t, "insert 2 u2 e2")

	expected := "(1, u1, e1)\n(2, u2, e2)\n(3, u3, e3)\nExecuted.\n"
	assert.Equal(t, expected, h.run(t, "select"))
}

func TestExecuteDuplicateKey(t *testing.T) {
	h := newHarness(t)

	h.run(t, "insert 1 u1 e1")
	assert.Equal(t, "Error: Duplicate key.\n", h.run(t, "insert 1 other other@example.com"))

	expected := "(1, u1, e1)\nExecuted.\n"
	assert.Equal(t, expected, h.run(t, "select"))
}

func TestExecuteScanAcrossLeafSplit(t *testing.T) {
	h := newHarness(t)

	for id := 1; id <= 14; id++ {
		out := h.run(t, fmt.Sprintf("insert %d user%d person%d@example.com", id, id, id))
		assert.Equal(t, "Executed.\n", out, "insert %d", id)
	}

	var expected bytes.Buffer
	for id := 1; id <= 14; id++ {
		fmt.Fprintf(&expected, "(%d, user%d, person%d@example.com)\n", id, id, id)
	}
	expected.WriteString("Executed.\n")
	assert.Equal(t, expected.String(), h.run(t, "select"))
}

func TestExecuteDelete(t *testing.T) {
	h := newHarness(t)

	h.run(t, "insert 1 u1 e1")
	h.run(t, "insert 2 u2 e2")

	assert.Equal(t, "Executed.\n", h.run(t, "delete 1"))
	assert.Equal(t, "(2, u2, e2)\nExecuted.\n", h.run(t, "select"))
}

func TestExecuteDeleteMissingKey(t *testing.T) {
	h := newHarness(t)

	h.run(t, "insert 1 u1 e1")
	assert.Equal(t, "Error: Key 5 not found.\n", h.run(t, "delete 5"))
}

func TestExecuteSelectByID(t *testing.T) {
	h := newHarness(t)

	h.run(t, "insert 1 u1 e1")
	h.run(t, "insert 2 u2 e2")

	assert.Equal(t, "(2, u2, e2)\nExecuted.\n", h.run(t, "select 2"))

	// Missing key prints nothing but still completes
	assert.Equal(t, "Executed.\n", h.run(t, "select 9"))
}

func TestSelectByIDUsesRowCache(t *testing.T) {
	h := newHarness(t)

	h.run(t, "insert 1 u1 e1")
	h.rows.Wait()

	row, ok := h.rows.Get(1)
	require.True(t, ok, "insert must populate the row cache")
	assert.Equal(t, "u1", row.UsernameString())

	// Delete invalidates
	h.run(t, "delete 1")
	h.rows.Wait()
	_, ok = h.rows.Get(1)
	assert.False(t, ok, "delete must invalidate the row cache")

	assert.Equal(t, "Executed.\n", h.run(t, "select 1"))
}

func TestDeletedRowDoesNotResurrectFromCache(t *testing.T) {
	h := newHarness(t)

	h.run(t, "insert 1 u1 e1")
	h.run(t, "select 1")
	h.rows.Wait()
	h.run(t, "delete 1")
	h.rows.Wait()

	assert.Equal(t, "Executed.\n", h.run(t, "select 1"))
	assert.Equal(t, "Executed.\n", h.run(t, "select"))
}
