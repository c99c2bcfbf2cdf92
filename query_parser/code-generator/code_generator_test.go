package codegen

import (
	"testing"

	lex "MiniDB/query_parser/lexer"
	"MiniDB/query_parser/parser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compile(t *testing.T, input string) []Instruction {
	t.Helper()
	stmt, err := parser.New(lex.New(input)).ParseStatement()
	require.NoError(t, err)
	program, err := Compile(stmt)
	require.NoError(t, err)
	return program
}

func TestCompileInsert(t *testing.T) {
	program := compile(t, "insert 1 user1 person1@example.com")

	require.Len(t, program, 3)
	assert.Equal(t, OP_PUSH_ROW, program[0].Op)
	require.NotNil(t, program[0].Row)
	assert.Equal(t, uint32(1), program[0].Row.ID)
	assert.Equal(t, OP_INSERT, program[1].Op)
	assert.Equal(t, OP_HALT, program[2].Op)
}

func TestCompileSelect(t *testing.T) {
	program := compile(t, "select")

	require.Len(t, program, 2)
	assert.Equal(t, OP_SELECT, program[0].Op)
	assert.Equal(t, OP_HALT, program[1].Op)
}

func TestCompileSelectByID(t *testing.T) {
	program := compile(t, "select 9")

	require.Len(t, program, 3)
	assert.Equal(t, OP_PUSH_KEY, program[0].Op)
	assert.Equal(t, uint32(9), program[0].Key)
	assert.Equal(t, OP_SELECT_KEY, program[1].Op)
	assert.Equal(t, OP_HALT, program[2].Op)
}

func TestCompileDelete(t *testing.T) {
	program := compile(t, "delete 4")

	require.Len(t, program, 3)
	assert.Equal(t, OP_PUSH_KEY, program[0].Op)
	assert.Equal(t, uint32(4), program[0].Key)
	assert.Equal(t, OP_DELETE, program[1].Op)
	assert.Equal(t, OP_HALT, program[2].Op)
}

func TestCompileNilStatement(t *testing.T) {
	_, err := Compile(nil)
	assert.Error(t, err)
}
