package codegen

import (
	"MiniDB/query_parser/parser"
	"MiniDB/types"

	"github.com/pkg/errors"
)

type OpCode int

const (
	OP_PUSH_ROW OpCode = iota
	OP_PUSH_KEY
	OP_INSERT
	OP_SELECT
	OP_SELECT_KEY
	OP_DELETE
	OP_HALT
)

// Instruction is one VM step. Operands travel on the VM stacks, pushed by
// the OP_PUSH_* instructions ahead of the executing opcode.
type Instruction struct {
	Op  OpCode
	Row *types.Row
	Key uint32
}

// Compile lowers a parsed statement into a bytecode program.
func Compile(stmt parser.Statement) ([]Instruction, error) {
	switch s := stmt.(type) {
	case *parser.InsertStmt:
		row := s.Row
		return []Instruction{
			{Op: OP_PUSH_ROW, Row: &row},
			{Op: OP_INSERT},
			{Op: OP_HALT},
		}, nil

	case *parser.SelectStmt:
		if s.ID != nil {
			return []Instruction{
				{Op: OP_PUSH_KEY, Key: *s.ID},
				{Op: OP_SELECT_KEY},
				{Op: OP_HALT},
			}, nil
		}
		return []Instruction{
			{Op: OP_SELECT},
			{Op: OP_HALT},
		}, nil

	case *parser.DeleteStmt:
		return []Instruction{
			{Op: OP_PUSH_KEY, Key: s.ID},
			{Op: OP_DELETE},
			{Op: OP_HALT},
		}, nil
	}

	return nil, errors.Errorf("cannot compile statement of type %T", stmt)
}
