package executor

/*
VM - orchestrates statement execution against the storage layer
    ↓
    ├─→ bplustree.Table - the single users table, keyed by id
    └─→ RowCache - read-through cache for point lookups
*/

import (
	"fmt"
	"io"

	bplus "MiniDB/bplustree"
	codegen "MiniDB/query_parser/code-generator"
	"MiniDB/types"

	"github.com/pkg/errors"
)

type VM struct {
	table *bplus.Table
	rows  *RowCache
	out   io.Writer

	rowStack []types.Row
	keyStack []uint32
}

func NewVM(table *bplus.Table, rows *RowCache, out io.Writer) *VM {
	return &VM{
		table: table,
		rows:  rows,
		out:   out,
	}
}

// Execute runs a compiled program. Statement-level outcomes (rows, Executed.,
// duplicate/missing key messages) are written to the output; the returned
// error is reserved for VM-internal failures.
func (vm *VM) Execute(program []codegen.Instruction) error {
	vm.rowStack = vm.rowStack[:0]
	vm.keyStack = vm.keyStack[:0]

	for _, instr := range program {
		switch instr.Op {
		case codegen.OP_PUSH_ROW:
			vm.rowStack = append(vm.rowStack, *instr.Row)

		case codegen.OP_PUSH_KEY:
			vm.keyStack = append(vm.keyStack, instr.Key)

		case codegen.OP_INSERT:
			row, err := vm.popRow()
			if err != nil {
				return err
			}
			vm.executeInsert(&row)

		case codegen.OP_SELECT:
			vm.executeSelect()

		case codegen.OP_SELECT_KEY:
			key, err := vm.popKey()
			if err != nil {
				return err
			}
			vm.executeSelectKey(key)

		case codegen.OP_DELETE:
			key, err := vm.popKey()
			if err != nil {
				return err
			}
			vm.executeDelete(key)

		case codegen.OP_HALT:
			return nil

		default:
			return errors.Errorf("unknown opcode %d", instr.Op)
		}
	}
	return nil
}

func (vm *VM) popRow() (types.Row, error) {
	if len(vm.rowStack) == 0 {
		return types.Row{}, errors.New("vm: no row on stack for insert")
	}
	row := vm.rowStack[len(vm.rowStack)-1]
	vm.rowStack = vm.rowStack[:len(vm.rowStack)-1]
	return row, nil
}

func (vm *VM) popKey() (uint32, error) {
	if len(vm.keyStack) == 0 {
		return 0, errors.New("vm: no key on stack")
	}
	key := vm.keyStack[len(vm.keyStack)-1]
	vm.keyStack = vm.keyStack[:len(vm.keyStack)-1]
	return key, nil
}

func (vm *VM) executeInsert(row *types.Row) {
	if err := vm.table.Insert(row); err != nil {
		if errors.Is(err, types.ErrDuplicateKey) {
			fmt.Fprintln(vm.out, "Error: Duplicate key.")
			return
		}
		fmt.Fprintf(vm.out, "Error: %v\n", err)
		return
	}
	vm.rows.Put(*row)
	fmt.Fprintln(vm.out, "Executed.")
}

func (vm *VM) executeSelect() {
	cursor := vm.table.Start()
	var row types.Row
	for !cursor.EndOfTable() {
		cursor.ReadRow(&row)
		vm.printRow(&row)
		cursor.Advance()
	}
	fmt.Fprintln(vm.out, "Executed.")
}

func (vm *VM) executeSelectKey(key uint32) {
	if row, ok := vm.rows.Get(key); ok {
		vm.printRow(&row)
		fmt.Fprintln(vm.out, "Executed.")
		return
	}

	row, err := vm.table.Get(key)
	if err == nil {
		vm.rows.Put(row)
		vm.printRow(&row)
	}
	fmt.Fprintln(vm.out, "Executed.")
}

func (vm *VM) executeDelete(key uint32) {
	if err := vm.table.Delete(key); err != nil {
		if errors.Is(err, types.ErrKeyNotFound) {
			fmt.Fprintf(vm.out, "Error: Key %d not found.\n", key)
			return
		}
		fmt.Fprintf(vm.out, "Error: %v\n", err)
		return
	}
	vm.rows.Del(key)
	fmt.Fprintln(vm.out, "Executed.")
}
