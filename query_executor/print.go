package executor

import (
	"fmt"

	"MiniDB/types"
)

func (vm *VM) printRow(row *types.Row) {
	fmt.Fprintf(vm.out, "(%d, %s, %s)\n", row.ID, row.UsernameString(), row.EmailString())
}
