// Inspect a database file without starting the REPL.
// Usage: go run ./cmd/inspect <dbfile>
package main

import (
	"fmt"
	"os"

	bplus "MiniDB/bplustree"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <dbfile>\n", os.Args[0])
		os.Exit(1)
	}

	table, err := bplus.Open(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer table.Close()

	fmt.Println("Constants:")
	bplus.PrintConstants(os.Stdout)
	fmt.Println("Tree:")
	table.PrintTree(os.Stdout)
}
