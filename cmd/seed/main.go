// Seed program: fills a database file with sample rows through the full
// statement pipeline, so the resulting file matches what the REPL would
// produce.
// Usage: go run ./cmd/seed <dbfile> [rows]
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	bplus "MiniDB/bplustree"
	executor "MiniDB/query_executor"
	codegen "MiniDB/query_parser/code-generator"
	lex "MiniDB/query_parser/lexer"
	"MiniDB/query_parser/parser"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <dbfile> [rows]\n", os.Args[0])
		os.Exit(1)
	}

	count := 50
	if len(os.Args) > 2 {
		n, err := strconv.Atoi(os.Args[2])
		if err != nil || n < 1 {
			log.Fatalf("invalid row count %q", os.Args[2])
		}
		count = n
	}

	table, err := bplus.Open(os.Args[1])
	if err != nil {
		log.Fatalf("open db: %v", err)
	}

	rows, err := executor.NewRowCache(1024)
	if err != nil {
		log.Fatalf("row cache: %v", err)
	}
	vm := executor.NewVM(table, rows, os.Stdout)

	run := func(sql string) {
		l := lex.New(sql)
		p := parser.New(l)
		stmt, err := p.ParseStatement()
		if err != nil {
			log.Fatalf("parse %q: %v", sql, err)
		}
		program, err := codegen.Compile(stmt)
		if err != nil {
			log.Fatalf("compile %q: %v", sql, err)
		}
		if err := vm.Execute(program); err != nil {
			log.Fatalf("execute %q: %v", sql, err)
		}
	}

	for id := 1; id <= count; id++ {
		run(fmt.Sprintf("insert %d user%d person%d@example.com", id, id, id))
	}

	if err := table.Close(); err != nil {
		log.Fatalf("close db: %v", err)
	}
	rows.Close()
	fmt.Printf("seeded %d rows\n", count)
}
