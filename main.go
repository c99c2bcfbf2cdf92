package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	bplus "MiniDB/bplustree"
	"MiniDB/config"
	"MiniDB/logger"
	executor "MiniDB/query_executor"
	codegen "MiniDB/query_parser/code-generator"
	lex "MiniDB/query_parser/lexer"
	"MiniDB/query_parser/parser"

	"github.com/pkg/errors"
)

func printPrompt() {
	fmt.Print("db > ")
}

func printParseError(err error, input string) {
	switch {
	case errors.Is(err, parser.ErrUnrecognizedKeyword):
		fmt.Printf("Unrecognized keyword at start of '%s'.\n", input)
	case errors.Is(err, parser.ErrNegativeID):
		fmt.Println("ID must be positive.")
	case errors.Is(err, parser.ErrStringTooLong):
		fmt.Println("String is too long.")
	case errors.Is(err, parser.ErrMissingDeleteID):
		fmt.Println("Syntax error. Must provide an ID to delete.")
	default:
		fmt.Println("Syntax error. Could not parse statement.")
	}
}

func doMetaCommand(command string, table *bplus.Table, rows *executor.RowCache) {
	switch command {
	case ".exit":
		if err := table.Close(); err != nil {
			logger.Fatalf("error closing db file: %v", err)
		}
		rows.Close()
		fmt.Println("Bye!")
		os.Exit(0)
	case ".btree":
		fmt.Println("Tree:")
		table.PrintTree(os.Stdout)
	case ".constants":
		fmt.Println("Constants:")
		bplus.PrintConstants(os.Stdout)
	default:
		fmt.Printf("Unrecognized command '%s'\n", command)
	}
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Must supply a database filename.")
		os.Exit(1)
	}

	cfg, err := config.Load("")
	if err != nil {
		logger.Fatalf("error loading config: %v", err)
	}
	logger.Init(cfg.LogLevel, cfg.LogFile)

	table, err := bplus.Open(os.Args[1])
	if err != nil {
		logger.Fatalf("error opening db: %v", err)
	}

	rows, err := executor.NewRowCache(cfg.RowCacheEntries)
	if err != nil {
		logger.Fatalf("error building row cache: %v", err)
	}

	vm := executor.NewVM(table, rows, os.Stdout)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		printPrompt()

		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			doMetaCommand(line, table, rows)
			continue
		}

		l := lex.New(line)
		p := parser.New(l)
		stmt, err := p.ParseStatement()
		if err != nil {
			printParseError(err, line)
			continue
		}

		program, err := codegen.Compile(stmt)
		if err != nil {
			logger.Errorf("compile error: %v", err)
			fmt.Println("Syntax error. Could not parse statement.")
			continue
		}

		if err := vm.Execute(program); err != nil {
			logger.Fatalf("vm error: %v", err)
		}
	}

	// EOF on stdin behaves like .exit
	if err := table.Close(); err != nil {
		logger.Fatalf("error closing db file: %v", err)
	}
	rows.Close()
	fmt.Println("Bye!")
}
