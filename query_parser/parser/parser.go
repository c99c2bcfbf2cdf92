package parser

import (
	"strconv"

	lex "MiniDB/query_parser/lexer"
	"MiniDB/types"

	"github.com/pkg/errors"
)

// Parse failures. The REPL owns the user-facing strings; these mark which
// one applies.
var (
	ErrSyntax              = errors.New("could not parse statement")
	ErrUnrecognizedKeyword = errors.New("unrecognized keyword at start of statement")
	ErrStringTooLong       = errors.New("string is too long")
	ErrNegativeID          = errors.New("id must be positive")
	ErrMissingDeleteID     = errors.New("must provide an id to delete")
)

type Parser struct {
	l         *lex.Lexer
	curToken  lex.Token
	peekToken lex.Token
}

func New(l *lex.Lexer) *Parser {
	p := &Parser{l: l}
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

// ParseStatement parses one statement line.
func (p *Parser) ParseStatement() (Statement, error) {
	switch p.curToken.Kind {
	case lex.INSERT:
		return p.parseInsert()
	case lex.SELECT:
		return p.parseSelect()
	case lex.DELETE:
		return p.parseDelete()
	case lex.END:
		return nil, ErrSyntax
	}
	return nil, ErrUnrecognizedKeyword
}

// parseID consumes the current token as a u32 id.
func (p *Parser) parseID() (uint32, error) {
	if p.curToken.Kind != lex.INT {
		return 0, ErrSyntax
	}
	value := p.curToken.Value
	if value[0] == '-' {
		return 0, ErrNegativeID
	}
	id, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, ErrSyntax
	}
	p.nextToken()
	return uint32(id), nil
}

// parseWord consumes the current token as a bare string argument. Numeric
// words are allowed; usernames like "42" are legal.
func (p *Parser) parseWord() (string, error) {
	if p.curToken.Kind == lex.END {
		return "", ErrSyntax
	}
	word := p.curToken.Value
	p.nextToken()
	return word, nil
}

func (p *Parser) parseInsert() (*InsertStmt, error) {
	p.nextToken() // consume insert

	id, err := p.parseID()
	if err != nil {
		return nil, err
	}
	username, err := p.parseWord()
	if err != nil {
		return nil, err
	}
	email, err := p.parseWord()
	if err != nil {
		return nil, err
	}

	if len(username) > types.ColumnUsernameSize || len(email) > types.ColumnEmailSize {
		return nil, ErrStringTooLong
	}

	return &InsertStmt{Row: types.NewRow(id, username, email)}, nil
}

func (p *Parser) parseSelect() (*SelectStmt, error) {
	p.nextToken() // consume select

	if p.curToken.Kind == lex.END {
		return &SelectStmt{}, nil
	}

	id, err := p.parseID()
	if err != nil {
		return nil, ErrSyntax
	}
	return &SelectStmt{ID: &id}, nil
}

func (p *Parser) parseDelete() (*DeleteStmt, error) {
	p.nextToken() // consume delete

	if p.curToken.Kind != lex.INT {
		return nil, ErrMissingDeleteID
	}
	id, err := p.parseID()
	if err != nil {
		return nil, err
	}
	return &DeleteStmt{ID: id}, nil
}
