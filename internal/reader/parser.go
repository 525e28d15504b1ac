package reader

import (
	"fmt"
	"strconv"

	"github.com/hqlcompiler/hqlc/internal/token"
)

// ParseError is a malformed-input error raised by the reader, before the
// lowering core ever sees the form.
type ParseError struct {
	Message string
	Pos     token.Position
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// Parser turns a token stream into a sequence of surface-AST Nodes.
type Parser struct {
	lex    *Lexer
	cur    token.Token
	peek   token.Token
	errors []*ParseError
}

// NewParser constructs a Parser over lex.
func NewParser(lex *Lexer) *Parser {
	p := &Parser{lex: lex}
	p.next()
	p.next()
	return p
}

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.lex.NextToken()
}

func (p *Parser) errorf(pos token.Position, format string, args ...any) {
	p.errors = append(p.errors, &ParseError{Message: fmt.Sprintf(format, args...), Pos: pos})
}

// Errors returns every parse error accumulated so far.
func (p *Parser) Errors() []*ParseError { return p.errors }

// ParseProgram reads every top-level form until EOF. It does not stop at the
// first malformed form: each top-level form is parsed independently so a
// single bad form doesn't prevent the rest of the file from being read,
// mirroring the top-level resilience the lowering core applies later
// (spec §7).
func (p *Parser) ParseProgram() []Node {
	var nodes []Node
	for p.cur.Type != token.EOF {
		startPos := p.cur.Pos
		n := p.parseNode()
		if n == nil {
			if p.cur.Pos == startPos {
				// Guarantee forward progress on unparseable input.
				p.next()
			}
			continue
		}
		nodes = append(nodes, n)
	}
	return nodes
}

func (p *Parser) parseNode() Node {
	switch p.cur.Type {
	case token.LPAREN:
		return p.parseList(token.LPAREN, token.RPAREN)
	case token.LBRACKET:
		return p.parseList(token.LBRACKET, token.RBRACKET)
	case token.QUOTE:
		pos := p.cur.Pos
		p.next()
		inner := p.parseNode()
		if inner == nil {
			return nil
		}
		return &List{Position: pos, Elements: []Node{
			&Symbol{Position: pos, Name: "quote"},
			inner,
		}}
	case token.SYMBOL:
		tok := p.cur
		p.next()
		return &Symbol{Position: tok.Pos, Name: tok.Literal}
	case token.STRING:
		tok := p.cur
		p.next()
		return &Literal{Position: tok.Pos, Value: tok.Literal}
	case token.NUMBER:
		tok := p.cur
		p.next()
		f, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			p.errorf(tok.Pos, "malformed number %q", tok.Literal)
			return nil
		}
		return &Literal{Position: tok.Pos, Value: f}
	case token.BOOLEAN:
		tok := p.cur
		p.next()
		return &Literal{Position: tok.Pos, Value: tok.Literal == "true"}
	case token.NIL:
		tok := p.cur
		p.next()
		return &Literal{Position: tok.Pos, Value: nil}
	case token.RPAREN, token.RBRACKET, token.RBRACE:
		p.errorf(p.cur.Pos, "unexpected %s", p.cur.Type)
		p.next()
		return nil
	case token.ILLEGAL:
		p.errorf(p.cur.Pos, "illegal character %q", p.cur.Literal)
		p.next()
		return nil
	default:
		p.errorf(p.cur.Pos, "unexpected token %s", p.cur.Type)
		p.next()
		return nil
	}
}

func (p *Parser) parseList(open, close token.Type) Node {
	pos := p.cur.Pos
	p.next() // consume opening delimiter

	var elems []Node
	for p.cur.Type != close && p.cur.Type != token.EOF {
		n := p.parseNode()
		if n != nil {
			elems = append(elems, n)
		}
	}

	if p.cur.Type != close {
		p.errorf(pos, "unterminated list starting at %s", pos)
		return &List{Position: pos, Elements: elems}
	}
	p.next() // consume closing delimiter
	_ = open
	return &List{Position: pos, Elements: elems}
}

// Parse is a convenience entry point: lex and parse source in one call.
func Parse(source string) ([]Node, []*ParseError) {
	p := NewParser(New(source))
	nodes := p.ParseProgram()
	return nodes, p.Errors()
}
