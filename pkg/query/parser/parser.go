package parser

import (
	"fmt"

	"github.com/jobboard/jobfilter/pkg/query/lexer"
)

type parser struct {
	tokens []lexer.Token
	pos    int
}

func newParser(tokens []lexer.Token) *parser {
	return &parser{
		tokens: tokens,
		pos:    0,
	}
}

var eof = lexer.Token{Kind: lexer.EOF, Value: "EOF"}

// peek returns the token offset positions after the cursor, EOF past the end.
func (p *parser) peek(offset int) lexer.Token {
	if p.pos+offset >= len(p.tokens) {
		return eof
	}

	return p.tokens[p.pos+offset]
}

func (p *parser) currentToken() lexer.Token {
	return p.peek(0)
}

func (p *parser) currentTokenKind() lexer.TokenKind {
	return p.currentToken().Kind
}

func (p *parser) hasTokens() bool {
	return p.currentTokenKind() != lexer.EOF
}

func (p *parser) printCurrentToken() string {
	return p.currentToken().Debug()
}

func (p *parser) advance() lexer.Token {
	tk := p.currentToken()
	p.pos++
	return tk
}

type Error struct {
	// Position is the index of the offending token.
	Position int
	message  string
}

func NewParserError(format string, a ...any) *Error {
	return &Error{message: fmt.Sprintf(format, a...)}
}

func (e *Error) Error() string {
	return fmt.Sprintf("at token %d: %s", e.Position, e.message)
}

func (p *parser) errorf(format string, a ...any) *Error {
	err := NewParserError(format, a...)
	err.Position = p.pos

	return err
}

// parseScope parses tokens until the end of input or a closing parenthesis,
// which is left for the caller.
//
// An AND/OR keyword labels the current scope and the rest of the level is
// parsed as a single child scope, so `a AND b OR c` reads as `a AND (b OR c)`.
func (p *parser) parseScope() (*Scope, error) {
	scope := &Scope{Children: make([]Node, 0)}

	for p.hasTokens() {
		switch p.currentTokenKind() {
		case lexer.CloseParen:
			return scope, nil
		case lexer.OpenParen:
			open := p.pos
			p.advance() // Consume the OPEN_PAREN

			child, err := p.parseScope()
			if err != nil {
				return nil, err
			}

			if p.currentTokenKind() != lexer.CloseParen {
				err := NewParserError("unmatched '('")
				err.Position = open

				return nil, err
			}

			p.advance() // Consume the CLOSE_PAREN
			scope.Children = append(scope.Children, child)
		case lexer.And, lexer.Or:
			keyword := p.advance()
			if keyword.Kind == lexer.And {
				scope.Operator = And
			} else {
				scope.Operator = Or
			}

			if !p.hasTokens() || p.currentTokenKind() == lexer.CloseParen {
				return nil, p.errorf("expected condition after %s, got %s", keyword.Value, p.printCurrentToken())
			}

			child, err := p.parseScope()
			if err != nil {
				return nil, err
			}

			scope.Children = append(scope.Children, child)
		default:
			condition, consumed, err := p.classify()
			if err != nil {
				return nil, err
			}

			scope.Children = append(scope.Children, condition)
			p.pos += consumed
		}
	}

	return scope, nil
}

func (p *parser) parse() (*Scope, error) {
	scope, err := p.parseScope()
	if err != nil {
		return nil, err
	}

	if p.hasTokens() {
		return nil, p.errorf("unmatched ')'")
	}

	return scope, nil
}

// Parse builds the filter tree for a token list produced by lexer.Tokenize.
func Parse(tokens []lexer.Token) (*Scope, error) {
	parser := newParser(tokens)
	return parser.parse()
}
