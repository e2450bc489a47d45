package lexer

import "fmt"

type TokenKind int

const (
	EOF TokenKind = iota
	Word

	// Grouping.
	OpenParen
	CloseParen

	// Reserved Keywords.
	And
	Or
)

// Keywords are matched case-sensitively, "and" is an ordinary word.
//
//nolint:gochecknoglobals
var reservedLu = map[string]TokenKind{
	"AND": And,
	"OR":  Or,
}

type Token struct {
	Kind  TokenKind
	Value string
}

func (token Token) Debug() string {
	if token.Kind == Word {
		return fmt.Sprintf("%s(%s)", TokenKindString(token.Kind), token.Value)
	}

	return TokenKindString(token.Kind)
}

// IsKeyword reports whether the token is one of the logical operators.
func (token Token) IsKeyword() bool {
	return token.Kind == And || token.Kind == Or
}

func TokenKindString(kind TokenKind) string {
	switch kind {
	case EOF:
		return "eof"
	case Word:
		return "word"
	case OpenParen:
		return "open_paren"
	case CloseParen:
		return "close_paren"
	case And:
		return "and"
	case Or:
		return "or"
	default:
		return fmt.Sprintf("unknown(%d)", kind)
	}
}

func newUniqueToken(kind TokenKind, value string) Token {
	return Token{
		kind, value,
	}
}
