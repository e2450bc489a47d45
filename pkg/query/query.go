package query

import (
	"fmt"

	"github.com/jobboard/jobfilter/pkg/query/lexer"
	"github.com/jobboard/jobfilter/pkg/query/parser"
)

// ParseFilter turns a raw filter string into its filter tree. The empty
// string yields an empty scope, which restricts nothing.
func ParseFilter(input string) (*parser.Scope, error) {
	tokens := lexer.Tokenize(input)

	ast, err := parser.Parse(tokens)
	if err != nil {
		return nil, fmt.Errorf("error while parsing %q: %w", input, err)
	}

	return ast, nil
}
