package parser

import (
	"regexp"
	"strings"

	"github.com/jobboard/jobfilter/pkg/query/lexer"
)

const attributePrefix = "attribute:"

var (
	comparison   = regexp.MustCompile(`^(\w+)(<=|>=|!=|=|<|>|LIKE)(.+)$`)
	relationName = regexp.MustCompile(`^\w+$`)
)

// Number of tokens in `name OPERATOR ( values )`.
const relationTokens = 5

// isRelation looks ahead for `name OPERATOR (`.
func (p *parser) isRelation() bool {
	return p.peek(1).Kind == lexer.Word && p.peek(2).Kind == lexer.OpenParen
}

// classify parses the condition starting at the cursor and returns it together
// with the number of tokens it spans.
func (p *parser) classify() (Node, int, error) {
	if p.isRelation() {
		condition, err := p.parseRelation()
		if err != nil {
			return nil, 0, err
		}

		return condition, relationTokens, nil
	}

	condition, err := parseComparison(p.currentToken().Value)
	if err != nil {
		return nil, 0, p.errorf("%s", err.message)
	}

	return condition, 1, nil
}

func (p *parser) parseRelation() (*RelationCondition, error) {
	name := p.currentToken().Value
	if !relationName.MatchString(name) {
		return nil, p.errorf("invalid relation name %q", name)
	}

	var operator MembershipOperator

	switch op := p.peek(1).Value; op {
	case "HAS_ANY":
		operator = HasAny
	case "IS_ANY":
		operator = IsAny
	default:
		return nil, p.errorf("unsupported relation operator %q, expected HAS_ANY or IS_ANY", op)
	}

	values := p.peek(3)
	if values.Kind != lexer.Word {
		return nil, p.errorf("expected value list after %s %s (, got %s", name, p.peek(1).Value, values.Debug())
	}

	if closing := p.peek(4); closing.Kind != lexer.CloseParen {
		return nil, p.errorf("expected ')' after value list of %s, got %s", name, closing.Debug())
	}

	return &RelationCondition{
		Relation: name,
		Operator: operator,
		Values:   strings.Split(values.Value, ","),
	}, nil
}

// parseComparison decomposes a single `name OPERATOR value` token, with an
// optional `attribute:` prefix.
func parseComparison(token string) (Node, *Error) {
	isAttribute := strings.HasPrefix(token, attributePrefix)
	body := strings.TrimPrefix(token, attributePrefix)

	matches := comparison.FindStringSubmatch(body)
	if matches == nil {
		return nil, NewParserError("malformed condition %q, expected name, operator and value", token)
	}

	operator, ok := parseComparator(matches[2])
	if !ok {
		return nil, NewParserError("unknown comparison operator %q in %q", matches[2], token)
	}

	if isAttribute {
		return &AttributeCondition{Name: matches[1], Operator: operator, Value: matches[3]}, nil
	}

	return &FieldCondition{Field: matches[1], Operator: operator, Value: matches[3]}, nil
}
