package parser

import "fmt"

// Node is an element of the filter tree: a *Scope or one of the condition types.
type Node interface {
	node()
}

// --------------------
// Logical Scopes
// --------------------

type LogicalOperator int

const (
	// NoOperator marks a scope that never saw AND/OR. It composes conjunctively.
	NoOperator LogicalOperator = iota
	And
	Or
)

func (o LogicalOperator) String() string {
	switch o {
	case NoOperator:
		return "NONE"
	case And:
		return "AND"
	case Or:
		return "OR"
	default:
		return fmt.Sprintf("LogicalOperator(%d)", int(o))
	}
}

// Scope is one nesting level of the filter. An empty scope restricts nothing.
type Scope struct {
	Operator LogicalOperator
	Children []Node
}

func (s *Scope) node() {}

// --------------------
// Comparison Operators
// --------------------

type Comparator int

const (
	Equals Comparator = iota
	NotEquals
	Less
	LessEquals
	Greater
	GreaterEquals
	Like
)

func (c Comparator) String() string {
	switch c {
	case Equals:
		return "="
	case NotEquals:
		return "!="
	case Less:
		return "<"
	case LessEquals:
		return "<="
	case Greater:
		return ">"
	case GreaterEquals:
		return ">="
	case Like:
		return "LIKE"
	default:
		return fmt.Sprintf("Comparator(%d)", int(c))
	}
}

func parseComparator(symbol string) (Comparator, bool) {
	switch symbol {
	case "=":
		return Equals, true
	case "!=":
		return NotEquals, true
	case "<":
		return Less, true
	case "<=":
		return LessEquals, true
	case ">":
		return Greater, true
	case ">=":
		return GreaterEquals, true
	case "LIKE":
		return Like, true
	default:
		return -1, false
	}
}

type MembershipOperator int

const (
	HasAny MembershipOperator = iota
	IsAny
)

func (m MembershipOperator) String() string {
	switch m {
	case HasAny:
		return "HAS_ANY"
	case IsAny:
		return "IS_ANY"
	default:
		return fmt.Sprintf("MembershipOperator(%d)", int(m))
	}
}

// --------------------
// Conditions
// --------------------

// field operator value, like salary_min>=80000
type FieldCondition struct {
	Field    string
	Operator Comparator
	Value    string
}

func (c *FieldCondition) node() {}

// attribute:name operator value, like attribute:years_experience>3
type AttributeCondition struct {
	Name     string
	Operator Comparator
	Value    string
}

func (c *AttributeCondition) node() {}

// relation operator (value,value), like languages HAS_ANY (PHP,Go)
type RelationCondition struct {
	Relation string
	Operator MembershipOperator
	Values   []string
}

func (c *RelationCondition) node() {}
