package compiler

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/jobboard/jobfilter/pkg/query/parser"
)

// Builder receives the predicates of a filter tree. Every call restricts the
// builder's current scope further, i.e. predicates are conjunctive.
type Builder interface {
	// Compare restricts a scalar field of the record.
	Compare(field string, operator parser.Comparator, value any) error
	// OrGroup adds the disjunction of the groups. Each group is compiled into
	// a builder of its own so its conditions do not leak into its siblings.
	OrGroup(groups []func(Builder) error) error
	// ExistsRelated requires a related row whose discriminant is one of values.
	ExistsRelated(relation, discriminant string, values []string) error
	// ExistsAttributeValue requires a value row of the attribute satisfying the comparison.
	ExistsAttributeValue(attribute *Attribute, operator parser.Comparator, value any) error
}

// AttributeResolver looks up declared attributes. A nil attribute with a nil
// error means the name is not declared.
type AttributeResolver interface {
	LookupAttribute(ctx context.Context, name string) (*Attribute, error)
}

type UnknownAttributePolicy int

const (
	// IgnoreUnknownAttributes drops conditions on undeclared attributes.
	IgnoreUnknownAttributes UnknownAttributePolicy = iota
	// RejectUnknownAttributes fails compilation with ErrUnknownAttribute.
	RejectUnknownAttributes
)

func ParseUnknownAttributePolicy(policy string) (UnknownAttributePolicy, error) {
	switch policy {
	case "", "ignore":
		return IgnoreUnknownAttributes, nil
	case "reject":
		return RejectUnknownAttributes, nil
	default:
		return -1, fmt.Errorf("invalid unknown attribute policy %q, expected ignore or reject", policy)
	}
}

var ErrUnknownAttribute = errors.New("unknown attribute")

type Compiler struct {
	logger            logrus.FieldLogger
	fields            FieldTypes
	attributes        AttributeResolver
	unknownAttributes UnknownAttributePolicy
}

func NewCompiler(
	logger logrus.FieldLogger, fields FieldTypes, attributes AttributeResolver, policy UnknownAttributePolicy,
) *Compiler {
	return &Compiler{
		logger:            logger,
		fields:            fields,
		attributes:        attributes,
		unknownAttributes: policy,
	}
}

// Discriminant is the column of a related entity that relation values are matched against.
func Discriminant(relation string) string {
	switch relation {
	case "languages", "categories":
		return "name"
	default:
		return "city"
	}
}

// Compile walks the tree depth-first and hands its predicates to the builder.
// The first error aborts the walk.
func (c *Compiler) Compile(ctx context.Context, node parser.Node, builder Builder) error {
	switch node := node.(type) {
	case *parser.Scope:
		return c.compileScope(ctx, node, builder)
	case *parser.FieldCondition:
		return c.compileField(node, builder)
	case *parser.RelationCondition:
		return builder.ExistsRelated(node.Relation, Discriminant(node.Relation), node.Values)
	case *parser.AttributeCondition:
		return c.compileAttribute(ctx, node, builder)
	default:
		return fmt.Errorf("unexpected filter node %T", node)
	}
}

func (c *Compiler) compileScope(ctx context.Context, scope *parser.Scope, builder Builder) error {
	if scope.Operator != parser.Or {
		for _, child := range scope.Children {
			if err := c.Compile(ctx, child, builder); err != nil {
				return err
			}
		}

		return nil
	}

	groups := make([]func(Builder) error, 0, len(scope.Children))
	for _, child := range scope.Children {
		child := child
		groups = append(groups, func(group Builder) error {
			return c.Compile(ctx, child, group)
		})
	}

	return builder.OrGroup(groups)
}

func likePattern(value string) string {
	return "%" + value + "%"
}

func (c *Compiler) compileField(condition *parser.FieldCondition, builder Builder) error {
	if condition.Operator == parser.Like {
		return builder.Compare(condition.Field, parser.Like, likePattern(condition.Value))
	}

	fieldType, ok := c.fields.Lookup(condition.Field)
	if !ok {
		return builder.Compare(condition.Field, condition.Operator, condition.Value)
	}

	value, err := CoerceField(condition.Field, fieldType, condition.Value)
	if err != nil {
		return err
	}

	return builder.Compare(condition.Field, condition.Operator, value)
}

func (c *Compiler) compileAttribute(ctx context.Context, condition *parser.AttributeCondition, builder Builder) error {
	attribute, err := c.attributes.LookupAttribute(ctx, condition.Name)
	if err != nil {
		return fmt.Errorf("failed to resolve attribute %q: %w", condition.Name, err)
	}

	if attribute == nil {
		if c.unknownAttributes == RejectUnknownAttributes {
			return fmt.Errorf("%w %q", ErrUnknownAttribute, condition.Name)
		}

		c.logger.WithField("attribute", condition.Name).Warn("Dropping filter condition on unknown attribute")

		return nil
	}

	if condition.Operator == parser.Like {
		return builder.ExistsAttributeValue(attribute, parser.Like, likePattern(condition.Value))
	}

	value, err := CoerceAttribute(attribute.Name, attribute.Type, condition.Value)
	if err != nil {
		return err
	}

	if attribute.Type != BooleanAttribute {
		return builder.ExistsAttributeValue(attribute, condition.Operator, value)
	}

	// Booleans only compare for (in)equality, reduced to the value that must be stored.
	flag, _ := value.(bool)

	switch condition.Operator {
	case parser.Equals:
		return builder.ExistsAttributeValue(attribute, parser.Equals, flag)
	case parser.NotEquals:
		return builder.ExistsAttributeValue(attribute, parser.Equals, !flag)
	default:
		return &CoercionError{
			Subject: "attribute:" + attribute.Name,
			Type:    attribute.Type.String(),
			Value:   condition.Value,
			Err:     fmt.Errorf("operator %s is not supported, use = or !=", condition.Operator),
		}
	}
}
