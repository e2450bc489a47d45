package sql

import (
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm/clause"

	"github.com/jobboard/jobfilter/pkg/contract"
	"github.com/jobboard/jobfilter/pkg/query/compiler"
	"github.com/jobboard/jobfilter/pkg/query/parser"
	"github.com/jobboard/jobfilter/pkg/store/sql/model"
)

type relation struct {
	table     string
	joinTable string
	// foreignKey is the join table column referencing table.
	foreignKey string
}

//nolint:gochecknoglobals
var relations = map[string]relation{
	"languages":  {table: "languages", joinTable: "job_language", foreignKey: "language_id"},
	"locations":  {table: "locations", joinTable: "job_location", foreignKey: "location_id"},
	"categories": {table: "categories", joinTable: "job_category", foreignKey: "category_id"},
}

func relationNames() string {
	names := make([]string, 0, len(relations))
	for name := range relations {
		names = append(names, name)
	}

	sort.Strings(names)

	return strings.Join(names, ", ")
}

// queryBuilder collects the predicates of a filter as gorm clause expressions
// that all apply to the jobs table.
type queryBuilder struct {
	store *Store
	exprs []clause.Expression
}

func newQueryBuilder(store *Store) *queryBuilder {
	return &queryBuilder{store: store}
}

func comparison(column clause.Column, operator parser.Comparator, value any) clause.Expression {
	switch operator {
	case parser.NotEquals:
		return clause.Neq{Column: column, Value: value}
	case parser.Less:
		return clause.Lt{Column: column, Value: value}
	case parser.LessEquals:
		return clause.Lte{Column: column, Value: value}
	case parser.Greater:
		return clause.Gt{Column: column, Value: value}
	case parser.GreaterEquals:
		return clause.Gte{Column: column, Value: value}
	case parser.Like:
		return clause.Like{Column: column, Value: value}
	case parser.Equals:
		fallthrough
	default:
		return clause.Eq{Column: column, Value: value}
	}
}

func (b *queryBuilder) Compare(field string, operator parser.Comparator, value any) error {
	// Only column names, Go field names such as IsRemote are not part of the filter language.
	schemaField, ok := b.store.jobs.FieldsByDBName[field]
	if !ok {
		return contract.NewError(
			contract.InvalidParameterValue,
			fmt.Sprintf("invalid job field %q", field),
		)
	}

	column := clause.Column{Table: b.store.jobs.Table, Name: schemaField.DBName}
	b.exprs = append(b.exprs, comparison(column, operator, value))

	return nil
}

func (b *queryBuilder) OrGroup(groups []func(compiler.Builder) error) error {
	alternatives := make([]clause.Expression, 0, len(groups))

	for _, group := range groups {
		sub := newQueryBuilder(b.store)
		if err := group(sub); err != nil {
			return err
		}

		// A group without predicates, e.g. a dropped attribute condition, does not restrict.
		if len(sub.exprs) == 0 {
			continue
		}

		alternatives = append(alternatives, clause.And(sub.exprs...))
	}

	switch len(alternatives) {
	case 0:
	case 1:
		b.exprs = append(b.exprs, alternatives[0])
	default:
		b.exprs = append(b.exprs, clause.Or(alternatives...))
	}

	return nil
}

// ExistsRelated renders
//
//	EXISTS (
//	  SELECT 1 FROM job_language
//	  JOIN languages ON languages.id = job_language.language_id
//	  WHERE job_language.job_id = jobs.id AND languages.name IN (...)
//	)
func (b *queryBuilder) ExistsRelated(name, discriminant string, values []string) error {
	rel, ok := relations[name]
	if !ok {
		return contract.NewError(
			contract.InvalidParameterValue,
			fmt.Sprintf("invalid relation %q, expected one of %s", name, relationNames()),
		)
	}

	subquery := b.store.db.Table(rel.joinTable).
		Select("1").
		Joins(fmt.Sprintf("JOIN %s ON %s.id = %s.%s", rel.table, rel.table, rel.joinTable, rel.foreignKey)).
		Where(fmt.Sprintf("%s.job_id = %s.id", rel.joinTable, b.store.jobs.Table)).
		Where(fmt.Sprintf("%s.%s IN ?", rel.table, discriminant), values)

	b.exprs = append(b.exprs, clause.Expr{SQL: "EXISTS (?)", Vars: []any{subquery}})

	return nil
}

// numericCast converts a text column to a number in the current dialect.
// Non numeric text becomes NULL on postgres and sqlserver, sqlite and mysql cast it to 0.
func (s *Store) numericCast(column string) string {
	switch s.db.Dialector.Name() {
	case "postgres":
		// No question marks, gorm would take them for placeholders.
		return fmt.Sprintf(
			"(CASE WHEN %s ~ '^ *[-+]{0,1}[0-9]*[.]{0,1}[0-9]+([eE][-+]{0,1}[0-9]+){0,1} *$' "+
				"THEN CAST(%s AS DOUBLE PRECISION) END)",
			column, column,
		)
	case "mysql":
		return fmt.Sprintf("CAST(%s AS DECIMAL(65,10))", column)
	case "sqlserver":
		return fmt.Sprintf("TRY_CAST(%s AS FLOAT)", column)
	default:
		return fmt.Sprintf("CAST(%s AS REAL)", column)
	}
}

// ExistsAttributeValue renders
//
//	EXISTS (
//	  SELECT 1 FROM job_attribute_values
//	  WHERE job_attribute_values.job_id = jobs.id
//	  AND job_attribute_values.attribute_id = ? AND <value predicate>
//	)
func (b *queryBuilder) ExistsAttributeValue(attribute *compiler.Attribute, operator parser.Comparator, value any) error {
	const column = "job_attribute_values.value"

	predicate := fmt.Sprintf("%s %s ?", column, operator)

	switch {
	case operator == parser.Like:
	case attribute.Type == compiler.NumberAttribute:
		predicate = fmt.Sprintf("%s %s ?", b.store.numericCast(column), operator)
	case attribute.Type == compiler.BooleanAttribute:
		predicate = fmt.Sprintf("LOWER(%s) IN ?", column)

		if flag, _ := value.(bool); flag {
			value = compiler.TruthyValues
		} else {
			value = compiler.FalsyValues
		}
	}

	subquery := b.store.db.Model(&model.JobAttributeValue{}).
		Select("1").
		Where(fmt.Sprintf("job_attribute_values.job_id = %s.id", b.store.jobs.Table)).
		Where("job_attribute_values.attribute_id = ?", attribute.ID).
		Where(predicate, value)

	b.exprs = append(b.exprs, clause.Expr{SQL: "EXISTS (?)", Vars: []any{subquery}})

	return nil
}
