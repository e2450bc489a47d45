package sql

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jobboard/jobfilter/pkg/contract"
	"github.com/jobboard/jobfilter/pkg/query"
	"github.com/jobboard/jobfilter/pkg/query/compiler"
	"github.com/jobboard/jobfilter/pkg/store/sql/model"
)

func applyFilter(ctx context.Context, store *Store, transaction *gorm.DB, filter string) *contract.Error {
	scope, err := query.ParseFilter(filter)
	if err != nil {
		return contract.NewErrorWith(
			contract.InvalidParameterValue,
			"error parsing search filter",
			err,
		)
	}

	log.Debugf("Filter tree: %#v", scope)

	builder := newQueryBuilder(store)
	if err := store.compiler.Compile(ctx, scope, builder); err != nil {
		var contractError *contract.Error
		if errors.As(err, &contractError) {
			return contractError
		}

		return contract.NewErrorWith(
			contract.InvalidParameterValue,
			"error compiling search filter",
			err,
		)
	}

	if len(builder.exprs) > 0 {
		transaction.Clauses(clause.Where{Exprs: builder.exprs})
	}

	return nil
}

func (s Store) SearchJobs(ctx context.Context, filter string) ([]*contract.Job, *contract.Error) {
	transaction := s.db.WithContext(ctx).Model(&model.Job{})

	if contractError := applyFilter(ctx, &s, transaction, filter); contractError != nil {
		return nil, contractError
	}

	var jobs []model.Job

	transaction.Preload("Languages").Preload("Locations").Preload("Categories").
		Preload("AttributeValues.Attribute").Order("jobs.id").Find(&jobs)

	if transaction.Error != nil {
		return nil, contract.NewErrorWith(
			contract.InternalError,
			"failed to query search jobs",
			transaction.Error,
		)
	}

	contractJobs := make([]*contract.Job, 0, len(jobs))
	for _, job := range jobs {
		contractJobs = append(contractJobs, job.ToContract())
	}

	return contractJobs, nil
}

// LookupAttribute implements compiler.AttributeResolver.
func (s Store) LookupAttribute(ctx context.Context, name string) (*compiler.Attribute, error) {
	var attribute model.Attribute

	if err := s.db.WithContext(ctx).Where("name = ?", name).First(&attribute).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil //nolint:nilnil
		}

		return nil, contract.NewErrorWith(
			contract.InternalError,
			"failed to look up attribute "+name,
			err,
		)
	}

	return attribute.ToCompiler(), nil
}
