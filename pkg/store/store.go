package store

import (
	"context"

	"github.com/jobboard/jobfilter/pkg/contract"
)

type JobStore interface {
	// SearchJobs returns the jobs matching the filter expression, with their
	// languages, locations, categories and attribute values loaded.
	// The empty filter matches every job.
	SearchJobs(ctx context.Context, filter string) ([]*contract.Job, *contract.Error)
}
