package service

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/jobboard/jobfilter/pkg/config"
	"github.com/jobboard/jobfilter/pkg/contract"
	"github.com/jobboard/jobfilter/pkg/store"
)

type JobService struct {
	config  *config.Config
	logger  logrus.FieldLogger
	store   store.JobStore
	metrics *metrics
}

func NewJobService(
	logger logrus.FieldLogger, config *config.Config, store store.JobStore, registerer prometheus.Registerer,
) (*JobService, error) {
	metrics, err := newMetrics(registerer)
	if err != nil {
		return nil, fmt.Errorf("failed to register job service metrics: %w", err)
	}

	return &JobService{
		config:  config,
		logger:  logger,
		store:   store,
		metrics: metrics,
	}, nil
}

// SearchJobs implements contract.JobService.
func (s JobService) SearchJobs(ctx context.Context, input *contract.SearchJobs) (*contract.SearchJobsResponse, *contract.Error) {
	started := time.Now()
	jobs, err := s.store.SearchJobs(ctx, input.Filter)
	s.metrics.duration.Observe(time.Since(started).Seconds())

	if err != nil {
		s.metrics.searches.WithLabelValues(err.Code.String()).Inc()
		s.logger.WithFields(logrus.Fields{
			"filter": input.Filter,
			"code":   err.Code.String(),
		}).Debug("Job search failed")

		return nil, err
	}

	s.metrics.searches.WithLabelValues("ok").Inc()
	s.metrics.results.Observe(float64(len(jobs)))

	return &contract.SearchJobsResponse{Jobs: jobs}, nil
}
