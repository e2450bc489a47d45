package contract

import (
	"context"
	"time"
)

type Language struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type Location struct {
	ID      uint    `json:"id"`
	City    string  `json:"city"`
	State   *string `json:"state,omitempty"`
	Country string  `json:"country"`
}

type Category struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// AttributeValue is a dynamic attribute of a job with its raw stored value.
type AttributeValue struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value string `json:"value"`
}

type Job struct {
	ID          uint             `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	CompanyName string           `json:"company_name"`
	SalaryMin   *float64         `json:"salary_min"`
	SalaryMax   *float64         `json:"salary_max"`
	IsRemote    bool             `json:"is_remote"`
	JobType     string           `json:"job_type"`
	Status      string           `json:"status"`
	PublishedAt *time.Time       `json:"published_at"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	Languages   []Language       `json:"languages"`
	Locations   []Location       `json:"locations"`
	Categories  []Category       `json:"categories"`
	Attributes  []AttributeValue `json:"attributes"`
}

type SearchJobs struct {
	Filter string `json:"filter" query:"filter" validate:"max=4096,filterSyntax"`
}

// SearchJobsResponse is serialized over HTTP as the bare list of its jobs.
type SearchJobsResponse struct {
	Jobs []*Job `json:"jobs"`
}

// JobService is the read side of the job board.
type JobService interface {
	SearchJobs(ctx context.Context, input *SearchJobs) (*SearchJobsResponse, *Error)
}
