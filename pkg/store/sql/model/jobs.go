package model

import (
	"time"

	"github.com/jobboard/jobfilter/pkg/contract"
)

type JobType string

const (
	JobTypeFullTime  JobType = "full-time"
	JobTypePartTime  JobType = "part-time"
	JobTypeContract  JobType = "contract"
	JobTypeFreelance JobType = "freelance"
)

type JobStatus string

const (
	JobStatusDraft     JobStatus = "draft"
	JobStatusPublished JobStatus = "published"
	JobStatusArchived  JobStatus = "archived"
)

// Job mapped from table <jobs>.
type Job struct {
	ID              uint       `db:"id"           gorm:"column:id;primaryKey;autoIncrement:true"`
	Title           string     `db:"title"        gorm:"column:title;not null"`
	Description     string     `db:"description"  gorm:"column:description"`
	CompanyName     string     `db:"company_name" gorm:"column:company_name;not null"`
	SalaryMin       *float64   `db:"salary_min"   gorm:"column:salary_min"`
	SalaryMax       *float64   `db:"salary_max"   gorm:"column:salary_max"`
	IsRemote        bool       `db:"is_remote"    gorm:"column:is_remote;not null;default:false"`
	JobType         JobType    `db:"job_type"     gorm:"column:job_type;not null"`
	Status          JobStatus  `db:"status"       gorm:"column:status;not null;default:draft"`
	PublishedAt     *time.Time `db:"published_at" gorm:"column:published_at"`
	CreatedAt       time.Time  `db:"created_at"   gorm:"column:created_at"`
	UpdatedAt       time.Time  `db:"updated_at"   gorm:"column:updated_at"`
	Languages       []Language `gorm:"many2many:job_language"`
	Locations       []Location `gorm:"many2many:job_location"`
	Categories      []Category `gorm:"many2many:job_category"`
	AttributeValues []JobAttributeValue
}

func (j Job) ToContract() *contract.Job {
	languages := make([]contract.Language, 0, len(j.Languages))
	for _, language := range j.Languages {
		languages = append(languages, language.ToContract())
	}

	locations := make([]contract.Location, 0, len(j.Locations))
	for _, location := range j.Locations {
		locations = append(locations, location.ToContract())
	}

	categories := make([]contract.Category, 0, len(j.Categories))
	for _, category := range j.Categories {
		categories = append(categories, category.ToContract())
	}

	attributes := make([]contract.AttributeValue, 0, len(j.AttributeValues))
	for _, value := range j.AttributeValues {
		attributes = append(attributes, value.ToContract())
	}

	return &contract.Job{
		ID:          j.ID,
		Title:       j.Title,
		Description: j.Description,
		CompanyName: j.CompanyName,
		SalaryMin:   j.SalaryMin,
		SalaryMax:   j.SalaryMax,
		IsRemote:    j.IsRemote,
		JobType:     string(j.JobType),
		Status:      string(j.Status),
		PublishedAt: j.PublishedAt,
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   j.UpdatedAt,
		Languages:   languages,
		Locations:   locations,
		Categories:  categories,
		Attributes:  attributes,
	}
}
