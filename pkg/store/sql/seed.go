package sql

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/jobboard/jobfilter/pkg/store/sql/model"
	"github.com/jobboard/jobfilter/pkg/utils"
)

// Seed inserts the demo catalog and job. Rows that already exist are reused,
// so seeding twice is harmless.
func (s Store) Seed(ctx context.Context) error {
	err := s.db.WithContext(ctx).Transaction(func(transaction *gorm.DB) error {
		languages := []model.Language{{Name: "PHP"}, {Name: "JavaScript"}}
		for i := range languages {
			if err := transaction.Where(model.Language{Name: languages[i].Name}).
				FirstOrCreate(&languages[i]).Error; err != nil {
				return err
			}
		}

		locations := []model.Location{
			{City: "New York", State: utils.PtrTo("NY"), Country: "USA"},
			{City: "Remote", Country: "Global"},
		}
		for i := range locations {
			if err := transaction.Where(model.Location{City: locations[i].City, Country: locations[i].Country}).
				FirstOrCreate(&locations[i]).Error; err != nil {
				return err
			}
		}

		category := model.Category{Name: "Development"}
		if err := transaction.Where(model.Category{Name: category.Name}).FirstOrCreate(&category).Error; err != nil {
			return err
		}

		attribute := model.Attribute{Name: "years_experience", Type: "number"}
		if err := transaction.Where(model.Attribute{Name: attribute.Name}).FirstOrCreate(&attribute).Error; err != nil {
			return err
		}

		var count int64
		if err := transaction.Model(&model.Job{}).Where("title = ?", "Senior PHP Developer").Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return nil
		}

		return transaction.Create(&model.Job{
			Title:           "Senior PHP Developer",
			Description:     "We are looking for an experienced PHP developer to join our team.",
			CompanyName:     "Tech Corp",
			SalaryMin:       utils.PtrTo(80000.0),
			SalaryMax:       utils.PtrTo(100000.0),
			IsRemote:        true,
			JobType:         model.JobTypeFullTime,
			Status:          model.JobStatusPublished,
			PublishedAt:     utils.PtrTo(time.Now().UTC()),
			Languages:       languages,
			Locations:       locations,
			Categories:      []model.Category{category},
			AttributeValues: []model.JobAttributeValue{{AttributeID: attribute.ID, Value: "5"}},
		}).Error
	})
	if err != nil {
		return fmt.Errorf("failed to seed jobs: %w", err)
	}

	return nil
}
