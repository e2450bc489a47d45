package model

import "github.com/jobboard/jobfilter/pkg/contract"

// Category mapped from table <categories>.
type Category struct {
	ID   uint   `db:"id"   gorm:"column:id;primaryKey;autoIncrement:true"`
	Name string `db:"name" gorm:"column:name;not null;uniqueIndex"`
}

func (c Category) ToContract() contract.Category {
	return contract.Category{
		ID:   c.ID,
		Name: c.Name,
	}
}
