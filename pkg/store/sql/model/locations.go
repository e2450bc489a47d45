package model

import "github.com/jobboard/jobfilter/pkg/contract"

// Location mapped from table <locations>.
type Location struct {
	ID      uint    `db:"id"      gorm:"column:id;primaryKey;autoIncrement:true"`
	City    string  `db:"city"    gorm:"column:city;not null"`
	State   *string `db:"state"   gorm:"column:state"`
	Country string  `db:"country" gorm:"column:country;not null"`
}

func (l Location) ToContract() contract.Location {
	return contract.Location{
		ID:      l.ID,
		City:    l.City,
		State:   l.State,
		Country: l.Country,
	}
}
