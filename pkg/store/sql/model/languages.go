package model

import "github.com/jobboard/jobfilter/pkg/contract"

// Language mapped from table <languages>.
type Language struct {
	ID   uint   `db:"id"   gorm:"column:id;primaryKey;autoIncrement:true"`
	Name string `db:"name" gorm:"column:name;not null;uniqueIndex"`
}

func (l Language) ToContract() contract.Language {
	return contract.Language{
		ID:   l.ID,
		Name: l.Name,
	}
}
