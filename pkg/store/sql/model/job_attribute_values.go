package model

import "github.com/jobboard/jobfilter/pkg/contract"

// JobAttributeValue mapped from table <job_attribute_values>.
// Values are stored as text whatever the declared attribute type.
type JobAttributeValue struct {
	ID          uint      `db:"id"           gorm:"column:id;primaryKey;autoIncrement:true"`
	JobID       uint      `db:"job_id"       gorm:"column:job_id;not null;index"`
	AttributeID uint      `db:"attribute_id" gorm:"column:attribute_id;not null;index"`
	Value       string    `db:"value"        gorm:"column:value;not null"`
	Attribute   Attribute `gorm:"foreignKey:AttributeID"`
}

func (v JobAttributeValue) ToContract() contract.AttributeValue {
	return contract.AttributeValue{
		Name:  v.Attribute.Name,
		Type:  v.Attribute.Type,
		Value: v.Value,
	}
}
