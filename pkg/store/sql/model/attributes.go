package model

import "github.com/jobboard/jobfilter/pkg/query/compiler"

// Attribute mapped from table <attributes>.
type Attribute struct {
	ID      uint     `db:"id"      gorm:"column:id;primaryKey;autoIncrement:true"`
	Name    string   `db:"name"    gorm:"column:name;not null;uniqueIndex"`
	Type    string   `db:"type"    gorm:"column:type;not null;default:string"`
	Options []string `db:"options" gorm:"column:options;serializer:json"`
}

func (a Attribute) ToCompiler() *compiler.Attribute {
	return &compiler.Attribute{
		ID:   a.ID,
		Name: a.Name,
		Type: compiler.ParseAttributeType(a.Type),
	}
}
