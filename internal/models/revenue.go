package models

type Revenue struct {
	Month   string `gorm:"primaryKey;size:4"` // short month code, e.g. "Jan"
	Revenue int64  `gorm:"not null"`
}

func (Revenue) TableName() string { return "revenue" }
