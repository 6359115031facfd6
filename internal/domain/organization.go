package domain

import "time"

// Organization is the tenant boundary; all content data is scoped to one
type Organization struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(100)" json:"name"`
	Slug      string    `gorm:"column:slug;type:varchar(100);uniqueIndex" json:"slug"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Organization) TableName() string { return "organizations" }
