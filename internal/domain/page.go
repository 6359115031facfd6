package domain

import "time"

// Page is a static site page scoped to an organization
type Page struct {
	ID             uint64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	OrganizationID uint64     `gorm:"column:organization_id;index:idx_pages_org" json:"organization_id"`
	Title          string     `gorm:"column:title;type:varchar(255)" json:"title"`
	Slug           string     `gorm:"column:slug;type:varchar(255);index" json:"slug"`
	Content        string     `gorm:"column:content;type:mediumtext" json:"content"`
	Template       string     `gorm:"column:template;type:varchar(100)" json:"template"`
	SEOTitle       string     `gorm:"column:seo_title;type:varchar(255)" json:"seo_title"`
	SEODescription string     `gorm:"column:seo_description;type:text" json:"seo_description"`
	Status         string     `gorm:"column:status;type:varchar(20);index:idx_pages_due" json:"status"`
	ScheduledAt    *time.Time `gorm:"column:scheduled_at;index:idx_pages_due" json:"scheduled_at,omitempty"`
	PublishedAt    *time.Time `gorm:"column:published_at" json:"published_at,omitempty"`
	AuthorID       uint64     `gorm:"column:author_id" json:"author_id"`
	CreatedAt      time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Page) TableName() string { return "pages" }

// SnapshotMetadata builds the revision metadata bag for the current state
func (p *Page) SnapshotMetadata() JSONMap {
	return JSONMap{
		"slug":            p.Slug,
		"status":          p.Status,
		"template":        p.Template,
		"seo_title":       p.SEOTitle,
		"seo_description": p.SEODescription,
	}
}

// CreatePageRequest create payload
type CreatePageRequest struct {
	Title          string `json:"title" binding:"required"`
	Slug           string `json:"slug" binding:"required"`
	Content        string `json:"content"`
	Template       string `json:"template"`
	SEOTitle       string `json:"seo_title"`
	SEODescription string `json:"seo_description"`
}

// UpdatePageRequest update payload; nil pointers mean "leave unchanged"
type UpdatePageRequest struct {
	Title          *string `json:"title"`
	Slug           *string `json:"slug"`
	Content        *string `json:"content"`
	Template       *string `json:"template"`
	SEOTitle       *string `json:"seo_title"`
	SEODescription *string `json:"seo_description"`
}
