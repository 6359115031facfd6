package domain

import "time"

// Post is a blog post scoped to an organization
type Post struct {
	ID             uint64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	OrganizationID uint64     `gorm:"column:organization_id;index:idx_posts_org" json:"organization_id"`
	Title          string     `gorm:"column:title;type:varchar(255)" json:"title"`
	Slug           string     `gorm:"column:slug;type:varchar(255);index" json:"slug"`
	Content        string     `gorm:"column:content;type:mediumtext" json:"content"`
	Excerpt        string     `gorm:"column:excerpt;type:text" json:"excerpt"`
	SEOTitle       string     `gorm:"column:seo_title;type:varchar(255)" json:"seo_title"`
	SEODescription string     `gorm:"column:seo_description;type:text" json:"seo_description"`
	CategoryName   string     `gorm:"column:category_name;type:varchar(100)" json:"category_name"`
	TagNames       string     `gorm:"column:tag_names;type:varchar(500)" json:"tag_names"`
	Status         string     `gorm:"column:status;type:varchar(20);index:idx_posts_due" json:"status"`
	ScheduledAt    *time.Time `gorm:"column:scheduled_at;index:idx_posts_due" json:"scheduled_at,omitempty"`
	PublishedAt    *time.Time `gorm:"column:published_at" json:"published_at,omitempty"`
	AuthorID       uint64     `gorm:"column:author_id" json:"author_id"`
	CreatedAt      time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Post) TableName() string { return "posts" }

// SnapshotMetadata builds the revision metadata bag for the current state
func (p *Post) SnapshotMetadata() JSONMap {
	return JSONMap{
		"slug":            p.Slug,
		"status":          p.Status,
		"excerpt":         p.Excerpt,
		"seo_title":       p.SEOTitle,
		"seo_description": p.SEODescription,
		"category":        p.CategoryName,
		"tags":            p.TagNames,
	}
}

// CreatePostRequest create payload
type CreatePostRequest struct {
	Title          string `json:"title" binding:"required"`
	Slug           string `json:"slug" binding:"required"`
	Content        string `json:"content"`
	Excerpt        string `json:"excerpt"`
	SEOTitle       string `json:"seo_title"`
	SEODescription string `json:"seo_description"`
	CategoryName   string `json:"category_name"`
	TagNames       string `json:"tag_names"`
}

// UpdatePostRequest update payload; nil pointers mean "leave unchanged"
type UpdatePostRequest struct {
	Title          *string `json:"title"`
	Slug           *string `json:"slug"`
	Content        *string `json:"content"`
	Excerpt        *string `json:"excerpt"`
	SEOTitle       *string `json:"seo_title"`
	SEODescription *string `json:"seo_description"`
	CategoryName   *string `json:"category_name"`
	TagNames       *string `json:"tag_names"`
}
