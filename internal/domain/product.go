package domain

import "time"

// Product is a shop product scoped to an organization. Its terminal
// publish state is "active" rather than "published".
type Product struct {
	ID               uint64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	OrganizationID   uint64     `gorm:"column:organization_id;index:idx_products_org" json:"organization_id"`
	Name             string     `gorm:"column:name;type:varchar(255)" json:"name"`
	Slug             string     `gorm:"column:slug;type:varchar(255);index" json:"slug"`
	Description      string     `gorm:"column:description;type:mediumtext" json:"description"`
	ShortDescription string     `gorm:"column:short_description;type:text" json:"short_description"`
	PriceCents       int64      `gorm:"column:price_cents" json:"price_cents"`
	Currency         string     `gorm:"column:currency;type:varchar(3);default:'USD'" json:"currency"`
	SEOTitle         string     `gorm:"column:seo_title;type:varchar(255)" json:"seo_title"`
	SEODescription   string     `gorm:"column:seo_description;type:text" json:"seo_description"`
	Status           string     `gorm:"column:status;type:varchar(20);index:idx_products_due" json:"status"`
	ScheduledAt      *time.Time `gorm:"column:scheduled_at;index:idx_products_due" json:"scheduled_at,omitempty"`
	ActivatedAt      *time.Time `gorm:"column:activated_at" json:"activated_at,omitempty"`
	CreatedAt        time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Product) TableName() string { return "products" }

// DisplayName returns the revision title snapshot for a product
func (p *Product) DisplayName() string { return p.Name }

// SnapshotMetadata builds the revision metadata bag for the current state
func (p *Product) SnapshotMetadata() JSONMap {
	return JSONMap{
		"slug":              p.Slug,
		"status":            p.Status,
		"short_description": p.ShortDescription,
		"price_cents":       p.PriceCents,
		"currency":          p.Currency,
		"seo_title":         p.SEOTitle,
		"seo_description":   p.SEODescription,
	}
}

// CreateProductRequest create payload
type CreateProductRequest struct {
	Name             string `json:"name" binding:"required"`
	Slug             string `json:"slug" binding:"required"`
	Description      string `json:"description"`
	ShortDescription string `json:"short_description"`
	PriceCents       int64  `json:"price_cents"`
	Currency         string `json:"currency"`
	SEOTitle         string `json:"seo_title"`
	SEODescription   string `json:"seo_description"`
}

// UpdateProductRequest update payload; nil pointers mean "leave unchanged"
type UpdateProductRequest struct {
	Name             *string `json:"name"`
	Slug             *string `json:"slug"`
	Description      *string `json:"description"`
	ShortDescription *string `json:"short_description"`
	PriceCents       *int64  `json:"price_cents"`
	Currency         *string `json:"currency"`
	SEOTitle         *string `json:"seo_title"`
	SEODescription   *string `json:"seo_description"`
}
