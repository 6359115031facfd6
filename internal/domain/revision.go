package domain

import "time"

// MaxRevisionsPerContent caps retained revisions per
// (content_type, content_id, organization_id); insertion evicts the oldest
// excess.
const MaxRevisionsPerContent = 50

// MetaRestoredFrom marks a revision that documents a restore. Its value is
// the version number the content was restored from.
const MetaRestoredFrom = "restored_from"

// Revision is an immutable snapshot of a content entity's editable fields,
// recorded just before an update overwrites them. content_id is not a
// foreign key: the owning entity may be deleted later.
type Revision struct {
	ID          uint64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ContentType ContentType `gorm:"column:content_type;type:varchar(20);uniqueIndex:idx_revision_key,priority:1" json:"content_type"`
	ContentID   uint64      `gorm:"column:content_id;uniqueIndex:idx_revision_key,priority:2" json:"content_id"`
	// Version is monotonic per (content_type, content_id, organization_id),
	// starting at 1. The unique index makes concurrent duplicate
	// assignment a constraint violation instead of silent data loss.
	Version        uint      `gorm:"column:version;uniqueIndex:idx_revision_key,priority:4" json:"version"`
	Title          string    `gorm:"column:title;type:varchar(255)" json:"title"`
	Content        string    `gorm:"column:content;type:mediumtext" json:"content"`
	Metadata       JSONMap   `gorm:"column:metadata;type:json" json:"metadata"`
	AuthorID       *uint64   `gorm:"column:author_id" json:"author_id,omitempty"`
	OrganizationID uint64    `gorm:"column:organization_id;uniqueIndex:idx_revision_key,priority:3" json:"organization_id"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Revision) TableName() string { return "content_revisions" }

// FieldDiff is one changed field between two revisions. Metadata is
// compared as a single opaque serialized blob, not per key.
type FieldDiff struct {
	Field    string `json:"field"`
	OldValue string `json:"old_value"`
	NewValue string `json:"new_value"`
}
