package domain

// ContentType identifies which content entity a revision or schedule
// operation targets
type ContentType string

const (
	ContentTypePost    ContentType = "post"
	ContentTypePage    ContentType = "page"
	ContentTypeProduct ContentType = "product"
)

// Valid reports whether the content type is one of the enumerated set
func (t ContentType) Valid() bool {
	switch t {
	case ContentTypePost, ContentTypePage, ContentTypeProduct:
		return true
	}
	return false
}

func (t ContentType) String() string { return string(t) }

// Content statuses. Posts and pages publish to "published", products to
// "active" — a content-type-specific label for the same terminal state.
const (
	StatusDraft     = "draft"
	StatusScheduled = "scheduled"
	StatusPublished = "published"
	StatusActive    = "active"
	StatusArchived  = "archived"
)

// PublishedStatus returns the terminal publish-state label for the type
func (t ContentType) PublishedStatus() string {
	if t == ContentTypeProduct {
		return StatusActive
	}
	return StatusPublished
}
