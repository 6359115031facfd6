package auth

import "github.com/quillcms/quill-backend/internal/domain"

// ResourceForContent maps a content type to its authorization resource
func ResourceForContent(t domain.ContentType) Resource {
	switch t {
	case domain.ContentTypePage:
		return ResourcePages
	case domain.ContentTypeProduct:
		return ResourceProducts
	default:
		return ResourcePosts
	}
}
