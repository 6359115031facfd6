package auth

import (
	"testing"

	"github.com/quillcms/quill-backend/internal/common"
	"github.com/stretchr/testify/assert"
)

func TestAuthorize_NilPrincipal(t *testing.T) {
	eval := NewEvaluator()

	scope, err := eval.Authorize(nil, ResourcePosts, ActionView)

	assert.Nil(t, scope)
	assert.ErrorIs(t, err, common.ErrUnauthenticated)
}

func TestAuthorize_AuthorCannotDeleteUsers(t *testing.T) {
	eval := NewEvaluator()
	p := &Principal{UserID: 7, Role: RoleAuthor, OrganizationID: 3}

	scope, err := eval.Authorize(p, ResourceUsers, ActionDelete)

	assert.Nil(t, scope)
	assert.ErrorIs(t, err, common.ErrForbidden)
}

func TestAuthorize_AdminPublishPostsAttachesOrganization(t *testing.T) {
	eval := NewEvaluator()
	p := &Principal{UserID: 12, Role: RoleAdmin, OrganizationID: 42}

	scope, err := eval.Authorize(p, ResourcePosts, ActionPublish)

	assert.NoError(t, err)
	assert.Equal(t, uint64(42), scope.OrganizationID)
	assert.Equal(t, uint64(12), scope.UserID)
	assert.Equal(t, RoleAdmin, scope.Role)
}

func TestAuthorize_UnknownRoleDenied(t *testing.T) {
	eval := NewEvaluator()
	p := &Principal{UserID: 1, Role: Role("intern"), OrganizationID: 1}

	_, err := eval.Authorize(p, ResourcePosts, ActionView)

	assert.ErrorIs(t, err, common.ErrForbidden)
}

func TestDefaultMatrix_SuperAdminHasEveryGrant(t *testing.T) {
	m := DefaultMatrix()

	for _, resource := range allResources {
		for _, action := range allActions {
			assert.True(t, m.Allows(RoleSuperAdmin, resource, action),
				"super_admin should be allowed %s on %s", action, resource)
		}
	}
}

func TestDefaultMatrix_AdminCannotDeleteOrganizations(t *testing.T) {
	m := DefaultMatrix()

	assert.True(t, m.Allows(RoleAdmin, ResourceOrganizations, ActionView))
	assert.True(t, m.Allows(RoleAdmin, ResourceOrganizations, ActionEdit))
	assert.False(t, m.Allows(RoleAdmin, ResourceOrganizations, ActionDelete))
}

func TestDefaultMatrix_AuthorGrants(t *testing.T) {
	m := DefaultMatrix()

	assert.True(t, m.Allows(RoleAuthor, ResourcePosts, ActionCreate))
	assert.True(t, m.Allows(RoleAuthor, ResourcePosts, ActionEdit))
	assert.False(t, m.Allows(RoleAuthor, ResourcePosts, ActionPublish))
	assert.False(t, m.Allows(RoleAuthor, ResourcePosts, ActionDelete))
	assert.False(t, m.Allows(RoleAuthor, ResourceSettings, ActionView))
}

func TestDefaultMatrix_UserIsReadOnly(t *testing.T) {
	m := DefaultMatrix()

	assert.True(t, m.Allows(RoleUser, ResourcePosts, ActionView))
	assert.False(t, m.Allows(RoleUser, ResourcePosts, ActionCreate))
	assert.False(t, m.Allows(RoleUser, ResourceMedia, ActionView))
}
