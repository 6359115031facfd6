package auth

// Role is a principal's privilege tier. Each role's grants are enumerated
// independently; there is no numeric hierarchy.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleEditor     Role = "editor"
	RoleAuthor     Role = "author"
	RoleUser       Role = "user"
)

// Resource is an authorizable resource class
type Resource string

const (
	ResourcePosts         Resource = "posts"
	ResourcePages         Resource = "pages"
	ResourceProducts      Resource = "products"
	ResourceCategories    Resource = "categories"
	ResourceTags          Resource = "tags"
	ResourceMedia         Resource = "media"
	ResourceUsers         Resource = "users"
	ResourceSettings      Resource = "settings"
	ResourceMenus         Resource = "menus"
	ResourceInquiries     Resource = "inquiries"
	ResourceOrganizations Resource = "organizations"
)

// Action is an authorizable operation on a resource
type Action string

const (
	ActionView    Action = "view"
	ActionCreate  Action = "create"
	ActionEdit    Action = "edit"
	ActionDelete  Action = "delete"
	ActionPublish Action = "publish"
)

var allActions = []Action{ActionView, ActionCreate, ActionEdit, ActionDelete, ActionPublish}

var allResources = []Resource{
	ResourcePosts, ResourcePages, ResourceProducts, ResourceCategories,
	ResourceTags, ResourceMedia, ResourceUsers, ResourceSettings,
	ResourceMenus, ResourceInquiries, ResourceOrganizations,
}

// Matrix maps Role -> Resource -> allowed Actions
type Matrix map[Role]map[Resource][]Action

// DefaultMatrix is the compiled-in authorization table. Per-organization
// overrides do not exist yet; wrap the Evaluator interface to add them.
func DefaultMatrix() Matrix {
	m := Matrix{
		RoleSuperAdmin: grantAll(allResources...),
		RoleAdmin:      grantAll(allResources[:len(allResources)-1]...),
		RoleEditor: {
			ResourcePosts:      {ActionView, ActionCreate, ActionEdit, ActionDelete, ActionPublish},
			ResourcePages:      {ActionView, ActionCreate, ActionEdit, ActionDelete, ActionPublish},
			ResourceProducts:   {ActionView, ActionCreate, ActionEdit, ActionDelete, ActionPublish},
			ResourceCategories: {ActionView, ActionCreate, ActionEdit, ActionDelete},
			ResourceTags:       {ActionView, ActionCreate, ActionEdit, ActionDelete},
			ResourceMedia:      {ActionView, ActionCreate, ActionEdit, ActionDelete},
			ResourceMenus:      {ActionView, ActionCreate, ActionEdit, ActionDelete},
			ResourceInquiries:  {ActionView, ActionEdit},
			ResourceUsers:      {ActionView},
			ResourceSettings:   {ActionView},
		},
		RoleAuthor: {
			ResourcePosts:      {ActionView, ActionCreate, ActionEdit},
			ResourcePages:      {ActionView},
			ResourceProducts:   {ActionView},
			ResourceCategories: {ActionView},
			ResourceTags:       {ActionView, ActionCreate},
			ResourceMedia:      {ActionView, ActionCreate},
		},
		RoleUser: {
			ResourcePosts:    {ActionView},
			ResourcePages:    {ActionView},
			ResourceProducts: {ActionView},
		},
	}

	// Admins manage their own organization but cannot touch others;
	// organization-level view/edit only.
	m[RoleAdmin][ResourceOrganizations] = []Action{ActionView, ActionEdit}

	return m
}

func grantAll(resources ...Resource) map[Resource][]Action {
	grants := make(map[Resource][]Action, len(resources))
	for _, r := range resources {
		actions := make([]Action, len(allActions))
		copy(actions, allActions)
		grants[r] = actions
	}
	return grants
}

// Allows reports whether the matrix grants action on resource to role
func (m Matrix) Allows(role Role, resource Resource, action Action) bool {
	grants, ok := m[role]
	if !ok {
		return false
	}
	actions, ok := grants[resource]
	if !ok {
		return false
	}
	for _, a := range actions {
		if a == action {
			return true
		}
	}
	return false
}
