package auth

import (
	"github.com/quillcms/quill-backend/internal/common"
)

// Principal is the authenticated identity resolved from a request
type Principal struct {
	UserID         uint64
	Email          string
	Role           Role
	OrganizationID uint64
}

// Scope is the tenant scope returned on a successful authorization.
// Callers must use OrganizationID to filter every subsequent query; the
// evaluator is the single place tenant scope is resolved, so handlers
// cannot check a permission yet forget the organization filter.
type Scope struct {
	OrganizationID uint64
	UserID         uint64
	Role           Role
}

// Evaluator authorizes (principal, resource, action) triples. It is an
// interface so a per-organization override layer can wrap the static
// matrix later without changing callers.
type Evaluator interface {
	Authorize(p *Principal, resource Resource, action Action) (*Scope, error)
}

type matrixEvaluator struct {
	matrix Matrix
}

// NewEvaluator creates an evaluator over the default static matrix
func NewEvaluator() Evaluator {
	return &matrixEvaluator{matrix: DefaultMatrix()}
}

// NewEvaluatorWithMatrix creates an evaluator over a custom matrix
func NewEvaluatorWithMatrix(m Matrix) Evaluator {
	return &matrixEvaluator{matrix: m}
}

// Authorize distinguishes a missing principal (ErrUnauthenticated) from a
// principal lacking the specific grant (ErrForbidden). It has no side
// effects and knows nothing about HTTP.
func (e *matrixEvaluator) Authorize(p *Principal, resource Resource, action Action) (*Scope, error) {
	if p == nil {
		return nil, common.ErrUnauthenticated
	}
	if !e.matrix.Allows(p.Role, resource, action) {
		return nil, common.ErrForbidden
	}
	return &Scope{
		OrganizationID: p.OrganizationID,
		UserID:         p.UserID,
		Role:           p.Role,
	}, nil
}
