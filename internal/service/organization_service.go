package service

import (
	"github.com/quillcms/quill-backend/internal/domain"
	"github.com/quillcms/quill-backend/internal/repository"
)

// OrganizationService tenant lookup and offboarding cleanup
type OrganizationService interface {
	Get(id uint64) (*domain.Organization, error)
	GetBySlug(slug string) (*domain.Organization, error)
	PurgeRevisions(id uint64) error
}

type organizationService struct {
	repo      repository.OrganizationRepository
	revisions RevisionService
}

// NewOrganizationService creates a new OrganizationService
func NewOrganizationService(repo repository.OrganizationRepository, revisions RevisionService) OrganizationService {
	return &organizationService{repo: repo, revisions: revisions}
}

func (s *organizationService) Get(id uint64) (*domain.Organization, error) {
	return s.repo.FindByID(id)
}

func (s *organizationService) GetBySlug(slug string) (*domain.Organization, error) {
	return s.repo.FindBySlug(slug)
}

// PurgeRevisions drops the tenant's entire revision history. Offboarding
// cleanup; the content rows themselves are untouched.
func (s *organizationService) PurgeRevisions(id uint64) error {
	if _, err := s.repo.FindByID(id); err != nil {
		return err
	}
	return s.revisions.PurgeOrganization(id)
}
