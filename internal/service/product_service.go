package service

import (
	"time"

	"github.com/quillcms/quill-backend/internal/common"
	"github.com/quillcms/quill-backend/internal/domain"
	"github.com/quillcms/quill-backend/internal/repository"
	"github.com/quillcms/quill-backend/pkg/logger"
)

// ProductService business logic for products
type ProductService interface {
	List(organizationID uint64, page, limit int) ([]*domain.Product, *common.Meta, error)
	Get(id, organizationID uint64) (*domain.Product, error)
	Create(organizationID uint64, req *domain.CreateProductRequest) (*domain.Product, error)
	Update(id, organizationID, userID uint64, req *domain.UpdateProductRequest) (*domain.Product, error)
	Delete(id, organizationID uint64) error
	Activate(id, organizationID uint64) (*domain.Product, error)
	Archive(id, organizationID uint64) (*domain.Product, error)
}

type productService struct {
	repo      repository.ProductRepository
	revisions RevisionService
}

// NewProductService creates a new ProductService
func NewProductService(repo repository.ProductRepository, revisions RevisionService) ProductService {
	return &productService{repo: repo, revisions: revisions}
}

func (s *productService) List(organizationID uint64, page, limit int) ([]*domain.Product, *common.Meta, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	products, total, err := s.repo.List(organizationID, page, limit)
	if err != nil {
		return nil, nil, err
	}

	meta := &common.Meta{Page: page, Limit: limit, Total: total}
	return products, meta, nil
}

func (s *productService) Get(id, organizationID uint64) (*domain.Product, error) {
	return s.repo.FindByID(id, organizationID)
}

func (s *productService) Create(organizationID uint64, req *domain.CreateProductRequest) (*domain.Product, error) {
	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	product := &domain.Product{
		OrganizationID:   organizationID,
		Name:             req.Name,
		Slug:             req.Slug,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		PriceCents:       req.PriceCents,
		Currency:         currency,
		SEOTitle:         req.SEOTitle,
		SEODescription:   req.SEODescription,
		Status:           domain.StatusDraft,
	}

	if err := s.repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update snapshots the pre-update state when a meaningful field changed,
// then persists. Snapshot failure is logged, never blocks the save.
func (s *productService) Update(id, organizationID, userID uint64, req *domain.UpdateProductRequest) (*domain.Product, error) {
	product, err := s.repo.FindByID(id, organizationID)
	if err != nil {
		return nil, err
	}

	before := *product
	applyProductPatch(product, req)

	if productMeaningfullyChanged(&before, product) {
		_, err := s.revisions.CreateRevision(
			domain.ContentTypeProduct, before.ID, before.Name, before.Description,
			before.SnapshotMetadata(), &userID, organizationID,
		)
		if err != nil {
			logger.Get().Error().Err(err).Uint64("product_id", id).Msg("failed to snapshot product revision")
		}
	}

	if err := s.repo.Save(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete hard-deletes the product and cascades its revision history
func (s *productService) Delete(id, organizationID uint64) error {
	if err := s.repo.Delete(id, organizationID); err != nil {
		return err
	}
	if err := s.revisions.DeleteForContent(domain.ContentTypeProduct, id, organizationID); err != nil {
		logger.Get().Warn().Err(err).Uint64("product_id", id).Msg("failed to cascade revision cleanup")
	}
	return nil
}

// Activate is the immediate transition to the product terminal state
func (s *productService) Activate(id, organizationID uint64) (*domain.Product, error) {
	product, err := s.repo.FindByID(id, organizationID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	product.Status = domain.StatusActive
	product.ActivatedAt = &now
	product.ScheduledAt = nil
	if err := s.repo.Save(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) Archive(id, organizationID uint64) (*domain.Product, error) {
	product, err := s.repo.FindByID(id, organizationID)
	if err != nil {
		return nil, err
	}
	product.Status = domain.StatusArchived
	product.ScheduledAt = nil
	if err := s.repo.Save(product); err != nil {
		return nil, err
	}
	return product, nil
}

func applyProductPatch(product *domain.Product, req *domain.UpdateProductRequest) {
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Slug != nil {
		product.Slug = *req.Slug
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.ShortDescription != nil {
		product.ShortDescription = *req.ShortDescription
	}
	if req.PriceCents != nil {
		product.PriceCents = *req.PriceCents
	}
	if req.Currency != nil {
		product.Currency = *req.Currency
	}
	if req.SEOTitle != nil {
		product.SEOTitle = *req.SEOTitle
	}
	if req.SEODescription != nil {
		product.SEODescription = *req.SEODescription
	}
}

// productMeaningfullyChanged: name, description, short description, or SEO
// metadata differing. Price changes alone do not snapshot.
func productMeaningfullyChanged(before, after *domain.Product) bool {
	return before.Name != after.Name ||
		before.Description != after.Description ||
		before.ShortDescription != after.ShortDescription ||
		before.SEOTitle != after.SEOTitle ||
		before.SEODescription != after.SEODescription
}
