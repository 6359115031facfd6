package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quillcms/quill-backend/internal/common"
	"github.com/quillcms/quill-backend/internal/domain"
	"github.com/quillcms/quill-backend/internal/middleware"
	"github.com/quillcms/quill-backend/internal/service"
	"github.com/quillcms/quill-backend/pkg/ginutil"
)

// ProductHandler handles HTTP requests for products
type ProductHandler struct {
	service service.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(service service.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

func (h *ProductHandler) List(c *gin.Context) {
	scope := middleware.GetScope(c)
	page := ginutil.QueryInt(c, "page", 1)
	limit := ginutil.QueryInt(c, "limit", 20)

	products, meta, err := h.service.List(scope.OrganizationID, page, limit)
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}

	common.SuccessResponse(c, products, meta)
}

func (h *ProductHandler) Get(c *gin.Context) {
	scope := middleware.GetScope(c)
	id, err := ginutil.ParamUint64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	product, err := h.service.Get(id, scope.OrganizationID)
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}

	common.SuccessResponse(c, product, nil)
}

func (h *ProductHandler) Create(c *gin.Context) {
	scope := middleware.GetScope(c)

	var req domain.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	product, err := h.service.Create(scope.OrganizationID, &req)
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}

	common.CreatedResponse(c, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	scope := middleware.GetScope(c)
	id, err := ginutil.ParamUint64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	var req domain.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	product, err := h.service.Update(id, scope.OrganizationID, scope.UserID, &req)
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}

	common.SuccessResponse(c, product, nil)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	scope := middleware.GetScope(c)
	id, err := ginutil.ParamUint64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	if err := h.service.Delete(id, scope.OrganizationID); err != nil {
		common.ErrorFrom(c, err)
		return
	}

	common.SuccessResponse(c, gin.H{"deleted": id}, nil)
}

// Activate makes a product publicly visible immediately
func (h *ProductHandler) Activate(c *gin.Context) {
	scope := middleware.GetScope(c)
	id, err := ginutil.ParamUint64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	product, err := h.service.Activate(id, scope.OrganizationID)
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}

	common.SuccessResponse(c, product, nil)
}

func (h *ProductHandler) Archive(c *gin.Context) {
	scope := middleware.GetScope(c)
	id, err := ginutil.ParamUint64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	product, err := h.service.Archive(id, scope.OrganizationID)
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}

	common.SuccessResponse(c, product, nil)
}
