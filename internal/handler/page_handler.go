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

// PageHandler handles HTTP requests for pages
type PageHandler struct {
	service service.PageService
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(service service.PageService) *PageHandler {
	return &PageHandler{service: service}
}

func (h *PageHandler) List(c *gin.Context) {
	scope := middleware.GetScope(c)
	page := ginutil.QueryInt(c, "page", 1)
	limit := ginutil.QueryInt(c, "limit", 20)

	pages, meta, err := h.service.List(scope.OrganizationID, page, limit)
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}

	common.SuccessResponse(c, pages, meta)
}

func (h *PageHandler) Get(c *gin.Context) {
	scope := middleware.GetScope(c)
	id, err := ginutil.ParamUint64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid page ID", err)
		return
	}

	page, err := h.service.Get(id, scope.OrganizationID)
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}

	common.SuccessResponse(c, page, nil)
}

func (h *PageHandler) Create(c *gin.Context) {
	scope := middleware.GetScope(c)

	var req domain.CreatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	page, err := h.service.Create(scope.OrganizationID, scope.UserID, &req)
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}

	common.CreatedResponse(c, page)
}

func (h *PageHandler) Update(c *gin.Context) {
	scope := middleware.GetScope(c)
	id, err := ginutil.ParamUint64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid page ID", err)
		return
	}

	var req domain.UpdatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	page, err := h.service.Update(id, scope.OrganizationID, scope.UserID, &req)
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}

	common.SuccessResponse(c, page, nil)
}

func (h *PageHandler) Delete(c *gin.Context) {
	scope := middleware.GetScope(c)
	id, err := ginutil.ParamUint64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid page ID", err)
		return
	}

	if err := h.service.Delete(id, scope.OrganizationID); err != nil {
		common.ErrorFrom(c, err)
		return
	}

	common.SuccessResponse(c, gin.H{"deleted": id}, nil)
}

func (h *PageHandler) Publish(c *gin.Context) {
	scope := middleware.GetScope(c)
	id, err := ginutil.ParamUint64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid page ID", err)
		return
	}

	page, err := h.service.Publish(id, scope.OrganizationID)
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}

	common.SuccessResponse(c, page, nil)
}

func (h *PageHandler) Archive(c *gin.Context) {
	scope := middleware.GetScope(c)
	id, err := ginutil.ParamUint64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid page ID", err)
		return
	}

	page, err := h.service.Archive(id, scope.OrganizationID)
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}

	common.SuccessResponse(c, page, nil)
}
