package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quillcms/quill-backend/internal/common"
	"github.com/quillcms/quill-backend/internal/middleware"
	"github.com/quillcms/quill-backend/internal/service"
	"github.com/quillcms/quill-backend/pkg/ginutil"
)

// OrganizationHandler handles tenant endpoints
type OrganizationHandler struct {
	service service.OrganizationService
}

// NewOrganizationHandler creates a new OrganizationHandler
func NewOrganizationHandler(service service.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

// Me godoc
// @Summary      Current organization
// @Tags         organizations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  common.APIResponse{data=domain.Organization}
// @Router       /organizations/me [get]
func (h *OrganizationHandler) Me(c *gin.Context) {
	scope := middleware.GetScope(c)

	org, err := h.service.Get(scope.OrganizationID)
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}

	common.SuccessResponse(c, org, nil)
}

// PurgeRevisions godoc
// @Summary      Purge a tenant's revision history
// @Description  Offboarding cleanup. Content rows are untouched.
// @Tags         organizations
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "organization ID"
// @Success      200  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /organizations/{id}/revisions [delete]
func (h *OrganizationHandler) PurgeRevisions(c *gin.Context) {
	id, err := ginutil.ParamUint64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid organization ID", err)
		return
	}

	if err := h.service.PurgeRevisions(id); err != nil {
		common.ErrorFrom(c, err)
		return
	}

	common.SuccessResponse(c, gin.H{"purged": true}, nil)
}
