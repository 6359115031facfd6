package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quillcms/quill-backend/internal/auth"
	"github.com/quillcms/quill-backend/internal/common"
	"github.com/quillcms/quill-backend/internal/domain"
	"github.com/quillcms/quill-backend/internal/middleware"
	"github.com/quillcms/quill-backend/internal/service"
	"github.com/quillcms/quill-backend/pkg/ginutil"
)

// SchedulingHandler handles schedule/unschedule and the upcoming
// projection. Authorization is per content type (publish action), so it
// runs inside the handlers.
type SchedulingHandler struct {
	service   service.SchedulingService
	evaluator auth.Evaluator
}

// NewSchedulingHandler creates a new SchedulingHandler
func NewSchedulingHandler(service service.SchedulingService, evaluator auth.Evaluator) *SchedulingHandler {
	return &SchedulingHandler{service: service, evaluator: evaluator}
}

// Upcoming godoc
// @Summary      Upcoming scheduled content
// @Description  Scheduled items across posts, pages, and products, soonest first
// @Tags         scheduling
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query  int  false  "max items"  default(10)
// @Success      200  {object}  common.APIResponse{data=[]domain.UpcomingItem}
// @Router       /scheduled/upcoming [get]
func (h *SchedulingHandler) Upcoming(c *gin.Context) {
	// The scheduling dashboard is a publishing surface
	scope, err := h.evaluator.Authorize(middleware.GetPrincipal(c), auth.ResourcePosts, auth.ActionPublish)
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}

	limit := ginutil.QueryInt(c, "limit", 10)
	items, err := h.service.Upcoming(c.Request.Context(), scope.OrganizationID, limit)
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}

	common.SuccessResponse(c, items, nil)
}

// Schedule godoc
// @Summary      Schedule content for future publishing
// @Tags         scheduling
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  domain.ScheduleRequest  true  "what and when"
// @Success      200  {object}  common.APIResponse
// @Failure      400  {object}  common.APIResponse  "past timestamp or unknown content type"
// @Router       /scheduled [post]
func (h *SchedulingHandler) Schedule(c *gin.Context) {
	var req domain.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	contentType := domain.ContentType(req.ContentType)
	if !contentType.Valid() {
		common.ErrorFrom(c, common.NewUnknownContentType(req.ContentType))
		return
	}

	scope, err := h.evaluator.Authorize(middleware.GetPrincipal(c), auth.ResourceForContent(contentType), auth.ActionPublish)
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}

	entity, err := h.service.Schedule(contentType, req.ContentID, req.ScheduledAt, scope.OrganizationID)
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}

	common.SuccessResponse(c, entity, nil)
}

// Unschedule godoc
// @Summary      Revert scheduled content to draft
// @Tags         scheduling
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  domain.UnscheduleRequest  true  "what"
// @Success      200  {object}  common.APIResponse
// @Router       /scheduled [delete]
func (h *SchedulingHandler) Unschedule(c *gin.Context) {
	var req domain.UnscheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	contentType := domain.ContentType(req.ContentType)
	if !contentType.Valid() {
		common.ErrorFrom(c, common.NewUnknownContentType(req.ContentType))
		return
	}

	scope, err := h.evaluator.Authorize(middleware.GetPrincipal(c), auth.ResourceForContent(contentType), auth.ActionPublish)
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}

	entity, err := h.service.Unschedule(contentType, req.ContentID, scope.OrganizationID)
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}

	common.SuccessResponse(c, entity, nil)
}
