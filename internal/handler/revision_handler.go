package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/quillcms/quill-backend/internal/auth"
	"github.com/quillcms/quill-backend/internal/common"
	"github.com/quillcms/quill-backend/internal/domain"
	"github.com/quillcms/quill-backend/internal/middleware"
	"github.com/quillcms/quill-backend/internal/service"
	"github.com/quillcms/quill-backend/pkg/ginutil"
)

// RevisionHandler handles revision inspection and restore endpoints. The
// permission resource depends on the revision's content type, so
// authorization runs inside the handler instead of route middleware.
type RevisionHandler struct {
	service   service.RevisionService
	evaluator auth.Evaluator
}

// NewRevisionHandler creates a new RevisionHandler
func NewRevisionHandler(service service.RevisionService, evaluator auth.Evaluator) *RevisionHandler {
	return &RevisionHandler{service: service, evaluator: evaluator}
}

// List godoc
// @Summary      List revisions for a content item
// @Description  Newest version first. Pass compare=older,newer (version numbers) to get a field diff instead.
// @Tags         revisions
// @Produce      json
// @Security     BearerAuth
// @Param        content_type  query  string  true   "post | page | product"
// @Param        content_id    query  int     true   "content ID"
// @Param        limit         query  int     false  "max revisions"  default(20)
// @Param        compare       query  string  false  "two version numbers, e.g. 2,5"
// @Success      200  {object}  common.APIResponse{data=[]domain.Revision}
// @Failure      400  {object}  common.APIResponse
// @Router       /revisions [get]
func (h *RevisionHandler) List(c *gin.Context) {
	contentType := domain.ContentType(c.Query("content_type"))
	if !contentType.Valid() {
		common.ErrorFrom(c, common.NewUnknownContentType(c.Query("content_type")))
		return
	}

	contentID, err := strconv.ParseUint(c.Query("content_id"), 10, 64)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid content_id", err)
		return
	}

	scope, err := h.evaluator.Authorize(middleware.GetPrincipal(c), auth.ResourceForContent(contentType), auth.ActionView)
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}

	if compare := c.Query("compare"); compare != "" {
		h.compare(c, contentType, contentID, scope.OrganizationID, compare)
		return
	}

	limit := ginutil.QueryInt(c, "limit", 20)
	revisions, err := h.service.ListRevisions(contentType, contentID, scope.OrganizationID, limit)
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}

	common.SuccessResponse(c, revisions, nil)
}

// compare resolves two version numbers and returns their field diff
func (h *RevisionHandler) compare(c *gin.Context, contentType domain.ContentType, contentID, organizationID uint64, spec string) {
	parts := strings.SplitN(spec, ",", 2)
	if len(parts) != 2 {
		common.ErrorResponse(c, http.StatusBadRequest, "compare expects two version numbers: older,newer", nil)
		return
	}

	older, errA := strconv.ParseUint(strings.TrimSpace(parts[0]), 10, 32)
	newer, errB := strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 32)
	if errA != nil || errB != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "compare expects two version numbers: older,newer", nil)
		return
	}

	revA, err := h.service.GetRevisionByVersion(contentType, contentID, uint(older), organizationID)
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}
	revB, err := h.service.GetRevisionByVersion(contentType, contentID, uint(newer), organizationID)
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}

	diffs := h.service.CompareRevisions(revA, revB)
	common.SuccessResponse(c, gin.H{
		"older":   revA.Version,
		"newer":   revB.Version,
		"changes": diffs,
	}, nil)
}

// Get godoc
// @Summary      Get a single revision
// @Tags         revisions
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "revision ID"
// @Success      200  {object}  common.APIResponse{data=domain.Revision}
// @Failure      404  {object}  common.APIResponse
// @Router       /revisions/{id} [get]
func (h *RevisionHandler) Get(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	if principal == nil {
		common.ErrorFrom(c, common.ErrUnauthenticated)
		return
	}

	id, err := ginutil.ParamUint64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid revision ID", err)
		return
	}

	revision, err := h.service.GetRevision(id, principal.OrganizationID)
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}

	if _, err := h.evaluator.Authorize(principal, auth.ResourceForContent(revision.ContentType), auth.ActionView); err != nil {
		common.ErrorFrom(c, err)
		return
	}

	common.SuccessResponse(c, revision, nil)
}

// Restore godoc
// @Summary      Restore content to a revision
// @Description  Overwrites the entity with the revision snapshot and records a new revision tagged restored_from.
// @Tags         revisions
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "revision ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  common.APIResponse
// @Router       /revisions/{id}/restore [post]
func (h *RevisionHandler) Restore(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	if principal == nil {
		common.ErrorFrom(c, common.ErrUnauthenticated)
		return
	}

	id, err := ginutil.ParamUint64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid revision ID", err)
		return
	}

	revision, err := h.service.GetRevision(id, principal.OrganizationID)
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}

	scope, err := h.evaluator.Authorize(principal, auth.ResourceForContent(revision.ContentType), auth.ActionEdit)
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}

	content, err := h.service.RestoreRevision(id, scope.OrganizationID, scope.UserID)
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"content": content,
	})
}
