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

// PostHandler handles HTTP requests for posts
type PostHandler struct {
	service service.PostService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(service service.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// List godoc
// @Summary      List posts
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        page   query  int  false  "page number"     default(1)
// @Param        limit  query  int  false  "items per page"  default(20)
// @Success      200  {object}  common.APIResponse{data=[]domain.Post}
// @Router       /posts [get]
func (h *PostHandler) List(c *gin.Context) {
	scope := middleware.GetScope(c)
	page := ginutil.QueryInt(c, "page", 1)
	limit := ginutil.QueryInt(c, "limit", 20)

	posts, meta, err := h.service.List(scope.OrganizationID, page, limit)
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}

	common.SuccessResponse(c, posts, meta)
}

// Get godoc
// @Summary      Get a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "post ID"
// @Success      200  {object}  common.APIResponse{data=domain.Post}
// @Failure      404  {object}  common.APIResponse
// @Router       /posts/{id} [get]
func (h *PostHandler) Get(c *gin.Context) {
	scope := middleware.GetScope(c)
	id, err := ginutil.ParamUint64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid post ID", err)
		return
	}

	post, err := h.service.Get(id, scope.OrganizationID)
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}

	common.SuccessResponse(c, post, nil)
}

// Create godoc
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  domain.CreatePostRequest  true  "post"
// @Success      201  {object}  common.APIResponse{data=domain.Post}
// @Router       /posts [post]
func (h *PostHandler) Create(c *gin.Context) {
	scope := middleware.GetScope(c)

	var req domain.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	post, err := h.service.Create(scope.OrganizationID, scope.UserID, &req)
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}

	common.CreatedResponse(c, post)
}

// Update godoc
// @Summary      Update a post
// @Description  Meaningful edits snapshot the pre-update state as a revision
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  int                       true  "post ID"
// @Param        request  body  domain.UpdatePostRequest  true  "fields to change"
// @Success      200  {object}  common.APIResponse{data=domain.Post}
// @Failure      404  {object}  common.APIResponse
// @Router       /posts/{id} [put]
func (h *PostHandler) Update(c *gin.Context) {
	scope := middleware.GetScope(c)
	id, err := ginutil.ParamUint64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid post ID", err)
		return
	}

	var req domain.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	post, err := h.service.Update(id, scope.OrganizationID, scope.UserID, &req)
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}

	common.SuccessResponse(c, post, nil)
}

// Delete godoc
// @Summary      Delete a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "post ID"
// @Success      200  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /posts/{id} [delete]
func (h *PostHandler) Delete(c *gin.Context) {
	scope := middleware.GetScope(c)
	id, err := ginutil.ParamUint64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid post ID", err)
		return
	}

	if err := h.service.Delete(id, scope.OrganizationID); err != nil {
		common.ErrorFrom(c, err)
		return
	}

	common.SuccessResponse(c, gin.H{"deleted": id}, nil)
}

// Publish publishes a post immediately
func (h *PostHandler) Publish(c *gin.Context) {
	scope := middleware.GetScope(c)
	id, err := ginutil.ParamUint64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid post ID", err)
		return
	}

	post, err := h.service.Publish(id, scope.OrganizationID)
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}

	common.SuccessResponse(c, post, nil)
}

// Archive archives a post
func (h *PostHandler) Archive(c *gin.Context) {
	scope := middleware.GetScope(c)
	id, err := ginutil.ParamUint64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid post ID", err)
		return
	}

	post, err := h.service.Archive(id, scope.OrganizationID)
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}

	common.SuccessResponse(c, post, nil)
}
