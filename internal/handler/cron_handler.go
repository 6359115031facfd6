package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quillcms/quill-backend/internal/middleware"
	"github.com/quillcms/quill-backend/internal/service"
)

// CronHandler is the external time trigger's entry point. The platform has
// no in-process scheduler; a periodic external caller hits this endpoint,
// possibly more than once per due window. Batch publish idempotence is the
// only duplicate protection needed.
type CronHandler struct {
	service service.SchedulingService
	secret  string
}

// NewCronHandler creates a new CronHandler. An empty secret leaves the
// endpoint unguarded.
func NewCronHandler(service service.SchedulingService, secret string) *CronHandler {
	return &CronHandler{service: service, secret: secret}
}

// PublishScheduled godoc
// @Summary      Publish all due scheduled content
// @Description  Batch, idempotent, partial-failure tolerant. Accepts GET and POST identically.
// @Tags         cron
// @Produce      json
// @Param        Authorization  header  string  false  "Bearer <shared secret>, required when configured"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Router       /cron/publish-scheduled [post]
func (h *CronHandler) PublishScheduled(c *gin.Context) {
	if h.secret != "" {
		authHeader := c.GetHeader("Authorization")
		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token != h.secret {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "invalid trigger secret",
			})
			return
		}
	}

	result := h.service.PublishDue()

	middleware.CountScheduledPublished("post", result.Posts)
	middleware.CountScheduledPublished("page", result.Pages)
	middleware.CountScheduledPublished("product", result.Products)

	// Partial failures are reported inside the envelope with a 200; the
	// trigger only sees a non-200 when the handler itself blows up.
	c.JSON(http.StatusOK, gin.H{
		"success": len(result.Errors) == 0,
		"published": gin.H{
			"posts":    result.Posts,
			"pages":    result.Pages,
			"products": result.Products,
		},
		"errors":    result.Errors,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
