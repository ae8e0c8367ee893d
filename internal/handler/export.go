package handler

import (
	"context"
	"net/http"

	"meetwise/internal/export"
	"meetwise/internal/logger"
	"meetwise/internal/model"

	"github.com/gin-gonic/gin"
)

// Target is a network-bound export adapter.
type Target interface {
	Export(ctx context.Context, req model.ExportRequest) error
}

type ExportHandler struct {
	slack  Target
	trello Target
	notion Target
}

func NewExportHandler(slack, trello, notion Target) *ExportHandler {
	return &ExportHandler{slack: slack, trello: trello, notion: notion}
}

// Export handles POST /export/:target for chat|board|docs|email|markdown.
func (h *ExportHandler) Export(c *gin.Context) {
	var req model.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing summary or action items"})
		return
	}

	target := c.Param("target")
	switch target {
	case "markdown":
		c.JSON(http.StatusOK, gin.H{"markdown": export.Markdown(req)})
		return
	case "email":
		result := export.Email(req)
		c.JSON(http.StatusOK, gin.H{"subject": result.Subject, "body": result.Body, "message": "Email format generated!"})
		return
	}

	var adapter Target
	var done string
	switch target {
	case "chat":
		adapter, done = h.slack, "Exported to Slack!"
	case "board":
		adapter, done = h.trello, "Exported to Trello!"
	case "docs":
		adapter, done = h.notion, "Exported to Notion!"
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown export target"})
		return
	}

	if err := adapter.Export(c.Request.Context(), req); err != nil {
		logger.Error("export.failed", "target", target, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	logger.Info("export.ok", "target", target, "items", len(req.ActionItems))
	c.JSON(http.StatusOK, gin.H{"message": done})
}
