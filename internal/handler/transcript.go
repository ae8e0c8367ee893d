package handler

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"meetwise/internal/extract"
	"meetwise/internal/logger"
	"meetwise/internal/model"
	"meetwise/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TranscriptHandler struct {
	intake  *service.IntakeService
	fetcher *extract.Fetcher
}

func NewTranscriptHandler(intake *service.IntakeService, fetcher *extract.Fetcher) *TranscriptHandler {
	return &TranscriptHandler{intake: intake, fetcher: fetcher}
}

// Submit handles POST /transcripts/submit. The body is either a
// multipart upload (field "file"), or JSON with rawText or url.
func (h *TranscriptHandler) Submit(c *gin.Context) {
	uid := c.GetString("user_id")

	var text string
	var source model.SourceKind
	var err error
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		text, source, err = h.fromUpload(c)
	} else {
		text, source, err = h.fromJSON(c)
	}
	if err != nil {
		logger.Warn("submit.input failed", "uid", uid, "err", err)
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}

	t, err := h.intake.Submit(c.Request.Context(), uid, text, source)
	if err != nil {
		logger.Error("submit.failed", "uid", uid, "source", source, "err", err)
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, t)
}

// List handles GET /transcripts, newest first, caller-scoped.
func (h *TranscriptHandler) List(c *gin.Context) {
	uid := c.GetString("user_id")
	transcripts, err := h.intake.List(c.Request.Context(), uid)
	if err != nil {
		logger.Error("list.failed", "uid", uid, "err", err)
		c.JSON(errStatus(err), gin.H{"error": "failed to fetch transcripts"})
		return
	}
	if transcripts == nil {
		transcripts = []model.Transcript{}
	}
	c.JSON(http.StatusOK, model.ListResponse{Transcripts: transcripts})
}

func (h *TranscriptHandler) fromJSON(c *gin.Context) (string, model.SourceKind, error) {
	var req model.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return "", "", model.ErrInvalidInput
	}
	if req.URL != "" {
		return h.fetcher.URL(c.Request.Context(), req.URL)
	}
	source := model.SourceKind(req.Source)
	if source == "" {
		source = model.SourceManual
	}
	return req.RawText, source, nil
}

// fromUpload saves the file to a temp path, extracts, and removes the
// temp artifact on every exit path.
func (h *TranscriptHandler) fromUpload(c *gin.Context) (string, model.SourceKind, error) {
	file, err := c.FormFile("file")
	if err != nil {
		return "", "", model.ErrInvalidInput
	}

	tmp := filepath.Join(os.TempDir(), "upload_"+uuid.NewString()+filepath.Ext(file.Filename))
	defer os.Remove(tmp)
	if err := c.SaveUploadedFile(file, tmp); err != nil {
		return "", "", model.ErrExtractionFailed
	}

	data, err := os.ReadFile(tmp)
	if err != nil {
		return "", "", model.ErrExtractionFailed
	}
	return extract.File(data, file.Filename)
}

// errStatus maps error kinds to HTTP statuses. Client-input errors are
// reported distinctly from upstream/dependency failures.
func errStatus(err error) int {
	switch {
	case errors.Is(err, model.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrInvalidInput),
		errors.Is(err, model.ErrUnsupportedFormat),
		errors.Is(err, model.ErrExtractionFailed),
		errors.Is(err, model.ErrFetchFailed):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrProvider),
		errors.Is(err, model.ErrMalformedOutput):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
