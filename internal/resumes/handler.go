package resumes

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"hireflow-backend/internal/extract"
	"hireflow-backend/internal/shared/server/middleware"
	"hireflow-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes/parse", h.parse)
	rg.POST("/resumes/reparse", h.reparse)
	rg.GET("/resumes/supported-types", h.supportedTypes)
	rg.GET("/resumes", h.list)
}

func (h *Handler) parse(c *gin.Context) {
	ownerKey := middleware.OwnerKeyFromContext(c)
	// Headroom over the file cap covers multipart boundary and header
	// overhead, so a file just past the limit still reaches the size check
	// below instead of dying inside the multipart reader.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, extract.MaxFileSize+2<<20)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.respondError(c, fmt.Errorf("%w: limit %d bytes", extract.ErrFileTooLarge, extract.MaxFileSize))
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}
	if fileHeader.Size > extract.MaxFileSize {
		h.respondError(c, fmt.Errorf("%w: %d bytes (limit %d bytes)", extract.ErrFileTooLarge, fileHeader.Size, extract.MaxFileSize))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}

	mediaType := fileHeader.Header.Get("Content-Type")
	if mediaType == "" {
		mediaType = extract.MediaTypeForFilename(fileHeader.Filename)
	}

	result, err := h.Svc.Parse(c.Request.Context(), ownerKey, fileHeader.Filename, mediaType, data)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Set("recordId", result.Record.ID)
	respond.JSON(c, http.StatusOK, toEnvelope(result))
}

type reparseRequest struct {
	FileURL string `json:"fileUrl"`
}

func (h *Handler) reparse(c *gin.Context) {
	ownerKey := middleware.OwnerKeyFromContext(c)

	var req reparseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	req.FileURL = strings.TrimSpace(req.FileURL)
	if req.FileURL == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "fileUrl is required", nil)
		return
	}

	result, err := h.Svc.Reparse(c.Request.Context(), ownerKey, req.FileURL)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond.JSON(c, http.StatusOK, toEnvelope(result))
}

func (h *Handler) supportedTypes(c *gin.Context) {
	respond.JSON(c, http.StatusOK, gin.H{
		"mediaTypes": extract.SupportedMediaTypes(),
		"extensions": extract.SupportedExtensions(),
		"maxBytes":   extract.MaxFileSize,
	})
}

func (h *Handler) list(c *gin.Context) {
	ownerKey := middleware.OwnerKeyFromContext(c)

	limit := 20
	offset := 0

	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if limit > 50 {
		limit = 50
	}

	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	recs, err := h.Svc.List(c.Request.Context(), ownerKey, limit, offset)
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := make([]RecordResponse, 0, len(recs))
	for _, rec := range recs {
		resp = append(resp, toRecordResponse(rec, h.Svc.Store.URL(rec.StorageKey)))
	}

	respond.JSON(c, http.StatusOK, resp)
}

// respondError maps pipeline sentinels onto the error taxonomy: caller
// mistakes are 400, unreadable-but-valid uploads are 422, storage outages
// are 502.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, extract.ErrEmptyFile),
		errors.Is(err, extract.ErrFileTooLarge),
		errors.Is(err, extract.ErrUnsupportedType):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, extract.ErrNoTextLayer),
		errors.Is(err, ErrLowSignal):
		respond.Error(c, http.StatusUnprocessableEntity, "document_unreadable", err.Error(), nil)
	case errors.Is(err, ErrStorageUnavailable):
		respond.Error(c, http.StatusBadGateway, "storage_unavailable", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to parse resume", nil)
	}
}
