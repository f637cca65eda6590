package handler

import (
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/susemi/yearend-why/service"
)

// DocumentHandler exposes the simplified-document structuring endpoint.
type DocumentHandler struct {
	documentService *service.DocumentService
	maxFileSize     int64
}

func NewDocumentHandler(documentService *service.DocumentService, maxFileSize int64) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		maxFileSize:     maxFileSize,
	}
}

// ParseDocument handles POST /pdf-parse: multipart upload in, structured
// document facts plus supplemental-input recommendations out.
func (h *DocumentHandler) ParseDocument(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		sendError(c, http.StatusBadRequest, "file missing", err)
		return
	}
	defer file.Close()

	if header.Size > h.maxFileSize {
		sendError(c, http.StatusBadRequest, "file too large", nil)
		return
	}

	fileBytes, err := io.ReadAll(io.LimitReader(file, h.maxFileSize+1))
	if err != nil {
		sendError(c, http.StatusBadRequest, "failed to read file", err)
		return
	}

	log.Printf("parsing uploaded document %s (%d bytes)", header.Filename, len(fileBytes))

	response, err := h.documentService.ParseDocument(c.Request.Context(), fileBytes)
	if err != nil {
		sendPipelineError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
