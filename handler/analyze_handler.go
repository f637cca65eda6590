package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/susemi/yearend-why/dto"
	"github.com/susemi/yearend-why/service"
)

// AnalyzeHandler exposes the why-analysis endpoint.
type AnalyzeHandler struct {
	analysisService *service.AnalysisService
}

func NewAnalyzeHandler(analysisService *service.AnalysisService) *AnalyzeHandler {
	return &AnalyzeHandler{analysisService: analysisService}
}

// Analyze handles POST /analyze: the full fact set in, the per-category
// explanation out.
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	var req dto.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	response, err := h.analysisService.Analyze(c.Request.Context(), &req)
	if err != nil {
		sendPipelineError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// sendPipelineError maps typed pipeline failures to transport status codes.
// Diagnostic detail (including any raw generation text) stays in the log;
// clients get a generic message.
func sendPipelineError(c *gin.Context, err error) {
	var unparseable *dto.UnparseableError

	switch {
	case errors.Is(err, dto.ErrDocumentUnreadable):
		sendError(c, http.StatusUnprocessableEntity, "문서에서 텍스트를 읽을 수 없습니다.", err)
	case errors.Is(err, dto.ErrGenerationUnavailable):
		sendError(c, http.StatusBadGateway, "분석 서비스에 일시적으로 연결할 수 없습니다.", err)
	case errors.As(err, &unparseable):
		log.Printf("unparseable generation output: %s", unparseable.Raw)
		sendError(c, http.StatusBadGateway, "분석 결과를 처리하지 못했습니다.", err)
	case errors.Is(err, dto.ErrGenerationIncomplete):
		sendError(c, http.StatusBadGateway, "분석 결과가 완전하지 않습니다.", err)
	default:
		sendError(c, http.StatusInternalServerError, "분석 중 오류가 발생했습니다.", err)
	}
}

// sendError writes the uniform error body and logs the underlying cause.
func sendError(c *gin.Context, statusCode int, message string, err error) {
	if err != nil {
		log.Printf("request failed (%d): %s: %v", statusCode, message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "ANALYSIS_FAILED",
		Message: message,
		Code:    statusCode,
	})
}
