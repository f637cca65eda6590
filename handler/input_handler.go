package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/susemi/yearend-why/dto"
)

// InputHandler validates the survey and supplemental forms. Nothing is
// stored; the client replays the validated data on /analyze.
type InputHandler struct{}

func NewInputHandler() *InputHandler {
	return &InputHandler{}
}

// SaveUserInput handles POST /user-input.
func (h *InputHandler) SaveUserInput(c *gin.Context) {
	var req dto.UserInputRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.StatusResponse{Status: "error", Message: err.Error()})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, dto.StatusResponse{Status: "error", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{Status: "ok"})
}

// SaveManualInput handles POST /manual-input.
func (h *InputHandler) SaveManualInput(c *gin.Context) {
	var req dto.ManualInputRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.StatusResponse{Status: "error", Message: err.Error()})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, dto.StatusResponse{Status: "error", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{Status: "ok"})
}
