package handler

import (
	"strconv"

	"solwallet-api/internal/adapter/http/dto"
	"solwallet-api/internal/core/ports"
	"solwallet-api/pkg/apperror"
	"solwallet-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// AssistantHandler handles AI assistant endpoints.
type AssistantHandler struct {
	assistantSvc ports.AssistantService
}

// NewAssistantHandler creates a new AssistantHandler.
func NewAssistantHandler(assistantSvc ports.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistantSvc: assistantSvc}
}

// Query handles POST /api/ai/query.
func (h *AssistantHandler) Query(c *gin.Context) {
	var req dto.AIQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	answer, err := h.assistantSvc.Query(c.Request.Context(), req.Message, req.WalletID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.AIQueryResponse{Response: answer})
}

// Conversations handles GET /api/ai/conversations/:walletId.
func (h *AssistantHandler) Conversations(c *gin.Context) {
	walletID, err := strconv.Atoi(c.Param("walletId"))
	if err != nil {
		response.Error(c, apperror.Validation("wallet id must be an integer"))
		return
	}

	conversations, err := h.assistantSvc.Conversations(c.Request.Context(), walletID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"conversations": conversations})
}
