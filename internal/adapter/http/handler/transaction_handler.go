package handler

import (
	"strconv"

	"solwallet-api/internal/adapter/http/dto"
	"solwallet-api/internal/core/domain"
	"solwallet-api/internal/core/ports"
	"solwallet-api/pkg/apperror"
	"solwallet-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// TransactionHandler handles ledger endpoints.
type TransactionHandler struct {
	txSvc ports.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(txSvc ports.TransactionService) *TransactionHandler {
	return &TransactionHandler{txSvc: txSvc}
}

// Send handles POST /api/transactions/send.
func (h *TransactionHandler) Send(c *gin.Context) {
	var req dto.SendTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	tx, err := h.txSvc.Send(c.Request.Context(), ports.SendRequest{
		WalletID:         req.WalletID,
		RecipientAddress: req.RecipientAddress,
		Amount:           req.Amount,
		Token:            domain.Token(req.Token),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{
		"transaction": tx,
		"message":     "Transaction sent successfully",
	})
}

// History handles GET /api/transactions/:walletId.
func (h *TransactionHandler) History(c *gin.Context) {
	walletID, err := strconv.Atoi(c.Param("walletId"))
	if err != nil {
		response.Error(c, apperror.Validation("wallet id must be an integer"))
		return
	}

	transactions, err := h.txSvc.History(c.Request.Context(), walletID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"transactions": transactions})
}
