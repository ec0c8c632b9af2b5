package handler

import (
	"strconv"

	"solwallet-api/internal/core/ports"
	"solwallet-api/pkg/apperror"
	"solwallet-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles wallet read endpoints.
type WalletHandler struct {
	walletSvc ports.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

// GetWallet handles GET /api/wallet/:id.
func (h *WalletHandler) GetWallet(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("wallet id must be an integer"))
		return
	}

	overview, err := h.walletSvc.GetWallet(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, overview)
}
