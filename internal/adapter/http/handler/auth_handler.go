package handler

import (
	"net/http"

	"solwallet-api/internal/adapter/http/dto"
	"solwallet-api/internal/core/ports"
	"solwallet-api/pkg/apperror"
	"solwallet-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles account creation and login endpoints.
type AuthHandler struct {
	walletSvc ports.WalletService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(walletSvc ports.WalletService) *AuthHandler {
	return &AuthHandler{walletSvc: walletSvc}
}

// CreateAccount handles POST /api/auth/create.
func (h *AuthHandler) CreateAccount(c *gin.Context) {
	account, err := h.walletSvc.CreateAccount(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, account)
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	overview, err := h.walletSvc.Login(c.Request.Context(), req.PrivateKey, req.IsDemo)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, overview)
}

// HealthCheck handles GET /health — verifies optional dependencies.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
