package handler

import (
	"payment-rails/internal/adapter/http/dto"
	"payment-rails/internal/adapter/http/middleware"
	"payment-rails/internal/core/domain"
	"payment-rails/internal/core/ports"
	"payment-rails/pkg/apperror"
	"payment-rails/pkg/response"

	"github.com/gin-gonic/gin"
)

// ParamsHandler handles ledger parameter endpoints.
type ParamsHandler struct {
	paramsSvc ports.ParamsService
}

// NewParamsHandler creates a new ParamsHandler.
func NewParamsHandler(paramsSvc ports.ParamsService) *ParamsHandler {
	return &ParamsHandler{paramsSvc: paramsSvc}
}

// Get handles GET /api/v1/params.
func (h *ParamsHandler) Get(c *gin.Context) {
	params, err := h.paramsSvc.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toParamsResponse(params))
}

// Update handles PUT /api/v1/params. Admin only.
func (h *ParamsHandler) Update(c *gin.Context) {
	var req dto.ParamsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrInvalidInput(err.Error()))
		return
	}

	params, err := h.paramsSvc.Update(c.Request.Context(), middleware.CallerAccount(c), domain.LedgerParams{
		MaxFeeBps:         req.MaxFeeBps,
		DefaultFeeBps:     req.DefaultFeeBps,
		MinPaymentAmount:  req.MinPaymentAmount,
		DailyGaslessQuota: req.DailyGaslessQuota,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toParamsResponse(params))
}

func toParamsResponse(p *domain.LedgerParams) dto.ParamsResponse {
	return dto.ParamsResponse{
		MaxFeeBps:         p.MaxFeeBps,
		DefaultFeeBps:     p.DefaultFeeBps,
		MinPaymentAmount:  p.MinPaymentAmount,
		DailyGaslessQuota: p.DailyGaslessQuota,
		UpdatedAt:         p.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
