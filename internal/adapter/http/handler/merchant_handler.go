package handler

import (
	"context"

	"payment-rails/internal/adapter/http/dto"
	"payment-rails/internal/adapter/http/middleware"
	"payment-rails/internal/core/domain"
	"payment-rails/internal/core/ports"
	"payment-rails/pkg/apperror"
	"payment-rails/pkg/response"

	"github.com/gin-gonic/gin"
)

// MerchantHandler handles merchant directory endpoints.
type MerchantHandler struct {
	directorySvc ports.DirectoryService
}

// NewMerchantHandler creates a new MerchantHandler.
func NewMerchantHandler(directorySvc ports.DirectoryService) *MerchantHandler {
	return &MerchantHandler{directorySvc: directorySvc}
}

// Register handles POST /api/v1/merchants.
func (h *MerchantHandler) Register(c *gin.Context) {
	var req dto.RegisterMerchantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrInvalidInput(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	profile, err := toProfile(req)
	if err != nil {
		response.Error(c, err)
		return
	}

	merchant, err := h.directorySvc.RegisterSelfService(c.Request.Context(), middleware.CallerAccount(c), profile)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, toMerchantResponse(merchant))
}

// RegisterDirect handles POST /api/v1/merchants/direct.
func (h *MerchantHandler) RegisterDirect(c *gin.Context) {
	var req dto.RegisterDirectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrInvalidInput(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	profile, err := toProfile(req.RegisterMerchantRequest)
	if err != nil {
		response.Error(c, err)
		return
	}

	merchant, err := h.directorySvc.RegisterDirect(
		c.Request.Context(), middleware.CallerAccount(c), profile, req.Owner, req.FeeOverrideBps,
	)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, toMerchantResponse(merchant))
}

// Get handles GET /api/v1/merchants/:id.
func (h *MerchantHandler) Get(c *gin.Context) {
	merchant, err := h.directorySvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toMerchantResponse(merchant))
}

// GetByOwner handles GET /api/v1/merchants/by-owner/:account.
func (h *MerchantHandler) GetByOwner(c *gin.Context) {
	merchant, err := h.directorySvc.ByOwner(c.Request.Context(), c.Param("account"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toMerchantResponse(merchant))
}

// GetByPayout handles GET /api/v1/merchants/by-payout/:account.
func (h *MerchantHandler) GetByPayout(c *gin.Context) {
	merchant, err := h.directorySvc.ByPayout(c.Request.Context(), c.Param("account"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toMerchantResponse(merchant))
}

// Verify handles POST /api/v1/merchants/:id/verify.
func (h *MerchantHandler) Verify(c *gin.Context) {
	h.transition(c, h.directorySvc.Verify)
}

// Suspend handles POST /api/v1/merchants/:id/suspend.
func (h *MerchantHandler) Suspend(c *gin.Context) {
	h.transition(c, h.directorySvc.Suspend)
}

// Reactivate handles POST /api/v1/merchants/:id/reactivate.
func (h *MerchantHandler) Reactivate(c *gin.Context) {
	h.transition(c, h.directorySvc.Reactivate)
}

// Terminate handles POST /api/v1/merchants/:id/terminate.
func (h *MerchantHandler) Terminate(c *gin.Context) {
	h.transition(c, h.directorySvc.Terminate)
}

// UpdatePayout handles PUT /api/v1/merchants/:id/payout.
func (h *MerchantHandler) UpdatePayout(c *gin.Context) {
	var req dto.UpdatePayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrInvalidInput(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	err := h.directorySvc.UpdatePayoutAccount(
		c.Request.Context(), middleware.CallerAccount(c), c.Param("id"), req.PayoutAccount,
	)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"updated": true})
}

// UpdateAssets handles PUT /api/v1/merchants/:id/assets.
func (h *MerchantHandler) UpdateAssets(c *gin.Context) {
	var req dto.UpdateAssetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrInvalidInput(err.Error()))
		return
	}

	err := h.directorySvc.UpdateAcceptedAssets(
		c.Request.Context(), middleware.CallerAccount(c), c.Param("id"), req.AcceptsCredit, req.AcceptsStable,
	)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"updated": true})
}

// UpdateMetadata handles PUT /api/v1/merchants/:id/metadata.
func (h *MerchantHandler) UpdateMetadata(c *gin.Context) {
	var req dto.UpdateMetadataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrInvalidInput(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	err := h.directorySvc.UpdateMetadata(
		c.Request.Context(), middleware.CallerAccount(c), c.Param("id"), req.MetadataURI,
	)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"updated": true})
}

// SetFeeOverride handles PUT /api/v1/merchants/:id/fee-override.
func (h *MerchantHandler) SetFeeOverride(c *gin.Context) {
	var req dto.FeeOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrInvalidInput(err.Error()))
		return
	}

	err := h.directorySvc.SetFeeOverride(
		c.Request.Context(), middleware.CallerAccount(c), c.Param("id"), req.RateBps,
	)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"updated": true})
}

// GetAcceptance handles GET /api/v1/merchants/:id/acceptance.
func (h *MerchantHandler) GetAcceptance(c *gin.Context) {
	asset, err := dto.ParseAsset(c.Query("asset"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidInput(err.Error()))
		return
	}

	accepted, err := h.directorySvc.CanAcceptPayment(c.Request.Context(), c.Param("id"), asset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.AcceptanceResponse{
		MerchantID: c.Param("id"),
		Asset:      string(asset),
		Accepted:   accepted,
	})
}

// GetFeeRate handles GET /api/v1/merchants/:id/fee-rate.
func (h *MerchantHandler) GetFeeRate(c *gin.Context) {
	rate, err := h.directorySvc.EffectiveFeeRate(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.FeeRateResponse{MerchantID: c.Param("id"), RateBps: rate})
}

func (h *MerchantHandler) transition(c *gin.Context, op func(ctx context.Context, caller, id string) error) {
	if err := op(c.Request.Context(), middleware.CallerAccount(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"updated": true})
}

func toProfile(req dto.RegisterMerchantRequest) (ports.MerchantProfile, error) {
	category, err := dto.ParseCategory(req.Category)
	if err != nil {
		return ports.MerchantProfile{}, apperror.ErrInvalidInput(err.Error())
	}
	return ports.MerchantProfile{
		Name:          req.Name,
		BusinessID:    req.BusinessID,
		Category:      category,
		PayoutAccount: req.PayoutAccount,
		MetadataURI:   req.MetadataURI,
		AcceptsCredit: req.AcceptsCredit,
		AcceptsStable: req.AcceptsStable,
	}, nil
}

func toMerchantResponse(m *domain.Merchant) dto.MerchantResponse {
	resp := dto.MerchantResponse{
		ID:            m.ID,
		Name:          m.Name,
		BusinessID:    m.BusinessID,
		Category:      string(m.Category),
		Owner:         m.Owner,
		PayoutAccount: m.PayoutAccount,
		FeeOverride:   m.FeeOverride,
		AcceptsCredit: m.AcceptsCredit,
		AcceptsStable: m.AcceptsStable,
		Status:        string(m.Status),
		TotalVolume:   m.TotalVolume,
		TotalTxCount:  m.TotalTxCount,
		MetadataURI:   m.MetadataURI,
		RegisteredAt:  m.RegisteredAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if m.LastTxAt != nil {
		s := m.LastTxAt.Format("2006-01-02T15:04:05Z07:00")
		resp.LastTxAt = &s
	}
	return resp
}
