package handler

import (
	"encoding/base64"
	"time"

	"payment-rails/internal/adapter/http/dto"
	"payment-rails/internal/adapter/http/middleware"
	"payment-rails/internal/core/domain"
	"payment-rails/internal/core/ports"
	"payment-rails/pkg/apperror"
	"payment-rails/pkg/response"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles payment ledger endpoints.
type PaymentHandler struct {
	ledgerSvc ports.LedgerService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(ledgerSvc ports.LedgerService) *PaymentHandler {
	return &PaymentHandler{ledgerSvc: ledgerSvc}
}

// Pay handles POST /api/v1/payments. The authenticated caller is the payer.
func (h *PaymentHandler) Pay(c *gin.Context) {
	var req dto.PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrInvalidInput(err.Error()))
		return
	}

	asset, err := dto.ParseAsset(req.Asset)
	if err != nil {
		response.Error(c, apperror.ErrInvalidInput(err.Error()))
		return
	}

	payment, err := h.ledgerSvc.Pay(c.Request.Context(), ports.PayRequest{
		Payer:      middleware.CallerAccount(c),
		MerchantID: req.MerchantID,
		Asset:      asset,
		Amount:     req.Amount,
		OrderRef:   req.OrderRef,
		Memo:       req.Memo,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, toPaymentResponse(payment))
}

// PayGasless handles POST /api/v1/payments/gasless. The authenticated caller
// is the relayer; the payer authorized the payment by signature.
func (h *PaymentHandler) PayGasless(c *gin.Context) {
	var req dto.GaslessPayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrInvalidInput(err.Error()))
		return
	}

	asset, err := dto.ParseAsset(req.Asset)
	if err != nil {
		response.Error(c, apperror.ErrInvalidInput(err.Error()))
		return
	}

	deadline, err := time.Parse(time.RFC3339, req.Deadline)
	if err != nil {
		response.Error(c, apperror.ErrInvalidInput("deadline must be RFC 3339"))
		return
	}

	signature, err := base64.StdEncoding.DecodeString(req.Signature)
	if err != nil {
		response.Error(c, apperror.ErrInvalidInput("signature must be base64"))
		return
	}

	payment, err := h.ledgerSvc.PayWithSignature(c.Request.Context(), ports.SignedPayRequest{
		Relayer:    middleware.CallerAccount(c),
		Payer:      req.Payer,
		MerchantID: req.MerchantID,
		Asset:      asset,
		Amount:     req.Amount,
		OrderRef:   req.OrderRef,
		Memo:       req.Memo,
		Nonce:      req.Nonce,
		Deadline:   deadline,
		Signature:  signature,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, toPaymentResponse(payment))
}

// Get handles GET /api/v1/payments/:id.
func (h *PaymentHandler) Get(c *gin.Context) {
	payment, err := h.ledgerSvc.GetPayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toPaymentResponse(payment))
}

// GetRefundable handles GET /api/v1/payments/:id/refundable.
func (h *PaymentHandler) GetRefundable(c *gin.Context) {
	refundable, err := h.ledgerSvc.GetRefundableAmount(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.RefundableResponse{PaymentID: c.Param("id"), Refundable: refundable})
}

// Refund handles POST /api/v1/payments/:id/refund. The caller must own the
// merchant side of the payment; only the merchant share is returned.
func (h *PaymentHandler) Refund(c *gin.Context) {
	var req dto.RefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrInvalidInput(err.Error()))
		return
	}

	payment, err := h.ledgerSvc.MerchantRefund(
		c.Request.Context(), middleware.CallerAccount(c), c.Param("id"), req.Amount,
	)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toPaymentResponse(payment))
}

// RefundFull handles POST /api/v1/payments/:id/refund/full. Admin only;
// returns the remaining merchant share plus the collected fee.
func (h *PaymentHandler) RefundFull(c *gin.Context) {
	payment, err := h.ledgerSvc.OperatorRefund(c.Request.Context(), middleware.CallerAccount(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toPaymentResponse(payment))
}

// Dispute handles POST /api/v1/payments/:id/dispute.
func (h *PaymentHandler) Dispute(c *gin.Context) {
	if err := h.ledgerSvc.MarkDisputed(c.Request.Context(), middleware.CallerAccount(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"disputed": true})
}

// RegisterKey handles POST /api/v1/payers/keys. The authenticated caller
// registers the Ed25519 key that authorizes their gasless payments.
func (h *PaymentHandler) RegisterKey(c *gin.Context) {
	var req dto.RegisterKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrInvalidInput(err.Error()))
		return
	}

	publicKey, err := base64.StdEncoding.DecodeString(req.PublicKey)
	if err != nil {
		response.Error(c, apperror.ErrInvalidInput("public_key must be base64"))
		return
	}

	if err := h.ledgerSvc.RegisterPayerKey(c.Request.Context(), middleware.CallerAccount(c), publicKey); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"registered": true})
}

// toPaymentResponse converts domain.Payment to DTO.
func toPaymentResponse(p *domain.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:             p.ID,
		MerchantID:     p.MerchantID,
		Payer:          p.Payer,
		Asset:          string(p.Asset),
		Amount:         p.Amount,
		Fee:            p.Fee,
		MerchantAmount: p.MerchantAmount,
		Status:         string(p.Status),
		OrderRef:       p.OrderRef,
		Memo:           p.Memo,
		RefundedAmount: p.RefundedAmount,
		CreatedAt:      p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
