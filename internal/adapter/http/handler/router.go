package handler

import (
	"payment-rails/internal/adapter/http/middleware"
	"payment-rails/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	DirectorySvc   ports.DirectoryService
	LedgerSvc      ports.LedgerService
	ParamsSvc      ports.ParamsService
	TokenSvc       ports.TokenService
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	merchantHandler := NewMerchantHandler(deps.DirectorySvc)
	paymentHandler := NewPaymentHandler(deps.LedgerSvc)
	paramsHandler := NewParamsHandler(deps.ParamsSvc)

	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)

	v1 := r.Group("/api/v1")

	// --- Public directory reads ---
	v1.GET("/merchants/:id", merchantHandler.Get)
	v1.GET("/merchants/:id/acceptance", merchantHandler.GetAcceptance)
	v1.GET("/merchants/:id/fee-rate", merchantHandler.GetFeeRate)
	v1.GET("/merchants/by-owner/:account", merchantHandler.GetByOwner)
	v1.GET("/merchants/by-payout/:account", merchantHandler.GetByPayout)
	v1.GET("/params", paramsHandler.Get)
	v1.GET("/payments/:id", paymentHandler.Get)
	v1.GET("/payments/:id/refundable", paymentHandler.GetRefundable)

	// --- Authenticated routes ---
	merchants := v1.Group("/merchants", jwtAuth)
	{
		merchants.POST("", merchantHandler.Register)
		merchants.POST("/direct", merchantHandler.RegisterDirect)
		merchants.POST("/:id/verify", merchantHandler.Verify)
		merchants.POST("/:id/suspend", merchantHandler.Suspend)
		merchants.POST("/:id/reactivate", merchantHandler.Reactivate)
		merchants.POST("/:id/terminate", merchantHandler.Terminate)
		merchants.PUT("/:id/payout", merchantHandler.UpdatePayout)
		merchants.PUT("/:id/assets", merchantHandler.UpdateAssets)
		merchants.PUT("/:id/metadata", merchantHandler.UpdateMetadata)
		merchants.PUT("/:id/fee-override", merchantHandler.SetFeeOverride)
	}

	payments := v1.Group("/payments", jwtAuth)
	{
		payments.POST("", paymentHandler.Pay)
		payments.POST("/gasless", paymentHandler.PayGasless)
		payments.POST("/:id/refund", paymentHandler.Refund)
		payments.POST("/:id/refund/full", paymentHandler.RefundFull)
		payments.POST("/:id/dispute", paymentHandler.Dispute)
	}

	payers := v1.Group("/payers", jwtAuth)
	{
		payers.POST("/keys", paymentHandler.RegisterKey)
	}

	v1.PUT("/params", jwtAuth, paramsHandler.Update)

	return r
}
