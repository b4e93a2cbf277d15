package dto

// RegisterMerchantRequest is the request body for self-service registration.
type RegisterMerchantRequest struct {
	Name          string `json:"name" binding:"required,min=1,max=100"`
	BusinessID    string `json:"business_id" binding:"max=100"`
	Category      string `json:"category" binding:"required"`
	PayoutAccount string `json:"payout_account" binding:"required,max=100"`
	MetadataURI   string `json:"metadata_uri" binding:"max=500"`
	AcceptsCredit bool   `json:"accepts_credit"`
	AcceptsStable bool   `json:"accepts_stable"`
}

// RegisterDirectRequest is the request body for registrar-vouched
// registration. The merchant is created active on behalf of owner.
type RegisterDirectRequest struct {
	RegisterMerchantRequest
	Owner          string `json:"owner" binding:"required,max=100"`
	FeeOverrideBps int64  `json:"fee_override_bps" binding:"min=0"`
}

// UpdatePayoutRequest is the request body for payout account changes.
type UpdatePayoutRequest struct {
	PayoutAccount string `json:"payout_account" binding:"required,max=100"`
}

// UpdateAssetsRequest is the request body for acceptance flag changes.
type UpdateAssetsRequest struct {
	AcceptsCredit bool `json:"accepts_credit"`
	AcceptsStable bool `json:"accepts_stable"`
}

// UpdateMetadataRequest is the request body for metadata URI changes.
type UpdateMetadataRequest struct {
	MetadataURI string `json:"metadata_uri" binding:"max=500"`
}

// FeeOverrideRequest is the request body for admin fee override changes.
type FeeOverrideRequest struct {
	RateBps int64 `json:"rate_bps" binding:"min=0"`
}

// MerchantResponse is the response body for merchant queries.
type MerchantResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	BusinessID    string  `json:"business_id,omitempty"`
	Category      string  `json:"category"`
	Owner         string  `json:"owner"`
	PayoutAccount string  `json:"payout_account"`
	FeeOverride   int64   `json:"fee_override_bps"`
	AcceptsCredit bool    `json:"accepts_credit"`
	AcceptsStable bool    `json:"accepts_stable"`
	Status        string  `json:"status"`
	TotalVolume   int64   `json:"total_volume"`
	TotalTxCount  int64   `json:"total_tx_count"`
	MetadataURI   string  `json:"metadata_uri,omitempty"`
	RegisteredAt  string  `json:"registered_at"`
	LastTxAt      *string `json:"last_tx_at,omitempty"`
}

// PayRequest is the request body for a direct payment.
type PayRequest struct {
	MerchantID string `json:"merchant_id" binding:"required"`
	Asset      string `json:"asset" binding:"required"`
	Amount     int64  `json:"amount" binding:"required,gt=0"`
	OrderRef   string `json:"order_ref" binding:"required,max=100"`
	Memo       string `json:"memo" binding:"max=500"`
}

// GaslessPayRequest is the request body for a relayer-submitted payment
// authorized by the payer's intent signature.
type GaslessPayRequest struct {
	Payer      string `json:"payer" binding:"required,max=100"`
	MerchantID string `json:"merchant_id" binding:"required"`
	Asset      string `json:"asset" binding:"required"`
	Amount     int64  `json:"amount" binding:"required,gt=0"`
	OrderRef   string `json:"order_ref" binding:"required,max=100"`
	Memo       string `json:"memo" binding:"max=500"`
	Nonce      uint64 `json:"nonce"`
	Deadline   string `json:"deadline" binding:"required"`  // RFC 3339
	Signature  string `json:"signature" binding:"required"` // base64
}

// RefundRequest is the request body for a merchant-initiated refund.
// A zero or omitted amount refunds everything that remains.
type RefundRequest struct {
	Amount int64 `json:"amount" binding:"min=0"`
}

// RegisterKeyRequest is the request body for payer key registration.
type RegisterKeyRequest struct {
	PublicKey string `json:"public_key" binding:"required"` // base64, Ed25519
}

// PaymentResponse is the response body for payment results and queries.
type PaymentResponse struct {
	ID             string `json:"id"`
	MerchantID     string `json:"merchant_id"`
	Payer          string `json:"payer"`
	Asset          string `json:"asset"`
	Amount         int64  `json:"amount"`
	Fee            int64  `json:"fee"`
	MerchantAmount int64  `json:"merchant_amount"`
	Status         string `json:"status"`
	OrderRef       string `json:"order_ref"`
	Memo           string `json:"memo,omitempty"`
	RefundedAmount int64  `json:"refunded_amount"`
	CreatedAt      string `json:"created_at"`
}

// RefundableResponse is the response for refundable amount queries.
type RefundableResponse struct {
	PaymentID  string `json:"payment_id"`
	Refundable int64  `json:"refundable"`
}

// AcceptanceResponse is the response for payment acceptance queries.
type AcceptanceResponse struct {
	MerchantID string `json:"merchant_id"`
	Asset      string `json:"asset"`
	Accepted   bool   `json:"accepted"`
}

// FeeRateResponse is the response for effective fee rate queries.
type FeeRateResponse struct {
	MerchantID string `json:"merchant_id"`
	RateBps    int64  `json:"rate_bps"`
}

// ParamsRequest is the request body for parameter updates.
type ParamsRequest struct {
	MaxFeeBps         int64 `json:"max_fee_bps" binding:"min=0,max=10000"`
	DefaultFeeBps     int64 `json:"default_fee_bps" binding:"min=0"`
	MinPaymentAmount  int64 `json:"min_payment_amount" binding:"required,gt=0"`
	DailyGaslessQuota int64 `json:"daily_gasless_quota" binding:"required,gt=0"`
}

// ParamsResponse is the response body for parameter queries.
type ParamsResponse struct {
	MaxFeeBps         int64  `json:"max_fee_bps"`
	DefaultFeeBps     int64  `json:"default_fee_bps"`
	MinPaymentAmount  int64  `json:"min_payment_amount"`
	DailyGaslessQuota int64  `json:"daily_gasless_quota"`
	UpdatedAt         string `json:"updated_at"`
}
