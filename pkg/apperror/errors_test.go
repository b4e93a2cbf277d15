package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("PAY_003", "Insufficient balance", http.StatusPaymentRequired),
			expected: "[PAY_003] Insufficient balance",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "DB error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] DB error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("PAY_001", "test", http.StatusBadRequest)
	assert.Nil(t, appErr.Unwrap())
}

func TestDirectoryErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"NotFound", ErrNotFound("merchant"), "DIR_001", 404},
		{"AlreadyExists", ErrAlreadyExists("payout account mapping"), "DIR_002", 409},
		{"Unauthorized", ErrUnauthorized("caller is not the merchant owner"), "DIR_003", 403},
		{"InvalidTransition", ErrInvalidTransition("PENDING", "SUSPENDED"), "DIR_004", 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestPaymentErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"InvalidInput", ErrInvalidInput("amount below minimum"), "PAY_001", 400},
		{"Ineligible", ErrIneligible("merchant cannot accept asset"), "PAY_002", 422},
		{"InsufficientBalance", ErrInsufficientBalance(), "PAY_003", 402},
		{"AlreadyProcessed", ErrAlreadyProcessed(), "PAY_004", 409},
		{"RefundExhausted", ErrRefundExhausted(), "PAY_005", 409},
		{"PaymentDisputed", ErrPaymentDisputed(), "PAY_006", 409},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestSignatureErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"SignatureInvalid", ErrSignatureInvalid(), "SIG_001", 401},
		{"SignatureExpired", ErrSignatureExpired(), "SIG_002", 403},
		{"NonceMismatch", ErrNonceMismatch(), "SIG_003", 403},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestAuthErrors(t *testing.T) {
	assert.Equal(t, "AUTH_001", ErrInvalidToken().Code)
	assert.Equal(t, 401, ErrInvalidToken().HTTPStatus)

	capErr := ErrMissingCapability("relayer")
	assert.Equal(t, "AUTH_002", capErr.Code)
	assert.Equal(t, 403, capErr.HTTPStatus)
	assert.Contains(t, capErr.Message, "relayer")
}

func TestSystemErrors(t *testing.T) {
	inner := fmt.Errorf("pg: connection closed")
	sysErr := InternalError(inner)
	assert.Equal(t, "SYS_001", sysErr.Code)
	assert.Equal(t, 500, sysErr.HTTPStatus)
	assert.True(t, errors.Is(sysErr, inner))

	xferErr := ErrTransferFailed(inner)
	assert.Equal(t, "SYS_002", xferErr.Code)
	assert.Equal(t, 502, xferErr.HTTPStatus)
}

func TestLimitExceeded(t *testing.T) {
	err := ErrLimitExceeded()
	assert.Equal(t, "RATE_001", err.Code)
	assert.Equal(t, 429, err.HTTPStatus)
}

func TestNotFoundEntity(t *testing.T) {
	err := ErrNotFound("payment")
	assert.Contains(t, err.Message, "payment")
	assert.Equal(t, "DIR_001", err.Code)
}
