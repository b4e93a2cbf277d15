package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Directory (DIR) ----

func ErrNotFound(entity string) *AppError {
	return New("DIR_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrAlreadyExists(what string) *AppError {
	return New("DIR_002", fmt.Sprintf("%s already exists", what), http.StatusConflict)
}

func ErrUnauthorized(reason string) *AppError {
	return New("DIR_003", reason, http.StatusForbidden)
}

func ErrInvalidTransition(from, to string) *AppError {
	return New("DIR_004", fmt.Sprintf("invalid status transition %s -> %s", from, to), http.StatusBadRequest)
}

// ---- Payment Business Logic (PAY) ----

func ErrInvalidInput(message string) *AppError {
	return New("PAY_001", message, http.StatusBadRequest)
}

func ErrIneligible(reason string) *AppError {
	return New("PAY_002", reason, http.StatusUnprocessableEntity)
}

func ErrInsufficientBalance() *AppError {
	return New("PAY_003", "Insufficient balance for payment", http.StatusPaymentRequired)
}

func ErrAlreadyProcessed() *AppError {
	return New("PAY_004", "Payment with identical derivation already exists", http.StatusConflict)
}

func ErrRefundExhausted() *AppError {
	return New("PAY_005", "Nothing left to refund", http.StatusConflict)
}

func ErrPaymentDisputed() *AppError {
	return New("PAY_006", "Payment is under dispute", http.StatusConflict)
}

// ---- Signature Authorization (SIG) ----

func ErrSignatureInvalid() *AppError {
	return New("SIG_001", "Invalid payment signature", http.StatusUnauthorized)
}

func ErrSignatureExpired() *AppError {
	return New("SIG_002", "Payment authorization deadline has passed", http.StatusForbidden)
}

func ErrNonceMismatch() *AppError {
	return New("SIG_003", "Nonce does not match payer's current nonce", http.StatusForbidden)
}

// ---- Rate Limiting (RATE) ----

func ErrLimitExceeded() *AppError {
	return New("RATE_001", "Daily gasless payment quota exceeded", http.StatusTooManyRequests)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_001", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrMissingCapability(capability string) *AppError {
	return New("AUTH_002", fmt.Sprintf("caller lacks %s capability", capability), http.StatusForbidden)
}

// ---- System & Infrastructure (SYS) ----

func ErrTransferFailed(err error) *AppError {
	return Wrap("SYS_002", "Value transfer failed", http.StatusBadGateway, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
