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

// ---- Wallet & Account (WAL) ----

func ErrAccountNotFound() *AppError {
	return New("WAL_001", "Account not found", http.StatusNotFound)
}

func ErrUnknownNetwork(id string) *AppError {
	return New("WAL_002", fmt.Sprintf("Unsupported network: %s", id), http.StatusBadRequest)
}

// ---- Reconciliation (REC) ----

func ErrLedgerWrite(err error) *AppError {
	return Wrap("REC_001", "Ledger write failed", http.StatusInternalServerError, err)
}

// ---- Security (SEC) ----

func ErrExportUnauthorized() *AppError {
	return New("SEC_001", "Export authorization rejected", http.StatusUnauthorized)
}

func ErrExportTokenExpired() *AppError {
	return New("SEC_002", "Export token invalid or expired", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an unexpected internal error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation creates a validation error with details.
func Validation(detail string) *AppError {
	return New("SYS_002", fmt.Sprintf("Validation failed: %s", detail), http.StatusBadRequest)
}
