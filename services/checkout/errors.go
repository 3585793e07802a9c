package checkout

import "fmt"

// Rejection codes surfaced to API clients. Every business-rule failure
// happens before any write, so a rejected request has no side effects.
const (
	CodeInvalidInput   = "invalid_input"
	CodeInvalidProduct = "invalid_product"
	CodeOutOfStock     = "out_of_stock"
)

// RejectionError is a client-fault rejection carrying a machine-readable
// code and a message safe to show to the buyer. Anything else returned
// by the service is a system fault.
type RejectionError struct {
	Code   string
	Detail string
}

func (e *RejectionError) Error() string {
	return e.Code + ": " + e.Detail
}

func reject(code, format string, args ...any) *RejectionError {
	return &RejectionError{Code: code, Detail: fmt.Sprintf(format, args...)}
}
