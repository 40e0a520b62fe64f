package entities

import (
	"errors"
	"net/http"
	"strings"
)

var ErrUnknownErrorKind = errors.New("unknown error kind")

// ErrorKind classifies failures reported by the product services.
//
// The set is closed: ParseErrorKind rejects anything outside it, and the
// methods below switch exhaustively so a new kind fails loudly at review.
type ErrorKind string

const (
	ErrorKindPayment    ErrorKind = "payment_error"
	ErrorKindAnalysis   ErrorKind = "analysis_error"
	ErrorKindSystem     ErrorKind = "system_error"
	ErrorKindValidation ErrorKind = "validation_error"
	ErrorKindNetwork    ErrorKind = "network_error"
	ErrorKindAPI        ErrorKind = "api_error"
)

var AllErrorKinds = []ErrorKind{
	ErrorKindPayment,
	ErrorKindAnalysis,
	ErrorKindSystem,
	ErrorKindValidation,
	ErrorKindNetwork,
	ErrorKindAPI,
}

// ParseErrorKind is case-insensitive and accepts "network-error" as well as "network_error".
func ParseErrorKind(s string) (ErrorKind, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for _, k := range AllErrorKinds {
		if string(k) == normalized {
			return k, nil
		}
	}
	return "", ErrUnknownErrorKind
}

func (k ErrorKind) Valid() bool {
	for _, known := range AllErrorKinds {
		if known == k {
			return true
		}
	}
	return false
}

// Refundable reports whether a failure of this kind against a completed
// payment qualifies the customer for a refund. Validation errors are caused
// by the customer's own input.
func (k ErrorKind) Refundable() bool {
	switch k {
	case ErrorKindPayment, ErrorKindAnalysis, ErrorKindSystem, ErrorKindNetwork, ErrorKindAPI:
		return true
	case ErrorKindValidation:
		return false
	default:
		return false
	}
}

// HTTPStatus is the status the customer-facing route answers with when a
// collaborator fails with this kind.
func (k ErrorKind) HTTPStatus() int {
	switch k {
	case ErrorKindValidation:
		return http.StatusBadRequest
	case ErrorKindPayment, ErrorKindAnalysis, ErrorKindSystem, ErrorKindNetwork, ErrorKindAPI:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
