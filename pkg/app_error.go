package pkg

import "fmt"

// AppError is the error shape returned by the HTTP layer.
//
// Every response uses the same envelope:
//
//	{"success": false, "error": {"code": "...", "message": "..."}}
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

// ErrorBody is the "error" member of the response envelope.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Envelope is the uniform JSON response wrapper.
type Envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ToHTTPError renders the failure envelope. The wrapped cause is never exposed.
func (e *AppError) ToHTTPError() Envelope {
	return Envelope{
		Success: false,
		Error:   &ErrorBody{Code: e.Code, Message: e.Message},
	}
}

// OK wraps data in a success envelope.
func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}
