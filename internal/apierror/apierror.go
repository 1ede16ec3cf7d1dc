// Package apierror defines the JSON bodies the API writes on 4xx/5xx.
// Handlers and middleware never write driver or panic text to the client
// except through these types.
package apierror

import "fmt"

// Fixed detail messages shared by handlers and middleware.
const (
	MsgInterno    = "Error interno del servidor"
	MsgIDInvalido = "ID invalido"
	MsgValidacion = "Error de validacion"
)

// APIError is the {"detail": "..."} body.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

func Newf(format string, args ...any) *APIError {
	return &APIError{Detail: fmt.Sprintf(format, args...)}
}

// Internal is the body of every 500, whatever the cause.
func Internal() *APIError {
	return New(MsgInterno)
}

// ValidationError reports the failed validator tag per field, keyed by the
// field's JSON or query-string name.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: MsgValidacion, Fields: fields}
}
