// errors/gateway_errors.go
package errors

import "errors"

var (
	ErrUnauthorized      = errors.New("unauthorized")
	ErrDatabaseOperation = errors.New("database operation failed")
	ErrInternalServer    = errors.New("internal server error")
	ErrUpstreamFailure   = errors.New("upstream request failed")
)
