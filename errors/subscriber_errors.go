// errors/subscriber_errors.go
package errors

import "errors"

var (
	ErrSubscriberNotFound    = errors.New("subscriber not found")
	ErrInvalidSubscriberData = errors.New("invalid subscriber data")
)
