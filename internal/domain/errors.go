package domain

import "errors"

var (
	// ErrNotFound is returned by repositories when a record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation marks locally-recoverable input errors. They are handled
	// by re-prompting in place and never reach the operator channel.
	ErrValidation = errors.New("validation failed")

	// ErrDelivery marks a notification channel failure. Delivery errors are
	// retried once in degraded plain-text mode, then logged and swallowed.
	ErrDelivery = errors.New("delivery failed")

	// ErrPersistence marks a write failure in the booking ledger. The
	// negotiation surfaces it to the requester and allows a resubmit.
	ErrPersistence = errors.New("persistence failed")
)
