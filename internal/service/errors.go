package service

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package matches exactly one of
// them with errors.Is, except ErrClientHasContracts.
var (
	ErrNotFound          = errors.New("not found")
	ErrReferenceNotFound = errors.New("referenced record not found")
	ErrValidation        = errors.New("validation failed")
)

var (
	ErrClientNotFound       = fmt.Errorf("client %w", ErrNotFound)
	ErrContractNotFound     = fmt.Errorf("contract %w", ErrNotFound)
	ErrConsultantNotFound   = fmt.Errorf("consultant %w", ErrNotFound)
	ErrServiceNotFound      = fmt.Errorf("service %w", ErrNotFound)
	ErrLogEntryNotFound     = fmt.Errorf("log entry %w", ErrNotFound)
	ErrCommentNotFound      = fmt.Errorf("comment %w", ErrNotFound)
	ErrAnnouncementNotFound = fmt.Errorf("announcement %w", ErrNotFound)

	ErrContractClientNotFound  = fmt.Errorf("contract client: %w", ErrReferenceNotFound)
	ErrServiceContractNotFound = fmt.Errorf("service contract: %w", ErrReferenceNotFound)

	ErrClientHasContracts = errors.New("client still owns contracts")
	ErrNoNewChanges       = fmt.Errorf("no new values: %w", ErrValidation)
)

// ValidationError names the field that breaks a domain constraint.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
