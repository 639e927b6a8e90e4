package errors

import (
	stderrors "errors"
	"fmt"
)

// DomainError is an error with a stable code that API clients can match on.
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"error"`
	Status  int    `json:"-"`
	cause   error
}

func (e *DomainError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.cause
}

// Wrap returns a copy of e carrying cause.
func (e *DomainError) Wrap(cause error) *DomainError {
	cp := *e
	cp.cause = cause
	return &cp
}

// From finds the DomainError registered for err, if any.
func From(err error) (*DomainError, bool) {
	var de *DomainError
	if stderrors.As(err, &de) {
		return de, true
	}
	for _, m := range mappings {
		if stderrors.Is(err, m.sentinel) {
			return m.domain.Wrap(err), true
		}
	}
	return nil, false
}

type mapping struct {
	sentinel error
	domain   *DomainError
}

var mappings []mapping

// Register maps a service sentinel error onto a DomainError.
func Register(sentinel error, domain *DomainError) {
	mappings = append(mappings, mapping{sentinel: sentinel, domain: domain})
}
