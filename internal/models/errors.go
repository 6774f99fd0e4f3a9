package models

import (
	"errors"
	"fmt"
)

// ErrUnsupported is matched by every UnsupportedError.
var ErrUnsupported = errors.New("operation not supported by provider")

// UnsupportedError reports an operation a provider declares it cannot serve.
type UnsupportedError struct {
	Provider  string
	Operation string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("provider %s: %s: %v", e.Provider, e.Operation, ErrUnsupported)
}

func (e *UnsupportedError) Unwrap() error {
	return ErrUnsupported
}
