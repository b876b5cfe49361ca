package errs

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

var (
	ErrUnrecognizedPayloadFormat = errors.New("unrecognized payload format")
	ErrStoreUnavailable          = errors.New("store unavailable")
	ErrMalformedPayload          = errors.New("malformed payload")
	ErrNotFound                  = errors.New("not found")
	ErrInvalidTransition         = errors.New("invalid status transition")
	ErrValidation                = errors.New("validation failed")
	ErrInvalidSignature          = errors.New("invalid webhook signature")
)

// UnrecognizedPayloadError keeps the payload that failed classification so
// callers can echo it back for diagnostics.
type UnrecognizedPayloadError struct {
	Raw map[string]any
}

func (e *UnrecognizedPayloadError) Error() string {
	return ErrUnrecognizedPayloadFormat.Error()
}

func (e *UnrecognizedPayloadError) Is(target error) bool {
	return target == ErrUnrecognizedPayloadFormat
}

// Wrap adds context and preserves the error chain (errors.Is/As works).
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf adds formatted context and preserves the error chain.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	args = append(args, err)
	return fmt.Errorf(format+": %w", args...)
}

// StoreUnavailable marks a persistence failure while keeping the cause.
func StoreUnavailable(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrStoreUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}

func Malformed(err error) error {
	if err == nil {
		return ErrMalformedPayload
	}
	return fmt.Errorf("%w: %w", ErrMalformedPayload, err)
}

func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Fields returns the unwrap chain as logrus fields.
func Fields(err error) logrus.Fields {
	if err == nil {
		return logrus.Fields{}
	}
	chain := make([]string, 0, 4)
	for e := err; e != nil; e = errors.Unwrap(e) {
		chain = append(chain, e.Error())
	}
	return logrus.Fields{"error": err.Error(), "error_chain": chain}
}
