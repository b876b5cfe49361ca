package handlers

import (
	"errors"
	"net/http"

	"github.com/BrunoMartendal/webhook-pix2/internal/errs"
)

// statusFor maps an error kind to the HTTP status returned to the caller.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrMalformedPayload), errors.Is(err, errs.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrInvalidSignature):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrUnrecognizedPayloadFormat):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
