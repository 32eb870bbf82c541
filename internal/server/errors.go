package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/pipeline"
	"github.com/jonathan/resume-analyzer/internal/schemas"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrUnsupportedMedia indicates a request body in a content type the endpoint does not accept
type ErrUnsupportedMedia struct {
	ContentType string
}

func (e *ErrUnsupportedMedia) Error() string {
	return fmt.Sprintf("unsupported content type: %s", e.ContentType)
}

// fromValidator converts the first failing field of a validator error to ErrValidation.
func fromValidator(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return &ErrValidation{Field: fieldErrs[0].Field(), Message: fieldErrs[0].Tag()}
	}
	return err
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr *ErrValidation
		mediaErr      *ErrUnsupportedMedia
		formatErr     *ingestion.UnsupportedFormatError
		extractionErr *ingestion.ExtractionError
		schemaErr     *schemas.ValidationError
		documentErr   *schemas.DocumentError
		fieldErrs     validator.ValidationErrors
		maxBytesErr   *http.MaxBytesError
	)

	switch {
	case err == nil:
		return http.StatusInternalServerError
	case errors.As(err, &maxBytesErr):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &mediaErr), errors.As(err, &formatErr):
		return http.StatusUnsupportedMediaType
	case errors.As(err, &validationErr),
		errors.As(err, &extractionErr),
		errors.As(err, &schemaErr),
		errors.As(err, &documentErr),
		errors.As(err, &fieldErrs),
		errors.Is(err, pipeline.ErrEmptyText):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
