package apierr

import (
	"errors"
	"net/http"

	"github.com/mcoot/botarena/internal/api/response"
	"github.com/mcoot/botarena/internal/model"
)

// APIError is the body of every error response
type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeMissingField       = "MISSING_FIELD"
	CodeInvalidRace        = "INVALID_RACE"
	CodeInvalidAllocation  = "INVALID_ALLOCATION"
	CodeAllocationMismatch = "ALLOCATION_MISMATCH"
	CodeAlreadyExists      = "ALREADY_EXISTS"
	CodeProfileNotFound    = "PROFILE_NOT_FOUND"
	CodeNotEnoughPoints    = "NOT_ENOUGH_POINTS"
	CodeInvalidBodyPart    = "INVALID_BODY_PART"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	response.JSON(w, he.status, he.apiError)
}

// Status returns the HTTP status WriteError would use for err
func Status(err error) int {
	return toHTTPError(err).status
}

// userErrors maps each player-facing sentinel to its code and fallback message.
// Every one of them is a 400.
var userErrors = []struct {
	err     error
	code    string
	message string
}{
	{model.ErrMissingField, CodeMissingField, "Missing required field."},
	{model.ErrInvalidRace, CodeInvalidRace, "Invalid race."},
	{model.ErrInvalidAllocation, CodeInvalidAllocation, "Invalid point allocation."},
	{model.ErrAllocationMismatch, CodeAllocationMismatch, "Allocation does not match the available points."},
	{model.ErrProfileExists, CodeAlreadyExists, "Profile already exists."},
	{model.ErrProfileNotFound, CodeProfileNotFound, "Profile not found."},
	{model.ErrNotEnoughPoints, CodeNotEnoughPoints, "Not enough extra points."},
	{model.ErrInvalidBodyPart, CodeInvalidBodyPart, "Invalid body part."},
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	for _, ue := range userErrors {
		if !errors.Is(err, ue.err) {
			continue
		}
		message := ue.message
		var ve *model.ValidationError
		if errors.As(err, &ve) && ve.Message != "" {
			message = ve.Message
		}
		return &httpError{http.StatusBadRequest, APIError{message, ue.code}}
	}

	return &httpError{http.StatusInternalServerError, APIError{"Internal server error.", CodeInternalError}}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{message, CodeInvalidRequest}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{"Internal server error.", CodeInternalError}}
}
