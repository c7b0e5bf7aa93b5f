package profile

import "errors"

var (
	ErrMissingFields   = errors.New("author name, title, short bio, long bio and page title are required")
	ErrShortBioTooLong = errors.New("short bio must not exceed 200 characters")
	ErrProfileNotFound = errors.New("profile not found")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrMissingFields):
		return "MISSING_REQUIRED_FIELDS"
	case errors.Is(err, ErrShortBioTooLong):
		return "VALIDATION_ERROR"
	case errors.Is(err, ErrProfileNotFound):
		return "PROFILE_NOT_FOUND"
	default:
		return "SERVER_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrMissingFields), errors.Is(err, ErrShortBioTooLong):
		return 400
	case errors.Is(err, ErrProfileNotFound):
		return 404
	default:
		return 500
	}
}
