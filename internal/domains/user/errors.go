package user

import "errors"

var (
	// Validation errors
	ErrMissingFields = errors.New("username, password and role are required")
	ErrInvalidRole   = errors.New("role must be 'SUPER_ADMIN' or 'ADMIN'")
	ErrUsernameTaken = errors.New("username is already in use")

	// Auth errors
	ErrUserNotFound        = errors.New("user not found")
	ErrWrongPassword       = errors.New("wrong password")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrMissingFields):
		return "MISSING_FIELDS"
	case errors.Is(err, ErrInvalidRole):
		return "INVALID_ROLE"
	case errors.Is(err, ErrUsernameTaken):
		return "USERNAME_EXISTS"
	case errors.Is(err, ErrUserNotFound):
		return "USER_NOT_FOUND"
	case errors.Is(err, ErrWrongPassword):
		return "WRONG_PASSWORD"
	case errors.Is(err, ErrInvalidRefreshToken):
		return "INVALID_TOKEN"
	default:
		return "SERVER_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrMissingFields), errors.Is(err, ErrInvalidRole), errors.Is(err, ErrUsernameTaken):
		return 400
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrWrongPassword), errors.Is(err, ErrInvalidRefreshToken):
		return 401
	default:
		return 500
	}
}
