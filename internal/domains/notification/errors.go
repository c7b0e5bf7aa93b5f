package notification

import "errors"

var (
	ErrInvalidType          = errors.New("invalid notification type")
	ErrNotificationNotFound = errors.New("notification not found")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrInvalidType):
		return "VALIDATION_ERROR"
	case errors.Is(err, ErrNotificationNotFound):
		return "NOT_FOUND"
	default:
		return "SERVER_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidType):
		return 400
	case errors.Is(err, ErrNotificationNotFound):
		return 404
	default:
		return 500
	}
}
