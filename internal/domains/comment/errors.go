package comment

import "errors"

var (
	ErrMissingFields   = errors.New("book id, rating and content are required")
	ErrBookNotFound    = errors.New("book not found")
	ErrInvalidRating   = errors.New("rating must be between 0.5 and 5")
	ErrInvalidStatus   = errors.New("status must be approved or rejected")
	ErrCommentNotFound = errors.New("comment not found")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrMissingFields):
		return "MISSING_FIELDS"
	case errors.Is(err, ErrBookNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrInvalidRating):
		return "VALIDATION_ERROR"
	case errors.Is(err, ErrInvalidStatus):
		return "INVALID_STATUS"
	case errors.Is(err, ErrCommentNotFound):
		return "NOT_FOUND"
	default:
		return "SERVER_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrMissingFields),
		errors.Is(err, ErrInvalidRating),
		errors.Is(err, ErrInvalidStatus):
		return 400
	case errors.Is(err, ErrBookNotFound), errors.Is(err, ErrCommentNotFound):
		return 404
	default:
		return 500
	}
}
