package book

import "errors"

var (
	// Validation errors
	ErrMissingFields      = errors.New("title, category, description and cover image are required")
	ErrTitleTooShort      = errors.New("title must be at least 2 characters")
	ErrDescriptionTooLong = errors.New("description must not exceed 150 characters")
	ErrInvalidStatus      = errors.New("status must be 'draft', 'published' or 'upcoming'")

	// Business rule errors
	ErrBookNotFound     = errors.New("book not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrMissingFields):
		return "MISSING_FIELDS"
	case errors.Is(err, ErrTitleTooShort), errors.Is(err, ErrDescriptionTooLong):
		return "VALIDATION_ERROR"
	case errors.Is(err, ErrInvalidStatus):
		return "INVALID_STATUS"
	case errors.Is(err, ErrBookNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrCategoryNotFound):
		return "CATEGORY_NOT_FOUND"
	default:
		return "SERVER_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrMissingFields), errors.Is(err, ErrTitleTooShort),
		errors.Is(err, ErrDescriptionTooLong), errors.Is(err, ErrInvalidStatus):
		return 400
	case errors.Is(err, ErrBookNotFound), errors.Is(err, ErrCategoryNotFound):
		return 404
	default:
		return 500
	}
}
