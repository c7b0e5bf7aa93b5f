package category

import "errors"

var (
	ErrMissingName      = errors.New("category name is required")
	ErrNameTooShort     = errors.New("category name must be at least 2 characters")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category with this name already exists")
	ErrCategoryInUse    = errors.New("cannot delete category with linked books")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrMissingName):
		return "MISSING_FIELDS"
	case errors.Is(err, ErrNameTooShort):
		return "VALIDATION_ERROR"
	case errors.Is(err, ErrCategoryNotFound):
		return "CATEGORY_NOT_FOUND"
	case errors.Is(err, ErrCategoryExists):
		return "CATEGORY_EXISTS"
	case errors.Is(err, ErrCategoryInUse):
		return "CATEGORY_IN_USE"
	default:
		return "SERVER_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrMissingName), errors.Is(err, ErrNameTooShort), errors.Is(err, ErrCategoryExists):
		return 400
	case errors.Is(err, ErrCategoryNotFound):
		return 404
	case errors.Is(err, ErrCategoryInUse):
		return 409
	default:
		return 500
	}
}
