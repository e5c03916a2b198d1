package apperror

import "fmt"

// ValidationError reports a recoverable, field-level input problem. The
// failed operation leaves no partial mutation behind.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func Validation(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IntegrityError reports a refused operation that would break a referential
// invariant, such as deleting a building that still has section children.
type IntegrityError struct {
	Message string
}

func (e *IntegrityError) Error() string {
	return e.Message
}

func Integrity(format string, args ...any) *IntegrityError {
	return &IntegrityError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports an unknown id on an edit or delete path. Filters
// treat unknown ids as "no match" instead of returning this.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func NotFound(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}
