package apperrors

import "errors"

// Error categories. Every error returned by a service wraps exactly one of these,
// and middleware.HandleAPIError maps the category to an HTTP status.
var (
	ErrValidationFailed   = errors.New("validation failed")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrResourceNotFound   = errors.New("resource not found")
	ErrConflict           = errors.New("conflict")
)

// Token errors
var (
	ErrTokenExpired  = errors.New("token expired")
	ErrTokenInvalid  = errors.New("invalid token")
	ErrInvalidFormat = errors.New("invalid token format")
)

// Domain errors with fixed messages
var (
	ErrEmailAlreadyExists = NewConflictError("User already exists")
	ErrUserNotFound       = NewResourceNotFoundError("User not found")
	ErrMentorNotFound     = NewResourceNotFoundError("Mentor not found")
	ErrCourseNotFound     = NewResourceNotFoundError("Course not found")
	ErrChapterNotFound    = NewResourceNotFoundError("Chapter not found")
	ErrCertificateMissing = NewResourceNotFoundError("Certificate not found")

	ErrStudentsOnly      = NewForbiddenError("Only students allowed")
	ErrMentorsOnly       = NewForbiddenError("Only mentors allowed")
	ErrAdminsOnly        = NewForbiddenError("Only admins allowed")
	ErrNotCourseOwner    = NewForbiddenError("Not your course")
	ErrCourseDeleteOwner = NewForbiddenError("You are not allowed to delete this course")
	ErrChapterOwner      = NewForbiddenError("Not allowed to delete this chapter")
	ErrMentorNotApproved = NewForbiddenError("Mentor not approved by admin")
	ErrNotEnrolled       = NewForbiddenError("Not enrolled in course")
	ErrEnrollFirst       = NewForbiddenError("Enroll in course first")
	ErrEnrollToView      = NewForbiddenError("Enroll in course to view chapters")

	ErrAlreadyEnrolled     = NewConflictError("Already enrolled")
	ErrAlreadyCompleted    = NewConflictError("Already completed")
	ErrAlreadyCertified    = NewConflictError("Certificate already generated")
	ErrCourseHasNoChapters = NewBadRequestError("Course has no chapters")
	ErrCourseIncomplete    = NewBadRequestError("Complete all chapters to get certificate")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{Err: ErrPermissionDenied, Message: message}
}

// NewBadRequestError creates a new custom error for invalid input with a message
func NewBadRequestError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}

// Is returns whether err matches target or any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with a client-facing message
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// Message returns the client-facing message carried by err, if any
func Message(err error) (string, bool) {
	var ce *CustomError
	if errors.As(err, &ce) && ce.Message != "" {
		return ce.Message, true
	}
	return "", false
}
