package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidation      = 4001
	CodeInvalidAmount   = 4002
	CodeUnknownField    = 4003
	CodeNotFound        = 4040
	CodeDuplicateGroup  = 4090
	CodeGroupLocked     = 4230

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrGroupNameRequired is returned when a group is created without a name
	ErrGroupNameRequired = errors.New("group name is required")

	// ErrDuplicateGroup is returned when a group with the same name already exists
	ErrDuplicateGroup = errors.New("group already exists")

	// ErrGroupNotFound is returned when the requested group doesn't exist
	ErrGroupNotFound = errors.New("group not found")

	// ErrRoundNotFound is returned when no round exists for the requested group
	ErrRoundNotFound = errors.New("round not found")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrAggregateNotFound is returned when a group has no aggregate values row yet
	ErrAggregateNotFound = errors.New("aggregate values not found")

	// ErrAdminNotFound is returned when no admin matches the supplied credentials
	ErrAdminNotFound = errors.New("admin not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidAmount is returned when a text-encoded decimal cannot be parsed
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrInvalidRetribution is returned when a round carries an unparseable
	// retribution quantity
	ErrInvalidRetribution = errors.New("invalid retribution quantity")

	// ErrNoMembers is returned when settlement runs for a group whose member
	// count is zero
	ErrNoMembers = errors.New("group has no members to settle")

	// ErrUnknownField is returned when an aggregate field lookup names a field
	// that doesn't exist
	ErrUnknownField = errors.New("unknown aggregate field")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrGroupLocked is returned when a group is locked by a concurrent settlement
	ErrGroupLocked = errors.New("group is locked by another operation")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrGroupNameRequired), errors.Is(err, ErrInvalidRequest),
		errors.Is(err, ErrNoMembers), errors.Is(err, ErrInvalidRetribution):
		return CodeValidation
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrUnknownField):
		return CodeUnknownField
	case IsNotFoundError(err):
		return CodeNotFound
	case errors.Is(err, ErrDuplicateGroup):
		return CodeDuplicateGroup
	case errors.Is(err, ErrGroupLocked):
		return CodeGroupLocked
	default:
		return CodeInternalServer
	}
}

// IsNotFoundError checks if the error is any "not found" kind of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrGroupNotFound) ||
		errors.Is(err, ErrRoundNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrAggregateNotFound) ||
		errors.Is(err, ErrAdminNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}

// IsValidationError checks if the error should surface as a bad request
func IsValidationError(err error) bool {
	return errors.Is(err, ErrGroupNameRequired) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidRetribution) ||
		errors.Is(err, ErrNoMembers) ||
		errors.Is(err, ErrUnknownField) ||
		errors.Is(err, ErrInvalidRequest)
}

// IsConflictError checks if the error should surface as a conflict
func IsConflictError(err error) bool {
	return errors.Is(err, ErrDuplicateGroup) || errors.Is(err, ErrGroupLocked)
}

// SettlementError carries context about a failed round settlement
type SettlementError struct {
	GroupID string
	Pool    string
	Members int
	Err     error
}

// Error implements the error interface for SettlementError
func (e *SettlementError) Error() string {
	return fmt.Sprintf("settlement failed for group %s (pool: %s, members: %d): %v",
		e.GroupID, e.Pool, e.Members, e.Err)
}

// Unwrap returns the underlying error
func (e *SettlementError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *SettlementError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "settlement_error",
		"group_id":   e.GroupID,
		"pool":       e.Pool,
		"members":    e.Members,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewSettlementError creates a detailed settlement error
func NewSettlementError(groupID, pool string, members int, err error) error {
	return &SettlementError{
		GroupID: groupID,
		Pool:    pool,
		Members: members,
		Err:     err,
	}
}
