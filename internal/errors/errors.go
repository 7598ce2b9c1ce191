package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when a record is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when a record already occupies
// its derived address
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this public code"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a field-level validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Is enables errors.Is() comparison for ValidationError
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return t.Field == "" || e.Field == t.Field
}

// PermissionDeniedError represents an authorization failure
type PermissionDeniedError struct {
	Reason string
}

func (e *PermissionDeniedError) Error() string {
	return fmt.Sprintf("permission denied: %s", e.Reason)
}

// Is enables errors.Is() comparison for PermissionDeniedError
func (e *PermissionDeniedError) Is(target error) bool {
	t, ok := target.(*PermissionDeniedError)
	if !ok {
		return false
	}
	return t.Reason == "" || e.Reason == t.Reason
}

// CapacityExceededError represents an operation rejected because a group
// is at its member cap
type CapacityExceededError struct {
	Entity string
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("%s is full (max members reached)", e.Entity)
}

// Is enables errors.Is() comparison for CapacityExceededError
func (e *CapacityExceededError) Is(target error) bool {
	_, ok := target.(*CapacityExceededError)
	return ok
}

// InvalidStateError represents an operation rejected by a record's current
// state (inactive link, expired link, owner-only invariant, ...)
type InvalidStateError struct {
	Reason string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid state: %s", e.Reason)
}

// Is enables errors.Is() comparison for InvalidStateError
func (e *InvalidStateError) Is(target error) bool {
	t, ok := target.(*InvalidStateError)
	if !ok {
		return false
	}
	return t.Reason == "" || e.Reason == t.Reason
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// Record Not Found Errors
var (
	ErrGroupNotFound      = &NotFoundError{Entity: "group"}
	ErrMembershipNotFound = &NotFoundError{Entity: "membership"}
	ErrInviteLinkNotFound = &NotFoundError{Entity: "invite link"}
	ErrCodeLookupNotFound = &NotFoundError{Entity: "public code"}
	ErrUsernameNotFound   = &NotFoundError{Entity: "username"}
)

// Already Exists Errors
var (
	ErrGroupExists      = &AlreadyExistsError{Entity: "group", Context: "with this group id"}
	ErrMembershipExists = &AlreadyExistsError{Entity: "membership", Context: "for this member in the group"}
	ErrInviteLinkExists = &AlreadyExistsError{Entity: "invite link", Context: "with this code in the group"}
	ErrPublicCodeTaken  = &AlreadyExistsError{Entity: "public code", Context: "for another group"}
	ErrUsernameTaken    = &AlreadyExistsError{Entity: "username", Context: ""}
)

// Capacity Errors
var (
	ErrGroupFull = &CapacityExceededError{Entity: "group"}
)

// Authorization Errors
var (
	ErrNotGroupOwner          = &PermissionDeniedError{Reason: "only the group owner can perform this action"}
	ErrNotUsernameOwner       = &PermissionDeniedError{Reason: "only the username owner can perform this action"}
	ErrInsufficientRole       = &PermissionDeniedError{Reason: "insufficient permissions"}
	ErrCannotKickOwner        = &PermissionDeniedError{Reason: "cannot kick the group owner"}
	ErrCannotKickSelf         = &PermissionDeniedError{Reason: "cannot kick yourself"}
	ErrCannotOutrankKicker    = &PermissionDeniedError{Reason: "cannot kick a member of equal or higher rank"}
	ErrCannotChangeOwnerRole  = &PermissionDeniedError{Reason: "cannot change the owner's role"}
	ErrCannotPromoteToOwner   = &PermissionDeniedError{Reason: "cannot promote a member to owner"}
	ErrOnlyOwnerPromotesAdmin = &PermissionDeniedError{Reason: "only the owner can promote to admin"}
)

// State Errors
var (
	ErrOwnerCannotLeave    = &InvalidStateError{Reason: "owner cannot leave the group"}
	ErrInviteLinkInactive  = &InvalidStateError{Reason: "invite link is no longer active"}
	ErrInviteLinkExpired   = &InvalidStateError{Reason: "invite link has expired"}
	ErrInviteLinkExhausted = &InvalidStateError{Reason: "invite link usage limit reached"}
)

// Authentication Errors
var (
	ErrInvalidToken    = &AuthenticationError{Message: "invalid token"}
	ErrMissingIdentity = &AuthenticationError{Message: "caller identity not found in context"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsPermissionDenied checks if an error is a PermissionDeniedError
func IsPermissionDenied(err error) bool {
	var deniedErr *PermissionDeniedError
	return errors.As(err, &deniedErr)
}

// IsCapacityExceeded checks if an error is a CapacityExceededError
func IsCapacityExceeded(err error) bool {
	var capErr *CapacityExceededError
	return errors.As(err, &capErr)
}

// IsInvalidState checks if an error is an InvalidStateError
func IsInvalidState(err error) bool {
	var stateErr *InvalidStateError
	return errors.As(err, &stateErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewPermissionDeniedError creates a new PermissionDeniedError
func NewPermissionDeniedError(reason string) error {
	return &PermissionDeniedError{Reason: reason}
}

// NewInvalidStateError creates a new InvalidStateError
func NewInvalidStateError(reason string) error {
	return &InvalidStateError{Reason: reason}
}
