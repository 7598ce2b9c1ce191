// Package validation holds the pure field-level rules shared by all
// services. Every check runs before any storage access and reports a
// ValidationError naming the offending field.
package validation

import (
	"encoding/hex"

	apperrors "group-registry-backend/internal/errors"
)

// Field length limits
const (
	GroupNameMaxLen        = 100
	GroupDescriptionMaxLen = 500
	PublicCodeMinLen       = 3
	PublicCodeMaxLen       = 20
	InviteCodeMinLen       = 8
	InviteCodeMaxLen       = 16
	UsernameMinLen         = 3
	UsernameMaxLen         = 20

	// GroupIDLen and IdentityLen are raw byte lengths; both travel through
	// the API as hex strings twice this size.
	GroupIDLen  = 32
	IdentityLen = 32

	// Opaque key blob sizes.
	GroupKeyLen    = 32
	MemberKeyLen   = 64
	UsernameKeyLen = 32
)

// GroupName checks the 1-100 character group name rule.
func GroupName(name string) error {
	if len(name) < 1 || len(name) > GroupNameMaxLen {
		return apperrors.NewValidationError("name", "must be 1-100 characters")
	}
	return nil
}

// GroupDescription checks the 0-500 character description rule.
func GroupDescription(description string) error {
	if len(description) > GroupDescriptionMaxLen {
		return apperrors.NewValidationError("description", "must be at most 500 characters")
	}
	return nil
}

// PublicCode checks the 3-20 character, lowercase alphanumeric + hyphen rule.
func PublicCode(code string) error {
	if len(code) < PublicCodeMinLen || len(code) > PublicCodeMaxLen {
		return apperrors.NewValidationError("public_code", "must be 3-20 characters")
	}
	for _, c := range code {
		if !isLowerAlnum(c) && c != '-' {
			return apperrors.NewValidationError("public_code", "can only contain lowercase letters, numbers, and hyphens")
		}
	}
	return nil
}

// InviteCode checks the 8-16 character alphanumeric rule.
func InviteCode(code string) error {
	if len(code) < InviteCodeMinLen || len(code) > InviteCodeMaxLen {
		return apperrors.NewValidationError("invite_code", "must be 8-16 characters")
	}
	for _, c := range code {
		if !isAlnum(c) {
			return apperrors.NewValidationError("invite_code", "can only contain alphanumeric characters")
		}
	}
	return nil
}

// Username checks the 3-20 character, alphanumeric + underscore rule.
func Username(name string) error {
	if len(name) < UsernameMinLen || len(name) > UsernameMaxLen {
		return apperrors.NewValidationError("username", "must be 3-20 characters")
	}
	for _, c := range name {
		if !isAlnum(c) && c != '_' {
			return apperrors.NewValidationError("username", "can only contain letters, numbers, and underscores")
		}
	}
	return nil
}

// GroupID checks a group id is a hex string encoding exactly 32 bytes.
func GroupID(id string) error {
	raw, err := hex.DecodeString(id)
	if err != nil || len(raw) != GroupIDLen {
		return apperrors.NewValidationError("group_id", "must be a 32-byte hex string")
	}
	return nil
}

// Identity checks an identity key is a hex string encoding exactly 32 bytes.
func Identity(identity string) error {
	raw, err := hex.DecodeString(identity)
	if err != nil || len(raw) != IdentityLen {
		return apperrors.NewValidationError("identity", "must be a 32-byte hex string")
	}
	return nil
}

// KeyBlob checks an opaque key blob is either empty or exactly size bytes.
// Empty blobs are zero filled so public groups can skip key wrapping.
func KeyBlob(field string, blob []byte, size int) ([]byte, error) {
	if len(blob) == 0 {
		return make([]byte, size), nil
	}
	if len(blob) != size {
		return nil, apperrors.NewValidationError(field, "must be exactly the expected key size")
	}
	return blob, nil
}

func isAlnum(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func isLowerAlnum(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}
