// Package addressing derives the storage address of every record from its
// logical key. Addresses are SHA-256 digests over a domain-separated seed
// list, hex encoded, and are used as primary keys: the database rejecting a
// duplicate key is the only uniqueness mechanism in the system. No caller
// may write a record at an address it did not derive here.
package addressing

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Seed prefixes, one per record type.
const (
	seedGroup      = "group"
	seedMembership = "group:member"
	seedInviteLink = "group:invite"
	seedCodeLookup = "group:code"
	seedUsername   = "username"
)

// AddressLength is the length of a hex-encoded address.
const AddressLength = 64

func derive(seeds ...string) string {
	h := sha256.New()
	for _, seed := range seeds {
		// Length framing keeps ("ab","c") and ("a","bc") distinct.
		h.Write([]byte{byte(len(seed) >> 8), byte(len(seed))})
		h.Write([]byte(seed))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// GroupAddress derives the address of a group record from its hex-encoded
// 32-byte id.
func GroupAddress(groupID string) string {
	return derive(seedGroup, strings.ToLower(groupID))
}

// MembershipAddress derives the address of the membership record binding
// one identity to one group.
func MembershipAddress(groupID, identity string) string {
	return derive(seedMembership, strings.ToLower(groupID), strings.ToLower(identity))
}

// InviteLinkAddress derives the address of an invite link. The code is used
// exactly as given; invite codes are case sensitive.
func InviteLinkAddress(groupID, inviteCode string) string {
	return derive(seedInviteLink, strings.ToLower(groupID), inviteCode)
}

// CodeLookupAddress derives the address of a public-code lookup record.
// Codes are case folded so "ABC" and "abc" resolve to the same record.
func CodeLookupAddress(publicCode string) string {
	return derive(seedCodeLookup, strings.ToLower(publicCode))
}

// UsernameAddress derives the address of a username record. Usernames are
// case folded.
func UsernameAddress(username string) string {
	return derive(seedUsername, strings.ToLower(username))
}

// Verify reports whether addr is the correct derivation for the given
// seeds. Lookup paths use it to confirm a record sits at the address its
// logical key demands.
func Verify(addr string, seeds ...string) bool {
	return addr == derive(seeds...)
}
