package addressing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testGroupID(c string) string {
	return strings.Repeat(c, 64)
}

func TestGroupAddress(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, GroupAddress(testGroupID("1")), GroupAddress(testGroupID("1")))
	})

	t.Run("distinct ids yield distinct addresses", func(t *testing.T) {
		assert.NotEqual(t, GroupAddress(testGroupID("1")), GroupAddress(testGroupID("2")))
	})

	t.Run("hex case insensitive", func(t *testing.T) {
		assert.Equal(t, GroupAddress(testGroupID("A")), GroupAddress(testGroupID("a")))
	})

	t.Run("hex encoded 32 bytes", func(t *testing.T) {
		assert.Len(t, GroupAddress(testGroupID("1")), AddressLength)
	})
}

func TestMembershipAddress(t *testing.T) {
	groupID := testGroupID("1")
	alice := testGroupID("a")
	bob := testGroupID("b")

	t.Run("distinct per member", func(t *testing.T) {
		assert.NotEqual(t, MembershipAddress(groupID, alice), MembershipAddress(groupID, bob))
	})

	t.Run("distinct per group", func(t *testing.T) {
		assert.NotEqual(t, MembershipAddress(testGroupID("1"), alice), MembershipAddress(testGroupID("2"), alice))
	})

	t.Run("no collision with group address space", func(t *testing.T) {
		assert.NotEqual(t, GroupAddress(groupID), MembershipAddress(groupID, alice))
	})
}

func TestInviteLinkAddress(t *testing.T) {
	groupID := testGroupID("3")

	t.Run("case sensitive codes", func(t *testing.T) {
		assert.NotEqual(t, InviteLinkAddress(groupID, "SECRET12"), InviteLinkAddress(groupID, "secret12"))
	})

	t.Run("scoped to group", func(t *testing.T) {
		assert.NotEqual(t, InviteLinkAddress(testGroupID("3"), "secret12"), InviteLinkAddress(testGroupID("4"), "secret12"))
	})
}

func TestCodeLookupAddress(t *testing.T) {
	t.Run("case folded", func(t *testing.T) {
		assert.Equal(t, CodeLookupAddress("MY-GROUP"), CodeLookupAddress("my-group"))
	})

	t.Run("global namespace", func(t *testing.T) {
		assert.NotEqual(t, CodeLookupAddress("my-group"), CodeLookupAddress("my-group2"))
	})
}

func TestUsernameAddress(t *testing.T) {
	t.Run("case folded", func(t *testing.T) {
		assert.Equal(t, UsernameAddress("Alice"), UsernameAddress("alice"))
	})
}

func TestSeedFraming(t *testing.T) {
	// Concatenation ambiguity must not produce identical addresses.
	a := derive("ab", "c")
	b := derive("a", "bc")
	assert.NotEqual(t, a, b)
}

func TestVerify(t *testing.T) {
	groupID := testGroupID("7")
	addr := GroupAddress(groupID)

	assert.True(t, Verify(addr, "group", groupID))
	assert.False(t, Verify(addr, "group", testGroupID("8")))
	assert.False(t, Verify("not-an-address", "group", groupID))
}
