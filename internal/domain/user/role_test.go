package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleFromID(t *testing.T) {
	assert.Equal(t, RoleAdmin, RoleFromID(RoleIDAdmin))
	assert.Equal(t, RoleClient, RoleFromID(RoleIDClient))
	assert.Equal(t, RoleNotary, RoleFromID(RoleIDNotary))
	assert.Equal(t, RoleUnknown, RoleFromID(0))
	assert.Equal(t, RoleUnknown, RoleFromID(99))
}

func TestCanManageActivity(t *testing.T) {
	assert.True(t, CanManageActivity(RoleNotary))
	assert.True(t, CanManageActivity(RoleAdmin))
	assert.False(t, CanManageActivity(RoleClient))
	assert.False(t, CanManageActivity(RoleUnknown))
}

func TestCanApproveDraft_ClientOnly(t *testing.T) {
	assert.True(t, CanApproveDraft(RoleClient))
	assert.False(t, CanApproveDraft(RoleNotary))
	assert.False(t, CanApproveDraft(RoleAdmin))
}

func TestCanRespondInvite_ClientOnly(t *testing.T) {
	assert.True(t, CanRespondInvite(RoleClient))
	assert.False(t, CanRespondInvite(RoleNotary))
	assert.False(t, CanRespondInvite(RoleAdmin))
}

func TestCanUploadDraft_AnyKnownRole(t *testing.T) {
	assert.True(t, CanUploadDraft(RoleClient))
	assert.True(t, CanUploadDraft(RoleNotary))
	assert.True(t, CanUploadDraft(RoleAdmin))
	assert.False(t, CanUploadDraft(RoleUnknown))
}

func TestCanMarkStepDone(t *testing.T) {
	assert.True(t, CanMarkStepDone(RoleNotary))
	assert.True(t, CanMarkStepDone(RoleAdmin))
	assert.False(t, CanMarkStepDone(RoleClient))
}

func TestCanReviewRequirement(t *testing.T) {
	assert.True(t, CanReviewRequirement(RoleNotary))
	assert.True(t, CanReviewRequirement(RoleAdmin))
	assert.False(t, CanReviewRequirement(RoleClient))
}

func TestUserRole(t *testing.T) {
	u := User{RoleID: RoleIDNotary}
	assert.Equal(t, RoleNotary, u.Role())
}
