package user

// Role is the closed set of actors in the notarial workflow. All permission
// checks go through the capability functions below so the gating rules live
// in one place instead of scattered numeric comparisons.
type Role string

const (
	RoleUnknown Role = ""
	RoleAdmin   Role = "admin"
	RoleClient  Role = "client"
	RoleNotary  Role = "notary"
)

func RoleFromID(id uint) Role {
	switch id {
	case RoleIDAdmin:
		return RoleAdmin
	case RoleIDClient:
		return RoleClient
	case RoleIDNotary:
		return RoleNotary
	default:
		return RoleUnknown
	}
}

// CanManageActivity reports whether the role may create, update or destroy
// activities and manage their parties and requirements.
func CanManageActivity(r Role) bool {
	return r == RoleNotary || r == RoleAdmin
}

// CanEditSchedule gates schedule create/update/delete. Ownership of the
// activity is checked separately by the service.
func CanEditSchedule(r Role) bool {
	return r == RoleNotary || r == RoleAdmin
}

// CanApproveDraft gates the per-party approve/reject decision on a draft.
func CanApproveDraft(r Role) bool {
	return r == RoleClient
}

// CanUploadDraft gates uploading a draft file or rendering the deed document.
func CanUploadDraft(r Role) bool {
	return r == RoleNotary || r == RoleClient || r == RoleAdmin
}

// CanRespondInvite gates the invitation approve/reject response.
func CanRespondInvite(r Role) bool {
	return r == RoleClient
}

// CanMarkStepDone gates explicit step completion (docs, schedule, sign, print).
func CanMarkStepDone(r Role) bool {
	return r == RoleNotary || r == RoleAdmin
}

// CanReviewRequirement gates approving or rejecting a party's submitted
// requirement value.
func CanReviewRequirement(r Role) bool {
	return r == RoleNotary || r == RoleAdmin
}
