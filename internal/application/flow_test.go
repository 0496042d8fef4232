package application

import (
	"testing"

	"github.com/danuartha/notaris-go/internal/domain/activity"
	"github.com/danuartha/notaris-go/internal/domain/deed"
	"github.com/danuartha/notaris-go/internal/domain/draft"
	"github.com/danuartha/notaris-go/internal/domain/requirement"
	"github.com/danuartha/notaris-go/internal/domain/track"
	"github.com/danuartha/notaris-go/internal/domain/user"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

// --------------------- StepStatuses ---------------------
func TestStepStatuses_MissingRowsArePending(t *testing.T) {
	rows := []track.Track{
		{Step: "invite", Status: "done"},
		{Step: "respond", Status: "progress"},
	}

	statuses := StepStatuses(rows)

	assert.Len(t, statuses, track.StepCount)
	assert.Equal(t, track.StatusDone, statuses[track.StepInvite])
	assert.Equal(t, track.StatusTodo, statuses[track.StepRespond])
	assert.Equal(t, track.StatusPending, statuses[track.StepDocs])
	assert.Equal(t, track.StatusPending, statuses[track.StepPrint])
}

func TestStepStatuses_UnknownStepRowsIgnored(t *testing.T) {
	rows := []track.Track{
		{Step: "review", Status: "done"},
		{Step: "sign", Status: "done"},
	}

	statuses := StepStatuses(rows)

	assert.Len(t, statuses, track.StepCount)
	assert.Equal(t, track.StatusDone, statuses[track.StepSign])
}

// --------------------- RecomputeTrack ---------------------
func recordUpserts(m *repoMocks, activityID uint) map[track.Step]track.Status {
	recorded := make(map[track.Step]track.Status)
	m.track.EXPECT().UpsertStep(activityID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(id uint, step track.Step, status track.Status) error {
			recorded[step] = status
			return nil
		}).Times(track.StepCount)
	return recorded
}

func TestRecomputeTrack_FreshActivity(t *testing.T) {
	repos, m := setupRepoMocks(t)

	a := activity.Activity{
		ID:     10,
		DeedID: 1,
		Deed:   &deed.Deed{ID: 1, TotalClient: 2},
		Clients: []activity.Client{
			{UserID: 7, StatusApproval: "pending"},
		},
	}
	m.activity.EXPECT().GetActivityByID(uint(10)).Return(a, nil)
	recorded := recordUpserts(m, 10)

	err := RecomputeTrack(repos, 10)

	assert.NoError(t, err)
	assert.Equal(t, track.StatusTodo, recorded[track.StepInvite])
	assert.Equal(t, track.StatusPending, recorded[track.StepRespond])
	assert.Equal(t, track.StatusPending, recorded[track.StepDocs])
	assert.Equal(t, track.StatusPending, recorded[track.StepPrint])
}

func TestRecomputeTrack_RejectedResponseBlocksDocs(t *testing.T) {
	repos, m := setupRepoMocks(t)

	a := activity.Activity{
		ID:     10,
		DeedID: 1,
		Deed:   &deed.Deed{ID: 1, TotalClient: 2},
		Clients: []activity.Client{
			{UserID: 7, StatusApproval: "approved"},
			{UserID: 8, StatusApproval: "rejected"},
		},
	}
	m.activity.EXPECT().GetActivityByID(uint(10)).Return(a, nil)
	m.requirement.EXPECT().ListForActivity(uint(1), uint(10)).Return(nil, nil)
	m.requirement.EXPECT().ListValuesByActivity(uint(10)).Return(nil, nil)
	recorded := recordUpserts(m, 10)

	err := RecomputeTrack(repos, 10)

	assert.NoError(t, err)
	assert.Equal(t, track.StatusDone, recorded[track.StepInvite])
	assert.Equal(t, track.StatusReject, recorded[track.StepRespond])
	assert.Equal(t, track.StatusPending, recorded[track.StepDocs])
}

func TestRecomputeTrack_ExtraRequirementOpensDocs(t *testing.T) {
	repos, m := setupRepoMocks(t)

	a := activity.Activity{
		ID:     10,
		DeedID: 1,
		Deed:   &deed.Deed{ID: 1, TotalClient: 2},
		Clients: []activity.Client{
			{UserID: 7, StatusApproval: "approved"},
			{UserID: 8, StatusApproval: "pending"},
		},
	}
	m.activity.EXPECT().GetActivityByID(uint(10)).Return(a, nil)
	m.requirement.EXPECT().ListForActivity(uint(1), uint(10)).Return(requirementWithActivity(10), nil)
	recorded := recordUpserts(m, 10)

	err := RecomputeTrack(repos, 10)

	assert.NoError(t, err)
	assert.Equal(t, track.StatusTodo, recorded[track.StepRespond])
	assert.Equal(t, track.StatusTodo, recorded[track.StepDocs])
}

func TestRecomputeTrack_ManualStepsStayDoneWhileChainHolds(t *testing.T) {
	repos, m := setupRepoMocks(t)

	a := activity.Activity{
		ID:     10,
		DeedID: 1,
		Deed:   &deed.Deed{ID: 1, TotalClient: 1},
		Clients: []activity.Client{
			{UserID: 7, StatusApproval: "approved"},
		},
		Draft: &draft.Draft{
			ID:         3,
			ActivityID: 10,
			Approvals:  []draft.Approval{{DraftID: 3, UserID: 7, Status: "approved"}},
		},
		Tracks: []track.Track{
			{Step: "docs", Status: "done"},
			{Step: "schedule", Status: "done"},
			{Step: "sign", Status: "todo"},
		},
	}
	m.activity.EXPECT().GetActivityByID(uint(10)).Return(a, nil)
	recorded := recordUpserts(m, 10)

	err := RecomputeTrack(repos, 10)

	assert.NoError(t, err)
	assert.Equal(t, track.StatusDone, recorded[track.StepDocs])
	assert.Equal(t, track.StatusDone, recorded[track.StepDraft])
	assert.Equal(t, track.StatusDone, recorded[track.StepSchedule])
	assert.Equal(t, track.StatusTodo, recorded[track.StepSign])
	assert.Equal(t, track.StatusPending, recorded[track.StepPrint])
}

// --------------------- GetDetail ---------------------
func TestGetDetail_ForbiddenForStranger(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewFlowService(repos)

	a := activity.Activity{ID: 10, NotaryID: 9, Clients: []activity.Client{{UserID: 7}}}
	m.activity.EXPECT().GetActivityByID(uint(10)).Return(a, nil)

	detail, err := svc.GetDetail(10, 5, user.RoleClient)

	assert.Nil(t, detail)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestGetDetail_InvitedPartyAllowed(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewFlowService(repos)

	a := activity.Activity{ID: 10, NotaryID: 9, Clients: []activity.Client{{UserID: 7}}}
	m.activity.EXPECT().GetActivityByID(uint(10)).Return(a, nil)

	detail, err := svc.GetDetail(10, 7, user.RoleClient)

	assert.NoError(t, err)
	assert.Len(t, detail.Steps, 7)
}

func TestGetDetail_ClientSeesOwnDraftStatus(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewFlowService(repos)

	a := activity.Activity{
		ID:       10,
		NotaryID: 9,
		Clients:  []activity.Client{{UserID: 7}, {UserID: 8}},
		Draft: &draft.Draft{
			ID:         3,
			ActivityID: 10,
			Approvals: []draft.Approval{
				{DraftID: 3, UserID: 7, Status: "approved"},
				{DraftID: 3, UserID: 8, Status: "rejected"},
			},
		},
	}
	m.activity.EXPECT().GetActivityByID(uint(10)).Return(a, nil).Times(3)

	detail, err := svc.GetDetail(10, 7, user.RoleClient)
	assert.NoError(t, err)
	assert.Equal(t, "approved", detail.MyDraftStatus)

	detail, err = svc.GetDetail(10, 8, user.RoleClient)
	assert.NoError(t, err)
	assert.Equal(t, "rejected", detail.MyDraftStatus)

	// the notary has no pivot and never sees a personal status
	detail, err = svc.GetDetail(10, 9, user.RoleNotary)
	assert.NoError(t, err)
	assert.Empty(t, detail.MyDraftStatus)
}

func TestGetDetail_NoPivotYetIsEmpty(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewFlowService(repos)

	a := activity.Activity{
		ID:       10,
		NotaryID: 9,
		Clients:  []activity.Client{{UserID: 7}},
		Draft:    &draft.Draft{ID: 3, ActivityID: 10},
	}
	m.activity.EXPECT().GetActivityByID(uint(10)).Return(a, nil)

	detail, err := svc.GetDetail(10, 7, user.RoleClient)

	assert.NoError(t, err)
	assert.Empty(t, detail.MyDraftStatus)
}

// --------------------- MarkStepDone ---------------------
func TestMarkStepDone_InvalidStep(t *testing.T) {
	repos, _ := setupRepoMocks(t)
	svc := NewFlowService(repos)

	detail, err := svc.MarkStepDone(testCtx(), 10, track.Step("review"), 9, user.RoleNotary)

	assert.Nil(t, detail)
	assert.ErrorIs(t, err, ErrInvalidStep)
}

func TestMarkStepDone_DerivedStepRejected(t *testing.T) {
	repos, _ := setupRepoMocks(t)
	svc := NewFlowService(repos)

	detail, err := svc.MarkStepDone(testCtx(), 10, track.StepInvite, 9, user.RoleNotary)

	assert.Nil(t, detail)
	assert.ErrorIs(t, err, ErrStepNotManual)
}

func TestMarkStepDone_StepNotInProgress(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewFlowService(repos)

	a := activity.Activity{
		ID:       10,
		NotaryID: 9,
		Tracks:   []track.Track{{Step: "docs", Status: "pending"}},
	}
	m.activity.EXPECT().GetActivityByID(uint(10)).Return(a, nil)

	detail, err := svc.MarkStepDone(testCtx(), 10, track.StepDocs, 9, user.RoleNotary)

	assert.Nil(t, detail)
	assert.ErrorIs(t, err, ErrStepLocked)
}

func TestMarkStepDone_ForbiddenForOtherNotary(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewFlowService(repos)

	a := activity.Activity{ID: 10, NotaryID: 9}
	m.activity.EXPECT().GetActivityByID(uint(10)).Return(a, nil)

	detail, err := svc.MarkStepDone(testCtx(), 10, track.StepDocs, 5, user.RoleNotary)

	assert.Nil(t, detail)
	assert.ErrorIs(t, err, ErrForbidden)
}

func requirementWithActivity(activityID uint) []requirement.Requirement {
	id := activityID
	return []requirement.Requirement{{DeedID: 1, ActivityID: &id, Name: "KTP Tambahan"}}
}
