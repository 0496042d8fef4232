package application

import (
	"testing"

	"github.com/danuartha/notaris-go/internal/domain/activity"
	"github.com/danuartha/notaris-go/internal/domain/deed"
	"github.com/danuartha/notaris-go/internal/domain/requirement"
	"github.com/danuartha/notaris-go/internal/domain/user"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func requirementActivity() activity.Activity {
	return activity.Activity{
		ID:       10,
		NotaryID: 9,
		DeedID:   1,
		Deed:     &deed.Deed{ID: 1, TotalClient: 1},
		Clients:  []activity.Client{{UserID: 7, StatusApproval: "approved"}},
	}
}

// --------------------- CreateExtra ---------------------
func TestCreateExtra_Success(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewRequirementService(repos)

	m.activity.EXPECT().GetActivityByID(uint(10)).Return(requirementActivity(), nil).Times(2)
	m.requirement.EXPECT().CreateRequirement(gomock.Any()).DoAndReturn(func(r *requirement.Requirement) error {
		assert.Equal(t, uint(1), r.DeedID)
		assert.Equal(t, uint(10), *r.ActivityID)
		assert.True(t, r.IsFile)
		r.ID = 5
		return nil
	})
	m.track.EXPECT().UpsertStep(uint(10), gomock.Any(), gomock.Any()).Return(nil).Times(7)

	input := requirement.CreateExtraDTO{ActivityID: 10, Name: "Surat Kuasa", InputType: "file"}
	req, err := svc.CreateExtra(testCtx(), 9, user.RoleNotary, input)

	assert.NoError(t, err)
	assert.Equal(t, uint(5), req.ID)
}

func TestCreateExtra_ForbiddenForClient(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewRequirementService(repos)

	m.activity.EXPECT().GetActivityByID(uint(10)).Return(requirementActivity(), nil)

	input := requirement.CreateExtraDTO{ActivityID: 10, Name: "Surat Kuasa", InputType: "file"}
	req, err := svc.CreateExtra(testCtx(), 7, user.RoleClient, input)

	assert.Nil(t, req)
	assert.ErrorIs(t, err, ErrForbidden)
}

// --------------------- DeleteRequirement ---------------------
func TestDeleteRequirement_DefaultCannotBeDeleted(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewRequirementService(repos)

	m.requirement.EXPECT().GetRequirementByID(uint(5)).Return(requirement.Requirement{ID: 5, DeedID: 1}, nil)

	err := svc.DeleteRequirement(testCtx(), 5, 9, user.RoleNotary)

	assert.ErrorIs(t, err, ErrNotExtraRequirement)
}

func TestDeleteRequirement_ExtraWithValues(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewRequirementService(repos)

	req := requirement.Requirement{ID: 5, DeedID: 1, ActivityID: ptrUint(10)}
	m.requirement.EXPECT().GetRequirementByID(uint(5)).Return(req, nil)
	m.activity.EXPECT().GetActivityByID(uint(10)).Return(requirementActivity(), nil).Times(2)
	m.requirement.EXPECT().DeleteValuesByRequirement(uint(5)).Return(nil)
	m.requirement.EXPECT().DeleteRequirement(uint(5)).Return(nil)
	m.track.EXPECT().UpsertStep(uint(10), gomock.Any(), gomock.Any()).Return(nil).Times(7)

	err := svc.DeleteRequirement(testCtx(), 5, 9, user.RoleNotary)

	assert.NoError(t, err)
}

// --------------------- SubmitValue ---------------------
func TestSubmitValue_NonPartyForbidden(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewRequirementService(repos)

	m.requirement.EXPECT().GetRequirementByID(uint(5)).Return(requirement.Requirement{ID: 5, DeedID: 1}, nil)
	m.activity.EXPECT().GetActivityByID(uint(10)).Return(requirementActivity(), nil)

	input := requirement.SubmitValueDTO{ActivityID: 10, Value: "3201234567890001"}
	v, err := svc.SubmitValue(testCtx(), 5, 8, user.RoleClient, input)

	assert.Nil(t, v)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestSubmitValue_FileRequirementRejectsText(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewRequirementService(repos)

	m.requirement.EXPECT().GetRequirementByID(uint(5)).Return(requirement.Requirement{ID: 5, DeedID: 1, IsFile: true}, nil)
	m.activity.EXPECT().GetActivityByID(uint(10)).Return(requirementActivity(), nil)

	input := requirement.SubmitValueDTO{ActivityID: 10, Value: "teks"}
	v, err := svc.SubmitValue(testCtx(), 5, 7, user.RoleClient, input)

	assert.Nil(t, v)
	assert.Error(t, err)
}

func TestSubmitValue_ResubmitResetsStatus(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewRequirementService(repos)

	m.requirement.EXPECT().GetRequirementByID(uint(5)).Return(requirement.Requirement{ID: 5, DeedID: 1}, nil)
	m.activity.EXPECT().GetActivityByID(uint(10)).Return(requirementActivity(), nil).Times(2)
	existing := requirement.Value{ID: 3, RequirementID: 5, ActivityID: 10, UserID: 7, Value: "lama", Status: "rejected"}
	m.requirement.EXPECT().ListValuesByActivity(uint(10)).Return([]requirement.Value{existing}, nil)
	m.requirement.EXPECT().SaveValue(gomock.Any()).DoAndReturn(func(v *requirement.Value) error {
		assert.Equal(t, uint(3), v.ID)
		assert.Equal(t, "baru", v.Value)
		assert.Equal(t, "pending", v.Status)
		return nil
	})
	m.track.EXPECT().UpsertStep(uint(10), gomock.Any(), gomock.Any()).Return(nil).Times(7)

	input := requirement.SubmitValueDTO{ActivityID: 10, Value: "baru"}
	v, err := svc.SubmitValue(testCtx(), 5, 7, user.RoleClient, input)

	assert.NoError(t, err)
	assert.Equal(t, "pending", v.Status)
}

func TestSubmitValue_RequirementFromOtherDeed(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewRequirementService(repos)

	m.requirement.EXPECT().GetRequirementByID(uint(5)).Return(requirement.Requirement{ID: 5, DeedID: 2}, nil)
	m.activity.EXPECT().GetActivityByID(uint(10)).Return(requirementActivity(), nil)

	input := requirement.SubmitValueDTO{ActivityID: 10, Value: "teks"}
	v, err := svc.SubmitValue(testCtx(), 5, 7, user.RoleClient, input)

	assert.Nil(t, v)
	assert.ErrorIs(t, err, ErrRequirementNotFound)
}

// --------------------- ReviewValue ---------------------
func TestReviewValue_ForbiddenForClient(t *testing.T) {
	repos, _ := setupRepoMocks(t)
	svc := NewRequirementService(repos)

	input := requirement.ReviewValueDTO{Status: "approved"}
	v, err := svc.ReviewValue(testCtx(), 3, 7, user.RoleClient, input)

	assert.Nil(t, v)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestReviewValue_Success(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewRequirementService(repos)

	stored := requirement.Value{ID: 3, RequirementID: 5, ActivityID: 10, UserID: 7, Status: "pending"}
	m.requirement.EXPECT().GetValueByID(uint(3)).Return(stored, nil)
	m.activity.EXPECT().GetActivityByID(uint(10)).Return(requirementActivity(), nil).Times(2)
	m.requirement.EXPECT().SaveValue(gomock.Any()).DoAndReturn(func(v *requirement.Value) error {
		assert.Equal(t, "approved", v.Status)
		return nil
	})
	m.track.EXPECT().UpsertStep(uint(10), gomock.Any(), gomock.Any()).Return(nil).Times(7)

	input := requirement.ReviewValueDTO{Status: "approved", Note: "Lengkap"}
	v, err := svc.ReviewValue(testCtx(), 3, 9, user.RoleNotary, input)

	assert.NoError(t, err)
	assert.Equal(t, "approved", v.Status)
	assert.Equal(t, "Lengkap", v.Note)
}
