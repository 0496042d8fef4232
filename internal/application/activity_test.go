package application

import (
	"testing"

	"github.com/danuartha/notaris-go/internal/domain/activity"
	"github.com/danuartha/notaris-go/internal/domain/deed"
	"github.com/danuartha/notaris-go/internal/domain/user"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// --------------------- CreateActivity ---------------------
func TestCreateActivity_PartyCountMismatch(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewActivityService(repos)

	m.deed.EXPECT().GetDeedByID(uint(1)).Return(deed.Deed{ID: 1, TotalClient: 2}, nil)

	input := activity.CreateActivityDTO{
		Name:      "Jual Beli Tanah",
		DeedID:    1,
		ClientIDs: []uint{7},
	}
	detail, err := svc.CreateActivity(testCtx(), 9, user.RoleNotary, input)

	assert.Nil(t, detail)
	var pce *PartyCountError
	assert.ErrorAs(t, err, &pce)
	assert.Equal(t, 2, pce.Required)
	assert.EqualError(t, err, "Akta ini memerlukan 2 penghadap.")
}

func TestCreateActivity_ForbiddenForClient(t *testing.T) {
	repos, _ := setupRepoMocks(t)
	svc := NewActivityService(repos)

	input := activity.CreateActivityDTO{Name: "Jual Beli Tanah", DeedID: 1}
	detail, err := svc.CreateActivity(testCtx(), 7, user.RoleClient, input)

	assert.Nil(t, detail)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCreateActivity_Success(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewActivityService(repos)

	d := deed.Deed{ID: 1, Name: "Akta Jual Beli", TotalClient: 1}
	m.deed.EXPECT().GetDeedByID(uint(1)).Return(d, nil)

	m.activity.EXPECT().CreateActivity(gomock.Any()).DoAndReturn(func(a *activity.Activity) error {
		assert.Equal(t, uint(9), a.NotaryID)
		assert.NotEmpty(t, a.TrackingCode)
		a.ID = 10
		return nil
	})
	m.activity.EXPECT().AddClient(gomock.Any()).DoAndReturn(func(p *activity.Client) error {
		assert.Equal(t, uint(10), p.ActivityID)
		assert.Equal(t, uint(7), p.UserID)
		assert.Equal(t, 1, p.Ord)
		return nil
	})

	stored := activity.Activity{
		ID:       10,
		NotaryID: 9,
		DeedID:   1,
		Deed:     &d,
		Clients:  []activity.Client{{ActivityID: 10, UserID: 7, Ord: 1, StatusApproval: "pending"}},
	}
	m.activity.EXPECT().GetActivityByID(uint(10)).Return(stored, nil).Times(2)
	m.requirement.EXPECT().ListForActivity(uint(1), uint(10)).Return(nil, nil)
	m.requirement.EXPECT().ListValuesByActivity(uint(10)).Return(nil, nil)
	m.track.EXPECT().UpsertStep(uint(10), gomock.Any(), gomock.Any()).Return(nil).Times(7)

	input := activity.CreateActivityDTO{
		Name:      "Jual Beli Tanah",
		DeedID:    1,
		ClientIDs: []uint{7},
	}
	detail, err := svc.CreateActivity(testCtx(), 9, user.RoleNotary, input)

	assert.NoError(t, err)
	assert.Equal(t, uint(10), detail.Activity.ID)
	assert.Len(t, detail.Steps, 7)
}

// --------------------- UpdateActivity ---------------------
func TestUpdateActivity_NotOwningNotary(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewActivityService(repos)

	m.activity.EXPECT().GetActivityByID(uint(10)).Return(activity.Activity{ID: 10, NotaryID: 9}, nil)

	input := activity.UpdateActivityDTO{Name: ptrString("Nama Baru")}
	detail, err := svc.UpdateActivity(testCtx(), 10, 5, user.RoleNotary, input)

	assert.Nil(t, detail)
	assert.ErrorIs(t, err, ErrForbidden)
}

// --------------------- AddParty ---------------------
func TestAddParty_AlreadyInvited(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewActivityService(repos)

	a := activity.Activity{
		ID:       10,
		NotaryID: 9,
		Clients:  []activity.Client{{ActivityID: 10, UserID: 7}},
	}
	m.activity.EXPECT().GetActivityByID(uint(10)).Return(a, nil)

	detail, err := svc.AddParty(testCtx(), 10, 9, user.RoleNotary, activity.AddClientDTO{UserID: 7})

	assert.Nil(t, detail)
	assert.ErrorIs(t, err, ErrAlreadyInvited)
}

func TestAddParty_TargetNotAClient(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewActivityService(repos)

	a := activity.Activity{ID: 10, NotaryID: 9}
	m.activity.EXPECT().GetActivityByID(uint(10)).Return(a, nil)
	m.user.EXPECT().GetUserByID(uint(3)).Return(user.User{ID: 3, RoleID: user.RoleIDNotary}, nil)

	detail, err := svc.AddParty(testCtx(), 10, 9, user.RoleNotary, activity.AddClientDTO{UserID: 3})

	assert.Nil(t, detail)
	assert.ErrorIs(t, err, ErrClientNotFound)
}

// --------------------- RemoveParty ---------------------
func TestRemoveParty_NotAParty(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewActivityService(repos)

	a := activity.Activity{ID: 10, NotaryID: 9}
	m.activity.EXPECT().GetActivityByID(uint(10)).Return(a, nil)

	detail, err := svc.RemoveParty(testCtx(), 10, 7, 9, user.RoleNotary)

	assert.Nil(t, detail)
	assert.ErrorIs(t, err, ErrNotAParty)
}

// --------------------- Respond ---------------------
func TestRespond_ForbiddenForNotary(t *testing.T) {
	repos, _ := setupRepoMocks(t)
	svc := NewActivityService(repos)

	detail, err := svc.Respond(testCtx(), 10, 9, user.RoleNotary, activity.RespondDTO{Status: "approve"})

	assert.Nil(t, detail)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestRespond_NotAParty(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewActivityService(repos)

	m.activity.EXPECT().GetClientPivot(uint(10), uint(7)).Return(activity.Client{}, gorm.ErrRecordNotFound)

	detail, err := svc.Respond(testCtx(), 10, 7, user.RoleClient, activity.RespondDTO{Status: "approve"})

	assert.Nil(t, detail)
	assert.ErrorIs(t, err, ErrNotAParty)
}

// --------------------- ListActivitiesFor ---------------------
func TestListActivitiesFor_ByRole(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewActivityService(repos)

	m.activity.EXPECT().ListActivities().Return([]activity.Activity{{ID: 1}, {ID: 2}}, nil)
	all, err := svc.ListActivitiesFor(1, user.RoleAdmin)
	assert.NoError(t, err)
	assert.Len(t, all, 2)

	m.activity.EXPECT().ListActivitiesByNotary(uint(9)).Return([]activity.Activity{{ID: 1}}, nil)
	own, err := svc.ListActivitiesFor(9, user.RoleNotary)
	assert.NoError(t, err)
	assert.Len(t, own, 1)

	m.activity.EXPECT().ListActivitiesByClient(uint(7)).Return(nil, nil)
	invited, err := svc.ListActivitiesFor(7, user.RoleClient)
	assert.NoError(t, err)
	assert.Empty(t, invited)
}
