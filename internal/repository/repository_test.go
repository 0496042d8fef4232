package repository

import (
	"testing"

	"github.com/danuartha/notaris-go/internal/domain/activity"
	"github.com/danuartha/notaris-go/internal/domain/audit"
	"github.com/danuartha/notaris-go/internal/domain/deed"
	"github.com/danuartha/notaris-go/internal/domain/draft"
	"github.com/danuartha/notaris-go/internal/domain/requirement"
	"github.com/danuartha/notaris-go/internal/domain/schedule"
	"github.com/danuartha/notaris-go/internal/domain/track"
	"github.com/danuartha/notaris-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *Repos {
	dbConn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = dbConn.AutoMigrate(
		&user.User{},
		&deed.Deed{},
		&requirement.Requirement{},
		&requirement.Value{},
		&activity.Activity{},
		&activity.Client{},
		&schedule.Schedule{},
		&draft.Draft{},
		&draft.Approval{},
		&track.Track{},
		&audit.AuditLog{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewRepositories(dbConn)
}

func seedActivity(t *testing.T, repos *Repos) activity.Activity {
	d := deed.Deed{Name: "Akta Jual Beli", TotalClient: 2}
	if err := repos.Deed.CreateDeed(&d); err != nil {
		t.Fatalf("seed deed: %v", err)
	}
	a := activity.Activity{
		TrackingCode: "AKT-TEST0001",
		Name:         "Jual Beli Tanah",
		DeedID:       d.ID,
		NotaryID:     9,
	}
	if err := repos.Activity.CreateActivity(&a); err != nil {
		t.Fatalf("seed activity: %v", err)
	}
	return a
}

// --------------------- TrackRepo ---------------------
func TestUpsertStep_CreateThenUpdate(t *testing.T) {
	repos := setupTestDB(t)
	a := seedActivity(t, repos)

	err := repos.Track.UpsertStep(a.ID, track.StepInvite, track.StatusTodo)
	assert.NoError(t, err)

	row, err := repos.Track.GetStep(a.ID, track.StepInvite)
	assert.NoError(t, err)
	assert.Equal(t, "todo", row.Status)

	err = repos.Track.UpsertStep(a.ID, track.StepInvite, track.StatusDone)
	assert.NoError(t, err)

	rows, err := repos.Track.ListByActivity(a.ID)
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "done", rows[0].Status)
}

func TestUpsertStep_SameStatusIsNoOp(t *testing.T) {
	repos := setupTestDB(t)
	a := seedActivity(t, repos)

	assert.NoError(t, repos.Track.UpsertStep(a.ID, track.StepDocs, track.StatusPending))
	before, _ := repos.Track.GetStep(a.ID, track.StepDocs)

	assert.NoError(t, repos.Track.UpsertStep(a.ID, track.StepDocs, track.StatusPending))
	after, _ := repos.Track.GetStep(a.ID, track.StepDocs)

	assert.Equal(t, before.UpdatedAt, after.UpdatedAt)
}

func TestDeleteByActivity(t *testing.T) {
	repos := setupTestDB(t)
	a := seedActivity(t, repos)

	for _, s := range track.Steps {
		assert.NoError(t, repos.Track.UpsertStep(a.ID, s, track.StatusPending))
	}
	assert.NoError(t, repos.Track.DeleteByActivity(a.ID))

	rows, err := repos.Track.ListByActivity(a.ID)
	assert.NoError(t, err)
	assert.Empty(t, rows)
}

// --------------------- ActivityRepo ---------------------
func TestNextClientOrd_StableUnderRemoval(t *testing.T) {
	repos := setupTestDB(t)
	a := seedActivity(t, repos)

	ord, err := repos.Activity.NextClientOrd(a.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, ord)

	assert.NoError(t, repos.Activity.AddClient(&activity.Client{ActivityID: a.ID, UserID: 7, Ord: 1, StatusApproval: "pending"}))
	assert.NoError(t, repos.Activity.AddClient(&activity.Client{ActivityID: a.ID, UserID: 8, Ord: 2, StatusApproval: "pending"}))

	// Removing the first party must not free its position.
	assert.NoError(t, repos.Activity.RemoveClient(a.ID, 7))

	ord, err = repos.Activity.NextClientOrd(a.ID)
	assert.NoError(t, err)
	assert.Equal(t, 3, ord)
}

func TestGetClientPivot(t *testing.T) {
	repos := setupTestDB(t)
	a := seedActivity(t, repos)

	assert.NoError(t, repos.Activity.AddClient(&activity.Client{ActivityID: a.ID, UserID: 7, Ord: 1, StatusApproval: "pending"}))

	pivot, err := repos.Activity.GetClientPivot(a.ID, 7)
	assert.NoError(t, err)
	assert.Equal(t, 1, pivot.Ord)

	_, err = repos.Activity.GetClientPivot(a.ID, 99)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetActivityByTrackingCode(t *testing.T) {
	repos := setupTestDB(t)
	a := seedActivity(t, repos)

	found, err := repos.Activity.GetActivityByTrackingCode("AKT-TEST0001")
	assert.NoError(t, err)
	assert.Equal(t, a.ID, found.ID)
}

// --------------------- RequirementRepo ---------------------
func TestListForActivity_DefaultsPlusExtras(t *testing.T) {
	repos := setupTestDB(t)
	a := seedActivity(t, repos)

	def := requirement.Requirement{DeedID: a.DeedID, Name: "KTP", IsFile: true}
	assert.NoError(t, repos.Requirement.CreateRequirement(&def))
	extra := requirement.Requirement{DeedID: a.DeedID, ActivityID: &a.ID, Name: "Surat Kuasa", IsFile: true}
	assert.NoError(t, repos.Requirement.CreateRequirement(&extra))

	other := activity.Activity{TrackingCode: "AKT-TEST0002", Name: "Lain", DeedID: a.DeedID, NotaryID: 9}
	assert.NoError(t, repos.Activity.CreateActivity(&other))

	reqs, err := repos.Requirement.ListForActivity(a.DeedID, a.ID)
	assert.NoError(t, err)
	assert.Len(t, reqs, 2)

	// The other activity only sees the deed defaults.
	reqs, err = repos.Requirement.ListForActivity(a.DeedID, other.ID)
	assert.NoError(t, err)
	assert.Len(t, reqs, 1)
	assert.Equal(t, "KTP", reqs[0].Name)
}

// --------------------- ExecTx ---------------------
func TestExecTx_RollsBackOnError(t *testing.T) {
	repos := setupTestDB(t)
	a := seedActivity(t, repos)

	err := repos.ExecTx(func(tx *Repos) error {
		if err := tx.Track.UpsertStep(a.ID, track.StepInvite, track.StatusDone); err != nil {
			return err
		}
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)

	rows, err := repos.Track.ListByActivity(a.ID)
	assert.NoError(t, err)
	assert.Empty(t, rows)
}

func TestExecTx_CommitsOnSuccess(t *testing.T) {
	repos := setupTestDB(t)
	a := seedActivity(t, repos)

	err := repos.ExecTx(func(tx *Repos) error {
		return tx.Track.UpsertStep(a.ID, track.StepInvite, track.StatusDone)
	})
	assert.NoError(t, err)

	rows, err := repos.Track.ListByActivity(a.ID)
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
}
