package application

import (
	"context"
	"io"
	"testing"

	"github.com/danuartha/notaris-go/internal/domain/activity"
	"github.com/danuartha/notaris-go/internal/domain/deed"
	"github.com/danuartha/notaris-go/internal/domain/draft"
	"github.com/danuartha/notaris-go/internal/domain/user"
	"github.com/danuartha/notaris-go/pkg/storage"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// --------------------- SaveDraft ---------------------
func TestSaveDraft_CreatesLazily(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewDraftService(repos)

	a := activity.Activity{
		ID:       10,
		NotaryID: 9,
		DeedID:   1,
		Deed:     &deed.Deed{ID: 1, TotalClient: 1},
		Clients:  []activity.Client{{UserID: 7, StatusApproval: "approved"}},
	}
	m.activity.EXPECT().GetActivityByID(uint(10)).Return(a, nil).Times(3)
	m.draft.EXPECT().GetDraftByActivityID(uint(10)).Return(draft.Draft{}, gorm.ErrRecordNotFound)
	m.draft.EXPECT().CreateDraft(gomock.Any()).DoAndReturn(func(d *draft.Draft) error {
		assert.Equal(t, uint(10), d.ActivityID)
		assert.Equal(t, "Akta {{penghadap1_name}}", d.CustomValueTemplate)
		d.ID = 3
		return nil
	})
	m.track.EXPECT().UpsertStep(uint(10), gomock.Any(), gomock.Any()).Return(nil).Times(7)

	input := draft.SaveDraftDTO{CustomValueTemplate: "Akta {{penghadap1_name}}"}
	detail, err := svc.SaveDraft(testCtx(), 10, 9, user.RoleNotary, input)

	assert.NoError(t, err)
	assert.Equal(t, uint(10), detail.Activity.ID)
}

func TestSaveDraft_UpdatesExisting(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewDraftService(repos)

	a := activity.Activity{
		ID:       10,
		NotaryID: 9,
		DeedID:   1,
		Deed:     &deed.Deed{ID: 1, TotalClient: 1},
		Clients:  []activity.Client{{UserID: 7, StatusApproval: "approved"}},
	}
	m.activity.EXPECT().GetActivityByID(uint(10)).Return(a, nil).Times(3)
	m.draft.EXPECT().GetDraftByActivityID(uint(10)).Return(draft.Draft{ID: 3, ActivityID: 10}, nil)
	m.draft.EXPECT().UpdateDraft(gomock.Any()).DoAndReturn(func(d *draft.Draft) error {
		assert.Equal(t, uint(3), d.ID)
		return nil
	})
	m.track.EXPECT().UpsertStep(uint(10), gomock.Any(), gomock.Any()).Return(nil).Times(7)

	input := draft.SaveDraftDTO{CustomValueTemplate: "Diperbarui"}
	_, err := svc.SaveDraft(testCtx(), 10, 9, user.RoleNotary, input)

	assert.NoError(t, err)
}

func TestSaveDraft_ForbiddenForClient(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewDraftService(repos)

	a := activity.Activity{ID: 10, NotaryID: 9, Clients: []activity.Client{{UserID: 7}}}
	m.activity.EXPECT().GetActivityByID(uint(10)).Return(a, nil)

	detail, err := svc.SaveDraft(testCtx(), 10, 7, user.RoleClient, draft.SaveDraftDTO{})

	assert.Nil(t, detail)
	assert.ErrorIs(t, err, ErrForbidden)
}

// --------------------- Decide ---------------------
func TestDecide_NoDraft(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewDraftService(repos)

	a := activity.Activity{ID: 10, NotaryID: 9, Clients: []activity.Client{{UserID: 7}}}
	m.activity.EXPECT().GetActivityByID(uint(10)).Return(a, nil)

	detail, err := svc.Decide(testCtx(), 10, 7, user.RoleClient, true, "")

	assert.Nil(t, detail)
	assert.ErrorIs(t, err, ErrDraftMissing)
	assert.EqualError(t, err, "Draft belum tersedia")
}

func TestDecide_ForbiddenForNotary(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewDraftService(repos)

	a := activity.Activity{
		ID:       10,
		NotaryID: 9,
		Draft:    &draft.Draft{ID: 3, ActivityID: 10},
	}
	m.activity.EXPECT().GetActivityByID(uint(10)).Return(a, nil)

	detail, err := svc.Decide(testCtx(), 10, 9, user.RoleNotary, true, "")

	assert.Nil(t, detail)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDecide_RejectWithNote(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewDraftService(repos)

	a := activity.Activity{
		ID:       10,
		NotaryID: 9,
		DeedID:   1,
		Deed:     &deed.Deed{ID: 1, TotalClient: 1},
		Clients:  []activity.Client{{UserID: 7, StatusApproval: "approved"}},
		Draft:    &draft.Draft{ID: 3, ActivityID: 10},
	}
	m.activity.EXPECT().GetActivityByID(uint(10)).Return(a, nil).Times(3)
	m.draft.EXPECT().UpsertApproval(gomock.Any()).DoAndReturn(func(ap *draft.Approval) error {
		assert.Equal(t, uint(3), ap.DraftID)
		assert.Equal(t, uint(7), ap.UserID)
		assert.Equal(t, "rejected", ap.Status)
		assert.Equal(t, "Nama salah", ap.Note)
		return nil
	})
	m.track.EXPECT().UpsertStep(uint(10), gomock.Any(), gomock.Any()).Return(nil).Times(7)

	detail, err := svc.Decide(testCtx(), 10, 7, user.RoleClient, false, "Nama salah")

	assert.NoError(t, err)
	assert.Equal(t, uint(10), detail.Activity.ID)
}

// --------------------- Render ---------------------
func TestRender_SubstitutesPartyTokens(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewDraftService(repos)

	var uploaded string
	origUpload := storage.UploadObject
	storage.UploadObject = func(ctx context.Context, prefix, filename, contentType string, size int64, reader io.Reader) (string, error) {
		body, err := io.ReadAll(reader)
		if err != nil {
			return "", err
		}
		uploaded = string(body)
		return "drafts/10/render.html", nil
	}
	defer func() { storage.UploadObject = origUpload }()

	a := activity.Activity{
		ID:       10,
		NotaryID: 9,
		Clients: []activity.Client{
			{UserID: 8, Ord: 2, User: &user.User{ID: 8, Name: "Siti", Email: "siti@mail.test"}},
			{UserID: 7, Ord: 1, User: &user.User{ID: 7, Name: "Budi", Email: "budi@mail.test"}},
		},
		Draft: &draft.Draft{ID: 3, ActivityID: 10},
	}
	m.activity.EXPECT().GetActivityByID(uint(10)).Return(a, nil).Times(2)
	m.draft.EXPECT().UpdateDraft(gomock.Any()).DoAndReturn(func(d *draft.Draft) error {
		assert.Equal(t, uint(3), d.ID)
		assert.Equal(t, "drafts/10/render.html", d.File)
		return nil
	})

	input := draft.RenderDTO{HTML: "Akta {{penghadap1_name}} dan {penghadap2_email}, saksi {{saksi_name}}"}
	detail, err := svc.Render(testCtx(), 10, 9, user.RoleNotary, input)

	assert.NoError(t, err)
	assert.Equal(t, uint(10), detail.Activity.ID)
	// ord 1 is Budi even though Siti's pivot comes first; unknown tokens stay.
	assert.Equal(t, "Akta Budi dan siti@mail.test, saksi {{saksi_name}}", uploaded)
}
