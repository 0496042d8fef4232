package application

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danuartha/notaris-go/internal/repository"
	"github.com/danuartha/notaris-go/internal/repository/mock_repository"
	"github.com/danuartha/notaris-go/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
type repoMocks struct {
	user        *mock_repository.MockUserRepo
	deed        *mock_repository.MockDeedRepo
	activity    *mock_repository.MockActivityRepo
	track       *mock_repository.MockTrackRepo
	schedule    *mock_repository.MockScheduleRepo
	draft       *mock_repository.MockDraftRepo
	requirement *mock_repository.MockRequirementRepo
	audit       *mock_repository.MockAuditRepo
}

// setupRepoMocks builds a repos container backed by an in-memory sqlite DB so
// transactions are safe, then injects mocks for every repo. WithTx on each
// mock returns the mock itself so expectations survive transaction scoping.
func setupRepoMocks(t *testing.T) (*repository.Repos, *repoMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := &repoMocks{
		user:        mock_repository.NewMockUserRepo(ctrl),
		deed:        mock_repository.NewMockDeedRepo(ctrl),
		activity:    mock_repository.NewMockActivityRepo(ctrl),
		track:       mock_repository.NewMockTrackRepo(ctrl),
		schedule:    mock_repository.NewMockScheduleRepo(ctrl),
		draft:       mock_repository.NewMockDraftRepo(ctrl),
		requirement: mock_repository.NewMockRequirementRepo(ctrl),
		audit:       mock_repository.NewMockAuditRepo(ctrl),
	}

	dbConn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	repos := repository.NewRepositories(dbConn)
	repos.User = m.user
	repos.Deed = m.deed
	repos.Activity = m.activity
	repos.Track = m.track
	repos.Schedule = m.schedule
	repos.Draft = m.draft
	repos.Requirement = m.requirement
	repos.Audit = m.audit

	m.user.EXPECT().WithTx(gomock.Any()).Return(m.user).AnyTimes()
	m.deed.EXPECT().WithTx(gomock.Any()).Return(m.deed).AnyTimes()
	m.activity.EXPECT().WithTx(gomock.Any()).Return(m.activity).AnyTimes()
	m.track.EXPECT().WithTx(gomock.Any()).Return(m.track).AnyTimes()
	m.schedule.EXPECT().WithTx(gomock.Any()).Return(m.schedule).AnyTimes()
	m.draft.EXPECT().WithTx(gomock.Any()).Return(m.draft).AnyTimes()
	m.requirement.EXPECT().WithTx(gomock.Any()).Return(m.requirement).AnyTimes()
	m.audit.EXPECT().WithTx(gomock.Any()).Return(m.audit).AnyTimes()

	stubAuditLog(t)
	return repos, m
}

// stubAuditLog replaces the audit helper so tests do not race against its
// background write.
func stubAuditLog(t *testing.T) {
	old := utils.LogAuditWithConsole
	utils.LogAuditWithConsole = func(c *gin.Context, action, resourceType, resourceID string, oldData, newData interface{}, msg string, repo repository.AuditRepo) {
	}
	t.Cleanup(func() { utils.LogAuditWithConsole = old })
}

func testCtx() *gin.Context {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	return c
}

func ptrString(s string) *string { return &s }
func ptrUint(u uint) *uint       { return &u }
