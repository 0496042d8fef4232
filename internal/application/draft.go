package application

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/danuartha/notaris-go/internal/domain/activity"
	"github.com/danuartha/notaris-go/internal/domain/draft"
	"github.com/danuartha/notaris-go/internal/domain/requirement"
	"github.com/danuartha/notaris-go/internal/domain/user"
	"github.com/danuartha/notaris-go/internal/repository"
	"github.com/danuartha/notaris-go/pkg/deedtpl"
	"github.com/danuartha/notaris-go/pkg/storage"
	"github.com/danuartha/notaris-go/pkg/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ErrDraftMissing is returned when a decision or upload targets an activity
// that has no draft yet. The message is the user-facing contract.
var ErrDraftMissing = errors.New("Draft belum tersedia")

type DraftService struct {
	Repos *repository.Repos
}

func NewDraftService(repos *repository.Repos) *DraftService {
	return &DraftService{
		Repos: repos,
	}
}

// SaveDraft writes the deed template and PDF options, creating the draft
// lazily on first save.
func (s *DraftService) SaveDraft(c *gin.Context, activityID, userID uint, role user.Role, input draft.SaveDraftDTO) (*activity.Detail, error) {
	a, err := s.Repos.Activity.GetActivityByID(activityID)
	if err != nil {
		return nil, ErrActivityNotFound
	}
	if !canManage(a, userID, role) {
		return nil, ErrForbidden
	}

	d, err := s.Repos.Draft.GetDraftByActivityID(activityID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		d = draft.Draft{ActivityID: activityID}
	}
	d.CustomValueTemplate = input.CustomValueTemplate
	if input.PdfOptions != nil {
		d.PdfOptions = input.PdfOptions
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if d.ID == 0 {
			if err := tx.Draft.CreateDraft(&d); err != nil {
				return err
			}
		} else {
			if err := tx.Draft.UpdateDraft(&d); err != nil {
				return err
			}
		}
		return RecomputeTrack(tx, activityID)
	})
	if err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "save", "draft",
		fmt.Sprintf("id=%d activity_id=%d", d.ID, activityID), nil, nil, "", s.Repos.Audit)

	return activityDetail(s.Repos, activityID)
}

// Decide records the calling party's approve/reject decision on the draft.
// Deciding with no draft present fails before any write.
func (s *DraftService) Decide(c *gin.Context, activityID, userID uint, role user.Role, approve bool, note string) (*activity.Detail, error) {
	a, err := s.Repos.Activity.GetActivityByID(activityID)
	if err != nil {
		return nil, ErrActivityNotFound
	}
	if a.Draft == nil || a.Draft.ID == 0 {
		return nil, ErrDraftMissing
	}
	if !user.CanApproveDraft(role) || !a.HasClient(userID) {
		return nil, ErrForbidden
	}

	status := requirement.ApprovalApproved
	action := "approve"
	if !approve {
		status = requirement.ApprovalRejected
		action = "reject"
	}
	approval := &draft.Approval{
		DraftID: a.Draft.ID,
		UserID:  userID,
		Status:  string(status),
		Note:    note,
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Draft.UpsertApproval(approval); err != nil {
			return err
		}
		return RecomputeTrack(tx, activityID)
	})
	if err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, action, "draft",
		fmt.Sprintf("id=%d activity_id=%d", a.Draft.ID, activityID), nil, nil, note, s.Repos.Audit)

	return activityDetail(s.Repos, activityID)
}

// UploadFile stores an uploaded draft document in object storage and records
// its key on the draft.
func (s *DraftService) UploadFile(c *gin.Context, activityID, userID uint, role user.Role, header *multipart.FileHeader) (*activity.Detail, error) {
	a, err := s.Repos.Activity.GetActivityByID(activityID)
	if err != nil {
		return nil, ErrActivityNotFound
	}
	if !user.CanUploadDraft(role) {
		return nil, ErrForbidden
	}
	if !canManage(a, userID, role) && !a.HasClient(userID) {
		return nil, ErrForbidden
	}
	if a.Draft == nil || a.Draft.ID == 0 {
		return nil, ErrDraftMissing
	}

	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	key, err := storage.UploadObject(c.Request.Context(),
		fmt.Sprintf("drafts/%d", activityID),
		header.Filename,
		header.Header.Get("Content-Type"),
		header.Size,
		file,
	)
	if err != nil {
		return nil, err
	}

	d := *a.Draft
	d.File = key
	if err := s.Repos.Draft.UpdateDraft(&d); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "upload", "draft",
		fmt.Sprintf("id=%d activity_id=%d", d.ID, activityID), nil, nil, key, s.Repos.Audit)

	return activityDetail(s.Repos, activityID)
}

// templateParties projects the activity's client pivots into template
// parties, carrying the stable ord so token numbering matches the signature
// layout.
func templateParties(clients []activity.Client) []deedtpl.Party {
	parties := make([]deedtpl.Party, 0, len(clients))
	for _, c := range clients {
		ord := c.Ord
		p := deedtpl.Party{ID: c.UserID, Order: &ord}
		if c.User != nil {
			p.Name = c.User.Name
			p.Email = c.User.Email
		}
		parties = append(parties, p)
	}
	return parties
}

// Render substitutes the activity's party tokens into the submitted HTML,
// stores the rendered document and the PDF options used, and records the
// artifact key on the draft. PDF rasterization itself is delegated downstream.
func (s *DraftService) Render(c *gin.Context, activityID, userID uint, role user.Role, input draft.RenderDTO) (*activity.Detail, error) {
	a, err := s.Repos.Activity.GetActivityByID(activityID)
	if err != nil {
		return nil, ErrActivityNotFound
	}
	if !user.CanUploadDraft(role) {
		return nil, ErrForbidden
	}
	if !canManage(a, userID, role) && !a.HasClient(userID) {
		return nil, ErrForbidden
	}
	if a.Draft == nil || a.Draft.ID == 0 {
		return nil, ErrDraftMissing
	}

	tokens := deedtpl.BuildTokens(templateParties(a.Clients), nil)
	content := []byte(deedtpl.ReplaceTokens(input.HTML, tokens))
	key, err := storage.UploadObject(c.Request.Context(),
		fmt.Sprintf("drafts/%d", activityID),
		"render.html",
		"text/html; charset=utf-8",
		int64(len(content)),
		io.Reader(bytes.NewReader(content)),
	)
	if err != nil {
		return nil, err
	}

	d := *a.Draft
	d.File = key
	if input.PdfOptions != nil {
		d.PdfOptions = input.PdfOptions
	}
	if err := s.Repos.Draft.UpdateDraft(&d); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "render", "draft",
		fmt.Sprintf("id=%d activity_id=%d", d.ID, activityID), nil, nil, key, s.Repos.Audit)

	return activityDetail(s.Repos, activityID)
}
