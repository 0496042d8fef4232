package application

import (
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/danuartha/notaris-go/internal/domain/activity"
	"github.com/danuartha/notaris-go/internal/domain/requirement"
	"github.com/danuartha/notaris-go/internal/domain/user"
	"github.com/danuartha/notaris-go/internal/repository"
	"github.com/danuartha/notaris-go/pkg/storage"
	"github.com/danuartha/notaris-go/pkg/utils"
	"github.com/gin-gonic/gin"
)

var (
	ErrRequirementNotFound = errors.New("requirement not found")
	ErrValueNotFound       = errors.New("requirement value not found")
	ErrNotExtraRequirement = errors.New("only activity-scoped extra requirements can be deleted")
)

type RequirementService struct {
	Repos *repository.Repos
}

func NewRequirementService(repos *repository.Repos) *RequirementService {
	return &RequirementService{
		Repos: repos,
	}
}

// ListForActivity returns the deed-type defaults plus the activity's extras.
func (s *RequirementService) ListForActivity(activityID, userID uint, role user.Role) ([]requirement.Requirement, error) {
	a, err := s.Repos.Activity.GetActivityByID(activityID)
	if err != nil {
		return nil, ErrActivityNotFound
	}
	if !canViewActivity(a, userID, role) {
		return nil, ErrForbidden
	}
	return s.Repos.Requirement.ListForActivity(a.DeedID, a.ID)
}

// CreateExtra adds an activity-scoped requirement. If the docs step was
// still pending it is promoted to in-progress, never silently skipped.
func (s *RequirementService) CreateExtra(c *gin.Context, userID uint, role user.Role, input requirement.CreateExtraDTO) (*requirement.Requirement, error) {
	a, err := s.Repos.Activity.GetActivityByID(input.ActivityID)
	if err != nil {
		return nil, ErrActivityNotFound
	}
	if !canManage(a, userID, role) {
		return nil, ErrForbidden
	}

	req := &requirement.Requirement{
		DeedID:     a.DeedID,
		ActivityID: &a.ID,
		Name:       input.Name,
		IsFile:     input.InputType == "file",
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Requirement.CreateRequirement(req); err != nil {
			return err
		}
		return RecomputeTrack(tx, a.ID)
	})
	if err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "create", "requirement",
		fmt.Sprintf("id=%d activity_id=%d", req.ID, a.ID), nil, req, "", s.Repos.Audit)

	return req, nil
}

// DeleteRequirement removes an extra requirement and its submitted values.
// Deed-type defaults cannot be deleted through an activity.
func (s *RequirementService) DeleteRequirement(c *gin.Context, requirementID, userID uint, role user.Role) error {
	req, err := s.Repos.Requirement.GetRequirementByID(requirementID)
	if err != nil {
		return ErrRequirementNotFound
	}
	if req.ActivityID == nil {
		return ErrNotExtraRequirement
	}
	a, err := s.Repos.Activity.GetActivityByID(*req.ActivityID)
	if err != nil {
		return ErrActivityNotFound
	}
	if !canManage(a, userID, role) {
		return ErrForbidden
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Requirement.DeleteValuesByRequirement(requirementID); err != nil {
			return err
		}
		if err := tx.Requirement.DeleteRequirement(requirementID); err != nil {
			return err
		}
		return RecomputeTrack(tx, a.ID)
	})
	if err != nil {
		return err
	}

	utils.LogAuditWithConsole(c, "delete", "requirement",
		fmt.Sprintf("id=%d activity_id=%d", requirementID, a.ID), req, nil, "", s.Repos.Audit)
	return nil
}

// SubmitValue records the calling party's text answer to a requirement.
func (s *RequirementService) SubmitValue(c *gin.Context, requirementID, userID uint, role user.Role, input requirement.SubmitValueDTO) (*requirement.Value, error) {
	req, a, err := s.resolveRequirement(requirementID, input.ActivityID)
	if err != nil {
		return nil, err
	}
	if !a.HasClient(userID) {
		return nil, ErrForbidden
	}
	if req.IsFile {
		return nil, errors.New("requirement expects a file upload")
	}

	v, err := s.upsertValue(req, a, userID, func(v *requirement.Value) {
		v.Value = input.Value
		v.FilePath = ""
	})
	if err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "submit", "requirement_value",
		fmt.Sprintf("id=%d activity_id=%d", v.ID, a.ID), nil, nil, "", s.Repos.Audit)
	return v, nil
}

// SubmitFileValue stores an uploaded document answer in object storage.
func (s *RequirementService) SubmitFileValue(c *gin.Context, requirementID, activityID, userID uint, role user.Role, header *multipart.FileHeader) (*requirement.Value, error) {
	req, a, err := s.resolveRequirement(requirementID, activityID)
	if err != nil {
		return nil, err
	}
	if !a.HasClient(userID) {
		return nil, ErrForbidden
	}
	if !req.IsFile {
		return nil, errors.New("requirement expects a text value")
	}

	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	key, err := storage.UploadObject(c.Request.Context(),
		fmt.Sprintf("requirements/%d", a.ID),
		header.Filename,
		header.Header.Get("Content-Type"),
		header.Size,
		file,
	)
	if err != nil {
		return nil, err
	}

	v, err := s.upsertValue(req, a, userID, func(v *requirement.Value) {
		v.FilePath = key
		v.Value = ""
	})
	if err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "submit", "requirement_value",
		fmt.Sprintf("id=%d activity_id=%d", v.ID, a.ID), nil, nil, key, s.Repos.Audit)
	return v, nil
}

// ReviewValue is the notary's approve/reject decision on a submitted answer.
func (s *RequirementService) ReviewValue(c *gin.Context, valueID, userID uint, role user.Role, input requirement.ReviewValueDTO) (*requirement.Value, error) {
	if !user.CanReviewRequirement(role) {
		return nil, ErrForbidden
	}
	v, err := s.Repos.Requirement.GetValueByID(valueID)
	if err != nil {
		return nil, ErrValueNotFound
	}
	a, err := s.Repos.Activity.GetActivityByID(v.ActivityID)
	if err != nil {
		return nil, ErrActivityNotFound
	}
	if !canManage(a, userID, role) {
		return nil, ErrForbidden
	}

	v.Status = input.Status
	v.Note = input.Note

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Requirement.SaveValue(&v); err != nil {
			return err
		}
		return RecomputeTrack(tx, a.ID)
	})
	if err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "review", "requirement_value",
		fmt.Sprintf("id=%d activity_id=%d", v.ID, a.ID), nil, nil, input.Status, s.Repos.Audit)
	return &v, nil
}

func (s *RequirementService) resolveRequirement(requirementID, activityID uint) (requirement.Requirement, activity.Activity, error) {
	req, err := s.Repos.Requirement.GetRequirementByID(requirementID)
	if err != nil {
		return requirement.Requirement{}, activity.Activity{}, ErrRequirementNotFound
	}
	a, err := s.Repos.Activity.GetActivityByID(activityID)
	if err != nil {
		return requirement.Requirement{}, activity.Activity{}, ErrActivityNotFound
	}
	if req.DeedID != a.DeedID {
		return requirement.Requirement{}, activity.Activity{}, ErrRequirementNotFound
	}
	return req, a, nil
}

func (s *RequirementService) upsertValue(req requirement.Requirement, a activity.Activity, userID uint, set func(*requirement.Value)) (*requirement.Value, error) {
	values, err := s.Repos.Requirement.ListValuesByActivity(a.ID)
	if err != nil {
		return nil, err
	}
	v := requirement.Value{
		RequirementID: req.ID,
		ActivityID:    a.ID,
		UserID:        userID,
		Status:        string(requirement.ApprovalPending),
	}
	for _, existing := range values {
		if existing.RequirementID == req.ID && existing.UserID == userID {
			v = existing
			v.Status = string(requirement.ApprovalPending)
			break
		}
	}
	set(&v)

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Requirement.SaveValue(&v); err != nil {
			return err
		}
		return RecomputeTrack(tx, a.ID)
	})
	if err != nil {
		return nil, err
	}
	return &v, nil
}
