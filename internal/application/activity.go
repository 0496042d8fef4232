package application

import (
	"errors"
	"fmt"

	"github.com/danuartha/notaris-go/internal/domain/activity"
	"github.com/danuartha/notaris-go/internal/domain/requirement"
	"github.com/danuartha/notaris-go/internal/domain/user"
	"github.com/danuartha/notaris-go/internal/repository"
	"github.com/danuartha/notaris-go/pkg/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrDeedNotFound     = errors.New("deed not found")
	ErrClientNotFound   = errors.New("client not found")
	ErrAlreadyInvited   = errors.New("user is already a party of this activity")
	ErrNotAParty        = errors.New("user is not a party of this activity")
)

// PartyCountError is the client-side validation failure for an activity whose
// party list does not match the deed type's required count. The message text
// is part of the contract with existing clients.
type PartyCountError struct {
	Required int
}

func (e *PartyCountError) Error() string {
	return fmt.Sprintf("Akta ini memerlukan %d penghadap.", e.Required)
}

type ActivityService struct {
	Repos *repository.Repos
}

func NewActivityService(repos *repository.Repos) *ActivityService {
	return &ActivityService{
		Repos: repos,
	}
}

func (s *ActivityService) GetActivity(id uint) (*activity.Activity, error) {
	a, err := s.Repos.Activity.GetActivityByID(id)
	if err != nil {
		return nil, ErrActivityNotFound
	}
	return &a, nil
}

// ListActivitiesFor returns the activities visible to the caller: admins see
// everything, notaries their own, clients the ones they are invited to.
func (s *ActivityService) ListActivitiesFor(userID uint, role user.Role) ([]activity.Activity, error) {
	switch role {
	case user.RoleAdmin:
		return s.Repos.Activity.ListActivities()
	case user.RoleNotary:
		return s.Repos.Activity.ListActivitiesByNotary(userID)
	default:
		return s.Repos.Activity.ListActivitiesByClient(userID)
	}
}

func (s *ActivityService) CreateActivity(c *gin.Context, notaryID uint, role user.Role, input activity.CreateActivityDTO) (*activity.Detail, error) {
	if !user.CanManageActivity(role) {
		return nil, ErrForbidden
	}
	d, err := s.Repos.Deed.GetDeedByID(input.DeedID)
	if err != nil {
		return nil, ErrDeedNotFound
	}
	if len(input.ClientIDs) != d.TotalClient {
		return nil, &PartyCountError{Required: d.TotalClient}
	}

	a := &activity.Activity{
		TrackingCode: utils.GenerateTrackingCode(),
		Name:         input.Name,
		DeedID:       d.ID,
		NotaryID:     notaryID,
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Activity.CreateActivity(a); err != nil {
			return err
		}
		for i, uid := range input.ClientIDs {
			pivot := &activity.Client{
				ActivityID:     a.ID,
				UserID:         uid,
				Ord:            i + 1,
				StatusApproval: string(requirement.ApprovalPending),
			}
			if err := tx.Activity.AddClient(pivot); err != nil {
				return err
			}
		}
		return RecomputeTrack(tx, a.ID)
	})
	if err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "create", "activity",
		fmt.Sprintf("id=%d", a.ID), nil, a, "", s.Repos.Audit)

	return s.detail(a.ID)
}

func (s *ActivityService) UpdateActivity(c *gin.Context, id, userID uint, role user.Role, input activity.UpdateActivityDTO) (*activity.Detail, error) {
	a, err := s.Repos.Activity.GetActivityByID(id)
	if err != nil {
		return nil, ErrActivityNotFound
	}
	if !canManage(a, userID, role) {
		return nil, ErrForbidden
	}
	oldActivity := a

	d := a.Deed
	if input.DeedID != nil && *input.DeedID != a.DeedID {
		newDeed, err := s.Repos.Deed.GetDeedByID(*input.DeedID)
		if err != nil {
			return nil, ErrDeedNotFound
		}
		d = &newDeed
		a.DeedID = newDeed.ID
	}

	clientIDs := pivotUserIDs(a.Clients)
	if input.ClientIDs != nil {
		clientIDs = *input.ClientIDs
	} else if d != nil && len(clientIDs) != d.TotalClient {
		// Deed changed without a new party list: resize the existing slots,
		// keeping the surviving prefix in place. Unfilled slots fail the
		// party-count invariant below.
		slots := make([]*uint, len(clientIDs))
		for i := range clientIDs {
			slots[i] = &clientIDs[i]
		}
		slots = activity.ResizeClientSlots(slots, d.TotalClient)
		resized := make([]uint, 0, len(slots))
		for _, slot := range slots {
			if slot != nil {
				resized = append(resized, *slot)
			}
		}
		clientIDs = resized
	}
	if d != nil && len(clientIDs) != d.TotalClient {
		return nil, &PartyCountError{Required: d.TotalClient}
	}

	if input.Name != nil {
		a.Name = *input.Name
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Activity.UpdateActivity(&a); err != nil {
			return err
		}
		if err := syncParties(tx, &a, clientIDs); err != nil {
			return err
		}
		return RecomputeTrack(tx, a.ID)
	})
	if err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "update", "activity",
		fmt.Sprintf("id=%d", a.ID), oldActivity, a, "", s.Repos.Audit)

	return s.detail(a.ID)
}

func (s *ActivityService) DeleteActivity(c *gin.Context, id, userID uint, role user.Role) error {
	a, err := s.Repos.Activity.GetActivityByID(id)
	if err != nil {
		return ErrActivityNotFound
	}
	if !canManage(a, userID, role) {
		return ErrForbidden
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Track.DeleteByActivity(id); err != nil {
			return err
		}
		return tx.Activity.DeleteActivity(id)
	})
	if err != nil {
		return err
	}

	utils.LogAuditWithConsole(c, "delete", "activity",
		fmt.Sprintf("id=%d", a.ID), a, nil, "", s.Repos.Audit)
	return nil
}

// AddParty invites one more client, appending at the next stable position.
func (s *ActivityService) AddParty(c *gin.Context, activityID, userID uint, role user.Role, input activity.AddClientDTO) (*activity.Detail, error) {
	a, err := s.Repos.Activity.GetActivityByID(activityID)
	if err != nil {
		return nil, ErrActivityNotFound
	}
	if !canManage(a, userID, role) {
		return nil, ErrForbidden
	}
	if a.HasClient(input.UserID) {
		return nil, ErrAlreadyInvited
	}
	invited, err := s.Repos.User.GetUserByID(input.UserID)
	if err != nil {
		return nil, ErrClientNotFound
	}
	if invited.Role() != user.RoleClient {
		return nil, ErrClientNotFound
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		ord, err := tx.Activity.NextClientOrd(activityID)
		if err != nil {
			return err
		}
		pivot := &activity.Client{
			ActivityID:     activityID,
			UserID:         input.UserID,
			Ord:            ord,
			StatusApproval: string(requirement.ApprovalPending),
		}
		if err := tx.Activity.AddClient(pivot); err != nil {
			return err
		}
		return RecomputeTrack(tx, activityID)
	})
	if err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "add_party", "activity",
		fmt.Sprintf("id=%d user_id=%d", activityID, input.UserID), nil, nil, "", s.Repos.Audit)

	return s.detail(activityID)
}

// RemoveParty removes an invited client. Remaining parties keep their
// positions; ord values are never renumbered.
func (s *ActivityService) RemoveParty(c *gin.Context, activityID, targetUserID, userID uint, role user.Role) (*activity.Detail, error) {
	a, err := s.Repos.Activity.GetActivityByID(activityID)
	if err != nil {
		return nil, ErrActivityNotFound
	}
	if !canManage(a, userID, role) {
		return nil, ErrForbidden
	}
	if !a.HasClient(targetUserID) {
		return nil, ErrNotAParty
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Activity.RemoveClient(activityID, targetUserID); err != nil {
			return err
		}
		return RecomputeTrack(tx, activityID)
	})
	if err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "remove_party", "activity",
		fmt.Sprintf("id=%d user_id=%d", activityID, targetUserID), nil, nil, "", s.Repos.Audit)

	return s.detail(activityID)
}

// Respond records the calling party's answer to the invitation.
func (s *ActivityService) Respond(c *gin.Context, activityID, userID uint, role user.Role, input activity.RespondDTO) (*activity.Detail, error) {
	if !user.CanRespondInvite(role) {
		return nil, ErrForbidden
	}
	pivot, err := s.Repos.Activity.GetClientPivot(activityID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotAParty
		}
		return nil, err
	}

	status := requirement.ApprovalApproved
	if input.Status == "reject" {
		status = requirement.ApprovalRejected
	}
	pivot.StatusApproval = string(status)

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Activity.UpdateClientPivot(&pivot); err != nil {
			return err
		}
		return RecomputeTrack(tx, activityID)
	})
	if err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "respond", "activity",
		fmt.Sprintf("id=%d", activityID), nil, nil, input.Status, s.Repos.Audit)

	return s.detail(activityID)
}

func (s *ActivityService) detail(id uint) (*activity.Detail, error) {
	return activityDetail(s.Repos, id)
}

func canManage(a activity.Activity, userID uint, role user.Role) bool {
	if role == user.RoleAdmin {
		return true
	}
	return role == user.RoleNotary && a.NotaryID == userID
}

func pivotUserIDs(clients []activity.Client) []uint {
	ids := make([]uint, 0, len(clients))
	for _, c := range clients {
		ids = append(ids, c.UserID)
	}
	return ids
}

// syncParties reconciles the pivot rows against the wanted id list: missing
// parties are appended at the next ord, removed ones deleted, survivors left
// untouched so their order and approval status persist.
func syncParties(tx *repository.Repos, a *activity.Activity, wanted []uint) error {
	current := make(map[uint]bool, len(a.Clients))
	for _, c := range a.Clients {
		current[c.UserID] = true
	}
	want := make(map[uint]bool, len(wanted))
	for _, id := range wanted {
		want[id] = true
	}

	for _, c := range a.Clients {
		if !want[c.UserID] {
			if err := tx.Activity.RemoveClient(a.ID, c.UserID); err != nil {
				return err
			}
		}
	}
	for _, id := range wanted {
		if current[id] {
			continue
		}
		ord, err := tx.Activity.NextClientOrd(a.ID)
		if err != nil {
			return err
		}
		pivot := &activity.Client{
			ActivityID:     a.ID,
			UserID:         id,
			Ord:            ord,
			StatusApproval: string(requirement.ApprovalPending),
		}
		if err := tx.Activity.AddClient(pivot); err != nil {
			return err
		}
	}
	return nil
}
