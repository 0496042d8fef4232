package application

import (
	"errors"
	"fmt"

	"github.com/danuartha/notaris-go/internal/domain/activity"
	"github.com/danuartha/notaris-go/internal/domain/requirement"
	"github.com/danuartha/notaris-go/internal/domain/track"
	"github.com/danuartha/notaris-go/internal/domain/user"
	"github.com/danuartha/notaris-go/internal/repository"
	"github.com/danuartha/notaris-go/pkg/utils"
	"github.com/gin-gonic/gin"
)

var (
	ErrInvalidStep   = errors.New("unknown workflow step")
	ErrStepNotManual = errors.New("step status is derived and cannot be marked directly")
	ErrStepLocked    = errors.New("step is not in progress")
	ErrForbidden     = errors.New("permission denied")
)

// FlowService owns the seven-step track: deriving per-step statuses from
// activity data and handling explicit mark-done actions. Every mutating
// service calls RecomputeTrack inside its transaction so the persisted track
// is always consistent with the data it is derived from.
type FlowService struct {
	Repos *repository.Repos
}

func NewFlowService(repos *repository.Repos) *FlowService {
	return &FlowService{
		Repos: repos,
	}
}

// StepStatuses normalizes persisted track rows into a full seven-step map.
// Steps with no row are pending.
func StepStatuses(rows []track.Track) map[track.Step]track.Status {
	statuses := make(map[track.Step]track.Status, track.StepCount)
	for _, s := range track.Steps {
		statuses[s] = track.StatusPending
	}
	for _, row := range rows {
		step := track.Step(row.Step)
		if !track.IsValidStep(step) {
			continue
		}
		statuses[step] = track.Normalize(row.Status)
	}
	return statuses
}

// StepStates renders the status map as an ordered list with presentation
// metadata and badge labels.
func StepStates(statuses map[track.Step]track.Status) []activity.StepState {
	states := make([]activity.StepState, 0, track.StepCount)
	for _, s := range track.Steps {
		meta := track.MetaFor(s)
		st := statuses[s]
		states = append(states, activity.StepState{
			Step:        s,
			Title:       meta.Title,
			Description: meta.Description,
			Status:      st,
			Label:       track.StatusLabel(st),
		})
	}
	return states
}

// BuildDetail assembles the full activity payload clients reconcile against.
func BuildDetail(a activity.Activity) activity.Detail {
	statuses := StepStatuses(a.Tracks)
	return activity.Detail{
		Activity: a,
		Steps:    StepStates(statuses),
		Progress: track.Progress(statuses),
	}
}

// RecomputeTrack re-derives and persists the track for one activity.
//
// Derived steps (invite, respond, draft) are overwritten from activity data.
// Manual steps (docs, schedule, sign, print) keep an explicit "done" while
// their predecessor holds, and fall back to pending when the chain breaks.
// Only this function ever writes "pending".
func RecomputeTrack(repos *repository.Repos, activityID uint) error {
	a, err := repos.Activity.GetActivityByID(activityID)
	if err != nil {
		return err
	}

	existing := StepStatuses(a.Tracks)
	statuses := make(map[track.Step]track.Status, track.StepCount)

	required := 0
	if a.Deed != nil {
		required = a.Deed.TotalClient
	}

	// invite
	if required > 0 && len(a.Clients) >= required {
		statuses[track.StepInvite] = track.StatusDone
	} else {
		statuses[track.StepInvite] = track.StatusTodo
	}

	// respond
	if statuses[track.StepInvite] != track.StatusDone {
		statuses[track.StepRespond] = track.StatusPending
	} else {
		statuses[track.StepRespond] = respondStatus(a.Clients)
	}

	// docs: manual completion, but the step opens as soon as responding is
	// done or document collection has visibly started (an extra requirement
	// or a submitted value exists), so a created extra is never silently
	// parked behind a pending step.
	docsOpen := statuses[track.StepRespond] == track.StatusDone
	if !docsOpen {
		docsOpen, err = collectionStarted(repos, a)
		if err != nil {
			return err
		}
	}
	statuses[track.StepDocs] = manualStatus(docsOpen, existing[track.StepDocs])

	// draft
	if statuses[track.StepDocs] != track.StatusDone {
		statuses[track.StepDraft] = track.StatusPending
	} else {
		statuses[track.StepDraft] = draftStatus(a)
	}

	// schedule, sign, print: strictly sequential manual steps.
	statuses[track.StepSchedule] = manualStatus(
		statuses[track.StepDraft] == track.StatusDone, existing[track.StepSchedule])
	statuses[track.StepSign] = manualStatus(
		statuses[track.StepSchedule] == track.StatusDone, existing[track.StepSign])
	statuses[track.StepPrint] = manualStatus(
		statuses[track.StepSign] == track.StatusDone, existing[track.StepPrint])

	for _, s := range track.Steps {
		if err := repos.Track.UpsertStep(a.ID, s, statuses[s]); err != nil {
			return err
		}
	}
	return nil
}

func respondStatus(clients []activity.Client) track.Status {
	if len(clients) == 0 {
		return track.StatusTodo
	}
	approved := 0
	for _, c := range clients {
		switch requirement.ApprovalStatus(c.StatusApproval) {
		case requirement.ApprovalRejected:
			return track.StatusReject
		case requirement.ApprovalApproved:
			approved++
		}
	}
	if approved == len(clients) {
		return track.StatusDone
	}
	return track.StatusTodo
}

func draftStatus(a activity.Activity) track.Status {
	d := a.Draft
	if d == nil {
		return track.StatusTodo
	}
	decided := make(map[uint]string, len(d.Approvals))
	for _, ap := range d.Approvals {
		decided[ap.UserID] = ap.Status
	}
	approved := 0
	for _, c := range a.Clients {
		switch requirement.ApprovalStatus(decided[c.UserID]) {
		case requirement.ApprovalRejected:
			return track.StatusReject
		case requirement.ApprovalApproved:
			approved++
		}
	}
	if len(a.Clients) > 0 && approved == len(a.Clients) {
		return track.StatusDone
	}
	return track.StatusTodo
}

func manualStatus(open bool, prior track.Status) track.Status {
	if !open {
		return track.StatusPending
	}
	if prior == track.StatusDone {
		return track.StatusDone
	}
	return track.StatusTodo
}

func collectionStarted(repos *repository.Repos, a activity.Activity) (bool, error) {
	extras, err := repos.Requirement.ListForActivity(a.DeedID, a.ID)
	if err != nil {
		return false, err
	}
	for _, req := range extras {
		if req.ActivityID != nil {
			return true, nil
		}
	}
	values, err := repos.Requirement.ListValuesByActivity(a.ID)
	if err != nil {
		return false, err
	}
	return len(values) > 0, nil
}

// GetDetail returns the activity with derived step states, restricted to the
// owning notary, an invited party, or an admin.
func (s *FlowService) GetDetail(activityID, userID uint, role user.Role) (*activity.Detail, error) {
	a, err := s.Repos.Activity.GetActivityByID(activityID)
	if err != nil {
		return nil, ErrActivityNotFound
	}
	if !canViewActivity(a, userID, role) {
		return nil, ErrForbidden
	}
	detail := BuildDetail(a)
	if user.CanApproveDraft(role) && a.HasClient(userID) && a.Draft != nil && a.Draft.ID != 0 {
		detail.MyDraftStatus = a.Draft.StatusForUser(userID)
	}
	return &detail, nil
}

// MarkStepDone completes a manual step (docs, schedule, sign, print) on
// behalf of the owning notary or an admin. The step must currently be in
// progress; derived steps cannot be marked.
func (s *FlowService) MarkStepDone(c *gin.Context, activityID uint, step track.Step, userID uint, role user.Role) (*activity.Detail, error) {
	if !track.IsValidStep(step) {
		return nil, ErrInvalidStep
	}
	if !track.ManualSteps[step] {
		return nil, ErrStepNotManual
	}
	a, err := s.Repos.Activity.GetActivityByID(activityID)
	if err != nil {
		return nil, ErrActivityNotFound
	}
	if !user.CanMarkStepDone(role) || (role != user.RoleAdmin && a.NotaryID != userID) {
		return nil, ErrForbidden
	}
	statuses := StepStatuses(a.Tracks)
	if statuses[step] != track.StatusTodo {
		return nil, ErrStepLocked
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Track.UpsertStep(activityID, step, track.StatusDone); err != nil {
			return err
		}
		return RecomputeTrack(tx, activityID)
	})
	if err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "mark_done", "activity_step",
		fmt.Sprintf("activity_id=%d step=%s", activityID, step), nil, nil, "", s.Repos.Audit)

	return s.GetDetail(activityID, userID, role)
}

func canViewActivity(a activity.Activity, userID uint, role user.Role) bool {
	if role == user.RoleAdmin {
		return true
	}
	if a.NotaryID == userID {
		return true
	}
	return a.HasClient(userID)
}
