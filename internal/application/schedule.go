package application

import (
	"errors"
	"fmt"
	"time"

	"github.com/danuartha/notaris-go/internal/domain/activity"
	"github.com/danuartha/notaris-go/internal/domain/schedule"
	"github.com/danuartha/notaris-go/internal/domain/user"
	"github.com/danuartha/notaris-go/internal/repository"
	"github.com/danuartha/notaris-go/pkg/utils"
	"github.com/gin-gonic/gin"
)

var ErrScheduleNotFound = errors.New("schedule not found")

// ScheduleValidationError carries per-field messages for the schedule form,
// the one place inline field errors are part of the contract.
type ScheduleValidationError struct {
	Fields map[string][]string
}

func (e *ScheduleValidationError) Error() string {
	return "invalid schedule input"
}

type ScheduleService struct {
	Repos *repository.Repos
}

func NewScheduleService(repos *repository.Repos) *ScheduleService {
	return &ScheduleService{
		Repos: repos,
	}
}

// SplitLocalDatetime splits a combined "2006-01-02T15:04" value into date
// and time strings by local extraction. No timezone conversion happens: the
// wall-clock values the user picked are what gets stored.
func SplitLocalDatetime(datetime string) (date, clock string, err error) {
	layouts := []string{"2006-01-02T15:04", "2006-01-02T15:04:05"}
	for _, layout := range layouts {
		t, perr := time.Parse(layout, datetime)
		if perr == nil {
			return t.Format("2006-01-02"), t.Format("15:04"), nil
		}
	}
	return "", "", fmt.Errorf("invalid datetime %q", datetime)
}

func validateScheduleInput(input *schedule.SaveScheduleDTO) error {
	fields := map[string][]string{}

	if input.Datetime != "" {
		date, clock, err := SplitLocalDatetime(input.Datetime)
		if err != nil {
			fields["datetime"] = append(fields["datetime"], "Format tanggal dan waktu tidak valid.")
		} else {
			input.Date = date
			input.Time = clock
		}
	}
	if input.Date == "" {
		fields["date"] = append(fields["date"], "Tanggal wajib diisi.")
	}
	if input.Time == "" {
		fields["time"] = append(fields["time"], "Waktu wajib diisi.")
	}
	if input.Location == "" {
		fields["location"] = append(fields["location"], "Tempat wajib diisi.")
	}

	if len(fields) > 0 {
		return &ScheduleValidationError{Fields: fields}
	}
	return nil
}

// SaveSchedule creates the activity's schedule or updates the existing one;
// an activity holds at most one.
func (s *ScheduleService) SaveSchedule(c *gin.Context, userID uint, role user.Role, input schedule.SaveScheduleDTO) (*activity.Detail, error) {
	a, err := s.Repos.Activity.GetActivityByID(input.ActivityID)
	if err != nil {
		return nil, ErrActivityNotFound
	}
	if !user.CanEditSchedule(role) || !canManage(a, userID, role) {
		return nil, ErrForbidden
	}
	if err := validateScheduleInput(&input); err != nil {
		return nil, err
	}

	var sched schedule.Schedule
	action := "create"
	if existing := a.ActiveSchedule(); existing != nil {
		sched = *existing
		action = "update"
	}
	sched.ActivityID = a.ID
	sched.Date = input.Date
	sched.Time = input.Time
	sched.Location = input.Location
	sched.Notes = input.Notes

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if sched.ID == 0 {
			if err := tx.Schedule.CreateSchedule(&sched); err != nil {
				return err
			}
		} else {
			if err := tx.Schedule.UpdateSchedule(&sched); err != nil {
				return err
			}
		}
		return RecomputeTrack(tx, a.ID)
	})
	if err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, action, "schedule",
		fmt.Sprintf("id=%d activity_id=%d", sched.ID, a.ID), nil, sched, "", s.Repos.Audit)

	return activityDetail(s.Repos, a.ID)
}

// DeleteSchedule removes an existing schedule; deleting a schedule that does
// not exist is an error, never a silent no-op.
func (s *ScheduleService) DeleteSchedule(c *gin.Context, scheduleID, userID uint, role user.Role) (*activity.Detail, error) {
	sched, err := s.Repos.Schedule.GetScheduleByID(scheduleID)
	if err != nil {
		return nil, ErrScheduleNotFound
	}
	a, err := s.Repos.Activity.GetActivityByID(sched.ActivityID)
	if err != nil {
		return nil, ErrActivityNotFound
	}
	if !user.CanEditSchedule(role) || !canManage(a, userID, role) {
		return nil, ErrForbidden
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Schedule.DeleteSchedule(scheduleID); err != nil {
			return err
		}
		return RecomputeTrack(tx, a.ID)
	})
	if err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "delete", "schedule",
		fmt.Sprintf("id=%d activity_id=%d", scheduleID, a.ID), sched, nil, "", s.Repos.Audit)

	return activityDetail(s.Repos, a.ID)
}

func activityDetail(repos *repository.Repos, activityID uint) (*activity.Detail, error) {
	a, err := repos.Activity.GetActivityByID(activityID)
	if err != nil {
		return nil, ErrActivityNotFound
	}
	d := BuildDetail(a)
	return &d, nil
}
