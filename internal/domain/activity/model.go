package activity

import (
	"time"

	"github.com/danuartha/notaris-go/internal/domain/deed"
	"github.com/danuartha/notaris-go/internal/domain/draft"
	"github.com/danuartha/notaris-go/internal/domain/schedule"
	"github.com/danuartha/notaris-go/internal/domain/track"
	"github.com/danuartha/notaris-go/internal/domain/user"
)

// Activity is the central workflow record: one deed being produced by one
// notary for an ordered list of parties.
type Activity struct {
	ID           uint                `gorm:"primaryKey;column:id" json:"id"`
	TrackingCode string              `gorm:"size:20;not null;unique" json:"tracking_code"`
	Name         string              `gorm:"size:200;not null" json:"name"`
	DeedID       uint                `gorm:"not null;index" json:"deed_id"`
	NotaryID     uint                `gorm:"not null;index" json:"notary_id"`
	Deed         *deed.Deed          `gorm:"foreignKey:DeedID" json:"deed,omitempty"`
	Notary       *user.User          `gorm:"foreignKey:NotaryID" json:"notary,omitempty"`
	Clients      []Client            `gorm:"foreignKey:ActivityID" json:"clients,omitempty"`
	Schedules    []schedule.Schedule `gorm:"foreignKey:ActivityID" json:"schedules,omitempty"`
	Draft        *draft.Draft        `gorm:"foreignKey:ActivityID" json:"draft,omitempty"`
	Tracks       []track.Track       `gorm:"foreignKey:ActivityID" json:"track,omitempty"`
	CreatedAt    time.Time           `gorm:"column:create_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time           `gorm:"column:update_at;autoUpdateTime" json:"updated_at"`
}

func (Activity) TableName() string {
	return "activities"
}

// Client is the ordered pivot between an activity and an invited party. Ord
// stays stable under add/remove; survivors are never renumbered because the
// position feeds template token assignment and signature layout.
type Client struct {
	ID             uint       `gorm:"primaryKey;column:id" json:"id"`
	ActivityID     uint       `gorm:"not null;index:idx_activity_user,unique" json:"activity_id"`
	UserID         uint       `gorm:"not null;index:idx_activity_user,unique" json:"user_id"`
	Ord            int        `gorm:"column:ord;not null;default:0" json:"order"`
	StatusApproval string     `gorm:"size:20;not null;default:'pending'" json:"status_approval"`
	User           *user.User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt      time.Time  `gorm:"column:create_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"column:update_at;autoUpdateTime" json:"updated_at"`
}

func (Client) TableName() string {
	return "activity_clients"
}

// ActiveSchedule returns the single active schedule, if any.
func (a *Activity) ActiveSchedule() *schedule.Schedule {
	if len(a.Schedules) == 0 {
		return nil
	}
	return &a.Schedules[0]
}

// HasClient reports whether userID is among the activity's parties.
func (a *Activity) HasClient(userID uint) bool {
	for _, c := range a.Clients {
		if c.UserID == userID {
			return true
		}
	}
	return false
}
