package draft

import (
	"time"

	"github.com/danuartha/notaris-go/internal/domain/user"
	"gorm.io/datatypes"
)

// Draft is the authored deed content for one activity plus the PDF render
// options. At most one draft exists per activity.
type Draft struct {
	ID                  uint           `gorm:"primaryKey;column:id" json:"id"`
	ActivityID          uint           `gorm:"not null;uniqueIndex" json:"activity_id"`
	CustomValueTemplate string         `gorm:"type:text" json:"custom_value_template"`
	PdfOptions          datatypes.JSON `gorm:"column:pdf_options" json:"pdf_options"`
	File                string         `gorm:"size:300" json:"file"`
	Approvals           []Approval     `gorm:"foreignKey:DraftID" json:"client_approvals,omitempty"`
	CreatedAt           time.Time      `gorm:"column:create_at;autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time      `gorm:"column:update_at;autoUpdateTime" json:"updated_at"`
}

func (Draft) TableName() string {
	return "drafts"
}

// Approval is one party's decision on a draft.
type Approval struct {
	ID        uint       `gorm:"primaryKey;column:id" json:"id"`
	DraftID   uint       `gorm:"not null;index:idx_draft_user,unique" json:"draft_id"`
	UserID    uint       `gorm:"not null;index:idx_draft_user,unique" json:"user_id"`
	Status    string     `gorm:"size:20;not null;default:'pending'" json:"status"`
	Note      string     `gorm:"type:text" json:"note"`
	User      *user.User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt time.Time  `gorm:"column:create_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"column:update_at;autoUpdateTime" json:"updated_at"`
}

func (Approval) TableName() string {
	return "draft_approvals"
}

// StatusForUser looks up the caller's own approval pivot by user id. Empty
// string means the user has no pivot on this draft.
func (d *Draft) StatusForUser(userID uint) string {
	for _, a := range d.Approvals {
		if a.UserID == userID {
			return a.Status
		}
	}
	return ""
}
