package requirement

import "time"

// ApprovalStatus is shared by requirement values, party pivots and draft
// approvals.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// Requirement is a named data field attached to a deed type. When ActivityID
// is set the requirement is an activity-scoped extra created by the notary;
// when nil it is a default of the deed type.
type Requirement struct {
	ID         uint      `gorm:"primaryKey;column:id" json:"id"`
	DeedID     uint      `gorm:"not null;index" json:"deed_id"`
	ActivityID *uint     `gorm:"index" json:"activity_id,omitempty"`
	Name       string    `gorm:"size:150;not null" json:"name"`
	IsFile     bool      `gorm:"not null;default:false" json:"is_file"`
	CreatedAt  time.Time `gorm:"column:create_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:update_at;autoUpdateTime" json:"updated_at"`
}

func (Requirement) TableName() string {
	return "requirements"
}

// Value is one party's answer to a requirement within an activity. File
// answers store the object-storage key in FilePath; text answers use Value.
type Value struct {
	ID            uint      `gorm:"primaryKey;column:id" json:"id"`
	RequirementID uint      `gorm:"not null;index:idx_req_activity_user,unique" json:"requirement_id"`
	ActivityID    uint      `gorm:"not null;index:idx_req_activity_user,unique" json:"activity_id"`
	UserID        uint      `gorm:"not null;index:idx_req_activity_user,unique" json:"user_id"`
	Value         string    `gorm:"type:text" json:"value"`
	FilePath      string    `gorm:"size:300" json:"file_path"`
	Status        string    `gorm:"size:20;not null;default:'pending'" json:"status"`
	Note          string    `gorm:"type:text" json:"note"`
	CreatedAt     time.Time `gorm:"column:create_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:update_at;autoUpdateTime" json:"updated_at"`
}

func (Value) TableName() string {
	return "requirement_values"
}
