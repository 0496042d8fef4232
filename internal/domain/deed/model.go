package deed

import (
	"time"

	"github.com/danuartha/notaris-go/internal/domain/requirement"
)

// Deed is a notarial deed type. TotalClient is the number of parties
// ("penghadap") an activity of this type must have.
type Deed struct {
	ID           uint                      `gorm:"primaryKey;column:id" json:"id"`
	Name         string                    `gorm:"size:150;not null" json:"name"`
	Description  string                    `gorm:"type:text" json:"description"`
	TotalClient  int                       `gorm:"not null;default:1" json:"total_client"`
	Requirements []requirement.Requirement `gorm:"foreignKey:DeedID" json:"requirements,omitempty"`
	CreatedAt    time.Time                 `gorm:"column:create_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time                 `gorm:"column:update_at;autoUpdateTime" json:"updated_at"`
}

func (Deed) TableName() string {
	return "deeds"
}
