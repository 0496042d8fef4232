package schedule

import "time"

// Schedule is the reading appointment for an activity. An activity has at
// most one active schedule.
type Schedule struct {
	ID         uint      `gorm:"primaryKey;column:id" json:"id"`
	ActivityID uint      `gorm:"not null;index" json:"activity_id"`
	Date       string    `gorm:"size:10;not null" json:"date"`
	Time       string    `gorm:"size:5;not null" json:"time"`
	Location   string    `gorm:"size:200;not null" json:"location"`
	Notes      string    `gorm:"type:text" json:"notes"`
	CreatedAt  time.Time `gorm:"column:create_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:update_at;autoUpdateTime" json:"updated_at"`
}

func (Schedule) TableName() string {
	return "schedules"
}
