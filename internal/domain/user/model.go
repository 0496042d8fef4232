package user

import "time"

// Role IDs as stored in the users table. The numeric values are part of the
// wire contract with existing clients.
const (
	RoleIDAdmin  uint = 1
	RoleIDClient uint = 2
	RoleIDNotary uint = 3
)

type User struct {
	ID        uint      `gorm:"primaryKey;column:id" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:100;not null;unique" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	RoleID    uint      `gorm:"not null;default:2" json:"role_id"`
	Phone     *string   `gorm:"size:30" json:"phone,omitempty"`
	Address   *string   `gorm:"type:text" json:"address,omitempty"`
	CreatedAt time.Time `gorm:"column:create_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:update_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) Role() Role {
	return RoleFromID(u.RoleID)
}
