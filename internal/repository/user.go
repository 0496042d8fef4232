package repository

import (
	"github.com/danuartha/notaris-go/internal/domain/user"
	"gorm.io/gorm"
)

type UserRepo interface {
	GetUserByID(id uint) (user.User, error)
	GetUserByEmail(email string) (user.User, error)
	ListUsers() ([]user.User, error)
	ListUsersByRole(roleID uint) ([]user.User, error)
	SearchClients(query string, limit int) ([]user.User, error)
	SaveUser(u *user.User) error
	DeleteUser(id uint) error
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{
		db: db,
	}
}

func (r *DBUserRepo) GetUserByID(id uint) (user.User, error) {
	var u user.User
	err := r.db.First(&u, id).Error
	return u, err
}

func (r *DBUserRepo) GetUserByEmail(email string) (user.User, error) {
	var u user.User
	err := r.db.Where("email = ?", email).First(&u).Error
	return u, err
}

func (r *DBUserRepo) ListUsers() ([]user.User, error) {
	var users []user.User
	err := r.db.Order("id ASC").Find(&users).Error
	return users, err
}

func (r *DBUserRepo) ListUsersByRole(roleID uint) ([]user.User, error) {
	var users []user.User
	err := r.db.Where("role_id = ?", roleID).Order("id ASC").Find(&users).Error
	return users, err
}

// SearchClients powers the add-party search box: client accounts whose name
// or email matches the query.
func (r *DBUserRepo) SearchClients(query string, limit int) ([]user.User, error) {
	var users []user.User
	if limit <= 0 {
		limit = 10
	}
	pattern := "%" + query + "%"
	err := r.db.
		Where("role_id = ?", user.RoleIDClient).
		Where("name LIKE ? OR email LIKE ?", pattern, pattern).
		Limit(limit).
		Find(&users).Error
	return users, err
}

func (r *DBUserRepo) SaveUser(u *user.User) error {
	return r.db.Save(u).Error
}

func (r *DBUserRepo) DeleteUser(id uint) error {
	return r.db.Delete(&user.User{}, id).Error
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{
		db: tx,
	}
}
