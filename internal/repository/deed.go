package repository

import (
	"github.com/danuartha/notaris-go/internal/domain/deed"
	"gorm.io/gorm"
)

type DeedRepo interface {
	GetDeedByID(id uint) (deed.Deed, error)
	ListDeeds() ([]deed.Deed, error)
	CreateDeed(d *deed.Deed) error
	UpdateDeed(d *deed.Deed) error
	DeleteDeed(id uint) error
	WithTx(tx *gorm.DB) DeedRepo
}

type DBDeedRepo struct {
	db *gorm.DB
}

func NewDeedRepo(db *gorm.DB) *DBDeedRepo {
	return &DBDeedRepo{
		db: db,
	}
}

func (r *DBDeedRepo) GetDeedByID(id uint) (deed.Deed, error) {
	var d deed.Deed
	err := r.db.
		Preload("Requirements", "activity_id IS NULL").
		First(&d, id).Error
	return d, err
}

func (r *DBDeedRepo) ListDeeds() ([]deed.Deed, error) {
	var deeds []deed.Deed
	err := r.db.Order("id ASC").Find(&deeds).Error
	return deeds, err
}

func (r *DBDeedRepo) CreateDeed(d *deed.Deed) error {
	return r.db.Create(d).Error
}

func (r *DBDeedRepo) UpdateDeed(d *deed.Deed) error {
	return r.db.Save(d).Error
}

func (r *DBDeedRepo) DeleteDeed(id uint) error {
	return r.db.Delete(&deed.Deed{}, id).Error
}

func (r *DBDeedRepo) WithTx(tx *gorm.DB) DeedRepo {
	if tx == nil {
		return r
	}
	return &DBDeedRepo{
		db: tx,
	}
}
