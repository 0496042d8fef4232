package repository

import (
	"github.com/danuartha/notaris-go/internal/domain/activity"
	"gorm.io/gorm"
)

type ActivityRepo interface {
	GetActivityByID(id uint) (activity.Activity, error)
	GetActivityByTrackingCode(code string) (activity.Activity, error)
	ListActivities() ([]activity.Activity, error)
	ListActivitiesByNotary(notaryID uint) ([]activity.Activity, error)
	ListActivitiesByClient(userID uint) ([]activity.Activity, error)
	CreateActivity(a *activity.Activity) error
	UpdateActivity(a *activity.Activity) error
	DeleteActivity(id uint) error

	AddClient(c *activity.Client) error
	RemoveClient(activityID, userID uint) error
	GetClientPivot(activityID, userID uint) (activity.Client, error)
	UpdateClientPivot(c *activity.Client) error
	NextClientOrd(activityID uint) (int, error)

	WithTx(tx *gorm.DB) ActivityRepo
}

type DBActivityRepo struct {
	db *gorm.DB
}

func NewActivityRepo(db *gorm.DB) *DBActivityRepo {
	return &DBActivityRepo{
		db: db,
	}
}

func (r *DBActivityRepo) withDetail(q *gorm.DB) *gorm.DB {
	return q.
		Preload("Deed").
		Preload("Deed.Requirements").
		Preload("Notary").
		Preload("Clients", func(db *gorm.DB) *gorm.DB {
			return db.Order("activity_clients.ord ASC, activity_clients.id ASC")
		}).
		Preload("Clients.User").
		Preload("Schedules").
		Preload("Draft").
		Preload("Draft.Approvals").
		Preload("Tracks")
}

func (r *DBActivityRepo) GetActivityByID(id uint) (activity.Activity, error) {
	var a activity.Activity
	err := r.withDetail(r.db).First(&a, id).Error
	return a, err
}

func (r *DBActivityRepo) GetActivityByTrackingCode(code string) (activity.Activity, error) {
	var a activity.Activity
	err := r.withDetail(r.db).Where("tracking_code = ?", code).First(&a).Error
	return a, err
}

func (r *DBActivityRepo) ListActivities() ([]activity.Activity, error) {
	var list []activity.Activity
	err := r.db.Preload("Deed").Preload("Tracks").Order("id DESC").Find(&list).Error
	return list, err
}

func (r *DBActivityRepo) ListActivitiesByNotary(notaryID uint) ([]activity.Activity, error) {
	var list []activity.Activity
	err := r.db.Preload("Deed").Preload("Tracks").
		Where("notary_id = ?", notaryID).
		Order("id DESC").Find(&list).Error
	return list, err
}

func (r *DBActivityRepo) ListActivitiesByClient(userID uint) ([]activity.Activity, error) {
	var list []activity.Activity
	err := r.db.Preload("Deed").Preload("Tracks").
		Joins("JOIN activity_clients ac ON ac.activity_id = activities.id").
		Where("ac.user_id = ?", userID).
		Order("activities.id DESC").Find(&list).Error
	return list, err
}

func (r *DBActivityRepo) CreateActivity(a *activity.Activity) error {
	return r.db.Create(a).Error
}

func (r *DBActivityRepo) UpdateActivity(a *activity.Activity) error {
	return r.db.Save(a).Error
}

func (r *DBActivityRepo) DeleteActivity(id uint) error {
	return r.db.Delete(&activity.Activity{}, id).Error
}

func (r *DBActivityRepo) AddClient(c *activity.Client) error {
	return r.db.Create(c).Error
}

func (r *DBActivityRepo) RemoveClient(activityID, userID uint) error {
	return r.db.
		Where("activity_id = ? AND user_id = ?", activityID, userID).
		Delete(&activity.Client{}).Error
}

func (r *DBActivityRepo) GetClientPivot(activityID, userID uint) (activity.Client, error) {
	var c activity.Client
	err := r.db.
		Where("activity_id = ? AND user_id = ?", activityID, userID).
		First(&c).Error
	return c, err
}

func (r *DBActivityRepo) UpdateClientPivot(c *activity.Client) error {
	return r.db.Save(c).Error
}

// NextClientOrd returns max(ord)+1 so positions stay stable when earlier
// parties are removed.
func (r *DBActivityRepo) NextClientOrd(activityID uint) (int, error) {
	var max *int
	err := r.db.Model(&activity.Client{}).
		Select("MAX(ord)").
		Where("activity_id = ?", activityID).
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 1, nil
	}
	return *max + 1, nil
}

func (r *DBActivityRepo) WithTx(tx *gorm.DB) ActivityRepo {
	if tx == nil {
		return r
	}
	return &DBActivityRepo{
		db: tx,
	}
}
