package repository

import (
	"github.com/danuartha/notaris-go/internal/domain/schedule"
	"gorm.io/gorm"
)

type ScheduleRepo interface {
	GetScheduleByID(id uint) (schedule.Schedule, error)
	GetScheduleByActivityID(activityID uint) (schedule.Schedule, error)
	CreateSchedule(s *schedule.Schedule) error
	UpdateSchedule(s *schedule.Schedule) error
	DeleteSchedule(id uint) error
	WithTx(tx *gorm.DB) ScheduleRepo
}

type DBScheduleRepo struct {
	db *gorm.DB
}

func NewScheduleRepo(db *gorm.DB) *DBScheduleRepo {
	return &DBScheduleRepo{
		db: db,
	}
}

func (r *DBScheduleRepo) GetScheduleByID(id uint) (schedule.Schedule, error) {
	var s schedule.Schedule
	err := r.db.First(&s, id).Error
	return s, err
}

func (r *DBScheduleRepo) GetScheduleByActivityID(activityID uint) (schedule.Schedule, error) {
	var s schedule.Schedule
	err := r.db.Where("activity_id = ?", activityID).First(&s).Error
	return s, err
}

func (r *DBScheduleRepo) CreateSchedule(s *schedule.Schedule) error {
	return r.db.Create(s).Error
}

func (r *DBScheduleRepo) UpdateSchedule(s *schedule.Schedule) error {
	return r.db.Save(s).Error
}

func (r *DBScheduleRepo) DeleteSchedule(id uint) error {
	return r.db.Delete(&schedule.Schedule{}, id).Error
}

func (r *DBScheduleRepo) WithTx(tx *gorm.DB) ScheduleRepo {
	if tx == nil {
		return r
	}
	return &DBScheduleRepo{
		db: tx,
	}
}
