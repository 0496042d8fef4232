package repository

import (
	"errors"

	"github.com/danuartha/notaris-go/internal/domain/track"
	"gorm.io/gorm"
)

type TrackRepo interface {
	ListByActivity(activityID uint) ([]track.Track, error)
	GetStep(activityID uint, step track.Step) (track.Track, error)
	UpsertStep(activityID uint, step track.Step, status track.Status) error
	DeleteByActivity(activityID uint) error
	WithTx(tx *gorm.DB) TrackRepo
}

type DBTrackRepo struct {
	db *gorm.DB
}

func NewTrackRepo(db *gorm.DB) *DBTrackRepo {
	return &DBTrackRepo{
		db: db,
	}
}

func (r *DBTrackRepo) ListByActivity(activityID uint) ([]track.Track, error) {
	var rows []track.Track
	err := r.db.Where("activity_id = ?", activityID).Find(&rows).Error
	return rows, err
}

func (r *DBTrackRepo) GetStep(activityID uint, step track.Step) (track.Track, error) {
	var row track.Track
	err := r.db.
		Where("activity_id = ? AND step = ?", activityID, string(step)).
		First(&row).Error
	return row, err
}

func (r *DBTrackRepo) UpsertStep(activityID uint, step track.Step, status track.Status) error {
	var row track.Track
	err := r.db.
		Where("activity_id = ? AND step = ?", activityID, string(step)).
		First(&row).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		row = track.Track{
			ActivityID: activityID,
			Step:       string(step),
			Status:     string(status),
		}
		return r.db.Create(&row).Error
	}
	if row.Status == string(status) {
		return nil
	}
	row.Status = string(status)
	return r.db.Save(&row).Error
}

func (r *DBTrackRepo) DeleteByActivity(activityID uint) error {
	return r.db.Where("activity_id = ?", activityID).Delete(&track.Track{}).Error
}

func (r *DBTrackRepo) WithTx(tx *gorm.DB) TrackRepo {
	if tx == nil {
		return r
	}
	return &DBTrackRepo{
		db: tx,
	}
}
