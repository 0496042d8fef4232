package repository

import (
	"errors"

	"github.com/danuartha/notaris-go/internal/domain/draft"
	"gorm.io/gorm"
)

type DraftRepo interface {
	GetDraftByID(id uint) (draft.Draft, error)
	GetDraftByActivityID(activityID uint) (draft.Draft, error)
	CreateDraft(d *draft.Draft) error
	UpdateDraft(d *draft.Draft) error
	DeleteDraft(id uint) error
	UpsertApproval(a *draft.Approval) error
	ListApprovals(draftID uint) ([]draft.Approval, error)
	WithTx(tx *gorm.DB) DraftRepo
}

type DBDraftRepo struct {
	db *gorm.DB
}

func NewDraftRepo(db *gorm.DB) *DBDraftRepo {
	return &DBDraftRepo{
		db: db,
	}
}

func (r *DBDraftRepo) GetDraftByID(id uint) (draft.Draft, error) {
	var d draft.Draft
	err := r.db.Preload("Approvals").Preload("Approvals.User").First(&d, id).Error
	return d, err
}

func (r *DBDraftRepo) GetDraftByActivityID(activityID uint) (draft.Draft, error) {
	var d draft.Draft
	err := r.db.Preload("Approvals").Preload("Approvals.User").
		Where("activity_id = ?", activityID).First(&d).Error
	return d, err
}

func (r *DBDraftRepo) CreateDraft(d *draft.Draft) error {
	return r.db.Create(d).Error
}

func (r *DBDraftRepo) UpdateDraft(d *draft.Draft) error {
	return r.db.Save(d).Error
}

func (r *DBDraftRepo) DeleteDraft(id uint) error {
	return r.db.Delete(&draft.Draft{}, id).Error
}

func (r *DBDraftRepo) UpsertApproval(a *draft.Approval) error {
	var existing draft.Approval
	err := r.db.
		Where("draft_id = ? AND user_id = ?", a.DraftID, a.UserID).
		First(&existing).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return r.db.Create(a).Error
	}
	existing.Status = a.Status
	existing.Note = a.Note
	if err := r.db.Save(&existing).Error; err != nil {
		return err
	}
	*a = existing
	return nil
}

func (r *DBDraftRepo) ListApprovals(draftID uint) ([]draft.Approval, error) {
	var list []draft.Approval
	err := r.db.Where("draft_id = ?", draftID).Find(&list).Error
	return list, err
}

func (r *DBDraftRepo) WithTx(tx *gorm.DB) DraftRepo {
	if tx == nil {
		return r
	}
	return &DBDraftRepo{
		db: tx,
	}
}
