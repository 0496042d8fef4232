package repository

import (
	"github.com/danuartha/notaris-go/internal/domain/requirement"
	"gorm.io/gorm"
)

type RequirementRepo interface {
	GetRequirementByID(id uint) (requirement.Requirement, error)
	ListByDeed(deedID uint) ([]requirement.Requirement, error)
	ListForActivity(deedID, activityID uint) ([]requirement.Requirement, error)
	CreateRequirement(req *requirement.Requirement) error
	DeleteRequirement(id uint) error

	GetValueByID(id uint) (requirement.Value, error)
	ListValuesByActivity(activityID uint) ([]requirement.Value, error)
	SaveValue(v *requirement.Value) error
	DeleteValuesByRequirement(requirementID uint) error

	WithTx(tx *gorm.DB) RequirementRepo
}

type DBRequirementRepo struct {
	db *gorm.DB
}

func NewRequirementRepo(db *gorm.DB) *DBRequirementRepo {
	return &DBRequirementRepo{
		db: db,
	}
}

func (r *DBRequirementRepo) GetRequirementByID(id uint) (requirement.Requirement, error) {
	var req requirement.Requirement
	err := r.db.First(&req, id).Error
	return req, err
}

func (r *DBRequirementRepo) ListByDeed(deedID uint) ([]requirement.Requirement, error) {
	var list []requirement.Requirement
	err := r.db.
		Where("deed_id = ? AND activity_id IS NULL", deedID).
		Order("id ASC").Find(&list).Error
	return list, err
}

// ListForActivity returns the deed-type defaults plus the activity's extras.
func (r *DBRequirementRepo) ListForActivity(deedID, activityID uint) ([]requirement.Requirement, error) {
	var list []requirement.Requirement
	err := r.db.
		Where("deed_id = ? AND (activity_id IS NULL OR activity_id = ?)", deedID, activityID).
		Order("id ASC").Find(&list).Error
	return list, err
}

func (r *DBRequirementRepo) CreateRequirement(req *requirement.Requirement) error {
	return r.db.Create(req).Error
}

func (r *DBRequirementRepo) DeleteRequirement(id uint) error {
	return r.db.Delete(&requirement.Requirement{}, id).Error
}

func (r *DBRequirementRepo) GetValueByID(id uint) (requirement.Value, error) {
	var v requirement.Value
	err := r.db.First(&v, id).Error
	return v, err
}

func (r *DBRequirementRepo) ListValuesByActivity(activityID uint) ([]requirement.Value, error) {
	var list []requirement.Value
	err := r.db.Where("activity_id = ?", activityID).Find(&list).Error
	return list, err
}

func (r *DBRequirementRepo) SaveValue(v *requirement.Value) error {
	return r.db.Save(v).Error
}

func (r *DBRequirementRepo) DeleteValuesByRequirement(requirementID uint) error {
	return r.db.
		Where("requirement_id = ?", requirementID).
		Delete(&requirement.Value{}).Error
}

func (r *DBRequirementRepo) WithTx(tx *gorm.DB) RequirementRepo {
	if tx == nil {
		return r
	}
	return &DBRequirementRepo{
		db: tx,
	}
}
