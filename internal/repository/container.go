package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	User        UserRepo
	Deed        DeedRepo
	Activity    ActivityRepo
	Track       TrackRepo
	Schedule    ScheduleRepo
	Draft       DraftRepo
	Requirement RequirementRepo
	Audit       AuditRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		User:        NewUserRepo(db),
		Deed:        NewDeedRepo(db),
		Activity:    NewActivityRepo(db),
		Track:       NewTrackRepo(db),
		Schedule:    NewScheduleRepo(db),
		Draft:       NewDraftRepo(db),
		Requirement: NewRequirementRepo(db),
		Audit:       NewAuditRepo(db),
		db:          db,
	}
}

func (r *Repos) Begin() *gorm.DB {
	return r.db.Begin()
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:        r.User.WithTx(tx),
		Deed:        r.Deed.WithTx(tx),
		Activity:    r.Activity.WithTx(tx),
		Track:       r.Track.WithTx(tx),
		Schedule:    r.Schedule.WithTx(tx),
		Draft:       r.Draft.WithTx(tx),
		Requirement: r.Requirement.WithTx(tx),
		Audit:       r.Audit.WithTx(tx),
		db:          tx,
	}
}

// ExecTx runs fn inside a database transaction, giving it a repos container
// scoped to that transaction.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
