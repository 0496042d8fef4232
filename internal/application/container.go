package application

import "github.com/danuartha/notaris-go/internal/repository"

// Services bundles every application service behind a single constructor so
// the router and handlers receive one dependency.
type Services struct {
	User        *UserService
	Deed        *DeedService
	Activity    *ActivityService
	Flow        *FlowService
	Schedule    *ScheduleService
	Draft       *DraftService
	Requirement *RequirementService
	Audit       *AuditService
}

func NewServices(repos *repository.Repos) *Services {
	return &Services{
		User:        NewUserService(repos),
		Deed:        NewDeedService(repos),
		Activity:    NewActivityService(repos),
		Flow:        NewFlowService(repos),
		Schedule:    NewScheduleService(repos),
		Draft:       NewDraftService(repos),
		Requirement: NewRequirementService(repos),
		Audit:       NewAuditService(repos),
	}
}
