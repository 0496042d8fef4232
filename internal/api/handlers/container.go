package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/danuartha/notaris-go/internal/application"
	"github.com/danuartha/notaris-go/internal/repository"
)

type Handlers struct {
	User        *UserHandler
	Deed        *DeedHandler
	Activity    *ActivityHandler
	Schedule    *ScheduleHandler
	Draft       *DraftHandler
	Requirement *RequirementHandler
	Audit       *AuditHandler
	WS          *WSHandler
	Router      *gin.Engine
}

func New(svc *application.Services, repos *repository.Repos, router *gin.Engine) *Handlers {
	h := &Handlers{
		User:        NewUserHandler(svc.User),
		Deed:        NewDeedHandler(svc.Deed),
		Activity:    NewActivityHandler(svc.Activity, svc.Flow),
		Schedule:    NewScheduleHandler(svc.Schedule),
		Draft:       NewDraftHandler(svc.Draft),
		Requirement: NewRequirementHandler(svc.Requirement),
		Audit:       NewAuditHandler(svc.Audit),
		WS:          NewWSHandler(svc.Flow),
		Router:      router,
	}
	return h
}
