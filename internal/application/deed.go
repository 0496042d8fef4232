package application

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/danuartha/notaris-go/internal/domain/deed"
	"github.com/danuartha/notaris-go/internal/domain/requirement"
	"github.com/danuartha/notaris-go/internal/domain/user"
	"github.com/danuartha/notaris-go/internal/repository"
	"github.com/danuartha/notaris-go/pkg/utils"
)

var ErrDeedInUse = errors.New("deed is referenced by existing activities")

type DeedService struct {
	Repos *repository.Repos
}

func NewDeedService(repos *repository.Repos) *DeedService {
	return &DeedService{
		Repos: repos,
	}
}

func (s *DeedService) GetDeed(id uint) (deed.Deed, error) {
	d, err := s.Repos.Deed.GetDeedByID(id)
	if err != nil {
		return deed.Deed{}, ErrDeedNotFound
	}
	return d, nil
}

func (s *DeedService) ListDeeds() ([]deed.Deed, error) {
	return s.Repos.Deed.ListDeeds()
}

// CreateDeed registers a deed type together with its default requirement
// checklist. Requirements created here carry a nil activity id, which marks
// them as the template every activity of this deed inherits.
func (s *DeedService) CreateDeed(c *gin.Context, input deed.CreateDeedDTO, role user.Role) (deed.Deed, error) {
	if role != user.RoleAdmin {
		return deed.Deed{}, ErrForbidden
	}

	d := deed.Deed{
		Name:        input.Name,
		Description: input.Description,
		TotalClient: input.TotalClient,
	}
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Deed.CreateDeed(&d); err != nil {
			return err
		}
		for _, r := range input.Requirements {
			req := requirement.Requirement{
				DeedID: d.ID,
				Name:   r.Name,
				IsFile: r.InputType == "file",
			}
			if err := tx.Requirement.CreateRequirement(&req); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return deed.Deed{}, err
	}

	utils.LogAuditWithConsole(c, "create", "deed",
		fmt.Sprintf("id=%d", d.ID), nil, d, "", s.Repos.Audit)
	return s.GetDeed(d.ID)
}

func (s *DeedService) UpdateDeed(c *gin.Context, id uint, input deed.UpdateDeedDTO, role user.Role) (deed.Deed, error) {
	if role != user.RoleAdmin {
		return deed.Deed{}, ErrForbidden
	}
	d, err := s.Repos.Deed.GetDeedByID(id)
	if err != nil {
		return deed.Deed{}, ErrDeedNotFound
	}
	before := d

	if input.Name != nil {
		d.Name = *input.Name
	}
	if input.Description != nil {
		d.Description = *input.Description
	}
	if input.TotalClient != nil {
		d.TotalClient = *input.TotalClient
	}

	if err := s.Repos.Deed.UpdateDeed(&d); err != nil {
		return deed.Deed{}, err
	}
	utils.LogAuditWithConsole(c, "update", "deed",
		fmt.Sprintf("id=%d", d.ID), before, d, "", s.Repos.Audit)
	return s.GetDeed(d.ID)
}

func (s *DeedService) DeleteDeed(c *gin.Context, id uint, role user.Role) error {
	if role != user.RoleAdmin {
		return ErrForbidden
	}
	d, err := s.Repos.Deed.GetDeedByID(id)
	if err != nil {
		return ErrDeedNotFound
	}

	activities, err := s.Repos.Activity.ListActivities()
	if err != nil {
		return err
	}
	for _, a := range activities {
		if a.DeedID == id {
			return ErrDeedInUse
		}
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		for _, r := range d.Requirements {
			if err := tx.Requirement.DeleteValuesByRequirement(r.ID); err != nil {
				return err
			}
			if err := tx.Requirement.DeleteRequirement(r.ID); err != nil {
				return err
			}
		}
		return tx.Deed.DeleteDeed(id)
	})
	if err != nil {
		return err
	}

	utils.LogAuditWithConsole(c, "delete", "deed",
		fmt.Sprintf("id=%d", id), d, nil, "", s.Repos.Audit)
	return nil
}
