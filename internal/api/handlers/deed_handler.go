package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danuartha/notaris-go/internal/application"
	"github.com/danuartha/notaris-go/internal/domain/deed"
	"github.com/danuartha/notaris-go/pkg/response"
	"github.com/danuartha/notaris-go/pkg/utils"
)

type DeedHandler struct {
	svc *application.DeedService
}

func NewDeedHandler(svc *application.DeedService) *DeedHandler {
	return &DeedHandler{svc: svc}
}

// ListDeeds godoc
// @Summary List deed types
// @Tags deeds
// @Security BearerAuth
// @Produce json
// @Success 200 {array} deed.Deed
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /deeds [get]
func (h *DeedHandler) ListDeeds(c *gin.Context) {
	deeds, err := h.svc.ListDeeds()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, deeds)
}

// GetDeed godoc
// @Summary Get a deed type with its default requirements
// @Tags deeds
// @Security BearerAuth
// @Produce json
// @Param id path int true "Deed ID"
// @Success 200 {object} deed.Deed
// @Failure 400 {object} response.ErrorResponse "Invalid deed id"
// @Failure 404 {object} response.ErrorResponse "Deed not found"
// @Router /deeds/{id} [get]
func (h *DeedHandler) GetDeed(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid deed id"})
		return
	}

	d, err := h.svc.GetDeed(id)
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Deed not found"})
		return
	}
	c.JSON(http.StatusOK, d)
}

// CreateDeed godoc
// @Summary Create a deed type
// @Tags deeds
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body deed.CreateDeedDTO true "Deed info with default requirements"
// @Success 201 {object} deed.Deed
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 403 {object} response.ErrorResponse "Forbidden"
// @Router /deeds [post]
func (h *DeedHandler) CreateDeed(c *gin.Context) {
	var input deed.CreateDeedDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	_, role, ok := requestIdentity(c)
	if !ok {
		return
	}

	d, err := h.svc.CreateDeed(c, input, role)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, d)
}

// UpdateDeed godoc
// @Summary Update a deed type
// @Tags deeds
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Deed ID"
// @Param input body deed.UpdateDeedDTO true "Fields to update"
// @Success 200 {object} deed.Deed
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 403 {object} response.ErrorResponse "Forbidden"
// @Failure 404 {object} response.ErrorResponse "Deed not found"
// @Router /deeds/{id} [put]
func (h *DeedHandler) UpdateDeed(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid deed id"})
		return
	}
	var input deed.UpdateDeedDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	_, role, ok := requestIdentity(c)
	if !ok {
		return
	}

	d, err := h.svc.UpdateDeed(c, id, input, role)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// DeleteDeed godoc
// @Summary Delete a deed type
// @Tags deeds
// @Security BearerAuth
// @Produce json
// @Param id path int true "Deed ID"
// @Success 204 "No Content"
// @Failure 400 {object} response.ErrorResponse "Invalid deed id"
// @Failure 403 {object} response.ErrorResponse "Forbidden"
// @Failure 404 {object} response.ErrorResponse "Deed not found"
// @Failure 422 {object} response.ErrorResponse "Deed is referenced by activities"
// @Router /deeds/{id} [delete]
func (h *DeedHandler) DeleteDeed(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid deed id"})
		return
	}
	_, role, ok := requestIdentity(c)
	if !ok {
		return
	}

	if err := h.svc.DeleteDeed(c, id, role); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
