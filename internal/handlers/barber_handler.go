package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/pagination"
	ucBarber "github.com/BruksfildServices01/barbershop-api/internal/usecase/barber"
)

type BarberHandler struct {
	list   *ucBarber.List
	create *ucBarber.Create
	update *ucBarber.Update
	delete *ucBarber.Delete
	log    *zap.Logger
}

func NewBarberHandler(
	list *ucBarber.List,
	create *ucBarber.Create,
	update *ucBarber.Update,
	del *ucBarber.Delete,
	log *zap.Logger,
) *BarberHandler {
	return &BarberHandler{list: list, create: create, update: update, delete: del, log: log}
}

type CreateBarberRequest struct {
	BarbershopID uint   `json:"barberShopId" binding:"required"`
	Name         string `json:"name" binding:"required,max=100"`
	Email        string `json:"email" binding:"required,email,max=100"`
	Phone        string `json:"phone" binding:"required,max=20"`
}

type UpdateBarberRequest struct {
	BarbershopID *uint   `json:"barberShopId" binding:"omitempty,min=1"`
	Name         *string `json:"name" binding:"omitempty,min=1,max=100"`
	Email        *string `json:"email" binding:"omitempty,email,max=100"`
	Phone        *string `json:"phone" binding:"omitempty,min=1,max=20"`
}

// List godoc
// @Summary  List barbers
// @Tags     barber
// @Produce  json
// @Param    page   query int false "page"  default(1)
// @Param    limit  query int false "limit" default(20)
// @Success  200 {object} pagination.Page[models.Barber]
// @Router   /barber [get]
func (h *BarberHandler) List(c *gin.Context) {
	p, err := pagination.Bind(c)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	page, err := h.list.Execute(c.Request.Context(), p)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// Create godoc
// @Summary   Create a barber
// @Tags      barber
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     body body CreateBarberRequest true "barber"
// @Success   200 {object} CreatedResponse
// @Failure   404 {object} httperr.HTTPError
// @Failure   409 {object} httperr.HTTPError
// @Router    /barber/create [post]
func (h *BarberHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	b, err := h.create.Execute(c.Request.Context(), ucBarber.CreateInput{
		BarbershopID: req.BarbershopID,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, CreatedResponse{ID: b.ID})
}

// Update godoc
// @Summary   Update a barber
// @Tags      barber
// @Security  BearerAuth
// @Param     id   path int true "barber id"
// @Param     body body UpdateBarberRequest true "fields to change"
// @Success   200 {object} models.Barber
// @Router    /barber/{id} [patch]
func (h *BarberHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	var req UpdateBarberRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	b, err := h.update.Execute(c.Request.Context(), id, ucBarber.UpdateInput{
		BarbershopID: req.BarbershopID,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

// Delete godoc
// @Summary   Delete a barber
// @Tags      barber
// @Security  BearerAuth
// @Param     id path int true "barber id"
// @Success   204
// @Router    /barber/{id} [delete]
func (h *BarberHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	if err := h.delete.Execute(c.Request.Context(), id); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}
