package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/barbershop-api/internal/domain/schedule"
	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/pagination"
	ucSchedule "github.com/BruksfildServices01/barbershop-api/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type ScheduleHandler struct {
	list   *ucSchedule.List
	create *ucSchedule.Create
	update *ucSchedule.Update
	delete *ucSchedule.Delete
	log    *zap.Logger
}

func NewScheduleHandler(
	list *ucSchedule.List,
	create *ucSchedule.Create,
	update *ucSchedule.Update,
	del *ucSchedule.Delete,
	log *zap.Logger,
) *ScheduleHandler {
	return &ScheduleHandler{list: list, create: create, update: update, delete: del, log: log}
}

// List godoc
// @Summary  List schedules, each with the periods of its own model
// @Tags     schedule
// @Produce  json
// @Param    model        query string false "filter by model" Enums(week, custom, unavailable)
// @Param    barberShopId query int    false "filter by barbershop"
// @Param    page         query int    false "page"  default(1)
// @Param    limit        query int    false "limit" default(20)
// @Success  200 {object} pagination.Page[WeekScheduleResponse]
// @Router   /schedule [get]
func (h *ScheduleHandler) List(c *gin.Context) {
	p, err := pagination.Bind(c)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	var q ScheduleListQuery
	if err := bindQuery(c, &q); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	page, err := h.list.Execute(c.Request.Context(), domain.Filter{
		Model:        domain.Model(q.Model),
		BarbershopID: q.BarbershopID,
	}, p)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, pagination.Map(page, toScheduleResponse))
}

// Create godoc
// @Summary   Create a schedule
// @Tags      schedule
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     body body CreateScheduleRequest true "schedule"
// @Success   200 {object} CreatedResponse
// @Failure   400 {object} httperr.HTTPError
// @Failure   404 {object} httperr.HTTPError
// @Router    /schedule/create [post]
func (h *ScheduleHandler) Create(c *gin.Context) {
	var req CreateScheduleRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	variant, err := req.toVariant()
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	s, err := h.create.Execute(c.Request.Context(), ucSchedule.CreateInput{
		BarbershopID: req.BarbershopID,
		Variant:      variant,
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, CreatedResponse{ID: s.ID})
}

// Update godoc
// @Summary   Replace the periods of a schedule or move it to another shop
// @Tags      schedule
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     id   path int true "schedule id"
// @Param     body body UpdateScheduleRequest true "fields to change"
// @Success   200 {object} WeekScheduleResponse
// @Failure   400 {object} httperr.HTTPError
// @Failure   404 {object} httperr.HTTPError
// @Router    /schedule/{id} [patch]
func (h *ScheduleHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	var req UpdateScheduleRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	variant, err := req.replacement()
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	in := ucSchedule.UpdateInput{
		BarbershopID: req.BarbershopID,
		Variant:      variant,
	}
	if req.Model != nil {
		m := domain.Model(*req.Model)
		in.Model = &m
	}

	s, err := h.update.Execute(c.Request.Context(), id, in)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toScheduleResponse(*s))
}

// Delete godoc
// @Summary   Delete a schedule and its periods
// @Tags      schedule
// @Security  BearerAuth
// @Param     id path int true "schedule id"
// @Success   204
// @Failure   404 {object} httperr.HTTPError
// @Router    /schedule/{id} [delete]
func (h *ScheduleHandler) Delete(c *gin.Context) {
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
