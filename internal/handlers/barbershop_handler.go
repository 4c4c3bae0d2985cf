package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/pagination"
	ucShop "github.com/BruksfildServices01/barbershop-api/internal/usecase/barbershop"
)

// ======================================================
// HANDLER
// ======================================================

type BarbershopHandler struct {
	list         *ucShop.List
	create       *ucShop.Create
	update       *ucShop.Update
	delete       *ucShop.Delete
	authenticate *ucShop.Authenticate
	log          *zap.Logger
}

func NewBarbershopHandler(
	list *ucShop.List,
	create *ucShop.Create,
	update *ucShop.Update,
	del *ucShop.Delete,
	authenticate *ucShop.Authenticate,
	log *zap.Logger,
) *BarbershopHandler {
	return &BarbershopHandler{
		list:         list,
		create:       create,
		update:       update,
		delete:       del,
		authenticate: authenticate,
		log:          log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBarbershopRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,email,max=100"`
	Slug    string `json:"slug" binding:"required,max=100"`
	Address string `json:"address" binding:"required,max=255"`
	Phone   string `json:"phone" binding:"required,max=20"`
}

type UpdateBarbershopRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1,max=100"`
	Email   *string `json:"email" binding:"omitempty,email,max=100"`
	Slug    *string `json:"slug" binding:"omitempty,min=1,max=100"`
	Address *string `json:"address" binding:"omitempty,min=1,max=255"`
	Phone   *string `json:"phone" binding:"omitempty,min=1,max=20"`
}

type AuthRequest struct {
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"required"`
}

type AuthResponse struct {
	Token        string `json:"token"`
	BarbershopID uint   `json:"barberShopId"`
}

// ======================================================
// ROUTES
// ======================================================

// List godoc
// @Summary  List barbershops
// @Tags     barbershop
// @Produce  json
// @Param    page   query int false "page"  default(1)
// @Param    limit  query int false "limit" default(20)
// @Success  200 {object} pagination.Page[models.Barbershop]
// @Failure  400 {object} httperr.HTTPError
// @Router   /barbershop [get]
func (h *BarbershopHandler) List(c *gin.Context) {
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
// @Summary  Create a barbershop
// @Tags     barbershop
// @Accept   json
// @Produce  json
// @Param    body body CreateBarbershopRequest true "barbershop"
// @Success  200 {object} CreatedResponse
// @Failure  400 {object} httperr.HTTPError
// @Failure  409 {object} httperr.HTTPError
// @Router   /barbershop/create [post]
func (h *BarbershopHandler) Create(c *gin.Context) {
	var req CreateBarbershopRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	shop, err := h.create.Execute(c.Request.Context(), ucShop.CreateInput{
		Name:    req.Name,
		Email:   req.Email,
		Slug:    req.Slug,
		Address: req.Address,
		Phone:   req.Phone,
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, CreatedResponse{ID: shop.ID})
}

// Update godoc
// @Summary   Update a barbershop
// @Tags      barbershop
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     id   path int true "barbershop id"
// @Param     body body UpdateBarbershopRequest true "fields to change"
// @Success   200 {object} models.Barbershop
// @Failure   400 {object} httperr.HTTPError
// @Failure   404 {object} httperr.HTTPError
// @Failure   409 {object} httperr.HTTPError
// @Router    /barbershop/{id} [patch]
func (h *BarbershopHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	var req UpdateBarbershopRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	shop, err := h.update.Execute(c.Request.Context(), id, ucShop.UpdateInput{
		Name:    req.Name,
		Email:   req.Email,
		Slug:    req.Slug,
		Address: req.Address,
		Phone:   req.Phone,
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, shop)
}

// Delete godoc
// @Summary   Delete a barbershop with its barbers, services, reviews and schedules
// @Tags      barbershop
// @Security  BearerAuth
// @Param     id path int true "barbershop id"
// @Success   204
// @Failure   404 {object} httperr.HTTPError
// @Router    /barbershop/{id} [delete]
func (h *BarbershopHandler) Delete(c *gin.Context) {
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

// Auth godoc
// @Summary  Issue a session token for a barbershop
// @Tags     barbershop
// @Accept   json
// @Produce  json
// @Param    body body AuthRequest true "credentials"
// @Success  200 {object} AuthResponse
// @Failure  401 {object} httperr.HTTPError
// @Failure  429 {object} httperr.HTTPError
// @Router   /barbershop/auth [post]
func (h *BarbershopHandler) Auth(c *gin.Context) {
	var req AuthRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	out, err := h.authenticate.Execute(c.Request.Context(), ucShop.AuthenticateInput{
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{Token: out.Token, BarbershopID: out.BarbershopID})
}
