package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/pagination"
	ucReview "github.com/BruksfildServices01/barbershop-api/internal/usecase/review"
)

// ReviewHandler serves the /avaliations resource.
type ReviewHandler struct {
	list   *ucReview.List
	create *ucReview.Create
	update *ucReview.Update
	delete *ucReview.Delete
	log    *zap.Logger
}

func NewReviewHandler(
	list *ucReview.List,
	create *ucReview.Create,
	update *ucReview.Update,
	del *ucReview.Delete,
	log *zap.Logger,
) *ReviewHandler {
	return &ReviewHandler{list: list, create: create, update: update, delete: del, log: log}
}

type CreateReviewRequest struct {
	BarbershopID uint     `json:"barberShopId" binding:"required"`
	Rating       *float64 `json:"rating" binding:"required,gt=0"`
	Comment      *string  `json:"comment" binding:"omitempty,max=1000"`
}

type UpdateReviewRequest struct {
	BarbershopID *uint    `json:"barberShopId" binding:"omitempty,min=1"`
	Rating       *float64 `json:"rating" binding:"omitempty,gt=0"`
	Comment      *string  `json:"comment" binding:"omitempty,max=1000"`
}

// List godoc
// @Summary  List reviews
// @Tags     avaliations
// @Produce  json
// @Param    page   query int false "page"  default(1)
// @Param    limit  query int false "limit" default(20)
// @Success  200 {object} pagination.Page[models.Review]
// @Router   /avaliations [get]
func (h *ReviewHandler) List(c *gin.Context) {
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
// @Summary   Create a review
// @Tags      avaliations
// @Security  BearerAuth
// @Param     body body CreateReviewRequest true "review"
// @Success   200 {object} CreatedResponse
// @Router    /avaliations/create [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	r, err := h.create.Execute(c.Request.Context(), ucReview.CreateInput{
		BarbershopID: req.BarbershopID,
		Rating:       *req.Rating,
		Comment:      req.Comment,
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, CreatedResponse{ID: r.ID})
}

// Update godoc
// @Summary   Update a review
// @Tags      avaliations
// @Security  BearerAuth
// @Param     id   path int true "review id"
// @Param     body body UpdateReviewRequest true "fields to change"
// @Success   200 {object} models.Review
// @Router    /avaliations/{id} [patch]
func (h *ReviewHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	var req UpdateReviewRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	r, err := h.update.Execute(c.Request.Context(), id, ucReview.UpdateInput{
		BarbershopID: req.BarbershopID,
		Rating:       req.Rating,
		Comment:      req.Comment,
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, r)
}

// Delete godoc
// @Summary   Delete a review
// @Tags      avaliations
// @Security  BearerAuth
// @Param     id path int true "review id"
// @Success   204
// @Router    /avaliations/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
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
