package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/pagination"
	"github.com/BruksfildServices01/barbershop-api/internal/storage"
	ucHair "github.com/BruksfildServices01/barbershop-api/internal/usecase/hair"
)

// multipart overhead allowed on top of the photo itself
const uploadSlack = 64 << 10

type HairHandler struct {
	list        *ucHair.List
	create      *ucHair.Create
	update      *ucHair.Update
	delete      *ucHair.Delete
	uploadPhoto *ucHair.UploadPhoto
	log         *zap.Logger
}

func NewHairHandler(
	list *ucHair.List,
	create *ucHair.Create,
	update *ucHair.Update,
	del *ucHair.Delete,
	uploadPhoto *ucHair.UploadPhoto,
	log *zap.Logger,
) *HairHandler {
	return &HairHandler{
		list:        list,
		create:      create,
		update:      update,
		delete:      del,
		uploadPhoto: uploadPhoto,
		log:         log,
	}
}

type CreateHairRequest struct {
	BarbershopID uint             `json:"barberShopId" binding:"required"`
	Name         string           `json:"name" binding:"required,max=100"`
	Price        *decimal.Decimal `json:"price" binding:"required" swaggertype:"number"`
	PhotoURL     *string          `json:"photoUrl" binding:"omitempty,url,max=512"`
}

type UpdateHairRequest struct {
	BarbershopID *uint            `json:"barberShopId" binding:"omitempty,min=1"`
	Name         *string          `json:"name" binding:"omitempty,min=1,max=100"`
	Price        *decimal.Decimal `json:"price" swaggertype:"number"`
	PhotoURL     *string          `json:"photoUrl" binding:"omitempty,url,max=512"`
}

// List godoc
// @Summary  List haircut services
// @Tags     hair
// @Produce  json
// @Param    page   query int false "page"  default(1)
// @Param    limit  query int false "limit" default(20)
// @Success  200 {object} pagination.Page[models.Hair]
// @Router   /hair [get]
func (h *HairHandler) List(c *gin.Context) {
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
// @Summary   Create a haircut service
// @Tags      hair
// @Security  BearerAuth
// @Param     body body CreateHairRequest true "service"
// @Success   200 {object} CreatedResponse
// @Router    /hair/create [post]
func (h *HairHandler) Create(c *gin.Context) {
	var req CreateHairRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	item, err := h.create.Execute(c.Request.Context(), ucHair.CreateInput{
		BarbershopID: req.BarbershopID,
		Name:         req.Name,
		Price:        *req.Price,
		PhotoURL:     req.PhotoURL,
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, CreatedResponse{ID: item.ID})
}

// Update godoc
// @Summary   Update a haircut service
// @Tags      hair
// @Security  BearerAuth
// @Param     id   path int true "service id"
// @Param     body body UpdateHairRequest true "fields to change"
// @Success   200 {object} models.Hair
// @Router    /hair/{id} [patch]
func (h *HairHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	var req UpdateHairRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	item, err := h.update.Execute(c.Request.Context(), id, ucHair.UpdateInput{
		BarbershopID: req.BarbershopID,
		Name:         req.Name,
		Price:        req.Price,
		PhotoURL:     req.PhotoURL,
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// Delete godoc
// @Summary   Delete a haircut service
// @Tags      hair
// @Security  BearerAuth
// @Param     id path int true "service id"
// @Success   204
// @Router    /hair/{id} [delete]
func (h *HairHandler) Delete(c *gin.Context) {
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

// UploadPhoto godoc
// @Summary   Attach a photo to a haircut service
// @Tags      hair
// @Accept    multipart/form-data
// @Produce   json
// @Security  BearerAuth
// @Param     id    path     int  true "service id"
// @Param     photo formData file true "jpeg, png or webp, up to 5 MiB"
// @Success   200 {object} models.Hair
// @Failure   413 {object} httperr.HTTPError
// @Failure   503 {object} httperr.HTTPError
// @Router    /hair/{id}/photo [post]
func (h *HairHandler) UploadPhoto(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, storage.MaxPhotoBytes+uploadSlack)

	fh, err := c.FormFile("photo")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httperr.Respond(c, h.log, ucHair.ErrPhotoTooLarge)
			return
		}
		httperr.Respond(c, h.log, httperr.ErrInvalidFields(map[string]string{"photo": "is required"}))
		return
	}
	if fh.Size > storage.MaxPhotoBytes {
		httperr.Respond(c, h.log, ucHair.ErrPhotoTooLarge)
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	defer f.Close()

	item, err := h.uploadPhoto.Execute(c.Request.Context(), id, f)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, item)
}
