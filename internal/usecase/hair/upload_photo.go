package hair

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	domainHair "github.com/BruksfildServices01/barbershop-api/internal/domain/hair"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/storage"
	"github.com/BruksfildServices01/barbershop-api/internal/usecase"
)

// UploadPhoto transcodes a photo to webp, stores it and points the haircut
// service at it. A nil store means uploads are disabled.
type UploadPhoto struct {
	repo   domainHair.Repository
	photos storage.PhotoStore
	audit  *audit.Dispatcher
}

func NewUploadPhoto(
	repo domainHair.Repository,
	photos storage.PhotoStore,
	audit *audit.Dispatcher,
) *UploadPhoto {
	return &UploadPhoto{repo: repo, photos: photos, audit: audit}
}

func (uc *UploadPhoto) Execute(ctx context.Context, id uint, photo io.Reader) (*models.Hair, error) {
	if uc.photos == nil {
		return nil, ErrPhotoStorageDisabled
	}

	h, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, usecase.NotFoundAs(err, ErrNotFound)
	}

	body, err := storage.EncodeWebP(photo)
	switch {
	case errors.Is(err, storage.ErrPhotoTooLarge):
		return nil, ErrPhotoTooLarge
	case errors.Is(err, storage.ErrUnsupportedPhoto):
		return nil, ErrUnsupportedPhoto
	case err != nil:
		return nil, err
	}

	key := fmt.Sprintf("hair/%d/%s.webp", h.BarbershopID, uuid.NewString())
	url, err := uc.photos.Put(ctx, key, body, "image/webp")
	if err != nil {
		return nil, err
	}

	h.PhotoURL = url
	if err := uc.repo.Update(ctx, h); err != nil {
		// no row references the object now
		if delErr := uc.photos.Delete(context.WithoutCancel(ctx), key); delErr != nil {
			err = errors.Join(err, delErr)
		}
		return nil, usecase.NotFoundAs(err, ErrNotFound)
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: h.BarbershopID,
		Action:       "hair_photo_uploaded",
		Entity:       "hair",
		EntityID:     &h.ID,
		Metadata:     map[string]string{"key": key},
	})

	return h, nil
}
