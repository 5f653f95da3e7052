package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/carlisting-server/internal/apierror"
	"github.com/dtroode/carlisting-server/internal/logger"
	"github.com/dtroode/carlisting-server/internal/model"
)

// Cars manages car listings on behalf of their owners. Every lookup is
// scoped to the calling owner, so a car of someone else is reported as not
// found.
type Cars struct {
	store   model.CarStore
	storage model.Storage
	limits  UploadLimits
	logger  *logger.Logger
	now     func() time.Time
}

func NewCars(store model.CarStore, storage model.Storage, limits UploadLimits, logger *logger.Logger) *Cars {
	return &Cars{
		store:   store,
		storage: storage,
		limits:  limits,
		logger:  logger,
		now:     time.Now,
	}
}

// CreateCar stores the uploaded images and creates a car owned by
// params.OwnerID.
func (s *Cars) CreateCar(ctx context.Context, params model.CreateCarParams) (model.Car, error) {
	title := strings.TrimSpace(params.Title)
	description := strings.TrimSpace(params.Description)
	if title == "" || description == "" {
		return model.Car{}, apierror.NewErrValidation("title and description are required")
	}
	if err := s.limits.validate(params.Images); err != nil {
		return model.Car{}, err
	}

	keys, err := s.uploadImages(ctx, params.Images)
	if err != nil {
		return model.Car{}, err
	}

	now := s.now()
	car, err := s.store.Create(ctx, model.Car{
		ID:          uuid.New(),
		OwnerID:     params.OwnerID,
		Title:       title,
		Description: description,
		Tags:        model.CleanTags(params.Tags),
		Images:      keys,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		s.removeImages(ctx, keys)
		s.logger.Error("Car service: failed to create car",
			"owner_id", params.OwnerID,
			"error", err.Error())
		return model.Car{}, fmt.Errorf("failed to create car: %w", err)
	}

	s.logger.Info("Car service: car created",
		"car_id", car.ID,
		"owner_id", car.OwnerID,
		"images", len(keys))

	return car, nil
}

// ListCars returns the owner's cars, optionally filtered by search.
func (s *Cars) ListCars(ctx context.Context, ownerID uuid.UUID, search string) ([]model.Car, error) {
	cars, err := s.store.ListByOwner(ctx, ownerID, search)
	if err != nil {
		return nil, fmt.Errorf("failed to list cars: %w", err)
	}
	if cars == nil {
		cars = []model.Car{}
	}
	return cars, nil
}

func (s *Cars) GetCar(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (model.Car, error) {
	car, err := s.store.GetByIDAndOwner(ctx, id, ownerID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Car{}, apierror.NewErrCarNotFound(id)
	}
	if err != nil {
		return model.Car{}, fmt.Errorf("failed to get car: %w", err)
	}
	return car, nil
}

// UpdateCar applies update to the owner's car. Uploaded images replace the
// previous image sequence as a whole, and the replaced objects are removed
// from storage.
func (s *Cars) UpdateCar(ctx context.Context, id uuid.UUID, ownerID uuid.UUID, update model.CarUpdate) (model.Car, error) {
	if err := s.limits.validate(update.Images); err != nil {
		return model.Car{}, err
	}

	car, err := s.GetCar(ctx, id, ownerID)
	if err != nil {
		return model.Car{}, err
	}
	if update.IsEmpty() {
		return car, nil
	}

	update.Apply(&car)

	var replaced, uploaded []string
	if len(update.Images) > 0 {
		uploaded, err = s.uploadImages(ctx, update.Images)
		if err != nil {
			return model.Car{}, err
		}
		replaced, car.Images = car.Images, uploaded
	}
	car.UpdatedAt = s.now()

	saved, err := s.store.Update(ctx, car)
	if err != nil {
		s.removeImages(ctx, uploaded)
		if errors.Is(err, model.ErrNotFound) {
			return model.Car{}, apierror.NewErrCarNotFound(id)
		}
		s.logger.Error("Car service: failed to update car",
			"car_id", id,
			"error", err.Error())
		return model.Car{}, fmt.Errorf("failed to update car: %w", err)
	}

	s.removeImages(ctx, replaced)

	s.logger.Info("Car service: car updated",
		"car_id", saved.ID,
		"replaced_images", len(replaced))

	return saved, nil
}

// DeleteCar removes the owner's car together with its images.
func (s *Cars) DeleteCar(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (model.DeleteResult, error) {
	car, err := s.GetCar(ctx, id, ownerID)
	if err != nil {
		return model.DeleteResult{}, err
	}

	deleted, err := s.store.DeleteByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return model.DeleteResult{}, fmt.Errorf("failed to delete car: %w", err)
	}
	if deleted == 0 {
		return model.DeleteResult{}, apierror.NewErrCarNotFound(id)
	}

	s.removeImages(ctx, car.Images)

	s.logger.Info("Car service: car deleted",
		"car_id", id,
		"owner_id", ownerID)

	return model.DeleteResult{Acknowledged: true, DeletedCount: deleted}, nil
}

// GetImage opens a stored image for streaming. The caller closes it.
func (s *Cars) GetImage(ctx context.Context, key string) (io.ReadCloser, error) {
	if !validImageKey(key) {
		return nil, apierror.NewErrImageNotFound(key)
	}

	rc, err := s.storage.Download(ctx, key)
	if errors.Is(err, model.ErrNotFound) {
		return nil, apierror.NewErrImageNotFound(key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	return rc, nil
}

func (s *Cars) uploadImages(ctx context.Context, images []model.ImageUpload) ([]string, error) {
	keys := make([]string, 0, len(images))
	for _, img := range images {
		key := imageKey(s.now(), img.Filename)
		if err := s.storage.Upload(ctx, key, img.Reader, img.Size, img.ContentType); err != nil {
			s.removeImages(ctx, keys)
			return nil, fmt.Errorf("failed to upload image %s: %w", img.Filename, err)
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// removeImages deletes objects on a best-effort basis; failures leave
// orphans behind and are only logged.
func (s *Cars) removeImages(ctx context.Context, keys []string) {
	for _, key := range keys {
		if err := s.storage.Delete(ctx, key); err != nil {
			s.logger.Warn("Car service: failed to remove image",
				"key", key,
				"error", err.Error())
		}
	}
}
