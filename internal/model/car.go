package model

import (
	"context"
	"fmt"
	"io"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CarStore defines persistence operations for car listings. Every read and
// write except Create is scoped to an owner.
type CarStore interface {
	Create(ctx context.Context, car Car) (Car, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, search string) ([]Car, error)
	GetByIDAndOwner(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (Car, error)
	Update(ctx context.Context, car Car) (Car, error)
	DeleteByIDAndOwner(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (int64, error)
}

// Car represents a stored car listing.
type Car struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	Description string
	Tags        []string
	Images      []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ImageUpload is one uploaded image part waiting to be stored.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// CreateCarParams contains parameters to create a car listing.
type CreateCarParams struct {
	OwnerID     uuid.UUID
	Title       string
	Description string
	Tags        []string
	Images      []ImageUpload
}

// DeleteResult reports the outcome of a delete.
type DeleteResult struct {
	Acknowledged bool
	DeletedCount int64
}

// Car fields that an update may name.
const (
	CarFieldTitle       = "title"
	CarFieldDescription = "description"
	CarFieldTags        = "tags"
	CarFieldImages      = "images"
)

// AllowedCarUpdates is the allow-list of update payload keys.
var AllowedCarUpdates = []string{CarFieldTitle, CarFieldDescription, CarFieldTags, CarFieldImages}

// CarUpdate is a validated partial update. Nil fields are left untouched.
// A non-empty Images slice replaces the whole image sequence.
type CarUpdate struct {
	Title       *string
	Description *string
	Tags        []string
	SetTags     bool
	Images      []ImageUpload
}

// NewCarUpdate builds a CarUpdate from submitted fields. Any key outside
// AllowedCarUpdates rejects the whole update with ErrInvalidUpdate. A
// submitted "images" field value is accepted but ignored; images only come
// from uploaded files.
func NewCarUpdate(fields map[string][]string, images []ImageUpload) (CarUpdate, error) {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if !slices.Contains(AllowedCarUpdates, key) {
			return CarUpdate{}, fmt.Errorf("%w: %q is not updatable", ErrInvalidUpdate, key)
		}
	}

	var update CarUpdate
	if values, ok := fields[CarFieldTitle]; ok {
		title, err := requiredText(CarFieldTitle, values)
		if err != nil {
			return CarUpdate{}, err
		}
		update.Title = &title
	}
	if values, ok := fields[CarFieldDescription]; ok {
		description, err := requiredText(CarFieldDescription, values)
		if err != nil {
			return CarUpdate{}, err
		}
		update.Description = &description
	}
	if values, ok := fields[CarFieldTags]; ok {
		update.Tags = CleanTags(values)
		update.SetTags = true
	}
	update.Images = images

	return update, nil
}

// Apply writes the scalar fields of the update onto car. Image replacement is
// handled by the caller because it involves storage.
func (u CarUpdate) Apply(car *Car) {
	if u.Title != nil {
		car.Title = *u.Title
	}
	if u.Description != nil {
		car.Description = *u.Description
	}
	if u.SetTags {
		car.Tags = u.Tags
	}
}

// IsEmpty reports whether the update changes nothing.
func (u CarUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && !u.SetTags && len(u.Images) == 0
}

// CleanTags trims tags and drops empty ones, keeping order.
func CleanTags(values []string) []string {
	tags := make([]string, 0, len(values))
	for _, v := range values {
		if tag := strings.TrimSpace(v); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// requiredText returns the trimmed first value, which must not be blank.
func requiredText(field string, values []string) (string, error) {
	var text string
	if len(values) > 0 {
		text = strings.TrimSpace(values[0])
	}
	if text == "" {
		return "", fmt.Errorf("%w: %s must not be empty", ErrValidation, field)
	}
	return text, nil
}
