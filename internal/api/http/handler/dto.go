package handler

import (
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/carlisting-server/internal/model"
)

type signupRequest struct {
	Name     string `json:"name" form:"name" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type userResponse struct {
	ID        uuid.UUID `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type sessionResponse struct {
	User  userResponse `json:"user"`
	Token string       `json:"token"`
}

type carResponse struct {
	ID          uuid.UUID `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	Images      []string  `json:"images"`
	Owner       uuid.UUID `json:"owner"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type carEnvelope struct {
	Car carResponse `json:"car"`
}

type carsEnvelope struct {
	Cars []carResponse `json:"cars"`
}

type deleteResponse struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func newUserResponse(u model.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func newSessionResponse(s model.Session) sessionResponse {
	return sessionResponse{User: newUserResponse(s.User), Token: s.Token}
}

func newCarResponse(c model.Car) carResponse {
	tags, images := c.Tags, c.Images
	if tags == nil {
		tags = []string{}
	}
	if images == nil {
		images = []string{}
	}
	return carResponse{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Tags:        tags,
		Images:      images,
		Owner:       c.OwnerID,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func newCarsEnvelope(cars []model.Car) carsEnvelope {
	out := make([]carResponse, 0, len(cars))
	for _, c := range cars {
		out = append(out, newCarResponse(c))
	}
	return carsEnvelope{Cars: out}
}
