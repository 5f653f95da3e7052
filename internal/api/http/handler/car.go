package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dtroode/carlisting-server/internal/apierror"
	"github.com/dtroode/carlisting-server/internal/logger"
	"github.com/dtroode/carlisting-server/internal/model"
)

// CarService defines owner-scoped car listing operations.
type CarService interface {
	CreateCar(ctx context.Context, params model.CreateCarParams) (model.Car, error)
	ListCars(ctx context.Context, ownerID uuid.UUID, search string) ([]model.Car, error)
	GetCar(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (model.Car, error)
	UpdateCar(ctx context.Context, id uuid.UUID, ownerID uuid.UUID, update model.CarUpdate) (model.Car, error)
	DeleteCar(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (model.DeleteResult, error)
	GetImage(ctx context.Context, key string) (io.ReadCloser, error)
}

// Car handles the car listing endpoints. All of them except images
// require an authenticated user in the request context.
type Car struct {
	carService     CarService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewCar creates a new Car handler.
func NewCar(carService CarService, contextManager model.ContextManager, logger *logger.Logger) *Car {
	return &Car{
		carService:     carService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Create handles POST /car/create. Any owner field in the body is ignored.
func (h *Car) Create(c echo.Context) error {
	user, err := h.currentUser(c)
	if err != nil {
		return err
	}

	sub, err := readSubmission(c)
	if err != nil {
		return err
	}
	defer sub.Close()

	car, err := h.carService.CreateCar(c.Request().Context(), model.CreateCarParams{
		OwnerID:     user.ID,
		Title:       firstValue(sub.fields, model.CarFieldTitle),
		Description: firstValue(sub.fields, model.CarFieldDescription),
		Tags:        sub.fields[model.CarFieldTags],
		Images:      sub.images,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, carEnvelope{Car: newCarResponse(car)})
}

// List handles GET /cars.
func (h *Car) List(c echo.Context) error {
	user, err := h.currentUser(c)
	if err != nil {
		return err
	}

	cars, err := h.carService.ListCars(c.Request().Context(), user.ID, c.QueryParam("search"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newCarsEnvelope(cars))
}

// Get handles GET /car/:id. It answers 201, which existing clients expect.
func (h *Car) Get(c echo.Context) error {
	user, err := h.currentUser(c)
	if err != nil {
		return err
	}
	id, err := carID(c)
	if err != nil {
		return err
	}

	car, err := h.carService.GetCar(c.Request().Context(), id, user.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, carEnvelope{Car: newCarResponse(car)})
}

// Update handles PATCH /car/:id. The body keys are checked against the
// allow-list before the car is looked up.
func (h *Car) Update(c echo.Context) error {
	user, err := h.currentUser(c)
	if err != nil {
		return err
	}
	id, err := carID(c)
	if err != nil {
		return err
	}

	sub, err := readSubmission(c)
	if err != nil {
		return err
	}
	defer sub.Close()

	update, err := model.NewCarUpdate(sub.fields, sub.images)
	if err != nil {
		return err
	}

	car, err := h.carService.UpdateCar(c.Request().Context(), id, user.ID, update)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newCarResponse(car))
}

// Delete handles DELETE /car/:id.
func (h *Car) Delete(c echo.Context) error {
	user, err := h.currentUser(c)
	if err != nil {
		return err
	}
	id, err := carID(c)
	if err != nil {
		return err
	}

	res, err := h.carService.DeleteCar(c.Request().Context(), id, user.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, deleteResponse{Acknowledged: res.Acknowledged, DeletedCount: res.DeletedCount})
}

func (h *Car) currentUser(c echo.Context) (model.User, error) {
	user, ok := h.contextManager.GetUserFromContext(c.Request().Context())
	if !ok {
		return model.User{}, apierror.NewErrUnauthenticated()
	}
	return user, nil
}

// carID parses the :id path parameter. A malformed id cannot name any car
// and is reported as not found.
func carID(c echo.Context) (uuid.UUID, error) {
	raw := c.Param("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apierror.New(http.StatusNotFound, fmt.Sprintf("car %s not found", raw))
	}
	return id, nil
}
