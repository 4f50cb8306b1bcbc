package handler

import (
	"log/slog"
	"net/http"

	"bokitas/internal/delivery/http/response"
	"bokitas/internal/domain/entity"
	"bokitas/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RestaurantHandlerParams holds dependencies for RestaurantHandler, injected by Fx.
type RestaurantHandlerParams struct {
	fx.In

	RestaurantUC usecase.RestaurantUsecase
	Logger       *slog.Logger
}

// RestaurantHandler holds dependencies for restaurant-related handlers
type RestaurantHandler struct {
	restaurantUC usecase.RestaurantUsecase
	logger       *slog.Logger
}

// NewRestaurantHandler is the constructor for RestaurantHandler
func NewRestaurantHandler(params RestaurantHandlerParams) *RestaurantHandler {
	return &RestaurantHandler{
		restaurantUC: params.RestaurantUC,
		logger:       params.Logger,
	}
}

// restaurantView is the restaurant payload with its linked food types.
type restaurantView struct {
	*entity.Restaurant
	FoodTypes []*entity.FoodType `json:"food_types"`
}

// UpdateRestaurantRequest represents the request body for updating a restaurant
type UpdateRestaurantRequest struct {
	Name          *string `json:"name,omitempty"`
	Address       *string `json:"address,omitempty"`
	CoverPhotoURL *string `json:"cover_photo_url,omitempty"`
	WebsiteURL    *string `json:"website_url,omitempty"`
}

// CreateFoodTypeRequest represents the request body for creating a food type
type CreateFoodTypeRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// GetRestaurant handles fetching a restaurant by local id or external
// catalog id. An unknown external id is materialized on the fly.
func (h *RestaurantHandler) GetRestaurant(c echo.Context) error {
	restaurant, foodTypes, err := h.restaurantUC.GetRestaurant(c.Request().Context(), c.Param("ref"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, restaurantView{
		Restaurant: restaurant,
		FoodTypes:  foodTypes,
	}, "Restaurant retrieved successfully")
}

// UpdateRestaurant handles a partial update of the shared restaurant attributes.
func (h *RestaurantHandler) UpdateRestaurant(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid restaurant ID")
	}

	var req UpdateRestaurantRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid restaurant update input")
	}

	restaurant, err := h.restaurantUC.UpdateRestaurant(c.Request().Context(), id, entity.RestaurantUpdate{
		Name:          req.Name,
		Address:       req.Address,
		CoverPhotoURL: req.CoverPhotoURL,
		WebsiteURL:    req.WebsiteURL,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, restaurant, "Restaurant updated successfully")
}

// ListFoodTypes handles retrieving all active food types.
func (h *RestaurantHandler) ListFoodTypes(c echo.Context) error {
	foodTypes, err := h.restaurantUC.ListFoodTypes(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, foodTypes, "Food types retrieved successfully")
}

// CreateFoodType handles adding a user-created food type.
func (h *RestaurantHandler) CreateFoodType(c echo.Context) error {
	var req CreateFoodTypeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid food type input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Food type name is required")
	}

	foodType, err := h.restaurantUC.CreateFoodType(c.Request().Context(), req.Name)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, foodType, "Food type created successfully")
}
