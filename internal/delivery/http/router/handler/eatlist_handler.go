package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"bokitas/internal/delivery/http/middleware"
	"bokitas/internal/delivery/http/response"
	"bokitas/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EatlistHandlerParams holds dependencies for EatlistHandler, injected by Fx.
type EatlistHandlerParams struct {
	fx.In

	EatlistUC usecase.EatlistUsecase
	Logger    *slog.Logger
}

// EatlistHandler holds dependencies for eatlist-related handlers
type EatlistHandler struct {
	eatlistUC usecase.EatlistUsecase
	logger    *slog.Logger
}

// NewEatlistHandler is the constructor for EatlistHandler
func NewEatlistHandler(params EatlistHandlerParams) *EatlistHandler {
	return &EatlistHandler{
		eatlistUC: params.EatlistUC,
		logger:    params.Logger,
	}
}

// AddToEatlistRequest represents the request body for saving a restaurant
type AddToEatlistRequest struct {
	RestaurantRef string `json:"restaurant_ref" validate:"required"`
	Visited       bool   `json:"visited"`
}

// UpdateVisitedRequest represents the request body for flipping the visited flag
type UpdateVisitedRequest struct {
	Visited bool `json:"visited"`
}

// AddToEatlist handles saving a restaurant to the caller's eatlist.
func (h *EatlistHandler) AddToEatlist(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_IDENTITY", "Missing user identity")
	}

	var req AddToEatlistRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid eatlist input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Restaurant reference is required")
	}

	entry, reactivated, err := h.eatlistUC.AddToEatlist(c.Request().Context(), userID, req.RestaurantRef, req.Visited)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	statusCode := http.StatusCreated
	message := "Restaurant added to eatlist"
	if reactivated {
		statusCode = http.StatusOK
		message = "Eatlist entry restored"
	}

	return response.Success(c, statusCode, entry, message)
}

// UpdateVisited handles flipping the visited flag of an eatlist entry.
func (h *EatlistHandler) UpdateVisited(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_IDENTITY", "Missing user identity")
	}

	restaurantID, err := uuid.Parse(c.Param("restaurantId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid restaurant ID")
	}

	var req UpdateVisitedRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid visited input")
	}

	if err := h.eatlistUC.UpdateVisited(c.Request().Context(), userID, restaurantID, req.Visited); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"visited": req.Visited}, "Visited flag updated")
}

// RemoveFromEatlist handles removing a restaurant from the caller's eatlist.
func (h *EatlistHandler) RemoveFromEatlist(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_IDENTITY", "Missing user identity")
	}

	restaurantID, err := uuid.Parse(c.Param("restaurantId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid restaurant ID")
	}

	if err := h.eatlistUC.RemoveFromEatlist(c.Request().Context(), userID, restaurantID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Removed from eatlist"}, "Restaurant removed from eatlist")
}

// ListEatlist handles retrieving the caller's eatlist, optionally filtered by
// the visited query parameter.
func (h *EatlistHandler) ListEatlist(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_IDENTITY", "Missing user identity")
	}

	var visited *bool
	if raw := c.QueryParam("visited"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid visited filter")
		}
		visited = &parsed
	}

	items, err := h.eatlistUC.ListEatlist(c.Request().Context(), userID, visited)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items, "Eatlist retrieved successfully")
}
