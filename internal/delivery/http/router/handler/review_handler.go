package handler

import (
	"log/slog"
	"net/http"

	"bokitas/internal/delivery/http/middleware"
	"bokitas/internal/delivery/http/response"
	"bokitas/internal/domain/service"
	"bokitas/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC     usecase.ReviewUsecase
	PhotoStorage service.PhotoStorage
	Logger       *slog.Logger
}

// ReviewHandler holds dependencies for review-related handlers
type ReviewHandler struct {
	reviewUC     usecase.ReviewUsecase
	photoStorage service.PhotoStorage
	logger       *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC:     params.ReviewUC,
		photoStorage: params.PhotoStorage,
		logger:       params.Logger,
	}
}

// CreateReviewRequest represents the request body for creating a review
type CreateReviewRequest struct {
	RestaurantRef string `json:"restaurant_ref" validate:"required"`
	Rating        int    `json:"rating" validate:"required,min=1,max=5"`
	Comment       string `json:"comment,omitempty" validate:"max=1000"`
}

// UpdateReviewRequest represents the request body for updating a review
type UpdateReviewRequest struct {
	Rating  *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Comment *string `json:"comment,omitempty" validate:"omitempty,max=1000"`
}

// CreateReview handles creating a review for a restaurant.
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	authorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_IDENTITY", "Missing user identity")
	}

	var req CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid review fields")
	}

	review, err := h.reviewUC.CreateReview(c.Request().Context(), authorID, usecase.CreateReviewInput{
		RestaurantRef: req.RestaurantRef,
		Rating:        req.Rating,
		Comment:       req.Comment,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, review, "Review created successfully")
}

// UpdateReview handles an author updating their review.
func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	authorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_IDENTITY", "Missing user identity")
	}

	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid review ID")
	}

	var req UpdateReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review update input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid review fields")
	}

	review, err := h.reviewUC.UpdateReview(c.Request().Context(), reviewID, authorID, req.Rating, req.Comment)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, review, "Review updated successfully")
}

// DeleteReview handles an author soft-deleting their review.
func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	authorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_IDENTITY", "Missing user identity")
	}

	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid review ID")
	}

	if err := h.reviewUC.DeleteReview(c.Request().Context(), reviewID, authorID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Review deleted"}, "Review deleted successfully")
}

// UploadReviewPhoto handles a multipart photo upload for a review. The stored
// photo URL is attached to the review, and becomes the restaurant's cover
// photo when none is set yet.
func (h *ReviewHandler) UploadReviewPhoto(c echo.Context) error {
	authorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_IDENTITY", "Missing user identity")
	}

	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid review ID")
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Missing photo file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Unreadable photo file")
	}
	defer file.Close()

	photoURL, err := h.photoStorage.Upload(c.Request().Context(), authorID, fileHeader.Header.Get("Content-Type"), file)
	if err != nil {
		h.logger.ErrorContext(c.Request().Context(), "Photo upload failed",
			slog.String("reviewID", reviewID.String()),
			slog.Any("error", err),
		)

		return response.HandleAppError(c, err)
	}

	review, err := h.reviewUC.AttachReviewPhoto(c.Request().Context(), reviewID, authorID, photoURL)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, review, "Review photo uploaded successfully")
}

// ListRestaurantReviews handles retrieving the active reviews of a restaurant.
func (h *ReviewHandler) ListRestaurantReviews(c echo.Context) error {
	reviews, err := h.reviewUC.ListRestaurantReviews(c.Request().Context(), c.Param("ref"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reviews, "Reviews retrieved successfully")
}

// ListMyReviews handles retrieving the caller's active reviews.
func (h *ReviewHandler) ListMyReviews(c echo.Context) error {
	authorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_IDENTITY", "Missing user identity")
	}

	reviews, err := h.reviewUC.ListAuthorReviews(c.Request().Context(), authorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reviews, "Reviews retrieved successfully")
}
