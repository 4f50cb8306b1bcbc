// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bokitas/internal/delivery/http/middleware"
	"bokitas/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RestaurantHandler  *handler.RestaurantHandler
	ReviewHandler      *handler.ReviewHandler
	EatlistHandler     *handler.EatlistHandler
	IdentityMiddleware *middleware.IdentityMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	restaurantHandler  *handler.RestaurantHandler
	reviewHandler      *handler.ReviewHandler
	eatlistHandler     *handler.EatlistHandler
	identityMiddleware *middleware.IdentityMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		restaurantHandler:  params.RestaurantHandler,
		reviewHandler:      params.ReviewHandler,
		eatlistHandler:     params.EatlistHandler,
		identityMiddleware: params.IdentityMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public restaurant routes; the ref may be a local UUID or an external
	// catalog id.
	restaurantGroup := e.Group("/restaurants")
	{
		restaurantGroup.GET("/:ref", r.restaurantHandler.GetRestaurant)
		restaurantGroup.GET("/:ref/reviews", r.reviewHandler.ListRestaurantReviews)
	}

	// Restaurant mutations require an identified caller.
	restaurantAuthGroup := e.Group("/restaurants")
	restaurantAuthGroup.Use(r.identityMiddleware.RequireUser)
	{
		restaurantAuthGroup.PATCH("/:id", r.restaurantHandler.UpdateRestaurant)
	}

	// Food type routes
	foodTypeGroup := e.Group("/food-types")
	{
		foodTypeGroup.GET("", r.restaurantHandler.ListFoodTypes)
	}
	foodTypeAuthGroup := e.Group("/food-types")
	foodTypeAuthGroup.Use(r.identityMiddleware.RequireUser)
	{
		foodTypeAuthGroup.POST("", r.restaurantHandler.CreateFoodType)
	}

	// Review routes that require an identified caller
	reviewGroup := e.Group("/reviews")
	reviewGroup.Use(r.identityMiddleware.RequireUser)
	{
		reviewGroup.POST("", r.reviewHandler.CreateReview)
		reviewGroup.GET("/mine", r.reviewHandler.ListMyReviews)
		reviewGroup.PATCH("/:id", r.reviewHandler.UpdateReview)
		reviewGroup.DELETE("/:id", r.reviewHandler.DeleteReview)
		reviewGroup.POST("/:id/photo", r.reviewHandler.UploadReviewPhoto)
	}

	// Eatlist routes that require an identified caller
	eatlistGroup := e.Group("/eatlist")
	eatlistGroup.Use(r.identityMiddleware.RequireUser)
	{
		eatlistGroup.POST("", r.eatlistHandler.AddToEatlist)
		eatlistGroup.GET("", r.eatlistHandler.ListEatlist)
		eatlistGroup.PATCH("/:restaurantId/visited", r.eatlistHandler.UpdateVisited)
		eatlistGroup.DELETE("/:restaurantId", r.eatlistHandler.RemoveFromEatlist)
	}
}
