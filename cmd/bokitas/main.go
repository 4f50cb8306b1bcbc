package main

import (
	"context"
	"log/slog"
	"os"

	"bokitas/config"
	"bokitas/internal/delivery"
	"bokitas/internal/delivery/http"
	"bokitas/internal/delivery/http/middleware"
	"bokitas/internal/delivery/http/router/handler"
	"bokitas/internal/domain/repository"
	"bokitas/internal/domain/service"
	"bokitas/internal/domain/taxonomy"
	"bokitas/internal/infra/catalog/foursquare"
	logs "bokitas/internal/infra/log"
	"bokitas/internal/infra/persistence/postgres"
	"bokitas/internal/infra/photo"
	"bokitas/internal/usecase"
	"bokitas/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			seedBaseFoodTypes,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewRestaurantRepository,
			postgres.NewFoodTypeRepository,
			postgres.NewReviewRepository,
			postgres.NewEatlistRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newCatalogClient,
			photo.New,
		),
	)
}

// newCatalogClient creates the place catalog client with dependency injection
func newCatalogClient(cfg *config.Config) (service.PlaceCatalogClient, error) {
	return foursquare.New(cfg.Catalog)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRestaurantService,
			impl.NewRatingAggregator,
			impl.NewReviewService,
			impl.NewEatlistService,
			// The review and eatlist services depend on the narrow resolver
			// view of the restaurant use case.
			func(uc usecase.RestaurantUsecase) usecase.RestaurantResolver { return uc },
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewIdentityMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewRestaurantHandler,
			handler.NewReviewHandler,
			handler.NewEatlistHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// seedBaseFoodTypes makes sure the fixed taxonomy rows exist before the
// service starts taking traffic. Existing rows are left untouched.
func seedBaseFoodTypes(ctx context.Context, foodTypeRepo repository.FoodTypeRepository, logger *slog.Logger) error {
	if err := foodTypeRepo.SeedFoodTypes(ctx, taxonomy.BaseFoodTypes()); err != nil {
		return err
	}

	logger.Debug("base food types seeded")

	return nil
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
