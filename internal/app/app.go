package app

import (
	"context"
	"log"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/humanbelnik/cineverse/internal/config"
	http_init "github.com/humanbelnik/cineverse/internal/delivery/http/init"
	http_movie "github.com/humanbelnik/cineverse/internal/delivery/http/movie"
	http_notification "github.com/humanbelnik/cineverse/internal/delivery/http/notification"
	http_recommendation "github.com/humanbelnik/cineverse/internal/delivery/http/recommendation"
	http_swagger "github.com/humanbelnik/cineverse/internal/delivery/http/swagger"
	http_user "github.com/humanbelnik/cineverse/internal/delivery/http/user"
	http_watchparty "github.com/humanbelnik/cineverse/internal/delivery/http/watchparty"
	infra_mongo_init "github.com/humanbelnik/cineverse/internal/infra/mongo/init"
	infra_mongo_notification "github.com/humanbelnik/cineverse/internal/infra/mongo/notification"
	infra_mongo_recommendation "github.com/humanbelnik/cineverse/internal/infra/mongo/recommendation"
	infra_mongo_user "github.com/humanbelnik/cineverse/internal/infra/mongo/user"
	infra_mongo_watchparty "github.com/humanbelnik/cineverse/internal/infra/mongo/watchparty"
	infra_pg_init "github.com/humanbelnik/cineverse/internal/infra/postgres/init"
	infra_postgres_notification "github.com/humanbelnik/cineverse/internal/infra/postgres/notification"
	infra_postgres_recommendation "github.com/humanbelnik/cineverse/internal/infra/postgres/recommendation"
	infra_postgres_user "github.com/humanbelnik/cineverse/internal/infra/postgres/user"
	infra_postgres_watchparty "github.com/humanbelnik/cineverse/internal/infra/postgres/watchparty"
	infra_redis_catalog "github.com/humanbelnik/cineverse/internal/infra/redis/catalog"
	infra_redis_init "github.com/humanbelnik/cineverse/internal/infra/redis/init"
	infra_tmdb "github.com/humanbelnik/cineverse/internal/infra/tmdb"
	usecase_catalog "github.com/humanbelnik/cineverse/internal/usecase/catalog"
	usecase_notification "github.com/humanbelnik/cineverse/internal/usecase/notification"
	usecase_recommendation "github.com/humanbelnik/cineverse/internal/usecase/recommendation"
	usecase_user "github.com/humanbelnik/cineverse/internal/usecase/user"
	usecase_watchparty "github.com/humanbelnik/cineverse/internal/usecase/watchparty"
)

type stores struct {
	watchParties    usecase_watchparty.Repository
	users           usecase_user.Repository
	notifications   usecase_notification.Repository
	recommendations usecase_recommendation.Repository
	close           func()
}

func Go(cfg *config.Config) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)
	gin.SetMode(cfg.HTTP.Mode)

	st := mustOpenStores(cfg)
	defer st.close()

	catalogUC := usecase_catalog.New(infra_tmdb.New(cfg.TMDB, logger), nil, cfg.TMDB.CacheTTL).WithLogger(logger)
	if redisConn, err := infra_redis_init.Connect(cfg.Redis); err != nil {
		logger.Warn("catalog cache disabled", slog.String("error", err.Error()))
	} else {
		defer redisConn.Close()
		catalogUC.Cache = infra_redis_catalog.New(redisConn, cfg.TMDB.CacheKey)
	}

	watchPartyUC := usecase_watchparty.New(st.watchParties, usecase_watchparty.WithLogger(logger))
	userUC := usecase_user.New(st.users, usecase_user.WithLogger(logger))
	notificationUC := usecase_notification.New(st.notifications, usecase_notification.WithLogger(logger))
	recommendationUC := usecase_recommendation.New(st.recommendations, usecase_recommendation.WithLogger(logger))

	controllerPool := http_init.NewControllerPool(cfg.HTTP.ClientURL)
	controllerPool.Add(http_swagger.New())
	controllerPool.Add(http_watchparty.New(watchPartyUC).WithLogger(logger))
	controllerPool.Add(http_user.New(userUC))
	controllerPool.Add(http_notification.New(notificationUC))
	controllerPool.Add(http_recommendation.New(recommendationUC))
	controllerPool.Add(http_movie.New(catalogUC))
	controllerPool.Register()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := controllerPool.RunAll(ctx, net.JoinHostPort(cfg.HTTP.Host, cfg.HTTP.Port)); err != nil {
		log.Fatalf("failed to run HTTP server: %v", err)
	}
}

func mustOpenStores(cfg *config.Config) stores {
	switch cfg.Store.Driver {
	case config.StoreMongo:
		db := infra_mongo_init.MustEstablishConn(cfg.Mongo)
		return stores{
			watchParties:    infra_mongo_watchparty.New(db),
			users:           infra_mongo_user.New(db),
			notifications:   infra_mongo_notification.New(db),
			recommendations: infra_mongo_recommendation.New(db),
			close: func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := db.Client().Disconnect(ctx); err != nil {
					slog.Error("mongo disconnect failed", slog.String("error", err.Error()))
				}
			},
		}
	default:
		db := infra_pg_init.MustEstablishConn(cfg.Postgres)
		return stores{
			watchParties:    infra_postgres_watchparty.New(db),
			users:           infra_postgres_user.New(db),
			notifications:   infra_postgres_notification.New(db),
			recommendations: infra_postgres_recommendation.New(db),
			close: func() {
				if err := db.Close(); err != nil {
					slog.Error("postgres close failed", slog.String("error", err.Error()))
				}
			},
		}
	}
}
