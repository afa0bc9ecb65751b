package app

import (
	"github.com/gorilla/mux"

	"dailydigest/internal/config"
	"dailydigest/internal/db"
	"dailydigest/internal/handlers"
	"dailydigest/internal/repository"
	"dailydigest/internal/routes"
	"dailydigest/internal/services"
)

func InitApp(cfg *config.Config) (*mux.Router, error) {
	conn, err := db.NewPostgresConnection(cfg)
	if err != nil {
		return nil, err
	}

	// Репозитории
	articleRepo := repository.NewArticleRepo(conn)
	userRepo := repository.NewUserRepo(conn)
	bookmarkRepo := repository.NewBookmarkRepo(conn)
	likeRepo := repository.NewLikeRepo(conn)

	// Сервисы
	articleSvc := services.NewArticleService(articleRepo, cfg)
	authSvc := services.NewAuthService(userRepo)
	bookmarkSvc := services.NewBookmarkService(bookmarkRepo)
	likeSvc := services.NewLikeService(likeRepo)

	// Хендлеры
	articleHandler := handlers.NewArticleHandler(articleSvc)
	authHandler := handlers.NewAuthHandler(authSvc, cfg)
	bookmarkHandler := handlers.NewBookmarkHandler(bookmarkSvc, articleSvc)
	likeHandler := handlers.NewLikeHandler(likeSvc)
	healthHandler := handlers.NewHealthHandler(conn)

	// Маршруты
	router := mux.NewRouter()
	routes.InitRoutes(router, cfg, articleHandler, authHandler, bookmarkHandler, likeHandler, healthHandler)

	return router, nil
}
