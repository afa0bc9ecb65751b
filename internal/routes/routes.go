package routes

import (
	"github.com/gorilla/mux"

	"dailydigest/internal/config"
	"dailydigest/internal/handlers"
	"dailydigest/internal/middleware"
)

func InitRoutes(
	router *mux.Router,
	cfg *config.Config,
	articleHandler *handlers.ArticleHandler,
	authHandler *handlers.AuthHandler,
	bookmarkHandler *handlers.BookmarkHandler,
	likeHandler *handlers.LikeHandler,
	healthHandler *handlers.HealthHandler,
) {
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Logging)

	router.HandleFunc("/health", healthHandler.Health).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()

	// --- Публичные маршруты ---
	api.HandleFunc("/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/refresh", authHandler.Refresh).Methods("POST")

	api.HandleFunc("/articles", articleHandler.List).Methods("GET")
	api.HandleFunc("/articles/categories", articleHandler.Categories).Methods("GET")
	api.HandleFunc("/articles/{id}", articleHandler.GetByID).Methods("GET")

	// --- Вебхук скрейпера (доступ по общему секрету) ---
	ingest := api.PathPrefix("/articles").Subrouter()
	ingest.Use(middleware.WebhookSecret(cfg.WebhookSecret))
	ingest.HandleFunc("", articleHandler.Ingest).Methods("POST")

	// --- Защищённые JWT ---
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.JWTAuth(cfg.JWTSecret))

	protected.HandleFunc("/logout", authHandler.Logout).Methods("POST")
	protected.HandleFunc("/profile", authHandler.Profile).Methods("GET")

	protected.HandleFunc("/bookmarks", bookmarkHandler.List).Methods("GET")
	protected.HandleFunc("/articles/{id}/bookmark", bookmarkHandler.Add).Methods("POST")
	protected.HandleFunc("/articles/{id}/bookmark", bookmarkHandler.Remove).Methods("DELETE")
	protected.HandleFunc("/articles/{id}/like", likeHandler.Add).Methods("POST")
	protected.HandleFunc("/articles/{id}/like", likeHandler.Remove).Methods("DELETE")
}
