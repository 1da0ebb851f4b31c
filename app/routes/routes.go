package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/trs-1342/rss-hattab/app/auth"
	"github.com/trs-1342/rss-hattab/app/config"
	"github.com/trs-1342/rss-hattab/app/controllers"
	"github.com/trs-1342/rss-hattab/app/middleware"
	"github.com/trs-1342/rss-hattab/app/services"
)

// SetupRoutes defines the application's routes and returns a router.
func SetupRoutes(cfg *config.Config, postService *services.PostService, sessions *auth.SessionStore) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.ContentTypeJSON)

	postController := controllers.NewPostController(postService, cfg.SiteURL)
	authController := controllers.NewAuthController(sessions, cfg.AdminUser, cfg.AdminPassHash)
	requireAdmin := middleware.RequireAdmin(sessions)

	api := router.PathPrefix("/api").Subrouter()

	// Auth endpoints
	api.HandleFunc("/login", authController.Login).Methods("POST")
	api.HandleFunc("/logout", authController.Logout).Methods("POST")
	api.HandleFunc("/me", authController.Me).Methods("GET")

	// Posts API endpoints
	posts := api.PathPrefix("/posts").Subrouter()
	posts.HandleFunc("", postController.Index).Methods("GET")
	posts.Handle("", requireAdmin(http.HandlerFunc(postController.Create))).Methods("POST")
	posts.HandleFunc("/{slug}", postController.Show).Methods("GET")
	posts.HandleFunc("/{slug}/read", postController.Read).Methods("POST")

	// Feed endpoint
	router.HandleFunc("/rss.xml", postController.Feed).Methods("GET")

	// Serve the static front-end
	router.PathPrefix("/").Handler(http.FileServer(http.Dir("public")))

	return router
}

// StartServer starts the HTTP server on the specified address with the given router.
func StartServer(addr string, router http.Handler) error {
	return http.ListenAndServe(addr, router)
}
