package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rpupo63/portfolio-cms-backend/config"
	"github.com/rpupo63/portfolio-cms-backend/database"
	"github.com/rpupo63/portfolio-cms-backend/services"
	"github.com/rs/zerolog/log"
)

// Services bundles the collaborators the router needs beyond the repositories.
// Uploader and Notifier are optional.
type Services struct {
	Auth     *services.AuthService
	Uploader *services.Uploader
	Notifier *services.ErrorNotifier
}

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(c map[string]string, database database.Database, svcs Services) (Server, error) {
	if svcs.Auth == nil {
		return Server{}, fmt.Errorf("auth service is required")
	}

	port := config.GetString(c, "PORT", "8080")
	address := fmt.Sprintf("0.0.0.0:%s", port)

	startupTime := time.Now()

	router := newRouter(database, svcs, withConfig(c), withStartupTime(startupTime))

	readTimeout := time.Duration(config.GetInt(c, "READ_TIMEOUT_SECONDS", 180)) * time.Second
	writeTimeout := time.Duration(config.GetInt(c, "WRITE_TIMEOUT_SECONDS", 180)) * time.Second
	idleTimeout := time.Duration(config.GetInt(c, "IDLE_TIMEOUT_SECONDS", 180)) * time.Second

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return Server{server, startupTime}, nil
}

type router struct {
	config      map[string]string
	startupTime time.Time
}

func withConfig(c map[string]string) func(*router) {
	return func(r *router) {
		r.config = c
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func newRouter(database database.Database, svcs Services, opts ...func(*router)) *chi.Mux {
	var router router
	for _, opt := range opts {
		opt(&router)
	}
	if router.startupTime.IsZero() {
		router.startupTime = time.Now()
	}

	var reporter errorReporter
	if svcs.Notifier != nil {
		reporter = svcs.Notifier
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(LogInternalServerErrors(reporter))
	chiRouter.Use(middleware.RequestID)
	chiRouter.Use(middleware.RealIP)
	chiRouter.Use(HTTPLoggingMiddleware(log.With().Str("component", "http").Logger()))

	acceptedOrigins := config.GetList(router.config, "ACCEPTED_ORIGINS", []string{"*"})
	chiRouter.Use(cors.Handler(cors.Options{
		AllowedOrigins: acceptedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         300,
	}))
	if len(acceptedOrigins) == 1 && acceptedOrigins[0] == "*" {
		chiRouter.Use(permissiveCORSHeaders)
	}

	maxUploadBytes := int64(config.GetInt(router.config, "MAX_UPLOAD_MB", 10)) << 20
	handlers := initializeHandlers(database, svcs, router.startupTime, maxUploadBytes)
	authMiddleware := newAuthMiddleware(svcs.Auth)
	strictAuth := config.GetBool(router.config, "STRICT_AUTH", false)

	basePath := strings.TrimRight(config.GetString(router.config, "API_BASE_PATH", "/api"), "/")
	if basePath == "" {
		setupRoutes(chiRouter, handlers, authMiddleware, strictAuth)
	} else {
		chiRouter.Route(basePath, func(r chi.Router) {
			setupRoutes(r, handlers, authMiddleware, strictAuth)
		})
	}

	return chiRouter
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, svcs Services, startupTime time.Time, maxUploadBytes int64) *routeHandlers {
	handlers := &routeHandlers{
		authHandler:        newAuthHandler(svcs.Auth),
		profileHandler:     newProfileHandler(database.ProfileRepo()),
		projectHandler:     newProjectHandler(database.ProjectRepo()),
		tagHandler:         newTagHandler(database.TagRepo()),
		experienceHandler:  newExperienceHandler(database.ExperienceRepo()),
		skillHandler:       newSkillHandler(database.SkillRepo()),
		galleryHandler:     newGalleryHandler(database.GalleryRepo()),
		certificateHandler: newCertificateHandler(database.CertificateRepo()),
		overviewHandler:    newOverviewHandler(database.OverviewRepo(), startupTime),
	}
	if svcs.Uploader != nil {
		h := newUploadHandler(svcs.Uploader, maxUploadBytes)
		handlers.uploadHandler = &h
	}
	return handlers
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
