package api

import (
	"github.com/gorilla/mux"

	"github.com/hireloop/intake/internal/audit"
	"github.com/hireloop/intake/internal/config"
	"github.com/hireloop/intake/internal/pipeline"
	"github.com/hireloop/intake/pkg/repository"
)

func SetupRoutes(
	cfg *config.Config,
	version, buildTime string,
	recruiters repository.RecruiterRepo,
	pipe *pipeline.Pipeline,
	matcher *pipeline.Matcher,
	trail *audit.Trail,
) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)

	// Create handlers
	systemHandler := &SystemHandler{}
	authHandler := NewAuthHandler(recruiters, cfg.JWTSecret, cfg.TokenDuration)
	appsHandler := NewApplicationsHandler(pipe, matcher, trail, cfg.UploadDir)

	// Open endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")
	r.HandleFunc("/v1/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/v1/auth/signin", authHandler.Signin).Methods("POST")

	// API v1 Protected routes
	apiV1 := r.PathPrefix("/v1").Subrouter()
	apiV1.Use(JWTAuthMiddlewareWithSecret(cfg.JWTSecret))

	// Auth endpoints
	authV1 := apiV1.PathPrefix("/auth").Subrouter()
	authV1.HandleFunc("/signout", authHandler.Signout).Methods("POST")

	// Application intake endpoints
	apiV1.HandleFunc("/applications", appsHandler.ProcessApplication).Methods("POST")
	apiV1.HandleFunc("/applications/lookup", appsHandler.LookupByResume).Methods("POST")

	return r
}
