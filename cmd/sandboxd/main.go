package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/mind-engage/mindengage-sandbox/internal/api/http"
	auth "github.com/mind-engage/mindengage-sandbox/internal/auth/middleware"
	"github.com/mind-engage/mindengage-sandbox/internal/config"
	"github.com/mind-engage/mindengage-sandbox/internal/db"
	"github.com/mind-engage/mindengage-sandbox/internal/evaluation"
	rbac "github.com/mind-engage/mindengage-sandbox/internal/rbac"
	"github.com/mind-engage/mindengage-sandbox/internal/sandbox"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	store := sandbox.NewSQLStore(dbh, cfg.DBDriver)

	// --- Evaluation engine (env-tunable friction formula) ---
	var opts []evaluation.Option
	if cfg.ElementTimeMs > 0 {
		opts = append(opts, evaluation.WithElementTime(time.Duration(cfg.ElementTimeMs)*time.Millisecond))
	}
	if cfg.WordsPerSecond > 0 {
		opts = append(opts, evaluation.WithWordsPerSecond(cfg.WordsPerSecond))
	}
	if cfg.MaxAttempts > 0 {
		opts = append(opts, evaluation.WithMaxAttempts(cfg.MaxAttempts))
	}
	svc := sandbox.NewService(store, evaluation.New(opts...))

	// --- Auth (local JWT) ---
	authSvc := auth.NewAuthService(cfg.AuthHMACSecret)
	if cfg.Mode == config.ModeOffline {
		for _, u := range []struct{ name, pass, role string }{
			{"author", "author", "author"},
			{"learner", "learner", "learner"},
		} {
			if err := auth.SeedUser(dbh, u.name, u.pass, u.role); err != nil {
				log.Fatalf("seed user %s: %v", u.name, err)
			}
		}
	}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	origins := cfg.CORSOriginsOffline
	if cfg.Mode == config.ModeOnline {
		origins = cfg.CORSOriginsOnline
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/login", auth.LoginHandler(authSvc, auth.SQLUserStore{DB: dbh}))

	// Protected API (JWT -> role in context -> RBAC)
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))

		// Author: upload interaction definitions
		pr.With(rbac.Require("interaction:create")).
			Post("/interactions", api.UploadInteractionHandler(store))

		// Learner/Author: fetch interaction (correct state redacted for learners)
		pr.With(rbac.Require("interaction:view")).
			Get("/interactions/{interactionID}", api.GetInteractionHandler(store))
		pr.With(rbac.Require("interaction:baseline")).
			Get("/interactions/{interactionID}/baseline", api.BaselineHandler(svc))

		// Learner flow: score a submission, derive the friction rating
		pr.With(rbac.Require("attempt:submit")).
			Post("/interactions/{interactionID}/attempts", api.SubmitAttemptHandler(svc))
		pr.With(rbac.RequireAny("attempt:view-own", "attempt:view-all")).
			Get("/interactions/{interactionID}/attempts", api.ListAttemptsHandler(store))
		pr.With(rbac.RequireAny("attempt:view-own", "attempt:view-all")).
			Get("/attempts/{attemptID}", api.GetAttemptHandler(store))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (mode=%s, db=%s)", cfg.HTTPAddr, cfg.Mode, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
