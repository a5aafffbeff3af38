package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	authmw "github.com/mind-engage/mindengage-sandbox/internal/auth/middleware"
	"github.com/mind-engage/mindengage-sandbox/internal/rbac"
	"github.com/mind-engage/mindengage-sandbox/internal/sandbox"
)

// SubmitAttemptHandler scores a submission and returns the persisted attempt
// (score, pass/fail, per-element results, friction rating, feedback).
// Telemetry is validated here so the engine itself stays no-throw.
func SubmitAttemptHandler(svc *sandbox.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "interactionID")
		userID := authmw.SubjectFromContext(r.Context())
		if userID == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		var sub sandbox.Submission
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		if sub.AttemptCount < 1 || sub.HintsUsed < 0 || sub.TimeToCompleteMs < 0 {
			http.Error(w, "telemetry must be non-negative (attempt_count >= 1)", 400)
			return
		}
		a, err := svc.Submit(id, userID, sub)
		if err != nil {
			if errors.Is(err, sandbox.ErrInteractionNotFound) {
				http.Error(w, err.Error(), 404)
				return
			}
			http.Error(w, err.Error(), 500)
			return
		}
		_ = json.NewEncoder(w).Encode(a)
	}
}

func GetAttemptHandler(store sandbox.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "attemptID")
		a, err := store.GetAttempt(id)
		if err != nil {
			http.Error(w, err.Error(), 404)
			return
		}
		ctx := r.Context()
		if !rbac.NewChecker(nil).Has(rbac.RoleFromContext(ctx), "attempt:view-all") &&
			a.UserID != authmw.SubjectFromContext(ctx) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		_ = json.NewEncoder(w).Encode(a)
	}
}

func ListAttemptsHandler(store sandbox.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "interactionID")
		ctx := r.Context()
		userID := ""
		if !rbac.NewChecker(nil).Has(rbac.RoleFromContext(ctx), "attempt:view-all") {
			userID = authmw.SubjectFromContext(ctx)
		}
		list, err := store.ListAttempts(id, userID)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		_ = json.NewEncoder(w).Encode(list)
	}
}
