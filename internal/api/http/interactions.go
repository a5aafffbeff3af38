package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mind-engage/mindengage-sandbox/internal/evaluation"
	"github.com/mind-engage/mindengage-sandbox/internal/rbac"
	"github.com/mind-engage/mindengage-sandbox/internal/sandbox"
)

func UploadInteractionHandler(store sandbox.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in evaluation.Interaction
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		if err := in.Validate(); err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		if err := store.PutInteraction(in); err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{"id": in.ID})
	}
}

func GetInteractionHandler(store sandbox.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "interactionID")
		in, err := store.GetInteraction(id)
		if err != nil {
			http.Error(w, err.Error(), 404)
			return
		}
		// learners never see the correct state
		role := rbac.RoleFromContext(r.Context())
		if !rbac.NewChecker(nil).Has(role, "interaction:view-answers") {
			in = sandbox.Redact(in)
		}
		_ = json.NewEncoder(w).Encode(in)
	}
}

func BaselineHandler(svc *sandbox.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "interactionID")
		ms, err := svc.Baseline(id)
		if err != nil {
			http.Error(w, err.Error(), 404)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]int64{"baseline_ms": ms})
	}
}
