package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/hifz-backend/pkg/ctxutil"
)

// LearnerHeader carries the authenticated learner identity, injected by the
// API gateway in front of this service.
const LearnerHeader = "X-Learner-Id"

// Learner extracts the learner ID from the gateway header and stores it in
// the request context. Requests without a valid learner ID are rejected with
// 401 before reaching any handler.
func Learner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(LearnerHeader)
		if raw == "" {
			unauthorized(w, "missing learner identity")
			return
		}
		id, err := uuid.Parse(raw)
		if err != nil || id == uuid.Nil {
			unauthorized(w, "invalid learner identity")
			return
		}
		ctx := ctxutil.WithLearnerID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": message}) //nolint:errcheck
}
