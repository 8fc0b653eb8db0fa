package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/heartmarshall/hifz-backend/pkg/ctxutil"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestChain_Order(t *testing.T) {
	t.Parallel()

	var order []string
	mw := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	handler := Chain(mw("first"), mw("second"))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	want := []string{"first", "second", "handler"}
	if strings.Join(order, ",") != strings.Join(want, ",") {
		t.Errorf("order: got %v, want %v", order, want)
	}
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	t.Parallel()

	var captured string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = ctxutil.RequestIDFromCtx(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if captured == "" {
		t.Error("request ID not set in context")
	}
	if rec.Header().Get("X-Request-Id") != captured {
		t.Errorf("header mismatch: %s vs %s", rec.Header().Get("X-Request-Id"), captured)
	}
}

func TestRequestID_PreservesIncoming(t *testing.T) {
	t.Parallel()

	var captured string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = ctxutil.RequestIDFromCtx(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if captured != "abc-123" {
		t.Errorf("request ID: got %s, want abc-123", captured)
	}
}

func TestLearner_ValidHeader(t *testing.T) {
	t.Parallel()

	learnerID := uuid.New()
	var captured uuid.UUID
	handler := Learner(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = ctxutil.LearnerIDFromCtx(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(LearnerHeader, learnerID.String())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200", rec.Code)
	}
	if captured != learnerID {
		t.Errorf("learner ID: got %v, want %v", captured, learnerID)
	}
}

func TestLearner_MissingHeader(t *testing.T) {
	t.Parallel()

	called := false
	handler := Learner(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want 401", rec.Code)
	}
	if called {
		t.Error("handler must not run without a learner identity")
	}
}

func TestLearner_MalformedHeader(t *testing.T) {
	t.Parallel()

	handler := Learner(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	for _, value := range []string{"not-a-uuid", uuid.Nil.String()} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(LearnerHeader, value)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("header %q: status got %d, want 401", value, rec.Code)
		}
	}
}

func TestRecovery_PanicReturns500(t *testing.T) {
	t.Parallel()

	handler := Recovery(newTestLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d, want 500", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("content type: got %q, want application/json", got)
	}
	if !strings.Contains(rec.Body.String(), `"error"`) {
		t.Errorf("body: got %q, want JSON error", rec.Body.String())
	}
}

func TestRecovery_LogsRequestIdentifiers(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	handler := Recovery(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	learnerID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := ctxutil.WithRequestID(req.Context(), "req-42")
	ctx = ctxutil.WithLearnerID(ctx, learnerID)

	handler.ServeHTTP(httptest.NewRecorder(), req.WithContext(ctx))

	logged := buf.String()
	if !strings.Contains(logged, "req-42") {
		t.Errorf("panic log missing request ID: %s", logged)
	}
	if !strings.Contains(logged, learnerID.String()) {
		t.Errorf("panic log missing learner ID: %s", logged)
	}
}

func TestLogger_CapturesStatus(t *testing.T) {
	t.Parallel()

	handler := Logger(newTestLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusTeapot {
		t.Errorf("status: got %d, want 418", rec.Code)
	}
}
