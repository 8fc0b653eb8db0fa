package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/hifz-backend/internal/domain"
	"github.com/heartmarshall/hifz-backend/internal/service/hifz"
	"github.com/heartmarshall/hifz-backend/pkg/ctxutil"
)

// hifzService defines the minimal interface needed by HifzHandler.
type hifzService interface {
	AddVerse(ctx context.Context, learnerID uuid.UUID, input hifz.AddVerseInput) (*domain.MemorizationItem, error)
	AddRange(ctx context.Context, learnerID uuid.UUID, input hifz.AddRangeInput) ([]*domain.MemorizationItem, error)
	RecordReview(ctx context.Context, learnerID uuid.UUID, input hifz.RecordReviewInput) (*domain.ReviewResult, error)
	GetDueReviews(ctx context.Context, learnerID uuid.UUID, input hifz.GetDueInput) ([]*domain.MemorizationItem, error)
	GetProgress(ctx context.Context, learnerID uuid.UUID) (*domain.ProgressSummary, error)
	GetChapterProgress(ctx context.Context, learnerID uuid.UUID, input hifz.ChapterProgressInput) (*domain.ChapterProgress, error)
	GetReviewHistory(ctx context.Context, learnerID uuid.UUID, input hifz.ReviewHistoryInput) (*hifz.ReviewHistory, error)
}

// HifzHandler serves the memorization-scheduler REST endpoints.
type HifzHandler struct {
	svc hifzService
	log *slog.Logger
}

// NewHifzHandler creates a HifzHandler.
func NewHifzHandler(svc hifzService, logger *slog.Logger) *HifzHandler {
	return &HifzHandler{svc: svc, log: logger.With("handler", "hifz")}
}

type addVerseRequest struct {
	Chapter int `json:"chapter"`
	Verse   int `json:"verse"`
}

type addRangeRequest struct {
	Chapter    int `json:"chapter"`
	StartVerse int `json:"start_verse"`
	EndVerse   int `json:"end_verse"`
}

type recordReviewRequest struct {
	VerseKey string `json:"verse_key"`
	Quality  int    `json:"quality"`
}

type itemResponse struct {
	ID             string     `json:"id"`
	VerseKey       string     `json:"verse_key"`
	Chapter        int        `json:"chapter"`
	Verse          int        `json:"verse"`
	IntervalDays   int        `json:"interval_days"`
	EaseFactor     float64    `json:"ease_factor"`
	Repetitions    int        `json:"repetitions"`
	Status         string     `json:"status"`
	NextReviewDate time.Time  `json:"next_review_date"`
	LastReviewDate *time.Time `json:"last_review_date,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type itemListResponse struct {
	Items []itemResponse `json:"items"`
	Count int            `json:"count"`
}

type reviewResultResponse struct {
	Item    itemResponse `json:"item"`
	Rewards []string     `json:"rewards"`
}

type progressResponse struct {
	Total    int `json:"total"`
	New      int `json:"new"`
	Learning int `json:"learning"`
	Review   int `json:"review"`
	Mature   int `json:"mature"`
	DueToday int `json:"due_today"`
}

type chapterProgressResponse struct {
	Chapter         int            `json:"chapter"`
	TotalVerses     int            `json:"total_verses"`
	MemorizedVerses int            `json:"memorized_verses"`
	PercentComplete float64        `json:"percent_complete"`
	Items           []itemResponse `json:"items"`
}

type reviewLogResponse struct {
	ID               string    `json:"id"`
	Quality          int       `json:"quality"`
	PrevIntervalDays int       `json:"prev_interval_days"`
	PrevEaseFactor   float64   `json:"prev_ease_factor"`
	PrevRepetitions  int       `json:"prev_repetitions"`
	PrevStatus       string    `json:"prev_status"`
	ReviewedAt       time.Time `json:"reviewed_at"`
}

type historyResponse struct {
	Logs  []reviewLogResponse `json:"logs"`
	Total int                 `json:"total"`
}

// AddVerse handles POST /api/v1/verses.
func (h *HifzHandler) AddVerse(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := ctxutil.LearnerIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req addVerseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.svc.AddVerse(r.Context(), learnerID, hifz.AddVerseInput{
		Chapter: req.Chapter,
		Verse:   req.Verse,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toItemResponse(item))
}

// AddRange handles POST /api/v1/verses/range.
func (h *HifzHandler) AddRange(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := ctxutil.LearnerIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req addRangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	items, err := h.svc.AddRange(r.Context(), learnerID, hifz.AddRangeInput{
		Chapter:    req.Chapter,
		StartVerse: req.StartVerse,
		EndVerse:   req.EndVerse,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toItemListResponse(items))
}

// RecordReview handles POST /api/v1/reviews.
func (h *HifzHandler) RecordReview(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := ctxutil.LearnerIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req recordReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.RecordReview(r.Context(), learnerID, hifz.RecordReviewInput{
		VerseKey: req.VerseKey,
		Quality:  req.Quality,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	rewards := make([]string, 0, len(result.Rewards))
	for _, reward := range result.Rewards {
		rewards = append(rewards, reward.String())
	}
	writeJSON(w, http.StatusOK, reviewResultResponse{
		Item:    toItemResponse(result.Item),
		Rewards: rewards,
	})
}

// GetDue handles GET /api/v1/reviews/due.
func (h *HifzHandler) GetDue(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := ctxutil.LearnerIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	// Absent limit means the service default; an explicit 0 is passed
	// through and yields an empty batch.
	var limit *int
	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = &v
	}

	items, err := h.svc.GetDueReviews(r.Context(), learnerID, hifz.GetDueInput{Limit: limit})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemListResponse(items))
}

// GetProgress handles GET /api/v1/progress.
func (h *HifzHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := ctxutil.LearnerIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	summary, err := h.svc.GetProgress(r.Context(), learnerID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, progressResponse{
		Total:    summary.Total,
		New:      summary.New,
		Learning: summary.Learning,
		Review:   summary.Review,
		Mature:   summary.Mature,
		DueToday: summary.DueToday,
	})
}

// GetChapterProgress handles GET /api/v1/progress/chapters/{chapter}.
func (h *HifzHandler) GetChapterProgress(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := ctxutil.LearnerIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	chapter, err := strconv.Atoi(r.PathValue("chapter"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "chapter must be an integer")
		return
	}

	progress, err := h.svc.GetChapterProgress(r.Context(), learnerID, hifz.ChapterProgressInput{Chapter: chapter})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	items := make([]itemResponse, 0, len(progress.Items))
	for _, item := range progress.Items {
		items = append(items, toItemResponse(item))
	}
	writeJSON(w, http.StatusOK, chapterProgressResponse{
		Chapter:         progress.Chapter,
		TotalVerses:     progress.TotalVerses,
		MemorizedVerses: progress.MemorizedVerses,
		PercentComplete: progress.PercentComplete,
		Items:           items,
	})
}

// GetHistory handles GET /api/v1/verses/{key}/history.
func (h *HifzHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := ctxutil.LearnerIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	limit, offset := 0, 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = v
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "offset must be an integer")
			return
		}
		offset = v
	}

	history, err := h.svc.GetReviewHistory(r.Context(), learnerID, hifz.ReviewHistoryInput{
		VerseKey: r.PathValue("key"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	logs := make([]reviewLogResponse, 0, len(history.Logs))
	for _, log := range history.Logs {
		logs = append(logs, reviewLogResponse{
			ID:               log.ID.String(),
			Quality:          log.Quality,
			PrevIntervalDays: log.PrevIntervalDays,
			PrevEaseFactor:   log.PrevEaseFactor,
			PrevRepetitions:  log.PrevRepetitions,
			PrevStatus:       log.PrevStatus.String(),
			ReviewedAt:       log.ReviewedAt,
		})
	}
	writeJSON(w, http.StatusOK, historyResponse{Logs: logs, Total: history.Total})
}

func (h *HifzHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func toItemResponse(item *domain.MemorizationItem) itemResponse {
	return itemResponse{
		ID:             item.ID.String(),
		VerseKey:       item.Key().String(),
		Chapter:        item.Chapter,
		Verse:          item.Verse,
		IntervalDays:   item.IntervalDays,
		EaseFactor:     item.EaseFactor,
		Repetitions:    item.Repetitions,
		Status:         item.Status.String(),
		NextReviewDate: item.NextReviewDate,
		LastReviewDate: item.LastReviewDate,
		CreatedAt:      item.CreatedAt,
	}
}

func toItemListResponse(items []*domain.MemorizationItem) itemListResponse {
	out := make([]itemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toItemResponse(item))
	}
	return itemListResponse{Items: out, Count: len(out)}
}
