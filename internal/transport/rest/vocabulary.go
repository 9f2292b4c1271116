package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wortlab/deutschtext/internal/domain"
	"github.com/wortlab/deutschtext/internal/service/vocabulary"
	"github.com/wortlab/deutschtext/pkg/ctxutil"
)

// vocabularyService defines the minimal interface needed by VocabularyHandler.
type vocabularyService interface {
	GetStats(ctx context.Context, userID uuid.UUID) (*vocabulary.Stats, error)
	ListByClass(ctx context.Context, userID uuid.UUID, class domain.WordClass, input vocabulary.ListInput) ([]domain.ExtractedWord, error)
	ListPracticed(ctx context.Context, userID uuid.UUID, input vocabulary.ListInput) ([]domain.PracticedWord, error)
	MarkPracticed(ctx context.Context, userID uuid.UUID, input vocabulary.PracticeInput) (*domain.PracticedWord, error)
	CheckWord(ctx context.Context, word string) (*vocabulary.WordCheck, error)
}

// VocabularyHandler serves vocabulary REST endpoints.
type VocabularyHandler struct {
	svc vocabularyService
	log *slog.Logger
}

// NewVocabularyHandler creates a VocabularyHandler.
func NewVocabularyHandler(svc vocabularyService, logger *slog.Logger) *VocabularyHandler {
	return &VocabularyHandler{svc: svc, log: logger.With("handler", "vocabulary")}
}

// classAliases maps URL path segments onto word classes.
var classAliases = map[string]domain.WordClass{
	"verbs":      domain.WordClassVerb,
	"nouns":      domain.WordClassNoun,
	"adjectives": domain.WordClassAdjective,
	"adverbs":    domain.WordClassAdverb,
}

// Stats handles GET /api/vocabulary/stats.
func (h *VocabularyHandler) Stats(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	stats, err := h.svc.GetStats(r.Context(), userID)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{
		"verbs":      stats.Verbs,
		"nouns":      stats.Nouns,
		"adjectives": stats.Adjectives,
		"adverbs":    stats.Adverbs,
		"total":      stats.Total,
		"practiced":  stats.Practiced,
	})
}

// ByClass handles GET /api/vocabulary/{class}.
func (h *VocabularyHandler) ByClass(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	class, ok := classAliases[strings.ToLower(r.PathValue("class"))]
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown word class")
		return
	}

	words, err := h.svc.ListByClass(r.Context(), userID, class, vocabulary.ListInput{
		Limit:  queryInt(r, "limit"),
		Offset: queryInt(r, "offset"),
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	out := make([]extractedWordResponse, 0, len(words))
	for i := range words {
		out = append(out, toExtractedWordResponse(&words[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{"words": out})
}

type practicedWordResponse struct {
	ID          string    `json:"id"`
	WordClass   string    `json:"wordClass"`
	BaseForm    string    `json:"baseForm"`
	PracticedAt time.Time `json:"practicedAt"`
}

// ListPracticed handles GET /api/words/practiced.
func (h *VocabularyHandler) ListPracticed(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	words, err := h.svc.ListPracticed(r.Context(), userID, vocabulary.ListInput{
		Limit:  queryInt(r, "limit"),
		Offset: queryInt(r, "offset"),
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	out := make([]practicedWordResponse, 0, len(words))
	for _, p := range words {
		out = append(out, practicedWordResponse{
			ID:          p.ID.String(),
			WordClass:   p.WordClass.String(),
			BaseForm:    p.BaseForm,
			PracticedAt: p.PracticedAt,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"words": out})
}

type practiceRequest struct {
	WordClass string `json:"wordClass"`
	BaseForm  string `json:"baseForm"`
}

// MarkPracticed handles POST /api/words/practiced.
func (h *VocabularyHandler) MarkPracticed(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req practiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	word, err := h.svc.MarkPracticed(r.Context(), userID, vocabulary.PracticeInput{
		WordClass: domain.WordClass(strings.ToUpper(req.WordClass)),
		BaseForm:  req.BaseForm,
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, practicedWordResponse{
		ID:          word.ID.String(),
		WordClass:   word.WordClass.String(),
		BaseForm:    word.BaseForm,
		PracticedAt: word.PracticedAt,
	})
}

// CheckWord handles GET /api/check-word?word=...
func (h *VocabularyHandler) CheckWord(w http.ResponseWriter, r *http.Request) {
	if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	check, err := h.svc.CheckWord(r.Context(), r.URL.Query().Get("word"))
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"found":        check.Found,
		"wordClass":    check.WordClass.String(),
		"baseForm":     check.BaseForm,
		"level":        check.Level,
		"inDictionary": check.InDictionary,
	})
}
