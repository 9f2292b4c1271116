package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/wortlab/deutschtext/internal/domain"
	"github.com/wortlab/deutschtext/internal/service/texts"
	"github.com/wortlab/deutschtext/pkg/ctxutil"
)

// textsService defines the minimal interface needed by TextsHandler.
type textsService interface {
	ProcessText(ctx context.Context, userID uuid.UUID, input texts.ProcessInput) (*domain.ProcessingResult, error)
	SaveText(ctx context.Context, userID uuid.UUID, input texts.SaveInput) (*domain.SavedText, error)
	GetText(ctx context.Context, userID, textID uuid.UUID) (*texts.TextDetail, error)
	ListTexts(ctx context.Context, userID uuid.UUID, input texts.ListInput) ([]domain.SavedText, error)
}

// TextsHandler serves text processing and saved-text REST endpoints.
type TextsHandler struct {
	svc textsService
	log *slog.Logger
}

// NewTextsHandler creates a TextsHandler.
func NewTextsHandler(svc textsService, logger *slog.Logger) *TextsHandler {
	return &TextsHandler{svc: svc, log: logger.With("handler", "texts")}
}

type processTextRequest struct {
	Text string `json:"text"`
}

type saveTextRequest struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Process handles POST /api/process-text.
func (h *TextsHandler) Process(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req processTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.ProcessText(r.Context(), userID, texts.ProcessInput{Text: req.Text})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProcessingResultResponse(result))
}

// Save handles POST /api/texts.
func (h *TextsHandler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req saveTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	saved, err := h.svc.SaveText(r.Context(), userID, texts.SaveInput{
		Title: req.Title,
		Text:  req.Text,
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSavedTextResponse(saved))
}

// List handles GET /api/texts.
func (h *TextsHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	list, err := h.svc.ListTexts(r.Context(), userID, texts.ListInput{
		Limit:  queryInt(r, "limit"),
		Offset: queryInt(r, "offset"),
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	out := make([]savedTextResponse, 0, len(list))
	for i := range list {
		out = append(out, toSavedTextResponse(&list[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{"texts": out})
}

// Get handles GET /api/texts/{id}.
func (h *TextsHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	textID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid text id")
		return
	}

	detail, err := h.svc.GetText(r.Context(), userID, textID)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	resp := textDetailResponse{
		savedTextResponse: toSavedTextResponse(detail.Text),
		Words:             make([]extractedWordResponse, 0, len(detail.Words)),
	}
	for i := range detail.Words {
		resp.Words = append(resp.Words, toExtractedWordResponse(&detail.Words[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

func queryInt(r *http.Request, name string) int {
	n, _ := strconv.Atoi(r.URL.Query().Get(name))
	return n
}

// ---------------------------------------------------------------------------
// Response shapes
// ---------------------------------------------------------------------------

type statsResponse struct {
	TotalWords    int `json:"totalWords"`
	Verbs         int `json:"verbs"`
	Nouns         int `json:"nouns"`
	Adjectives    int `json:"adjectives"`
	Adverbs       int `json:"adverbs"`
	NewWords      int `json:"newWords"`
	NewVerbs      int `json:"newVerbs"`
	NewNouns      int `json:"newNouns"`
	NewAdjectives int `json:"newAdjectives"`
	ExistingWords int `json:"existingWords"`
	LevelA1       int `json:"levelA1"`
	LevelA2       int `json:"levelA2"`
	LevelB1       int `json:"levelB1"`
	LevelB2Plus   int `json:"levelB2Plus"`
}

type candidateResponse struct {
	BaseForm            string `json:"baseForm"`
	OriginalForm        string `json:"originalForm"`
	WordClass           string `json:"wordClass"`
	Level               string `json:"level"`
	Tense               string `json:"tense,omitempty"`
	Gender              string `json:"gender,omitempty"`
	Case                string `json:"case,omitempty"`
	Translation         string `json:"translation"`
	IsNew               bool   `json:"isNew"`
	IsKnown             bool   `json:"isKnown"`
	IsRepeatInText      bool   `json:"isRepeatInText"`
	Sentence            string `json:"sentence"`
	SentenceTranslation string `json:"sentenceTranslation"`
}

type sentenceWordResponse struct {
	BaseForm  string `json:"baseForm"`
	WordClass string `json:"wordClass"`
}

type sentenceResponse struct {
	German  string                 `json:"german"`
	English string                 `json:"english"`
	Words   []sentenceWordResponse `json:"words"`
}

type processingResultResponse struct {
	Stats          statsResponse                  `json:"stats"`
	ExtractedWords map[string][]candidateResponse `json:"extractedWords"`
	Sentences      []sentenceResponse             `json:"sentences"`
}

type savedTextResponse struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Level       string         `json:"level"`
	Excerpt     string         `json:"excerpt"`
	WordCount   int            `json:"wordCount"`
	ReadingTime int            `json:"readingTime"`
	CreatedAt   time.Time      `json:"createdAt"`
	Stats       *statsResponse `json:"stats,omitempty"`
}

type textDetailResponse struct {
	savedTextResponse
	Content string                  `json:"content"`
	Words   []extractedWordResponse `json:"words"`
}

type extractedWordResponse struct {
	ID                  string  `json:"id"`
	EntryID             *string `json:"entryId,omitempty"`
	WordClass           string  `json:"wordClass"`
	BaseForm            string  `json:"baseForm"`
	OriginalForm        string  `json:"originalForm"`
	Level               string  `json:"level"`
	Tense               string  `json:"tense,omitempty"`
	Gender              string  `json:"gender,omitempty"`
	Case                string  `json:"case,omitempty"`
	Translation         string  `json:"translation"`
	IsNew               bool    `json:"isNew"`
	IsKnown             bool    `json:"isKnown"`
	Sentence            string  `json:"sentence"`
	SentenceTranslation string  `json:"sentenceTranslation"`
}

func toProcessingResultResponse(result *domain.ProcessingResult) processingResultResponse {
	resp := processingResultResponse{
		Stats: statsResponse{
			TotalWords:    result.Stats.TotalWords,
			Verbs:         result.Stats.Verbs,
			Nouns:         result.Stats.Nouns,
			Adjectives:    result.Stats.Adjectives,
			Adverbs:       result.Stats.Adverbs,
			NewWords:      result.Stats.NewWords,
			NewVerbs:      result.Stats.NewVerbs,
			NewNouns:      result.Stats.NewNouns,
			NewAdjectives: result.Stats.NewAdjectives,
			ExistingWords: result.Stats.ExistingWords,
			LevelA1:       result.Stats.LevelA1,
			LevelA2:       result.Stats.LevelA2,
			LevelB1:       result.Stats.LevelB1,
			LevelB2Plus:   result.Stats.LevelB2Plus,
		},
		ExtractedWords: map[string][]candidateResponse{
			"verbs":      toCandidateResponses(result.ExtractedWords.Verbs),
			"nouns":      toCandidateResponses(result.ExtractedWords.Nouns),
			"adjectives": toCandidateResponses(result.ExtractedWords.Adjectives),
			"adverbs":    toCandidateResponses(result.ExtractedWords.Adverbs),
		},
		Sentences: make([]sentenceResponse, 0, len(result.Sentences)),
	}

	for _, s := range result.Sentences {
		sr := sentenceResponse{
			German:  s.German,
			English: s.English,
			Words:   make([]sentenceWordResponse, 0, len(s.Words)),
		}
		for _, w := range s.Words {
			sr.Words = append(sr.Words, sentenceWordResponse{
				BaseForm:  w.BaseForm,
				WordClass: w.WordClass.String(),
			})
		}
		resp.Sentences = append(resp.Sentences, sr)
	}

	return resp
}

func toCandidateResponses(cands []domain.ExtractionCandidate) []candidateResponse {
	out := make([]candidateResponse, 0, len(cands))
	for _, c := range cands {
		out = append(out, candidateResponse{
			BaseForm:            c.BaseForm,
			OriginalForm:        c.OriginalForm,
			WordClass:           c.WordClass.String(),
			Level:               c.Level,
			Tense:               c.Features.Tense,
			Gender:              c.Features.Gender,
			Case:                c.Features.Case,
			Translation:         c.Translation,
			IsNew:               c.IsNew,
			IsKnown:             c.IsKnown,
			IsRepeatInText:      c.IsRepeatInText,
			Sentence:            c.Sentence,
			SentenceTranslation: c.SentenceTranslation,
		})
	}
	return out
}

func toSavedTextResponse(t *domain.SavedText) savedTextResponse {
	resp := savedTextResponse{
		ID:          t.ID.String(),
		Title:       t.Title,
		Level:       t.Level,
		Excerpt:     t.Excerpt,
		WordCount:   t.WordCount,
		ReadingTime: t.ReadingTime,
		CreatedAt:   t.CreatedAt,
	}
	if t.Stats != nil {
		resp.Stats = &statsResponse{
			TotalWords:    t.Stats.TotalWords,
			Verbs:         t.Stats.Verbs,
			Nouns:         t.Stats.Nouns,
			Adjectives:    t.Stats.Adjectives,
			Adverbs:       t.Stats.Adverbs,
			NewWords:      t.Stats.NewWords,
			ExistingWords: t.Stats.KnownFromOtherTexts,
			LevelA1:       t.Stats.LevelA1,
			LevelA2:       t.Stats.LevelA2,
			LevelB1:       t.Stats.LevelB1,
			LevelB2Plus:   t.Stats.LevelB2Plus,
		}
	}
	return resp
}

func toExtractedWordResponse(w *domain.ExtractedWord) extractedWordResponse {
	resp := extractedWordResponse{
		ID:                  w.ID.String(),
		WordClass:           w.WordClass.String(),
		BaseForm:            w.BaseForm,
		OriginalForm:        w.OriginalForm,
		Level:               w.Level,
		Tense:               w.Tense,
		Gender:              w.Gender,
		Case:                w.Case,
		Translation:         w.Translation,
		IsNew:               w.IsNew,
		IsKnown:             w.IsKnown,
		Sentence:            w.Sentence,
		SentenceTranslation: w.SentenceTranslation,
	}
	if w.EntryID != nil {
		id := w.EntryID.String()
		resp.EntryID = &id
	}
	return resp
}
