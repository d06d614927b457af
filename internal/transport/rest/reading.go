package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/storyreader-backend/internal/domain"
	"github.com/heartmarshall/storyreader-backend/internal/service/reading"
)

const maxBodyBytes = 1 << 20

// readingService defines the minimal interface needed by ReadingHandler.
type readingService interface {
	ListStories(ctx context.Context, input reading.ListStoriesInput) (*reading.StoryList, error)
	GetStory(ctx context.Context, storyID uuid.UUID) (*domain.Story, error)
	LoadDocument(ctx context.Context, storyID uuid.UUID) (*reading.Document, error)
	Navigate(ctx context.Context, input reading.NavigateInput) (*reading.NavigateResult, error)
	Utterance(ctx context.Context, input reading.UtteranceInput) (*domain.Utterance, error)
	Segment(ctx context.Context, input reading.SegmentInput) (*reading.SegmentResult, error)
	Syllabify(ctx context.Context, input reading.SyllabifyInput) ([]reading.SyllabifiedWord, error)
}

// ReadingHandler serves the story catalog and reading-assistant endpoints.
type ReadingHandler struct {
	svc readingService
	log *slog.Logger
}

// NewReadingHandler creates a ReadingHandler.
func NewReadingHandler(svc readingService, logger *slog.Logger) *ReadingHandler {
	return &ReadingHandler{svc: svc, log: logger.With("handler", "reading")}
}

type storySummaryResponse struct {
	ID                 string `json:"id"`
	Slug               string `json:"slug"`
	Title              string `json:"title"`
	Difficulty         string `json:"difficulty"`
	Description        string `json:"description"`
	WordCount          int    `json:"wordCount"`
	ReadingTimeMinutes int    `json:"readingTimeMinutes"`
}

type storyResponse struct {
	storySummaryResponse
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type storyListResponse struct {
	Stories []storySummaryResponse `json:"stories"`
	Total   int                    `json:"total"`
}

type wordResponse struct {
	Index         int      `json:"index"`
	Text          string   `json:"text"`
	Clean         string   `json:"clean"`
	Syllables     string   `json:"syllables"`
	Parts         []string `json:"parts"`
	SentenceIndex int      `json:"sentenceIndex"`
}

type documentResponse struct {
	StoryID   string         `json:"storyId"`
	Title     string         `json:"title"`
	Words     []wordResponse `json:"words"`
	Sentences []string       `json:"sentences"`
	Aligned   bool           `json:"aligned"`
}

type navigateRequest struct {
	Position domain.Position `json:"position"`
	Action   string          `json:"action"`
	Target   int             `json:"target"`
	AutoPlay *bool           `json:"autoPlay"`
	Rate     float64         `json:"rate"`
}

type navigateResponse struct {
	Position  domain.Position   `json:"position"`
	Word      wordResponse      `json:"word"`
	Progress  float64           `json:"progress"`
	Completed bool              `json:"completed"`
	Utterance *domain.Utterance `json:"utterance,omitempty"`
}

type utteranceRequest struct {
	Position domain.Position `json:"position"`
	Target   string          `json:"target"`
	Syllable int             `json:"syllable"`
	Rate     float64         `json:"rate"`
}

type segmentRequest struct {
	Text string `json:"text"`
}

type segmentResponse struct {
	Words           []string `json:"words"`
	Sentences       []string `json:"sentences"`
	WordSentenceMap []int    `json:"wordSentenceMap"`
	Aligned         bool     `json:"aligned"`
}

type syllabifyRequest struct {
	Words []string `json:"words"`
}

type syllabifiedWordResponse struct {
	Word      string   `json:"word"`
	Clean     string   `json:"clean"`
	Syllables string   `json:"syllables"`
	Parts     []string `json:"parts"`
	Count     int      `json:"count"`
}

// ListStories handles GET /api/stories?difficulty=&q=&limit=&offset=.
func (h *ReadingHandler) ListStories(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var input reading.ListStoriesInput
	if v := q.Get("difficulty"); v != "" {
		input.Difficulty = &v
	}
	if v := q.Get("q"); v != "" {
		input.Query = &v
	}

	var ok bool
	if input.Limit, ok = intParam(w, q.Get("limit"), "limit"); !ok {
		return
	}
	if input.Offset, ok = intParam(w, q.Get("offset"), "offset"); !ok {
		return
	}

	list, err := h.svc.ListStories(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := storyListResponse{
		Stories: make([]storySummaryResponse, 0, len(list.Stories)),
		Total:   list.Total,
	}
	for _, s := range list.Stories {
		resp.Stories = append(resp.Stories, toStorySummary(s))
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetStory handles GET /api/stories/{id}.
func (h *ReadingHandler) GetStory(w http.ResponseWriter, r *http.Request) {
	id, ok := storyID(w, r)
	if !ok {
		return
	}

	story, err := h.svc.GetStory(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, storyResponse{
		storySummaryResponse: toStorySummary(*story),
		Content:              story.Content,
		CreatedAt:            story.CreatedAt,
		UpdatedAt:            story.UpdatedAt,
	})
}

// Document handles GET /api/stories/{id}/document.
func (h *ReadingHandler) Document(w http.ResponseWriter, r *http.Request) {
	id, ok := storyID(w, r)
	if !ok {
		return
	}

	doc, err := h.svc.LoadDocument(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDocumentResponse(doc))
}

// Navigate handles POST /api/stories/{id}/navigate.
func (h *ReadingHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	id, ok := storyID(w, r)
	if !ok {
		return
	}

	var req navigateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.svc.Navigate(r.Context(), reading.NavigateInput{
		StoryID:  id,
		Position: req.Position,
		Action:   domain.NavigationAction(req.Action),
		Target:   req.Target,
		AutoPlay: req.AutoPlay,
		Rate:     req.Rate,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, navigateResponse{
		Position:  result.Position,
		Word:      toWordResponse(result.Word),
		Progress:  result.Progress,
		Completed: result.Completed,
		Utterance: result.Utterance,
	})
}

// Utterance handles POST /api/stories/{id}/utterance.
func (h *ReadingHandler) Utterance(w http.ResponseWriter, r *http.Request) {
	id, ok := storyID(w, r)
	if !ok {
		return
	}

	var req utteranceRequest
	if !decodeBody(w, r, &req) {
		return
	}

	u, err := h.svc.Utterance(r.Context(), reading.UtteranceInput{
		StoryID:  id,
		Position: req.Position,
		Target:   domain.SpeechTarget(req.Target),
		Syllable: req.Syllable,
		Rate:     req.Rate,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, u)
}

// Segment handles POST /api/segment.
func (h *ReadingHandler) Segment(w http.ResponseWriter, r *http.Request) {
	var req segmentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.svc.Segment(r.Context(), reading.SegmentInput{Text: req.Text})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, segmentResponse{
		Words:           result.Words,
		Sentences:       result.Sentences,
		WordSentenceMap: result.WordSentenceMap,
		Aligned:         result.Aligned,
	})
}

// Syllabify handles POST /api/syllabify.
func (h *ReadingHandler) Syllabify(w http.ResponseWriter, r *http.Request) {
	var req syllabifyRequest
	if !decodeBody(w, r, &req) {
		return
	}

	words, err := h.svc.Syllabify(r.Context(), reading.SyllabifyInput{Words: req.Words})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]syllabifiedWordResponse, 0, len(words))
	for _, sw := range words {
		resp = append(resp, syllabifiedWordResponse{
			Word:      sw.Word,
			Clean:     sw.Clean,
			Syllables: sw.Syllables,
			Parts:     sw.Parts,
			Count:     sw.Count,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"words": resp})
}

func storyID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid story id")
		return uuid.Nil, false
	}
	return id, true
}

func intParam(w http.ResponseWriter, raw, name string) (int, bool) {
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return n, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func toStorySummary(s domain.Story) storySummaryResponse {
	return storySummaryResponse{
		ID:                 s.ID.String(),
		Slug:               s.Slug,
		Title:              s.Title,
		Difficulty:         s.Difficulty.String(),
		Description:        s.Description,
		WordCount:          s.WordCount,
		ReadingTimeMinutes: s.ReadingTimeMinutes,
	}
}

func toWordResponse(w reading.Word) wordResponse {
	parts := w.Parts
	if parts == nil {
		parts = []string{}
	}
	return wordResponse{
		Index:         w.Index,
		Text:          w.Text,
		Clean:         w.Clean,
		Syllables:     w.Syllables,
		Parts:         parts,
		SentenceIndex: w.SentenceIndex,
	}
}

func toDocumentResponse(d *reading.Document) documentResponse {
	resp := documentResponse{
		StoryID:   d.StoryID.String(),
		Title:     d.Title,
		Words:     make([]wordResponse, 0, len(d.Words)),
		Sentences: d.Sentences,
		Aligned:   d.Aligned,
	}
	for _, w := range d.Words {
		resp.Words = append(resp.Words, toWordResponse(w))
	}
	if resp.Sentences == nil {
		resp.Sentences = []string{}
	}
	return resp
}
