package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/sentencegolf/internal/domain"
	"github.com/heartmarshall/sentencegolf/internal/scorer"
	"github.com/heartmarshall/sentencegolf/internal/service/scoring"
)

const maxBodyBytes = 1 << 20

// scoringService defines the minimal interface needed by ScoreHandler.
type scoringService interface {
	ScoreText(ctx context.Context, in scoring.ScoreTextInput) (scorer.Result, error)
	ScoreWord(ctx context.Context, in scoring.ScoreWordInput) (int, error)
	ListProperNouns(ctx context.Context) ([]string, error)
	RegisterProperNoun(ctx context.Context, word string) error
	RemoveProperNoun(ctx context.Context, word string) error
}

// ScoreHandler serves the scoring REST endpoints.
type ScoreHandler struct {
	svc scoringService
	log *slog.Logger
}

// NewScoreHandler creates a ScoreHandler.
func NewScoreHandler(svc scoringService, logger *slog.Logger) *ScoreHandler {
	return &ScoreHandler{svc: svc, log: logger.With("handler", "score")}
}

type scoreRequest struct {
	Text            string   `json:"text"`
	ProperNouns     []string `json:"properNouns"`
	ResultType      string   `json:"resultType"`
	NotFoundPenalty *int     `json:"notFoundPenalty"`
}

type scoreWordRequest struct {
	Word            string `json:"word"`
	NotFoundPenalty *int   `json:"notFoundPenalty"`
}

type properNounRequest struct {
	Word string `json:"word"`
}

type simpleScoreResponse struct {
	TotalScore int `json:"totalScore"`
}

type detailedScoreResponse struct {
	TotalScore int                 `json:"totalScore"`
	WordScores []wordScoreResponse `json:"wordScores"`
}

type wordScoreResponse struct {
	Word   string `json:"word"`
	Score  int    `json:"score"`
	Status string `json:"status"`
}

type scoreWordResponse struct {
	Word  string `json:"word"`
	Score int    `json:"score"`
}

type properNounsResponse struct {
	ProperNouns []string `json:"properNouns"`
}

// Score handles POST /api/v1/score.
func (h *ScoreHandler) Score(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resultType := domain.ResultType(req.ResultType)
	res, err := h.svc.ScoreText(r.Context(), scoring.ScoreTextInput{
		Text:            req.Text,
		ProperNouns:     req.ProperNouns,
		ResultType:      resultType,
		NotFoundPenalty: req.NotFoundPenalty,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if resultType != domain.ResultTypeDetailed {
		writeJSON(w, http.StatusOK, simpleScoreResponse{TotalScore: res.TotalScore})
		return
	}

	words := make([]wordScoreResponse, 0, len(res.WordScores))
	for _, ws := range res.WordScores {
		words = append(words, wordScoreResponse{Word: ws.Word, Score: ws.Score, Status: ws.Status.String()})
	}
	writeJSON(w, http.StatusOK, detailedScoreResponse{TotalScore: res.TotalScore, WordScores: words})
}

// ScoreWord handles POST /api/v1/score-word.
func (h *ScoreHandler) ScoreWord(w http.ResponseWriter, r *http.Request) {
	var req scoreWordRequest
	if !decodeBody(w, r, &req) {
		return
	}

	score, err := h.svc.ScoreWord(r.Context(), scoring.ScoreWordInput{
		Word:            req.Word,
		NotFoundPenalty: req.NotFoundPenalty,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, scoreWordResponse{Word: req.Word, Score: score})
}

// ListProperNouns handles GET /api/v1/proper-nouns.
func (h *ScoreHandler) ListProperNouns(w http.ResponseWriter, r *http.Request) {
	words, err := h.svc.ListProperNouns(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, properNounsResponse{ProperNouns: words})
}

// RegisterProperNoun handles POST /api/v1/proper-nouns.
func (h *ScoreHandler) RegisterProperNoun(w http.ResponseWriter, r *http.Request) {
	var req properNounRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.svc.RegisterProperNoun(r.Context(), req.Word); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// RemoveProperNoun handles DELETE /api/v1/proper-nouns/{word}.
func (h *ScoreHandler) RemoveProperNoun(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.RemoveProperNoun(r.Context(), r.PathValue("word")); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ScoreHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotReady):
		w.Header().Set("Retry-After", "5")
		writeError(w, http.StatusServiceUnavailable, "corpus is still loading")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
