package api

import (
	"encoding/json"
	"net/http"

	"github.com/todmy/oom-trainer/internal/number"
	"github.com/todmy/oom-trainer/internal/parser"
	"github.com/todmy/oom-trainer/internal/scoring"
	"github.com/todmy/oom-trainer/pkg/models"
)

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req models.ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	opts := parser.DefaultOptions()
	if req.BareExponent != nil {
		opts.BareExponent = *req.BareExponent
	}

	value, err := parser.ParseWithOptions(req.Text, opts)
	if err != nil {
		respondParseError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, models.ParseResponse{
		Value: value,
		Words: number.Words(value),
	})
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req models.ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.TrueValue.Mantissa <= 0 || req.UserValue.Mantissa <= 0 {
		respondError(w, http.StatusBadRequest, "mantissas must be positive")
		return
	}

	// Renormalize so off-canonical input still scores consistently.
	trueVal := number.New(req.TrueValue.Mantissa, req.TrueValue.Exponent)
	userVal := number.New(req.UserValue.Mantissa, req.UserValue.Exponent)

	result, err := scoring.Score(trueVal, userVal, s.scoringCfg)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to score answer")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	var req models.SummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	respondJSON(w, http.StatusOK, scoring.Summarize(req.Results))
}

func (s *Server) handleVerifyReceipt(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		respondError(w, http.StatusBadRequest, "token is required")
		return
	}

	claims, err := s.receipts.Verify(token)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "invalid receipt")
		return
	}

	respondJSON(w, http.StatusOK, claims)
}
