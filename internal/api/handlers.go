package api

import (
	"errors"
	"net/http"

	"github.com/todmy/oom-trainer/internal/parser"
	"github.com/todmy/oom-trainer/pkg/models"
)

// Health check
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// respondParseError maps a typed parse failure onto an actionable response.
// Parse failures are never shaped like scores, so a client cannot mistake one
// for a graded result.
func respondParseError(w http.ResponseWriter, err error) {
	var pe *parser.ParseError
	if !errors.As(err, &pe) {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusUnprocessableEntity, models.ParseErrorResponse{
		Error:  pe.Error(),
		Reason: parseReason(pe.Err),
		Input:  pe.Input,
	})
}

func parseReason(err error) string {
	switch {
	case errors.Is(err, parser.ErrEmptyInput):
		return "empty_input"
	case errors.Is(err, parser.ErrUnrecognizedUnit):
		return "unrecognized_unit"
	case errors.Is(err, parser.ErrMalformedExponent):
		return "malformed_exponent"
	case errors.Is(err, parser.ErrMalformedMantissa):
		return "malformed_mantissa"
	default:
		return "no_grammar_matched"
	}
}
