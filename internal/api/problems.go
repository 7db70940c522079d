package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/todmy/oom-trainer/internal/generator"
	"github.com/todmy/oom-trainer/internal/number"
	"github.com/todmy/oom-trainer/internal/parser"
	"github.com/todmy/oom-trainer/internal/scoring"
	"github.com/todmy/oom-trainer/pkg/models"
)

// maxCount caps how many problems a single request may ask for.
const maxCount = 50

func (s *Server) handleDaily(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}

	count := s.problemsPerDay
	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxCount {
			respondError(w, http.StatusBadRequest, fmt.Sprintf("count must be between 1 and %d", maxCount))
			return
		}
		count = n
	}
	reveal := r.URL.Query().Get("reveal") == "true"

	seed := generator.DeriveSeed(date)
	problems, err := generator.Generate(seed, count, s.generatorCfg)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to generate problems")
		return
	}

	views := make([]models.ProblemView, len(problems))
	for i, p := range problems {
		views[i] = problemView(p, i, reveal)
	}

	respondJSON(w, http.StatusOK, models.DailyResponse{
		Date:     date,
		Seed:     seed,
		Problems: views,
	})
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Date == "" {
		req.Date = time.Now().UTC().Format("2006-01-02")
	}
	if req.Index < 0 || req.Index >= s.problemsPerDay {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("index must be between 0 and %d", s.problemsPerDay-1))
		return
	}

	// Regenerate the day's problems instead of looking anything up; the
	// sequence is deterministic, so the server stays stateless.
	problems, err := generator.Daily(req.Date, s.problemsPerDay, s.generatorCfg)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to generate problems")
		return
	}
	problem := problems[req.Index]

	parsed, err := parser.Parse(req.Answer)
	if err != nil {
		respondParseError(w, err)
		return
	}

	result, err := scoring.Score(problem.TrueValue, parsed, s.scoringCfg)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to score answer")
		return
	}

	resp := models.SubmitResponse{
		Problem: problemView(problem, req.Index, true),
		Parsed:  parsed,
		Result:  result,
	}
	if token, err := s.receipts.Sign(problem.ID, req.Date, result); err == nil {
		resp.Receipt = token
	}

	respondJSON(w, http.StatusOK, resp)
}

// problemView renders a problem for display, optionally revealing the answer.
func problemView(p generator.Problem, index int, reveal bool) models.ProblemView {
	view := models.ProblemView{
		ID:         p.ID,
		Index:      index,
		Left:       p.Left,
		Right:      p.Right,
		LeftWords:  number.Words(p.Left),
		RightWords: number.Words(p.Right),
		Operation:  p.Operation,
		Prompt:     fmt.Sprintf("%s %s %s", number.Words(p.Left), p.Operation.Symbol(), number.Words(p.Right)),
	}
	if reveal {
		trueValue := p.TrueValue
		view.TrueValue = &trueValue
	}
	return view
}
