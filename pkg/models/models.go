package models

import (
	"github.com/todmy/oom-trainer/internal/number"
	"github.com/todmy/oom-trainer/internal/scoring"
)

// ProblemView is a problem as presented to the player. Operands are rendered
// in word notation; the true value is withheld unless explicitly revealed.
type ProblemView struct {
	ID         string           `json:"id"`
	Index      int              `json:"index"`
	Left       number.Number    `json:"left"`
	Right      number.Number    `json:"right"`
	LeftWords  string           `json:"left_words"`
	RightWords string           `json:"right_words"`
	Operation  number.Operation `json:"operation"`
	Prompt     string           `json:"prompt"`
	TrueValue  *number.Number   `json:"true_value,omitempty"`
}

// DailyResponse is the problem set for a calendar date.
type DailyResponse struct {
	Date     string        `json:"date"`
	Seed     uint64        `json:"seed"`
	Problems []ProblemView `json:"problems"`
}

// ParseRequest carries a raw textual answer.
type ParseRequest struct {
	Text         string `json:"text"`
	BareExponent *bool  `json:"bare_exponent,omitempty"`
}

// ParseResponse is a successfully parsed answer.
type ParseResponse struct {
	Value number.Number `json:"value"`
	Words string        `json:"words"`
}

// ParseErrorResponse names the specific grammar failure, so the client can
// show an actionable message rather than a generic "invalid input".
type ParseErrorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason"`
	Input  string `json:"input"`
}

// ScoreRequest grades one canonical value against another.
type ScoreRequest struct {
	TrueValue number.Number `json:"true_value"`
	UserValue number.Number `json:"user_value"`
}

// SubmitRequest grades a raw answer against a generated daily problem.
type SubmitRequest struct {
	Date   string `json:"date"`
	Index  int    `json:"index"`
	Answer string `json:"answer"`
}

// SubmitResponse is the graded outcome of a submission.
type SubmitResponse struct {
	Problem ProblemView    `json:"problem"`
	Parsed  number.Number  `json:"parsed"`
	Result  scoring.Result `json:"result"`
	Receipt string         `json:"receipt,omitempty"`
}

// SummaryRequest aggregates a finished session's results.
type SummaryRequest struct {
	Results []scoring.Result `json:"results"`
}
