package api

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/todmy/oom-trainer/internal/number"
	"github.com/todmy/oom-trainer/internal/scoring"
	"github.com/todmy/oom-trainer/pkg/models"
)

func newTestServer() *Server {
	return NewServer(ServerConfig{
		ProblemsPerDay: 5,
		ReceiptSecret:  "test-secret",
	})
}

func doRequest(t *testing.T, s *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := doRequest(t, newTestServer(), http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestDailyIsDeterministic(t *testing.T) {
	s := newTestServer()
	first := doRequest(t, s, http.MethodGet, "/api/v1/daily?date=2026-08-31", nil)
	second := doRequest(t, s, http.MethodGet, "/api/v1/daily?date=2026-08-31", nil)

	if first.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", first.Code, http.StatusOK)
	}
	if first.Body.String() != second.Body.String() {
		t.Fatal("repeated daily requests returned different bodies")
	}
}

func TestDailyHidesTrueValues(t *testing.T) {
	rec := doRequest(t, newTestServer(), http.MethodGet, "/api/v1/daily?date=2026-08-31", nil)

	var resp models.DailyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Date != "2026-08-31" {
		t.Fatalf("date = %q, want 2026-08-31", resp.Date)
	}
	if len(resp.Problems) != 5 {
		t.Fatalf("problem count = %d, want 5", len(resp.Problems))
	}
	for _, p := range resp.Problems {
		if p.TrueValue != nil {
			t.Fatal("daily response leaked a true value")
		}
		if p.Prompt == "" || p.LeftWords == "" || p.RightWords == "" {
			t.Fatalf("problem %d missing display fields: %+v", p.Index, p)
		}
	}
}

func TestDailyRevealsOnRequest(t *testing.T) {
	rec := doRequest(t, newTestServer(), http.MethodGet, "/api/v1/daily?date=2026-08-31&reveal=true", nil)

	var resp models.DailyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	for _, p := range resp.Problems {
		if p.TrueValue == nil {
			t.Fatal("reveal=true omitted the true value")
		}
	}
}

func TestDailyRejectsBadCount(t *testing.T) {
	for _, q := range []string{"count=0", "count=-1", "count=999", "count=abc"} {
		rec := doRequest(t, newTestServer(), http.MethodGet, "/api/v1/daily?"+q, nil)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want %d", q, rec.Code, http.StatusBadRequest)
		}
	}
}

func TestParseEndpoint(t *testing.T) {
	rec := doRequest(t, newTestServer(), http.MethodPost, "/api/v1/parse", models.ParseRequest{Text: "8.3 million"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp models.ParseResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if math.Abs(resp.Value.Mantissa-8.3) > 1e-9 || resp.Value.Exponent != 6 {
		t.Fatalf("value = %+v, want {8.3 6}", resp.Value)
	}
	if resp.Words != "8.3 million" {
		t.Fatalf("words = %q, want %q", resp.Words, "8.3 million")
	}
}

func TestParseEndpointNamesFailure(t *testing.T) {
	tcs := []struct {
		text   string
		reason string
	}{
		{"", "empty_input"},
		{"47 zorp", "unrecognized_unit"},
		{"4e1.5", "malformed_exponent"},
	}

	for _, tc := range tcs {
		rec := doRequest(t, newTestServer(), http.MethodPost, "/api/v1/parse", models.ParseRequest{Text: tc.text})
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("%q: status = %d, want %d", tc.text, rec.Code, http.StatusUnprocessableEntity)
		}

		var resp models.ParseErrorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if resp.Reason != tc.reason {
			t.Fatalf("%q: reason = %q, want %q", tc.text, resp.Reason, tc.reason)
		}
		if resp.Input != tc.text {
			t.Fatalf("%q: input = %q", tc.text, resp.Input)
		}
	}
}

func TestParseEndpointLiteralInts(t *testing.T) {
	literal := false
	rec := doRequest(t, newTestServer(), http.MethodPost, "/api/v1/parse", models.ParseRequest{Text: "11", BareExponent: &literal})

	var resp models.ParseResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if math.Abs(resp.Value.Mantissa-1.1) > 1e-9 || resp.Value.Exponent != 1 {
		t.Fatalf("value = %+v, want {1.1 1}", resp.Value)
	}
}

func TestScoreEndpoint(t *testing.T) {
	rec := doRequest(t, newTestServer(), http.MethodPost, "/api/v1/score", models.ScoreRequest{
		TrueValue: number.Number{Mantissa: 3.9, Exponent: 11},
		UserValue: number.Number{Mantissa: 3.9, Exponent: 9},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var result scoring.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if result.Tier != scoring.TierFar || result.OOMDistance != 2.0 {
		t.Fatalf("result = %+v, want far tier at distance 2", result)
	}
}

func TestScoreEndpointRejectsNonPositive(t *testing.T) {
	rec := doRequest(t, newTestServer(), http.MethodPost, "/api/v1/score", models.ScoreRequest{
		TrueValue: number.Number{Mantissa: 0, Exponent: 11},
		UserValue: number.Number{Mantissa: 4, Exponent: 9},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestSubmitFlow(t *testing.T) {
	s := newTestServer()

	daily := doRequest(t, s, http.MethodGet, "/api/v1/daily?date=2026-08-31&reveal=true", nil)
	var dailyResp models.DailyResponse
	if err := json.Unmarshal(daily.Body.Bytes(), &dailyResp); err != nil {
		t.Fatalf("unmarshal daily: %v", err)
	}
	answer := number.Scientific(*dailyResp.Problems[0].TrueValue)

	rec := doRequest(t, s, http.MethodPost, "/api/v1/submit", models.SubmitRequest{
		Date:   "2026-08-31",
		Index:  0,
		Answer: answer,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp models.SubmitResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal submit: %v", err)
	}
	if resp.Result.Tier != scoring.TierExact {
		t.Fatalf("tier = %q, want exact when answering with the true value", resp.Result.Tier)
	}
	if resp.Problem.TrueValue == nil {
		t.Fatal("submit response must reveal the true value")
	}
	if resp.Problem.ID != dailyResp.Problems[0].ID {
		t.Fatal("submit regenerated a different problem")
	}
	if resp.Receipt == "" {
		t.Fatal("submit response missing receipt")
	}

	verify := doRequest(t, s, http.MethodGet, "/api/v1/receipts/verify?token="+resp.Receipt, nil)
	if verify.Code != http.StatusOK {
		t.Fatalf("verify status = %d, want %d: %s", verify.Code, http.StatusOK, verify.Body.String())
	}
	if !strings.Contains(verify.Body.String(), resp.Problem.ID) {
		t.Fatal("verified claims missing the problem id")
	}
}

func TestSubmitParseFailure(t *testing.T) {
	rec := doRequest(t, newTestServer(), http.MethodPost, "/api/v1/submit", models.SubmitRequest{
		Date:   "2026-08-31",
		Index:  1,
		Answer: "47 zorp",
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}

	var resp models.ParseErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Reason != "unrecognized_unit" {
		t.Fatalf("reason = %q, want unrecognized_unit", resp.Reason)
	}
}

func TestSubmitRejectsBadIndex(t *testing.T) {
	for _, index := range []int{-1, 5, 100} {
		rec := doRequest(t, newTestServer(), http.MethodPost, "/api/v1/submit", models.SubmitRequest{
			Date:   "2026-08-31",
			Index:  index,
			Answer: "4e11",
		})
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("index %d: status = %d, want %d", index, rec.Code, http.StatusBadRequest)
		}
	}
}

func TestSummaryEndpoint(t *testing.T) {
	rec := doRequest(t, newTestServer(), http.MethodPost, "/api/v1/summary", models.SummaryRequest{
		Results: []scoring.Result{
			{OOMDistance: 0.1, Tier: scoring.TierExact, Points: 100},
			{OOMDistance: 2.5, Tier: scoring.TierFar, Points: 0},
		},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var summary scoring.Summary
	if err := json.Unmarshal(rec.Body.Bytes(), &summary); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if summary.Problems != 2 || summary.TotalPoints != 100 || summary.MaxPoints != 200 {
		t.Fatalf("summary = %+v", summary)
	}
}

func TestVerifyRejectsBadToken(t *testing.T) {
	rec := doRequest(t, newTestServer(), http.MethodGet, "/api/v1/receipts/verify?token=garbage", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}
