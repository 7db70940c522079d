// Package receipt issues and verifies signed score receipts. A receipt lets a
// player prove a graded result without the server keeping any state.
package receipt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/todmy/oom-trainer/internal/scoring"
)

var ErrInvalidToken = errors.New("invalid receipt token")

// Claims carries the graded submission inside the signed token.
type Claims struct {
	ProblemID   string       `json:"problem_id"`
	Date        string       `json:"date"`
	Tier        scoring.Tier `json:"tier"`
	OOMDistance float64      `json:"oom_distance"`
	Points      int          `json:"points"`
	jwt.RegisteredClaims
}

// Config holds receipt signing configuration.
type Config struct {
	Secret   string
	Lifetime time.Duration
}

// DefaultConfig returns default configuration. The secret must be overridden
// for receipts to be meaningful across restarts.
func DefaultConfig() Config {
	return Config{
		Secret:   "change-me-in-production",
		Lifetime: 7 * 24 * time.Hour,
	}
}

// Service signs and verifies receipts with an HMAC secret.
type Service struct {
	config Config
}

// NewService creates a receipt service.
func NewService(config Config) *Service {
	if config.Secret == "" {
		config.Secret = DefaultConfig().Secret
	}
	if config.Lifetime <= 0 {
		config.Lifetime = DefaultConfig().Lifetime
	}
	return &Service{config: config}
}

// Sign issues a receipt for a graded submission.
func (s *Service) Sign(problemID, date string, result scoring.Result) (string, error) {
	claims := &Claims{
		ProblemID:   problemID,
		Date:        date,
		Tier:        result.Tier,
		OOMDistance: result.OOMDistance,
		Points:      result.Points,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.Lifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.Secret))
}

// Verify validates a receipt token and returns its claims.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Secret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
