// apps/go-server/internal/game/types.go
//
// Core type definitions for the guess-the-number engine.
// Defines:
//   - Outcome: directional feedback for a non-winning guess.
//   - Guess: one entry of the session history.
//   - Stats / SessionView / GuessResult / HintResult: values handed to a display.
//   - Session: state for a single play-through.

package game

import (
	"math/rand"
	"time"
)

// Outcome is the feedback for a guess that missed the secret.
type Outcome string

const (
	TooLow  Outcome = "too-low"
	TooHigh Outcome = "too-high"
)

// Status is the coarse lifecycle state of a session.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
)

// ResultKind tags a GuessResult.
type ResultKind string

const (
	KindInvalidGuess ResultKind = "invalid"
	KindFeedback     ResultKind = "feedback"
	KindVictory      ResultKind = "victory"
)

// Guess is a single history record. Winning guesses are never recorded.
type Guess struct {
	Value   int     `json:"value"`
	Outcome Outcome `json:"outcome"`
	Attempt int     `json:"attempt"` // attempt counter right after the guess
}

// Stats is the scoreboard shown next to the input.
type Stats struct {
	Attempts  int    `json:"attempts"`
	BestScore *int   `json:"bestScore"` // nil until a game has been won
	Min       int    `json:"min"`
	Max       int    `json:"max"`
	Range     string `json:"range"` // "min-max"
}

// SessionView is returned when a session starts.
type SessionView struct {
	SessionID  string `json:"sessionId"`
	Message    string `json:"message"`
	ResetInput bool   `json:"resetInput"`
	Stats      Stats  `json:"stats"`
}

// Victory describes a finished session.
type Victory struct {
	Secret   int    `json:"secret"`
	Attempts int    `json:"attempts"`
	Elapsed  string `json:"elapsed"` // "Ms Ss" or "Ss"
	Rating   Rating `json:"rating"`
	NewBest  bool   `json:"newBest"`
}

// GuessResult is the tagged result of SubmitGuess.
type GuessResult struct {
	Kind    ResultKind `json:"kind"`
	Message string     `json:"message"`
	Outcome Outcome    `json:"outcome,omitempty"`
	Stats   Stats      `json:"stats"`
	Victory *Victory   `json:"victory,omitempty"`
}

// HintResult carries the informational interval around the secret.
type HintResult struct {
	Min     int    `json:"min"`
	Max     int    `json:"max"`
	Message string `json:"message"`
	Stats   Stats  `json:"stats"`
}

// Session holds the state of one play-through.
// It is not safe for concurrent use; callers drive it from a single actor.
type Session struct {
	ID        string
	Secret    int
	Low       int // inclusive bounds the secret was drawn from
	High      int
	Attempts  int
	MinRange  int
	MaxRange  int
	Guesses   []Guess // append-only, oldest first
	StartedAt time.Time
	BestScore *int
	Status    Status

	scores ScoreStore
	now    func() time.Time
}

// Option tweaks how Start builds a session.
type Option func(*settings)

type settings struct {
	id     string
	secret int
	fixed  bool
	rng    *rand.Rand
	now    func() time.Time
}

// WithSecret fixes the secret instead of drawing it. Values outside the
// bounds are ignored.
func WithSecret(n int) Option {
	return func(s *settings) { s.secret, s.fixed = n, true }
}

// WithRand draws the secret from r.
func WithRand(r *rand.Rand) Option {
	return func(s *settings) { s.rng = r }
}

// WithClock replaces time.Now for start and elapsed time.
func WithClock(now func() time.Time) Option {
	return func(s *settings) { s.now = now }
}

// WithID sets the session identifier.
func WithID(id string) Option {
	return func(s *settings) { s.id = id }
}
