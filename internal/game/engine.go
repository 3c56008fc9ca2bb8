// apps/go-server/internal/game/engine.go
//
// Core game engine for a single guess-the-number session.
// Responsibilities:
//   - Start sessions: draw the secret, reset counters and range, read the best score.
//   - Validate and apply guesses (integer, inside the session bounds).
//   - Narrow the displayed range and keep the guess history.
//   - Hints: a ±10 window around the secret, paid with 2 attempts.
//   - Victory: elapsed time, rating tier, best score update through ScoreStore.
//
// Notes:
//   - A winning guess is not counted as an attempt.
//   - Every rejected call leaves the session untouched.
package game

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	DefaultLow  = 1
	DefaultHigh = 100

	hintPenalty = 2
	hintSpread  = 10
	historySize = 10
)

const (
	msgFirstGuess  = "🎯 Make your first guess!"
	msgHigher      = "📈 It's higher!"
	msgLower       = "📉 It's lower!"
	msgFound       = "🎉 Well done! You found it!"
	msgNeedGuess   = "❌ Make at least one guess before asking for a hint!"
	msgFinished    = "🏁 This game is over, start a new one!"
	msgInvalidTmpl = "❌ Enter a valid number between %d and %d!"
	msgHintTmpl    = "💡 The number is between %d and %d (cost: %d attempts)"
)

// Start creates a fresh session. Passing 0 for both bounds selects 1..100;
// reversed bounds are swapped. A nil scores disables best-score persistence.
//
// A failing best-score read is logged and treated as "no best score yet".
func Start(ctx context.Context, scores ScoreStore, low, high int, opts ...Option) (*Session, SessionView) {
	if low == 0 && high == 0 {
		low, high = DefaultLow, DefaultHigh
	}
	if high < low {
		low, high = high, low
	}

	cfg := settings{now: time.Now}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.id == "" {
		cfg.id = uuid.NewString()
	}

	s := &Session{
		ID:        cfg.id,
		Secret:    drawSecret(cfg, low, high),
		Low:       low,
		High:      high,
		MinRange:  low,
		MaxRange:  high,
		Guesses:   []Guess{},
		StartedAt: cfg.now(),
		Status:    StatusPlaying,
		scores:    scores,
		now:       cfg.now,
	}

	if scores != nil {
		best, ok, err := scores.Read(ctx)
		switch {
		case err != nil:
			log.Warn().Err(err).Str("session", s.ID).Msg("read best score")
		case ok:
			s.BestScore = &best
		}
	}

	log.Debug().Str("session", s.ID).Int("secret", s.Secret).Msg("new game")

	return s, SessionView{
		SessionID:  s.ID,
		Message:    msgFirstGuess,
		ResetInput: true,
		Stats:      s.Stats(),
	}
}

// drawSecret picks a uniform integer in [low, high] unless one was fixed.
func drawSecret(cfg settings, low, high int) int {
	if cfg.fixed && cfg.secret >= low && cfg.secret <= high {
		return cfg.secret
	}
	span := high - low + 1
	if cfg.rng != nil {
		return low + cfg.rng.Intn(span)
	}
	return low + rand.Intn(span)
}

// RefreshBestScore re-reads the best score from the store, for front ends
// whose live sessions share one store. A failing read keeps the cached value.
func (s *Session) RefreshBestScore(ctx context.Context) {
	if s.scores == nil {
		return
	}
	best, ok, err := s.scores.Read(ctx)
	switch {
	case err != nil:
		log.Warn().Err(err).Str("session", s.ID).Msg("refresh best score")
	case ok:
		s.BestScore = &best
	default:
		s.BestScore = nil
	}
}

// SubmitGuess validates raw and applies it.
// Returns the tagged result, plus ErrInvalidGuess or ErrGameFinished on rejection.
//
// State transitions:
//   - guess == secret → Status = won, best score possibly updated.
//   - otherwise → attempts+1, range tightened, history appended.
func (s *Session) SubmitGuess(ctx context.Context, raw string) (GuessResult, error) {
	if s.Status == StatusWon {
		return GuessResult{Kind: KindInvalidGuess, Message: msgFinished, Stats: s.Stats()}, ErrGameFinished
	}

	guess, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || guess < s.Low || guess > s.High {
		return GuessResult{
			Kind:    KindInvalidGuess,
			Message: fmt.Sprintf(msgInvalidTmpl, s.Low, s.High),
			Stats:   s.Stats(),
		}, ErrInvalidGuess
	}

	if guess == s.Secret {
		return s.win(ctx), nil
	}

	s.Attempts++

	outcome, msg := TooHigh, msgLower
	if guess < s.Secret {
		outcome, msg = TooLow, msgHigher
	}

	// The range only ever tightens.
	switch {
	case outcome == TooLow && guess > s.MinRange:
		s.MinRange = guess
	case outcome == TooHigh && guess < s.MaxRange:
		s.MaxRange = guess
	}

	s.Guesses = append(s.Guesses, Guess{Value: guess, Outcome: outcome, Attempt: s.Attempts})

	return GuessResult{
		Kind:    KindFeedback,
		Message: msg,
		Outcome: outcome,
		Stats:   s.Stats(),
	}, nil
}

// win finishes the session and records the best score when it improved.
func (s *Session) win(ctx context.Context) GuessResult {
	s.Status = StatusWon

	v := &Victory{
		Secret:   s.Secret,
		Attempts: s.Attempts,
		Elapsed:  FormatElapsed(s.now().Sub(s.StartedAt)),
		Rating:   RatingFor(s.Attempts),
	}

	if s.BestScore == nil || s.Attempts < *s.BestScore {
		best := s.Attempts
		s.BestScore = &best
		v.NewBest = true
		if s.scores != nil {
			if err := s.scores.Write(ctx, best); err != nil {
				log.Warn().Err(err).Str("session", s.ID).Int("attempts", best).Msg("write best score")
			}
		}
	}

	log.Info().
		Str("session", s.ID).
		Int("attempts", v.Attempts).
		Str("elapsed", v.Elapsed).
		Str("rating", v.Rating.Tier).
		Msg("secret found")

	return GuessResult{
		Kind:    KindVictory,
		Message: msgFound,
		Stats:   s.Stats(),
		Victory: v,
	}
}

// RequestHint charges the hint penalty and reveals a window around the secret.
// The window is computed from the secret alone and never intersected with
// MinRange/MaxRange; it touches neither the range nor the history.
func (s *Session) RequestHint() (HintResult, error) {
	if s.Status == StatusWon {
		return HintResult{Message: msgFinished, Stats: s.Stats()}, ErrGameFinished
	}
	if s.Attempts == 0 {
		return HintResult{Message: msgNeedGuess, Stats: s.Stats()}, ErrInvalidAction
	}

	s.Attempts += hintPenalty

	lo := max(s.Low, s.Secret-hintSpread)
	hi := min(s.High, s.Secret+hintSpread)

	return HintResult{
		Min:     lo,
		Max:     hi,
		Message: fmt.Sprintf(msgHintTmpl, lo, hi, hintPenalty),
		Stats:   s.Stats(),
	}, nil
}

// History returns at most the last 10 guesses, most recent first.
func (s *Session) History() []Guess {
	n := len(s.Guesses)
	k := min(n, historySize)
	out := make([]Guess, 0, k)
	for i := n - 1; i >= n-k; i-- {
		out = append(out, s.Guesses[i])
	}
	return out
}

// Stats reports the current scoreboard.
func (s *Session) Stats() Stats {
	var best *int
	if s.BestScore != nil {
		b := *s.BestScore
		best = &b
	}
	return Stats{
		Attempts:  s.Attempts,
		BestScore: best,
		Min:       s.MinRange,
		Max:       s.MaxRange,
		Range:     fmt.Sprintf("%d-%d", s.MinRange, s.MaxRange),
	}
}

// Finished reports whether the secret has been found.
func (s *Session) Finished() bool { return s.Status == StatusWon }
