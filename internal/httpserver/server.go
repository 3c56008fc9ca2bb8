// apps/go-server/internal/httpserver/server.go
//
// HTTP server wiring for the guess-the-number web front end.
// Responsibilities:
//   - Router + middleware (JSON, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/" (the single page), "/health".
//   - Game endpoints: POST /game/new, POST /game/guess, POST /game/hint,
//     GET /game/history, GET /game/state.
//   - Session token cookie (HS256 JWT carrying the session id).
//
// Notes:
//   - Game mutations run one at a time behind a server-wide mutex.
//   - A new game supersedes the caller's previous session.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/guessnumber/apps/go-server/assets"
	"github.com/robalobadob/guessnumber/apps/go-server/internal/game"
	"github.com/robalobadob/guessnumber/apps/go-server/internal/store"
)

// Options configures a Server.
type Options struct {
	Secret      string        // HMAC key for session tokens
	TTL         time.Duration // session token lifetime
	GameOptions []game.Option // passed to every game.Start
}

// Server bundles router, session registry and best-score store.
type Server struct {
	r        *chi.Mux
	sessions store.SessionStore
	scores   game.ScoreStore
	tokens   tokenSigner
	gameOpts []game.Option

	mu sync.Mutex // serializes game mutations
}

// New constructs a Server, installs middleware, and registers routes.
func New(sessions store.SessionStore, scores game.ScoreStore, o Options) *Server {
	if o.TTL <= 0 {
		o.TTL = 24 * time.Hour
	}
	if o.Secret == "" {
		o.Secret = "dev_secret_change_me"
	}
	s := &Server{
		r:        chi.NewRouter(),
		sessions: sessions,
		scores:   scores,
		tokens:   tokenSigner{secret: []byte(o.Secret), ttl: o.TTL},
		gameOpts: o.GameOptions,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses

	// --- page + diagnostics ---
	s.r.Get("/", s.handleIndex)
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.r.Route("/game", func(r chi.Router) {
		r.Post("/new", s.handleNewGame)
		r.Post("/guess", s.handleGuess)
		r.Post("/hint", s.handleHint)
		r.Get("/history", s.handleHistory)
		r.Get("/state", s.handleState)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorRes{Error: "not_found"})
	})

	return s
}

// Start serves HTTP on addr until ctx is cancelled.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("web front end listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	}
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// ------------------------------- PAGE --------------------------------------

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := assets.IndexHTML()
	if err != nil {
		log.Error().Err(err).Msg("load index.html")
		writeJSON(w, http.StatusInternalServerError, errorRes{Error: "page_unavailable"})
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)
}

// ------------------------------ GAME ---------------------------------------

// newGameReq/Res payloads for POST /game/new. Zero bounds select 1..100.
type newGameReq struct {
	Low  int `json:"low"`
	High int `json:"high"`
}
type newGameRes struct {
	game.SessionView
	Token string `json:"token"`
}

// guessReq accepts the guess as a JSON string or number.
type guessReq struct {
	Guess json.RawMessage `json:"guess"`
}

type stateRes struct {
	SessionID string      `json:"sessionId"`
	Status    game.Status `json:"status"`
	Stats     game.Stats  `json:"stats"`
}

type errorRes struct {
	Error   string      `json:"error"`
	Message string      `json:"message,omitempty"`
	Stats   *game.Stats `json:"stats,omitempty"`
}

// handleNewGame starts a session, drops the caller's previous one and
// hands out a fresh session token.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, err := s.tokens.parse(bearerOrCookie(r)); err == nil {
		_ = s.sessions.Delete(r.Context(), prev)
	}

	sess, view := game.Start(r.Context(), s.scores, req.Low, req.High, s.gameOpts...)
	if err := s.sessions.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		writeJSON(w, http.StatusInternalServerError, errorRes{Error: "save_failed"})
		return
	}

	tok, exp, err := s.tokens.sign(sess.ID)
	if err != nil {
		log.Error().Err(err).Msg("sign session token")
		writeJSON(w, http.StatusInternalServerError, errorRes{Error: "sign_failed"})
		return
	}
	setSessionCookie(w, r, tok, exp)

	writeJSON(w, http.StatusOK, newGameRes{SessionView: view, Token: tok})
}

// handleGuess applies a guess to the caller's session.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorRes{Error: "bad_json"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}

	// Other sessions may have improved the shared best score since Start.
	sess.RefreshBestScore(r.Context())

	res, err := sess.SubmitGuess(r.Context(), rawGuess(req.Guess))
	switch {
	case errors.Is(err, game.ErrInvalidGuess):
		writeJSON(w, http.StatusBadRequest, res)
		return
	case errors.Is(err, game.ErrGameFinished):
		writeJSON(w, http.StatusConflict, errorRes{Error: "game_finished", Message: res.Message, Stats: &res.Stats})
		return
	}

	if err := s.sessions.Save(r.Context(), sess); err != nil {
		log.Warn().Err(err).Str("session", sess.ID).Msg("save session")
	}
	writeJSON(w, http.StatusOK, res)
}

// handleHint charges the hint penalty on the caller's session.
func (s *Server) handleHint(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}

	res, err := sess.RequestHint()
	switch {
	case errors.Is(err, game.ErrInvalidAction):
		writeJSON(w, http.StatusBadRequest, errorRes{Error: "invalid_action", Message: res.Message, Stats: &res.Stats})
		return
	case errors.Is(err, game.ErrGameFinished):
		writeJSON(w, http.StatusConflict, errorRes{Error: "game_finished", Message: res.Message, Stats: &res.Stats})
		return
	}

	if err := s.sessions.Save(r.Context(), sess); err != nil {
		log.Warn().Err(err).Str("session", sess.ID).Msg("save session")
	}
	writeJSON(w, http.StatusOK, res)
}

// handleHistory returns the last guesses, most recent first.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, sess.History())
}

// handleState returns the scoreboard of the caller's session.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	sess.RefreshBestScore(r.Context())
	writeJSON(w, http.StatusOK, stateRes{SessionID: sess.ID, Status: sess.Status, Stats: sess.Stats()})
}

// lookup resolves the caller's session or writes the error response.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*game.Session, bool) {
	tok := bearerOrCookie(r)
	if tok == "" {
		writeJSON(w, http.StatusUnauthorized, errorRes{Error: "no_session"})
		return nil, false
	}
	id, err := s.tokens.parse(tok)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorRes{Error: "invalid_token"})
		return nil, false
	}
	sess, err := s.sessions.Get(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorRes{Error: "not_found"})
		return nil, false
	}
	return sess, true
}

// rawGuess turns a JSON string or number into the raw text the engine parses.
func rawGuess(m json.RawMessage) string {
	var s string
	if err := json.Unmarshal(m, &s); err == nil {
		return s
	}
	return string(m)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}
