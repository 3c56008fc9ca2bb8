// apps/go-server/internal/console/console.go
//
// Terminal front end for a local player.
// Responsibilities:
//   - Read one command per line: a number guesses, "h" asks for a hint,
//     "n" starts over, "l" lists the history, "q" quits.
//   - Render every SessionView / GuessResult / HintResult the engine returns.
//   - Offer a new game after each victory.

package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/guessnumber/apps/go-server/internal/game"
)

// Console drives one game at a time from a line-oriented reader.
type Console struct {
	in     *bufio.Scanner
	out    io.Writer
	scores game.ScoreStore
	opts   []game.Option

	lines chan string // fed by the reader goroutine, closed at end of input
	sess  *game.Session
}

// New wires a console; opts are passed to every game.Start.
func New(in io.Reader, out io.Writer, scores game.ScoreStore, opts ...game.Option) *Console {
	return &Console{
		in:     bufio.NewScanner(in),
		out:    out,
		scores: scores,
		opts:   opts,
	}
}

// Run plays until the input ends, the player quits or ctx is cancelled.
func Run(ctx context.Context, in io.Reader, out io.Writer, scores game.ScoreStore, opts ...game.Option) error {
	return New(in, out, scores, opts...).Run(ctx)
}

// Run is the main prompt loop. It returns as soon as ctx is cancelled, even
// while waiting for input.
func (c *Console) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	c.startReader(ctx)

	c.printf("🎯 Guess The Number: find the number between %d and %d.\n", game.DefaultLow, game.DefaultHigh)
	c.printf("Commands: <number> guess, h hint (costs 2 attempts), n new game, l history, q quit\n")
	c.newGame(ctx)

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		line, ok := c.readLine(ctx, "> ")
		if !ok {
			return c.inputErr(ctx)
		}

		switch cmd := strings.ToLower(strings.TrimSpace(line)); cmd {
		case "q", "quit", "exit":
			c.printf("👋 Bye!\n")
			return nil
		case "n", "new":
			c.newGame(ctx)
		case "h", "hint":
			c.hint()
		case "l", "history":
			renderHistory(c.out, c.sess.History())
		case "?", "help":
			c.printf("Commands: <number> guess, h hint, n new game, l history, q quit\n")
		default:
			won := c.guess(ctx, line)
			if !won {
				continue
			}
			again, err := c.askPlayAgain(ctx)
			if err != nil || !again {
				return err
			}
			c.newGame(ctx)
		}
	}
}

func (c *Console) newGame(ctx context.Context) {
	sess, view := game.Start(ctx, c.scores, game.DefaultLow, game.DefaultHigh, c.opts...)
	c.sess = sess
	renderView(c.out, view)
}

// guess submits line and reports whether it won the game.
func (c *Console) guess(ctx context.Context, line string) bool {
	res, err := c.sess.SubmitGuess(ctx, line)
	if err != nil && !errors.Is(err, game.ErrInvalidGuess) && !errors.Is(err, game.ErrGameFinished) {
		log.Warn().Err(err).Msg("submit guess")
	}
	renderGuess(c.out, res)
	if res.Kind == game.KindFeedback {
		renderHistory(c.out, c.sess.History())
	}
	return res.Kind == game.KindVictory
}

func (c *Console) hint() {
	res, err := c.sess.RequestHint()
	if err != nil && !errors.Is(err, game.ErrInvalidAction) && !errors.Is(err, game.ErrGameFinished) {
		log.Warn().Err(err).Msg("request hint")
	}
	c.printf("%s\n", res.Message)
	renderStats(c.out, res.Stats)
}

// askPlayAgain keeps asking until it reads yes or no. EOF means no.
func (c *Console) askPlayAgain(ctx context.Context) (bool, error) {
	for {
		line, ok := c.readLine(ctx, "Play again? (y/n) ")
		if !ok {
			return false, c.inputErr(ctx)
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "n", "no", "q", "quit":
			c.printf("👋 Bye!\n")
			return false, nil
		}
	}
}

// startReader scans input in the background so a blocked read never holds
// up cancellation.
func (c *Console) startReader(ctx context.Context) {
	c.lines = make(chan string)
	go func() {
		defer close(c.lines)
		for c.in.Scan() {
			select {
			case c.lines <- c.in.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
}

// readLine prompts and waits for the next line. ok is false at end of input
// or once ctx is done.
func (c *Console) readLine(ctx context.Context, prompt string) (string, bool) {
	c.printf("%s", prompt)
	select {
	case line, ok := <-c.lines:
		return line, ok
	case <-ctx.Done():
		return "", false
	}
}

// inputErr reports why reading stopped. Cancellation is a clean exit; the
// scanner is only inspected once the reader goroutine has closed lines.
func (c *Console) inputErr(ctx context.Context) error {
	if ctx.Err() != nil {
		return nil
	}
	return c.in.Err()
}

func (c *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}
