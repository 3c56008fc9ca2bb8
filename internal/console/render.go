package console

import (
	"fmt"
	"io"
	"strconv"

	"github.com/robalobadob/guessnumber/apps/go-server/internal/game"
)

func renderView(w io.Writer, v game.SessionView) {
	fmt.Fprintf(w, "\n%s\n", v.Message)
	renderStats(w, v.Stats)
}

func renderStats(w io.Writer, s game.Stats) {
	best := "-"
	if s.BestScore != nil {
		best = strconv.Itoa(*s.BestScore)
	}
	fmt.Fprintf(w, "Attempts: %d | Best: %s | Range: %s\n", s.Attempts, best, s.Range)
}

func renderGuess(w io.Writer, r game.GuessResult) {
	fmt.Fprintf(w, "%s\n", r.Message)
	if r.Kind == game.KindVictory && r.Victory != nil {
		renderVictory(w, r.Victory)
		return
	}
	renderStats(w, r.Stats)
}

func renderVictory(w io.Writer, v *game.Victory) {
	fmt.Fprintf(w, "\n%s\n", v.Rating.Message)
	fmt.Fprintf(w, "  Number:   %d\n", v.Secret)
	fmt.Fprintf(w, "  Attempts: %d\n", v.Attempts)
	fmt.Fprintf(w, "  Time:     %s\n", v.Elapsed)
	if v.NewBest {
		fmt.Fprintf(w, "  🏆 New best score!\n")
	}
}

func renderHistory(w io.Writer, h []game.Guess) {
	if len(h) == 0 {
		fmt.Fprintf(w, "No guesses yet\n")
		return
	}
	for _, g := range h {
		arrow := "📉"
		if g.Outcome == game.TooLow {
			arrow = "📈"
		}
		fmt.Fprintf(w, "  #%d: %d %s\n", g.Attempt, g.Value, arrow)
	}
}
