package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/guessnumber/apps/go-server/internal/game"
	"github.com/robalobadob/guessnumber/apps/go-server/internal/store"
)

func play(t *testing.T, input string, scores game.ScoreStore, secret int) string {
	t.Helper()
	var out bytes.Buffer
	err := Run(context.Background(), strings.NewReader(input), &out, scores, game.WithSecret(secret))
	require.NoError(t, err)
	return out.String()
}

func TestRun_WinAndQuit(t *testing.T) {
	scores := store.NewMemoryScores()

	// Given: a secret of 42 and the scenario guesses
	out := play(t, "50\n10\n42\nn\n", scores, 42)

	// Then: feedback, victory and goodbye are rendered
	assert.Contains(t, out, "🎯 Make your first guess!")
	assert.Contains(t, out, "📉 It's lower!")
	assert.Contains(t, out, "📈 It's higher!")
	assert.Contains(t, out, "Attempts: 2 | Best: - | Range: 10-50")
	assert.Contains(t, out, "🏆 Incredible! You're a genius!")
	assert.Contains(t, out, "  Number:   42\n")
	assert.Contains(t, out, "  Attempts: 2\n")
	assert.Contains(t, out, "New best score!")
	assert.Contains(t, out, "👋 Bye!")

	// Then: the best score was stored
	best, ok, err := scores.Read(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, best)
}

func TestRun_PlayAgainShowsBestScore(t *testing.T) {
	scores := store.NewMemoryScores()

	out := play(t, "1\n42\ny\nq\n", scores, 42)

	assert.Contains(t, out, "Attempts: 0 | Best: 1 | Range: 1-100")
}

func TestRun_HintAndHistory(t *testing.T) {
	// Given: hint first (rejected), then a guess, a hint and the history
	out := play(t, "h\n80\nh\nl\nq\n", nil, 77)

	assert.Contains(t, out, "Make at least one guess before asking for a hint!")
	assert.Contains(t, out, "💡 The number is between 67 and 87 (cost: 2 attempts)")
	assert.Contains(t, out, "Attempts: 3 | Best: - | Range: 1-80")
	assert.Contains(t, out, "  #1: 80 📉\n")
}

func TestRun_EmptyHistory(t *testing.T) {
	out := play(t, "l\nq\n", nil, 10)

	assert.Contains(t, out, "No guesses yet")
}

func TestRun_InvalidInput(t *testing.T) {
	out := play(t, "abc\n0\n101\nq\n", nil, 10)

	assert.Equal(t, 3, strings.Count(out, "❌ Enter a valid number between 1 and 100!"))
	assert.NotContains(t, out, "Attempts: 1")
}

func TestRun_NewGameResets(t *testing.T) {
	out := play(t, "5\nn\nq\n", nil, 10)

	assert.Contains(t, out, "Attempts: 1 | Best: - | Range: 5-100")
	assert.Equal(t, 2, strings.Count(out, "🎯 Make your first guess!"))
}

func TestRun_EOFEndsCleanly(t *testing.T) {
	out := play(t, "5", nil, 10)

	assert.Contains(t, out, "It's higher!")
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer

	err := Run(ctx, strings.NewReader("5\n"), &out, nil)

	require.NoError(t, err)
	assert.NotContains(t, out.String(), "It's")
}

func TestRun_CancelWhileWaitingForInput(t *testing.T) {
	// Given: an input that never delivers a line
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	var out bytes.Buffer
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, pr, &out, nil, game.WithSecret(10))
	}()

	// When: the context is cancelled while Run waits at the prompt
	time.Sleep(50 * time.Millisecond)
	cancel()

	// Then: Run returns promptly without an error
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
	assert.Contains(t, out.String(), "🎯 Make your first guess!")
}
