package radixblitz

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T) *game {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gamedata.yml")
	return NewGame(path)
}

func finishedSession(score int) *session {
	return &session{
		rng:   rand.New(rand.NewSource(1)),
		score: score,
		asked: questionsPerSession,
	}
}

func TestGameOver_RecordsTheSessionScore(t *testing.T) {
	game := newTestGame(t)
	game.session = finishedSession(6)

	GameOver(game)

	assert.Equal(t, "game_over", game.state)
	assert.Equal(t, [5]int{10, 7, 6, 5, 4}, game.localData.RankedScores())

	// and it made it to disk
	persisted := ReadLocalData(game.dataPath)
	assert.Equal(t, [5]int{10, 7, 6, 5, 4}, persisted.Leaderboard)
}

func TestGameOver_NewHighScoreGetsTheSplash(t *testing.T) {
	game := newTestGame(t)
	game.session = finishedSession(15)

	GameOver(game)

	assert.Equal(t, "new_highscore", game.state)
	line1, line2 := game.screen.Lines()
	assert.Equal(t, "New High Score!", line1)
	assert.Equal(t, "Score: 15", line2)
	assert.Equal(t, 15, game.localData.BestEver)
}

func TestGameOver_NonQualifyingScoreChangesNothing(t *testing.T) {
	game := newTestGame(t)
	game.session = finishedSession(0)

	GameOver(game)

	assert.Equal(t, "game_over", game.state)
	assert.Equal(t, defaultScores, game.localData.RankedScores())
}

func TestNewGame_BootsWithPersistedOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gamedata.yml")

	first := NewGame(path)
	require.True(t, first.MusicOn())
	require.False(t, first.Fullscreen())

	first.localData.Options.Music = false
	first.localData.Options.Fullscreen = true
	first.localData.WriteToFile(path)

	second := NewGame(path)
	assert.False(t, second.MusicOn())
	assert.True(t, second.Fullscreen())
}

func TestLCDClipsLongLines(t *testing.T) {
	screen := &lcd{}

	screen.ClearAndShow("0123456789ABCDEF-overflow", "ok")

	line1, line2 := screen.Lines()
	assert.Equal(t, "0123456789ABCDEF", line1)
	assert.Equal(t, "ok", line2)
}
