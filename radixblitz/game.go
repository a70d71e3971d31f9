package radixblitz

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
)

type menu struct {
	selection int
	options   []string
}

var implementedMenuItems = []string{
	"Play",
	"High Scores",
	"Reset Scores",
	"Options",
	"Quit",
	"Music On",
	"Music Off",
	"Fullscreen (1080p)",
	"Windowed (1024x768)",
	"Back",
}

func NewMainMenu() menu {
	return menu{
		selection: 0,
		options: []string{
			"Play",
			"High Scores",
			"Reset Scores",
			"Options",
			"Quit",
		},
	}
}

func NewOptionsMenu() menu {
	return menu{
		selection: 0,
		options: []string{
			"Music On",
			"Music Off",
			"Fullscreen (1080p)",
			"Windowed (1024x768)",
			"Back",
		},
	}
}

type game struct {
	state string

	menu    menu
	session *session

	localData LocalData
	dataPath  string

	screen  *lcd
	display Display

	feedbackLine1 string
	feedbackLine2 string
	stateUntil    time.Time

	rng *rand.Rand

	lastFrame          time.Time
	lastMenuChoiceTime time.Time
	totalTime          float64
}

func NewGame(dataPath string) *game {
	game := new(game)
	game.state = "main_menu"
	game.menu = NewMainMenu()
	game.localData = *ReadLocalData(dataPath)
	game.dataPath = dataPath

	game.screen = &lcd{}
	game.display = game.screen
	game.display.ClearAndShow(gameTitle, "")

	game.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	game.lastFrame = time.Now()
	game.lastMenuChoiceTime = time.Now()
	game.totalTime = 0.0

	return game
}

func (game *game) MusicOn() bool {
	return game.localData.Options.Music
}

func (game *game) Fullscreen() bool {
	return game.localData.Options.Fullscreen
}

func (game *game) startSession() {
	game.session = NewSession(game.rng)
	game.state = "playing"
}

// GameOver ends the running session and records its score, exactly once
// per session. A score beating the old rank 0 entry gets the splash and
// the jingle before the board is shown.
func GameOver(game *game) {
	PlaySound("game/over")

	score := game.session.Score()
	outcome := game.localData.RecordSession(score)
	game.localData.WriteToFile(game.dataPath)

	if outcome.NewHighScore {
		PlaySound("game/highscore")
		game.display.ClearAndShow("New High Score!", fmt.Sprintf("Score: %d", score))
		game.state = "new_highscore"
		game.stateUntil = time.Now().Add(highscoreSplash)
	} else {
		game.display.ClearAndShow("Game Over", fmt.Sprintf("Score: %d", score))
		game.state = "game_over"
	}
}

func UpdateGame(win *pixelgl.Window, game *game) {
	if game.state == "quitting" {
		win.SetClosed(true)
	}

	dt := math.Min(time.Since(game.lastFrame).Seconds(), 0.1)
	game.totalTime += dt
	game.lastFrame = time.Now()

	playerConfirmed := uiConfirm(win)
	playerCancelled := uiCancel(win)

	switch game.state {
	case "main_menu", "options":
		if playerConfirmed {
			PlaySound("menu/confirm")
			switch game.menu.options[game.menu.selection] {
			case "Play":
				game.startSession()

			case "High Scores":
				game.state = "high_scores"

			case "Reset Scores":
				game.localData.ResetToDefaults()
				game.localData.WriteToFile(game.dataPath)
				game.state = "high_scores"

			case "Options":
				game.state = "options"
				game.menu = NewOptionsMenu()

			case "Quit":
				game.state = "quitting"

			case "Music On":
				game.localData.Options.Music = true
				game.localData.WriteToFile(game.dataPath)
				PlaySong("menu")

			case "Music Off":
				game.localData.Options.Music = false
				game.localData.WriteToFile(game.dataPath)
				StopMusic()

			case "Fullscreen (1080p)":
				game.localData.Options.Fullscreen = true
				game.localData.WriteToFile(game.dataPath)
				win.SetMonitor(pixelgl.PrimaryMonitor())

			case "Windowed (1024x768)":
				game.localData.Options.Fullscreen = false
				game.localData.WriteToFile(game.dataPath)
				win.SetMonitor(nil)
				win.SetBounds(pixel.R(0, 0, 1024, 768))

			case "Back":
				game.state = "main_menu"
				game.menu = NewMainMenu()
			}
		} else if playerCancelled && game.state == "options" {
			game.state = "main_menu"
			game.menu = NewMainMenu()
		}

		menuChange := uiChangeSelection(win, game.lastFrame, game.lastMenuChoiceTime)
		if menuChange != 0 {
			PlaySound("menu/step")
			game.menu.selection = (game.menu.selection + menuChange + len(game.menu.options)) % len(game.menu.options)
			game.lastMenuChoiceTime = time.Now()
		}

	case "playing":
		if win.JustPressed(pixelgl.KeyGraveAccent) {
			g_debug = !g_debug
		}

		if playerCancelled {
			// abandoned sessions never reach the scoreboard
			game.session = nil
			game.state = "main_menu"
			game.menu = NewMainMenu()
			return
		}

		if key, ok := PollKey(win); ok {
			switch game.session.Apply(key) {
			case answerCorrect:
				PlaySound("quiz/correct")
				game.feedbackLine1 = "Correct!"
				game.feedbackLine2 = ""
				game.state = "feedback"
				game.stateUntil = time.Now().Add(feedbackDelay)

			case answerWrong:
				PlaySound("quiz/wrong")
				game.feedbackLine1 = "Incorrect!"
				game.feedbackLine2 = game.session.LastAnswer()
				game.state = "feedback"
				game.stateUntil = time.Now().Add(feedbackDelay)
			}
		}

		if game.state == "playing" {
			line1, line2 := game.session.Lines()
			game.display.ClearAndShow(line1, line2)
		}

	case "feedback":
		game.display.ClearAndShow(game.feedbackLine1, game.feedbackLine2)
		if time.Now().After(game.stateUntil) {
			if game.session.Done() {
				GameOver(game)
			} else {
				game.state = "playing"
			}
		}

	case "new_highscore":
		if playerConfirmed || time.Now().After(game.stateUntil) {
			game.state = "high_scores"
		}

	case "game_over":
		if playerConfirmed {
			game.state = "high_scores"
		} else if playerCancelled {
			game.state = "main_menu"
			game.menu = NewMainMenu()
		}

	case "high_scores":
		if playerConfirmed || playerCancelled {
			game.state = "main_menu"
			game.menu = NewMainMenu()
			game.display.ClearAndShow(gameTitle, "")
		}
	}
}
