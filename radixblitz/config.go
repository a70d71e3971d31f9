package radixblitz

import (
	"image/color"
	"time"
)

const gameTitle = "Radix Blitz"

// The simulated character display and keypad.
const lcdCols = 16
const lcdRows = 2

const questionsPerSession = 10

// Display pacing. Answer feedback and the high score splash hold the
// LCD for a moment before play moves on.
const feedbackDelay = 1400 * time.Millisecond
const highscoreSplash = 2500 * time.Millisecond

var g_debug = false

// Classic STN green.
var lcdBacklight = color.RGBA{0x9a, 0xc1, 0x2c, 0xff}
var lcdBezel = color.RGBA{0x22, 0x26, 0x1c, 0xff}
var lcdInk = color.RGBA{0x1c, 0x24, 0x0e, 0xff}
