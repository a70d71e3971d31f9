package radixblitz

import (
	"time"

	"github.com/faiface/pixel/pixelgl"
)

const uiClickWait = 0.125

// keypadMap folds the 4x4 keypad onto the keyboard. Digits accept both
// the top row and the numpad; * and # get the keys closest to their
// keypad roles.
var keypadMap = map[pixelgl.Button]Key{
	pixelgl.Key0: '0',
	pixelgl.Key1: '1',
	pixelgl.Key2: '2',
	pixelgl.Key3: '3',
	pixelgl.Key4: '4',
	pixelgl.Key5: '5',
	pixelgl.Key6: '6',
	pixelgl.Key7: '7',
	pixelgl.Key8: '8',
	pixelgl.Key9: '9',

	pixelgl.KeyKP0: '0',
	pixelgl.KeyKP1: '1',
	pixelgl.KeyKP2: '2',
	pixelgl.KeyKP3: '3',
	pixelgl.KeyKP4: '4',
	pixelgl.KeyKP5: '5',
	pixelgl.KeyKP6: '6',
	pixelgl.KeyKP7: '7',
	pixelgl.KeyKP8: '8',
	pixelgl.KeyKP9: '9',

	pixelgl.KeyA: 'A',
	pixelgl.KeyB: 'B',
	pixelgl.KeyC: 'C',
	pixelgl.KeyD: 'D',

	pixelgl.KeyKPMultiply: KeyStar,
	pixelgl.KeyEnter:      KeyStar,
	pixelgl.KeyKPEnter:    KeyStar,

	pixelgl.KeyKPDivide:  KeyHash,
	pixelgl.KeyBackspace: KeyHash,
}

// PollKey is a non-blocking scan of the keypad: at most one symbol per
// frame, nothing pressed means nothing returned.
func PollKey(win *pixelgl.Window) (Key, bool) {
	for button, key := range keypadMap {
		if win.JustPressed(button) {
			return key, true
		}
	}
	return 0, false
}

func uiUp(win *pixelgl.Window) bool {
	return win.JustPressed(pixelgl.KeyUp)
}

func uiDown(win *pixelgl.Window) bool {
	return win.JustPressed(pixelgl.KeyDown)
}

func uiChangeSelection(win *pixelgl.Window, last time.Time, lastUiAction time.Time) int {
	uiChange := 0

	if last.Sub(lastUiAction).Seconds() > uiClickWait {
		if uiUp(win) {
			uiChange = -1
		} else if uiDown(win) {
			uiChange = 1
		}
	}

	return uiChange
}

func uiConfirm(win *pixelgl.Window) bool {
	return win.JustPressed(pixelgl.KeyEnter) || win.JustPressed(pixelgl.KeyKPEnter)
}

func uiCancel(win *pixelgl.Window) bool {
	return win.JustPressed(pixelgl.KeyEscape)
}
