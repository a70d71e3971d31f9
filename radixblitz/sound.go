package radixblitz

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

type soundEffect struct {
	buffer *beep.Buffer
	volume float64
}

var soundEffects = map[string]*soundEffect{}
var musicStreamers = map[string]beep.StreamSeekCloser{}

var soundFormat *beep.Format
var audioReady bool

func prepareStreamer(file string) (*beep.StreamSeekCloser, *beep.Format, error) {
	sound, err := os.Open(file)
	if err != nil {
		return nil, nil, err
	}

	streamer, format, err := mp3.Decode(sound)
	if err != nil {
		return nil, nil, err
	}

	return &streamer, &format, nil
}

func prepareBuffer(file string) (*beep.Buffer, *beep.Format, error) {
	sound, err := os.Open(file)
	if err != nil {
		return nil, nil, err
	}

	ext := file[strings.LastIndex(file, ".")+1:]

	var streamer beep.StreamSeekCloser
	var format beep.Format

	switch ext {
	case "mp3":
		streamer, format, err = mp3.Decode(sound)
	case "wav":
		streamer, format, err = wav.Decode(sound)
	default:
		err = fmt.Errorf("unsupported file extension: %s", ext)
	}

	if err != nil {
		return nil, nil, err
	}

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	streamer.Close()

	return buffer, &format, nil
}

// InitAudio loads the sound bank and starts the speaker. Call it once
// from the window bootstrap; a checkout without sound assets just plays
// nothing, and PlaySound/PlaySong no-op until it has run.
func InitAudio() {
	load := func(name string, file string, volume float64) {
		buffer, format, err := prepareBuffer(file)
		if err != nil {
			fmt.Printf("[audio] %s unavailable: %v\n", name, err)
			return
		}
		if soundFormat == nil {
			soundFormat = format
		}
		soundEffects[name] = &soundEffect{
			buffer: buffer,
			volume: volume,
		}
	}

	load("menu/step", "sound/menu-step.wav", -0.9)
	load("menu/confirm", "sound/menu-confirm.wav", -0.9)
	load("quiz/correct", "sound/quiz-correct.wav", -0.8)
	load("quiz/wrong", "sound/quiz-wrong.wav", -0.8)
	load("game/over", "sound/game-over.wav", -1.0)
	load("game/highscore", "sound/highscore.wav", -0.7)

	streamer, format, err := prepareStreamer("sound/music-menu.mp3")
	if err != nil {
		fmt.Printf("[audio] menu music unavailable: %v\n", err)
	} else {
		musicStreamers["menu"] = *streamer
		if soundFormat == nil {
			soundFormat = format
		}
	}

	if soundFormat == nil {
		return
	}

	speaker.Init(soundFormat.SampleRate, soundFormat.SampleRate.N(time.Second/10))
	audioReady = true
}

func PlaySound(soundName string) {
	if !audioReady {
		return
	}

	soundEffect, ok := soundEffects[soundName]
	if !ok {
		return
	}

	sound := soundEffect.buffer.Streamer(0, soundEffect.buffer.Len())

	volume := &effects.Volume{
		Streamer: sound,
		Base:     10,
		Volume:   soundEffect.volume,
		Silent:   false,
	}

	speaker.Play(volume)
}

func PlaySong(songName string) {
	if !audioReady {
		return
	}

	s, ok := musicStreamers[songName]
	if !ok {
		return
	}

	speaker.Clear()
	s.Seek(0)
	speaker.Play(s)
}

func StopMusic() {
	if audioReady {
		speaker.Clear()
	}
}
