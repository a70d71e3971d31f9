package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"

	"github.com/nathanKramer/radix-blitz/radixblitz"
)

// Config
type configuration struct {
	screenWidth  float64
	screenHeight float64
}

var config = configuration{
	1024.0,
	768.0,
}

func run() {
	game := radixblitz.NewGame(*dataFile)

	cfg := pixelgl.WindowConfig{
		Title:  "Radix Blitz",
		Bounds: pixel.R(0, 0, config.screenWidth, config.screenHeight),
		VSync:  true,
	}
	if game.Fullscreen() {
		cfg.Monitor = pixelgl.PrimaryMonitor()
	}

	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		panic(err)
	}

	draw := radixblitz.NewDrawContext(cfg)

	radixblitz.InitAudio()
	if game.MusicOn() {
		radixblitz.PlaySong("menu")
	}

	lastMemCheck := time.Now()

	for !win.Closed() {
		if time.Since(lastMemCheck).Seconds() > 30.0 {
			radixblitz.PrintMemUsage()
			lastMemCheck = time.Now()
		}

		radixblitz.UpdateGame(win, game)
		radixblitz.DrawGame(win, game, draw)

		win.Update()
	}
}

// To read about how to use these profiles,
// https://blog.golang.org/pprof
var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
var memprofile = flag.String("memprofile", "", "write memory profile to this file")
var dataFile = flag.String("data", "./gamedata.yml", "path to persistent game data")

func main() {
	flag.Parse()
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	pixelgl.Run(run)

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
		return
	}
}
