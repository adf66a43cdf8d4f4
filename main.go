package main

import (
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"snakefx/game"
)

func main() {
	config := game.DefaultConfig()
	logger := log.New(os.Stderr, "[particle] ", log.LstdFlags)
	g := game.NewGame(config, logger)

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("snakefx")
	ebiten.SetWindowResizable(true)

	log.Printf("starting %dx%d board, seed %d", config.Columns, config.Rows, config.Seed)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
