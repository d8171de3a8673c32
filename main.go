package main

import (
	"flag"
	"log"
	"os"

	"github.com/golangdaddy/racingmoto/pkg/config"
	"github.com/golangdaddy/racingmoto/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	g := game.NewGame(cfg)

	w, h := game.WindowSize(cfg)
	ebiten.SetWindowSize(int(float64(w)*cfg.Scale), int(float64(h)*cfg.Scale))
	ebiten.SetWindowTitle("Racing Moto")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
