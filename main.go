package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "draw agent paths, interaction anchors and controller state")
	levelName := flag.String("level", "courtyard", "level prefab name in prefabs/ (.yaml optional)")
	watch := flag.Bool("watch", false, "hot reload prefabs and scripts from disk")
	flag.Parse()

	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("pointclick")

	game, err := NewGame(*levelName, *debug, *watch)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
