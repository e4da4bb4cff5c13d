package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pointclick/ecs"
	"github.com/milk9111/pointclick/ecs/entity"
	"github.com/milk9111/pointclick/ecs/system"
	"github.com/milk9111/pointclick/prefabs"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Game struct {
	world   *ecs.World
	player  ecs.Entity
	watcher *prefabs.Watcher
}

func NewGame(levelName string, debug, watch bool) (*Game, error) {
	w := ecs.NewWorld()
	player, err := entity.BuildWorld(w, levelName)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	dt := 1.0 / float64(ebiten.TPS())
	w.AddSystem(system.NewInputSystem())
	w.AddSystem(system.NewClickSystem())
	w.AddSystem(system.NewLocomotionSystem(dt))
	w.AddSystem(system.NewAnimatorSystem(dt))
	w.AddSystem(system.NewRootMotionSystem(dt))
	w.AddSystem(system.NewNavAgentSystem(dt))
	w.AddSystem(system.NewSpeechSystem())
	w.AddSystem(system.NewTTLSystem())
	w.AddSystem(system.NewRenderSystem(debug))

	g := &Game{world: w, player: player}
	if watch {
		watcher, err := prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"))
		if err != nil {
			log.Printf("game: prefab watcher disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}
	return g, nil
}

func (g *Game) Update() error {
	g.pollReload()
	g.world.Update()
	return nil
}

func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(name)
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("game: prefab watcher: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) reload(name string) {
	switch {
	case filepath.Base(name) == "player.yaml":
		spec, err := prefabs.LoadPlayerSpec()
		if err != nil {
			log.Printf("game: reload %s: %v", name, err)
			return
		}
		if err := entity.ApplyPlayerTunables(g.world, g.player, spec); err != nil {
			log.Printf("game: reload %s: %v", name, err)
			return
		}
		log.Printf("game: reloaded player tunables")
	case filepath.Ext(name) == ".tengo":
		n, err := entity.ReloadScripts(g.world, name)
		if err != nil {
			log.Printf("game: reload %s: %v", name, err)
		}
		if n > 0 {
			log.Printf("game: reloaded %s for %d interactables", filepath.Base(name), n)
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.world.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}
