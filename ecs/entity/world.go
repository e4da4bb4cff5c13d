package entity

import (
	"fmt"

	"github.com/milk9111/pointclick/ecs"
	"github.com/milk9111/pointclick/interaction"
	"github.com/milk9111/pointclick/prefabs"
)

// BuildWorld loads a level and the player into w and returns the player.
func BuildWorld(w *ecs.World, levelName string) (ecs.Entity, error) {
	levelSpec, err := prefabs.LoadLevelSpec(levelName)
	if err != nil {
		return 0, err
	}
	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return 0, err
	}
	return BuildScene(w, levelSpec, playerSpec)
}

// BuildScene populates w from already loaded specs.
func BuildScene(w *ecs.World, levelSpec *prefabs.LevelSpec, playerSpec *prefabs.PlayerSpec) (ecs.Entity, error) {
	flags := interaction.NewFlags()
	mesh, err := BuildLevel(w, levelSpec, flags)
	if err != nil {
		return 0, err
	}
	player, err := BuildPlayer(w, playerSpec, mesh)
	if err != nil {
		return 0, err
	}

	host := &characterHost{w: w, e: player}
	for _, spec := range levelSpec.Entities {
		if _, ok := spec.Components["interactable"]; !ok {
			return 0, fmt.Errorf("level %s: entity %s: unsupported entity", levelSpec.Name, spec.Name)
		}
		if _, err := BuildInteractable(w, spec, host, flags); err != nil {
			return 0, fmt.Errorf("level %s: %w", levelSpec.Name, err)
		}
	}
	return player, nil
}
