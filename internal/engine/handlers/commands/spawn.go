package commands

import (
	"colony-sim/internal/domain"
	"colony-sim/internal/engine/handlers"
	"colony-sim/pkg/api"
	"fmt"
)

// HandleSpawn создает колонию. Координаты принимаются, но не используются.
func HandleSpawn(ctx handlers.Context, p api.SpawnArgs) (handlers.Result, error) {
	c := ctx.World.Spawn(p.Species)

	return handlers.Result{
		Msg:     fmt.Sprintf("Spawned colony with ID: %d", c.ID),
		MsgType: domain.MsgTypeInfo,
	}, nil
}
