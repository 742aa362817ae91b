package commands

import (
	"colony-sim/internal/domain"
	"colony-sim/internal/engine/handlers"
	"colony-sim/pkg/api"
	"fmt"
	"strings"
)

const msgSimulationEnds = "Simulation ends: 1 or fewer active colonies left."

func HandleTick(ctx handlers.Context, p api.TickArgs) (handlers.Result, error) {
	res, err := ctx.World.Advance(p.Count)
	if err != nil {
		return handlers.Result{}, err
	}

	lines := make([]string, 0, res.EndedTicks+1)
	lines = append(lines, fmt.Sprintf("Performing %d simulation ticks...", p.Count))
	for i := 0; i < res.EndedTicks; i++ {
		lines = append(lines, msgSimulationEnds)
	}

	return handlers.Result{
		Msg:     strings.Join(lines, "\n"),
		MsgType: domain.MsgTypeInfo,
	}, nil
}
