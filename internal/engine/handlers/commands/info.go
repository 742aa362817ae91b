package commands

import (
	"colony-sim/internal/domain"
	"colony-sim/internal/engine/handlers"
	"colony-sim/pkg/api"
	"colony-sim/pkg/population"
	"strings"
)

// HandleSpecies печатает каталог предлагаемых видов
func HandleSpecies(ctx handlers.Context) (handlers.Result, error) {
	catalog := population.SpeciesCatalog(ctx.World.Tuning().SpeciesRoll)

	return handlers.Result{
		Msg:     "Available species: " + strings.Join(catalog, ", "),
		MsgType: domain.MsgTypeInfo,
	}, nil
}

func HandleHelp(_ handlers.Context) (handlers.Result, error) {
	lines := make([]string, 0, len(api.Commands)+1)
	lines = append(lines, "Commands:")
	for _, name := range api.Commands {
		lines = append(lines, "  "+api.Usage[name])
	}
	return handlers.Result{Msg: strings.Join(lines, "\n"), MsgType: domain.MsgTypeInfo}, nil
}

func HandleExit(_ handlers.Context) (handlers.Result, error) {
	return handlers.Result{Msg: "Exiting simulation.", MsgType: domain.MsgTypeInfo, Quit: true}, nil
}
