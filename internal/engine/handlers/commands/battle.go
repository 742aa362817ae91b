package commands

import (
	"colony-sim/internal/domain"
	"colony-sim/internal/engine/handlers"
	"colony-sim/internal/systems"
	"colony-sim/pkg/api"
	"errors"
	"fmt"
	"strings"
)

var skipMessages = map[string]string{
	systems.SkipInactive:    "One or both colonies are inactive. Battle cannot proceed.",
	systems.SkipEmptyRoster: "One or both colonies have no agents. Battle cannot proceed.",
	systems.SkipSameColony:  "A colony cannot battle itself.",
}

// HandleBattle - первая колония атакует вторую
func HandleBattle(ctx handlers.Context, p api.BattleArgs) (handlers.Result, error) {
	// 1. Бой
	out, err := ctx.World.Battle(p.First, p.Second)
	if errors.Is(err, domain.ErrColonyNotFound) {
		return handlers.Result{Msg: "One or both colonies not found.", MsgType: domain.MsgTypeError}, nil
	}
	if err != nil {
		return handlers.Result{}, err
	}

	// 2. Бой не состоялся
	if out.Skipped() {
		return handlers.Result{Msg: skipMessages[out.SkipReason], MsgType: domain.MsgTypeInfo}, nil
	}

	// 3. Хроника боя
	lines := []string{
		fmt.Sprintf("Battle between %s and %s (ID %d)",
			ctx.World.SpeciesName(out.AttackerID), ctx.World.SpeciesName(out.DefenderID), out.DefenderID),
		fmt.Sprintf("Colony %d wins the battle against Colony %d!", out.WinnerID, out.LoserID),
	}
	if out.LoserDefeated {
		lines = append(lines,
			fmt.Sprintf("Leader of colony %d is defeated. Deactivating colony.", out.LoserID),
			fmt.Sprintf("Colony %d absorbs %d agents from Colony %d.", out.WinnerID, out.Absorbed, out.LoserID),
		)
	}

	return handlers.Result{
		Msg:     strings.Join(lines, "\n"),
		MsgType: domain.MsgTypeCombat,
	}, nil
}
