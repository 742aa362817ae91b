package commands

import (
	"colony-sim/internal/domain"
	"colony-sim/internal/engine/handlers"
	"colony-sim/pkg/api"
	"errors"
	"fmt"
)

func HandleGive(ctx handlers.Context, p api.GiveArgs) (handlers.Result, error) {
	// 1. Колония должна существовать
	if _, err := ctx.World.Colony(p.ColonyID); errors.Is(err, domain.ErrColonyNotFound) {
		return handlers.Result{
			Msg:     fmt.Sprintf("Colony with ID %d does not exist.", p.ColonyID),
			MsgType: domain.MsgTypeError,
		}, nil
	}

	// 2. Тип ресурса (чувствителен к регистру)
	res := domain.ParseResource(p.Resource)
	if res == domain.ResourceUnknown {
		return handlers.Result{
			Msg:     fmt.Sprintf("Invalid resource type: %s", p.Resource),
			MsgType: domain.MsgTypeError,
		}, nil
	}

	// 3. Выдача
	err := ctx.World.Give(p.ColonyID, res, p.Amount)
	if errors.Is(err, domain.ErrColonyInactive) {
		return handlers.Result{
			Msg:     fmt.Sprintf("Colony %d is inactive.", p.ColonyID),
			MsgType: domain.MsgTypeError,
		}, nil
	}
	if err != nil {
		return handlers.Result{}, err
	}

	return handlers.Result{
		Msg:     fmt.Sprintf("Added %d of %s to Colony %d", p.Amount, p.Resource, p.ColonyID),
		MsgType: domain.MsgTypeInfo,
	}, nil
}
