package commands

import (
	"colony-sim/internal/domain"
	"colony-sim/internal/engine/handlers"
	"colony-sim/pkg/api"
	"errors"
	"fmt"
)

func HandleSummary(ctx handlers.Context, p api.SummaryArgs) (handlers.Result, error) {
	r, err := ctx.World.Report(p.ColonyID)
	if errors.Is(err, domain.ErrColonyNotFound) {
		return handlers.Result{
			Msg:     fmt.Sprintf("Colony with ID %d does not exist.", p.ColonyID),
			MsgType: domain.MsgTypeError,
		}, nil
	}
	if err != nil {
		return handlers.Result{}, err
	}

	return handlers.Result{Msg: r.String(), MsgType: domain.MsgTypeInfo}, nil
}
