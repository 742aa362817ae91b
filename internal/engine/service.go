package engine

import (
	"colony-sim/internal/domain"
	"colony-sim/internal/engine/handlers"
	"colony-sim/internal/engine/handlers/commands"
	"colony-sim/internal/tuning"
	"colony-sim/internal/world"
	"colony-sim/pkg/api"
	"colony-sim/pkg/logger"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	msgUnknownCommand = "Unknown command. Try again."
	msgTicksPositive  = "Ticks must be greater than zero."
)

// Service - диспетчер команд оператора поверх одного мира
type Service struct {
	World  *world.World
	Config Config

	Replay *domain.ReplaySession // Лента введенных команд

	handlers map[domain.CommandType]handlers.HandlerFunc
}

func NewService(cfg Config, t tuning.Tuning) *Service {
	rng := rand.New(rand.NewSource(cfg.Seed))

	s := &Service{
		World:  world.New(t, rng),
		Config: cfg,
		Replay: &domain.ReplaySession{
			SessionID: uuid.NewString(),
			Seed:      cfg.Seed,
			Timestamp: time.Now().Unix(),
			Commands:  make([]domain.ReplayCommand, 0),
		},
		handlers: make(map[domain.CommandType]handlers.HandlerFunc),
	}

	s.registerHandlers()

	logger.Log.WithFields(logrus.Fields{
		"component":  "engine",
		"session_id": s.Replay.SessionID,
		"seed":       cfg.Seed,
	}).Info("Service created.")

	return s
}

func (s *Service) registerHandlers() {
	s.handlers[domain.CommandSpawn] = handlers.WithArgs(api.ParseSpawn, commands.HandleSpawn)
	s.handlers[domain.CommandGive] = handlers.WithArgs(api.ParseGive, commands.HandleGive)
	s.handlers[domain.CommandTick] = handlers.WithArgs(api.ParseTick, commands.HandleTick)
	s.handlers[domain.CommandBattle] = handlers.WithArgs(api.ParseBattle, commands.HandleBattle)
	s.handlers[domain.CommandSummary] = handlers.WithArgs(api.ParseSummary, commands.HandleSummary)
	s.handlers[domain.CommandSpecies] = handlers.WithNoArgs(commands.HandleSpecies)
	s.handlers[domain.CommandHelp] = handlers.WithNoArgs(commands.HandleHelp)
	s.handlers[domain.CommandExit] = handlers.WithNoArgs(commands.HandleExit)
}

// Execute выполняет одну строку ввода.
// Пустые строки игнорируются и не попадают в запись.
func (s *Service) Execute(line string) handlers.Result {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return handlers.EmptyResult()
	}

	// 1. Запись
	s.recordCommand(line)

	// 2. Поиск хендлера
	cmd := domain.ParseCommand(fields[0])
	handler, ok := s.handlers[cmd]
	if !ok {
		return handlers.Result{Msg: msgUnknownCommand, MsgType: domain.MsgTypeError}
	}

	// 3. Выполнение
	result, err := handler(handlers.Context{World: s.World}, fields[1:])
	if err != nil {
		result = s.errorResult(cmd, err)
	}

	cmdLogger := logger.Log.WithFields(logrus.Fields{
		"component": "engine",
		"command":   cmd.String(),
		"msg_type":  result.MsgType,
	})
	if err != nil {
		cmdLogger.WithError(err).Debug("Command rejected.")
	} else {
		cmdLogger.Debug("Command executed.")
	}

	return result
}

// errorResult превращает ошибку аргументов в сообщение оператору
func (s *Service) errorResult(cmd domain.CommandType, err error) handlers.Result {
	name := cmd.String()

	switch {
	case errors.Is(err, domain.ErrNonPositiveTicks):
		return handlers.Result{Msg: msgTicksPositive, MsgType: domain.MsgTypeError}
	case errors.Is(err, api.ErrMalformed), errors.Is(err, domain.ErrNonPositiveAmount):
		return handlers.Result{
			Msg:     fmt.Sprintf("Invalid %s command. Usage: %s", name, api.Usage[name]),
			MsgType: domain.MsgTypeError,
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "engine",
		"command":   name,
	}).WithError(err).Error("Command failed.")

	return handlers.Result{Msg: err.Error(), MsgType: domain.MsgTypeError}
}

func (s *Service) recordCommand(line string) {
	s.Replay.Commands = append(s.Replay.Commands, domain.ReplayCommand{
		Seq:  len(s.Replay.Commands) + 1,
		Line: strings.TrimSpace(line),
	})
}
