package api

import (
	"errors"
	"fmt"
	"strconv"
)

// --- ОПЕРАТОР -> ДВИЖОК ---
// DTO аргументов команд. Каждая команда получает токены строки без имени команды.

// ErrMalformed - аргументы не разбираются (не число, не хватает полей)
var ErrMalformed = errors.New("malformed arguments")

// Commands - порядок команд в справке
var Commands = []string{"spawn", "give", "tick", "battle", "summary", "species", "help", "exit"}

// Usage - подсказки для сообщений об ошибках
var Usage = map[string]string{
	"spawn":   "spawn X Y SpeciesName",
	"give":    "give ColonyID ResourceType Amount",
	"tick":    "tick [Count]",
	"battle":  "battle ID1 ID2",
	"summary": "summary ColonyID",
	"species": "species",
	"help":    "help",
	"exit":    "exit",
}

// SpawnArgs: spawn X Y SpeciesName
// X и Y принимаются, но моделью не используются.
type SpawnArgs struct {
	X       int
	Y       int
	Species string
}

// GiveArgs: give ColonyID ResourceType Amount
type GiveArgs struct {
	ColonyID int
	Resource string
	Amount   int
}

// MaxTickCount - верхняя граница одной команды tick
const MaxTickCount = 100000

// TickArgs: tick [Count]
type TickArgs struct {
	Count int
}

// BattleArgs: battle ID1 ID2
type BattleArgs struct {
	First  int
	Second int
}

// SummaryArgs: summary ColonyID
type SummaryArgs struct {
	ColonyID int
}

func ParseSpawn(args []string) (SpawnArgs, error) {
	var p SpawnArgs
	if len(args) < 3 {
		return p, fmt.Errorf("%w: want 3 fields, got %d", ErrMalformed, len(args))
	}
	var err error
	if p.X, err = atoi("x", args[0]); err != nil {
		return p, err
	}
	if p.Y, err = atoi("y", args[1]); err != nil {
		return p, err
	}
	p.Species = args[2]
	return p, nil
}

func ParseGive(args []string) (GiveArgs, error) {
	var p GiveArgs
	if len(args) < 3 {
		return p, fmt.Errorf("%w: want 3 fields, got %d", ErrMalformed, len(args))
	}
	var err error
	if p.ColonyID, err = atoi("colony id", args[0]); err != nil {
		return p, err
	}
	p.Resource = args[1]
	if p.Amount, err = atoi("amount", args[2]); err != nil {
		return p, err
	}
	return p, nil
}

func ParseTick(args []string) (TickArgs, error) {
	p := TickArgs{Count: 1}
	if len(args) == 0 {
		return p, nil
	}
	var err error
	if p.Count, err = atoi("count", args[0]); err != nil {
		return p, err
	}
	if p.Count > MaxTickCount {
		return p, fmt.Errorf("%w: count %d exceeds %d", ErrMalformed, p.Count, MaxTickCount)
	}
	return p, nil
}

func ParseBattle(args []string) (BattleArgs, error) {
	var p BattleArgs
	if len(args) < 2 {
		return p, fmt.Errorf("%w: want 2 fields, got %d", ErrMalformed, len(args))
	}
	var err error
	if p.First, err = atoi("first id", args[0]); err != nil {
		return p, err
	}
	if p.Second, err = atoi("second id", args[1]); err != nil {
		return p, err
	}
	return p, nil
}

func ParseSummary(args []string) (SummaryArgs, error) {
	var p SummaryArgs
	if len(args) < 1 {
		return p, fmt.Errorf("%w: colony id is required", ErrMalformed)
	}
	var err error
	p.ColonyID, err = atoi("colony id", args[0])
	return p, err
}

func atoi(field, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", ErrMalformed, field, s)
	}
	return v, nil
}
