package domain

// CommandType - внутренний числовой идентификатор команды оператора
type CommandType uint8

const (
	CommandUnknown CommandType = iota
	CommandSpawn
	CommandGive
	CommandTick
	CommandBattle
	CommandSummary
	CommandSpecies
	CommandHelp
	CommandExit
)

// Маппинг для конвертации ввода -> Domain.
// Имена команд чувствительны к регистру.
var commandStringToType = map[string]CommandType{
	"spawn":   CommandSpawn,
	"give":    CommandGive,
	"tick":    CommandTick,
	"battle":  CommandBattle,
	"summary": CommandSummary,
	"species": CommandSpecies,
	"help":    CommandHelp,
	"exit":    CommandExit,
}

// Маппинг для логов Domain -> String
var commandTypeToString = map[CommandType]string{
	CommandSpawn:   "spawn",
	CommandGive:    "give",
	CommandTick:    "tick",
	CommandBattle:  "battle",
	CommandSummary: "summary",
	CommandSpecies: "species",
	CommandHelp:    "help",
	CommandExit:    "exit",
}

// ParseCommand конвертирует первое слово строки в CommandType
func ParseCommand(s string) CommandType {
	if val, ok := commandStringToType[s]; ok {
		return val
	}
	return CommandUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (c CommandType) String() string {
	if val, ok := commandTypeToString[c]; ok {
		return val
	}
	return "unknown"
}
