package domain

// ResourceType - что можно "выдать" колонии командой give
type ResourceType uint8

const (
	ResourceUnknown ResourceType = iota
	ResourceFood
	ResourceWater
	ResourceWarrior
	ResourceDrone
)

// Имена ресурсов чувствительны к регистру, как и команды
var resourceFromString = map[string]ResourceType{
	"food":    ResourceFood,
	"water":   ResourceWater,
	"warrior": ResourceWarrior,
	"drone":   ResourceDrone,
}

var resourceToString = map[ResourceType]string{
	ResourceFood:    "food",
	ResourceWater:   "water",
	ResourceWarrior: "warrior",
	ResourceDrone:   "drone",
}

// ParseResource конвертирует строку в ResourceType
func ParseResource(s string) ResourceType {
	if val, ok := resourceFromString[s]; ok {
		return val
	}
	return ResourceUnknown
}

func (r ResourceType) String() string {
	if val, ok := resourceToString[r]; ok {
		return val
	}
	return "unknown"
}

// AgentKind возвращает тип агента для "живых" ресурсов (warrior, drone)
func (r ResourceType) AgentKind() (AgentKind, bool) {
	switch r {
	case ResourceWarrior:
		return KindFighter, true
	case ResourceDrone:
		return KindWorker, true
	}
	return KindUnknown, false
}
