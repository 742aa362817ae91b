package domain

// Базовые характеристики агентов по типам
const (
	WorkerStrength    = 5
	WorkerEfficiency  = 10
	FighterStrength   = 10
	FighterEfficiency = 5
	LeaderStrength    = 15
	LeaderEfficiency  = 0
)

// RestThreshold - сколько раз агент должен "отдохнуть", чтобы завершить цикл отдыха
const RestThreshold = 10

// Время постройки помещений (в единицах труда)
const (
	SpawningConstructionTime = 50
	RestingConstructionTime  = 30
)

// Параметры колонии по умолчанию (могут быть переопределены тюнингом)
const (
	DefaultRestingCapacityPerRoom = 5
	DefaultLaborPerRoom           = 5
)

// Типы сообщений для вывода оператору
const (
	MsgTypeInfo   = "INFO"
	MsgTypeCombat = "COMBAT"
	MsgTypeError  = "ERROR"
)
