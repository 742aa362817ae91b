package domain

import (
	"fmt"
	"strings"
)

// AgentKind - закрытый набор типов агентов
type AgentKind uint8

const (
	KindUnknown AgentKind = iota
	KindWorker
	KindFighter
	KindLeader
)

// Маппинг для конвертации строки -> Domain.
// Старые имена (Drone, Warrior, Queen) оставлены как синонимы.
var agentKindFromString = map[string]AgentKind{
	"WORKER":  KindWorker,
	"DRONE":   KindWorker,
	"FIGHTER": KindFighter,
	"WARRIOR": KindFighter,
	"LEADER":  KindLeader,
	"QUEEN":   KindLeader,
}

// Маппинг для логов Domain -> String
var agentKindToString = map[AgentKind]string{
	KindWorker:  "Worker",
	KindFighter: "Fighter",
	KindLeader:  "Leader",
}

// ParseAgentKind конвертирует имя типа в AgentKind (без учета регистра)
func ParseAgentKind(s string) AgentKind {
	if val, ok := agentKindFromString[strings.ToUpper(s)]; ok {
		return val
	}
	return KindUnknown
}

func (k AgentKind) String() string {
	if val, ok := agentKindToString[k]; ok {
		return val
	}
	return "Unknown"
}

// Agent - одна боевая/рабочая единица колонии
type Agent struct {
	Kind       AgentKind `json:"kind"`
	Strength   int       `json:"strength"`
	Efficiency int       `json:"efficiency"`

	// RestCycles - сколько полных циклов отдыха агент завершил (только для отчетов)
	RestCycles int `json:"restCycles"`

	restCounter int // всегда в [0, RestThreshold)
}

// NewAgent создает агента с базовыми статами своего типа.
// Для KindUnknown возвращает nil.
func NewAgent(kind AgentKind) *Agent {
	switch kind {
	case KindWorker:
		return &Agent{Kind: kind, Strength: WorkerStrength, Efficiency: WorkerEfficiency}
	case KindFighter:
		return &Agent{Kind: kind, Strength: FighterStrength, Efficiency: FighterEfficiency}
	case KindLeader:
		return &Agent{Kind: kind, Strength: LeaderStrength, Efficiency: LeaderEfficiency}
	}
	return nil
}

// IsLeader - короткая проверка для боевой системы
func (a *Agent) IsLeader() bool {
	return a.Kind == KindLeader
}

// RestCounter возвращает текущее значение счетчика отдыха
func (a *Agent) RestCounter() int {
	return a.restCounter
}

// Rest увеличивает счетчик отдыха. Возвращает true, если цикл отдыха завершен.
// Еда и вода при этом не тратятся.
func (a *Agent) Rest() bool {
	a.restCounter++
	if a.restCounter >= RestThreshold {
		a.restCounter = 0
		a.RestCycles++
		return true
	}
	return false
}

// PerformAction возвращает описание действия агента и тут же учитывает отдых
func (a *Agent) PerformAction() string {
	var msg string
	switch a.Kind {
	case KindWorker:
		msg = fmt.Sprintf("%s is foraging for food.", a.Kind)
	case KindFighter:
		msg = fmt.Sprintf("%s is hunting enemies.", a.Kind)
	case KindLeader:
		msg = fmt.Sprintf("%s is spawning an egg.", a.Kind)
	default:
		msg = "Unknown agent idles."
	}
	a.Rest()
	return msg
}

// SetAttributes перезаписывает обе характеристики.
// Суммирование (если нужно) делает вызывающая сторона.
func (a *Agent) SetAttributes(strength, efficiency int) {
	a.Strength = strength
	a.Efficiency = efficiency
}
