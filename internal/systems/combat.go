package systems

import (
	"colony-sim/internal/domain"
	"colony-sim/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Причины, по которым бой не состоялся
const (
	SkipNone        = ""
	SkipInactive    = "inactive"
	SkipEmptyRoster = "empty_roster"
	SkipSameColony  = "same_colony"
)

// BattleOutcome - результат схватки двух колоний
type BattleOutcome struct {
	AttackerID int
	DefenderID int

	SkipReason string

	WinnerID int
	LoserID  int

	// Бойцы и их сила ДО боя
	WinnerKind     domain.AgentKind
	LoserKind      domain.AgentKind
	WinnerStrength int
	LoserStrength  int

	// Fallback - хотя бы у одной стороны не было лидера, бились последние агенты ростеров
	Fallback bool

	LoserDefeated bool
	Absorbed      int
}

func (o BattleOutcome) Skipped() bool {
	return o.SkipReason != SkipNone
}

// ResolveBattle проводит схватку колонии a (атакующая) с колонией b.
// Ничья засчитывается в пользу b.
func ResolveBattle(a, b *domain.Colony) BattleOutcome {
	out := BattleOutcome{AttackerID: a.ID, DefenderID: b.ID}

	combatLogger := logger.Log.WithFields(logrus.Fields{
		"component":   "combat_system",
		"attacker_id": a.ID,
		"defender_id": b.ID,
	})

	// --- Проверка граничных условий ---

	switch {
	case a == b || a.ID == b.ID:
		out.SkipReason = SkipSameColony
	case !a.IsActive() || !b.IsActive():
		out.SkipReason = SkipInactive
	case a.Len() == 0 || b.Len() == 0:
		out.SkipReason = SkipEmptyRoster
	}
	if out.Skipped() {
		combatLogger.WithField("reason", out.SkipReason).Info("Battle skipped.")
		return out
	}

	// --- Выбор бойцов ---

	// Приоритет - лидеры. Если лидера нет хотя бы у одной стороны,
	// обе стороны выставляют последнего агента ростера.
	ai, bi := a.LeaderIndex(), b.LeaderIndex()
	if ai < 0 || bi < 0 {
		out.Fallback = true
		ai, bi = a.Len()-1, b.Len()-1
	}
	aAgent, bAgent := a.Roster()[ai], b.Roster()[bi]

	// --- Исход ---

	winner, wAgent := b, bAgent
	loser, lIdx, lAgent := a, ai, aAgent
	if aAgent.Strength > bAgent.Strength {
		winner, wAgent = a, aAgent
		loser, lIdx, lAgent = b, bi, bAgent
	}

	out.WinnerID, out.LoserID = winner.ID, loser.ID
	out.WinnerKind, out.LoserKind = wAgent.Kind, lAgent.Kind
	out.WinnerStrength, out.LoserStrength = wAgent.Strength, lAgent.Strength

	// Победитель забирает характеристики побежденного
	wAgent.SetAttributes(wAgent.Strength+lAgent.Strength, wAgent.Efficiency+lAgent.Efficiency)
	loser.RemoveAgentAt(lIdx)
	winner.RecordAgentKill()

	// Пал лидер: сначала поглощаем остатки, затем деактивируем
	if lAgent.IsLeader() {
		out.LoserDefeated = true
		out.Absorbed = Absorb(winner, loser)
		loser.Deactivate()
		winner.RecordColonyKill(loser.ID)
	}

	combatLogger.WithFields(logrus.Fields{
		"winner_id":       out.WinnerID,
		"loser_id":        out.LoserID,
		"winner_kind":     out.WinnerKind.String(),
		"loser_kind":      out.LoserKind.String(),
		"winner_strength": out.WinnerStrength,
		"loser_strength":  out.LoserStrength,
		"fallback":        out.Fallback,
		"loser_defeated":  out.LoserDefeated,
		"absorbed":        out.Absorbed,
	}).Info("Battle resolved.")

	return out
}
