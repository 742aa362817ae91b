package systems

import (
	"colony-sim/internal/domain"
	"colony-sim/internal/tuning"
	"colony-sim/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Shuffler - источник случайных перестановок. *rand.Rand подходит как есть.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// FacilityProgress - прогресс постройки одного помещения за тик
type FacilityProgress struct {
	Kind   domain.FacilityKind
	Before int
	After  int
}

// TickReport - что произошло с колонией за тик (только для логов)
type TickReport struct {
	ColonyID   int
	Rested     int // сколько агентов отдохнули
	RestCycles int // сколько из них завершили цикл отдыха
	Facilities []FacilityProgress
}

// PerformTick выполняет один тик жизни колонии.
// Неактивная колония не меняется.
func PerformTick(c *domain.Colony, rng Shuffler, t tuning.Tuning) TickReport {
	report := TickReport{ColonyID: c.ID}
	if !c.IsActive() {
		return report
	}

	tickLogger := logger.Log.WithFields(logrus.Fields{
		"component": "lifecycle_system",
		"colony_id": c.ID,
	})

	// 1. Перемешиваем ростер, чтобы отдых не зависел от позиции агента
	roster := c.Roster()
	rng.Shuffle(len(roster), func(i, j int) {
		roster[i], roster[j] = roster[j], roster[i]
	})

	// 2. Вместимость комнат отдыха и доступный труд
	restingCapacity := t.RestingCapacityPerRoom * c.CountFacilities(domain.FacilityResting)
	labor := 0
	for _, f := range c.Facilities() {
		if f.RemainingConstruction > 0 {
			labor += t.LaborPerRoom
		}
	}

	// 3. Отдыхают первые restingCapacity агентов
	for i, a := range roster {
		if i >= restingCapacity {
			break
		}
		report.Rested++
		if a.Rest() {
			report.RestCycles++
			tickLogger.WithField("agent_kind", a.Kind.String()).Debug("Agent completed a rest cycle.")
		}
	}

	// 4. Помещения: действие + стройка
	for _, f := range c.Facilities() {
		tickLogger.Debug(f.PerformAction())
		if f.RemainingConstruction > 0 {
			before := f.RemainingConstruction
			f.AdvanceConstruction(labor)
			report.Facilities = append(report.Facilities, FacilityProgress{
				Kind:   f.Kind,
				Before: before,
				After:  f.RemainingConstruction,
			})
			tickLogger.WithFields(logrus.Fields{
				"facility":  f.Kind.String(),
				"remaining": f.RemainingConstruction,
			}).Debug("Construction advanced.")
		}
	}

	return report
}
