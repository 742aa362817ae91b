package population

import (
	"colony-sim/internal/domain"
	"colony-sim/internal/tuning"
)

// CreateAgent создает агента по имени типа ("Worker", "Fighter", "Leader"
// или старые "Drone", "Warrior", "Queen"). Неизвестное имя - nil.
func CreateAgent(kind string) *domain.Agent {
	return domain.NewAgent(domain.ParseAgentKind(kind))
}

// CreateFacility создает помещение по имени ("Spawning" / "Resting")
func CreateFacility(kind string) *domain.Facility {
	tmpl, ok := FacilityTemplates[kind]
	if !ok {
		return nil
	}
	return domain.NewFacility(tmpl)
}

// SpawnColony собирает новую колонию: стартовая популяция + помещения.
// Порядок в ростере: лидеры, рабочие, бойцы.
func SpawnColony(id int, species string, t tuning.Tuning) *domain.Colony {
	c := domain.NewColony(id, species)

	for _, name := range StartingFacilities {
		c.AddFacility(CreateFacility(name))
	}

	pop := t.InitialPopulation
	addMany(c, "Leader", pop.Leaders)
	addMany(c, "Worker", pop.Workers)
	addMany(c, "Fighter", pop.Fighters)

	applySpeciesBonus(c, t.SpeciesBonuses)
	return c
}

func addMany(c *domain.Colony, kind string, n int) {
	for i := 0; i < n; i++ {
		c.AddAgent(CreateAgent(kind))
	}
}

// applySpeciesBonus добавляет бонус вида ко всей стартовой популяции
func applySpeciesBonus(c *domain.Colony, bonuses map[string]tuning.Bonus) {
	bonus, ok := bonuses[c.Species]
	if !ok {
		return
	}
	for _, a := range c.Roster() {
		a.SetAttributes(a.Strength+bonus.Strength, a.Efficiency+bonus.Efficiency)
	}
}
