package world

import (
	"colony-sim/internal/domain"
	"fmt"
	"strings"
)

// DefeatedColony - запись о побежденной колонии с сохраненным названием вида
type DefeatedColony struct {
	ID      int    `json:"id"`
	Species string `json:"species"`
}

// Report - сводка по колонии
type Report struct {
	ColonyID    int              `json:"colonyId"`
	Species     string           `json:"species"`
	Active      bool             `json:"active"`
	Workers     int              `json:"workers"`
	Fighters    int              `json:"fighters"`
	AgentKills  int              `json:"agentKills"`
	ColonyKills int              `json:"colonyKills"`
	Defeated    []DefeatedColony `json:"defeated"`
	TicksAlive  int              `json:"ticksAlive"`
}

// Report собирает сводку. Не меняет состояние мира.
func (w *World) Report(id int) (Report, error) {
	c, err := w.Colony(id)
	if err != nil {
		return Report{}, err
	}

	r := Report{
		ColonyID: c.ID,
		Species:  c.Species,
		Active:   c.IsActive(),
	}
	if !r.Active {
		return r, nil
	}

	r.Workers = c.CountKind(domain.KindWorker)
	r.Fighters = c.CountKind(domain.KindFighter)
	r.AgentKills = c.AgentKills
	r.ColonyKills = c.ColonyKills
	r.TicksAlive = c.TicksAlive
	r.Defeated = make([]DefeatedColony, 0, len(c.DefeatedColonies))
	for _, defeatedID := range c.DefeatedColonies {
		r.Defeated = append(r.Defeated, DefeatedColony{ID: defeatedID, Species: w.SpeciesName(defeatedID)})
	}
	return r, nil
}

// String - текстовая форма для оператора
func (r Report) String() string {
	if !r.Active {
		return fmt.Sprintf("Colony ID: %d is inactive and no longer exists.", r.ColonyID)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Colony ID: %d\n", r.ColonyID)
	fmt.Fprintf(&b, "Species: %s\n", r.Species)
	fmt.Fprintf(&b, "Workers: %d\n", r.Workers)
	fmt.Fprintf(&b, "Fighters: %d\n", r.Fighters)
	fmt.Fprintf(&b, "Agent Kills: %d\n", r.AgentKills)
	fmt.Fprintf(&b, "Colony Kills: %d", r.ColonyKills)

	if len(r.Defeated) > 0 {
		parts := make([]string, 0, len(r.Defeated))
		for _, d := range r.Defeated {
			parts = append(parts, fmt.Sprintf("%d:%s", d.ID, d.Species))
		}
		fmt.Fprintf(&b, " (%s)", strings.Join(parts, " "))
	}

	fmt.Fprintf(&b, "\nTicks Alive: %d\n", r.TicksAlive)
	b.WriteString("Status: Alive")
	return b.String()
}
