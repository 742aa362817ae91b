package domain

import "fmt"

// Colony - популяция агентов со своими помещениями и жизненным циклом.
// Колония эксклюзивно владеет агентами и помещениями.
type Colony struct {
	ID      int    `json:"id"`
	Species string `json:"species"`

	Food  int `json:"food"`
	Water int `json:"water"`

	AgentKills       int   `json:"agentKills"`
	ColonyKills      int   `json:"colonyKills"`
	DefeatedColonies []int `json:"defeatedColonies"`
	TicksAlive       int   `json:"ticksAlive"`

	roster     []*Agent
	facilities []*Facility
	active     bool
}

// NewColony создает пустую активную колонию
func NewColony(id int, species string) *Colony {
	return &Colony{
		ID:               id,
		Species:          species,
		DefeatedColonies: make([]int, 0),
		roster:           make([]*Agent, 0),
		facilities:       make([]*Facility, 0),
		active:           true,
	}
}

func (c *Colony) IsActive() bool { return c.active }

// Roster возвращает ростер колонии (порядок значим для боевой системы).
// Слайс общий: перестановки внутри него видны колонии.
func (c *Colony) Roster() []*Agent { return c.roster }

func (c *Colony) Facilities() []*Facility { return c.facilities }

func (c *Colony) Len() int { return len(c.roster) }

// AddAgent добавляет агента в конец ростера. nil игнорируется.
func (c *Colony) AddAgent(a *Agent) {
	if a == nil {
		return
	}
	c.roster = append(c.roster, a)
}

// AddFacility добавляет помещение. nil игнорируется.
func (c *Colony) AddFacility(f *Facility) {
	if f == nil {
		return
	}
	c.facilities = append(c.facilities, f)
}

// AddResources принимает ресурсы: еда/вода увеличивают счетчики,
// warrior/drone создают соответствующих агентов.
func (c *Colony) AddResources(res ResourceType, amount int) error {
	if !c.active {
		return fmt.Errorf("colony %d: %w", c.ID, ErrColonyInactive)
	}
	if amount <= 0 {
		return ErrNonPositiveAmount
	}

	switch res {
	case ResourceFood:
		c.Food += amount
	case ResourceWater:
		c.Water += amount
	case ResourceWarrior, ResourceDrone:
		kind, _ := res.AgentKind()
		for i := 0; i < amount; i++ {
			c.AddAgent(NewAgent(kind))
		}
	default:
		return fmt.Errorf("%w: %s", ErrInvalidResource, res)
	}
	return nil
}

// LeaderIndex возвращает индекс первого лидера в ростере или -1
func (c *Colony) LeaderIndex() int {
	for i, a := range c.roster {
		if a.IsLeader() {
			return i
		}
	}
	return -1
}

// CountKind считает агентов заданного типа
func (c *Colony) CountKind(kind AgentKind) int {
	n := 0
	for _, a := range c.roster {
		if a.Kind == kind {
			n++
		}
	}
	return n
}

// CountFacilities считает помещения заданного типа
func (c *Colony) CountFacilities(kind FacilityKind) int {
	n := 0
	for _, f := range c.facilities {
		if f.Kind == kind {
			n++
		}
	}
	return n
}

// RemoveAgentAt удаляет агента по индексу, сохраняя порядок остальных.
// Возвращает удаленного агента или nil, если индекс вне диапазона.
func (c *Colony) RemoveAgentAt(idx int) *Agent {
	if idx < 0 || idx >= len(c.roster) {
		return nil
	}
	removed := c.roster[idx]
	copy(c.roster[idx:], c.roster[idx+1:])
	c.roster[len(c.roster)-1] = nil
	c.roster = c.roster[:len(c.roster)-1]
	return removed
}

// TakeRoster отсоединяет весь ростер от колонии и возвращает его.
// После вызова ростер колонии пуст.
func (c *Colony) TakeRoster() []*Agent {
	taken := c.roster
	c.roster = make([]*Agent, 0)
	return taken
}

// Deactivate переводит колонию в терминальное состояние. Обратного пути нет.
func (c *Colony) Deactivate() {
	c.active = false
	c.roster = make([]*Agent, 0)
	c.Food = 0
	c.Water = 0
}

// RecordAgentKill - победа в одной схватке
func (c *Colony) RecordAgentKill() {
	c.AgentKills++
}

// RecordColonyKill - уничтожение чужой колонии
func (c *Colony) RecordColonyKill(colonyID int) {
	c.ColonyKills++
	c.DefeatedColonies = append(c.DefeatedColonies, colonyID)
}

// IncrementTicksAlive учитывает прожитый тик
func (c *Colony) IncrementTicksAlive() {
	c.TicksAlive++
}
