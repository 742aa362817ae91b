package world

import (
	"colony-sim/internal/domain"
	"colony-sim/internal/systems"
	"colony-sim/internal/tuning"
	"colony-sim/pkg/logger"
	"colony-sim/pkg/population"
	"fmt"

	"github.com/sirupsen/logrus"
)

// TickResult - итог одного мирового тика
type TickResult struct {
	Tick           int
	ActiveColonies int
	// Ended - активных колоний осталось не больше одной (только сигнал, мир не останавливается)
	Ended   bool
	Reports []systems.TickReport
}

// World - реестр всех колоний процесса.
// Явный объект вместо глобального синглтона: в тестах можно держать несколько миров.
type World struct {
	colonies []*domain.Colony
	byID     map[int]*domain.Colony

	// names - справочник id -> вид. Не чистится при гибели колонии,
	// чтобы отчеты могли называть побежденных.
	names map[int]string

	nextID int
	ticks  int

	rng    systems.Shuffler
	tuning tuning.Tuning
}

func New(t tuning.Tuning, rng systems.Shuffler) *World {
	return &World{
		colonies: make([]*domain.Colony, 0),
		byID:     make(map[int]*domain.Colony),
		names:    make(map[int]string),
		nextID:   1,
		rng:      rng,
		tuning:   t,
	}
}

func (w *World) Tuning() tuning.Tuning { return w.tuning }

// Ticks - сколько мировых тиков прошло
func (w *World) Ticks() int { return w.ticks }

// Colonies возвращает все колонии в порядке создания (включая погибшие)
func (w *World) Colonies() []*domain.Colony { return w.colonies }

// Spawn создает колонию со стартовой популяцией и выдает ей следующий id
func (w *World) Spawn(species string) *domain.Colony {
	id := w.nextID
	w.nextID++

	c := population.SpawnColony(id, species, w.tuning)
	w.colonies = append(w.colonies, c)
	w.byID[id] = c
	w.names[id] = species

	logger.Log.WithFields(logrus.Fields{
		"component": "world",
		"colony_id": id,
		"species":   species,
		"agents":    c.Len(),
	}).Info("Colony spawned.")

	return c
}

// Colony ищет колонию по id
func (w *World) Colony(id int) (*domain.Colony, error) {
	c, ok := w.byID[id]
	if !ok {
		return nil, fmt.Errorf("colony %d: %w", id, domain.ErrColonyNotFound)
	}
	return c, nil
}

// SpeciesName - вид колонии по id, в том числе погибшей
func (w *World) SpeciesName(id int) string {
	return w.names[id]
}

// Give выдает колонии ресурс
func (w *World) Give(id int, res domain.ResourceType, amount int) error {
	c, err := w.Colony(id)
	if err != nil {
		return err
	}
	if err := c.AddResources(res, amount); err != nil {
		return err
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "world",
		"colony_id": id,
		"resource":  res.String(),
		"amount":    amount,
	}).Debug("Resources added.")
	return nil
}

// Battle проводит схватку между двумя колониями (id1 атакует id2)
func (w *World) Battle(id1, id2 int) (systems.BattleOutcome, error) {
	a, err := w.Colony(id1)
	if err != nil {
		return systems.BattleOutcome{}, err
	}
	b, err := w.Colony(id2)
	if err != nil {
		return systems.BattleOutcome{}, err
	}
	return systems.ResolveBattle(a, b), nil
}

// Tick продвигает весь мир на один тик
func (w *World) Tick() TickResult {
	w.ticks++
	res := TickResult{Tick: w.ticks}

	// 1. Жизнь каждой колонии (погибшие - no-op)
	for _, c := range w.colonies {
		res.Reports = append(res.Reports, systems.PerformTick(c, w.rng, w.tuning))
	}

	// 2. Возраст только у живых
	for _, c := range w.colonies {
		if c.IsActive() {
			c.IncrementTicksAlive()
		}
	}

	// 3. Условие окончания (рекомендательное)
	res.ActiveColonies = w.ActiveCount()
	res.Ended = res.ActiveColonies <= 1

	logger.Log.WithFields(logrus.Fields{
		"component": "world",
		"tick":      res.Tick,
		"active":    res.ActiveColonies,
	}).Debug("World tick done.")

	return res
}

// AdvanceResult - сводка по серии тиков.
// Отчеты отдельных тиков не копятся: хранится только последний.
type AdvanceResult struct {
	Ticks      int
	EndedTicks int // на скольких тиках осталось не больше одной активной колонии
	Last       TickResult
}

// Advance выполняет n тиков. При n <= 0 мир не меняется.
func (w *World) Advance(n int) (AdvanceResult, error) {
	var res AdvanceResult
	if n <= 0 {
		return res, domain.ErrNonPositiveTicks
	}
	for i := 0; i < n; i++ {
		res.Last = w.Tick()
		res.Ticks++
		if res.Last.Ended {
			res.EndedTicks++
		}
	}
	return res, nil
}

// ActiveCount - число живых колоний
func (w *World) ActiveCount() int {
	n := 0
	for _, c := range w.colonies {
		if c.IsActive() {
			n++
		}
	}
	return n
}
