package world

import (
	"colony-sim/internal/domain"
	"colony-sim/internal/tuning"
	"errors"
	"math/rand"
	"testing"
)

func newTestWorld() *World {
	return New(tuning.Defaults(), rand.New(rand.NewSource(7)))
}

func TestWorld_SpawnAssignsSequentialIDs(t *testing.T) {
	w := newTestWorld()

	for want := 1; want <= 3; want++ {
		c := w.Spawn("ants")
		if c.ID != want {
			t.Errorf("spawn #%d got id %d", want, c.ID)
		}
	}
	if len(w.Colonies()) != 3 {
		t.Errorf("registry size = %d, want 3", len(w.Colonies()))
	}
	if w.SpeciesName(2) != "ants" {
		t.Errorf("name directory = %q", w.SpeciesName(2))
	}
}

func TestWorld_ColonyNotFound(t *testing.T) {
	w := newTestWorld()

	if _, err := w.Colony(42); !errors.Is(err, domain.ErrColonyNotFound) {
		t.Errorf("expected ErrColonyNotFound, got %v", err)
	}
	if err := w.Give(42, domain.ResourceFood, 1); !errors.Is(err, domain.ErrColonyNotFound) {
		t.Errorf("give: expected ErrColonyNotFound, got %v", err)
	}
	w.Spawn("ants")
	if _, err := w.Battle(1, 9); !errors.Is(err, domain.ErrColonyNotFound) {
		t.Errorf("battle: expected ErrColonyNotFound, got %v", err)
	}
}

func TestWorld_TickAgesOnlyActiveColonies(t *testing.T) {
	w := newTestWorld()
	w.Spawn("red")
	w.Spawn("black")
	w.Spawn("fire")

	if _, err := w.Battle(1, 2); err != nil { // ничья -> 1 погибает
		t.Fatalf("battle: %v", err)
	}

	res := w.Tick()

	c1, _ := w.Colony(1)
	c2, _ := w.Colony(2)
	if c1.TicksAlive != 0 {
		t.Errorf("dead colony aged: %d", c1.TicksAlive)
	}
	if c2.TicksAlive != 1 {
		t.Errorf("alive colony ticks = %d, want 1", c2.TicksAlive)
	}
	if res.ActiveColonies != 2 || res.Ended {
		t.Errorf("tick result = %+v", res)
	}
	if res.Tick != 1 || w.Ticks() != 1 {
		t.Errorf("world tick counter = %d/%d", res.Tick, w.Ticks())
	}
}

func TestWorld_TickSignalsEnd(t *testing.T) {
	w := newTestWorld()
	w.Spawn("red")
	w.Spawn("black")

	if res := w.Tick(); res.Ended {
		t.Error("two active colonies should not signal end")
	}

	w.Battle(1, 2)
	res := w.Tick()
	if !res.Ended || res.ActiveColonies != 1 {
		t.Errorf("expected end signal with 1 active colony, got %+v", res)
	}

	// Сигнал рекомендательный: мир продолжает тикать
	res = w.Tick()
	if res.Tick != 3 {
		t.Errorf("world should keep ticking, tick = %d", res.Tick)
	}
}

func TestWorld_AdvanceRejectsNonPositive(t *testing.T) {
	w := newTestWorld()
	c := w.Spawn("ants")

	for _, n := range []int{0, -3} {
		if _, err := w.Advance(n); !errors.Is(err, domain.ErrNonPositiveTicks) {
			t.Errorf("Advance(%d): expected ErrNonPositiveTicks, got %v", n, err)
		}
	}
	if w.Ticks() != 0 || c.TicksAlive != 0 || c.Facilities()[0].RemainingConstruction != 50 {
		t.Error("rejected advance changed state")
	}

	res, err := w.Advance(4)
	if err != nil || res.Ticks != 4 || c.TicksAlive != 4 {
		t.Errorf("Advance(4): ticks=%d err=%v ticksAlive=%d", res.Ticks, err, c.TicksAlive)
	}
}

func TestWorld_AdvanceCountsEndedTicks(t *testing.T) {
	w := newTestWorld()
	w.Spawn("red")

	res, err := w.Advance(3)
	if err != nil {
		t.Fatal(err)
	}
	if res.EndedTicks != 3 || !res.Last.Ended || res.Last.Tick != 3 {
		t.Errorf("single colony: %+v", res)
	}

	w.Spawn("black")
	res, _ = w.Advance(2)
	if res.EndedTicks != 0 || res.Last.ActiveColonies != 2 {
		t.Errorf("two colonies: %+v", res)
	}
}

func TestWorld_GiveInactiveColony(t *testing.T) {
	w := newTestWorld()
	w.Spawn("red")
	w.Spawn("black")
	w.Battle(1, 2)

	err := w.Give(1, domain.ResourceWarrior, 3)
	if !errors.Is(err, domain.ErrColonyInactive) {
		t.Fatalf("expected ErrColonyInactive, got %v", err)
	}
	c1, _ := w.Colony(1)
	if c1.Len() != 0 {
		t.Errorf("dead colony resurrected with %d agents", c1.Len())
	}
}

func TestWorld_DefeatRecordedOnce(t *testing.T) {
	w := newTestWorld()
	w.Spawn("red")
	w.Spawn("black")

	w.Battle(1, 2)
	out, err := w.Battle(1, 2) // повторный бой с погибшей колонией
	if err != nil {
		t.Fatal(err)
	}
	if !out.Skipped() {
		t.Error("battle with inactive colony should be skipped")
	}

	winner, _ := w.Colony(2)
	count := 0
	for _, id := range winner.DefeatedColonies {
		if id == 1 {
			count++
		}
	}
	if count != 1 {
		t.Errorf("colony 1 appears %d times in defeated list", count)
	}
}
