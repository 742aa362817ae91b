package world

import (
	"colony-sim/internal/domain"
	"errors"
	"strings"
	"testing"
)

func TestReport_FreshColony(t *testing.T) {
	w := newTestWorld()
	w.Spawn("ants")

	r, err := w.Report(1)
	if err != nil {
		t.Fatal(err)
	}

	want := strings.Join([]string{
		"Colony ID: 1",
		"Species: ants",
		"Workers: 5",
		"Fighters: 2",
		"Agent Kills: 0",
		"Colony Kills: 0",
		"Ticks Alive: 0",
		"Status: Alive",
	}, "\n")
	if got := r.String(); got != want {
		t.Errorf("report mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestReport_ListsDefeatedWithNames(t *testing.T) {
	w := newTestWorld()
	w.Spawn("red")
	w.Spawn("black")
	w.Spawn("fire")

	w.Battle(1, 2) // 2 побеждает 1
	w.Battle(3, 2) // 2 побеждает 3

	r, err := w.Report(2)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(r.String(), "Colony Kills: 2 (1:red 3:fire)") {
		t.Errorf("defeated list missing:\n%s", r)
	}
	// 5+2 выживших из каждой колонии + свои 5/2
	if r.Workers != 15 || r.Fighters != 6 {
		t.Errorf("workers/fighters = %d/%d, want 15/6", r.Workers, r.Fighters)
	}
}

func TestReport_Inactive(t *testing.T) {
	w := newTestWorld()
	w.Spawn("red")
	w.Spawn("black")
	w.Battle(1, 2)

	r, _ := w.Report(1)
	if got := r.String(); got != "Colony ID: 1 is inactive and no longer exists." {
		t.Errorf("inactive report = %q", got)
	}
}

func TestReport_Idempotent(t *testing.T) {
	w := newTestWorld()
	w.Spawn("ants")
	w.Advance(3)

	first, _ := w.Report(1)
	second, _ := w.Report(1)
	if first.String() != second.String() {
		t.Errorf("summary changed between calls:\n%s\n---\n%s", first, second)
	}
}

func TestReport_NotFound(t *testing.T) {
	w := newTestWorld()
	if _, err := w.Report(3); !errors.Is(err, domain.ErrColonyNotFound) {
		t.Errorf("expected ErrColonyNotFound, got %v", err)
	}
}
