package domain

import "testing"

func TestNewAgent_BaseStats(t *testing.T) {
	tests := []struct {
		kind       AgentKind
		strength   int
		efficiency int
	}{
		{KindWorker, 5, 10},
		{KindFighter, 10, 5},
		{KindLeader, 15, 0},
	}

	for _, tt := range tests {
		a := NewAgent(tt.kind)
		if a == nil {
			t.Fatalf("NewAgent(%v) returned nil", tt.kind)
		}
		if a.Strength != tt.strength || a.Efficiency != tt.efficiency {
			t.Errorf("%v: got (%d,%d), want (%d,%d)", tt.kind, a.Strength, a.Efficiency, tt.strength, tt.efficiency)
		}
		if a.RestCounter() != 0 {
			t.Errorf("%v: fresh agent should have zero rest counter", tt.kind)
		}
	}

	if NewAgent(KindUnknown) != nil {
		t.Error("NewAgent(KindUnknown) should return nil")
	}
}

func TestParseAgentKind_Aliases(t *testing.T) {
	tests := map[string]AgentKind{
		"Worker":  KindWorker,
		"Drone":   KindWorker,
		"fighter": KindFighter,
		"Warrior": KindFighter,
		"Leader":  KindLeader,
		"Queen":   KindLeader,
		"Larva":   KindUnknown,
	}
	for input, want := range tests {
		if got := ParseAgentKind(input); got != want {
			t.Errorf("ParseAgentKind(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestAgent_RestWrapsAtThreshold(t *testing.T) {
	a := NewAgent(KindWorker)

	for i := 1; i < RestThreshold; i++ {
		if a.Rest() {
			t.Fatalf("rest cycle completed too early at step %d", i)
		}
		if a.RestCounter() != i {
			t.Fatalf("step %d: counter = %d", i, a.RestCounter())
		}
	}

	if !a.Rest() {
		t.Fatal("expected rest cycle to complete on threshold")
	}
	if a.RestCounter() != 0 {
		t.Errorf("counter should reset to 0, got %d", a.RestCounter())
	}
	if a.RestCycles != 1 {
		t.Errorf("RestCycles = %d, want 1", a.RestCycles)
	}
}

func TestAgent_PerformActionRests(t *testing.T) {
	a := NewAgent(KindLeader)
	msg := a.PerformAction()

	if msg != "Leader is spawning an egg." {
		t.Errorf("unexpected action message: %q", msg)
	}
	if a.RestCounter() != 1 {
		t.Errorf("PerformAction should rest once, counter = %d", a.RestCounter())
	}
}

func TestAgent_SetAttributesOverwrites(t *testing.T) {
	a := NewAgent(KindFighter)
	a.SetAttributes(25, 5)

	if a.Strength != 25 || a.Efficiency != 5 {
		t.Errorf("got (%d,%d), want (25,5)", a.Strength, a.Efficiency)
	}
}
