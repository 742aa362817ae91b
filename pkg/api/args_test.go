package api

import (
	"colony-sim/internal/domain"
	"errors"
	"testing"
)

func TestParseSpawn(t *testing.T) {
	p, err := ParseSpawn([]string{"3", "-4", "red"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.X != 3 || p.Y != -4 || p.Species != "red" {
		t.Errorf("got %+v", p)
	}

	tests := []struct {
		name string
		args []string
	}{
		{"missing species", []string{"1", "2"}},
		{"non numeric x", []string{"a", "2", "red"}},
		{"non numeric y", []string{"1", "b", "red"}},
		{"empty", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseSpawn(tt.args); !errors.Is(err, ErrMalformed) {
				t.Errorf("expected ErrMalformed, got %v", err)
			}
		})
	}
}

func TestParseGive(t *testing.T) {
	p, err := ParseGive([]string{"1", "warrior", "3"})
	if err != nil {
		t.Fatal(err)
	}
	if p.ColonyID != 1 || p.Resource != "warrior" || p.Amount != 3 {
		t.Errorf("got %+v", p)
	}

	if _, err := ParseGive([]string{"x", "food", "3"}); !errors.Is(err, ErrMalformed) {
		t.Errorf("non numeric id: %v", err)
	}
	if _, err := ParseGive([]string{"1", "food"}); !errors.Is(err, ErrMalformed) {
		t.Errorf("missing amount: %v", err)
	}

	if err := (GiveArgs{ColonyID: 1, Resource: "food", Amount: 0}).Validate(); !errors.Is(err, domain.ErrNonPositiveAmount) {
		t.Errorf("zero amount should fail validation, got %v", err)
	}
}

func TestParseTick(t *testing.T) {
	p, err := ParseTick(nil)
	if err != nil || p.Count != 1 {
		t.Errorf("default tick count: %+v err=%v", p, err)
	}

	p, err = ParseTick([]string{"5"})
	if err != nil || p.Count != 5 {
		t.Errorf("explicit count: %+v err=%v", p, err)
	}

	if _, err := ParseTick([]string{"many"}); !errors.Is(err, ErrMalformed) {
		t.Errorf("non numeric count: %v", err)
	}

	for _, raw := range []string{"100001", "9223372036854775807", "99999999999999999999"} {
		if _, err := ParseTick([]string{raw}); !errors.Is(err, ErrMalformed) {
			t.Errorf("count %s: expected ErrMalformed, got %v", raw, err)
		}
	}
	if p, err := ParseTick([]string{"100000"}); err != nil || p.Count != MaxTickCount {
		t.Errorf("max count: %+v err=%v", p, err)
	}

	for _, n := range []int{0, -1} {
		if err := (TickArgs{Count: n}).Validate(); !errors.Is(err, domain.ErrNonPositiveTicks) {
			t.Errorf("count %d: expected ErrNonPositiveTicks, got %v", n, err)
		}
	}
}

func TestParseBattleAndSummary(t *testing.T) {
	b, err := ParseBattle([]string{"1", "2"})
	if err != nil || b.First != 1 || b.Second != 2 {
		t.Errorf("battle: %+v err=%v", b, err)
	}
	if _, err := ParseBattle([]string{"1"}); !errors.Is(err, ErrMalformed) {
		t.Errorf("battle missing id: %v", err)
	}

	s, err := ParseSummary([]string{"7"})
	if err != nil || s.ColonyID != 7 {
		t.Errorf("summary: %+v err=%v", s, err)
	}
	if _, err := ParseSummary([]string{"seven"}); !errors.Is(err, ErrMalformed) {
		t.Errorf("summary non numeric: %v", err)
	}
}
