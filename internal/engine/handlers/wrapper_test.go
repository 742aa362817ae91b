package handlers

import (
	"colony-sim/internal/domain"
	"colony-sim/pkg/api"
	"errors"
	"testing"
)

func TestWithArgs_ParseAndValidate(t *testing.T) {
	called := 0
	h := WithArgs(api.ParseTick, func(ctx Context, p api.TickArgs) (Result, error) {
		called++
		return Result{Msg: "ok"}, nil
	})

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"default count", nil, nil},
		{"explicit count", []string{"3"}, nil},
		{"not a number", []string{"x"}, api.ErrMalformed},
		{"zero", []string{"0"}, domain.ErrNonPositiveTicks},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := called
			res, err := h(Context{}, tt.args)

			if tt.wantErr == nil {
				if err != nil || res.Msg != "ok" {
					t.Errorf("unexpected result %+v err=%v", res, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			if called != before {
				t.Error("handler must not run on invalid arguments")
			}
		})
	}
}

func TestWithNoArgs_IgnoresTokens(t *testing.T) {
	h := WithNoArgs(func(ctx Context) (Result, error) {
		return Result{Msg: "done", Quit: true}, nil
	})

	res, err := h(Context{}, []string{"extra", "tokens"})
	if err != nil || !res.Quit || res.Msg != "done" {
		t.Errorf("got %+v err=%v", res, err)
	}
}
