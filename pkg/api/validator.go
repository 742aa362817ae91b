package api

import (
	"colony-sim/internal/domain"
	"errors"
)

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (p SpawnArgs) Validate() error {
	if p.Species == "" {
		return errors.New("species is required")
	}
	return nil
}

func (p GiveArgs) Validate() error {
	if p.Amount <= 0 {
		return domain.ErrNonPositiveAmount
	}
	return nil
}

func (p TickArgs) Validate() error {
	if p.Count <= 0 {
		return domain.ErrNonPositiveTicks
	}
	return nil
}
