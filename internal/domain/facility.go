package domain

// FacilityKind - тип помещения колонии
type FacilityKind uint8

const (
	FacilityUnknown FacilityKind = iota
	FacilitySpawning
	FacilityResting
)

func (k FacilityKind) String() string {
	switch k {
	case FacilitySpawning:
		return "SpawningRoom"
	case FacilityResting:
		return "RestingRoom"
	}
	return "UnknownRoom"
}

// Facility - строящееся помещение, принадлежащее колонии
type Facility struct {
	Kind                  FacilityKind `json:"kind"`
	RemainingConstruction int          `json:"remainingConstruction"`
}

// NewFacility создает помещение с начальным временем постройки.
// Для FacilityUnknown возвращает nil.
func NewFacility(kind FacilityKind) *Facility {
	switch kind {
	case FacilitySpawning:
		return &Facility{Kind: kind, RemainingConstruction: SpawningConstructionTime}
	case FacilityResting:
		return &Facility{Kind: kind, RemainingConstruction: RestingConstructionTime}
	}
	return nil
}

// IsComplete - постройка завершена
func (f *Facility) IsComplete() bool {
	return f.RemainingConstruction == 0
}

// AdvanceConstruction уменьшает оставшееся время на количество труда (не ниже 0)
func (f *Facility) AdvanceConstruction(labor int) {
	if labor <= 0 || f.RemainingConstruction == 0 {
		return
	}
	f.RemainingConstruction = max(0, f.RemainingConstruction-labor)
}

// PerformAction - описательный сигнал, на состояние колонии не влияет
func (f *Facility) PerformAction() string {
	switch f.Kind {
	case FacilitySpawning:
		return "SpawningRoom is spawning agents."
	case FacilityResting:
		return "RestingRoom is allowing agents to rest."
	}
	return "Unknown room is idle."
}
