package population

import (
	"colony-sim/internal/domain"
	"fmt"
)

// FacilityTemplates - имена помещений, доступные фабрике
var FacilityTemplates = map[string]domain.FacilityKind{
	"Spawning": domain.FacilitySpawning,
	"Resting":  domain.FacilityResting,
}

// StartingFacilities - что строится в каждой новой колонии (в этом порядке)
var StartingFacilities = []string{"Spawning", "Resting"}

// SpeciesCatalog возвращает список предлагаемых названий видов.
// Размер каталога: (roll % 6) + 10.
func SpeciesCatalog(roll int) []string {
	if roll < 0 {
		roll = -roll
	}
	n := roll%6 + 10
	species := make([]string, 0, n)
	for i := 0; i < n; i++ {
		species = append(species, fmt.Sprintf("Species_%d", i+1))
	}
	return species
}
