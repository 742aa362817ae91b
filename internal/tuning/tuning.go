package tuning

import (
	"colony-sim/internal/domain"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

type Tuning struct {
	RestingCapacityPerRoom int `yaml:"resting_capacity_per_room" json:"resting_capacity_per_room"`
	LaborPerRoom           int `yaml:"labor_per_room" json:"labor_per_room"`

	InitialPopulation Population `yaml:"initial_population" json:"initial_population"`

	// SpeciesBonuses применяются к стартовой популяции колонии с таким видом
	SpeciesBonuses map[string]Bonus `yaml:"species_bonuses" json:"species_bonuses"`

	// SpeciesRoll задает размер каталога видов: (roll % 6) + 10
	SpeciesRoll int `yaml:"species_roll" json:"species_roll"`
}

type Population struct {
	Leaders  int `yaml:"leaders" json:"leaders"`
	Workers  int `yaml:"workers" json:"workers"`
	Fighters int `yaml:"fighters" json:"fighters"`
}

func (p Population) Total() int {
	return p.Leaders + p.Workers + p.Fighters
}

type Bonus struct {
	Strength   int `yaml:"strength" json:"strength"`
	Efficiency int `yaml:"efficiency" json:"efficiency"`
}

func Defaults() Tuning {
	return Tuning{
		RestingCapacityPerRoom: domain.DefaultRestingCapacityPerRoom,
		LaborPerRoom:           domain.DefaultLaborPerRoom,
		InitialPopulation: Population{
			Leaders:  1,
			Workers:  5,
			Fighters: 2,
		},
		// Бонусы видов включаются только через файл
		SpeciesBonuses: map[string]Bonus{},
		SpeciesRoll: 24,
	}
}

// Load читает tuning.yaml. Отсутствующие поля берутся из Defaults().
func Load(path string) (Tuning, error) {
	t := Defaults()
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, err
	}
	return Parse(raw)
}

// LoadOrDefault - пустой путь означает "только значения по умолчанию"
func LoadOrDefault(path string) (Tuning, error) {
	if strings.TrimSpace(path) == "" {
		return Defaults(), nil
	}
	return Load(path)
}

func Parse(raw []byte) (Tuning, error) {
	t := Defaults()

	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}
	if doc == nil {
		return t, nil // пустой файл
	}
	if err := validate(doc); err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}

	// Бонусы из файла заменяют дефолтные целиком, а не сливаются с ними
	if m, ok := doc.(map[string]any); ok {
		if _, has := m["species_bonuses"]; has {
			t.SpeciesBonuses = nil
		}
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}
	if t.SpeciesBonuses == nil {
		t.SpeciesBonuses = map[string]Bonus{}
	}
	return t, nil
}

// validate прогоняет YAML-документ через JSON-схему.
// YAML -> JSON, чтобы валидатор получил привычные JSON-типы.
func validate(doc any) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	return schema.Validate(v)
}

const schemaURL = "tuning.schema.json"

const schemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "resting_capacity_per_room": {"type": "integer", "minimum": 0},
    "labor_per_room": {"type": "integer", "minimum": 0},
    "species_roll": {"type": "integer", "minimum": 0},
    "initial_population": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "leaders": {"type": "integer", "minimum": 1},
        "workers": {"type": "integer", "minimum": 0},
        "fighters": {"type": "integer", "minimum": 0}
      }
    },
    "species_bonuses": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "additionalProperties": false,
        "properties": {
          "strength": {"type": "integer"},
          "efficiency": {"type": "integer"}
        }
      }
    }
  }
}`

var schema = jsonschema.MustCompileString(schemaURL, schemaJSON)
