package planner

import (
	"fmt"

	"production-plan/internal/model"
)

// CO2TonsPerMWh is the emission factor applied to every combustion plant.
const CO2TonsPerMWh = 0.3

// EvaluatedUnit is a powerplant priced for one request.
// PMin/PMax are the effective bounds in MW, Cost is euro/MWh.
type EvaluatedUnit struct {
	Index int
	Name  string
	Type  model.PlantType
	PMin  float64
	PMax  float64
	Cost  float64
}

// Evaluate applies the fuel prices to one plant.
func Evaluate(index int, p model.PowerPlant, fuels model.Fuels) (EvaluatedUnit, error) {
	u := EvaluatedUnit{
		Index: index,
		Name:  p.Name,
		Type:  p.Type,
		PMin:  p.PMin,
		PMax:  p.PMax,
	}

	switch p.Type {
	case model.PlantWindTurbine:
		u.PMin = 0
		u.PMax = RoundToTenth(p.PMax * fuels.Wind / 100)
		u.Cost = 0
	case model.PlantGasFired:
		u.Cost = fuels.Gas/p.Efficiency + co2Surcharge(fuels)
	case model.PlantTurbojet:
		u.Cost = fuels.Kerosine/p.Efficiency + co2Surcharge(fuels)
	default:
		return EvaluatedUnit{}, fmt.Errorf("%w: %q (powerplant %s)", ErrUnknownPlantType, p.Type, p.Name)
	}

	if u.PMin > u.PMax {
		u.PMin = u.PMax
	}
	return u, nil
}

// EvaluateAll prices every plant, keeping input order.
func EvaluateAll(plants []model.PowerPlant, fuels model.Fuels) ([]EvaluatedUnit, error) {
	out := make([]EvaluatedUnit, 0, len(plants))
	for i, p := range plants {
		u, err := Evaluate(i, p, fuels)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}

func co2Surcharge(fuels model.Fuels) float64 {
	if fuels.CO2 <= 0 {
		return 0
	}
	return CO2TonsPerMWh * fuels.CO2
}
