package models

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"production-plan/internal/model"
)

// ProductionPlanRequest represents the request body for POST /productionplan
type ProductionPlanRequest struct {
	Load        *float64          `json:"load" yaml:"load" binding:"required,gte=0"`
	Fuels       Fuels             `json:"fuels" yaml:"fuels"`
	PowerPlants []PowerPlantInput `json:"powerplants" yaml:"powerplants" binding:"required,dive"`
}

// Fuels carries fuel prices and wind availability. Keys are accepted either
// with their unit suffix ("gas(euro/MWh)") or by plain name ("gas").
type Fuels struct {
	Gas      *float64 `json:"gas(euro/MWh)" yaml:"gas(euro/MWh)" binding:"required,gte=0"`
	Kerosine *float64 `json:"kerosine(euro/MWh)" yaml:"kerosine(euro/MWh)" binding:"required,gte=0"`
	CO2      *float64 `json:"co2(euro/ton),omitempty" yaml:"co2(euro/ton),omitempty" binding:"omitempty,gte=0"`
	Wind     *float64 `json:"wind(%)" yaml:"wind(%)" binding:"required,gte=0,lte=100"`
}

// fuelsAliases lists every accepted key; unit-suffixed keys win when both are present.
type fuelsAliases struct {
	Gas          *float64 `json:"gas(euro/MWh)" yaml:"gas(euro/MWh)"`
	Kerosine     *float64 `json:"kerosine(euro/MWh)" yaml:"kerosine(euro/MWh)"`
	CO2          *float64 `json:"co2(euro/ton)" yaml:"co2(euro/ton)"`
	Wind         *float64 `json:"wind(%)" yaml:"wind(%)"`
	GasName      *float64 `json:"gas" yaml:"gas"`
	KerosineName *float64 `json:"kerosine" yaml:"kerosine"`
	CO2Name      *float64 `json:"co2" yaml:"co2"`
	WindName     *float64 `json:"wind" yaml:"wind"`
}

func (a fuelsAliases) resolve() Fuels {
	pick := func(primary, alias *float64) *float64 {
		if primary != nil {
			return primary
		}
		return alias
	}
	return Fuels{
		Gas:      pick(a.Gas, a.GasName),
		Kerosine: pick(a.Kerosine, a.KerosineName),
		CO2:      pick(a.CO2, a.CO2Name),
		Wind:     pick(a.Wind, a.WindName),
	}
}

func (f *Fuels) UnmarshalJSON(data []byte) error {
	var a fuelsAliases
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*f = a.resolve()
	return nil
}

// UnmarshalYAML accepts the same aliases for YAML payload files.
func (f *Fuels) UnmarshalYAML(value *yaml.Node) error {
	var a fuelsAliases
	if err := value.Decode(&a); err != nil {
		return err
	}
	*f = a.resolve()
	return nil
}

// PowerPlantInput describes one generating unit in the request.
type PowerPlantInput struct {
	Name       string   `json:"name" yaml:"name" binding:"required"`
	Type       string   `json:"type" yaml:"type" binding:"required,oneof=gasfired turbojet windturbine"`
	Efficiency *float64 `json:"efficiency" yaml:"efficiency" binding:"required,gte=0"`
	PMin       *float64 `json:"pmin" yaml:"pmin" binding:"required,gte=0"`
	PMax       *float64 `json:"pmax" yaml:"pmax" binding:"required,gte=0"`
}

// ToModel converts the bound request into the planner's input. Missing
// optional values default to zero.
func (r ProductionPlanRequest) ToModel() model.PlanRequest {
	out := model.PlanRequest{
		Load: deref(r.Load),
		Fuels: model.Fuels{
			Gas:      deref(r.Fuels.Gas),
			Kerosine: deref(r.Fuels.Kerosine),
			CO2:      deref(r.Fuels.CO2),
			Wind:     deref(r.Fuels.Wind),
		},
		PowerPlants: make([]model.PowerPlant, 0, len(r.PowerPlants)),
	}
	for _, p := range r.PowerPlants {
		out.PowerPlants = append(out.PowerPlants, model.PowerPlant{
			Name:       p.Name,
			Type:       model.PlantType(p.Type),
			Efficiency: deref(p.Efficiency),
			PMin:       deref(p.PMin),
			PMax:       deref(p.PMax),
		})
	}
	return out
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
