package model

import (
	"errors"
	"fmt"
)

// PlantType is the closed set of generating technologies the planner knows how to cost.
// Keep these values stable; they are part of the request payload.
type PlantType string

const (
	PlantGasFired    PlantType = "gasfired"
	PlantTurbojet    PlantType = "turbojet"
	PlantWindTurbine PlantType = "windturbine"
)

// PlantTypes lists every supported plant type.
var PlantTypes = []PlantType{PlantGasFired, PlantTurbojet, PlantWindTurbine}

func ParsePlantType(s string) (PlantType, error) {
	for _, t := range PlantTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown powerplant type %q", s)
}

// Combustion reports whether the plant burns fuel (and therefore emits CO2).
func (t PlantType) Combustion() bool {
	return t == PlantGasFired || t == PlantTurbojet
}

// Fuels holds the prices and wind availability for one request.
// Units:
// - Gas, Kerosine: euro/MWh
// - CO2: euro/ton (0 when not provided)
// - Wind: percentage 0..100
type Fuels struct {
	Gas      float64
	Kerosine float64
	CO2      float64
	Wind     float64
}

func (f Fuels) Validate() error {
	if f.Gas < 0 {
		return errors.New("gas price must be >= 0")
	}
	if f.Kerosine < 0 {
		return errors.New("kerosine price must be >= 0")
	}
	if f.CO2 < 0 {
		return errors.New("co2 price must be >= 0")
	}
	if f.Wind < 0 || f.Wind > 100 {
		return errors.New("wind must be in [0, 100]")
	}
	return nil
}

// PowerPlant is the static description of one generating unit.
// PMin and PMax are in MW.
type PowerPlant struct {
	Name       string
	Type       PlantType
	Efficiency float64
	PMin       float64
	PMax       float64
}

func (p PowerPlant) Validate() error {
	if p.Name == "" {
		return errors.New("name is required")
	}
	if _, err := ParsePlantType(string(p.Type)); err != nil {
		return fmt.Errorf("powerplant %s: %w", p.Name, err)
	}
	if p.Type.Combustion() && p.Efficiency <= 0 {
		return fmt.Errorf("powerplant %s: efficiency must be > 0", p.Name)
	}
	if p.PMin < 0 || p.PMax < 0 {
		return fmt.Errorf("powerplant %s: pmin/pmax must be >= 0", p.Name)
	}
	if p.PMin > p.PMax {
		return fmt.Errorf("powerplant %s: pmin must be <= pmax", p.Name)
	}
	return nil
}

// PlanRequest bundles everything the planner needs for one hour.
type PlanRequest struct {
	Load        float64
	Fuels       Fuels
	PowerPlants []PowerPlant
}

func (r PlanRequest) Validate() error {
	if r.Load < 0 {
		return errors.New("load must be >= 0")
	}
	if err := r.Fuels.Validate(); err != nil {
		return fmt.Errorf("fuels: %w", err)
	}
	for i, p := range r.PowerPlants {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("powerplants[%d]: %w", i, err)
		}
	}
	return nil
}
