package models

import "production-plan/internal/planner"

// ProductionPlanItem is one entry of the POST /productionplan response
type ProductionPlanItem struct {
	Name string  `json:"name" yaml:"name"`
	P    float64 `json:"p" yaml:"p"`
}

// MeritOrderResponse represents the response from POST /productionplan/meritorder
type MeritOrderResponse struct {
	Load       float64          `json:"load"`
	Allocated  float64          `json:"allocated"`
	HourlyCost string           `json:"hourly_cost_euro"` // decimal, 2 places
	Units      []MeritOrderUnit `json:"units"`
}

// MeritOrderUnit describes one powerplant in merit order
type MeritOrderUnit struct {
	Rank          int     `json:"rank"`
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	CostPerMWh    float64 `json:"cost_per_mwh"`
	EffectivePMin float64 `json:"effective_pmin"`
	EffectivePMax float64 `json:"effective_pmax"`
	P             float64 `json:"p"`
}

// VersionInfo represents the response from GET /version
type VersionInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// NewPlanItems converts planner allocations to response items, keeping order.
func NewPlanItems(allocs []planner.Allocation) []ProductionPlanItem {
	out := make([]ProductionPlanItem, 0, len(allocs))
	for _, a := range allocs {
		out = append(out, ProductionPlanItem{Name: a.Name, P: a.P})
	}
	return out
}

// NewMeritOrderResponse builds the merit order view of a plan.
func NewMeritOrderResponse(res *planner.Result) MeritOrderResponse {
	units := make([]MeritOrderUnit, 0, len(res.MeritOrder))
	for i, d := range res.MeritOrder {
		units = append(units, MeritOrderUnit{
			Rank:          i + 1,
			Name:          d.Name,
			Type:          string(d.Type),
			CostPerMWh:    planner.RoundCost(d.Cost),
			EffectivePMin: d.PMin,
			EffectivePMax: d.PMax,
			P:             d.P,
		})
	}
	return MeritOrderResponse{
		Load:       res.Load,
		Allocated:  planner.RoundToTenth(res.Total()),
		HourlyCost: res.HourlyCost().StringFixed(2),
		Units:      units,
	}
}
