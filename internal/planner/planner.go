package planner

import (
	"fmt"

	"production-plan/internal/logger"
	"production-plan/internal/model"
)

// Planner turns a PlanRequest into a production plan. It holds no per-request
// state and may be shared between goroutines.
type Planner struct {
	log logger.Logger
}

func New(log logger.Logger) *Planner {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Planner{log: log}
}

// Run prices every plant and allocates the load in merit order.
func (p *Planner) Run(req model.PlanRequest) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	units, err := EvaluateAll(req.PowerPlants, req.Fuels)
	if err != nil {
		return nil, err
	}
	for _, u := range units {
		p.log.Debugw("evaluated powerplant", map[string]any{
			"name": u.Name,
			"type": string(u.Type),
			"pmin": u.PMin,
			"pmax": u.PMax,
			"cost": u.Cost,
		})
	}

	res, err := Allocate(units, req.Load)
	if err != nil {
		p.log.Warnf("plan for %.1f MW rejected: %v", req.Load, err)
		return nil, err
	}
	for _, d := range res.MeritOrder {
		p.log.Debugf("allocated %.1f MW to %s", d.P, d.Name)
	}
	p.log.Infof("planned %.1f MW over %d powerplants", res.Total(), len(res.Allocations))
	return res, nil
}
