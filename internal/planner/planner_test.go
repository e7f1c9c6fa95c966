package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"production-plan/internal/model"
)

func TestPlanner_Run(t *testing.T) {
	p := New(nil)
	res, err := p.Run(model.PlanRequest{Load: 910, Fuels: exampleFuels(), PowerPlants: examplePlants()})
	require.NoError(t, err)
	assert.Equal(t, []Allocation{
		{Name: "gasfiredbig1", P: 460},
		{Name: "gasfiredbig2", P: 338.4},
		{Name: "gasfiredsomewhatsmaller", P: 0},
		{Name: "tj1", P: 0},
		{Name: "windpark1", P: 90},
		{Name: "windpark2", P: 21.6},
	}, res.Allocations)
}

func TestPlanner_RejectsInvalidRequest(t *testing.T) {
	p := New(nil)
	cases := map[string]model.PlanRequest{
		"negative load": {Load: -1, Fuels: exampleFuels(), PowerPlants: examplePlants()},
		"wind > 100":    {Load: 10, Fuels: model.Fuels{Wind: 120}, PowerPlants: examplePlants()},
		"unknown type": {Load: 10, Fuels: exampleFuels(), PowerPlants: []model.PowerPlant{
			{Name: "n", Type: "nuclear", Efficiency: 0.3, PMax: 100},
		}},
		"zero efficiency": {Load: 10, Fuels: exampleFuels(), PowerPlants: []model.PowerPlant{
			{Name: "g", Type: model.PlantGasFired, PMax: 100},
		}},
	}
	for name, req := range cases {
		_, err := p.Run(req)
		assert.ErrorIs(t, err, ErrInvalidRequest, name)
	}
}

func TestPlanner_FailuresAreDistinct(t *testing.T) {
	p := New(nil)
	_, err := p.Run(model.PlanRequest{Load: 5000, Fuels: exampleFuels(), PowerPlants: examplePlants()})
	assert.ErrorIs(t, err, ErrInsufficientCapacity)
	assert.NotErrorIs(t, err, ErrLoadNotMatched)

	_, err = p.Run(model.PlanRequest{Load: 30, Fuels: exampleFuels(), PowerPlants: []model.PowerPlant{
		{Name: "gas", Type: model.PlantGasFired, Efficiency: 0.5, PMin: 50, PMax: 100},
	}})
	assert.ErrorIs(t, err, ErrLoadNotMatched)
	assert.NotErrorIs(t, err, ErrInsufficientCapacity)
}
