package planner

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"production-plan/internal/model"
)

func TestEvaluate_WindScalesWithAvailability(t *testing.T) {
	plant := model.PowerPlant{Name: "wp", Type: model.PlantWindTurbine, Efficiency: 1, PMin: 10, PMax: 150}
	cases := []struct {
		wind float64
		want float64
	}{
		{0, 0},
		{25, 37.5},
		{60, 90},
		{100, 150},
	}
	for _, tc := range cases {
		u, err := Evaluate(0, plant, model.Fuels{Wind: tc.wind, CO2: 20})
		require.NoError(t, err)
		assert.Equal(t, tc.want, u.PMax, "wind %.0f%%", tc.wind)
		assert.Zero(t, u.PMin)
		assert.Zero(t, u.Cost)
	}
}

func TestEvaluate_WindMaxIsRounded(t *testing.T) {
	plant := model.PowerPlant{Name: "wp", Type: model.PlantWindTurbine, PMax: 36}
	u, err := Evaluate(0, plant, model.Fuels{Wind: 33})
	require.NoError(t, err)
	// 36 * 0.33 = 11.88
	assert.Equal(t, 11.9, u.PMax)
}

func TestEvaluate_CombustionCost(t *testing.T) {
	fuels := model.Fuels{Gas: 13.4, Kerosine: 50.8, CO2: 20, Wind: 60}
	gas, err := Evaluate(0, model.PowerPlant{Name: "g", Type: model.PlantGasFired, Efficiency: 0.53, PMin: 100, PMax: 460}, fuels)
	require.NoError(t, err)
	assert.InDelta(t, 13.4/0.53+6, gas.Cost, 1e-9)
	assert.Equal(t, 100.0, gas.PMin)
	assert.Equal(t, 460.0, gas.PMax)

	tj, err := Evaluate(1, model.PowerPlant{Name: "tj", Type: model.PlantTurbojet, Efficiency: 0.3, PMax: 16}, fuels)
	require.NoError(t, err)
	assert.InDelta(t, 50.8/0.3+6, tj.Cost, 1e-9)
	assert.Equal(t, 1, tj.Index)
}

func TestEvaluate_NoCO2SurchargeWithoutPrice(t *testing.T) {
	fuels := model.Fuels{Gas: 10, Kerosine: 30}
	gas, err := Evaluate(0, model.PowerPlant{Name: "g", Type: model.PlantGasFired, Efficiency: 0.5, PMax: 100}, fuels)
	require.NoError(t, err)
	assert.InDelta(t, 20, gas.Cost, 1e-9)

	tj, err := Evaluate(0, model.PowerPlant{Name: "tj", Type: model.PlantTurbojet, Efficiency: 0.5, PMax: 100}, fuels)
	require.NoError(t, err)
	assert.InDelta(t, 60, tj.Cost, 1e-9)
}

func TestEvaluate_UnknownType(t *testing.T) {
	_, err := Evaluate(0, model.PowerPlant{Name: "n", Type: "nuclear", Efficiency: 0.3, PMax: 1000}, model.Fuels{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownPlantType))

	_, err = EvaluateAll([]model.PowerPlant{
		{Name: "g", Type: model.PlantGasFired, Efficiency: 0.5, PMax: 10},
		{Name: "n", Type: "nuclear"},
	}, model.Fuels{})
	assert.ErrorIs(t, err, ErrUnknownPlantType)
}

func TestRoundToTenth(t *testing.T) {
	cases := map[float64]float64{
		0:       0,
		338.4:   338.4,
		21.6:    21.6,
		0.25:    0.3,
		0.04:    0,
		12.3456: 12.3,
		-0.25:   -0.3,
	}
	for in, want := range cases {
		assert.Equal(t, want, RoundToTenth(in), "RoundToTenth(%v)", in)
	}
}
