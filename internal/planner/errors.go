package planner

import "errors"

var (
	// ErrInvalidRequest wraps validation failures of the request itself.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrInsufficientCapacity means the summed effective pmax of every unit is below the load.
	ErrInsufficientCapacity = errors.New("insufficient power capacity to cover the load")
	// ErrLoadNotMatched means the merit-order pass could not land on the load
	// within tolerance, usually because residual load fell below a unit's pmin.
	ErrLoadNotMatched = errors.New("could not match the load with the available powerplants")
	// ErrUnknownPlantType is a configuration error: the cost model has no rule for the type.
	ErrUnknownPlantType = errors.New("unknown powerplant type")
)
