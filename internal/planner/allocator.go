package planner

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/floats"
)

// Allocation is the power assigned to one plant, rounded to 0.1 MW.
type Allocation struct {
	Name string
	P    float64
}

// Dispatch pairs an evaluated unit with its rounded allocation.
type Dispatch struct {
	EvaluatedUnit
	P float64
}

// Result is the outcome of one allocation pass.
type Result struct {
	// Allocations follow the input order of the plants.
	Allocations []Allocation
	// MeritOrder lists the same units cheapest first, ties broken by input index.
	MeritOrder []Dispatch
	Load       float64
}

// Total returns the sum of the rounded allocations.
func (r *Result) Total() float64 {
	ps := make([]float64, len(r.Allocations))
	for i, a := range r.Allocations {
		ps[i] = a.P
	}
	return floats.Sum(ps)
}

// HourlyCost is the euro cost of running the plan for one hour, to the cent.
func (r *Result) HourlyCost() decimal.Decimal {
	total := decimal.Zero
	for _, d := range r.MeritOrder {
		if d.P == 0 {
			continue
		}
		total = total.Add(decimal.NewFromFloat(d.P).Mul(decimal.NewFromFloat(d.Cost)))
	}
	return total.Round(2)
}

// capacity sums the effective pmax of the units in decimal, so that totals
// such as 0.7 + 0.1 compare equal to a load of 0.8.
func capacity(units []EvaluatedUnit) decimal.Decimal {
	total := decimal.Zero
	for _, u := range units {
		total = total.Add(decimal.NewFromFloat(u.PMax))
	}
	return total
}

// meritOrder returns slice positions of units, cheapest first.
func meritOrder(units []EvaluatedUnit) []int {
	order := make([]int, len(units))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ua, ub := units[order[a]], units[order[b]]
		if ua.Cost != ub.Cost {
			return ua.Cost < ub.Cost
		}
		return ua.Index < ub.Index
	})
	return order
}

// Allocate distributes load over units in merit order.
//
// Each unit takes min(pmax, remaining) when that is at least its pmin and
// nothing otherwise. A skipped unit is never revisited, so some feasible
// instances end in ErrLoadNotMatched. The units slice is not modified.
func Allocate(units []EvaluatedUnit, load float64) (*Result, error) {
	target := decimal.NewFromFloat(load)
	if avail := capacity(units); avail.LessThan(target) {
		return nil, fmt.Errorf("%w: load %.1f MW, capacity %s MW", ErrInsufficientCapacity, load, avail.StringFixed(1))
	}

	// Residuals are tracked in decimal so a residual equal to a pmin in the
	// input is not lost to float noise.
	order := meritOrder(units)
	raw := make([]decimal.Decimal, len(order))
	allocated := decimal.Zero
	for i, pos := range order {
		u := units[pos]
		remaining := target.Sub(allocated)
		if !remaining.IsPositive() {
			break
		}
		candidate := decimal.Min(decimal.NewFromFloat(u.PMax), remaining)
		if candidate.GreaterThanOrEqual(decimal.NewFromFloat(u.PMin)) {
			raw[i] = candidate
			allocated = allocated.Add(candidate)
		}
	}

	tolerance := decimal.NewFromFloat(Tolerance)
	if allocated.Sub(target).Abs().GreaterThan(tolerance) {
		return nil, fmt.Errorf("%w: allocated %s MW of %.1f MW", ErrLoadNotMatched, allocated.StringFixed(1), load)
	}

	res := &Result{
		Allocations: make([]Allocation, len(units)),
		MeritOrder:  make([]Dispatch, len(order)),
		Load:        load,
	}
	emitted := decimal.Zero
	for i, pos := range order {
		u := units[pos]
		rounded := raw[i].Round(1)
		emitted = emitted.Add(rounded)
		p := rounded.InexactFloat64()
		res.MeritOrder[i] = Dispatch{EvaluatedUnit: u, P: p}
		res.Allocations[pos] = Allocation{Name: u.Name, P: p}
	}
	// Bounds off the 0.1 MW grid can round the plan away from the load.
	if emitted.Sub(target).Abs().GreaterThan(tolerance) {
		return nil, fmt.Errorf("%w: rounded plan totals %s MW of %.1f MW", ErrLoadNotMatched, emitted.StringFixed(1), load)
	}
	return res, nil
}
