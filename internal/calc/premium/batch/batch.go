package batch

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"MineRappa/internal/calc/rap"
	"MineRappa/internal/units"
)

var validate = validator.New()

type Input struct {
	// At most 500 designs per request.
	Items []rap.Input `json:"items" validate:"required,min=1,max=500"`
	// Solve back-solves every pillar width instead of evaluating the
	// widths given.
	Solve bool `json:"solve"`
}

type Item struct {
	Index  int         `json:"index"`
	Result *rap.Result `json:"result,omitempty"`
	Error  string      `json:"error,omitempty"`
}

type Result struct {
	Count  int    `json:"count"`
	Failed int    `json:"failed"`
	Items  []Item `json:"items"`
}

// Calculate evaluates every design in order. A design that fails is
// reported in its item and does not stop the others.
func Calculate(ctx context.Context, reg *units.Registry, in Input) (Result, error) {
	if err := validate.Struct(in); err != nil {
		return Result{}, fmt.Errorf("batch: %w", err)
	}
	run := rap.Calculate
	if in.Solve {
		run = rap.Solve
	}
	out := Result{Items: make([]Item, 0, len(in.Items))}
	for i, item := range in.Items {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		res, err := run(reg, item)
		if err != nil {
			out.Items = append(out.Items, Item{Index: i, Error: err.Error()})
			out.Failed++
			continue
		}
		out.Items = append(out.Items, Item{Index: i, Result: &res})
	}
	out.Count = len(out.Items)
	return out, nil
}
