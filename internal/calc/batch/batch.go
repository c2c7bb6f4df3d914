// Package batch evaluates many catalog formulas in one request.
package batch

import (
	"errors"
	"fmt"

	"MMECalc/internal/calc/catalog"
)

const MaxItems = 500

var (
	ErrNoItems      = errors.New("no items")
	ErrTooManyItems = fmt.Errorf("more than %d items", MaxItems)
)

type Item struct {
	Formula string        `json:"formula"`
	Input   catalog.Input `json:"input"`
}

type Request struct {
	Items []Item `json:"items"`
}

// ItemResult holds either a result or the error of one item.
type ItemResult struct {
	Index   int             `json:"index"`
	Formula string          `json:"formula"`
	Result  *catalog.Result `json:"result,omitempty"`
	Error   string          `json:"error,omitempty"`
}

type Response struct {
	Count   int          `json:"count"`
	Failed  int          `json:"failed"`
	Results []ItemResult `json:"results"`
}

// Calculate runs every item in order. A failing item does not stop the
// batch; its error is reported in place.
func Calculate(items []Item) (Response, error) {
	if len(items) == 0 {
		return Response{}, ErrNoItems
	}
	if len(items) > MaxItems {
		return Response{}, ErrTooManyItems
	}
	out := Response{Count: len(items), Results: make([]ItemResult, 0, len(items))}
	for i, item := range items {
		ir := ItemResult{Index: i, Formula: item.Formula}
		res, err := catalog.Evaluate(item.Formula, item.Input)
		if err != nil {
			ir.Error = err.Error()
			out.Failed++
		} else {
			ir.Result = &res
		}
		out.Results = append(out.Results, ir)
	}
	return out, nil
}
