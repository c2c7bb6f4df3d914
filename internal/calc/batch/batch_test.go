package batch

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"MMECalc/internal/calc/catalog"
)

func TestCalculate(t *testing.T) {
	items := []Item{
		{Formula: "brinell_to_tensile", Input: catalog.Numbers(map[string]float64{"hb": 200})},
		{Formula: "brinell_to_tensile", Input: catalog.Numbers(map[string]float64{"hb": 0})},
		{Formula: "no_such_formula"},
		{Formula: "apf_fcc", Input: catalog.Numbers(map[string]float64{"radius": 0.128})},
	}
	res, err := Calculate(items)
	if err != nil {
		t.Fatal(err)
	}
	if res.Count != 4 || res.Failed != 2 {
		t.Errorf("count=%d failed=%d", res.Count, res.Failed)
	}
	for i, want := range []bool{true, false, false, true} {
		if got := res.Results[i].Result != nil; got != want {
			t.Errorf("item %d ok=%v, want %v (%s)", i, got, want, res.Results[i].Error)
		}
		if res.Results[i].Index != i {
			t.Errorf("item %d has index %d", i, res.Results[i].Index)
		}
	}
	if res.Results[0].Result.Value() != 690 {
		t.Errorf("value %v", res.Results[0].Result.Value())
	}
}

func TestCalculateLimits(t *testing.T) {
	if _, err := Calculate(nil); !errors.Is(err, ErrNoItems) {
		t.Errorf("expected ErrNoItems, got %v", err)
	}
	if _, err := Calculate(make([]Item, MaxItems+1)); !errors.Is(err, ErrTooManyItems) {
		t.Errorf("expected ErrTooManyItems, got %v", err)
	}
}

func TestHandler(t *testing.T) {
	h := &Handler{}
	body := `{"items":[{"formula":"galvanic_potential_diff","input":{"metal_a":"zinc","metal_b":"copper"}},{"formula":"hrc_to_hb","input":{"hrc":80}}]}`
	w := httptest.NewRecorder()
	h.Calc(w, httptest.NewRequest("POST", "/api/user/tools/batch/calc", strings.NewReader(body)))
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	var res Response
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if res.Failed != 1 || res.Results[1].Error == "" {
		t.Errorf("response %+v", res)
	}

	w = httptest.NewRecorder()
	h.Calc(w, httptest.NewRequest("POST", "/", strings.NewReader(`{"items":[]}`)))
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty batch status %d", w.Code)
	}
}
