package corrosion

import (
	"errors"
	"math"
	"strings"
	"testing"

	"MMECalc/internal/calc"
)

func assertClose(t *testing.T, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("expected %v (±%v), got %v", want, tol, got)
	}
}

func assertDomainError(t *testing.T, err error) {
	t.Helper()
	if !errors.Is(err, calc.ErrDomain) {
		t.Fatalf("expected a domain error, got %v", err)
	}
}

func TestCorrosionRate(t *testing.T) {
	mpy, err := RateMPY(0.5, 7.87, 10, 720)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertClose(t, mpy, 3.45e6*0.5/(10*720*7.87), 1e-9)

	mmpy, err := RateMMPY(0.5, 7.87, 10, 720)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertClose(t, mmpy, 8.76e4*0.5/(10*720*7.87), 1e-9)

	t.Run("mpy and mm/y differ by the constant ratio", func(t *testing.T) {
		assertClose(t, mpy/mmpy, 3.45e6/8.76e4, 1e-9)
	})

	t.Run("guards", func(t *testing.T) {
		for _, in := range [][4]float64{{0.5, 0, 10, 720}, {0.5, 7.87, 0, 720}, {0.5, 7.87, 10, 0}} {
			_, err := RateMPY(in[0], in[1], in[2], in[3])
			assertDomainError(t, err)
			_, err = RateMMPY(in[0], in[1], in[2], in[3])
			assertDomainError(t, err)
		}
	})
}

func TestPillingBedworth(t *testing.T) {
	pbr, err := PillingBedworth(101.96, 2.7, 2, 26.98, 3.95)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertClose(t, pbr, 1.28, 0.1)
	if ClassifyOxide(pbr) != OxideProtective {
		t.Errorf("expected alumina to be protective, got %s", ClassifyOxide(pbr))
	}

	if ClassifyOxide(0.8) != OxidePorous {
		t.Error("expected PBR 0.8 to be porous")
	}
	if ClassifyOxide(2.1) != OxideSpalling {
		t.Error("expected PBR 2.1 to spall")
	}

	_, err = PillingBedworth(101.96, 2.7, 0, 26.98, 3.95)
	assertDomainError(t, err)
}

func TestGalvanicPotentialDiff(t *testing.T) {
	t.Run("zinc is anodic to copper", func(t *testing.T) {
		got, err := GalvanicPotentialDiff("zinc", "copper")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Anode != "zinc" || got.Cathode != "copper" {
			t.Errorf("expected zinc/copper, got %s/%s", got.Anode, got.Cathode)
		}
		assertClose(t, got.Difference, 0.83, 1e-9)
	})

	t.Run("order of arguments does not change the anode", func(t *testing.T) {
		got, err := GalvanicPotentialDiff("copper", "zinc")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Anode != "zinc" {
			t.Errorf("expected zinc as anode, got %s", got.Anode)
		}
	})

	t.Run("names are canonicalized but echoed as given", func(t *testing.T) {
		got, err := GalvanicPotentialDiff("Mild Steel", "STAINLESS 316")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Anode != "Mild Steel" {
			t.Errorf("expected anode 'Mild Steel', got %q", got.Anode)
		}
	})

	t.Run("equal potentials report the second metal as anode", func(t *testing.T) {
		got, err := GalvanicPotentialDiff("titanium", "stainless_316")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Difference != 0 || got.Anode != "stainless_316" {
			t.Errorf("unexpected tie result %+v", got)
		}
	})

	t.Run("unknown metal lists the vocabulary", func(t *testing.T) {
		_, err := GalvanicPotentialDiff("unobtainium", "zinc")
		var unknown *UnknownMetalError
		if !errors.As(err, &unknown) {
			t.Fatalf("expected UnknownMetalError, got %v", err)
		}
		if unknown.Name != "unobtainium" {
			t.Errorf("expected offending name, got %q", unknown.Name)
		}
		if len(unknown.Available) != len(AvailableMetals()) {
			t.Errorf("expected %d metals listed, got %d", len(AvailableMetals()), len(unknown.Available))
		}
		if !strings.Contains(err.Error(), "platinum") {
			t.Errorf("expected message to list metals, got %q", err.Error())
		}
		assertDomainError(t, err)

		_, err = GalvanicPotentialDiff("zinc", "kryptonite")
		if !errors.As(err, &unknown) || unknown.Name != "kryptonite" {
			t.Fatalf("expected second name reported, got %v", err)
		}
	})
}

func TestAvailableMetals(t *testing.T) {
	metals := AvailableMetals()
	if len(metals) != 14 {
		t.Fatalf("expected 14 metals, got %d", len(metals))
	}
	if metals[0] != "magnesium" || metals[len(metals)-1] != "platinum" {
		t.Errorf("expected table order, got %v", metals)
	}
	metals[0] = "changed"
	if AvailableMetals()[0] != "magnesium" {
		t.Error("expected a fresh slice on every call")
	}
}

func TestParabolicOxideThickness(t *testing.T) {
	got, err := ParabolicOxideThickness(4e-12, 3600)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertClose(t, got, math.Sqrt(4e-12*3600), 1e-18)

	zero, err := ParabolicOxideThickness(0, 0)
	if err != nil || zero != 0 {
		t.Errorf("expected zero thickness, got %v %v", zero, err)
	}

	_, err = ParabolicOxideThickness(-1, 10)
	assertDomainError(t, err)
	_, err = ParabolicOxideThickness(1, -10)
	assertDomainError(t, err)
}
