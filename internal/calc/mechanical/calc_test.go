package mechanical

import (
	"errors"
	"math"
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
	if err == nil {
		t.Fatal("expected a domain error, got nil")
	}
	if !errors.Is(err, calc.ErrDomain) {
		t.Fatalf("expected error to match calc.ErrDomain, got %v", err)
	}
}

func TestHardnessToTensile(t *testing.T) {
	t.Run("brinell", func(t *testing.T) {
		got, err := BrinellToTensile(200)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertClose(t, got, 690.0, 1e-9)

		got, _ = BrinellToTensile(100)
		assertClose(t, got, 345.0, 1e-9)
	})

	t.Run("brinell is linear for any positive hardness", func(t *testing.T) {
		for _, hb := range []float64{0.001, 1, 57.3, 450, 1e6} {
			got, err := BrinellToTensile(hb)
			if err != nil {
				t.Fatalf("hb=%v: %v", hb, err)
			}
			assertClose(t, got, 3.45*hb, 1e-9*hb)
		}
	})

	t.Run("vickers", func(t *testing.T) {
		got, err := VickersToTensile(200)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertClose(t, got, 636.0, 1e-9)
	})

	t.Run("non-positive hardness fails", func(t *testing.T) {
		_, err := BrinellToTensile(-10)
		assertDomainError(t, err)
		_, err = BrinellToTensile(0)
		assertDomainError(t, err)
		_, err = VickersToTensile(0)
		assertDomainError(t, err)
	})
}

func TestHardnessConversion(t *testing.T) {
	t.Run("HRC 30 lands on the table knot", func(t *testing.T) {
		hb, err := HRCToHB(30)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if hb <= 280 || hb >= 295 {
			t.Errorf("expected HB in (280, 295), got %v", hb)
		}
		hrc, err := HBToHRC(hb)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertClose(t, hrc, 30, 0.5)
	})

	t.Run("interpolates between knots", func(t *testing.T) {
		hb, _ := HRCToHB(20.5)
		assertClose(t, hb, 228.5, 1e-9)
		hrc, _ := HBToHRC(228.5)
		assertClose(t, hrc, 20.5, 1e-9)
	})

	t.Run("range boundaries are inclusive", func(t *testing.T) {
		hb, err := HRCToHB(55)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertClose(t, hb, 545, 0)
		hrc, err := HBToHRC(226)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertClose(t, hrc, 20, 0)
	})

	t.Run("round trip stays within half a point", func(t *testing.T) {
		for hrc := 20.0; hrc <= 55.0; hrc += 0.25 {
			hb, err := HRCToHB(hrc)
			if err != nil {
				t.Fatalf("hrc=%v: %v", hrc, err)
			}
			back, err := HBToHRC(hb)
			if err != nil {
				t.Fatalf("hb=%v: %v", hb, err)
			}
			assertClose(t, back, hrc, 0.5)
		}
	})

	t.Run("out of range fails", func(t *testing.T) {
		for _, hrc := range []float64{10, 19.99, 55.01, 60} {
			_, err := HRCToHB(hrc)
			assertDomainError(t, err)
		}
		for _, hb := range []float64{100, 225.9, 545.1} {
			_, err := HBToHRC(hb)
			assertDomainError(t, err)
		}
	})

	t.Run("table is strictly increasing", func(t *testing.T) {
		table := HardnessTable()
		for i := 1; i < len(table); i++ {
			if table[i].HRC <= table[i-1].HRC || table[i].HB <= table[i-1].HB {
				t.Fatalf("table not monotonic at index %d", i)
			}
		}
		table[0].HB = -1
		if HardnessTable()[0].HB != 226 {
			t.Error("expected HardnessTable to return a copy")
		}
	})
}

func TestTensileTest(t *testing.T) {
	tests := []struct {
		name string
		fn   func() (float64, error)
		want float64
	}{
		{"yield strength", func() (float64, error) { return YieldStrength(50000, 100) }, 500},
		{"percent elongation", func() (float64, error) { return PercentElongation(50, 60) }, 20},
		{"percent reduction of area", func() (float64, error) { return PercentReductionArea(100, 80) }, 20},
		{"true strain", func() (float64, error) { return TrueStrain(0.1) }, math.Log(1.1)},
		{"modulus of resilience", func() (float64, error) { return ModulusOfResilience(250, 200000) }, 0.15625},
		{"charpy toughness", func() (float64, error) { return CharpyToughness(30, 80) }, 0.375},
		{"basquin stress amplitude", func() (float64, error) { return BasquinStressAmplitude(900, 1e6, -0.1) }, 900 * math.Pow(2e6, -0.1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assertClose(t, got, tt.want, 1e-9)
		})
	}

	t.Run("true stress", func(t *testing.T) {
		assertClose(t, TrueStress(200, 0.1), 220, 1e-9)
	})
}

func TestBasquinFatigueLife(t *testing.T) {
	n, err := BasquinFatigueLife(300, 900, -0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n <= 0 {
		t.Fatalf("expected positive cycle count, got %v", n)
	}

	back, err := BasquinStressAmplitude(900, n, -0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertClose(t, back, 300, 1e-6)

	t.Run("rejects non-negative exponent", func(t *testing.T) {
		_, err := BasquinFatigueLife(300, 900, 0)
		assertDomainError(t, err)
		_, err = BasquinFatigueLife(300, 900, 0.1)
		assertDomainError(t, err)
	})

	t.Run("rejects non-positive stresses", func(t *testing.T) {
		_, err := BasquinFatigueLife(0, 900, -0.1)
		assertDomainError(t, err)
		_, err = BasquinFatigueLife(300, -1, -0.1)
		assertDomainError(t, err)
	})
}

func TestMechanicalDomainErrors(t *testing.T) {
	tests := []struct {
		name string
		fn   func() (float64, error)
	}{
		{"yield strength zero area", func() (float64, error) { return YieldStrength(100, 0) }},
		{"elongation zero gauge length", func() (float64, error) { return PercentElongation(0, 10) }},
		{"reduction zero area", func() (float64, error) { return PercentReductionArea(-1, 10) }},
		{"true strain at -1", func() (float64, error) { return TrueStrain(-1) }},
		{"true strain below -1", func() (float64, error) { return TrueStrain(-1.5) }},
		{"resilience zero modulus", func() (float64, error) { return ModulusOfResilience(250, 0) }},
		{"basquin zero cycles", func() (float64, error) { return BasquinStressAmplitude(900, 0, -0.1) }},
		{"charpy zero area", func() (float64, error) { return CharpyToughness(30, 0) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.fn()
			assertDomainError(t, err)
		})
	}
}
