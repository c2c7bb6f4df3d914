package casting

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
	if !errors.Is(err, calc.ErrDomain) {
		t.Fatalf("expected a domain error, got %v", err)
	}
}

func TestChvorinovTime(t *testing.T) {
	got, err := ChvorinovTime(2, 1000, 600, DefaultChvorinovExponent)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertClose(t, got, 2*math.Pow(1000.0/600, 2), 1e-12)

	t.Run("larger modulus solidifies slower", func(t *testing.T) {
		small, _ := ChvorinovTime(2, 1000, 600, 2)
		large, _ := ChvorinovTime(2, 2000, 600, 2)
		if large <= small {
			t.Errorf("expected %v > %v", large, small)
		}
	})

	for _, in := range [][3]float64{{2, 0, 600}, {2, 1000, 0}, {0, 1000, 600}} {
		_, err := ChvorinovTime(in[0], in[1], in[2], 2)
		assertDomainError(t, err)
	}
}

func TestModulusAndShrinkage(t *testing.T) {
	m, err := Modulus(1000, 600)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertClose(t, m, 1000.0/600, 1e-12)
	_, err = Modulus(1000, 0)
	assertDomainError(t, err)

	l, err := ShrinkageAllowance(500, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertClose(t, l, 510, 1e-9)
	_, err = ShrinkageAllowance(0, 2)
	assertDomainError(t, err)
}

func TestTypicalShrinkage(t *testing.T) {
	tests := []struct {
		alloy string
		want  float64
	}{
		{"steel", 2.0},
		{"Cast Iron", 1.0},
		{"aluminium", 1.3},
		{" bronze ", 1.5},
	}
	for _, tt := range tests {
		got, ok := TypicalShrinkage(tt.alloy)
		if !ok || got != tt.want {
			t.Errorf("TypicalShrinkage(%q) = %v, %v; want %v", tt.alloy, got, ok, tt.want)
		}
	}
	if _, ok := TypicalShrinkage("magnesium"); ok {
		t.Error("expected unknown alloy to be reported")
	}
}

func TestFluidityIndex(t *testing.T) {
	got, err := FluidityIndex(7000, 750, 100, 270000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertClose(t, got, 7000*750*100/270000.0, 1e-9)
	_, err = FluidityIndex(7000, 750, 100, 0)
	assertDomainError(t, err)
}

func TestNewtonianCoolingRate(t *testing.T) {
	got, err := NewtonianCoolingRate(10, 0.06, 7800, 500, 0.001, 1500, 25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got >= 0 {
		t.Errorf("expected a negative rate above ambient, got %v", got)
	}
	assertClose(t, got, -(10*0.06)/(7800*500*0.001)*1475, 1e-12)

	heating, _ := NewtonianCoolingRate(10, 0.06, 7800, 500, 0.001, 20, 25)
	if heating <= 0 {
		t.Errorf("expected a positive rate below ambient, got %v", heating)
	}

	for _, in := range [][3]float64{{0, 500, 0.001}, {7800, 0, 0.001}, {7800, 500, 0}} {
		_, err := NewtonianCoolingRate(10, 0.06, in[0], in[1], in[2], 1500, 25)
		assertDomainError(t, err)
	}
}
