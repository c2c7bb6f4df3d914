package composite

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

func TestRuleOfMixtures(t *testing.T) {
	t.Run("longitudinal", func(t *testing.T) {
		got, err := LongitudinalModulus(230, 0.6, 3.5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertClose(t, got, 230*0.6+3.5*0.4, 1e-9)
	})

	t.Run("pure phases at the boundaries", func(t *testing.T) {
		m, _ := LongitudinalModulus(230, 0, 3.5)
		assertClose(t, m, 3.5, 0)
		f, _ := LongitudinalModulus(230, 1, 3.5)
		assertClose(t, f, 230, 0)

		tm, _ := TransverseModulus(230, 0, 3.5)
		assertClose(t, tm, 3.5, 1e-12)
		tf, _ := TransverseModulus(230, 1, 3.5)
		assertClose(t, tf, 230, 1e-12)
	})

	t.Run("transverse never exceeds longitudinal", func(t *testing.T) {
		for vf := 0.0; vf <= 1.0; vf += 0.1 {
			l, _ := LongitudinalModulus(230, vf, 3.5)
			tr, _ := TransverseModulus(230, vf, 3.5)
			if tr > l+1e-9 {
				t.Fatalf("vf=%v: transverse %v > longitudinal %v", vf, tr, l)
			}
		}
	})

	t.Run("fraction out of range fails", func(t *testing.T) {
		for _, vf := range []float64{-0.1, 1.1} {
			_, err := LongitudinalModulus(230, vf, 3.5)
			assertDomainError(t, err)
			_, err = TransverseModulus(230, vf, 3.5)
			assertDomainError(t, err)
			_, err = Density(1.8, vf, 1.2)
			assertDomainError(t, err)
			_, err = HalpinTsai(3.5, 230, vf, DefaultXi)
			assertDomainError(t, err)
		}
	})

	t.Run("transverse rejects non-positive moduli", func(t *testing.T) {
		_, err := TransverseModulus(0, 0.5, 3.5)
		assertDomainError(t, err)
		_, err = TransverseModulus(230, 0.5, -1)
		assertDomainError(t, err)
	})
}

func TestDensity(t *testing.T) {
	got, err := Density(1.8, 0.6, 1.2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertClose(t, got, 1.56, 1e-12)
}

func TestCriticalFiberLength(t *testing.T) {
	got, err := CriticalFiberLength(3500, 0.007, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertClose(t, got, 0.245, 1e-12)

	_, err = CriticalFiberLength(3500, 0, 50)
	assertDomainError(t, err)
	_, err = CriticalFiberLength(3500, 0.007, 0)
	assertDomainError(t, err)
}

func TestHalpinTsai(t *testing.T) {
	t.Run("equal moduli give the matrix modulus", func(t *testing.T) {
		got, err := HalpinTsai(70, 70, 0.4, DefaultXi)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertClose(t, got, 70, 1e-12)
	})

	t.Run("bounded by the Reuss and Voigt estimates", func(t *testing.T) {
		ht, err := HalpinTsai(3.5, 230, 0.6, DefaultXi)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		lo, _ := TransverseModulus(230, 0.6, 3.5)
		hi, _ := LongitudinalModulus(230, 0.6, 3.5)
		if ht < lo || ht > hi {
			t.Errorf("expected %v in [%v, %v]", ht, lo, hi)
		}
	})

	t.Run("zero fiber fraction gives the matrix", func(t *testing.T) {
		got, _ := HalpinTsai(3.5, 230, 0, DefaultXi)
		assertClose(t, got, 3.5, 1e-12)
	})

	t.Run("non-positive moduli fail", func(t *testing.T) {
		_, err := HalpinTsai(0, 230, 0.5, DefaultXi)
		assertDomainError(t, err)
	})
}
