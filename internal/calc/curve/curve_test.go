package curve

import (
	"errors"
	"math"
	"testing"

	"MMECalc/internal/calc"
)

func TestStressStrain(t *testing.T) {
	s, err := StressStrain(200000, 250, 400, 0.2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Points) != elasticSamples+plasticSamples-1+neckingSamples-1 {
		t.Errorf("unexpected point count %d", len(s.Points))
	}

	first, last := s.Points[0], s.Points[len(s.Points)-1]
	if first.X != 0 || first.Y != 0 {
		t.Errorf("expected curve to start at the origin, got %+v", first)
	}
	if last.X != 0.2 || math.Abs(last.Y-340) > 1e-9 {
		t.Errorf("expected fracture at (0.2, 340), got %+v", last)
	}

	uts := s.Marks["uts"]
	if uts.Y != 400 {
		t.Errorf("expected UTS mark at 400, got %v", uts.Y)
	}
	for _, p := range s.Points {
		if p.Y > 400+1e-6 {
			t.Fatalf("stress %v exceeds UTS at strain %v", p.Y, p.X)
		}
	}

	for i := 1; i < len(s.Points); i++ {
		if s.Points[i].X < s.Points[i-1].X {
			t.Fatalf("strain not increasing at index %d", i)
		}
	}
}

func TestStressStrainPerfectlyPlastic(t *testing.T) {
	s, err := StressStrain(200000, 250, 250, 0.2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Marks["uts"].Y != 250 {
		t.Errorf("expected UTS mark at yield, got %v", s.Marks["uts"].Y)
	}
}

func TestStressStrainErrors(t *testing.T) {
	cases := [][4]float64{
		{0, 250, 400, 0.2},
		{200000, 0, 400, 0.2},
		{200000, 250, 400, 0.001},
	}
	for _, c := range cases {
		_, err := StressStrain(c[0], c[1], c[2], c[3])
		if !errors.Is(err, calc.ErrDomain) {
			t.Errorf("%v: expected domain error, got %v", c, err)
		}
	}
}

func TestCooling(t *testing.T) {
	s, err := Cooling(1000, 25, 0.05, 100, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Points) != DefaultCoolingSamples {
		t.Fatalf("expected %d samples, got %d", DefaultCoolingSamples, len(s.Points))
	}
	if s.Points[0].Y != 1000 {
		t.Errorf("expected initial temperature 1000, got %v", s.Points[0].Y)
	}
	want := 25 + 975*math.Exp(-5)
	if math.Abs(s.Points[len(s.Points)-1].Y-want) > 1e-9 {
		t.Errorf("expected final temperature %v, got %v", want, s.Points[len(s.Points)-1].Y)
	}
	for i := 1; i < len(s.Points); i++ {
		if s.Points[i].Y > s.Points[i-1].Y {
			t.Fatalf("temperature rose at sample %d", i)
		}
	}

	_, err = Cooling(1000, 25, 0.05, 0, 10)
	if !errors.Is(err, calc.ErrDomain) {
		t.Errorf("expected domain error, got %v", err)
	}
}

func TestCoolingSampleLimit(t *testing.T) {
	s, err := Cooling(900, 25, 0.01, 600, MaxCoolingSamples)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Points) != MaxCoolingSamples {
		t.Errorf("expected %d samples, got %d", MaxCoolingSamples, len(s.Points))
	}

	for _, n := range []int{MaxCoolingSamples + 1, 1 << 30} {
		_, err := Cooling(900, 25, 0.01, 600, n)
		var de *calc.DomainError
		if !errors.As(err, &de) || de.Param != "samples" {
			t.Errorf("samples=%d: expected samples domain error, got %v", n, err)
		}
	}
}

func TestHardnessChart(t *testing.T) {
	s := HardnessChart()
	if len(s.Points) != 46 {
		t.Fatalf("expected 46 points, got %d", len(s.Points))
	}
	if s.Points[0].X != 20 || s.Points[45].X != 65 {
		t.Errorf("unexpected HRC span %v..%v", s.Points[0].X, s.Points[45].X)
	}
	if math.Abs(s.Marks["hrc40"].Y-435) > 1e-9 {
		t.Errorf("expected HB(40) = 435, got %v", s.Marks["hrc40"].Y)
	}
}
