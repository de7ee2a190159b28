package maths

import (
	"math"
	"testing"
)

func TestBrentSqrt2(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }
	x, err := Brent(f, 0, 2, 1e-12, 100)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(x-math.Sqrt2) > 1e-9 {
		t.Errorf("根偏差: %v", x)
	}
}

func TestBrentTranscendental(t *testing.T) {
	f := func(x float64) float64 { return math.Cos(x) - x }
	x, err := Brent(f, 0, 1, 1e-12, 100)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(f(x)) > 1e-9 {
		t.Errorf("残差过大: f(%v)=%v", x, f(x))
	}
}

func TestBrentNoBracket(t *testing.T) {
	f := func(x float64) float64 { return x*x + 1 }
	if _, err := Brent(f, -1, 1, 1e-10, 100); err != ErrNoBracket {
		t.Errorf("期望 ErrNoBracket，得到 %v", err)
	}
}

func TestBrentEndpointRoot(t *testing.T) {
	f := func(x float64) float64 { return x }
	x, err := Brent(f, 0, 1, 1e-10, 100)
	if err != nil || x != 0 {
		t.Errorf("端点根: x=%v err=%v", x, err)
	}
}
