package qc

import (
	"math"
	"testing"
)

func TestLogGammaHalf(t *testing.T) {
	got := LogGamma(0.5)
	want := 0.5723649429247
	if math.Abs(got-want) > 1e-10 {
		t.Errorf("LogGamma(0.5) = %v, want %v", got, want)
	}
}

func TestBinomialCDFKnownValue(t *testing.T) {
	got := BinomialCDF(20, 0.4, 9)
	want := 0.755337203316395
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("BinomialCDF(20, 0.4, 9) = %v, want %v", got, want)
	}
}

func TestBinomialCDFBoundaries(t *testing.T) {
	if got := BinomialCDF(10, 0.5, -1); got != 0.0 {
		t.Errorf("BinomialCDF with x<0 = %v, want 0", got)
	}
	if got := BinomialCDF(10, 0.5, 10); got != 1.0 {
		t.Errorf("BinomialCDF with x>=n = %v, want 1", got)
	}
	if got := BinomialCDF(10, 0.5, 15); got != 1.0 {
		t.Errorf("BinomialCDF with x>n = %v, want 1", got)
	}
}

func TestContinuedFractionSimple(t *testing.T) {
	one := func(n int, x float64) float64 { return 1.0 }
	got := continuedFraction(0.0, 1e-10, 10000, one, one)
	want := 1.6180339887802426
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("continuedFraction = %v, want %v", got, want)
	}
}
