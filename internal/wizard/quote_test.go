package wizard

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestQuoteConversionRoundTrip(t *testing.T) {
	q := DefaultQuote()

	amounts := []float64{0.01, 1, 42.5, 250, 999.99, 100000}
	for _, amount := range amounts {
		converted := q.Converted(amount)
		if !almostEqual(converted, amount*q.Rate) {
			t.Errorf("Converted(%v) = %v, want %v", amount, converted, amount*q.Rate)
		}
		back := q.BackSolve(converted)
		if !almostEqual(back, amount) {
			t.Errorf("BackSolve(Converted(%v)) = %v, want %v", amount, back, amount)
		}
	}
}

func TestQuoteFee(t *testing.T) {
	q := DefaultQuote()

	tests := []struct {
		amount float64
		want   float64
	}{
		{0, 1.99},     // minimum applies at the boundary
		{1, 1.99},     // below the proportional threshold
		{199, 1.99},   // exactly at the crossover
		{250, 2.5},    // proportional fee wins
		{1000, 10},
	}
	for _, tt := range tests {
		if got := q.Fee(tt.amount); !almostEqual(got, tt.want) {
			t.Errorf("Fee(%v) = %v, want %v", tt.amount, got, tt.want)
		}
	}
}

func TestQuoteWorkedExample(t *testing.T) {
	q := DefaultQuote()
	const amount = 250.0

	if got := q.Converted(amount); !almostEqual(got, 20725.0) {
		t.Errorf("Converted(250) = %v, want 20725.0", got)
	}
	if got := q.Fee(amount); !almostEqual(got, 2.5) {
		t.Errorf("Fee(250) = %v, want 2.5", got)
	}
	// 20725 - 2.5*82.9 = 20517.75
	if got := q.Net(amount); !almostEqual(got, 20517.75) {
		t.Errorf("Net(250) = %v, want 20517.75", got)
	}
}

func TestQuoteNetNeverNegative(t *testing.T) {
	q := DefaultQuote()
	for _, amount := range []float64{0, 0.01, 0.5, 1} {
		if got := q.Net(amount); got < 0 {
			t.Errorf("Net(%v) = %v, want >= 0", amount, got)
		}
	}
}

func TestQuoteZeroRateBackSolve(t *testing.T) {
	q := Quote{Rate: 0}
	if got := q.BackSolve(100); got != 0 {
		t.Errorf("BackSolve with zero rate = %v, want 0", got)
	}
}
