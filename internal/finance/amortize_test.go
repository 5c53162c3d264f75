package finance

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestMonthlyPayment(t *testing.T) {
	// 200k at 6% over 30 years is the textbook case.
	got := MonthlyPayment(200000, 0.06, 30)
	if !almostEqual(got, 1199.10, 0.01) {
		t.Errorf("Expected payment ~1199.10, got %f", got)
	}
}

func TestMonthlyPayment_ZeroRate(t *testing.T) {
	// A zero rate is a degenerate input, not a free loan: no payment.
	if got := MonthlyPayment(120000, 0, 10); got != 0 {
		t.Errorf("Expected payment 0 for a zero rate, got %f", got)
	}
	if got := AnnualDebtService(120000, 0, 10); got != 0 {
		t.Errorf("Expected zero debt service for a zero rate, got %f", got)
	}
}

func TestRemainingBalance(t *testing.T) {
	principal := 200000.0

	t.Run("before first payment", func(t *testing.T) {
		got := RemainingBalance(principal, 0.06, 30, 0)
		if !almostEqual(got, principal, 0.01) {
			t.Errorf("Expected full principal, got %f", got)
		}
	})

	t.Run("after full term", func(t *testing.T) {
		got := RemainingBalance(principal, 0.06, 30, 360)
		if !almostEqual(got, 0, 0.01) {
			t.Errorf("Expected zero balance, got %f", got)
		}
	})

	t.Run("monotonically decreasing", func(t *testing.T) {
		prev := principal
		for _, paid := range []int{12, 60, 120, 240, 359} {
			bal := RemainingBalance(principal, 0.06, 30, paid)
			if bal >= prev {
				t.Errorf("Balance after %d payments (%f) not below previous (%f)", paid, bal, prev)
			}
			if bal < 0 {
				t.Errorf("Balance after %d payments is negative: %f", paid, bal)
			}
			prev = bal
		}
	})

	t.Run("zero rate holds the principal until term end", func(t *testing.T) {
		if got := RemainingBalance(120000, 0, 10, 60); got != 120000 {
			t.Errorf("Expected the full principal at half term, got %f", got)
		}
		if got := RemainingBalance(120000, 0, 10, 120); got != 0 {
			t.Errorf("Expected 0 after the full term, got %f", got)
		}
	})
}

func TestAnnualDebtService(t *testing.T) {
	monthly := MonthlyPayment(375000, 0.06, 30)
	got := AnnualDebtService(375000, 0.06, 30)
	if !almostEqual(got, monthly*12, 1e-9) {
		t.Errorf("Expected 12x the monthly payment, got %f", got)
	}
}
