package finance

import "math"

// MonthlyPayment computes the level monthly payment for a fully amortizing loan
// using the standard annuity formula.
func MonthlyPayment(principal, annualRate float64, termYears float64) float64 {
	if principal == 0 || annualRate == 0 || termYears <= 0 {
		return 0
	}

	monthlyRate := annualRate / 12.0
	payments := float64(totalPayments(termYears))

	factor := math.Pow(1+monthlyRate, payments)
	return principal * monthlyRate * factor / (factor - 1)
}

// RemainingBalance returns the outstanding principal after paymentsMade monthly
// payments. The balance is clamped at 0 and is exactly 0 once the full term has
// been paid.
func RemainingBalance(principal, annualRate, termYears float64, paymentsMade int) float64 {
	if principal == 0 || termYears <= 0 {
		return 0
	}
	if paymentsMade <= 0 {
		return principal
	}

	total := totalPayments(termYears)
	if paymentsMade >= total {
		return 0
	}

	if annualRate == 0 {
		// Degenerate rate carries no payment, so nothing amortizes until
		// the term-end clamp above.
		return principal
	}

	monthlyRate := annualRate / 12.0
	payment := MonthlyPayment(principal, annualRate, termYears)

	grown := principal * math.Pow(1+monthlyRate, float64(paymentsMade))
	paid := payment * (math.Pow(1+monthlyRate, float64(paymentsMade)) - 1) / monthlyRate

	return math.Max(grown-paid, 0)
}

// AnnualDebtService is the yearly sum of monthly payments.
func AnnualDebtService(principal, annualRate, termYears float64) float64 {
	return MonthlyPayment(principal, annualRate, termYears) * 12
}

func totalPayments(termYears float64) int {
	return int(math.Round(termYears * 12))
}
