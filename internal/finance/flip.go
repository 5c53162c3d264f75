package finance

import "math"

// FlipEvaluator models a fix-and-flip deal: acquire, rehab, carry, sell at the
// after-repair value.
//
// Recognized assumption keys:
//
//	purchase_price, rehab_cost, closing_costs_pct, after_repair_value,
//	hold_months (default 6), selling_costs_pct, loan_to_cost,
//	interest_rate (interest-only carry on the loan), monthly_holding_costs
//
// cash_on_cash reports total profit over cash invested; irr reports the
// annualized monthly IRR over the hold. NOI-based metrics do not apply to
// flips and evaluate to 0.
type FlipEvaluator struct {
	Metric MetricType
}

func (e *FlipEvaluator) Evaluate(a Assumptions) MetricResult {
	price := a.Get("purchase_price")
	rehab := a.Get("rehab_cost")
	arv := a.Get("after_repair_value")
	holdMonths := int(a.GetOr("hold_months", 6))
	if holdMonths < 1 {
		holdMonths = 1
	}

	totalCost := price + rehab + price*a.Get("closing_costs_pct")
	loan := (price + rehab) * a.Get("loan_to_cost")
	cashIn := totalCost - loan

	carry := loan*a.Get("interest_rate")*float64(holdMonths)/12 +
		a.Get("monthly_holding_costs")*float64(holdMonths)

	netSale := arv * (1 - a.Get("selling_costs_pct"))
	profit := netSale - totalCost - carry

	res := MetricResult{
		CashFlow:  profit,
		ExitValue: netSale,
		// 70% rule: maximum allowable offer given the ARV and rehab budget.
		MAO: arv*0.70 - rehab,
	}

	// Monthly-resolution series: equity out, carry spread over the hold,
	// net sale less loan payoff at exit.
	monthlyCarry := carry / float64(holdMonths)
	cfs := make([]float64, holdMonths+1)
	cfs[0] = -cashIn
	for t := 1; t <= holdMonths; t++ {
		cfs[t] = -monthlyCarry
	}
	cfs[holdMonths] += netSale - loan

	monthly := IRR(cfs)
	if monthly != 0 {
		res.IRR = math.Pow(1+monthly, 12) - 1
	}

	switch e.Metric {
	case MetricIRR:
		res.Metric = res.IRR
	case MetricCapRate, MetricDSCR:
		res.Metric = 0
	default: // cash on cash (total ROI on cash in)
		if cashIn != 0 {
			res.Metric = profit / cashIn
		}
	}

	return res
}
