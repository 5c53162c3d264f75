package finance

import "math"

// RentalEvaluator models buy-and-hold income property (multifamily,
// single-family and commercial deals share the same cash-flow mechanics).
//
// Recognized assumption keys:
//
//	purchase_price, closing_costs_pct, down_payment_pct (default 0.25),
//	interest_rate, loan_term_years (default 30), initial_repairs,
//	gross_rent_monthly, other_income_monthly, vacancy_rate, occupancy,
//	operating_expense_ratio, fixed_expenses_annual,
//	noi (direct year-1 NOI, overrides the income/expense build-up),
//	annual_rent_growth, annual_expense_growth,
//	hold_years (default 5), exit_cap_rate, selling_costs_pct,
//	projection_years (default 30, payback horizon only)
//
// When "occupancy" is present it overrides 1 - vacancy_rate. A directly
// supplied "noi" is treated as the stabilized figure and scales
// proportionally with occupancy so that occupancy perturbations still move
// the metric.
type RentalEvaluator struct {
	Metric MetricType
}

// model holds the intermediate deal figures shared by Evaluate and the
// cash-flow projection.
type rentalModel struct {
	price      float64
	loan       float64
	cashIn     float64
	rate       float64
	term       float64
	noi        float64 // year 1
	egi        float64 // 0 when NOI was supplied directly
	opex       float64
	direct     bool
	rentGrowth float64
	expGrowth  float64
	holdYears  int
	exitCap    float64
	sellingPct float64
	ds         float64 // annual debt service
}

func (e *RentalEvaluator) build(a Assumptions) rentalModel {
	m := rentalModel{
		price:      a.Get("purchase_price"),
		rate:       a.Get("interest_rate"),
		term:       a.GetOr("loan_term_years", 30),
		rentGrowth: a.Get("annual_rent_growth"),
		expGrowth:  a.Get("annual_expense_growth"),
		holdYears:  int(a.GetOr("hold_years", 5)),
		exitCap:    a.Get("exit_cap_rate"),
		sellingPct: a.Get("selling_costs_pct"),
	}
	if m.holdYears < 1 {
		m.holdYears = 1
	}

	downPct := a.GetOr("down_payment_pct", 0.25)
	m.loan = m.price * (1 - downPct)
	m.cashIn = m.price*downPct + m.price*a.Get("closing_costs_pct") + a.Get("initial_repairs")
	m.ds = AnnualDebtService(m.loan, m.rate, m.term)

	occupancy := a.GetOr("occupancy", 1-a.Get("vacancy_rate"))

	if direct, ok := a["noi"]; ok && direct != 0 {
		m.direct = true
		m.noi = direct * occupancy
		return m
	}

	gross := (a.Get("gross_rent_monthly") + a.Get("other_income_monthly")) * 12
	m.egi = gross * occupancy
	m.opex = m.egi*a.Get("operating_expense_ratio") + a.Get("fixed_expenses_annual")
	m.noi = m.egi - m.opex
	return m
}

// noiForYear projects year-1 NOI forward. Income and expenses grow at their
// own rates; a directly supplied NOI grows at the rent growth rate.
func (m *rentalModel) noiForYear(year int) float64 {
	growth := float64(year - 1)
	if m.direct {
		return m.noi * math.Pow(1+m.rentGrowth, growth)
	}
	egi := m.egi * math.Pow(1+m.rentGrowth, growth)
	opex := m.opex * math.Pow(1+m.expGrowth, growth)
	return egi - opex
}

func (m *rentalModel) exitValue() float64 {
	if m.exitCap == 0 {
		return 0
	}
	return m.noiForYear(m.holdYears+1) / m.exitCap
}

// saleProceeds is the net cash from disposition at the end of the hold.
func (m *rentalModel) saleProceeds() float64 {
	balance := RemainingBalance(m.loan, m.rate, m.term, m.holdYears*12)
	return m.exitValue()*(1-m.sellingPct) - balance
}

func (e *RentalEvaluator) Evaluate(a Assumptions) MetricResult {
	m := e.build(a)

	cashFlow := m.noi - m.ds

	res := MetricResult{
		NOI:         m.noi,
		DebtService: m.ds,
		CashFlow:    cashFlow,
		ExitValue:   m.exitValue(),
	}
	if m.ds != 0 {
		res.DSCR = m.noi / m.ds
	}

	cfs := make([]float64, m.holdYears+1)
	cfs[0] = -m.cashIn
	for y := 1; y <= m.holdYears; y++ {
		cfs[y] = m.noiForYear(y) - m.ds
	}
	cfs[m.holdYears] += m.saleProceeds()
	res.IRR = IRR(cfs)

	switch e.Metric {
	case MetricCapRate:
		if m.price != 0 {
			res.Metric = m.noi / m.price
		}
	case MetricDSCR:
		res.Metric = res.DSCR
	case MetricIRR:
		res.Metric = res.IRR
	default: // cash on cash
		if m.cashIn != 0 {
			res.Metric = cashFlow / m.cashIn
		}
	}

	return res
}

// ProjectCashFlows returns the operating cash-flow series (initial equity
// outflow at index 0, no sale proceeds) over the payback projection horizon.
func (e *RentalEvaluator) ProjectCashFlows(a Assumptions) []float64 {
	m := e.build(a)

	horizon := int(a.GetOr("projection_years", 30))
	if horizon < m.holdYears {
		horizon = m.holdYears
	}

	cfs := make([]float64, horizon+1)
	cfs[0] = -m.cashIn
	for y := 1; y <= horizon; y++ {
		cfs[y] = m.noiForYear(y) - m.ds
	}
	return cfs
}
