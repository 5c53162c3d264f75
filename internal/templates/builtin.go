package templates

import (
	"dealrisk-mcp/internal/analysis"
	"dealrisk-mcp/internal/finance"
)

// builtinTemplates are the stock variable models shipped with the server.
// Ranges reflect typical underwriting spreads; a deployment narrows or widens
// them via YAML overrides.
func builtinTemplates() []Template {
	return []Template{
		{
			PropertyType: "multifamily",
			Label:        "Multifamily (5+ units)",
			BaseInputs: finance.Assumptions{
				"purchase_price":          2400000,
				"closing_costs_pct":       0.02,
				"down_payment_pct":        0.30,
				"interest_rate":           0.065,
				"loan_term_years":         30,
				"gross_rent_monthly":      24000,
				"other_income_monthly":    800,
				"vacancy_rate":            0.06,
				"operating_expense_ratio": 0.42,
				"annual_rent_growth":      0.03,
				"annual_expense_growth":   0.025,
				"hold_years":              5,
				"exit_cap_rate":           0.055,
				"selling_costs_pct":       0.04,
			},
			Variables: []analysis.Variable{
				{Name: "vacancy_rate", Label: "Vacancy Rate", Base: 0.06, Min: 0.03, Max: 0.12, Unit: "ratio"},
				{Name: "gross_rent_monthly", Label: "Gross Monthly Rent", Base: 24000, Min: 21600, Max: 26400, Unit: "USD"},
				{Name: "interest_rate", Label: "Interest Rate", Base: 0.065, Min: 0.05, Max: 0.08, Unit: "ratio"},
				{Name: "operating_expense_ratio", Label: "Operating Expense Ratio", Base: 0.42, Min: 0.38, Max: 0.48, Unit: "ratio"},
				{Name: "exit_cap_rate", Label: "Exit Cap Rate", Base: 0.055, Min: 0.045, Max: 0.07, Unit: "ratio"},
			},
		},
		{
			PropertyType: "single_family",
			Label:        "Single-Family Rental",
			BaseInputs: finance.Assumptions{
				"purchase_price":          320000,
				"closing_costs_pct":       0.025,
				"down_payment_pct":        0.25,
				"interest_rate":           0.0675,
				"loan_term_years":         30,
				"gross_rent_monthly":      2400,
				"vacancy_rate":            0.05,
				"operating_expense_ratio": 0.35,
				"annual_rent_growth":      0.03,
				"annual_expense_growth":   0.025,
				"hold_years":              7,
				"exit_cap_rate":           0.06,
				"selling_costs_pct":       0.06,
			},
			Variables: []analysis.Variable{
				{Name: "gross_rent_monthly", Label: "Monthly Rent", Base: 2400, Min: 2100, Max: 2700, Unit: "USD"},
				{Name: "vacancy_rate", Label: "Vacancy Rate", Base: 0.05, Min: 0.02, Max: 0.10, Unit: "ratio"},
				{Name: "interest_rate", Label: "Interest Rate", Base: 0.0675, Min: 0.055, Max: 0.085, Unit: "ratio"},
				{Name: "annual_rent_growth", Label: "Annual Rent Growth", Base: 0.03, Min: 0.01, Max: 0.05, Unit: "ratio"},
				{Name: "exit_cap_rate", Label: "Exit Cap Rate", Base: 0.06, Min: 0.05, Max: 0.075, Unit: "ratio"},
			},
		},
		{
			PropertyType: "commercial",
			Label:        "Commercial (office/retail)",
			BaseInputs: finance.Assumptions{
				"purchase_price":          1800000,
				"closing_costs_pct":       0.03,
				"down_payment_pct":        0.35,
				"interest_rate":           0.0725,
				"loan_term_years":         25,
				"gross_rent_monthly":      15500,
				"vacancy_rate":            0.08,
				"operating_expense_ratio": 0.30,
				"annual_rent_growth":      0.02,
				"annual_expense_growth":   0.025,
				"hold_years":              10,
				"exit_cap_rate":           0.068,
				"selling_costs_pct":       0.035,
			},
			Variables: []analysis.Variable{
				{Name: "vacancy_rate", Label: "Vacancy Rate", Base: 0.08, Min: 0.04, Max: 0.18, Unit: "ratio"},
				{Name: "gross_rent_monthly", Label: "Gross Monthly Rent", Base: 15500, Min: 13000, Max: 17500, Unit: "USD"},
				{Name: "interest_rate", Label: "Interest Rate", Base: 0.0725, Min: 0.06, Max: 0.09, Unit: "ratio"},
				{Name: "operating_expense_ratio", Label: "Operating Expense Ratio", Base: 0.30, Min: 0.25, Max: 0.40, Unit: "ratio"},
				{Name: "exit_cap_rate", Label: "Exit Cap Rate", Base: 0.068, Min: 0.055, Max: 0.085, Unit: "ratio"},
			},
		},
		{
			PropertyType: "fix_and_flip",
			Label:        "Fix & Flip",
			BaseInputs: finance.Assumptions{
				"purchase_price":        180000,
				"closing_costs_pct":     0.02,
				"rehab_cost":            45000,
				"after_repair_value":    310000,
				"hold_months":           6,
				"selling_costs_pct":     0.07,
				"loan_to_cost":          0.85,
				"interest_rate":         0.105,
				"monthly_holding_costs": 650,
			},
			Variables: []analysis.Variable{
				{Name: "after_repair_value", Label: "After-Repair Value", Base: 310000, Min: 280000, Max: 340000, Unit: "USD", Distribution: analysis.DistributionTriangular},
				{Name: "rehab_cost", Label: "Rehab Budget", Base: 45000, Min: 38000, Max: 60000, Unit: "USD"},
				{Name: "hold_months", Label: "Hold (months)", Base: 6, Min: 4, Max: 9, Unit: "months"},
				{Name: "interest_rate", Label: "Hard Money Rate", Base: 0.105, Min: 0.09, Max: 0.13, Unit: "ratio"},
				{Name: "selling_costs_pct", Label: "Selling Costs", Base: 0.07, Min: 0.06, Max: 0.08, Unit: "ratio"},
			},
		},
	}
}
