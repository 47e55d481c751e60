package rules

// Category names used by the built-in rule table. Other packages key off a
// few of these, so they are constants rather than bare strings.
const (
	CategoryRevenue         = "Revenue"
	CategoryFuel            = "Fuel & Petroleum"
	CategoryVehicle         = "Vehicle Repairs & Maintenance"
	CategoryEquipment       = "Equipment & Supplies"
	CategorySubcontractors  = "Subcontractor Payments"
	CategoryOffice          = "Office Expenses"
	CategoryProfessional    = "Professional Fees"
	CategoryInsurance       = "Insurance - Business"
	CategoryBankCharges     = "Bank Charges & Interest"
	CategoryTelecom         = "Telephone & Communications"
	CategoryMeals           = "Meals & Entertainment (50%)"
	CategoryTravel          = "Travel"
	CategoryRent            = "Rent - Commercial"
	CategoryUtilities       = "Utilities"
	CategoryWages           = "Wages & Salaries"
	CategoryDistribution    = "Shareholder Distribution"
	CategoryPersonalExpense = "Shareholder Loan - Personal Expense"
	CategoryVehicleLoan     = "Loan Payment - Business Vehicle"
	CategoryPersonalLoan    = "Loan Payment - Personal"
	CategoryGSTRemittance   = "GST Remittance"
	CategoryTaxInstallment  = "Income Tax Installment"
	CategoryGSTRefund       = "GST Refund"
	CategoryTransfer        = "Transfer - Non-Taxable"
	CategoryUncategorized   = "Uncategorized"
)

// Default returns the built-in CRA rule table. Order matters: government and
// revenue patterns first, then vendor keyword categories, then the transfer
// catch-all. The Uncategorized sentinel is not a rule; the classifier falls
// back to it when nothing here matches.
func Default() *Set {
	s, err := NewSet(defaultRules())
	if err != nil {
		// The built-in table is validated by tests; a bad entry is a bug.
		panic("invalid built-in rule table: " + err.Error())
	}
	return s
}

func defaultRules() []Rule {
	return []Rule{
		{
			Category:  CategoryGSTRefund,
			Keywords:  []string{"GOVERNMENT CANADA"},
			Direction: DirectionCredit,
		},
		{
			Category:  CategoryTaxInstallment,
			Keywords:  []string{"GOVERNMENT CANADA"},
			Direction: DirectionDebit,
		},
		{
			Category:  CategoryRevenue,
			Keywords:  []string{"WIRE TSF", "MOBILE DEPOSIT", "BRANCH DEPOSIT", "COUNTER DEPOSIT", "DEPOSIT IN BRANCH", "CONTRACTOR INV"},
			Direction: DirectionCredit,
		},
		{
			Category:  CategoryDistribution,
			Keywords:  []string{"INTERNET TRANSFER", "E-TRANSFER", "ETRANSFER", "INTERAC", "ATM WITHDRAWAL", "ABM WITHDRAWAL", "BRANCH WITHDRAWAL"},
			Direction: DirectionDebit,
		},
		{
			Category: CategoryVehicleLoan,
			Keywords: []string{"TD ON-LINE LOANS", "LOAN PAYMENT TD"},
		},
		{
			Category: CategoryPersonalLoan,
			Keywords: []string{"SCOTIA BANK LOAN", "LOAN PAYMENT SCOTIA"},
			Personal: true,
		},
		{
			Category: CategoryBankCharges,
			Keywords: []string{"ACCOUNT FEE", "SERVICE CHARGE", "MONTHLY FEE", "BANK FEE", "OVERDRAFT", "NSF", "OVER LIMIT", "INTEREST CHARGE"},
		},
		{
			Category: CategoryGSTRemittance,
			Keywords: []string{"DEBIT MEMO GOVERNMENT"},
			Patterns: []string{`GPFS.*GOVERNMENT`},
		},
		{
			Category: CategoryInsurance,
			Keywords: []string{"INSURANCE", "MANULIFE", "WAWANESA", "INTACT", "AVIVA"},
		},
		{
			Category:    CategoryTelecom,
			Keywords:    []string{"TELUS", "KOODO", "ROGERS", "BELL MOBILITY", "FIDO", "SHAW"},
			ITCEligible: true,
			ITCRate:     1.0,
		},
		{
			Category:    CategoryFuel,
			Keywords:    []string{"PETRO-CANADA", "PETRO CANADA", "SHELL", "ESSO", "CHEVRON", "HUSKY", "MOBIL", "CENTEX", "FAS GAS", "CIRCLE K", "DOMO GAS", "PIONEER"},
			Patterns:    []string{`FGP\d+`, `CO-OP.*GAS`},
			ITCEligible: true,
			ITCRate:     1.0,
		},
		{
			Category:    CategoryVehicle,
			Keywords:    []string{"OK TIRE", "KAL TIRE", "NAPA", "PART SOURCE", "LORDCO", "JIFFY LUBE", "CANADIAN TIRE", "OIL CHANGE", "CAR WASH", "REGISTRY", "REGISTRIES"},
			ITCEligible: true,
			ITCRate:     1.0,
		},
		{
			Category:    CategoryEquipment,
			Keywords:    []string{"PRINCESS AUTO", "HOME HARDWARE", "HOME DEPOT", "LOWES", "COSTCO", "STAPLES", "MARKS WORK"},
			ITCEligible: true,
			ITCRate:     1.0,
		},
		{
			Category:    CategoryProfessional,
			Keywords:    []string{"NOTARY", "LAWYER", "LEGAL", "ACCOUNTANT", "CPA", "BOOKKEEP", "WORKERS COMP", "WCB", "QUICKBOOKS", "INTUIT"},
			ITCEligible: true,
			ITCRate:     1.0,
		},
		{
			Category: CategoryWages,
			Keywords: []string{"PAYROLL"},
		},
		{
			Category:    CategorySubcontractors,
			Keywords:    []string{"SUBCONTRACT"},
			ITCEligible: true,
			ITCRate:     1.0,
		},
		{
			Category:    CategoryOffice,
			Keywords:    []string{"OFFICE SUPPL", "OFFICE DEPOT"},
			ITCEligible: true,
			ITCRate:     1.0,
		},
		{
			Category:    CategoryTravel,
			Keywords:    []string{"HOTEL", "MOTEL", "WESTJET", "AIR CANADA"},
			ITCEligible: true,
			ITCRate:     1.0,
		},
		{
			Category:    CategoryMeals,
			Keywords:    []string{"TIM HORTONS", "A&W", "MCDONALD", "WENDY", "SUBWAY", "BOSTON PIZZA", "DENNYS", "SMITTYS", "RESTAURANT", "PIZZA", "DQ GRILL"},
			ITCEligible: true,
			ITCRate:     0.5,
		},
		{
			Category:    CategoryRent,
			Keywords:    []string{"RENT@", "REALTYFOCUS", "REALTY EXECUTIVES", "RENT PAYMENT"},
			ITCEligible: true,
			ITCRate:     1.0,
		},
		{
			Category:    CategoryUtilities,
			Keywords:    []string{"ATCO", "ENMAX", "EPCOR", "DIRECT ENERGY", "FORTIS"},
			ITCEligible: true,
			ITCRate:     1.0,
		},
		{
			Category: CategoryPersonalExpense,
			Keywords: []string{
				"LIQUOR", "WINE RACK", "BEER STORE", "CANNABIS",
				"DAYCARE", "CHILD CARE", "IKEA",
				"GROCERY", "SUPERMARKET", "SAFEWAY", "SUPERSTORE", "IGA",
				"WALMART", "DOLLARAMA", "VALUE VILLAGE", "GOODWILL",
				"NETFLIX", "SPOTIFY", "SKIP THE DISHES", "DOORDASH", "UBER EATS", "LOTTERY",
				"BARBER", "SALON", "NAILS",
				"AMAZON", "TEMU", "ETSY",
			},
			Personal: true,
		},
		{
			Category: CategoryTransfer,
			Keywords: []string{"E-TRANSFER", "ETRANSFER", "INTERNET TRANSFER", "DEPOSIT"},
			Review:   true,
		},
	}
}
