package payslip

// FinalizedPayroll is one employee's locked payroll row for a pay period,
// owned by the payroll-finalization subsystem. This module only reads it.
type FinalizedPayroll struct {
	EmployeeNumber string `json:"employeeNumber"`
	Name           string `json:"name"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate"`

	GrossSalary        *float64 `json:"grossSalary"`
	Abs                *float64 `json:"abs"`
	WithholdingTax     *float64 `json:"withholdingTax"`
	PersonalLifeRetIns *float64 `json:"personalLifeRetIns"`
	GsisSalaryLoan     *float64 `json:"gsisSalaryLoan"`
	GsisPolicyLoan     *float64 `json:"gsisPolicyLoan"`
	GsisArrears        *float64 `json:"gsisArrears"`
	Cpl                *float64 `json:"cpl"`
	Mpl                *float64 `json:"mpl"`
	MplLite            *float64 `json:"mplLite"`
	PagibigFundCont    *float64 `json:"pagibigFundCont"`
	PhilHealthCont     *float64 `json:"PhilHealthContribution"`
	Pagibig2           *float64 `json:"pagibig2"`
	Feu                *float64 `json:"feu"`

	TotalDeductions *float64 `json:"totalDeductions"`
	NetSalary       *float64 `json:"netSalary"`
	Pay1st          *float64 `json:"pay1st"`
	Pay2nd          *float64 `json:"pay2nd"`
}
