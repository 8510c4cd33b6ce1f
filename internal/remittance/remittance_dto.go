package remittance

// RemittanceRequest carries the full column set: Create and Update both
// replace every field, so the two operations share one payload shape.
// Deduction amounts are nullable per column.
type RemittanceRequest struct {
	EmployeeNumber     string   `json:"employeeNumber" binding:"required"`
	LiquidatingCash    *float64 `json:"liquidatingCash"`
	GsisSalaryLoan     *float64 `json:"gsisSalaryLoan"`
	GsisPolicyLoan     *float64 `json:"gsisPolicyLoan"`
	GsisArrears        *float64 `json:"gsisArrears"`
	Cpl                *float64 `json:"cpl"`
	Mpl                *float64 `json:"mpl"`
	MplLite            *float64 `json:"mplLite"`
	EmergencyLoan      *float64 `json:"emergencyLoan"`
	Nbc594             *float64 `json:"nbc594"`
	Increment          *float64 `json:"increment"`
	Pagibig            *float64 `json:"pagibig"`
	PagibigFundCont    *float64 `json:"pagibigFundCont"`
	Pagibig2           *float64 `json:"pagibig2"`
	MultiPurpLoan      *float64 `json:"multiPurpLoan"`
	LandbankSalaryLoan *float64 `json:"landbankSalaryLoan"`
	EaristCreditCoop   *float64 `json:"earistCreditCoop"`
	Feu                *float64 `json:"feu"`
}

type RemittanceResponse struct {
	ID                 string   `json:"id"`
	EmployeeNumber     string   `json:"employeeNumber"`
	Name               *string  `json:"name"`
	LiquidatingCash    *float64 `json:"liquidatingCash"`
	GsisSalaryLoan     *float64 `json:"gsisSalaryLoan"`
	GsisPolicyLoan     *float64 `json:"gsisPolicyLoan"`
	GsisArrears        *float64 `json:"gsisArrears"`
	Cpl                *float64 `json:"cpl"`
	Mpl                *float64 `json:"mpl"`
	MplLite            *float64 `json:"mplLite"`
	EmergencyLoan      *float64 `json:"emergencyLoan"`
	Nbc594             *float64 `json:"nbc594"`
	Increment          *float64 `json:"increment"`
	Pagibig            *float64 `json:"pagibig"`
	PagibigFundCont    *float64 `json:"pagibigFundCont"`
	Pagibig2           *float64 `json:"pagibig2"`
	MultiPurpLoan      *float64 `json:"multiPurpLoan"`
	LandbankSalaryLoan *float64 `json:"landbankSalaryLoan"`
	EaristCreditCoop   *float64 `json:"earistCreditCoop"`
	Feu                *float64 `json:"feu"`
	CreatedAt          string   `json:"created_at"`
}
