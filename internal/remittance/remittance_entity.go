package remittance

import (
	"time"

	"github.com/google/uuid"
)

// Remittance is one deduction entry per employee per recording. An employee
// may have zero, one or many rows; nothing enforces uniqueness on
// employee_number.
type Remittance struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeNumber string    `gorm:"column:employee_number;not null;index"`

	LiquidatingCash    *float64 `gorm:"column:liquidating_cash"`
	GsisSalaryLoan     *float64 `gorm:"column:gsis_salary_loan"`
	GsisPolicyLoan     *float64 `gorm:"column:gsis_policy_loan"`
	GsisArrears        *float64 `gorm:"column:gsis_arrears"`
	Cpl                *float64 `gorm:"column:cpl"`
	Mpl                *float64 `gorm:"column:mpl"`
	MplLite            *float64 `gorm:"column:mpl_lite"`
	EmergencyLoan      *float64 `gorm:"column:emergency_loan"`
	Nbc594             *float64 `gorm:"column:nbc594"`
	Increment          *float64 `gorm:"column:increment"`
	Pagibig            *float64 `gorm:"column:pagibig"`
	PagibigFundCont    *float64 `gorm:"column:pagibig_fund_cont"`
	Pagibig2           *float64 `gorm:"column:pagibig2"`
	MultiPurpLoan      *float64 `gorm:"column:multi_purp_loan"`
	LandbankSalaryLoan *float64 `gorm:"column:landbank_salary_loan"`
	EaristCreditCoop   *float64 `gorm:"column:earist_credit_coop"`
	Feu                *float64 `gorm:"column:feu"`

	CreatedAt time.Time

	// Display name resolved from payroll_processing on list queries; null
	// when the employee number has no match there.
	Name *string `gorm:"column:name;->"`
}

func (Remittance) TableName() string {
	return "remittance_table"
}
