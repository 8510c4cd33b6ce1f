package events

import "time"

const (
	PayslipExportRequestedTopic = "hr.payslip.export.requested.v1"

	PayslipExportRequested = "payslip_export_requested"
)

type PayslipExportRequestedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id"`
	EmployeeNumber string    `json:"employee_number"`
	Month          string    `json:"month"`
	RequestedBy    string    `json:"requested_by"`
	OccurredAt     time.Time `json:"occurred_at"`
}
