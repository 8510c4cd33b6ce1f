package events

import "time"

const RemittanceChangedTopic = "hr.remittance.changed.v1"

const (
	RemittanceCreated = "remittance_created"
	RemittanceUpdated = "remittance_updated"
	RemittanceDeleted = "remittance_deleted"
)

type RemittanceChangedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id"`
	RemittanceID   string    `json:"remittance_id"`
	EmployeeNumber string    `json:"employee_number"`
	OccurredAt     time.Time `json:"occurred_at"`
}
