package audit

import (
	"time"

	"github.com/google/uuid"
)

const (
	ActionView   = "View"
	ActionInsert = "Insert"
	ActionUpdate = "Update"
	ActionDelete = "Delete"
)

// Entry is append-only: created by the recorder, never read back, updated or
// deleted by this service.
type Entry struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeNumber       string    `gorm:"column:employee_number;index"`
	Action               string    `gorm:"type:varchar(20);not null"`
	Table                string    `gorm:"column:table_name;not null"`
	RecordID             *string   `gorm:"column:record_id"`
	TargetEmployeeNumber *string   `gorm:"column:target_employee_number"`
	Timestamp            time.Time `gorm:"not null"`
}

func (Entry) TableName() string {
	return "audit_log"
}
