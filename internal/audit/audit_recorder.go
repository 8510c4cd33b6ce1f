package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Recorder appends one audit entry per call. Record is fire-and-forget: the
// write races the HTTP response, and a failed insert is logged and dropped —
// it must never fail the operation that triggered it.
type Recorder interface {
	Record(ctx context.Context, actor, action, tableName string, recordID, targetEmployeeNumber *string)
}

type recorder struct {
	repo   Repository
	logger *zap.Logger
}

func NewRecorder(repo Repository, logger *zap.Logger) Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &recorder{repo: repo, logger: logger.Named("audit")}
}

func (r *recorder) Record(ctx context.Context, actor, action, tableName string, recordID, targetEmployeeNumber *string) {
	entry := &Entry{
		ID:                   uuid.New(),
		EmployeeNumber:       actor,
		Action:               action,
		Table:                tableName,
		RecordID:             recordID,
		TargetEmployeeNumber: targetEmployeeNumber,
		Timestamp:            time.Now().UTC(),
	}

	// Detached from the request lifecycle: the insert must survive the
	// response being written and the request context being cancelled.
	bg := context.WithoutCancel(ctx)

	go func() {
		if err := r.repo.Create(bg, entry); err != nil {
			r.logger.Error("audit insert failed",
				zap.String("actor", actor),
				zap.String("action", action),
				zap.String("table", tableName),
				zap.Error(err),
			)
		}
	}()
}
