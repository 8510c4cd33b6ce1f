package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"hris-payroll/internal/events"
	"hris-payroll/internal/payslip"
	paysliperrors "hris-payroll/internal/payslip/errors"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumePayslipExportRequested renders queued payslip exports to exportDir.
// Messages with no matching payslip are committed and skipped; transient
// failures (upstream fetch, disk) leave the message uncommitted for redelivery.
func ConsumePayslipExportRequested(
	ctx context.Context,
	reader *kafkago.Reader,
	payslipService payslip.Service,
	exportDir string,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payslip_export")
	log.Info("payslip export consumer started", zap.String("export_dir", exportDir))

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payslip export consumer stopped")
				return
			}
			log.Error("fetch payslip export message failed", zap.Error(err))
			continue
		}

		var event events.PayslipExportRequestedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode payslip export event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		filename, pdf, err := payslipService.RenderPDF(ctx, event.RequestedBy, event.EmployeeNumber, event.Month)
		if err != nil {
			if errors.Is(err, paysliperrors.ErrNoPayslipForMonth) || errors.Is(err, paysliperrors.ErrInvalidMonth) {
				log.Warn("payslip export skipped, no matching payslip",
					zap.String("request_id", event.RequestID),
					zap.String("employee_number", event.EmployeeNumber),
					zap.String("month", event.Month),
				)
				_ = reader.CommitMessages(ctx, msg)
				continue
			}

			log.Error("payslip export render failed",
				zap.String("request_id", event.RequestID),
				zap.String("employee_number", event.EmployeeNumber),
				zap.Error(err),
			)
			continue
		}

		path := filepath.Join(exportDir, event.RequestID+"-"+filename)
		if err := os.WriteFile(path, pdf, 0o644); err != nil {
			log.Error("payslip export write failed", zap.String("path", path), zap.Error(err))
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payslip export message failed", zap.Error(err))
			continue
		}

		log.Info("payslip export written",
			zap.String("request_id", event.RequestID),
			zap.String("employee_number", event.EmployeeNumber),
			zap.String("path", path),
		)
	}
}
