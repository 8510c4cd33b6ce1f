package payslip

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"hris-payroll/internal/audit"
	"hris-payroll/internal/events"
	"hris-payroll/internal/messaging/kafka"
	paysliperrors "hris-payroll/internal/payslip/errors"
	"hris-payroll/internal/shared/apperror"
	"hris-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Month labels accepted by the viewer. Matching is by month of year
// only; a March 2024 row and a March 2025 row both answer "Mar", with
// the most recent pay period winning.
var monthLabels = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

type Service interface {
	ViewForMonth(ctx context.Context, actor, employeeNumber, month string) (FinalizedPayroll, error)
	Search(ctx context.Context, actor, query string) ([]FinalizedPayroll, error)
	RenderPDF(ctx context.Context, actor, employeeNumber, month string) (string, []byte, error)
	RequestExport(ctx context.Context, actor, employeeNumber, month string) (string, error)
}

type service struct {
	source   Source
	recorder audit.Recorder
	outbox   kafka.OutboxRepository
	logger   *zap.Logger
}

func NewService(source Source, recorder audit.Recorder, outbox kafka.OutboxRepository, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.L()
	}
	return &service{
		source:   source,
		recorder: recorder,
		outbox:   outbox,
		logger:   logger.Named("payslip.service"),
	}
}

func (s *service) ViewForMonth(ctx context.Context, actor, employeeNumber, month string) (FinalizedPayroll, error) {
	row, err := s.findForMonth(ctx, employeeNumber, month)
	if err != nil {
		return FinalizedPayroll{}, err
	}

	if s.recorder != nil {
		s.recorder.Record(ctx, actor, audit.ActionView, "finalized_payroll", nil, &row.EmployeeNumber)
	}

	return row, nil
}

func (s *service) Search(ctx context.Context, actor, query string) ([]FinalizedPayroll, error) {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return nil, paysliperrors.ErrEmptySearch
	}

	rows, err := s.source.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	matches := make([]FinalizedPayroll, 0)
	for _, row := range rows {
		if strings.Contains(strings.ToLower(row.EmployeeNumber), needle) ||
			strings.Contains(strings.ToLower(row.Name), needle) {
			matches = append(matches, row)
		}
	}

	return matches, nil
}

func (s *service) RenderPDF(ctx context.Context, actor, employeeNumber, month string) (string, []byte, error) {
	row, err := s.ViewForMonth(ctx, actor, employeeNumber, month)
	if err != nil {
		return "", nil, err
	}

	pdf, err := buildPayslipPDF(payslipDocument(row))
	if err != nil {
		s.logger.Error("payslip pdf render failed", zap.String("employee_number", employeeNumber), zap.Error(err))
		return "", nil, apperror.Wrap(err, apperror.CodeInternalError, "Failed to render payslip", http.StatusInternalServerError)
	}

	return fmt.Sprintf("%s-Payslip.pdf", row.Name), pdf, nil
}

func (s *service) RequestExport(ctx context.Context, actor, employeeNumber, month string) (string, error) {
	if _, ok := monthIndex(month); !ok {
		return "", paysliperrors.ErrInvalidMonth
	}
	if s.outbox == nil {
		return "", apperror.ErrInternal
	}

	requestID := uuid.New().String()
	event := events.PayslipExportRequestedEvent{
		EventType:      events.PayslipExportRequested,
		RequestID:      requestID,
		EmployeeNumber: employeeNumber,
		Month:          month,
		RequestedBy:    actor,
		OccurredAt:     time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return "", apperror.Wrap(err, apperror.CodeInternalError, "Failed to queue export", http.StatusInternalServerError)
	}

	err = s.outbox.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "payslip_export",
		AggregateID:   requestID,
		EventType:     events.PayslipExportRequested,
		Topic:         events.PayslipExportRequestedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
	if err != nil {
		s.logger.Error("payslip export enqueue failed", zap.String("employee_number", employeeNumber), zap.Error(err))
		return "", apperror.Wrap(err, apperror.CodeInternalError, "Failed to queue export", http.StatusInternalServerError)
	}

	return requestID, nil
}

func (s *service) findForMonth(ctx context.Context, employeeNumber, month string) (FinalizedPayroll, error) {
	wanted, ok := monthIndex(month)
	if !ok {
		return FinalizedPayroll{}, paysliperrors.ErrInvalidMonth
	}

	rows, err := s.source.FetchAll(ctx)
	if err != nil {
		return FinalizedPayroll{}, err
	}

	candidates := make([]FinalizedPayroll, 0, 2)
	for _, row := range rows {
		if row.EmployeeNumber != employeeNumber {
			continue
		}
		start, err := parsePeriodDate(row.StartDate)
		if err != nil {
			s.logger.Warn("unparseable payroll start date",
				zap.String("employee_number", row.EmployeeNumber),
				zap.String("start_date", row.StartDate),
			)
			continue
		}
		if start.Month() == wanted {
			candidates = append(candidates, row)
		}
	}

	if len(candidates) == 0 {
		return FinalizedPayroll{}, paysliperrors.ErrNoPayslipForMonth
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, _ := parsePeriodDate(candidates[i].StartDate)
		b, _ := parsePeriodDate(candidates[j].StartDate)
		return a.After(b)
	})

	return candidates[0], nil
}

func monthIndex(label string) (time.Month, bool) {
	for i, m := range monthLabels {
		if strings.EqualFold(m, label) {
			return time.Month(i + 1), true
		}
	}
	return 0, false
}

func parsePeriodDate(raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", raw)
}
