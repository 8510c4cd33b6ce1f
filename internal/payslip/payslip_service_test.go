package payslip_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"hris-payroll/internal/audit"
	"hris-payroll/internal/events"
	"hris-payroll/internal/messaging/kafka"
	"hris-payroll/internal/payslip"
	paysliperrors "hris-payroll/internal/payslip/errors"

	"github.com/stretchr/testify/assert"
)

type fakeSource struct {
	fetchAllFn func(ctx context.Context) ([]payslip.FinalizedPayroll, error)
}

func (f *fakeSource) FetchAll(ctx context.Context) ([]payslip.FinalizedPayroll, error) {
	return f.fetchAllFn(ctx)
}

type recordedAudit struct {
	actor  string
	action string
	table  string
	target *string
}

type fakeRecorder struct {
	entries []recordedAudit
}

func (f *fakeRecorder) Record(ctx context.Context, actor, action, tableName string, recordID, target *string) {
	f.entries = append(f.entries, recordedAudit{actor: actor, action: action, table: tableName, target: target})
}

type fakeOutbox struct {
	created []kafka.OutboxEvent
	err     error
}

func (f *fakeOutbox) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutbox) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, event)
	return nil
}

func (f *fakeOutbox) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutbox) MarkSent(ctx context.Context, id string) error            { return nil }
func (f *fakeOutbox) MarkFailed(ctx context.Context, id string, r string) error { return nil }

func gross(v float64) *float64 { return &v }

func fixtureRows() []payslip.FinalizedPayroll {
	return []payslip.FinalizedPayroll{
		{
			EmployeeNumber: "2021-00123",
			Name:           "DELA CRUZ, JUAN",
			StartDate:      "2024-03-01",
			EndDate:        "2024-03-31",
			GrossSalary:    gross(30000),
		},
		{
			EmployeeNumber: "2021-00123",
			Name:           "DELA CRUZ, JUAN",
			StartDate:      "2025-03-01",
			EndDate:        "2025-03-31",
			GrossSalary:    gross(32000),
		},
		{
			EmployeeNumber: "2021-00123",
			Name:           "DELA CRUZ, JUAN",
			StartDate:      "2025-04-01",
			EndDate:        "2025-04-30",
			GrossSalary:    gross(32000),
		},
		{
			EmployeeNumber: "2021-00456",
			Name:           "SANTOS, MARIA",
			StartDate:      "2025-03-01",
			EndDate:        "2025-03-31",
			GrossSalary:    gross(28000),
		},
	}
}

func newServiceWithRows(rows []payslip.FinalizedPayroll) (payslip.Service, *fakeRecorder, *fakeOutbox) {
	source := &fakeSource{fetchAllFn: func(ctx context.Context) ([]payslip.FinalizedPayroll, error) {
		return rows, nil
	}}
	recorder := &fakeRecorder{}
	outbox := &fakeOutbox{}
	return payslip.NewService(source, recorder, outbox, nil), recorder, outbox
}

func TestPayslipService_ViewForMonth_YearAgnostic(t *testing.T) {
	svc, recorder, _ := newServiceWithRows(fixtureRows())

	// "Mar" matches March of any year; the most recent period wins.
	row, err := svc.ViewForMonth(context.Background(), "2021-00123", "2021-00123", "Mar")

	assert.NoError(t, err)
	assert.Equal(t, "2025-03-01", row.StartDate)
	assert.Equal(t, "2021-00123", row.EmployeeNumber)

	assert.Len(t, recorder.entries, 1)
	assert.Equal(t, audit.ActionView, recorder.entries[0].action)
	assert.Equal(t, "finalized_payroll", recorder.entries[0].table)
}

func TestPayslipService_ViewForMonth_OldYearStillMatches(t *testing.T) {
	rows := fixtureRows()[:1] // only the 2024 March row
	svc, _, _ := newServiceWithRows(rows)

	row, err := svc.ViewForMonth(context.Background(), "2021-00123", "2021-00123", "Mar")

	assert.NoError(t, err)
	assert.Equal(t, "2024-03-01", row.StartDate)
}

func TestPayslipService_ViewForMonth_CaseInsensitiveLabel(t *testing.T) {
	svc, _, _ := newServiceWithRows(fixtureRows())

	_, err := svc.ViewForMonth(context.Background(), "2021-00123", "2021-00123", "mar")
	assert.NoError(t, err)
}

func TestPayslipService_ViewForMonth_NoMatch(t *testing.T) {
	svc, recorder, _ := newServiceWithRows(fixtureRows())

	_, err := svc.ViewForMonth(context.Background(), "2021-00123", "2021-00123", "Dec")

	assert.ErrorIs(t, err, paysliperrors.ErrNoPayslipForMonth)
	assert.Empty(t, recorder.entries, "misses must not be audited")
}

func TestPayslipService_ViewForMonth_InvalidLabel(t *testing.T) {
	svc, _, _ := newServiceWithRows(fixtureRows())

	_, err := svc.ViewForMonth(context.Background(), "2021-00123", "2021-00123", "March")
	assert.ErrorIs(t, err, paysliperrors.ErrInvalidMonth)
}

func TestPayslipService_ViewForMonth_OtherEmployeeInvisible(t *testing.T) {
	svc, _, _ := newServiceWithRows(fixtureRows())

	_, err := svc.ViewForMonth(context.Background(), "2021-00999", "2021-00999", "Mar")
	assert.ErrorIs(t, err, paysliperrors.ErrNoPayslipForMonth)
}

func TestPayslipService_ViewForMonth_SourceError(t *testing.T) {
	source := &fakeSource{fetchAllFn: func(ctx context.Context) ([]payslip.FinalizedPayroll, error) {
		return nil, paysliperrors.ErrUpstreamFetch
	}}
	svc := payslip.NewService(source, &fakeRecorder{}, nil, nil)

	_, err := svc.ViewForMonth(context.Background(), "2021-00123", "2021-00123", "Mar")
	assert.ErrorIs(t, err, paysliperrors.ErrUpstreamFetch)
}

func TestPayslipService_Search(t *testing.T) {
	svc, _, _ := newServiceWithRows(fixtureRows())

	byNumber, err := svc.Search(context.Background(), "admin-001", "00456")
	assert.NoError(t, err)
	assert.Len(t, byNumber, 1)
	assert.Equal(t, "SANTOS, MARIA", byNumber[0].Name)

	byName, err := svc.Search(context.Background(), "admin-001", "dela cruz")
	assert.NoError(t, err)
	assert.Len(t, byName, 3)

	none, err := svc.Search(context.Background(), "admin-001", "nobody")
	assert.NoError(t, err)
	assert.Empty(t, none)
}

func TestPayslipService_Search_EmptyQuery(t *testing.T) {
	svc, _, _ := newServiceWithRows(fixtureRows())

	_, err := svc.Search(context.Background(), "admin-001", "   ")
	assert.ErrorIs(t, err, paysliperrors.ErrEmptySearch)
}

func TestPayslipService_RenderPDF(t *testing.T) {
	svc, _, _ := newServiceWithRows(fixtureRows())

	filename, pdf, err := svc.RenderPDF(context.Background(), "2021-00123", "2021-00123", "Apr")

	assert.NoError(t, err)
	assert.Equal(t, "DELA CRUZ, JUAN-Payslip.pdf", filename)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-1.4")))
	assert.Contains(t, string(pdf), "NET SALARY")
}

func TestPayslipService_RequestExport(t *testing.T) {
	svc, _, outbox := newServiceWithRows(fixtureRows())

	requestID, err := svc.RequestExport(context.Background(), "2021-00123", "2021-00123", "Mar")

	assert.NoError(t, err)
	assert.NotEmpty(t, requestID)
	assert.Len(t, outbox.created, 1)

	event := outbox.created[0]
	assert.Equal(t, events.PayslipExportRequestedTopic, event.Topic)
	assert.Equal(t, kafka.OutboxStatusPending, event.Status)

	var payload events.PayslipExportRequestedEvent
	assert.NoError(t, json.Unmarshal(event.Payload, &payload))
	assert.Equal(t, requestID, payload.RequestID)
	assert.Equal(t, "2021-00123", payload.EmployeeNumber)
	assert.Equal(t, "Mar", payload.Month)
}

func TestPayslipService_RequestExport_InvalidMonth(t *testing.T) {
	svc, _, outbox := newServiceWithRows(fixtureRows())

	_, err := svc.RequestExport(context.Background(), "2021-00123", "2021-00123", "Monday")

	assert.ErrorIs(t, err, paysliperrors.ErrInvalidMonth)
	assert.Empty(t, outbox.created)
}

func TestPayslipService_RequestExport_OutboxError(t *testing.T) {
	source := &fakeSource{fetchAllFn: func(ctx context.Context) ([]payslip.FinalizedPayroll, error) {
		return fixtureRows(), nil
	}}
	outbox := &fakeOutbox{err: errors.New("insert failed")}
	svc := payslip.NewService(source, nil, outbox, nil)

	_, err := svc.RequestExport(context.Background(), "2021-00123", "2021-00123", "Mar")
	assert.Error(t, err)
}
