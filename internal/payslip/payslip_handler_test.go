package payslip_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hris-payroll/internal/payslip"
	paysliperrors "hris-payroll/internal/payslip/errors"
	"hris-payroll/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
	apperror.Init()
}

type fakePayslipService struct {
	viewForMonthFn  func(ctx context.Context, actor, employeeNumber, month string) (payslip.FinalizedPayroll, error)
	searchFn        func(ctx context.Context, actor, query string) ([]payslip.FinalizedPayroll, error)
	renderPDFFn     func(ctx context.Context, actor, employeeNumber, month string) (string, []byte, error)
	requestExportFn func(ctx context.Context, actor, employeeNumber, month string) (string, error)
}

func (f *fakePayslipService) ViewForMonth(ctx context.Context, actor, employeeNumber, month string) (payslip.FinalizedPayroll, error) {
	return f.viewForMonthFn(ctx, actor, employeeNumber, month)
}

func (f *fakePayslipService) Search(ctx context.Context, actor, query string) ([]payslip.FinalizedPayroll, error) {
	return f.searchFn(ctx, actor, query)
}

func (f *fakePayslipService) RenderPDF(ctx context.Context, actor, employeeNumber, month string) (string, []byte, error) {
	return f.renderPDFFn(ctx, actor, employeeNumber, month)
}

func (f *fakePayslipService) RequestExport(ctx context.Context, actor, employeeNumber, month string) (string, error) {
	return f.requestExportFn(ctx, actor, employeeNumber, month)
}

func newPayslipContext(t *testing.T, method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("employee_number", "2021-00123")

	return c, w
}

func TestPayslipHandler_GetForMonth(t *testing.T) {
	svc := &fakePayslipService{
		viewForMonthFn: func(ctx context.Context, actor, employeeNumber, month string) (payslip.FinalizedPayroll, error) {
			assert.Equal(t, "2021-00123", actor)
			assert.Equal(t, "2021-00123", employeeNumber, "viewer only sees their own payslip")
			assert.Equal(t, "Mar", month)
			return fixtureRows()[1], nil
		},
	}

	h := payslip.NewHandler(svc)
	c, w := newPayslipContext(t, http.MethodGet, "/payslip?month=Mar", "")

	h.GetForMonth(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var row payslip.FinalizedPayroll
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &row))
	assert.Equal(t, "2025-03-01", row.StartDate)
}

func TestPayslipHandler_GetForMonth_MissingMonth(t *testing.T) {
	h := payslip.NewHandler(&fakePayslipService{})
	c, w := newPayslipContext(t, http.MethodGet, "/payslip", "")

	h.GetForMonth(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"month is required"}`, w.Body.String())
}

func TestPayslipHandler_GetForMonth_NotFound(t *testing.T) {
	svc := &fakePayslipService{
		viewForMonthFn: func(ctx context.Context, actor, employeeNumber, month string) (payslip.FinalizedPayroll, error) {
			return payslip.FinalizedPayroll{}, paysliperrors.ErrNoPayslipForMonth
		},
	}

	h := payslip.NewHandler(svc)
	c, w := newPayslipContext(t, http.MethodGet, "/payslip?month=Dec", "")

	h.GetForMonth(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"There's no payslip saved for this month"}`, w.Body.String())
}

func TestPayslipHandler_Search(t *testing.T) {
	svc := &fakePayslipService{
		searchFn: func(ctx context.Context, actor, query string) ([]payslip.FinalizedPayroll, error) {
			assert.Equal(t, "santos", query)
			return fixtureRows()[3:], nil
		},
	}

	h := payslip.NewHandler(svc)
	c, w := newPayslipContext(t, http.MethodGet, "/payslip/search?q=santos", "")

	h.Search(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var rows []payslip.FinalizedPayroll
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	assert.Len(t, rows, 1)
	assert.Equal(t, "SANTOS, MARIA", rows[0].Name)
}

func TestPayslipHandler_DownloadPDF(t *testing.T) {
	svc := &fakePayslipService{
		renderPDFFn: func(ctx context.Context, actor, employeeNumber, month string) (string, []byte, error) {
			return "DELA CRUZ, JUAN-Payslip.pdf", []byte("%PDF-1.4 fake"), nil
		},
	}

	h := payslip.NewHandler(svc)
	c, w := newPayslipContext(t, http.MethodGet, "/payslip/pdf?month=Mar", "")

	h.DownloadPDF(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "DELA CRUZ, JUAN-Payslip.pdf")
	assert.Equal(t, "%PDF-1.4 fake", w.Body.String())
}

func TestPayslipHandler_RequestExport(t *testing.T) {
	svc := &fakePayslipService{
		requestExportFn: func(ctx context.Context, actor, employeeNumber, month string) (string, error) {
			assert.Equal(t, "Mar", month)
			return "req-123", nil
		},
	}

	h := payslip.NewHandler(svc)
	c, w := newPayslipContext(t, http.MethodPost, "/payslip/export", `{"month":"Mar"}`)

	h.RequestExport(c)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.JSONEq(t, `{"message":"Export queued","id":"req-123"}`, w.Body.String())
}

func TestPayslipHandler_RequestExport_MissingMonth(t *testing.T) {
	h := payslip.NewHandler(&fakePayslipService{})
	c, w := newPayslipContext(t, http.MethodPost, "/payslip/export", `{}`)

	h.RequestExport(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "error")
}
