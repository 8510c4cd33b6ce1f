package remittance_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hris-payroll/internal/remittance"
	"hris-payroll/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
	apperror.Init()
}

type fakeRemittanceService struct {
	getAllFn func(ctx context.Context, actor string) ([]remittance.RemittanceResponse, error)
	createFn func(ctx context.Context, actor string, req remittance.RemittanceRequest) (string, error)
	updateFn func(ctx context.Context, actor, id string, req remittance.RemittanceRequest) error
	deleteFn func(ctx context.Context, actor, id string) error
}

func (f *fakeRemittanceService) GetAll(ctx context.Context, actor string) ([]remittance.RemittanceResponse, error) {
	return f.getAllFn(ctx, actor)
}

func (f *fakeRemittanceService) Create(ctx context.Context, actor string, req remittance.RemittanceRequest) (string, error) {
	return f.createFn(ctx, actor, req)
}

func (f *fakeRemittanceService) Update(ctx context.Context, actor, id string, req remittance.RemittanceRequest) error {
	return f.updateFn(ctx, actor, id, req)
}

func (f *fakeRemittanceService) Delete(ctx context.Context, actor, id string) error {
	return f.deleteFn(ctx, actor, id)
}

func newTestContext(t *testing.T, method, path, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(method, path, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("employee_number", "admin-001")

	return c, w
}

func TestRemittanceHandler_GetAll(t *testing.T) {
	svc := &fakeRemittanceService{
		getAllFn: func(ctx context.Context, actor string) ([]remittance.RemittanceResponse, error) {
			assert.Equal(t, "admin-001", actor)
			return []remittance.RemittanceResponse{
				{ID: uuid.New().String(), EmployeeNumber: "2021-00123"},
			}, nil
		},
	}

	h := remittance.NewHandler(svc)
	c, w := newTestContext(t, http.MethodGet, "/employee-remittance", "")

	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)

	// Listing responds with the bare array, no envelope.
	var rows []remittance.RemittanceResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	assert.Len(t, rows, 1)
	assert.Equal(t, "2021-00123", rows[0].EmployeeNumber)
}

func TestRemittanceHandler_GetAll_StoreError(t *testing.T) {
	svc := &fakeRemittanceService{
		getAllFn: func(ctx context.Context, actor string) ([]remittance.RemittanceResponse, error) {
			return nil, errors.New("db down")
		},
	}

	h := remittance.NewHandler(svc)
	c, w := newTestContext(t, http.MethodGet, "/employee-remittance", "")

	h.GetAll(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Error fetching data"}`, w.Body.String())
}

func TestRemittanceHandler_Create(t *testing.T) {
	id := uuid.New().String()
	svc := &fakeRemittanceService{
		createFn: func(ctx context.Context, actor string, req remittance.RemittanceRequest) (string, error) {
			assert.Equal(t, "2021-00123", req.EmployeeNumber)
			assert.Equal(t, 200.0, *req.Pagibig)
			assert.Nil(t, req.Feu)
			return id, nil
		},
	}

	h := remittance.NewHandler(svc)
	c, w := newTestContext(t, http.MethodPost, "/employee-remittance",
		`{"employeeNumber":"2021-00123","pagibig":200}`)

	h.Create(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Data added successfully","id":"`+id+`"}`, w.Body.String())
}

func TestRemittanceHandler_Create_MissingEmployeeNumber(t *testing.T) {
	svc := &fakeRemittanceService{
		createFn: func(ctx context.Context, actor string, req remittance.RemittanceRequest) (string, error) {
			t.Fatal("service must not be called on validation failure")
			return "", nil
		},
	}

	h := remittance.NewHandler(svc)
	c, w := newTestContext(t, http.MethodPost, "/employee-remittance", `{"pagibig":200}`)

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "error")
}

func TestRemittanceHandler_Create_StoreError(t *testing.T) {
	svc := &fakeRemittanceService{
		createFn: func(ctx context.Context, actor string, req remittance.RemittanceRequest) (string, error) {
			return "", errors.New("insert failed")
		},
	}

	h := remittance.NewHandler(svc)
	c, w := newTestContext(t, http.MethodPost, "/employee-remittance",
		`{"employeeNumber":"2021-00123"}`)

	h.Create(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Error adding data"}`, w.Body.String())
}

func TestRemittanceHandler_Update(t *testing.T) {
	id := uuid.New().String()
	svc := &fakeRemittanceService{
		updateFn: func(ctx context.Context, actor, gotID string, req remittance.RemittanceRequest) error {
			assert.Equal(t, id, gotID)
			return nil
		},
	}

	h := remittance.NewHandler(svc)
	c, w := newTestContext(t, http.MethodPut, "/employee-remittance/"+id,
		`{"employeeNumber":"2021-00123"}`)
	c.Params = gin.Params{{Key: "id", Value: id}}

	h.Update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Data updated successfully"}`, w.Body.String())
}

func TestRemittanceHandler_Update_InvalidID(t *testing.T) {
	svc := &fakeRemittanceService{
		updateFn: func(ctx context.Context, actor, id string, req remittance.RemittanceRequest) error {
			return apperror.ErrInvalidInput
		},
	}

	h := remittance.NewHandler(svc)
	c, w := newTestContext(t, http.MethodPut, "/employee-remittance/nope",
		`{"employeeNumber":"2021-00123"}`)
	c.Params = gin.Params{{Key: "id", Value: "nope"}}

	h.Update(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "error")
}

func TestRemittanceHandler_Delete(t *testing.T) {
	id := uuid.New().String()
	svc := &fakeRemittanceService{
		deleteFn: func(ctx context.Context, actor, gotID string) error {
			assert.Equal(t, id, gotID)
			return nil
		},
	}

	h := remittance.NewHandler(svc)
	c, w := newTestContext(t, http.MethodDelete, "/employee-remittance/"+id, "")
	c.Params = gin.Params{{Key: "id", Value: id}}

	h.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Data deleted successfully"}`, w.Body.String())
}

func TestRemittanceHandler_Delete_StoreError(t *testing.T) {
	svc := &fakeRemittanceService{
		deleteFn: func(ctx context.Context, actor, id string) error {
			return errors.New("delete failed")
		},
	}

	h := remittance.NewHandler(svc)
	c, w := newTestContext(t, http.MethodDelete, "/employee-remittance/x", "")
	c.Params = gin.Params{{Key: "id", Value: "x"}}

	h.Delete(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Error deleting data"}`, w.Body.String())
}
