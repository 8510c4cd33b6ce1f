package remittance

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"hris-payroll/internal/shared/apperror"
	"hris-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	service Service
	rdb     *redis.Client
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func NewHandlerWithRedis(service Service, rdb *redis.Client) *Handler {
	return &Handler{service: service, rdb: rdb}
}

func (h *Handler) GetAll(c *gin.Context) {
	ctx := c.Request.Context()
	actor := c.GetString("employee_number")

	resp, err := h.service.GetAll(ctx, actor)
	if err != nil {
		response.StoreError(c, http.StatusInternalServerError, "Error fetching data")
		return
	}

	response.Data(c, http.StatusOK, resp)
}

func (h *Handler) Create(c *gin.Context) {
	lockKey, _ := c.Get("idempotency_lock_key")
	cacheKey, _ := c.Get("idempotency_cache_key")

	if h.rdb != nil {
		if lk, ok := lockKey.(string); ok && lk != "" {
			defer h.rdb.Del(c.Request.Context(), lk)
		}
	}

	actor := c.GetString("employee_number")

	var req RemittanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperror.From(apperror.MapValidationError(err))
		response.Error(c, appErr.HTTPStatus, appErr.Message)
		return
	}

	id, err := h.service.Create(c.Request.Context(), actor, req)
	if err != nil {
		h.writeMutationError(c, err, "Error adding data")
		return
	}

	if h.rdb != nil {
		if ck, ok := cacheKey.(string); ok && ck != "" {
			if payload, marshalErr := json.Marshal(gin.H{"message": "Data added successfully", "id": id}); marshalErr == nil {
				_ = h.rdb.Set(c.Request.Context(), ck, payload, 24*time.Hour).Err()
			}
		}
	}

	response.MessageWithID(c, http.StatusOK, "Data added successfully", id)
}

func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	actor := c.GetString("employee_number")

	var req RemittanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperror.From(apperror.MapValidationError(err))
		response.Error(c, appErr.HTTPStatus, appErr.Message)
		return
	}

	if err := h.service.Update(ctx, actor, id, req); err != nil {
		h.writeMutationError(c, err, "Error updating data")
		return
	}

	response.Message(c, http.StatusOK, "Data updated successfully")
}

func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	actor := c.GetString("employee_number")

	if err := h.service.Delete(ctx, actor, id); err != nil {
		h.writeMutationError(c, err, "Error deleting data")
		return
	}

	response.Message(c, http.StatusOK, "Data deleted successfully")
}

// Store failures surface as a fixed-shape message with no detail; only
// validation errors carry a distinct status.
func (h *Handler) writeMutationError(c *gin.Context, err error, storeMessage string) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.HTTPStatus < http.StatusInternalServerError {
		response.Error(c, appErr.HTTPStatus, appErr.Message)
		return
	}
	response.StoreError(c, http.StatusInternalServerError, storeMessage)
}
