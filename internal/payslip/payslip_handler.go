package payslip

import (
	"net/http"

	"hris-payroll/internal/shared/apperror"
	"hris-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetForMonth returns the caller's own finalized payslip for the
// requested month label (Jan..Dec).
func (h *Handler) GetForMonth(c *gin.Context) {
	actor := c.GetString("employee_number")
	month := c.Query("month")

	if month == "" {
		response.Error(c, http.StatusBadRequest, "month is required")
		return
	}

	row, err := h.service.ViewForMonth(c.Request.Context(), actor, actor, month)
	if err != nil {
		appErr := apperror.From(err)
		response.Error(c, appErr.HTTPStatus, appErr.Message)
		return
	}

	response.Data(c, http.StatusOK, row)
}

func (h *Handler) Search(c *gin.Context) {
	actor := c.GetString("employee_number")

	rows, err := h.service.Search(c.Request.Context(), actor, c.Query("q"))
	if err != nil {
		appErr := apperror.From(err)
		response.Error(c, appErr.HTTPStatus, appErr.Message)
		return
	}

	response.Data(c, http.StatusOK, rows)
}

func (h *Handler) DownloadPDF(c *gin.Context) {
	actor := c.GetString("employee_number")
	month := c.Query("month")

	if month == "" {
		response.Error(c, http.StatusBadRequest, "month is required")
		return
	}

	filename, pdf, err := h.service.RenderPDF(c.Request.Context(), actor, actor, month)
	if err != nil {
		appErr := apperror.From(err)
		response.Error(c, appErr.HTTPStatus, appErr.Message)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

type exportRequest struct {
	Month string `json:"month" binding:"required"`
}

// RequestExport queues an asynchronous payslip export; the worker picks
// it up off the outbox and a consumer renders the file.
func (h *Handler) RequestExport(c *gin.Context) {
	actor := c.GetString("employee_number")

	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperror.From(apperror.MapValidationError(err))
		response.Error(c, appErr.HTTPStatus, appErr.Message)
		return
	}

	requestID, err := h.service.RequestExport(c.Request.Context(), actor, actor, req.Month)
	if err != nil {
		appErr := apperror.From(err)
		response.Error(c, appErr.HTTPStatus, appErr.Message)
		return
	}

	response.MessageWithID(c, http.StatusAccepted, "Export queued", requestID)
}
