package auth

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

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperror.From(apperror.MapValidationError(err))
		response.Error(c, appErr.HTTPStatus, appErr.Message)
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		appErr := apperror.From(err)
		response.Error(c, appErr.HTTPStatus, appErr.Message)
		return
	}

	response.Data(c, http.StatusOK, resp)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperror.From(apperror.MapValidationError(err))
		response.Error(c, appErr.HTTPStatus, appErr.Message)
		return
	}

	resp, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		appErr := apperror.From(err)
		response.Error(c, appErr.HTTPStatus, appErr.Message)
		return
	}

	response.Data(c, http.StatusCreated, resp)
}
