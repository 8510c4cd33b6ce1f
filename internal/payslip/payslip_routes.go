package payslip

import (
	"hris-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	payslips := r.Group("/payslip")
	payslips.Use(middleware.AuthMiddleware())
	{
		payslips.GET("", middleware.RateLimitByUser(2, 5), handler.GetForMonth)
		payslips.GET("/search", middleware.RateLimitByUser(2, 5), handler.Search)
		payslips.GET("/pdf", middleware.RateLimitByUser(0.5, 2), handler.DownloadPDF)
		payslips.POST("/export", middleware.RateLimitByUser(0.2, 1), handler.RequestExport)
	}
}
