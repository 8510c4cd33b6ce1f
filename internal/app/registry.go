package app

import (
	"database/sql"
	"os"

	"hris-payroll/internal/audit"
	"hris-payroll/internal/auth"
	"hris-payroll/internal/messaging/kafka"
	"hris-payroll/internal/middleware"
	"hris-payroll/internal/payslip"
	"hris-payroll/internal/remittance"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	logger := zap.L()

	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(logger))

	// --- Repositories ---
	auditRepo := audit.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	remittanceRepo := remittance.NewRepository(gormDB)

	// --- Services ---
	recorder := audit.NewRecorder(auditRepo, logger)
	authService := auth.NewService(authRepo)
	remittanceService := remittance.NewServiceWithOutbox(db, remittanceRepo, recorder, outboxRepo, logger)

	payslipSource := payslip.NewHTTPSource(os.Getenv("FINALIZED_PAYROLL_URL"), rdb, logger)
	payslipService := payslip.NewService(payslipSource, recorder, outboxRepo, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	remittanceHandler := remittance.NewHandlerWithRedis(remittanceService, rdb)
	payslipHandler := payslip.NewHandler(payslipService)

	// Routes stay at the root so existing clients keep their paths.
	api := router.Group("")
	{
		auth.RegisterRoutes(api, authHandler)
		remittance.RegisterRoutes(api, remittanceHandler, rdb)
		payslip.RegisterRoutes(api, payslipHandler)
	}

	return nil
}
