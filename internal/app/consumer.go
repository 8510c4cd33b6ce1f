package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"hris-payroll/internal/events"
	"hris-payroll/internal/messaging/kafka/consumer"
	"hris-payroll/internal/payslip"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer renders queued payslip exports until the process is signalled.
func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	broker := os.Getenv("KAFKA_BROKER")
	if broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	upstream := os.Getenv("FINALIZED_PAYROLL_URL")
	if upstream == "" {
		return fmt.Errorf("FINALIZED_PAYROLL_URL is required")
	}

	exportDir := os.Getenv("PAYSLIP_EXPORT_DIR")
	if exportDir == "" {
		exportDir = "exports"
	}
	if err := os.MkdirAll(exportDir, 0o755); err != nil {
		return err
	}

	// The consumer only reads finalized payroll over HTTP; it needs neither
	// the database nor Redis.
	source := payslip.NewHTTPSource(upstream, nil, logger)
	payslipService := payslip.NewService(source, nil, nil, logger)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{broker},
		Topic:          events.PayslipExportRequestedTopic,
		GroupID:        "hris-payroll-payslip-export",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumePayslipExportRequested(ctx, reader, payslipService, exportDir, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
