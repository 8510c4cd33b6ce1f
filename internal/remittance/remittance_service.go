package remittance

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"hris-payroll/internal/audit"
	"hris-payroll/internal/events"
	"hris-payroll/internal/messaging/kafka"
	"hris-payroll/internal/shared/apperror"
	"hris-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const auditTableName = "remittance_table"

//go:generate mockgen -source=remittance_service.go -destination=mock/remittance_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, actor string) ([]RemittanceResponse, error)
	Create(ctx context.Context, actor string, req RemittanceRequest) (string, error)
	Update(ctx context.Context, actor, id string, req RemittanceRequest) error
	Delete(ctx context.Context, actor, id string) error
}

type service struct {
	db       *sql.DB
	repo     Repository
	recorder audit.Recorder
	outbox   kafka.OutboxRepository
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, recorder audit.Recorder) Service {
	return NewServiceWithOutbox(db, repo, recorder, nil, nil)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	recorder audit.Recorder,
	outbox kafka.OutboxRepository,
	logger *zap.Logger,
) Service {
	if logger == nil {
		logger = zap.L()
	}
	return &service{
		db:       db,
		repo:     repo,
		recorder: recorder,
		outbox:   outbox,
		logger:   logger.Named("remittance"),
	}
}

func (s *service) GetAll(ctx context.Context, actor string) ([]RemittanceResponse, error) {
	recs, err := s.repo.FindAllWithName(ctx)
	if err != nil {
		s.logger.Error("list remittance failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	// Bulk view: one audit entry for the whole listing, no record id.
	s.recorder.Record(ctx, actor, audit.ActionView, auditTableName, nil, nil)

	return mapToListResponse(recs), nil
}

func (s *service) Create(ctx context.Context, actor string, req RemittanceRequest) (string, error) {
	rid := contextutil.GetRequestID(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rec := mapToEntity(req)
	rec.ID = uuid.New()

	if err := qtx.Create(ctx, rec); err != nil {
		s.logger.Error("create remittance persist failed", zap.String("request_id", rid), zap.Error(err))
		return "", mapRepositoryError(err)
	}

	if err := s.writeOutboxEvent(ctx, tx, events.RemittanceCreated, rec.ID.String(), req.EmployeeNumber); err != nil {
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}

	id := rec.ID.String()
	s.recorder.Record(ctx, actor, audit.ActionInsert, auditTableName, &id, &req.EmployeeNumber)

	return id, nil
}

func (s *service) Update(ctx context.Context, actor, id string, req RemittanceRequest) error {
	recID, err := uuid.Parse(id)
	if err != nil {
		return apperror.ErrInvalidInput
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rec := mapToEntity(req)
	rec.ID = recID

	affected, err := qtx.Update(ctx, rec)
	if err != nil {
		s.logger.Error("update remittance persist failed", zap.String("id", id), zap.Error(err))
		return mapRepositoryError(err)
	}
	if affected == 0 {
		// Deliberate pass-through: clients treat update as idempotent, so a
		// missing row is still reported as success and still audited.
		s.logger.Warn("update matched no remittance row", zap.String("id", id))
	}

	if err := s.writeOutboxEvent(ctx, tx, events.RemittanceUpdated, id, req.EmployeeNumber); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.recorder.Record(ctx, actor, audit.ActionUpdate, auditTableName, &id, &req.EmployeeNumber)

	return nil
}

func (s *service) Delete(ctx context.Context, actor, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperror.ErrInvalidInput
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	affected, err := qtx.Delete(ctx, id)
	if err != nil {
		s.logger.Error("delete remittance failed", zap.String("id", id), zap.Error(err))
		return mapRepositoryError(err)
	}
	if affected == 0 {
		s.logger.Warn("delete matched no remittance row", zap.String("id", id))
	}

	if err := s.writeOutboxEvent(ctx, tx, events.RemittanceDeleted, id, ""); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.recorder.Record(ctx, actor, audit.ActionDelete, auditTableName, &id, nil)

	return nil
}

// writeOutboxEvent enqueues a remittance.changed event inside the caller's
// transaction, so the event exists iff the mutation commits.
func (s *service) writeOutboxEvent(ctx context.Context, tx *sql.Tx, eventType, recID, employeeNumber string) error {
	if s.outbox == nil {
		return nil
	}

	rid := contextutil.GetRequestID(ctx)
	event := events.RemittanceChangedEvent{
		EventType:      eventType,
		RequestID:      rid,
		RemittanceID:   recID,
		EmployeeNumber: employeeNumber,
		OccurredAt:     time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal remittance event failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "remittance",
		AggregateID:   recID,
		EventType:     eventType,
		Topic:         events.RemittanceChangedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("remittance outbox persist failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	return nil
}

func mapToEntity(req RemittanceRequest) *Remittance {
	return &Remittance{
		EmployeeNumber:     req.EmployeeNumber,
		LiquidatingCash:    req.LiquidatingCash,
		GsisSalaryLoan:     req.GsisSalaryLoan,
		GsisPolicyLoan:     req.GsisPolicyLoan,
		GsisArrears:        req.GsisArrears,
		Cpl:                req.Cpl,
		Mpl:                req.Mpl,
		MplLite:            req.MplLite,
		EmergencyLoan:      req.EmergencyLoan,
		Nbc594:             req.Nbc594,
		Increment:          req.Increment,
		Pagibig:            req.Pagibig,
		PagibigFundCont:    req.PagibigFundCont,
		Pagibig2:           req.Pagibig2,
		MultiPurpLoan:      req.MultiPurpLoan,
		LandbankSalaryLoan: req.LandbankSalaryLoan,
		EaristCreditCoop:   req.EaristCreditCoop,
		Feu:                req.Feu,
	}
}

func mapToResponse(rec Remittance) RemittanceResponse {
	return RemittanceResponse{
		ID:                 rec.ID.String(),
		EmployeeNumber:     rec.EmployeeNumber,
		Name:               rec.Name,
		LiquidatingCash:    rec.LiquidatingCash,
		GsisSalaryLoan:     rec.GsisSalaryLoan,
		GsisPolicyLoan:     rec.GsisPolicyLoan,
		GsisArrears:        rec.GsisArrears,
		Cpl:                rec.Cpl,
		Mpl:                rec.Mpl,
		MplLite:            rec.MplLite,
		EmergencyLoan:      rec.EmergencyLoan,
		Nbc594:             rec.Nbc594,
		Increment:          rec.Increment,
		Pagibig:            rec.Pagibig,
		PagibigFundCont:    rec.PagibigFundCont,
		Pagibig2:           rec.Pagibig2,
		MultiPurpLoan:      rec.MultiPurpLoan,
		LandbankSalaryLoan: rec.LandbankSalaryLoan,
		EaristCreditCoop:   rec.EaristCreditCoop,
		Feu:                rec.Feu,
		CreatedAt:          rec.CreatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(recs []Remittance) []RemittanceResponse {
	res := make([]RemittanceResponse, len(recs))
	for i, rec := range recs {
		res[i] = mapToResponse(rec)
	}
	return res
}
