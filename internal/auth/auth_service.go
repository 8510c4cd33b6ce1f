package auth

import (
	"context"
	"errors"
	"os"
	"time"

	autherrors "hris-payroll/internal/auth/errors"
	"hris-payroll/internal/shared/contextutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenTTL = 15 * time.Minute

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock

type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Register(ctx context.Context, req RegisterRequest) (AccountResponse, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	l := contextutil.GetLogger(ctx, nil)

	account, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LoginResponse{}, autherrors.ErrInvalidCredentials
		}
		l.Error("account lookup failed", zap.Error(err))
		return LoginResponse{}, err
	}

	if !account.IsActive {
		return LoginResponse{}, autherrors.ErrAccountDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(req.Password)); err != nil {
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	expiresAt := s.now().Add(tokenTTL)
	claims := jwt.MapClaims{
		"employeeNumber": account.EmployeeNumber,
		"role":           account.Role,
		"iat":            s.now().Unix(),
		"exp":            expiresAt.Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		l.Error("token signing failed", zap.Error(err))
		return LoginResponse{}, err
	}

	l.Info("login succeeded", zap.String("employee_number", account.EmployeeNumber))

	return LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
	}, nil
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (AccountResponse, error) {
	l := contextutil.GetLogger(ctx, nil)

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		l.Error("password hashing failed", zap.Error(err))
		return AccountResponse{}, err
	}

	role := req.Role
	if role == "" {
		role = "employee"
	}

	account := &Account{
		ID:             uuid.New(),
		EmployeeNumber: req.EmployeeNumber,
		Email:          req.Email,
		Password:       string(hashed),
		Role:           role,
		IsActive:       true,
	}

	if err := s.repo.Create(ctx, account); err != nil {
		mapped := mapAccountStoreError(err)
		if !errors.Is(mapped, autherrors.ErrDuplicateAccount) {
			l.Error("account insert failed", zap.Error(err))
		}
		return AccountResponse{}, mapped
	}

	l.Info("account registered", zap.String("employee_number", account.EmployeeNumber))
	return mapToAccountResponse(account), nil
}

func mapToAccountResponse(a *Account) AccountResponse {
	return AccountResponse{
		ID:             a.ID.String(),
		EmployeeNumber: a.EmployeeNumber,
		Email:          a.Email,
		Role:           a.Role,
		IsActive:       a.IsActive,
		CreatedAt:      a.CreatedAt.UTC().Format(time.RFC3339),
	}
}
