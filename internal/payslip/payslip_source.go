package payslip

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	paysliperrors "hris-payroll/internal/payslip/errors"
	"hris-payroll/internal/shared/apperror"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	sourceCacheKey = "payslip:finalized-payroll"
	sourceCacheTTL = 60 * time.Second
)

// Source supplies the finalized-payroll collection from the
// payroll-finalization subsystem.
//
//go:generate mockgen -source=payslip_source.go -destination=mock/payslip_source_mock.go -package=mock
type Source interface {
	FetchAll(ctx context.Context) ([]FinalizedPayroll, error)
}

// httpSource fetches over HTTP, collapses concurrent fetches through
// singleflight and keeps a short-lived Redis copy so a burst of payslip
// views does not hammer the upstream.
type httpSource struct {
	baseURL string
	client  *http.Client
	rdb     *redis.Client
	group   singleflight.Group
	logger  *zap.Logger
}

func NewHTTPSource(baseURL string, rdb *redis.Client, logger *zap.Logger) Source {
	if logger == nil {
		logger = zap.L()
	}
	return &httpSource{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
		rdb:     rdb,
		logger:  logger.Named("payslip.source"),
	}
}

func (s *httpSource) FetchAll(ctx context.Context) ([]FinalizedPayroll, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, sourceCacheKey).Result(); err == nil {
			var rows []FinalizedPayroll
			if err := json.Unmarshal([]byte(cached), &rows); err == nil {
				return rows, nil
			}
		}
	}

	v, err, _ := s.group.Do(sourceCacheKey, func() (any, error) {
		return s.fetchUpstream(ctx)
	})
	if err != nil {
		return nil, err
	}

	return v.([]FinalizedPayroll), nil
}

func (s *httpSource) fetchUpstream(ctx context.Context) ([]FinalizedPayroll, error) {
	url := s.baseURL + "/finalized-payroll"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperror.Wrap(err, paysliperrors.ErrUpstreamFetch.Code, paysliperrors.ErrUpstreamFetch.Message, paysliperrors.ErrUpstreamFetch.HTTPStatus)
	}

	res, err := s.client.Do(req)
	if err != nil {
		s.logger.Error("finalized payroll fetch failed", zap.String("url", url), zap.Error(err))
		return nil, apperror.Wrap(err, paysliperrors.ErrUpstreamFetch.Code, paysliperrors.ErrUpstreamFetch.Message, paysliperrors.ErrUpstreamFetch.HTTPStatus)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		s.logger.Error("finalized payroll fetch bad status", zap.String("url", url), zap.Int("status", res.StatusCode))
		return nil, apperror.Wrap(
			fmt.Errorf("upstream status %d", res.StatusCode),
			paysliperrors.ErrUpstreamFetch.Code,
			paysliperrors.ErrUpstreamFetch.Message,
			paysliperrors.ErrUpstreamFetch.HTTPStatus,
		)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, apperror.Wrap(err, paysliperrors.ErrUpstreamFetch.Code, paysliperrors.ErrUpstreamFetch.Message, paysliperrors.ErrUpstreamFetch.HTTPStatus)
	}

	var rows []FinalizedPayroll
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, apperror.Wrap(err, paysliperrors.ErrUpstreamFetch.Code, paysliperrors.ErrUpstreamFetch.Message, paysliperrors.ErrUpstreamFetch.HTTPStatus)
	}

	if s.rdb != nil {
		if err := s.rdb.Set(ctx, sourceCacheKey, body, sourceCacheTTL).Err(); err != nil {
			s.logger.Warn("finalized payroll cache write failed", zap.Error(err))
		}
	}

	return rows, nil
}
