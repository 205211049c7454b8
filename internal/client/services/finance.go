package services

import (
	"context"
	"net/http"
	"time"

	"github.com/sainaif/animalsys/internal/client/models"
)

type FinanceService interface {
	List(ctx context.Context, p ListParams) (*models.Page[models.Transaction], error)
	Get(ctx context.Context, id string) (*models.Transaction, error)
	Create(ctx context.Context, t models.Transaction) (*models.Transaction, error)
	Update(ctx context.Context, id string, t models.Transaction) (*models.Transaction, error)
	Delete(ctx context.Context, id string) error
	Report(ctx context.Context, start, end time.Time) (map[string]any, error)
	Dashboard(ctx context.Context) (map[string]any, error)
}

type financeService struct {
	r Requester
}

func NewFinanceService(r Requester) FinanceService {
	return &financeService{r: r}
}

const transactionsPath = "/finance/transactions"

func (s *financeService) List(ctx context.Context, p ListParams) (*models.Page[models.Transaction], error) {
	return fetch[models.Page[models.Transaction]](ctx, s.r, transactionsPath, p.Values())
}

func (s *financeService) Get(ctx context.Context, id string) (*models.Transaction, error) {
	return fetch[models.Transaction](ctx, s.r, resourcePath(transactionsPath, id), nil)
}

func (s *financeService) Create(ctx context.Context, t models.Transaction) (*models.Transaction, error) {
	return send[models.Transaction](ctx, s.r, http.MethodPost, transactionsPath, t)
}

func (s *financeService) Update(ctx context.Context, id string, t models.Transaction) (*models.Transaction, error) {
	return send[models.Transaction](ctx, s.r, http.MethodPut, resourcePath(transactionsPath, id), t)
}

func (s *financeService) Delete(ctx context.Context, id string) error {
	return exec(ctx, s.r, http.MethodDelete, resourcePath(transactionsPath, id), nil)
}

// Report summarizes the ledger between start and end, inclusive.
func (s *financeService) Report(ctx context.Context, start, end time.Time) (map[string]any, error) {
	out, err := fetch[map[string]any](ctx, s.r, "/finance/report", dateRange(start, end))
	if err != nil {
		return nil, err
	}
	return *out, nil
}

func (s *financeService) Dashboard(ctx context.Context) (map[string]any, error) {
	return fetchStats(ctx, s.r, "/finance/dashboard")
}
