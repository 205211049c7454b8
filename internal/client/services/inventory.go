package services

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sainaif/animalsys/internal/client/models"
)

type InventoryService interface {
	List(ctx context.Context, p ListParams) (*models.Page[models.InventoryItem], error)
	Get(ctx context.Context, id string) (*models.InventoryItem, error)
	Create(ctx context.Context, item models.InventoryItem) (*models.InventoryItem, error)
	Update(ctx context.Context, id string, item models.InventoryItem) (*models.InventoryItem, error)
	Delete(ctx context.Context, id string) error
	Movements(ctx context.Context, id string, p ListParams) (*models.Page[models.StockMovement], error)
	AddMovement(ctx context.Context, id string, m models.StockMovement) error
	Statistics(ctx context.Context) (map[string]any, error)
	LowStock(ctx context.Context) ([]models.InventoryItem, error)
	Expiring(ctx context.Context, days int) ([]models.InventoryItem, error)
}

type inventoryService struct {
	r Requester
}

func NewInventoryService(r Requester) InventoryService {
	return &inventoryService{r: r}
}

func (s *inventoryService) List(ctx context.Context, p ListParams) (*models.Page[models.InventoryItem], error) {
	return fetch[models.Page[models.InventoryItem]](ctx, s.r, "/inventory", p.Values())
}

func (s *inventoryService) Get(ctx context.Context, id string) (*models.InventoryItem, error) {
	return fetch[models.InventoryItem](ctx, s.r, resourcePath("/inventory", id), nil)
}

func (s *inventoryService) Create(ctx context.Context, item models.InventoryItem) (*models.InventoryItem, error) {
	return send[models.InventoryItem](ctx, s.r, http.MethodPost, "/inventory", item)
}

func (s *inventoryService) Update(ctx context.Context, id string, item models.InventoryItem) (*models.InventoryItem, error) {
	return send[models.InventoryItem](ctx, s.r, http.MethodPut, resourcePath("/inventory", id), item)
}

func (s *inventoryService) Delete(ctx context.Context, id string) error {
	return exec(ctx, s.r, http.MethodDelete, resourcePath("/inventory", id), nil)
}

func (s *inventoryService) Movements(ctx context.Context, id string, p ListParams) (*models.Page[models.StockMovement], error) {
	return fetch[models.Page[models.StockMovement]](ctx, s.r, resourcePath("/inventory", id, "movements"), p.Values())
}

func (s *inventoryService) AddMovement(ctx context.Context, id string, m models.StockMovement) error {
	return exec(ctx, s.r, http.MethodPost, resourcePath("/inventory", id, "movements"), m)
}

func (s *inventoryService) Statistics(ctx context.Context) (map[string]any, error) {
	out, err := fetch[map[string]any](ctx, s.r, "/inventory/statistics", nil)
	if err != nil {
		return nil, err
	}
	return *out, nil
}

func (s *inventoryService) LowStock(ctx context.Context) ([]models.InventoryItem, error) {
	out, err := fetch[[]models.InventoryItem](ctx, s.r, "/inventory/low-stock", nil)
	if err != nil {
		return nil, err
	}
	return *out, nil
}

// Expiring lists items expiring within days; days <= 0 uses the backend
// default of 30.
func (s *inventoryService) Expiring(ctx context.Context, days int) ([]models.InventoryItem, error) {
	out, err := fetch[[]models.InventoryItem](ctx, s.r, "/inventory/expiring", daysQuery(days))
	if err != nil {
		return nil, err
	}
	return *out, nil
}

func daysQuery(days int) url.Values {
	if days <= 0 {
		return nil
	}
	return url.Values{"days": {strconv.Itoa(days)}}
}
