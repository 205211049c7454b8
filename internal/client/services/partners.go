package services

import (
	"context"
	"net/http"

	"github.com/sainaif/animalsys/internal/client/models"
)

type PartnerService interface {
	List(ctx context.Context, p ListParams) (*models.Page[models.Partner], error)
	Get(ctx context.Context, id string) (*models.Partner, error)
	Create(ctx context.Context, p models.Partner) (*models.Partner, error)
	Update(ctx context.Context, id string, p models.Partner) (*models.Partner, error)
	Delete(ctx context.Context, id string) error
	Agreements(ctx context.Context, id string, p ListParams) (*models.Page[models.Agreement], error)
	AddAgreement(ctx context.Context, id string, a models.Agreement) (*models.Agreement, error)
	UpdateAgreement(ctx context.Context, id, agreementID string, a models.Agreement) (*models.Agreement, error)
	DeleteAgreement(ctx context.Context, id, agreementID string) error
	Active(ctx context.Context) ([]models.Partner, error)
	ByType(ctx context.Context, typ string) ([]models.Partner, error)
	Statistics(ctx context.Context, id string) (map[string]any, error)
	OverallStatistics(ctx context.Context) (map[string]any, error)
}

type partnerService struct {
	r Requester
}

func NewPartnerService(r Requester) PartnerService {
	return &partnerService{r: r}
}

func (s *partnerService) List(ctx context.Context, p ListParams) (*models.Page[models.Partner], error) {
	return fetch[models.Page[models.Partner]](ctx, s.r, "/partners", p.Values())
}

func (s *partnerService) Get(ctx context.Context, id string) (*models.Partner, error) {
	return fetch[models.Partner](ctx, s.r, resourcePath("/partners", id), nil)
}

func (s *partnerService) Create(ctx context.Context, p models.Partner) (*models.Partner, error) {
	return send[models.Partner](ctx, s.r, http.MethodPost, "/partners", p)
}

func (s *partnerService) Update(ctx context.Context, id string, p models.Partner) (*models.Partner, error) {
	return send[models.Partner](ctx, s.r, http.MethodPut, resourcePath("/partners", id), p)
}

func (s *partnerService) Delete(ctx context.Context, id string) error {
	return exec(ctx, s.r, http.MethodDelete, resourcePath("/partners", id), nil)
}

func (s *partnerService) Agreements(ctx context.Context, id string, p ListParams) (*models.Page[models.Agreement], error) {
	return fetch[models.Page[models.Agreement]](ctx, s.r, resourcePath("/partners", id, "agreements"), p.Values())
}

func (s *partnerService) AddAgreement(ctx context.Context, id string, a models.Agreement) (*models.Agreement, error) {
	return send[models.Agreement](ctx, s.r, http.MethodPost, resourcePath("/partners", id, "agreements"), a)
}

func (s *partnerService) UpdateAgreement(ctx context.Context, id, agreementID string, a models.Agreement) (*models.Agreement, error) {
	return send[models.Agreement](ctx, s.r, http.MethodPut, resourcePath("/partners", id, "agreements", agreementID), a)
}

func (s *partnerService) DeleteAgreement(ctx context.Context, id, agreementID string) error {
	return exec(ctx, s.r, http.MethodDelete, resourcePath("/partners", id, "agreements", agreementID), nil)
}

func (s *partnerService) Active(ctx context.Context) ([]models.Partner, error) {
	return fetchSlice[models.Partner](ctx, s.r, "/partners/active", nil)
}

func (s *partnerService) ByType(ctx context.Context, typ string) ([]models.Partner, error) {
	return fetchSlice[models.Partner](ctx, s.r, "/partners/by-type", single("type", typ))
}

func (s *partnerService) Statistics(ctx context.Context, id string) (map[string]any, error) {
	return fetchStats(ctx, s.r, resourcePath("/partners", id, "statistics"))
}

func (s *partnerService) OverallStatistics(ctx context.Context) (map[string]any, error) {
	return fetchStats(ctx, s.r, "/partners/statistics")
}
