package services

import (
	"context"
	"net/http"

	"github.com/sainaif/animalsys/internal/client/models"
)

type CampaignService interface {
	List(ctx context.Context, p ListParams) (*models.Page[models.Campaign], error)
	Get(ctx context.Context, id string) (*models.Campaign, error)
	Create(ctx context.Context, c models.Campaign) (*models.Campaign, error)
	Update(ctx context.Context, id string, c models.Campaign) (*models.Campaign, error)
	Delete(ctx context.Context, id string) error
	Active(ctx context.Context) ([]models.Campaign, error)
	Statistics(ctx context.Context, id string) (map[string]any, error)
	OverallStatistics(ctx context.Context) (map[string]any, error)
	UpdateProgress(ctx context.Context, id string, p models.CampaignProgress) error
	Milestones(ctx context.Context, id string) ([]models.Milestone, error)
	AddMilestone(ctx context.Context, id string, m models.Milestone) error
	Donations(ctx context.Context, id string, p ListParams) (*models.Page[models.Donation], error)
}

type campaignService struct {
	r Requester
}

func NewCampaignService(r Requester) CampaignService {
	return &campaignService{r: r}
}

func (s *campaignService) List(ctx context.Context, p ListParams) (*models.Page[models.Campaign], error) {
	return fetch[models.Page[models.Campaign]](ctx, s.r, "/campaigns", p.Values())
}

func (s *campaignService) Get(ctx context.Context, id string) (*models.Campaign, error) {
	return fetch[models.Campaign](ctx, s.r, resourcePath("/campaigns", id), nil)
}

func (s *campaignService) Create(ctx context.Context, c models.Campaign) (*models.Campaign, error) {
	return send[models.Campaign](ctx, s.r, http.MethodPost, "/campaigns", c)
}

func (s *campaignService) Update(ctx context.Context, id string, c models.Campaign) (*models.Campaign, error) {
	return send[models.Campaign](ctx, s.r, http.MethodPut, resourcePath("/campaigns", id), c)
}

func (s *campaignService) Delete(ctx context.Context, id string) error {
	return exec(ctx, s.r, http.MethodDelete, resourcePath("/campaigns", id), nil)
}

func (s *campaignService) Active(ctx context.Context) ([]models.Campaign, error) {
	return fetchSlice[models.Campaign](ctx, s.r, "/campaigns/active", nil)
}

func (s *campaignService) Statistics(ctx context.Context, id string) (map[string]any, error) {
	return fetchStats(ctx, s.r, resourcePath("/campaigns", id, "statistics"))
}

func (s *campaignService) OverallStatistics(ctx context.Context) (map[string]any, error) {
	return fetchStats(ctx, s.r, "/campaigns/statistics")
}

func (s *campaignService) UpdateProgress(ctx context.Context, id string, p models.CampaignProgress) error {
	return exec(ctx, s.r, http.MethodPost, resourcePath("/campaigns", id, "progress"), p)
}

func (s *campaignService) Milestones(ctx context.Context, id string) ([]models.Milestone, error) {
	return fetchSlice[models.Milestone](ctx, s.r, resourcePath("/campaigns", id, "milestones"), nil)
}

func (s *campaignService) AddMilestone(ctx context.Context, id string, m models.Milestone) error {
	return exec(ctx, s.r, http.MethodPost, resourcePath("/campaigns", id, "milestones"), m)
}

func (s *campaignService) Donations(ctx context.Context, id string, p ListParams) (*models.Page[models.Donation], error) {
	return fetch[models.Page[models.Donation]](ctx, s.r, resourcePath("/campaigns", id, "donations"), p.Values())
}
