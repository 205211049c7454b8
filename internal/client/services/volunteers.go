package services

import (
	"context"
	"net/http"

	"github.com/sainaif/animalsys/internal/client/models"
)

type VolunteerService interface {
	List(ctx context.Context, p ListParams) (*models.Page[models.Volunteer], error)
	Get(ctx context.Context, id string) (*models.Volunteer, error)
	Create(ctx context.Context, v models.Volunteer) (*models.Volunteer, error)
	Update(ctx context.Context, id string, v models.Volunteer) (*models.Volunteer, error)
	Delete(ctx context.Context, id string) error
	AddTraining(ctx context.Context, id string, t models.Training) error
	LogHours(ctx context.Context, id string, h models.HoursLog) error
	Statistics(ctx context.Context, id string) (*models.VolunteerStatistics, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type volunteerService struct {
	r Requester
}

func NewVolunteerService(r Requester) VolunteerService {
	return &volunteerService{r: r}
}

func (s *volunteerService) List(ctx context.Context, p ListParams) (*models.Page[models.Volunteer], error) {
	return fetch[models.Page[models.Volunteer]](ctx, s.r, "/volunteers", p.Values())
}

func (s *volunteerService) Get(ctx context.Context, id string) (*models.Volunteer, error) {
	return fetch[models.Volunteer](ctx, s.r, resourcePath("/volunteers", id), nil)
}

func (s *volunteerService) Create(ctx context.Context, v models.Volunteer) (*models.Volunteer, error) {
	return send[models.Volunteer](ctx, s.r, http.MethodPost, "/volunteers", v)
}

func (s *volunteerService) Update(ctx context.Context, id string, v models.Volunteer) (*models.Volunteer, error) {
	return send[models.Volunteer](ctx, s.r, http.MethodPut, resourcePath("/volunteers", id), v)
}

func (s *volunteerService) Delete(ctx context.Context, id string) error {
	return exec(ctx, s.r, http.MethodDelete, resourcePath("/volunteers", id), nil)
}

func (s *volunteerService) AddTraining(ctx context.Context, id string, t models.Training) error {
	return exec(ctx, s.r, http.MethodPost, resourcePath("/volunteers", id, "trainings"), t)
}

func (s *volunteerService) LogHours(ctx context.Context, id string, h models.HoursLog) error {
	return exec(ctx, s.r, http.MethodPost, resourcePath("/volunteers", id, "hours"), h)
}

func (s *volunteerService) Statistics(ctx context.Context, id string) (*models.VolunteerStatistics, error) {
	return fetch[models.VolunteerStatistics](ctx, s.r, resourcePath("/volunteers", id, "statistics"), nil)
}

func (s *volunteerService) UpdateStatus(ctx context.Context, id, status string) error {
	return exec(ctx, s.r, http.MethodPut, resourcePath("/volunteers", id, "status"), models.StatusUpdate{Status: status})
}
