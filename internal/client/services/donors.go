package services

import (
	"context"
	"net/http"

	"github.com/sainaif/animalsys/internal/client/models"
)

type DonorService interface {
	List(ctx context.Context, p ListParams) (*models.Page[models.Donor], error)
	Get(ctx context.Context, id string) (*models.Donor, error)
	Create(ctx context.Context, d models.Donor) (*models.Donor, error)
	Update(ctx context.Context, id string, d models.Donor) (*models.Donor, error)
	Delete(ctx context.Context, id string) error
	Donations(ctx context.Context, id string, p ListParams) (*models.Page[models.Donation], error)
	AddDonation(ctx context.Context, id string, d models.Donation) (*models.Donation, error)
	Statistics(ctx context.Context, id string) (*models.DonorStatistics, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type donorService struct {
	r Requester
}

func NewDonorService(r Requester) DonorService {
	return &donorService{r: r}
}

func (s *donorService) List(ctx context.Context, p ListParams) (*models.Page[models.Donor], error) {
	return fetch[models.Page[models.Donor]](ctx, s.r, "/donors", p.Values())
}

func (s *donorService) Get(ctx context.Context, id string) (*models.Donor, error) {
	return fetch[models.Donor](ctx, s.r, resourcePath("/donors", id), nil)
}

func (s *donorService) Create(ctx context.Context, d models.Donor) (*models.Donor, error) {
	return send[models.Donor](ctx, s.r, http.MethodPost, "/donors", d)
}

func (s *donorService) Update(ctx context.Context, id string, d models.Donor) (*models.Donor, error) {
	return send[models.Donor](ctx, s.r, http.MethodPut, resourcePath("/donors", id), d)
}

func (s *donorService) Delete(ctx context.Context, id string) error {
	return exec(ctx, s.r, http.MethodDelete, resourcePath("/donors", id), nil)
}

func (s *donorService) Donations(ctx context.Context, id string, p ListParams) (*models.Page[models.Donation], error) {
	return fetch[models.Page[models.Donation]](ctx, s.r, resourcePath("/donors", id, "donations"), p.Values())
}

func (s *donorService) AddDonation(ctx context.Context, id string, d models.Donation) (*models.Donation, error) {
	return send[models.Donation](ctx, s.r, http.MethodPost, resourcePath("/donors", id, "donations"), d)
}

func (s *donorService) Statistics(ctx context.Context, id string) (*models.DonorStatistics, error) {
	return fetch[models.DonorStatistics](ctx, s.r, resourcePath("/donors", id, "statistics"), nil)
}

func (s *donorService) UpdateStatus(ctx context.Context, id, status string) error {
	return exec(ctx, s.r, http.MethodPut, resourcePath("/donors", id, "status"), models.StatusUpdate{Status: status})
}
