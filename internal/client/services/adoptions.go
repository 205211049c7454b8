package services

import (
	"context"
	"net/http"

	"github.com/sainaif/animalsys/internal/client/models"
)

type AdoptionService interface {
	List(ctx context.Context, p ListParams) (*models.Page[models.Adoption], error)
	Get(ctx context.Context, id string) (*models.Adoption, error)
	Create(ctx context.Context, a models.Adoption) (*models.Adoption, error)
	Update(ctx context.Context, id string, a models.Adoption) (*models.Adoption, error)
	UpdateStatus(ctx context.Context, id string, status models.AdoptionStatus) (*models.Adoption, error)
	ScheduleInterview(ctx context.Context, id string, iv models.Interview) (*models.Adoption, error)
	Approve(ctx context.Context, id string) (*models.Adoption, error)
	Reject(ctx context.Context, id, reason string) (*models.Adoption, error)
	Complete(ctx context.Context, id string, c models.CompleteAdoption) (*models.Adoption, error)
	UploadContract(ctx context.Context, id, contractURL string) error
	AddFollowUp(ctx context.Context, id string, f models.FollowUp) error
}

type adoptionService struct {
	r Requester
}

func NewAdoptionService(r Requester) AdoptionService {
	return &adoptionService{r: r}
}

func (s *adoptionService) List(ctx context.Context, p ListParams) (*models.Page[models.Adoption], error) {
	return fetch[models.Page[models.Adoption]](ctx, s.r, "/adoptions", p.Values())
}

func (s *adoptionService) Get(ctx context.Context, id string) (*models.Adoption, error) {
	return fetch[models.Adoption](ctx, s.r, resourcePath("/adoptions", id), nil)
}

func (s *adoptionService) Create(ctx context.Context, a models.Adoption) (*models.Adoption, error) {
	return send[models.Adoption](ctx, s.r, http.MethodPost, "/adoptions", a)
}

func (s *adoptionService) Update(ctx context.Context, id string, a models.Adoption) (*models.Adoption, error) {
	return send[models.Adoption](ctx, s.r, http.MethodPut, resourcePath("/adoptions", id), a)
}

func (s *adoptionService) UpdateStatus(ctx context.Context, id string, status models.AdoptionStatus) (*models.Adoption, error) {
	return send[models.Adoption](ctx, s.r, http.MethodPut, resourcePath("/adoptions", id, "status"),
		models.StatusUpdate{Status: string(status)})
}

func (s *adoptionService) ScheduleInterview(ctx context.Context, id string, iv models.Interview) (*models.Adoption, error) {
	return send[models.Adoption](ctx, s.r, http.MethodPut, resourcePath("/adoptions", id, "interview"), iv)
}

func (s *adoptionService) Approve(ctx context.Context, id string) (*models.Adoption, error) {
	return send[models.Adoption](ctx, s.r, http.MethodPut, resourcePath("/adoptions", id, "approve"), nil)
}

func (s *adoptionService) Reject(ctx context.Context, id, reason string) (*models.Adoption, error) {
	return send[models.Adoption](ctx, s.r, http.MethodPut, resourcePath("/adoptions", id, "reject"),
		map[string]string{"reason": reason})
}

func (s *adoptionService) Complete(ctx context.Context, id string, c models.CompleteAdoption) (*models.Adoption, error) {
	return send[models.Adoption](ctx, s.r, http.MethodPut, resourcePath("/adoptions", id, "complete"), c)
}

func (s *adoptionService) UploadContract(ctx context.Context, id, contractURL string) error {
	return exec(ctx, s.r, http.MethodPost, resourcePath("/adoptions", id, "contract"),
		map[string]string{"contract_url": contractURL})
}

func (s *adoptionService) AddFollowUp(ctx context.Context, id string, f models.FollowUp) error {
	return exec(ctx, s.r, http.MethodPost, resourcePath("/adoptions", id, "follow-ups"), f)
}
