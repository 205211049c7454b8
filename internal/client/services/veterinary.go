package services

import (
	"context"
	"net/http"

	"github.com/sainaif/animalsys/internal/client/models"
)

type VeterinaryService interface {
	List(ctx context.Context, p ListParams) (*models.Page[models.VeterinaryVisit], error)
	Get(ctx context.Context, id string) (*models.VeterinaryVisit, error)
	Create(ctx context.Context, v models.VeterinaryVisit) (*models.VeterinaryVisit, error)
	Update(ctx context.Context, id string, v models.VeterinaryVisit) (*models.VeterinaryVisit, error)
	Delete(ctx context.Context, id string) error
	AnimalVisits(ctx context.Context, animalID string, p ListParams) (*models.Page[models.VeterinaryVisit], error)
	Vaccinations(ctx context.Context, animalID string) ([]models.Vaccination, error)
	AddVaccination(ctx context.Context, animalID string, v models.Vaccination) error
	Medications(ctx context.Context, animalID string) ([]models.Medication, error)
	AddMedication(ctx context.Context, animalID string, m models.Medication) error
	Upcoming(ctx context.Context, days int) ([]models.VeterinaryVisit, error)
	Statistics(ctx context.Context) (map[string]any, error)
	Veterinarians(ctx context.Context) ([]models.Veterinarian, error)
	Clinics(ctx context.Context) ([]models.Clinic, error)
}

type veterinaryService struct {
	r Requester
}

func NewVeterinaryService(r Requester) VeterinaryService {
	return &veterinaryService{r: r}
}

const visitsPath = "/veterinary/visits"

func (s *veterinaryService) List(ctx context.Context, p ListParams) (*models.Page[models.VeterinaryVisit], error) {
	return fetch[models.Page[models.VeterinaryVisit]](ctx, s.r, visitsPath, p.Values())
}

func (s *veterinaryService) Get(ctx context.Context, id string) (*models.VeterinaryVisit, error) {
	return fetch[models.VeterinaryVisit](ctx, s.r, resourcePath(visitsPath, id), nil)
}

func (s *veterinaryService) Create(ctx context.Context, v models.VeterinaryVisit) (*models.VeterinaryVisit, error) {
	return send[models.VeterinaryVisit](ctx, s.r, http.MethodPost, visitsPath, v)
}

func (s *veterinaryService) Update(ctx context.Context, id string, v models.VeterinaryVisit) (*models.VeterinaryVisit, error) {
	return send[models.VeterinaryVisit](ctx, s.r, http.MethodPut, resourcePath(visitsPath, id), v)
}

func (s *veterinaryService) Delete(ctx context.Context, id string) error {
	return exec(ctx, s.r, http.MethodDelete, resourcePath(visitsPath, id), nil)
}

func (s *veterinaryService) AnimalVisits(ctx context.Context, animalID string, p ListParams) (*models.Page[models.VeterinaryVisit], error) {
	return fetch[models.Page[models.VeterinaryVisit]](ctx, s.r,
		resourcePath("/animals", animalID, "veterinary", "visits"), p.Values())
}

func (s *veterinaryService) Vaccinations(ctx context.Context, animalID string) ([]models.Vaccination, error) {
	out, err := fetch[[]models.Vaccination](ctx, s.r, resourcePath("/animals", animalID, "vaccinations"), nil)
	if err != nil {
		return nil, err
	}
	return *out, nil
}

func (s *veterinaryService) AddVaccination(ctx context.Context, animalID string, v models.Vaccination) error {
	return exec(ctx, s.r, http.MethodPost, resourcePath("/animals", animalID, "vaccinations"), v)
}

func (s *veterinaryService) Medications(ctx context.Context, animalID string) ([]models.Medication, error) {
	out, err := fetch[[]models.Medication](ctx, s.r, resourcePath("/animals", animalID, "medications"), nil)
	if err != nil {
		return nil, err
	}
	return *out, nil
}

func (s *veterinaryService) AddMedication(ctx context.Context, animalID string, m models.Medication) error {
	return exec(ctx, s.r, http.MethodPost, resourcePath("/animals", animalID, "medications"), m)
}

func (s *veterinaryService) Upcoming(ctx context.Context, days int) ([]models.VeterinaryVisit, error) {
	out, err := fetch[[]models.VeterinaryVisit](ctx, s.r, "/veterinary/upcoming", daysQuery(days))
	if err != nil {
		return nil, err
	}
	return *out, nil
}

func (s *veterinaryService) Statistics(ctx context.Context) (map[string]any, error) {
	out, err := fetch[map[string]any](ctx, s.r, "/veterinary/statistics", nil)
	if err != nil {
		return nil, err
	}
	return *out, nil
}

func (s *veterinaryService) Veterinarians(ctx context.Context) ([]models.Veterinarian, error) {
	return fetchSlice[models.Veterinarian](ctx, s.r, "/veterinary/veterinarians", nil)
}

func (s *veterinaryService) Clinics(ctx context.Context) ([]models.Clinic, error) {
	return fetchSlice[models.Clinic](ctx, s.r, "/veterinary/clinics", nil)
}
