package services

import (
	"context"
	"net/http"

	"github.com/sainaif/animalsys/internal/client/models"
)

type AnimalService interface {
	List(ctx context.Context, p ListParams) (*models.Page[models.Animal], error)
	Available(ctx context.Context) (*models.Page[models.Animal], error)
	Get(ctx context.Context, id string) (*models.Animal, error)
	Create(ctx context.Context, a models.Animal) (*models.Animal, error)
	Update(ctx context.Context, id string, a models.Animal) (*models.Animal, error)
	Delete(ctx context.Context, id string) error
	AddMedicalRecord(ctx context.Context, id string, rec models.MedicalRecord) error
	AddPhoto(ctx context.Context, id, photoURL string) error
}

type animalService struct {
	r Requester
}

func NewAnimalService(r Requester) AnimalService {
	return &animalService{r: r}
}

func (s *animalService) List(ctx context.Context, p ListParams) (*models.Page[models.Animal], error) {
	return fetch[models.Page[models.Animal]](ctx, s.r, "/animals", p.Values())
}

// Available lists animals open for adoption. The endpoint is public.
func (s *animalService) Available(ctx context.Context) (*models.Page[models.Animal], error) {
	return fetch[models.Page[models.Animal]](ctx, s.r, "/animals/available", nil)
}

func (s *animalService) Get(ctx context.Context, id string) (*models.Animal, error) {
	return fetch[models.Animal](ctx, s.r, resourcePath("/animals", id), nil)
}

func (s *animalService) Create(ctx context.Context, a models.Animal) (*models.Animal, error) {
	return send[models.Animal](ctx, s.r, http.MethodPost, "/animals", a)
}

func (s *animalService) Update(ctx context.Context, id string, a models.Animal) (*models.Animal, error) {
	return send[models.Animal](ctx, s.r, http.MethodPut, resourcePath("/animals", id), a)
}

func (s *animalService) Delete(ctx context.Context, id string) error {
	return exec(ctx, s.r, http.MethodDelete, resourcePath("/animals", id), nil)
}

func (s *animalService) AddMedicalRecord(ctx context.Context, id string, rec models.MedicalRecord) error {
	return exec(ctx, s.r, http.MethodPost, resourcePath("/animals", id, "medical-records"), rec)
}

func (s *animalService) AddPhoto(ctx context.Context, id, photoURL string) error {
	return exec(ctx, s.r, http.MethodPost, resourcePath("/animals", id, "photos"),
		models.AddPhotoRequest{PhotoURL: photoURL})
}
