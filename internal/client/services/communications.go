package services

import (
	"context"
	"net/http"
	"time"

	"github.com/sainaif/animalsys/internal/client/models"
)

type CommunicationService interface {
	List(ctx context.Context, p ListParams) (*models.Page[models.Communication], error)
	Get(ctx context.Context, id string) (*models.Communication, error)
	Create(ctx context.Context, c models.Communication) (*models.Communication, error)
	Update(ctx context.Context, id string, c models.Communication) (*models.Communication, error)
	Delete(ctx context.Context, id string) error
	Send(ctx context.Context, id string) error
	SendBulk(ctx context.Context, c models.Communication) error
	Schedule(ctx context.Context, id string, at time.Time) error
	CancelSchedule(ctx context.Context, id string) error
	Scheduled(ctx context.Context) ([]models.Communication, error)
	History(ctx context.Context, p ListParams) (*models.Page[models.Communication], error)
	ByStatus(ctx context.Context, status string) ([]models.Communication, error)
	ByType(ctx context.Context, typ string) ([]models.Communication, error)
	Recipients(ctx context.Context, typ string) ([]models.Recipient, error)
	Statistics(ctx context.Context) (map[string]any, error)

	Templates(ctx context.Context, p ListParams) (*models.Page[models.CommunicationTemplate], error)
	Template(ctx context.Context, id string) (*models.CommunicationTemplate, error)
	CreateTemplate(ctx context.Context, t models.CommunicationTemplate) (*models.CommunicationTemplate, error)
	UpdateTemplate(ctx context.Context, id string, t models.CommunicationTemplate) (*models.CommunicationTemplate, error)
	DeleteTemplate(ctx context.Context, id string) error
}

type communicationService struct {
	r Requester
}

func NewCommunicationService(r Requester) CommunicationService {
	return &communicationService{r: r}
}

const (
	communicationsPath = "/communications"
	templatesPath      = "/communications/templates"
)

func (s *communicationService) List(ctx context.Context, p ListParams) (*models.Page[models.Communication], error) {
	return fetch[models.Page[models.Communication]](ctx, s.r, communicationsPath, p.Values())
}

func (s *communicationService) Get(ctx context.Context, id string) (*models.Communication, error) {
	return fetch[models.Communication](ctx, s.r, resourcePath(communicationsPath, id), nil)
}

func (s *communicationService) Create(ctx context.Context, c models.Communication) (*models.Communication, error) {
	return send[models.Communication](ctx, s.r, http.MethodPost, communicationsPath, c)
}

func (s *communicationService) Update(ctx context.Context, id string, c models.Communication) (*models.Communication, error) {
	return send[models.Communication](ctx, s.r, http.MethodPut, resourcePath(communicationsPath, id), c)
}

func (s *communicationService) Delete(ctx context.Context, id string) error {
	return exec(ctx, s.r, http.MethodDelete, resourcePath(communicationsPath, id), nil)
}

func (s *communicationService) Send(ctx context.Context, id string) error {
	return exec(ctx, s.r, http.MethodPost, resourcePath(communicationsPath, id, "send"), nil)
}

func (s *communicationService) SendBulk(ctx context.Context, c models.Communication) error {
	return exec(ctx, s.r, http.MethodPost, communicationsPath+"/send-bulk", c)
}

func (s *communicationService) Schedule(ctx context.Context, id string, at time.Time) error {
	body := struct {
		ScheduledTime time.Time `json:"scheduled_time"`
	}{at}
	return exec(ctx, s.r, http.MethodPost, resourcePath(communicationsPath, id, "schedule"), body)
}

func (s *communicationService) CancelSchedule(ctx context.Context, id string) error {
	return exec(ctx, s.r, http.MethodPost, resourcePath(communicationsPath, id, "cancel-schedule"), nil)
}

func (s *communicationService) Scheduled(ctx context.Context) ([]models.Communication, error) {
	return fetchSlice[models.Communication](ctx, s.r, communicationsPath+"/scheduled", nil)
}

func (s *communicationService) History(ctx context.Context, p ListParams) (*models.Page[models.Communication], error) {
	return fetch[models.Page[models.Communication]](ctx, s.r, communicationsPath+"/history", p.Values())
}

func (s *communicationService) ByStatus(ctx context.Context, status string) ([]models.Communication, error) {
	return fetchSlice[models.Communication](ctx, s.r, communicationsPath+"/by-status", single("status", status))
}

func (s *communicationService) ByType(ctx context.Context, typ string) ([]models.Communication, error) {
	return fetchSlice[models.Communication](ctx, s.r, communicationsPath+"/by-type", single("type", typ))
}

func (s *communicationService) Recipients(ctx context.Context, typ string) ([]models.Recipient, error) {
	return fetchSlice[models.Recipient](ctx, s.r, communicationsPath+"/recipients", single("type", typ))
}

func (s *communicationService) Statistics(ctx context.Context) (map[string]any, error) {
	return fetchStats(ctx, s.r, communicationsPath+"/statistics")
}

func (s *communicationService) Templates(ctx context.Context, p ListParams) (*models.Page[models.CommunicationTemplate], error) {
	return fetch[models.Page[models.CommunicationTemplate]](ctx, s.r, templatesPath, p.Values())
}

func (s *communicationService) Template(ctx context.Context, id string) (*models.CommunicationTemplate, error) {
	return fetch[models.CommunicationTemplate](ctx, s.r, resourcePath(templatesPath, id), nil)
}

func (s *communicationService) CreateTemplate(ctx context.Context, t models.CommunicationTemplate) (*models.CommunicationTemplate, error) {
	return send[models.CommunicationTemplate](ctx, s.r, http.MethodPost, templatesPath, t)
}

func (s *communicationService) UpdateTemplate(ctx context.Context, id string, t models.CommunicationTemplate) (*models.CommunicationTemplate, error) {
	return send[models.CommunicationTemplate](ctx, s.r, http.MethodPut, resourcePath(templatesPath, id), t)
}

func (s *communicationService) DeleteTemplate(ctx context.Context, id string) error {
	return exec(ctx, s.r, http.MethodDelete, resourcePath(templatesPath, id), nil)
}
