package services

import (
	"context"
	"net/http"
	"time"

	"github.com/sainaif/animalsys/internal/client/models"
)

type ScheduleService interface {
	List(ctx context.Context, p ListParams) (*models.Page[models.Schedule], error)
	Get(ctx context.Context, id string) (*models.Schedule, error)
	Create(ctx context.Context, sc models.Schedule) (*models.Schedule, error)
	Update(ctx context.Context, id string, sc models.Schedule) (*models.Schedule, error)
	Delete(ctx context.Context, id string) error
	ForVolunteer(ctx context.Context, volunteerID string, p ListParams) (*models.Page[models.Schedule], error)
	Assign(ctx context.Context, id, volunteerID string) error
	Unassign(ctx context.Context, id, volunteerID string) error
	SwapRequests(ctx context.Context, id string) ([]models.SwapRequest, error)
	RequestSwap(ctx context.Context, id string, sr models.SwapRequest) error
	ApproveSwap(ctx context.Context, id, requestID string) error
	RejectSwap(ctx context.Context, id, requestID string) error
	Between(ctx context.Context, start, end time.Time) ([]models.Schedule, error)
	Upcoming(ctx context.Context, days int) ([]models.Schedule, error)
	ByStatus(ctx context.Context, status string) ([]models.Schedule, error)
	Statistics(ctx context.Context) (map[string]any, error)
	CheckAvailability(ctx context.Context, volunteerID string, start, end time.Time) (*models.Availability, error)
}

type scheduleService struct {
	r Requester
}

func NewScheduleService(r Requester) ScheduleService {
	return &scheduleService{r: r}
}

type volunteerRef struct {
	VolunteerID string `json:"volunteer_id"`
}

func (s *scheduleService) List(ctx context.Context, p ListParams) (*models.Page[models.Schedule], error) {
	return fetch[models.Page[models.Schedule]](ctx, s.r, "/schedules", p.Values())
}

func (s *scheduleService) Get(ctx context.Context, id string) (*models.Schedule, error) {
	return fetch[models.Schedule](ctx, s.r, resourcePath("/schedules", id), nil)
}

func (s *scheduleService) Create(ctx context.Context, sc models.Schedule) (*models.Schedule, error) {
	return send[models.Schedule](ctx, s.r, http.MethodPost, "/schedules", sc)
}

func (s *scheduleService) Update(ctx context.Context, id string, sc models.Schedule) (*models.Schedule, error) {
	return send[models.Schedule](ctx, s.r, http.MethodPut, resourcePath("/schedules", id), sc)
}

func (s *scheduleService) Delete(ctx context.Context, id string) error {
	return exec(ctx, s.r, http.MethodDelete, resourcePath("/schedules", id), nil)
}

func (s *scheduleService) ForVolunteer(ctx context.Context, volunteerID string, p ListParams) (*models.Page[models.Schedule], error) {
	return fetch[models.Page[models.Schedule]](ctx, s.r, resourcePath("/volunteers", volunteerID, "schedules"), p.Values())
}

func (s *scheduleService) Assign(ctx context.Context, id, volunteerID string) error {
	return exec(ctx, s.r, http.MethodPost, resourcePath("/schedules", id, "assign"), volunteerRef{volunteerID})
}

func (s *scheduleService) Unassign(ctx context.Context, id, volunteerID string) error {
	return exec(ctx, s.r, http.MethodPost, resourcePath("/schedules", id, "unassign"), volunteerRef{volunteerID})
}

func (s *scheduleService) SwapRequests(ctx context.Context, id string) ([]models.SwapRequest, error) {
	return fetchSlice[models.SwapRequest](ctx, s.r, resourcePath("/schedules", id, "swap-requests"), nil)
}

func (s *scheduleService) RequestSwap(ctx context.Context, id string, sr models.SwapRequest) error {
	return exec(ctx, s.r, http.MethodPost, resourcePath("/schedules", id, "swap-requests"), sr)
}

func (s *scheduleService) ApproveSwap(ctx context.Context, id, requestID string) error {
	return exec(ctx, s.r, http.MethodPost, resourcePath("/schedules", id, "swap-requests", requestID, "approve"), nil)
}

func (s *scheduleService) RejectSwap(ctx context.Context, id, requestID string) error {
	return exec(ctx, s.r, http.MethodPost, resourcePath("/schedules", id, "swap-requests", requestID, "reject"), nil)
}

func (s *scheduleService) Between(ctx context.Context, start, end time.Time) ([]models.Schedule, error) {
	return fetchSlice[models.Schedule](ctx, s.r, "/schedules/date-range", dateRange(start, end))
}

// Upcoming lists shifts within days; days <= 0 uses the backend default
// of 7.
func (s *scheduleService) Upcoming(ctx context.Context, days int) ([]models.Schedule, error) {
	return fetchSlice[models.Schedule](ctx, s.r, "/schedules/upcoming", daysQuery(days))
}

func (s *scheduleService) ByStatus(ctx context.Context, status string) ([]models.Schedule, error) {
	return fetchSlice[models.Schedule](ctx, s.r, "/schedules/by-status", single("status", status))
}

func (s *scheduleService) Statistics(ctx context.Context) (map[string]any, error) {
	return fetchStats(ctx, s.r, "/schedules/statistics")
}

func (s *scheduleService) CheckAvailability(ctx context.Context, volunteerID string, start, end time.Time) (*models.Availability, error) {
	body := struct {
		VolunteerID string    `json:"volunteer_id"`
		StartTime   time.Time `json:"start_time"`
		EndTime     time.Time `json:"end_time"`
	}{volunteerID, start, end}
	return send[models.Availability](ctx, s.r, http.MethodPost, "/schedules/check-availability", body)
}
