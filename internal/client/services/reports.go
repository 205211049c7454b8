package services

import (
	"context"
	"net/http"
	"net/url"

	"github.com/sainaif/animalsys/internal/client/client"
	"github.com/sainaif/animalsys/internal/client/models"
)

// Summary reports the backend computes on demand.
const (
	ReportFinancial  = "financial"
	ReportAdoption   = "adoption"
	ReportVolunteer  = "volunteer"
	ReportInventory  = "inventory"
	ReportVeterinary = "veterinary"
	ReportCampaign   = "campaign"
	ReportStatutory  = "statutory"
	ReportDonor      = "donor"
	ReportAnimal     = "animal"
)

type ReportService interface {
	Types(ctx context.Context) ([]models.ReportType, error)
	List(ctx context.Context, p ListParams) (*models.Page[models.Report], error)
	Get(ctx context.Context, id string) (*models.Report, error)
	Generate(ctx context.Context, req models.ReportRequest) (*models.Report, error)
	Delete(ctx context.Context, id string) error
	Export(ctx context.Context, id, format string) ([]byte, error)
	Summary(ctx context.Context, kind string, params url.Values) (map[string]any, error)
}

type reportService struct {
	r Requester
}

func NewReportService(r Requester) ReportService {
	return &reportService{r: r}
}

func (s *reportService) Types(ctx context.Context) ([]models.ReportType, error) {
	return fetchSlice[models.ReportType](ctx, s.r, "/reports/types", nil)
}

func (s *reportService) List(ctx context.Context, p ListParams) (*models.Page[models.Report], error) {
	return fetch[models.Page[models.Report]](ctx, s.r, "/reports", p.Values())
}

func (s *reportService) Get(ctx context.Context, id string) (*models.Report, error) {
	return fetch[models.Report](ctx, s.r, resourcePath("/reports", id), nil)
}

func (s *reportService) Generate(ctx context.Context, req models.ReportRequest) (*models.Report, error) {
	return send[models.Report](ctx, s.r, http.MethodPost, "/reports/generate", req)
}

func (s *reportService) Delete(ctx context.Context, id string) error {
	return exec(ctx, s.r, http.MethodDelete, resourcePath("/reports", id), nil)
}

// Export returns the rendered report file (csv, pdf, xlsx...).
func (s *reportService) Export(ctx context.Context, id, format string) ([]byte, error) {
	resp, err := s.r.Do(ctx, http.MethodGet, resourcePath("/reports", id, "export"), &client.RequestOptions{
		Query:   single("format", format),
		Headers: http.Header{"Accept": {"*/*"}},
	})
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// Summary fetches one of the Report* summaries, e.g. ReportFinancial.
func (s *reportService) Summary(ctx context.Context, kind string, params url.Values) (map[string]any, error) {
	out, err := fetch[map[string]any](ctx, s.r, resourcePath("/reports", kind), params)
	if err != nil {
		return nil, err
	}
	return *out, nil
}
