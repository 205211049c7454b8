package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sainaif/animalsys/internal/client/client"
	"github.com/sainaif/animalsys/internal/client/models"
)

type DocumentService interface {
	List(ctx context.Context, p ListParams) (*models.Page[models.Document], error)
	Get(ctx context.Context, id string) (*models.Document, error)
	Create(ctx context.Context, d models.Document) (*models.Document, error)
	Update(ctx context.Context, id string, d models.Document) (*models.Document, error)
	Delete(ctx context.Context, id string) error
	Upload(ctx context.Context, fileName string, content io.Reader, fields map[string]string) (*models.Document, error)
	Download(ctx context.Context, id string) ([]byte, error)
	ByEntity(ctx context.Context, entityType, entityID string) ([]models.Document, error)
	ByType(ctx context.Context, typ string) ([]models.Document, error)
	ByCategory(ctx context.Context, category string) ([]models.Document, error)
	Search(ctx context.Context, query string) ([]models.Document, error)
	Recent(ctx context.Context, limit int) ([]models.Document, error)
	Expiring(ctx context.Context, days int) ([]models.Document, error)
	Statistics(ctx context.Context) (map[string]any, error)
}

type documentService struct {
	r Requester
}

func NewDocumentService(r Requester) DocumentService {
	return &documentService{r: r}
}

func (s *documentService) List(ctx context.Context, p ListParams) (*models.Page[models.Document], error) {
	return fetch[models.Page[models.Document]](ctx, s.r, "/documents", p.Values())
}

func (s *documentService) Get(ctx context.Context, id string) (*models.Document, error) {
	return fetch[models.Document](ctx, s.r, resourcePath("/documents", id), nil)
}

func (s *documentService) Create(ctx context.Context, d models.Document) (*models.Document, error) {
	return send[models.Document](ctx, s.r, http.MethodPost, "/documents", d)
}

func (s *documentService) Update(ctx context.Context, id string, d models.Document) (*models.Document, error) {
	return send[models.Document](ctx, s.r, http.MethodPut, resourcePath("/documents", id), d)
}

func (s *documentService) Delete(ctx context.Context, id string) error {
	return exec(ctx, s.r, http.MethodDelete, resourcePath("/documents", id), nil)
}

// Upload sends content as the "file" part of a multipart form, with fields
// (title, type, related_entity, ...) as the other parts.
func (s *documentService) Upload(ctx context.Context, fileName string, content io.Reader, fields map[string]string) (*models.Document, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return nil, fmt.Errorf("write field %s: %w", k, err)
		}
	}
	part, err := mw.CreateFormFile("file", fileName)
	if err != nil {
		return nil, fmt.Errorf("create file part: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("read %s: %w", fileName, err)
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	return call[models.Document](ctx, s.r, http.MethodPost, "/documents/upload", &client.RequestOptions{
		Body:    &buf,
		Headers: http.Header{"Content-Type": {mw.FormDataContentType()}},
	})
}

// Download returns the raw file content.
func (s *documentService) Download(ctx context.Context, id string) ([]byte, error) {
	resp, err := s.r.Do(ctx, http.MethodGet, resourcePath("/documents", id, "download"), &client.RequestOptions{
		Headers: http.Header{"Accept": {"*/*"}},
	})
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

func (s *documentService) ByEntity(ctx context.Context, entityType, entityID string) ([]models.Document, error) {
	q := url.Values{}
	setIf(q, "entity_type", entityType)
	setIf(q, "entity_id", entityID)
	return fetchSlice[models.Document](ctx, s.r, "/documents/by-entity", q)
}

func (s *documentService) ByType(ctx context.Context, typ string) ([]models.Document, error) {
	return fetchSlice[models.Document](ctx, s.r, "/documents/by-type", single("type", typ))
}

func (s *documentService) ByCategory(ctx context.Context, category string) ([]models.Document, error) {
	return fetchSlice[models.Document](ctx, s.r, "/documents/by-category", single("category", category))
}

func (s *documentService) Search(ctx context.Context, query string) ([]models.Document, error) {
	return fetchSlice[models.Document](ctx, s.r, "/documents/search", single("q", query))
}

func (s *documentService) Recent(ctx context.Context, limit int) ([]models.Document, error) {
	var q url.Values
	if limit > 0 {
		q = url.Values{"limit": {strconv.Itoa(limit)}}
	}
	return fetchSlice[models.Document](ctx, s.r, "/documents/recent", q)
}

func (s *documentService) Expiring(ctx context.Context, days int) ([]models.Document, error) {
	return fetchSlice[models.Document](ctx, s.r, "/documents/expiring", daysQuery(days))
}

func (s *documentService) Statistics(ctx context.Context) (map[string]any, error) {
	return fetchStats(ctx, s.r, "/documents/statistics")
}
