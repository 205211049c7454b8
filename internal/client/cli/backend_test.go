package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/sainaif/animalsys/internal/client/client"
	"github.com/sainaif/animalsys/internal/client/models"
	"github.com/sainaif/animalsys/internal/client/services"
	"github.com/sainaif/animalsys/internal/client/session"
)

const testPassword = "secret"

// shelterBackend is a minimal REST backend for the shell tests. Accounts
// are keyed by email; the role is taken from the part before '@'.
type shelterBackend struct {
	t   *testing.T
	srv *httptest.Server

	mu          sync.Mutex
	seq         int
	valid       map[string]bool
	refreshFail bool
	queries     map[string]url.Values
	hits        map[string]int
}

func newShelterBackend(t *testing.T) *shelterBackend {
	t.Helper()
	b := &shelterBackend{
		t:       t,
		valid:   map[string]bool{},
		queries: map[string]url.Values{},
		hits:    map[string]int{},
	}

	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", b.handleLogin)
		r.Post("/auth/logout", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
		})
		r.Post("/auth/refresh", b.handleRefresh)

		r.Get("/animals", b.record(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, models.Page[models.Animal]{
				Data: []models.Animal{
					{ID: "a1", Name: "Burek", Species: "dog", Breed: "mixed", AgeYears: 3, Status: models.AnimalAvailable},
					{ID: "a2", Name: "Mruczek", Species: "cat", AgeMonths: 5, Status: models.AnimalFostered},
				},
				Total: 2, Limit: 20,
			})
		}))
		r.Get("/animals/{id}", b.record(func(w http.ResponseWriter, r *http.Request) {
			if chi.URLParam(r, "id") != "a1" {
				writeJSON(w, http.StatusNotFound, map[string]string{"error": "animal not found"})
				return
			}
			writeJSON(w, http.StatusOK, models.Animal{
				ID: "a1", Name: "Burek", Species: "dog", MicrochipID: "616093900001",
				AdoptionFee: 150, Photos: []string{"https://cdn/p1.jpg"},
			})
		}))

		r.Group(func(r chi.Router) {
			r.Use(b.requireToken)
			r.Get("/auth/profile", b.record(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, models.User{ID: "u1", Email: "admin@shelter.test", FirstName: "Ada", LastName: "Admin", Role: "admin"})
			}))
			r.Get("/adoptions", b.record(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, models.Page[models.Adoption]{
					Data:  []models.Adoption{{ID: "ad1", AnimalID: "a1", ApplicantFirstName: "Jan", ApplicantLastName: "Kowalski", Email: "jan@example.com", Status: models.AdoptionPending}},
					Total: 1,
				})
			}))
			r.Get("/donors", b.record(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, models.Page[models.Donor]{
					Data:  []models.Donor{{ID: "d1", Type: "organization", OrganizationName: "Pet Food Inc", DonationCount: 4, TotalDonated: 1250.5}},
					Total: 1,
				})
			}))
			r.Get("/inventory", b.record(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, models.Page[models.InventoryItem]{
					Data: []models.InventoryItem{
						{ID: "i1", Name: "Kibble", Category: "food", Unit: "kg", QuantityInStock: 40, MinimumQuantity: 10},
						{ID: "i2", Name: "Bandages", Category: "medical", Unit: "pcs", QuantityInStock: 3, MinimumQuantity: 20},
					},
					Total: 2,
				})
			}))
			r.Get("/inventory/low-stock", b.record(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, []models.InventoryItem{
					{ID: "i2", Name: "Bandages", Category: "medical", Unit: "pcs", QuantityInStock: 3, MinimumQuantity: 20},
				})
			}))
			r.Get("/veterinary/upcoming", b.record(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, []models.VeterinaryVisit{
					{AnimalID: "a1", VisitType: "checkup", VeterinarianName: "Dr Nowak", Reason: "annual",
						VisitDate: time.Date(2030, 1, 2, 10, 0, 0, 0, time.UTC)},
				})
			}))
			r.Get("/volunteers", b.record(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, models.Page[models.Volunteer]{
					Data:  []models.Volunteer{{ID: "v1", FirstName: "Ola", LastName: "Lis", Email: "ola@example.com", Status: "active", TotalHours: 12.5}},
					Total: 1,
				})
			}))
		})
	})

	b.srv = httptest.NewServer(r)
	t.Cleanup(b.srv.Close)
	return b
}

func (b *shelterBackend) baseURL() string { return b.srv.URL + "/api/v1" }

func (b *shelterBackend) record(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.queries[r.URL.Path] = r.URL.Query()
		b.hits[r.URL.Path]++
		b.mu.Unlock()
		h(w, r)
	}
}

func (b *shelterBackend) hitCount(path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hits["/api/v1"+path]
}

func (b *shelterBackend) query(path string) url.Values {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.queries["/api/v1"+path]
}

// expireSessions invalidates every issued access token and makes refresh
// fail.
func (b *shelterBackend) expireSessions() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.valid = map[string]bool{}
	b.refreshFail = true
}

func (b *shelterBackend) issue(email string) string {
	b.mu.Lock()
	b.seq++
	jti := fmt.Sprintf("jti-%d", b.seq)
	b.mu.Unlock()

	role, _, _ := strings.Cut(email, "@")
	c := session.Claims{
		UserID: "u-" + role,
		Email:  email,
		Role:   session.Role(role),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte("backend-key"))
	require.NoError(b.t, err)

	b.mu.Lock()
	b.valid[tok] = true
	b.mu.Unlock()
	return tok
}

func (b *shelterBackend) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Password != testPassword {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		return
	}
	role, _, _ := strings.Cut(req.Email, "@")
	writeJSON(w, http.StatusOK, models.LoginResponse{
		AccessToken:  b.issue(req.Email),
		RefreshToken: "refresh-" + role,
		User:         models.User{ID: "u-" + role, Email: req.Email, FirstName: "Test", LastName: "User", Role: role},
	})
}

func (b *shelterBackend) handleRefresh(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	fail := b.refreshFail
	b.mu.Unlock()
	if fail {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "refresh token revoked"})
		return
	}
	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)
	role := strings.TrimPrefix(body.RefreshToken, "refresh-")
	writeJSON(w, http.StatusOK, map[string]string{"access_token": b.issue(role + "@shelter.test")})
}

func (b *shelterBackend) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tok := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		b.mu.Lock()
		ok := b.valid[tok]
		b.mu.Unlock()
		if !ok {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "token expired"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// fakeUploader records photo uploads.
type fakeUploader struct {
	animalID, path string
	err            error
}

func (f *fakeUploader) UploadAnimalPhoto(_ context.Context, animalID, path string) (string, error) {
	f.animalID, f.path = animalID, path
	if f.err != nil {
		return "", f.err
	}
	return "https://cdn.example/animals/" + animalID + "/photo.jpg", nil
}

// shell bundles an App wired to a shelterBackend through the real client
// and services.
type shell struct {
	app     *App
	store   *session.MemoryStore
	out     *bytes.Buffer
	backend *shelterBackend
	logins  int
}

// newShell builds the app. Login prompts answer with email and
// testPassword; each prompt is counted in logins.
func newShell(t *testing.T, email string, uploader PhotoUploader) *shell {
	t.Helper()

	s := &shell{
		store:   session.NewMemoryStore("", ""),
		out:     &bytes.Buffer{},
		backend: newShelterBackend(t),
	}

	var app *App
	c := client.New(s.backend.baseURL(), s.store,
		client.WithNavigator(client.NavigatorFunc(func() { app.RedirectToLogin() })),
		client.WithTimeout(5*time.Second),
	)

	app = NewApp(Deps{
		Store:      s.store,
		Auth:       services.NewAuthService(c, s.store),
		Animals:    services.NewAnimalService(c),
		Adoptions:  services.NewAdoptionService(c),
		Donors:     services.NewDonorService(c),
		Volunteers: services.NewVolunteerService(c),
		Inventory:  services.NewInventoryService(c),
		Veterinary: services.NewVeterinaryService(c),
		Uploader:   uploader,
		In:         strings.NewReader(""),
		Out:        s.out,
	})
	s.app = app

	origText, origPass := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, prompt string, w io.Writer) (string, error) {
		s.logins++
		fmt.Fprintln(w, prompt)
		return email, nil
	}
	getPassword = func(io.Writer) ([]byte, error) { return []byte(testPassword), nil }
	t.Cleanup(func() { getSimpleText, getPassword = origText, origPass })

	return s
}

func (s *shell) login(t *testing.T) {
	t.Helper()
	require.NoError(t, s.app.Login(t.Context()))
	s.out.Reset()
	s.logins = 0
}
