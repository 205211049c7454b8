package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sainaif/animalsys/internal/client/client"
	"github.com/sainaif/animalsys/internal/client/models"
	"github.com/sainaif/animalsys/internal/common"
)

// AuthService covers the /auth endpoints. Login and Logout also maintain
// the session store.
type AuthService interface {
	Login(ctx context.Context, email string, password []byte) (*models.User, error)
	Logout(ctx context.Context) error
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	Profile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error)
	ChangePassword(ctx context.Context, oldPassword, newPassword string) error
}

type authService struct {
	r     Requester
	store client.TokenStore
}

func NewAuthService(r Requester, store client.TokenStore) AuthService {
	return &authService{r: r, store: store}
}

// Login exchanges credentials for a token pair and stores it. A 401 from
// the backend is reported as common.ErrInvalidCredentials rather than
// entering the refresh protocol.
func (s *authService) Login(ctx context.Context, email string, password []byte) (*models.User, error) {
	resp, err := call[models.LoginResponse](ctx, s.r, http.MethodPost, "/auth/login", &client.RequestOptions{
		Body:      models.LoginRequest{Email: email, Password: string(password)},
		NoRefresh: true,
	})
	if err != nil {
		var he *client.HTTPError
		if errors.As(err, &he) && (he.StatusCode == http.StatusUnauthorized || he.StatusCode == http.StatusForbidden) {
			return nil, fmt.Errorf("%w: %s", common.ErrInvalidCredentials, he.Message)
		}
		return nil, err
	}

	if resp.AccessToken == "" {
		return nil, fmt.Errorf("login response has no access token")
	}
	if err := s.store.SetTokens(ctx, resp.AccessToken, resp.RefreshToken); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	return &resp.User, nil
}

// Logout tells the backend the session is over and clears the store. The
// remote call is best effort; the local session is cleared regardless.
func (s *authService) Logout(ctx context.Context) error {
	_, _ = s.r.Do(ctx, http.MethodPost, "/auth/logout", &client.RequestOptions{NoRefresh: true})
	return s.store.Clear(ctx)
}

func (s *authService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	return call[models.User](ctx, s.r, http.MethodPost, "/auth/register", &client.RequestOptions{
		Body:      req,
		NoRefresh: true,
	})
}

func (s *authService) Profile(ctx context.Context) (*models.User, error) {
	return fetch[models.User](ctx, s.r, "/auth/profile", nil)
}

func (s *authService) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error) {
	return send[models.User](ctx, s.r, http.MethodPut, "/auth/profile", req)
}

func (s *authService) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	return exec(ctx, s.r, http.MethodPost, "/auth/change-password",
		models.ChangePasswordRequest{OldPassword: oldPassword, NewPassword: newPassword})
}
