package session

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sainaif/animalsys/internal/common"
)

// Role is a backend user role as carried in the access token.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleEmployee   Role = "employee"
	RoleVolunteer  Role = "volunteer"
	RoleUser       Role = "user"
)

// Claims mirrors the claims the backend puts in its access tokens.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	jwt.RegisteredClaims
}

func (c *Claims) IsAdmin() bool {
	return c.Role == RoleAdmin || c.Role == RoleSuperAdmin
}

func (c *Claims) IsSuperAdmin() bool {
	return c.Role == RoleSuperAdmin
}

// ParseClaims decodes token without verifying its signature. The client
// has no key to verify with; the backend rejects forged tokens on use.
func ParseClaims(token string) (*Claims, error) {
	var c Claims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	return &c, nil
}

// CurrentClaims decodes the stored access token. It returns
// common.ErrNotAuthenticated when no token is stored.
func CurrentClaims(ctx context.Context, s Store) (*Claims, error) {
	access, err := s.AccessToken(ctx)
	if err != nil {
		return nil, err
	}
	if access == "" {
		return nil, common.ErrNotAuthenticated
	}
	return ParseClaims(access)
}
