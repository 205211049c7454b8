package session

import (
	"context"
	"fmt"
	"slices"

	"github.com/sainaif/animalsys/internal/common"
)

// Requirement describes what a view or command needs from the session.
type Requirement struct {
	RequiresAuth bool
	Roles        []Role
}

// Check enforces r against the current session:
//   - authentication required and no usable token: common.ErrLoginRequired;
//   - roles listed and the user's role not among them: common.ErrForbiddenRole.
//
// A requirement with roles implies authentication.
func Check(ctx context.Context, s Store, r Requirement) error {
	if !r.RequiresAuth && len(r.Roles) == 0 {
		return nil
	}

	c, err := CurrentClaims(ctx, s)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrLoginRequired, err)
	}

	if len(r.Roles) > 0 && !slices.Contains(r.Roles, c.Role) {
		return fmt.Errorf("%w: %s", common.ErrForbiddenRole, c.Role)
	}
	return nil
}
