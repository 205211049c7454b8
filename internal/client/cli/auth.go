package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sainaif/animalsys/internal/client/session"
	"github.com/sainaif/animalsys/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for an email and password and opens a session. The
// password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.auth.Login(ctx, email, password)
	if err != nil {
		a.logger.Info(ctx, "login failed", "email", email, "error", err)
		return err
	}

	a.sessionEnded.Store(false)
	a.userEmail = user.Email
	a.logger.Info(ctx, "logged in", "user_id", user.ID, "role", user.Role)

	name := user.FullName()
	if name == "" {
		name = user.Email
	}
	fmt.Fprintf(a.out, "Welcome, %s (%s)\n", name, user.Role)
	return nil
}

// Logout ends the session both remotely and locally.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.userEmail = ""
	a.sessionEnded.Store(false)
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// Whoami prints the profile of the logged-in user together with the role
// and expiry carried by the access token.
func (a *App) Whoami(ctx context.Context) error {
	if err := a.require(ctx, authenticated); err != nil {
		return err
	}

	user, err := a.auth.Profile(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s <%s>\n", user.FullName(), user.Email)
	fmt.Fprintf(a.out, "  id:     %s\n", user.ID)
	fmt.Fprintf(a.out, "  role:   %s\n", user.Role)

	tok, err := session.Tokens(ctx, a.store)
	if err != nil || tok == nil {
		return nil
	}
	if !tok.Expiry.IsZero() {
		fmt.Fprintf(a.out, "  token:  expires %s\n", tok.Expiry.Local().Format(time.RFC1123))
	}
	if tok.RefreshToken != "" {
		fmt.Fprintln(a.out, "  renew:  available")
	} else {
		fmt.Fprintln(a.out, "  renew:  none")
	}
	return nil
}

var (
	public        = session.Requirement{}
	authenticated = session.Requirement{RequiresAuth: true}
	adminOnly     = session.Requirement{Roles: []session.Role{session.RoleSuperAdmin, session.RoleAdmin}}
	staffOnly     = session.Requirement{Roles: []session.Role{session.RoleSuperAdmin, session.RoleAdmin, session.RoleEmployee}}
)

// require enforces r before a command runs. After the session was ended by
// the client, or when r needs a login the user does not have, the user is
// asked to log in first.
func (a *App) require(ctx context.Context, r session.Requirement) error {
	if a.sessionEnded.Load() {
		fmt.Fprintln(a.out, "Your previous session ended. Please log in.")
		if err := a.Login(ctx); err != nil {
			return err
		}
	}

	err := session.Check(ctx, a.store, r)
	if err == nil || !errors.Is(err, common.ErrLoginRequired) {
		return err
	}

	fmt.Fprintln(a.out, "This command needs a login.")
	if err := a.Login(ctx); err != nil {
		return err
	}
	return session.Check(ctx, a.store, r)
}
