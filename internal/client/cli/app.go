package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/sainaif/animalsys/internal/client/services"
	"github.com/sainaif/animalsys/internal/client/session"
	"github.com/sainaif/animalsys/internal/logging"
)

// PhotoUploader stores a local image and attaches it to an animal.
type PhotoUploader interface {
	UploadAnimalPhoto(ctx context.Context, animalID, path string) (string, error)
}

// Deps are the collaborators of an App. Uploader may be nil when object
// storage is not configured.
type Deps struct {
	Store      session.Store
	Auth       services.AuthService
	Animals    services.AnimalService
	Adoptions  services.AdoptionService
	Donors     services.DonorService
	Volunteers services.VolunteerService
	Inventory  services.InventoryService
	Veterinary services.VeterinaryService
	Uploader   PhotoUploader
	Logger     logging.Logger

	In  io.Reader
	Out io.Writer
}

type App struct {
	store      session.Store
	auth       services.AuthService
	animals    services.AnimalService
	adoptions  services.AdoptionService
	donors     services.DonorService
	volunteers services.VolunteerService
	inventory  services.InventoryService
	veterinary services.VeterinaryService
	uploader   PhotoUploader
	logger     logging.Logger

	reader *bufio.Reader
	out    io.Writer

	// sessionEnded is set by RedirectToLogin, possibly from another
	// goroutine, and consumed by the next command.
	sessionEnded atomic.Bool
	userEmail    string
}

func NewApp(d Deps) *App {
	a := &App{
		store:      d.Store,
		auth:       d.Auth,
		animals:    d.Animals,
		adoptions:  d.Adoptions,
		donors:     d.Donors,
		volunteers: d.Volunteers,
		inventory:  d.Inventory,
		veterinary: d.Veterinary,
		uploader:   d.Uploader,
		logger:     d.Logger,
		out:        d.Out,
	}
	if a.logger == nil {
		a.logger = logging.Discard()
	}
	if a.out == nil {
		a.out = os.Stdout
	}
	in := d.In
	if in == nil {
		in = os.Stdin
	}
	a.reader = bufio.NewReader(in)
	return a
}

// RedirectToLogin is called by the API client after an unrecoverable
// authentication failure. The credentials are already gone at this point.
func (a *App) RedirectToLogin() {
	a.sessionEnded.Store(true)
	fmt.Fprintln(a.out, "Your session has expired. Please log in again.")
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	if a.sessionEnded.Load() {
		return false
	}
	tok, err := a.store.AccessToken(ctx)
	return err == nil && tok != ""
}

func (a *App) getStatus(ctx context.Context) string {
	if !a.isLoggedIn(ctx) {
		return "(guest)"
	}
	if a.userEmail != "" {
		return fmt.Sprintf("(%s)", a.userEmail)
	}
	if c, err := session.CurrentClaims(ctx, a.store); err == nil && c.Email != "" {
		return fmt.Sprintf("(%s %s)", c.Email, c.Role)
	}
	return "(logged in)"
}

// Run starts the REPL and blocks until the user exits, input ends or ctx is
// cancelled. A login prompt is shown first when there is no stored session.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "animalsys shell (type 'help' for commands)")

	if !a.isLoggedIn(ctx) {
		if err := a.Login(ctx); err != nil {
			fmt.Fprintln(a.out, describeError(err))
		}
	}

	runREPL(ctx, a, func() string { return a.getStatus(ctx) }, a.reader)
	a.logger.Debug(ctx, "shell closed")
}
