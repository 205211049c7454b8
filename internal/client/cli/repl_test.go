package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sainaif/animalsys/internal/common"
)

func readerFromLines(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

type fakeExec struct {
	loggedIn bool

	calls []string
	args  [][]string
	err   error
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	return f.err
}

func (f *fakeExec) isLoggedIn(context.Context) bool { return f.loggedIn }
func (f *fakeExec) Login(context.Context) error {
	f.loggedIn = true
	return f.record("login", nil)
}
func (f *fakeExec) Logout(context.Context) error {
	f.loggedIn = false
	return f.record("logout", nil)
}
func (f *fakeExec) Whoami(context.Context) error { return f.record("whoami", nil) }
func (f *fakeExec) Animals(_ context.Context, args []string) error {
	return f.record("animals", args)
}
func (f *fakeExec) Animal(_ context.Context, args []string) error { return f.record("animal", args) }
func (f *fakeExec) Adoptions(_ context.Context, args []string) error {
	return f.record("adoptions", args)
}
func (f *fakeExec) Donors(_ context.Context, args []string) error { return f.record("donors", args) }
func (f *fakeExec) Volunteers(_ context.Context, args []string) error {
	return f.record("volunteers", args)
}
func (f *fakeExec) Inventory(_ context.Context, args []string) error {
	return f.record("inventory", args)
}
func (f *fakeExec) LowStock(_ context.Context, args []string) error { return f.record("low-stock", args) }
func (f *fakeExec) VetUpcoming(_ context.Context, args []string) error {
	return f.record("vet-upcoming", args)
}
func (f *fakeExec) UploadPhoto(_ context.Context, args []string) error {
	return f.record("upload-photo", args)
}

func capturePrints(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	prints := capturePrints(t)

	in := readerFromLines(
		"help",
		"login",
		"help",
		"",
		"whoami",
		"animals -status available",
		"animal a1",
		"adoptions",
		"donors -limit 5",
		"volunteers",
		"inventory -search kibble",
		"low-stock",
		"vet-upcoming 14",
		"upload-photo a1 /tmp/p.jpg",
		"foobar",
		"logout",
		"exit",
		"animals",
	)
	exec := &fakeExec{}

	runREPL(context.Background(), exec, func() string { return "(guest)" }, in)

	assert.Equal(t, []string{
		"login", "whoami", "animals", "animal", "adoptions", "donors", "volunteers",
		"inventory", "low-stock", "vet-upcoming", "upload-photo", "logout",
	}, exec.calls)
	assert.Equal(t, []string{"-status", "available"}, exec.args[2])
	assert.Equal(t, []string{"-search", "kibble"}, exec.args[7])
	assert.Equal(t, []string{"14"}, exec.args[9])
	assert.Equal(t, []string{"a1", "/tmp/p.jpg"}, exec.args[10])

	assert.Contains(t, *prints, guestHelp)
	assert.Contains(t, *prints, memberHelp)
	assert.Contains(t, *prints, "Unknown command: foobar")
	assert.Contains(t, *prints, "shelter (guest)> ")
	assert.Equal(t, "Bye!", (*prints)[len(*prints)-1])
}

func TestRunREPL_PrintsHandlerErrors(t *testing.T) {
	prints := capturePrints(t)

	exec := &fakeExec{loggedIn: true, err: common.ErrForbiddenRole}
	runREPL(context.Background(), exec, func() string { return "" }, readerFromLines("donors", "quit"))

	require.Equal(t, []string{"donors"}, exec.calls)
	assert.Contains(t, *prints, "You do not have permission to do that.")
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	capturePrints(t)

	exec := &fakeExec{}
	in := bufio.NewReader(strings.NewReader("whoami"))
	runREPL(context.Background(), exec, func() string { return "" }, in)

	assert.Equal(t, []string{"whoami"}, exec.calls, "a final line without newline still runs")
}

func TestRunREPL_StopsWhenContextDone(t *testing.T) {
	capturePrints(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	runREPL(ctx, exec, func() string { return "" }, readerFromLines("whoami"))
	assert.Empty(t, exec.calls)
}
