package cli

import (
	"errors"
	"fmt"

	"github.com/sainaif/animalsys/internal/client/client"
	"github.com/sainaif/animalsys/internal/client/uploads"
	"github.com/sainaif/animalsys/internal/common"
)

// usageError is returned for malformed command arguments.
type usageError struct {
	usage string
}

func (e *usageError) Error() string { return "usage: " + e.usage }

func usage(u string) error { return &usageError{usage: u} }

var errUploadsDisabled = errors.New("photo uploads are not configured (set ANIMALSYS_S3_BUCKET)")

// describeError turns an error from a command into a line for the user.
func describeError(err error) string {
	var ue *usageError
	var he *client.HTTPError

	switch {
	case errors.As(err, &ue):
		return ue.Error()
	case errors.Is(err, common.ErrInvalidCredentials):
		return "Invalid email or password."
	case errors.Is(err, common.ErrLoginRequired):
		return "Please log in first."
	case errors.Is(err, common.ErrForbiddenRole):
		return "You do not have permission to do that."
	case errors.Is(err, client.ErrAuthExpired), errors.Is(err, client.ErrRefreshFailed):
		return "Your session has expired. Please log in again."
	case errors.Is(err, uploads.ErrUnsupportedFileType):
		return "Only jpg, jpeg, png, gif and webp images can be uploaded."
	case errors.As(err, &he):
		if he.Message != "" {
			return fmt.Sprintf("Server error (%d): %s", he.StatusCode, he.Message)
		}
		return fmt.Sprintf("Server error (%d).", he.StatusCode)
	case errors.Is(err, client.ErrTransport):
		return "Cannot reach the server: " + err.Error()
	}
	return "error: " + err.Error()
}
