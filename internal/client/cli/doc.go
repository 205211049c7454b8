// Package cli provides shelterctl, the interactive animalsys command-line
// client.
//
// The App ties the session store, the authenticated API client and the
// resource services to a small REPL. It is also the client's Navigator:
// when a token refresh fails the session is torn down and the next command
// asks the user to log in again.
//
// Commands
//
//	login                         authenticate with email and password
//	logout                        end the session
//	whoami                        show the current user and role
//	animals [flags]               list animals
//	animal <id>                   show one animal
//	adoptions [flags]             list adoption applications
//	donors [flags]                list donors (admins only)
//	volunteers [flags]            list volunteers
//	inventory [flags]             list inventory items (staff only)
//	low-stock                     list items at or below minimum (staff only)
//	vet-upcoming [days]           list upcoming veterinary visits (staff only)
//	upload-photo <id> <file>      upload a photo for an animal (staff only)
//	help                          show available commands
//	exit | quit                   leave the program
//
// List commands accept -search, -status, -limit and -offset.
//
// The REPL is started with App.Run, which blocks until the user exits or
// the context is cancelled.
package cli
