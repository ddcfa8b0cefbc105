package client

import "errors"

var (
	// ErrUnavailable marks transport failures and 5xx responses.
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnauthorized marks 401/403 responses.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound marks 404 responses.
	ErrNotFound = errors.New("not found")
	// ErrConflict marks 409 responses (e.g. registering a taken username).
	ErrConflict = errors.New("already exists")
	// ErrBadRequest marks 400 responses.
	ErrBadRequest = errors.New("bad request")
)

// IsAuthOrMissing reports whether err belongs to the authorization/not-found
// error class. While a session believes it is logged in, this class forces a
// logout because the signed-in user no longer resolves server-side.
func IsAuthOrMissing(err error) bool {
	return errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrNotFound)
}
