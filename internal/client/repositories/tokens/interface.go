// Package tokens persists the client's session token: the signed-in
// username stored under a fixed key, the local analogue of the browser's
// localStorage slot. Absence of the token means logged out.
package tokens

import "context"

type Repository interface {
	// Get returns the persisted token, or "" when none is stored.
	Get(ctx context.Context) (string, error)
	// Set stores the token, replacing any previous value.
	Set(ctx context.Context, token string) error
	// Clear removes the token. Clearing an absent token is not an error.
	Clear(ctx context.Context) error
}
