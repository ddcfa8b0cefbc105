package services

import (
	"context"

	"github.com/dmitrijs2005/coursestore/internal/client/client"
	"github.com/dmitrijs2005/coursestore/internal/client/session"
	"github.com/dmitrijs2005/coursestore/internal/logging"
)

// evictStaleSession is the session-eviction half of the failure policy,
// shared by every gateway-backed service: an authorization/not-found failure
// that arrives while the session believes it is signed in means the
// persisted token no longer resolves server-side, so the session is cleared.
// Any other error class leaves the session alone.
func evictStaleSession(ctx context.Context, sess *session.Store, log logging.Logger, err error) {
	if client.IsAuthOrMissing(err) && sess.LoginStatus() {
		log.Warn(ctx, "session user no longer resolves, forcing logout")
		if lerr := sess.Logout(ctx); lerr != nil {
			log.Error(ctx, "forced logout failed", "error", lerr)
		}
	}
}
