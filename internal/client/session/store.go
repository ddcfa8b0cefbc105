// Package session owns the client's single authoritative session slot:
// the login flag derived from the persisted token and the last known copy
// of the signed-in user, broadcast to all subscribers.
package session

import (
	"context"
	"regexp"
	"sync"

	"github.com/dmitrijs2005/coursestore/internal/client/models"
	"github.com/dmitrijs2005/coursestore/internal/client/repositories/tokens"
	"github.com/dmitrijs2005/coursestore/internal/common"
	"github.com/dmitrijs2005/coursestore/internal/logging"
)

// userNamePattern is the "letters then digits" shape of a regular account
// name. The admin account is the literal exception checked separately.
var userNamePattern = regexp.MustCompile(`^[a-zA-Z]+[0-9]+$`)

// DeriveLoginStatus reports whether a persisted token still counts as a
// signed-in session: non-empty, 4 to 10 characters, and either the literal
// admin name or letters followed by digits. The rule is evaluated locally;
// a token that went stale server-side is only caught when a later fetch
// fails and forces a logout.
func DeriveLoginStatus(token string) bool {
	if len(token) < 4 || len(token) > 10 {
		return false
	}
	return token == common.AdminUserName || userNamePattern.MatchString(token)
}

// Store is the process-wide session state container. All writes funnel
// through its methods and are serialized by the internal mutex, so racing
// request completions can never interleave partial updates into the slot.
//
// Publishing is hot: a subscriber only observes values published after it
// subscribed, and only the single current value is retained.
type Store struct {
	mu       sync.RWMutex
	tokens   tokens.Repository
	log      logging.Logger
	token    string
	loggedIn bool
	current  *models.User
	subs     map[int]chan *models.User
	nextSub  int
}

// NewStore builds a Store over the given token repository.
func NewStore(repo tokens.Repository, log logging.Logger) *Store {
	return &Store{
		tokens: repo,
		log:    log.With("component", "session"),
		subs:   make(map[int]chan *models.User),
	}
}

// Init loads the persisted token and derives the initial login status.
// Called once at startup.
func (s *Store) Init(ctx context.Context) error {
	token, err := s.tokens.Get(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.loggedIn = DeriveLoginStatus(token)
	return nil
}

// LoginStatus reports whether the session currently counts as signed in.
func (s *Store) LoginStatus() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loggedIn
}

// Token returns the persisted username token, or "" when logged out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Current returns a snapshot of the last published user, or nil when none
// has been published. Callers own the copy and may mutate it freely.
func (s *Store) Current() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// Publish replaces the session user and fans the new value out to every
// subscriber. Slow subscribers miss intermediate values; the channel always
// ends up holding the latest one.
func (s *Store) Publish(user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = user.Clone()
	for _, ch := range s.subs {
		select {
		case ch <- user.Clone():
		default:
			// drop the stale value, then retry once
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- user.Clone():
			default:
			}
		}
	}
}

// Subscribe registers a new observer of the session user. The returned
// cancel func must be called when the observer goes away.
func (s *Store) Subscribe() (<-chan *models.User, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan *models.User, 1)
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
	return ch, cancel
}

// SignIn persists userName as the session token and flips the login flag.
// Called by the gateway after a successful login round-trip.
func (s *Store) SignIn(ctx context.Context, userName string) error {
	if err := s.tokens.Set(ctx, userName); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = userName
	s.loggedIn = true
	return nil
}

// Logout clears the persisted token, flips the login flag off, and empties
// the session slot. Idempotent.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.tokens.Clear(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.loggedIn = false
	s.current = nil
	s.log.Info(ctx, "session cleared")
	return nil
}
