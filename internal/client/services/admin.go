package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/coursestore/internal/client/client"
	"github.com/dmitrijs2005/coursestore/internal/client/models"
	"github.com/dmitrijs2005/coursestore/internal/client/session"
	"github.com/dmitrijs2005/coursestore/internal/common"
	"github.com/dmitrijs2005/coursestore/internal/logging"
)

// AdminService performs user moderation on behalf of the signed-in admin.
// The requester identity is always taken from the session token.
//
// Ban/unban responses describe the moderated user, not the acting admin,
// so they are returned to the caller and never written into the session
// slot.
type AdminService interface {
	ListUsers(ctx context.Context) []models.User
	Ban(ctx context.Context, userName string) (*models.User, error)
	Unban(ctx context.Context, userName string) (*models.User, error)
}

type adminService struct {
	client  client.UserClient
	session *session.Store
	log     logging.Logger
}

// NewAdminService builds the moderation service over the user transport.
func NewAdminService(c client.UserClient, s *session.Store, log logging.Logger) AdminService {
	return &adminService{client: c, session: s, log: log.With("component", "admin")}
}

// ListUsers fetches all accounts and filters out the admin itself: the
// admin never appears in its own moderation list. Failures degrade to an
// empty list; an authorization/not-found failure while signed in evicts the
// session like every other gateway call.
func (s *adminService) ListUsers(ctx context.Context) []models.User {
	users, err := s.client.ListUsers(ctx, s.session.Token())
	if err != nil {
		s.log.Error(ctx, "list users failed", "error", err)
		evictStaleSession(ctx, s.session, s.log, err)
		return []models.User{}
	}

	filtered := make([]models.User, 0, len(users))
	for _, u := range users {
		if !common.IsAdmin(u.UserName) {
			filtered = append(filtered, u)
		}
	}
	return filtered
}

func (s *adminService) Ban(ctx context.Context, userName string) (*models.User, error) {
	return s.moderate(ctx, userName, "ban", s.client.BanUser)
}

func (s *adminService) Unban(ctx context.Context, userName string) (*models.User, error) {
	return s.moderate(ctx, userName, "unban", s.client.UnbanUser)
}

func (s *adminService) moderate(ctx context.Context, userName, action string,
	call func(ctx context.Context, userName, requesterName string) (*models.User, error)) (*models.User, error) {

	updated, err := call(ctx, userName, s.session.Token())
	if err != nil {
		s.log.Error(ctx, action+" failed", "userName", userName, "error", err)
		evictStaleSession(ctx, s.session, s.log, err)
		return nil, fmt.Errorf("%s %s: %w", action, userName, err)
	}
	s.log.Info(ctx, action+" applied", "userName", updated.UserName, "banned", updated.Banned)
	return updated, nil
}
