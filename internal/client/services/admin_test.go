package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/coursestore/internal/client/client"
	"github.com/dmitrijs2005/coursestore/internal/client/models"
	"github.com/dmitrijs2005/coursestore/internal/logging"
)

func TestListUsers_FiltersAdminOut(t *testing.T) {
	sess := newTestSession(t, "Admin")
	fc := &fakeUserClient{ListUsersRet: []models.User{
		{UserName: "bob42"},
		{UserName: "Admin"},
		{UserName: "admin"},
		{UserName: "carol9", Banned: true},
	}}
	svc := NewAdminService(fc, sess, logging.NewNop())

	users := svc.ListUsers(context.Background())
	require.Len(t, users, 2)
	for _, u := range users {
		require.False(t, strings.EqualFold("admin", u.UserName))
	}
	require.Equal(t, "Admin", fc.LastListRequester)
}

func TestListUsers_TransportFailure_EmptyListKeepsSession(t *testing.T) {
	sess := newTestSession(t, "Admin")
	fc := &fakeUserClient{ListUsersErr: client.ErrUnavailable}
	svc := NewAdminService(fc, sess, logging.NewNop())

	users := svc.ListUsers(context.Background())
	require.NotNil(t, users)
	require.Empty(t, users)
	require.True(t, sess.LoginStatus())
}

func TestListUsers_UnauthorizedWhileLoggedIn_ForcesLogout(t *testing.T) {
	sess := newTestSession(t, "Admin")
	fc := &fakeUserClient{ListUsersErr: client.ErrUnauthorized}
	svc := NewAdminService(fc, sess, logging.NewNop())

	users := svc.ListUsers(context.Background())
	require.Empty(t, users)
	require.False(t, sess.LoginStatus(), "401/403 while logged in must evict the session")
	require.Empty(t, sess.Token())
}

func TestBan_NotFoundWhileLoggedIn_ForcesLogout(t *testing.T) {
	sess := newTestSession(t, "Admin")
	fc := &fakeUserClient{BanErr: client.ErrNotFound}
	svc := NewAdminService(fc, sess, logging.NewNop())

	_, err := svc.Ban(context.Background(), "ghost1")
	require.ErrorIs(t, err, client.ErrNotFound)
	require.False(t, sess.LoginStatus())
	require.Empty(t, sess.Token())
}

func TestBan_ResultNeverTouchesSessionSlot(t *testing.T) {
	sess := newTestSession(t, "Admin")
	sess.Publish(&models.User{UserName: "Admin"})
	fc := &fakeUserClient{BanRet: &models.User{UserName: "bob42", Banned: true}}
	svc := NewAdminService(fc, sess, logging.NewNop())

	banned, err := svc.Ban(context.Background(), "bob42")
	require.NoError(t, err)
	require.True(t, banned.Banned)
	require.Equal(t, "bob42", fc.LastModerated)
	require.Equal(t, "Admin", fc.LastModRequester)

	// the moderated record must not replace the acting admin's session user
	require.Equal(t, "Admin", sess.Current().UserName)
}

func TestUnban_Failure(t *testing.T) {
	sess := newTestSession(t, "Admin")
	fc := &fakeUserClient{UnbanErr: client.ErrUnauthorized}
	svc := NewAdminService(fc, sess, logging.NewNop())

	_, err := svc.Unban(context.Background(), "bob42")
	require.ErrorIs(t, err, client.ErrUnauthorized)
}
