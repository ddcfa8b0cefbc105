package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/coursestore/internal/client/models"
	"github.com/dmitrijs2005/coursestore/internal/logging"
)

// fakeTokens implements tokens.Repository in memory.
type fakeTokens struct {
	token  string
	GetErr error
	SetErr error
}

func (f *fakeTokens) Get(ctx context.Context) (string, error) { return f.token, f.GetErr }

func (f *fakeTokens) Set(ctx context.Context, token string) error {
	if f.SetErr != nil {
		return f.SetErr
	}
	f.token = token
	return nil
}

func (f *fakeTokens) Clear(ctx context.Context) error {
	f.token = ""
	return nil
}

func newStore(t *testing.T, token string) (*Store, *fakeTokens) {
	t.Helper()
	ft := &fakeTokens{token: token}
	s := NewStore(ft, logging.NewNop())
	require.NoError(t, s.Init(context.Background()))
	return s, ft
}

func TestDeriveLoginStatus(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"admin literal", "Admin", true},
		{"letters then digits", "ab12", true},
		{"too short", "abc", false},
		{"empty", "", false},
		{"too long", "abcdefgh123", false},
		{"digits only", "1234", false},
		{"digits before letters", "12ab", false},
		{"lowercase admin", "admin", false},
		{"ten chars", "abcdefg123", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, DeriveLoginStatus(tt.token))
		})
	}
}

func TestInit_DerivesStatusFromToken(t *testing.T) {
	s, _ := newStore(t, "bob42")
	require.True(t, s.LoginStatus())
	require.Equal(t, "bob42", s.Token())

	s2, _ := newStore(t, "bad token")
	require.False(t, s2.LoginStatus())
}

func TestPublish_IsHot(t *testing.T) {
	s, _ := newStore(t, "bob42")

	s.Publish(&models.User{UserName: "bob42", Name: "before"})

	ch, cancel := s.Subscribe()
	defer cancel()

	// nothing published since subscribing
	select {
	case <-ch:
		t.Fatal("subscriber must not see values published before subscribing")
	default:
	}

	s.Publish(&models.User{UserName: "bob42", Name: "after"})
	got := <-ch
	require.Equal(t, "after", got.Name)
}

func TestPublish_SlowSubscriberGetsLatest(t *testing.T) {
	s, _ := newStore(t, "bob42")

	ch, cancel := s.Subscribe()
	defer cancel()

	s.Publish(&models.User{UserName: "bob42", Name: "first"})
	s.Publish(&models.User{UserName: "bob42", Name: "second"})

	got := <-ch
	require.Equal(t, "second", got.Name)
}

func TestCurrent_ReturnsDisposableSnapshot(t *testing.T) {
	s, _ := newStore(t, "bob42")
	s.Publish(&models.User{UserName: "bob42", ShoppingCart: []int{1}})

	snap := s.Current()
	snap.ShoppingCart = append(snap.ShoppingCart, 99)

	require.Equal(t, []int{1}, s.Current().ShoppingCart)
}

func TestSignIn_PersistsToken(t *testing.T) {
	s, ft := newStore(t, "")
	require.False(t, s.LoginStatus())

	require.NoError(t, s.SignIn(context.Background(), "alice7"))
	require.True(t, s.LoginStatus())
	require.Equal(t, "alice7", ft.token)
}

func TestLogout_Idempotent(t *testing.T) {
	s, ft := newStore(t, "bob42")
	s.Publish(&models.User{UserName: "bob42"})

	ctx := context.Background()
	require.NoError(t, s.Logout(ctx))
	require.False(t, s.LoginStatus())
	require.Empty(t, ft.token)
	require.Nil(t, s.Current())

	require.NoError(t, s.Logout(ctx))
	require.False(t, s.LoginStatus())
}
