package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator"

	"github.com/dmitrijs2005/coursestore/internal/client/client"
	"github.com/dmitrijs2005/coursestore/internal/client/models"
	"github.com/dmitrijs2005/coursestore/internal/client/session"
	"github.com/dmitrijs2005/coursestore/internal/common"
	"github.com/dmitrijs2005/coursestore/internal/logging"
)

// ErrLoginRequired is the redirect-to-login signal: the attempted operation
// needs a signed-in user and none is present. Callers route the actor to the
// sign-in entry point instead of reporting a failure.
var ErrLoginRequired = errors.New("login required")

// recommendedCount is how many recommendations are requested for a
// signed-in user. Anonymous visitors get the "null"/0 form of the endpoint.
const recommendedCount = 5

// RegisterInput carries the registration form fields. The userName shape is
// the account-name contract shared with login-status derivation: letters
// followed by digits, 4 to 10 characters. The admin literal cannot be
// registered.
type RegisterInput struct {
	UserName string `validate:"required,min=4,max=10,username"`
	Name     string `validate:"required,min=5"`
	Email    string `validate:"required,email"`
	Address  string `validate:"required,min=3"`
}

// UserService is the client-side user gateway. Every successful fetch or
// update republishes the returned record into the session store, so all
// subscribers converge on the server-confirmed copy without re-fetching.
//
// Contract:
//   - Fetch / Refresh: load an account; nil on failure.
//   - Update: full-record replace; the server copy wins locally.
//   - Login: sign in, persist the token, flip login status. Errors are
//     returned to the caller (the sign-in form reports them), not absorbed.
//   - Register: validate input and create the account. Does not sign in.
//   - Cart / Courses / Recommended: list queries with empty fallbacks.
//   - Checkout: commit the resolved cart; returns after the server acknowledges.
//   - Logout: clear the session.
type UserService interface {
	Fetch(ctx context.Context, userName string) *models.User
	Refresh(ctx context.Context) *models.User
	Update(ctx context.Context, user models.User) (*models.User, error)
	Login(ctx context.Context, userName string) (*models.User, error)
	Register(ctx context.Context, input RegisterInput) (*models.User, error)
	Cart(ctx context.Context, userName string) []models.Course
	Courses(ctx context.Context, userName string) []models.Course
	Recommended(ctx context.Context, user *models.User) []models.Course
	Checkout(ctx context.Context, user models.User) (*models.User, error)
	Logout(ctx context.Context) error
}

type userService struct {
	client   client.UserClient
	session  *session.Store
	validate *validator.Validate
	log      logging.Logger
}

// NewUserService constructs a UserService over the given transport and
// session store.
func NewUserService(c client.UserClient, s *session.Store, log logging.Logger) UserService {
	v := validator.New()
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		name := fl.Field().String()
		return name != common.AdminUserName && session.DeriveLoginStatus(name)
	})
	return &userService{client: c, session: s, validate: v, log: log.With("component", "users")}
}

// absorb applies the uniform failure policy: log the error and, when it is
// an authorization/not-found failure during a believed-valid session, evict
// the session.
func (s *userService) absorb(ctx context.Context, op string, err error) {
	s.log.Error(ctx, op+" failed", "error", err)
	evictStaleSession(ctx, s.session, s.log, err)
}

func (s *userService) Fetch(ctx context.Context, userName string) *models.User {
	user, err := s.client.GetUser(ctx, userName)
	if err != nil {
		s.absorb(ctx, "fetch user", err)
		return nil
	}
	s.log.Debug(ctx, "fetched user", "userName", userName)
	s.session.Publish(user)
	return user
}

// Refresh re-fetches the account named by the persisted token.
func (s *userService) Refresh(ctx context.Context) *models.User {
	if !s.session.LoginStatus() {
		return nil
	}
	return s.Fetch(ctx, s.session.Token())
}

func (s *userService) Update(ctx context.Context, user models.User) (*models.User, error) {
	updated, err := s.client.UpdateUser(ctx, user)
	if err != nil {
		s.absorb(ctx, "update user", err)
		return nil, err
	}
	s.log.Debug(ctx, "updated user", "userName", updated.UserName)
	s.session.Publish(updated)
	return updated, nil
}

func (s *userService) Login(ctx context.Context, userName string) (*models.User, error) {
	account, err := s.client.Login(ctx, models.User{UserName: userName})
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if err := s.session.SignIn(ctx, account.UserName); err != nil {
		return nil, fmt.Errorf("persisting session token: %w", err)
	}
	s.log.Info(ctx, "user logged in", "userName", account.UserName)
	s.session.Publish(account)
	return account, nil
}

func (s *userService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid registration input: %w", err)
	}

	user := models.User{
		UserName:     input.UserName,
		Name:         input.Name,
		Email:        input.Email,
		Address:      input.Address,
		Courses:      []int{},
		ShoppingCart: []int{},
	}
	created, err := s.client.Register(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	s.log.Info(ctx, "user registered", "userName", created.UserName)
	return created, nil
}

func (s *userService) Cart(ctx context.Context, userName string) []models.Course {
	courses, err := s.client.GetCart(ctx, userName)
	if err != nil {
		s.absorb(ctx, "fetch cart", err)
		return []models.Course{}
	}
	return courses
}

func (s *userService) Courses(ctx context.Context, userName string) []models.Course {
	courses, err := s.client.GetCourses(ctx, userName)
	if err != nil {
		s.absorb(ctx, "fetch user courses", err)
		return []models.Course{}
	}
	return courses
}

func (s *userService) Recommended(ctx context.Context, user *models.User) []models.Course {
	userName, count := "null", 0
	if user != nil {
		userName, count = user.UserName, recommendedCount
	}
	courses, err := s.client.GetRecommended(ctx, userName, count)
	if err != nil {
		s.absorb(ctx, "fetch recommended courses", err)
		return []models.Course{}
	}
	return courses
}

func (s *userService) Checkout(ctx context.Context, user models.User) (*models.User, error) {
	updated, err := s.client.Checkout(ctx, user)
	if err != nil {
		s.absorb(ctx, "checkout", err)
		return nil, err
	}
	s.log.Info(ctx, "checkout confirmed", "userName", updated.UserName)
	s.session.Publish(updated)
	return updated, nil
}

func (s *userService) Logout(ctx context.Context) error {
	return s.session.Logout(ctx)
}
