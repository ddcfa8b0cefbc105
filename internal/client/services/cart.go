package services

import (
	"context"
	"errors"
	"math"
	"slices"

	"github.com/dmitrijs2005/coursestore/internal/client/models"
	"github.com/dmitrijs2005/coursestore/internal/client/session"
	"github.com/dmitrijs2005/coursestore/internal/logging"
)

// ErrEmptyCart signals a checkout with nothing to buy. The cart fetch
// degrades to an empty list on failure, so this also stops a transport
// failure from turning into a zero-item order.
var ErrEmptyCart = errors.New("cart is empty")

// priceEpsilon nudges the sum before half-up rounding so totals like
// 10.005 land on 10.01 instead of being truncated by binary float error.
const priceEpsilon = 2.220446049250313e-16

// CartTotal sums the prices of the given courses and rounds to two decimal
// places, half up, after epsilon correction.
func CartTotal(courses []models.Course) float64 {
	var sum float64
	for _, c := range courses {
		sum += c.Price
	}
	return math.Round((sum+priceEpsilon)*100) / 100
}

// CartService reconciles the session user's shopping cart and enrollments
// against the server.
//
// Invariant: ShoppingCart and Courses stay disjoint — a course that is
// already owned is never added to the cart, and checkout moves ids from the
// cart into the enrollments in one server-side step.
//
// Every mutation with no signed-in user returns ErrLoginRequired without
// touching the network.
type CartService interface {
	AddToCart(ctx context.Context, course models.Course) (*models.User, error)
	RemoveFromCart(ctx context.Context, courseID int) (*models.User, error)
	Checkout(ctx context.Context) (*models.User, float64, error)
}

type cartService struct {
	users   UserService
	session *session.Store
	log     logging.Logger
}

// NewCartService builds the reconciler over the user gateway.
func NewCartService(users UserService, s *session.Store, log logging.Logger) CartService {
	return &cartService{users: users, session: s, log: log.With("component", "cart")}
}

// AddToCart appends the course id to the session user's cart and pushes the
// whole record to the server. Adding a course that is already in the cart or
// already owned is a silent no-op, which keeps the operation idempotent and
// the cart/enrollment lists disjoint.
func (s *cartService) AddToCart(ctx context.Context, course models.Course) (*models.User, error) {
	user := s.session.Current()
	if user == nil {
		return nil, ErrLoginRequired
	}

	if user.InCart(course.ID) || user.Owns(course.ID) {
		s.log.Debug(ctx, "course already in cart or owned", "courseID", course.ID)
		return user, nil
	}

	user.ShoppingCart = append(user.ShoppingCart, course.ID)
	return s.users.Update(ctx, *user)
}

// RemoveFromCart drops the course id from the cart if present and always
// issues the update round-trip; removing an absent id degenerates to an
// idempotent no-op update.
func (s *cartService) RemoveFromCart(ctx context.Context, courseID int) (*models.User, error) {
	user := s.session.Current()
	if user == nil {
		return nil, ErrLoginRequired
	}

	user.ShoppingCart = slices.DeleteFunc(user.ShoppingCart, func(id int) bool {
		return id == courseID
	})
	return s.users.Update(ctx, *user)
}

// Checkout resolves the cart into courses, computes the total, and commits
// the purchase. It returns only after the server has acknowledged, so the
// caller can navigate away knowing the enrollment is confirmed.
func (s *cartService) Checkout(ctx context.Context) (*models.User, float64, error) {
	user := s.session.Current()
	if user == nil {
		return nil, 0, ErrLoginRequired
	}

	cart := s.users.Cart(ctx, user.UserName)
	if len(cart) == 0 {
		return nil, 0, ErrEmptyCart
	}
	ids := make([]int, 0, len(cart))
	for _, c := range cart {
		ids = append(ids, c.ID)
	}
	total := CartTotal(cart)

	order := models.User{UserName: user.UserName, Courses: ids}
	updated, err := s.users.Checkout(ctx, order)
	if err != nil {
		return nil, 0, err
	}
	return updated, total, nil
}
