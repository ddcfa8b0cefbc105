// Package client implements the HTTP transport for the course store API.
// It only translates calls into requests and status codes into sentinel
// errors; the fallback/forced-logout policy lives in the services layer.
package client

import (
	"context"

	"github.com/dmitrijs2005/coursestore/internal/client/models"
)

// UserClient is the user-facing surface of the remote API.
//
// Contract:
//   - GetUser: fetch a single account by name.
//   - ListUsers: fetch every account; the server authorizes by requesterName.
//   - GetCart / GetCourses: resolve the user's cart / enrolled course ids
//     into full catalog entries.
//   - GetRecommended: recommended courses for a user; userName may be "null"
//     with count 0 for anonymous visitors.
//   - Register / Login: account creation and sign-in; both return the
//     server-side account record.
//   - UpdateUser: full-record replace, authorized as the record's owner.
//   - Checkout: commit the resolved cart into enrollments.
//   - BanUser / UnbanUser: moderation actions, authorized by requesterName.
//
// All methods honor context cancellation and return one of the sentinel
// errors from this package on failure.
type UserClient interface {
	GetUser(ctx context.Context, userName string) (*models.User, error)
	ListUsers(ctx context.Context, requesterName string) ([]models.User, error)
	GetCart(ctx context.Context, userName string) ([]models.Course, error)
	GetCourses(ctx context.Context, userName string) ([]models.Course, error)
	GetRecommended(ctx context.Context, userName string, count int) ([]models.Course, error)
	Register(ctx context.Context, user models.User) (*models.User, error)
	Login(ctx context.Context, user models.User) (*models.User, error)
	UpdateUser(ctx context.Context, user models.User) (*models.User, error)
	Checkout(ctx context.Context, user models.User) (*models.User, error)
	BanUser(ctx context.Context, userName, requesterName string) (*models.User, error)
	UnbanUser(ctx context.Context, userName, requesterName string) (*models.User, error)
}

// CourseClient is the catalog surface of the remote API.
type CourseClient interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
	GetCourse(ctx context.Context, id int) (*models.Course, error)
	FindCourse(ctx context.Context, id int) (*models.Course, error)
	SearchCourses(ctx context.Context, title string) ([]models.Course, error)
	CreateCourse(ctx context.Context, course models.Course, userName string) (*models.Course, error)
	UpdateCourse(ctx context.Context, course models.Course, userName string) (*models.Course, error)
	DeleteCourse(ctx context.Context, id int) error
}
