package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/dmitrijs2005/coursestore/internal/client/models"
	"github.com/dmitrijs2005/coursestore/internal/logging"
)

// authenticatedRequest is the {data, userName} envelope the API expects on
// authenticated writes.
type authenticatedRequest[T any] struct {
	Data     T      `json:"data"`
	UserName string `json:"userName"`
}

// HTTPClient implements UserClient and CourseClient over JSON/HTTP.
// Outbound calls share a token-bucket limiter so a burst of UI events cannot
// flood the server, and every request carries an X-Request-Id for log
// correlation.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	log     logging.Logger
}

// NewHTTPClient constructs a client for the API at baseURL. rps/burst
// configure the outbound throttle.
func NewHTTPClient(baseURL string, timeout time.Duration, rps float64, burst int, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		log:     log.With("component", "api"),
	}
}

// do performs one JSON round-trip. body==nil sends no payload, out==nil
// discards the response body. Failures map to the package sentinels.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		payload = bytes.NewReader(b)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, payload)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	c.log.Debug(ctx, "api request", "method", method, "path", path, "requestID", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := statusError(resp.StatusCode); err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func statusError(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusBadRequest:
		return ErrBadRequest
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return ErrUnauthorized
	case code == http.StatusNotFound:
		return ErrNotFound
	case code == http.StatusConflict:
		return ErrConflict
	default:
		return fmt.Errorf("%w: status %d", ErrUnavailable, code)
	}
}

// ---- users ----

func (c *HTTPClient) GetUser(ctx context.Context, userName string) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(userName), nil, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) ListUsers(ctx context.Context, requesterName string) ([]models.User, error) {
	var users []models.User
	q := url.Values{"userName": {requesterName}}
	if err := c.do(ctx, http.MethodGet, "/users", q, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *HTTPClient) GetCart(ctx context.Context, userName string) ([]models.Course, error) {
	var courses []models.Course
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(userName)+"/cart", nil, nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (c *HTTPClient) GetCourses(ctx context.Context, userName string) ([]models.Course, error) {
	var courses []models.Course
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(userName)+"/courses", nil, nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (c *HTTPClient) GetRecommended(ctx context.Context, userName string, count int) ([]models.Course, error) {
	var courses []models.Course
	path := "/users/" + url.PathEscape(userName) + "/recommended/" + strconv.Itoa(count)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (c *HTTPClient) Register(ctx context.Context, user models.User) (*models.User, error) {
	var created models.User
	if err := c.do(ctx, http.MethodPost, "/users/register", nil, user, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *HTTPClient) Login(ctx context.Context, user models.User) (*models.User, error) {
	var account models.User
	if err := c.do(ctx, http.MethodPost, "/users/login", nil, user, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, user models.User) (*models.User, error) {
	var updated models.User
	req := authenticatedRequest[models.User]{Data: user, UserName: user.UserName}
	if err := c.do(ctx, http.MethodPut, "/users", nil, req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *HTTPClient) Checkout(ctx context.Context, user models.User) (*models.User, error) {
	var updated models.User
	if err := c.do(ctx, http.MethodPut, "/users/checkout", nil, user, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// BanUser posts the requester name as the raw JSON body, mirroring the API's
// moderation endpoints.
func (c *HTTPClient) BanUser(ctx context.Context, userName, requesterName string) (*models.User, error) {
	return c.moderate(ctx, userName, requesterName, "ban")
}

func (c *HTTPClient) UnbanUser(ctx context.Context, userName, requesterName string) (*models.User, error) {
	return c.moderate(ctx, userName, requesterName, "unban")
}

func (c *HTTPClient) moderate(ctx context.Context, userName, requesterName, action string) (*models.User, error) {
	var updated models.User
	path := "/users/" + url.PathEscape(userName) + "/" + action
	if err := c.do(ctx, http.MethodPost, path, nil, requesterName, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// ---- courses ----

func (c *HTTPClient) ListCourses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	if err := c.do(ctx, http.MethodGet, "/courses", nil, nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (c *HTTPClient) GetCourse(ctx context.Context, id int) (*models.Course, error) {
	var course models.Course
	if err := c.do(ctx, http.MethodGet, "/courses/"+strconv.Itoa(id), nil, nil, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// FindCourse looks a course up through the query form of the endpoint, which
// answers with a zero-or-one element array instead of a 404.
func (c *HTTPClient) FindCourse(ctx context.Context, id int) (*models.Course, error) {
	var courses []models.Course
	q := url.Values{"id": {strconv.Itoa(id)}}
	if err := c.do(ctx, http.MethodGet, "/courses/", q, nil, &courses); err != nil {
		return nil, err
	}
	if len(courses) == 0 {
		return nil, nil
	}
	return &courses[0], nil
}

func (c *HTTPClient) SearchCourses(ctx context.Context, title string) ([]models.Course, error) {
	var courses []models.Course
	q := url.Values{"title": {title}}
	if err := c.do(ctx, http.MethodGet, "/courses/", q, nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (c *HTTPClient) CreateCourse(ctx context.Context, course models.Course, userName string) (*models.Course, error) {
	var created models.Course
	req := authenticatedRequest[models.Course]{Data: course, UserName: userName}
	if err := c.do(ctx, http.MethodPost, "/courses", nil, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *HTTPClient) UpdateCourse(ctx context.Context, course models.Course, userName string) (*models.Course, error) {
	var updated models.Course
	req := authenticatedRequest[models.Course]{Data: course, UserName: userName}
	if err := c.do(ctx, http.MethodPut, "/courses", nil, req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *HTTPClient) DeleteCourse(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/courses/"+strconv.Itoa(id), nil, nil, nil)
}
