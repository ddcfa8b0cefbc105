package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/coursestore/internal/client/client"
	"github.com/dmitrijs2005/coursestore/internal/client/models"
	"github.com/dmitrijs2005/coursestore/internal/logging"
)

// CatalogService exposes the course catalog. Read failures degrade to
// empty/nil results; catalog writes (admin authoring) report their errors
// so the admin surface can show them.
type CatalogService interface {
	List(ctx context.Context) []models.Course
	Get(ctx context.Context, id int) *models.Course
	Find(ctx context.Context, id int) *models.Course
	Search(ctx context.Context, term string) []models.Course
	Create(ctx context.Context, course models.Course, userName string) (*models.Course, error)
	Update(ctx context.Context, course models.Course, userName string) (*models.Course, error)
	Delete(ctx context.Context, id int) error
}

type catalogService struct {
	client client.CourseClient
	log    logging.Logger
}

// NewCatalogService builds the catalog service over the course transport.
func NewCatalogService(c client.CourseClient, log logging.Logger) CatalogService {
	return &catalogService{client: c, log: log.With("component", "catalog")}
}

func (s *catalogService) List(ctx context.Context) []models.Course {
	courses, err := s.client.ListCourses(ctx)
	if err != nil {
		s.log.Error(ctx, "list courses failed", "error", err)
		return []models.Course{}
	}
	return courses
}

func (s *catalogService) Get(ctx context.Context, id int) *models.Course {
	course, err := s.client.GetCourse(ctx, id)
	if err != nil {
		s.log.Error(ctx, "get course failed", "id", id, "error", err)
		return nil
	}
	return course
}

// Find uses the query variant of the lookup, which reports a missing id as
// an empty result instead of a 404.
func (s *catalogService) Find(ctx context.Context, id int) *models.Course {
	course, err := s.client.FindCourse(ctx, id)
	if err != nil {
		s.log.Error(ctx, "find course failed", "id", id, "error", err)
		return nil
	}
	return course
}

// Search returns courses whose title contains term. A blank term returns an
// empty result without a network call.
func (s *catalogService) Search(ctx context.Context, term string) []models.Course {
	if strings.TrimSpace(term) == "" {
		return []models.Course{}
	}
	courses, err := s.client.SearchCourses(ctx, term)
	if err != nil {
		s.log.Error(ctx, "search courses failed", "term", term, "error", err)
		return []models.Course{}
	}
	return courses
}

func (s *catalogService) Create(ctx context.Context, course models.Course, userName string) (*models.Course, error) {
	created, err := s.client.CreateCourse(ctx, course, userName)
	if err != nil {
		s.log.Error(ctx, "create course failed", "error", err)
		return nil, err
	}
	s.log.Info(ctx, "course created", "id", created.ID, "title", created.Title)
	return created, nil
}

func (s *catalogService) Update(ctx context.Context, course models.Course, userName string) (*models.Course, error) {
	updated, err := s.client.UpdateCourse(ctx, course, userName)
	if err != nil {
		s.log.Error(ctx, "update course failed", "id", course.ID, "error", err)
		return nil, err
	}
	return updated, nil
}

func (s *catalogService) Delete(ctx context.Context, id int) error {
	if err := s.client.DeleteCourse(ctx, id); err != nil {
		s.log.Error(ctx, "delete course failed", "id", id, "error", err)
		return err
	}
	s.log.Info(ctx, "course deleted", "id", id)
	return nil
}
