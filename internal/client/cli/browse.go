package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/coursestore/internal/client/models"
	"github.com/dmitrijs2005/coursestore/internal/client/services"
)

// Courses lists the whole catalog.
func (a *App) Courses(ctx context.Context) error {
	printCourses(a.catalog.List(ctx))
	return nil
}

// Search lists courses whose title matches term.
func (a *App) Search(ctx context.Context, term string) error {
	courses := a.catalog.Search(ctx, term)
	if len(courses) == 0 {
		fmt.Printf("No courses matching %q.\n", term)
		return nil
	}
	printCourses(courses)
	return nil
}

// Course shows one course with its lesson list.
func (a *App) Course(ctx context.Context, id int) error {
	course := a.catalog.Get(ctx, id)
	if course == nil {
		fmt.Println("Course not found.")
		return nil
	}

	fmt.Printf("#%d %s — $%.2f\n", course.ID, course.Title, course.Price)
	if course.Description != "" {
		fmt.Println(course.Description)
	}
	fmt.Printf("%d students enrolled\n", course.StudentsEnrolled)
	for i, lesson := range course.Content {
		fmt.Printf("  lesson %d: %s\n", i+1, lesson.Title)
	}
	return nil
}

// Recommended shows recommendations for the current visitor (signed in or
// anonymous).
func (a *App) Recommended(ctx context.Context) error {
	courses := a.users.Recommended(ctx, a.session.Current())
	if len(courses) == 0 {
		fmt.Println("No recommendations right now.")
		return nil
	}
	printCourses(courses)
	return nil
}

// Lesson opens a lesson, applying the content-access policy.
func (a *App) Lesson(ctx context.Context, courseID, lessonNum int) error {
	course := a.catalog.Get(ctx, courseID)
	if course == nil {
		fmt.Println("Course not found.")
		return nil
	}
	if lessonNum < 1 || lessonNum > len(course.Content) {
		fmt.Printf("Course has %d lessons.\n", len(course.Content))
		return nil
	}
	lesson := course.Content[lessonNum-1]

	decision := services.DecideLessonAccess(a.session.Current(), *course, lesson)
	switch decision.Kind {
	case services.AccessLoginRequired:
		fmt.Println("Please sign in to view lessons.")
	case services.AccessPlayable:
		fmt.Printf("%s\n%s\n", lesson.Title, decision.Video)
	case services.AccessRestricted:
		fmt.Printf("%s is locked. Purchase the course to watch it.\n", lesson.Title)
	}
	return nil
}

func printCourses(courses []models.Course) {
	if len(courses) == 0 {
		fmt.Println("No courses available.")
		return
	}
	for _, c := range courses {
		fmt.Printf("  #%d %s — $%.2f (%d lessons)\n", c.ID, c.Title, c.Price, len(c.Content))
	}
}
